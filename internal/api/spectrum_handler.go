package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/spectrum-api/internal/api/shared"
	"github.com/phrazzld/spectrum-api/internal/domain"
	"github.com/phrazzld/spectrum-api/internal/generation"
	"github.com/phrazzld/spectrum-api/internal/platform/logger"
)

// SpectrumHandler serves spectrum generation requests.
type SpectrumHandler struct {
	generator generation.Generator
}

// NewSpectrumHandler creates a new SpectrumHandler backed by generator.
func NewSpectrumHandler(generator generation.Generator) *SpectrumHandler {
	return &SpectrumHandler{generator: generator}
}

// GenerateSpectrums handles POST /api/generateSpectrums requests.
func (h *SpectrumHandler) GenerateSpectrums(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req GenerateSpectrumsRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			shared.RespondWithErrorAndLog(w, r, http.StatusRequestEntityTooLarge, msgBodyTooLarge, err)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, msgInvalidFormat, err)
		return
	}

	genReq, err := toGenerationRequest(req)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("generating spectrums",
		slog.Int("count", genReq.Count),
		slog.Int("idea_length", len(genReq.Idea)))

	pairs, err := h.generator.GenerateSpectrums(r.Context(), genReq)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgGenerationFailed, err)
		return
	}

	log.Debug("spectrums generated", slog.Int("pairs", len(pairs)))

	shared.RespondWithJSON(w, r, http.StatusOK, GenerateSpectrumsResponse{Spectrums: pairs})
}

// toGenerationRequest validates the decoded body and applies defaults.
func toGenerationRequest(req GenerateSpectrumsRequest) (domain.GenerationRequest, error) {
	req.Idea = strings.TrimSpace(req.Idea)
	if err := shared.ValidateRequest(&req); err != nil {
		return domain.GenerationRequest{}, translateValidationError(err)
	}

	count := domain.DefaultPairCount
	if req.Count != nil {
		count = *req.Count
	}

	return domain.NewGenerationRequest(req.Idea, count)
}
