package gemini

import "errors"

// Error definitions for the gemini package.
var (
	// ErrNilModels is returned when the generator is built without a model client.
	ErrNilModels = errors.New("gemini model client cannot be nil")

	// ErrNilPromptBuilder is returned when the generator is built without a prompt builder.
	ErrNilPromptBuilder = errors.New("prompt builder cannot be nil")
)
