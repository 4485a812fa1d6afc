package generation_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/phrazzld/spectrum-api/internal/domain"
	"github.com/phrazzld/spectrum-api/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptBuilder_Default(t *testing.T) {
	t.Parallel()

	builder, err := generation.NewPromptBuilder("")
	require.NoError(t, err)

	prompt, err := builder.Build(domain.GenerationRequest{Idea: "ocean life", Count: 12})
	require.NoError(t, err)

	assert.Contains(t, prompt, `Given the concept: "ocean life"`)
	assert.Contains(t, prompt, "Return exactly 12 opposite-end word pairs")
	assert.Contains(t, prompt, "JSON array of length 12")
	assert.Contains(t, prompt, `{"left":"Hot","right":"Cold"}`)
}

func TestPromptBuilder_CustomTemplate(t *testing.T) {
	t.Parallel()

	builder, err := generation.NewPromptBuilder("{{.Count}} pairs about {{.Idea}}")
	require.NoError(t, err)

	prompt, err := builder.Build(domain.GenerationRequest{Idea: "pets", Count: 3})
	require.NoError(t, err)
	assert.Equal(t, "3 pairs about pets", prompt)
}

func TestPromptBuilder_IdeaIsNotEscaped(t *testing.T) {
	t.Parallel()

	builder, err := generation.NewPromptBuilder("{{.Idea}}")
	require.NoError(t, err)

	prompt, err := builder.Build(domain.GenerationRequest{Idea: `rock & "roll" <3`, Count: 1})
	require.NoError(t, err)
	assert.Equal(t, `rock & "roll" <3`, prompt)
}

func TestPromptBuilder_Errors(t *testing.T) {
	t.Parallel()

	t.Run("parse error", func(t *testing.T) {
		t.Parallel()
		_, err := generation.NewPromptBuilder("{{.Idea")
		assert.ErrorIs(t, err, generation.ErrInvalidConfig)
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()
		builder, err := generation.NewPromptBuilder("{{.Mood}}")
		require.NoError(t, err)
		_, err = builder.Build(domain.GenerationRequest{Idea: "x", Count: 1})
		assert.Error(t, err)
	})

	t.Run("invalid request", func(t *testing.T) {
		t.Parallel()
		builder, err := generation.NewPromptBuilder("")
		require.NoError(t, err)
		_, err = builder.Build(domain.GenerationRequest{Idea: " ", Count: 1})
		assert.ErrorIs(t, err, domain.ErrEmptyIdea)
	})
}

func TestLoadPromptBuilder(t *testing.T) {
	t.Parallel()

	t.Run("empty path uses built-in template", func(t *testing.T) {
		t.Parallel()
		builder, err := generation.LoadPromptBuilder("")
		require.NoError(t, err)
		prompt, err := builder.Build(domain.GenerationRequest{Idea: "x", Count: 1})
		require.NoError(t, err)
		assert.Contains(t, prompt, "Wavelength")
	})

	t.Run("reads file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "prompt.tmpl")
		require.NoError(t, os.WriteFile(path, []byte("Give me {{.Count}} for {{.Idea}}"), 0o600))

		builder, err := generation.LoadPromptBuilder(path)
		require.NoError(t, err)
		prompt, err := builder.Build(domain.GenerationRequest{Idea: "music", Count: 4})
		require.NoError(t, err)
		assert.Equal(t, "Give me 4 for music", prompt)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := generation.LoadPromptBuilder(filepath.Join(t.TempDir(), "missing.tmpl"))
		assert.ErrorIs(t, err, generation.ErrInvalidConfig)
	})
}
