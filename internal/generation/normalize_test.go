package generation_test

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/phrazzld/spectrum-api/internal/domain"
	"github.com/phrazzld/spectrum-api/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pairsToSlices flattens pairs for easy comparison in assertions.
func pairsToSlices(pairs []domain.SpectrumPair) [][2]string {
	out := make([][2]string, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, [2]string{p.Left(), p.Right()})
	}
	return out
}

// pairArray builds a JSON array of n well-formed pair objects.
func pairArray(n int) string {
	items := make([]string, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, fmt.Sprintf(`{"left":"L%d","right":"R%d"}`, i, i))
	}
	return "[" + strings.Join(items, ",") + "]"
}

func TestNormalize_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		raw   string
		count int
		want  [][2]string
	}{
		{
			name:  "fenced with json tag",
			raw:   "```json\n[{\"left\":\"Hot\",\"right\":\"Cold\"},{\"left\":\"Big\",\"right\":\"Small\"}]\n```",
			count: 2,
			want:  [][2]string{{"Hot", "Cold"}, {"Big", "Small"}},
		},
		{
			name:  "fenced without tag",
			raw:   "```\n[{\"left\":\"Hot\",\"right\":\"Cold\"}]\n```",
			count: 1,
			want:  [][2]string{{"Hot", "Cold"}},
		},
		{
			name:  "bare array with surrounding whitespace",
			raw:   "\n\n  [{\"left\":\"Hot\",\"right\":\"Cold\"}]  \n",
			count: 1,
			want:  [][2]string{{"Hot", "Cold"}},
		},
		{
			name:  "extras truncated from the end",
			raw:   pairArray(5),
			count: 3,
			want:  [][2]string{{"L0", "R0"}, {"L1", "R1"}, {"L2", "R2"}},
		},
		{
			name:  "sides trimmed independently",
			raw:   `[{"left":"  Joy ","right":"\tSadness\n"}]`,
			count: 1,
			want:  [][2]string{{"Joy", "Sadness"}},
		},
		{
			name:  "extra keys ignored",
			raw:   `[{"left":"Dog","right":"Cat","note":"classic"}]`,
			count: 1,
			want:  [][2]string{{"Dog", "Cat"}},
		},
		{
			name:  "single-line fence",
			raw:   "```json[{\"left\":\"Up\",\"right\":\"Down\"}]```",
			count: 1,
			want:  [][2]string{{"Up", "Down"}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			pairs, err := generation.Normalize(tc.raw, tc.count)
			require.NoError(t, err)
			assert.Len(t, pairs, tc.count)
			assert.Equal(t, tc.want, pairsToSlices(pairs))
		})
	}
}

func TestNormalize_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		count   int
		wantErr error
	}{
		{name: "empty", raw: "", count: 1, wantErr: generation.ErrEmptyResponse},
		{name: "only whitespace", raw: "  \n\t ", count: 1, wantErr: generation.ErrEmptyResponse},
		{name: "empty fence", raw: "```json\n```", count: 1, wantErr: generation.ErrEmptyResponse},
		{name: "empty inline fence", raw: "```json```", count: 1, wantErr: generation.ErrEmptyResponse},
		{name: "opening fence only", raw: "```json", count: 1, wantErr: generation.ErrEmptyResponse},
		{name: "bare fences", raw: "``````", count: 1, wantErr: generation.ErrEmptyResponse},
		{name: "not json at all", raw: "not json at all", count: 1, wantErr: generation.ErrMalformedJSON},
		{name: "truncated array", raw: `[{"left":"A","right":"B"}`, count: 1, wantErr: generation.ErrMalformedJSON},
		{name: "trailing commentary", raw: `[{"left":"A","right":"B"}] hope this helps`, count: 1, wantErr: generation.ErrMalformedJSON},
		{name: "object instead of array", raw: `{"left":"A","right":"B"}`, count: 1, wantErr: generation.ErrInvalidShape},
		{name: "array of strings", raw: `["A","B"]`, count: 1, wantErr: generation.ErrInvalidShape},
		{name: "missing right", raw: `[{"left":"A"}]`, count: 1, wantErr: generation.ErrInvalidShape},
		{name: "numeric left", raw: `[{"left":1,"right":"B"}]`, count: 1, wantErr: generation.ErrInvalidShape},
		{name: "null right", raw: `[{"left":"A","right":null}]`, count: 1, wantErr: generation.ErrInvalidShape},
		{
			name:    "bad element past the requested count",
			raw:     `[{"left":"A","right":"B"},{"left":"C"}]`,
			count:   1,
			wantErr: generation.ErrInvalidShape,
		},
		{name: "blank side after trim", raw: `[{"left":"  ","right":"B"}]`, count: 1, wantErr: generation.ErrInvalidShape},
		{name: "duplicate key last wins", raw: `[{"left":"A","left":5,"right":"B"}]`, count: 1, wantErr: generation.ErrInvalidShape},
		{name: "too few pairs", raw: `[{"left":"A","right":"B"}]`, count: 2, wantErr: generation.ErrInsufficientPairs},
		{name: "empty array", raw: `[]`, count: 1, wantErr: generation.ErrInsufficientPairs},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			pairs, err := generation.Normalize(tc.raw, tc.count)
			assert.Nil(t, pairs)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.ErrorIs(t, err, generation.ErrInvalidResponse)
		})
	}
}

func TestNormalize_InvalidCount(t *testing.T) {
	t.Parallel()

	_, err := generation.Normalize(pairArray(3), 0)
	assert.ErrorIs(t, err, generation.ErrInvalidCount)
	assert.NotErrorIs(t, err, generation.ErrInvalidResponse)
}

func TestNormalize_FencedMatchesUnfenced(t *testing.T) {
	t.Parallel()

	body := `[{"left":" Fast","right":"Slow "},{"left":"Light","right":"Heavy"}]`
	wrappers := []string{
		"%s",
		"```\n%s\n```",
		"```json\n%s\n```",
		"  ```JSON\n%s\n```  \n",
		"```json\n%s",
	}

	want, err := generation.Normalize(body, 2)
	require.NoError(t, err)

	for _, w := range wrappers {
		got, err := generation.Normalize(fmt.Sprintf(w, body), 2)
		require.NoError(t, err, "wrapper %q", w)
		assert.Equal(t, pairsToSlices(want), pairsToSlices(got), "wrapper %q", w)
	}
}

func TestStripCodeFence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "no fence", raw: " [1] ", want: "[1]"},
		{name: "tagged fence", raw: "```json\n[1]\n```", want: "[1]"},
		{name: "untagged fence", raw: "```\n[1]\n```", want: "[1]"},
		{name: "opening only", raw: "```json\n[1]", want: "[1]"},
		{name: "closing only", raw: "[1]\n```", want: "[1]"},
		{name: "inline tagged", raw: "```json [1]```", want: "[1]"},
		{name: "inline untagged", raw: "```[1]```", want: "[1]"},
		{name: "bare fence", raw: "```", want: ""},
		{name: "inline tag only", raw: "```json```", want: ""},
		{name: "truncated after tag", raw: "```json", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := generation.StripCodeFence(tc.raw)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, got, generation.StripCodeFence(got), "stripping twice should change nothing")
		})
	}
}

func TestNormalize_ConcurrentUse(t *testing.T) {
	t.Parallel()

	raw := "```json\n" + pairArray(40) + "\n```"

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(count int) {
			defer wg.Done()
			pairs, err := generation.Normalize(raw, count)
			if err != nil {
				errs <- err
				return
			}
			if len(pairs) != count {
				errs <- fmt.Errorf("got %d pairs, want %d", len(pairs), count)
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func TestNormalize_DuplicateKeysLastWins(t *testing.T) {
	t.Parallel()

	pairs, err := generation.Normalize(`[{"left":5,"left":"Hot","right":"Warm","right":"Cold"}]`, 1)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, "Hot", pairs[0].Left())
	assert.Equal(t, "Cold", pairs[0].Right())
}
