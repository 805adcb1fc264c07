package parse

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wellFormed = `{
	"grid": [[0,0,0],[0,1,0],[0,0,0]],
	"metadata": {
		"interpretation": "a tiny walled cell",
		"archetype": "prison",
		"features": ["single cell"]
	}
}`

func TestExtract_WellFormed(t *testing.T) {
	payload, err := Extract(wellFormed)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 0, 0}, {0, 1, 0}, {0, 0, 0}}, payload.Cells)
	assert.Equal(t, "a tiny walled cell", payload.Interpretation)
	assert.Equal(t, "prison", payload.Archetype)
	assert.Equal(t, []string{"single cell"}, payload.Features)
}

func TestExtract_ProseWrapped(t *testing.T) {
	raw := "Sure! Here is the map you asked for:\n\n" + wellFormed +
		"\n\nLet me know if you want a bigger one."
	payload, err := Extract(raw)
	require.NoError(t, err)
	assert.Equal(t, "a tiny walled cell", payload.Interpretation)
}

func TestExtract_MarkdownFenced(t *testing.T) {
	raw := "```json\n" + wellFormed + "\n```"
	payload, err := Extract(raw)
	require.NoError(t, err)
	assert.Len(t, payload.Cells, 3)
}

func TestExtract_SkipsUndecodableCandidates(t *testing.T) {
	raw := `{not json at all} then the real one: ` + wellFormed
	payload, err := Extract(raw)
	require.NoError(t, err)
	assert.Equal(t, "prison", payload.Archetype)
}

func TestExtract_NoObject(t *testing.T) {
	_, err := Extract("I cannot produce a map for that request.")
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Reason, "no JSON object")
}

func TestExtract_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		missing string
	}{
		{
			name:    "no grid",
			raw:     `{"metadata": {"interpretation": "x", "features": []}}`,
			missing: "grid",
		},
		{
			name:    "no interpretation",
			raw:     `{"grid": [[0]], "metadata": {"features": []}}`,
			missing: "metadata.interpretation",
		},
		{
			name:    "no features",
			raw:     `{"grid": [[0]], "metadata": {"interpretation": "x"}}`,
			missing: "metadata.features",
		},
		{
			name:    "no metadata at all",
			raw:     `{"grid": [[0]]}`,
			missing: "metadata.interpretation",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(tt.raw)
			var perr *ParseError
			require.True(t, errors.As(err, &perr), "want ParseError, got %v", err)
			assert.Contains(t, perr.Reason, tt.missing)
		})
	}
}

func TestExtract_EmptyFeaturesAllowed(t *testing.T) {
	payload, err := Extract(`{"grid": [[0]], "metadata": {"interpretation": "bare", "features": []}}`)
	require.NoError(t, err)
	assert.Empty(t, payload.Features)
	assert.NotNil(t, payload.Features)
}

func TestExtract_ArchetypeOptional(t *testing.T) {
	payload, err := Extract(`{"grid": [[0]], "metadata": {"interpretation": "x", "features": ["f"]}}`)
	require.NoError(t, err)
	assert.Empty(t, payload.Archetype)
}
