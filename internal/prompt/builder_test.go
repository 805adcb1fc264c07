package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapforge/internal/schema"
)

func testRequest() Request {
	return Request{
		Description: "a mysterious underground temple",
		Width:       16,
		Height:      12,
	}
}

func TestBuildInitial_SystemEmbedsVocabulary(t *testing.T) {
	p := NewBuilder().BuildInitial(testRequest())

	// Every tile name and value must be taught.
	for _, tile := range schema.Vocab().Tiles {
		assert.Contains(t, p.System, tile.Name)
	}
	// The full archetype catalog rides along.
	for _, a := range schema.Vocab().Archetypes {
		assert.Contains(t, p.System, a.Name)
	}
	// The output-format contract is explicit.
	assert.Contains(t, p.System, `"grid"`)
	assert.Contains(t, p.System, `"interpretation"`)
	assert.Contains(t, p.System, `"features"`)
	assert.Contains(t, p.System, "one JSON object")
}

func TestBuildInitial_UserCarriesDimensions(t *testing.T) {
	p := NewBuilder().BuildInitial(testRequest())
	assert.Contains(t, p.User, "a mysterious underground temple")
	assert.Contains(t, p.User, "12 rows")
	assert.Contains(t, p.User, "16 columns")
}

func TestBuildInitial_ArchetypeHint(t *testing.T) {
	req := testRequest()
	req.Archetype = "temple"
	p := NewBuilder().BuildInitial(req)
	assert.Contains(t, p.User, "Treat it as a temple")

	// Unknown hints are silently dropped rather than inventing catalog
	// entries.
	req.Archetype = "volcano"
	p = NewBuilder().BuildInitial(req)
	assert.NotContains(t, p.User, "volcano")
}

func TestBuildInitial_Deterministic(t *testing.T) {
	b := NewBuilder()
	first := b.BuildInitial(testRequest())
	second := b.BuildInitial(testRequest())
	require.Equal(t, first, second)
}

func TestBuildRepair_EmbedsViolationsVerbatim(t *testing.T) {
	violations := []schema.Violation{
		"row 4 has 15 columns, expected 16",
		"a maze needs exactly 1 START tile (value 4), found 0",
	}
	msg := NewBuilder().BuildRepair(testRequest(), violations)

	for _, v := range violations {
		assert.Contains(t, msg, string(v), "violation must appear verbatim")
	}
	// Dimension contract restated, complete grid demanded.
	assert.Contains(t, msg, "12 rows")
	assert.Contains(t, msg, "16 columns")
	assert.Contains(t, msg, "complete")
}

func TestBuildFormatRepair_MentionsReasonAndSchema(t *testing.T) {
	msg := NewBuilder().BuildFormatRepair(testRequest(), "no JSON object found in response")
	assert.Contains(t, msg, "no JSON object found in response")
	assert.Contains(t, msg, "one JSON object")
	assert.Contains(t, msg, `"grid"`)
	assert.True(t, strings.Contains(msg, "12 rows") && strings.Contains(msg, "16 integers"))
}
