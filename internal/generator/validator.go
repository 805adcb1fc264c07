package generator

import (
	"mapforge/internal/parse"
	"mapforge/internal/schema"
)

// Validator composes the registry's structural and semantic checks into
// one pass over a decoded payload. Check order: row count, per-row
// column count, per-cell value range, then archetype semantics. All
// applicable violations are collected together so a single repair prompt
// can address multiple problems at once; the only short-circuit is a
// zero-row grid, where cell-level findings would be meaningless.
type Validator struct{}

// Check returns the canonical violation sequence for a payload. The
// archetype for semantic checks is the request hint when present,
// otherwise whatever archetype the model reported; with neither, only
// structural checks run.
func (Validator) Check(payload *parse.Payload, req Request) []schema.Violation {
	violations := schema.ValidateStructure(payload.Cells, req.Width, req.Height)
	if len(payload.Cells) == 0 {
		return violations
	}

	if arch, ok := archetypeFor(req, payload); ok {
		violations = append(violations, schema.ValidateSemantics(payload.Cells, arch)...)
	}
	return violations
}

func archetypeFor(req Request, payload *parse.Payload) (schema.Archetype, bool) {
	if req.Archetype != "" {
		if a, ok := schema.ArchetypeByName(req.Archetype); ok {
			return a, true
		}
	}
	if payload.Archetype != "" {
		if a, ok := schema.ArchetypeByName(payload.Archetype); ok {
			return a, true
		}
	}
	return schema.Archetype{}, false
}
