// Package generator drives the attempt loop that turns an unreliable
// free-text model into a dependable grid-producing function. It composes
// the prompt builder, completion client, response parser, and grid
// validator into a bounded repair-retry state machine.
package generator

import (
	"mapforge/internal/parse"
	"mapforge/internal/prompt"
	"mapforge/internal/schema"
)

// Request is one generation call. It is created per call and never
// persisted; the credential is an explicit parameter, not process state.
type Request struct {
	Description string
	Width       int
	Height      int
	Credential  string

	// Archetype is an optional catalog name hint. It enriches the prompt
	// and selects semantic checks; it never hard-constrains structure.
	Archetype string

	// OnProgress, if set, receives a short human-readable status string
	// at the start of each state transition. Invocation is
	// fire-and-forget; the orchestrator ignores anything it does.
	OnProgress func(status string)
}

// Metadata describes how the model read the request.
type Metadata struct {
	Interpretation string
	Archetype      string
	Features       []string
}

// Result is the outcome of one generation call, successful or degraded.
type Result struct {
	Grid     schema.Grid
	Metadata Metadata

	// GenerationID correlates logs and history entries for this call.
	GenerationID string

	// Attempts is how many completion exchanges were performed.
	Attempts int

	// Fallback is true when every attempt failed and Grid is the
	// deterministic border-wall fallback.
	Fallback bool
}

// attemptState is the per-attempt record scoped to a single Generate
// invocation. It is discarded when the call returns.
type attemptState struct {
	index      int
	userPrompt string
	raw        string
	payload    *parse.Payload
	violations []schema.Violation
}

func promptRequest(req Request) prompt.Request {
	return prompt.Request{
		Description: req.Description,
		Width:       req.Width,
		Height:      req.Height,
		Archetype:   req.Archetype,
	}
}
