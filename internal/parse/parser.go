package parse

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Payload is the decoded model response before validation. Cells stay as
// raw ints here: range checking belongs to the validator, and converting
// to tile types before validation would mask out-of-range values.
type Payload struct {
	Cells          [][]int
	Interpretation string
	Archetype      string
	Features       []string
}

// ParseError reports that no usable payload could be recovered from the
// model's text. It is retried by the orchestrator with a
// format-emphasizing repair prompt.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "parse: " + e.Reason
}

// wirePayload mirrors the JSON contract the model is taught. Pointer
// fields distinguish an absent required field from a present empty one.
type wirePayload struct {
	Grid     [][]int `json:"grid"`
	Metadata *struct {
		Interpretation *string   `json:"interpretation"`
		Archetype      string    `json:"archetype"`
		Features       *[]string `json:"features"`
	} `json:"metadata"`
}

// Extract locates the first balanced JSON object in raw text that decodes
// at all, ignoring surrounding prose and markdown fences, and checks it
// for the required payload fields.
func Extract(raw string) (*Payload, error) {
	candidates := balancedObjects(raw)
	if len(candidates) == 0 {
		return nil, &ParseError{Reason: "no JSON object found in response"}
	}

	var wire wirePayload
	decoded := false
	for _, candidate := range candidates {
		dec := json.NewDecoder(strings.NewReader(candidate))
		var w wirePayload
		if err := dec.Decode(&w); err != nil {
			continue
		}
		wire = w
		decoded = true
		break
	}
	if !decoded {
		return nil, &ParseError{Reason: "no JSON object in response could be decoded"}
	}

	if missing := missingFields(wire); len(missing) > 0 {
		return nil, &ParseError{Reason: fmt.Sprintf("response is missing required fields: %s", strings.Join(missing, ", "))}
	}

	return &Payload{
		Cells:          wire.Grid,
		Interpretation: *wire.Metadata.Interpretation,
		Archetype:      wire.Metadata.Archetype,
		Features:       *wire.Metadata.Features,
	}, nil
}

func missingFields(w wirePayload) []string {
	var missing []string
	if w.Grid == nil {
		missing = append(missing, "grid")
	}
	if w.Metadata == nil {
		missing = append(missing, "metadata.interpretation", "metadata.features")
		return missing
	}
	if w.Metadata.Interpretation == nil {
		missing = append(missing, "metadata.interpretation")
	}
	if w.Metadata.Features == nil {
		missing = append(missing, "metadata.features")
	}
	return missing
}
