// Package prompt assembles the text sent to the completion service.
// Assembly is deterministic string building: the same request always
// produces the same prompt, and nothing here touches the network.
package prompt

import (
	"fmt"
	"strings"

	"mapforge/internal/schema"
)

// Request carries the caller-facing inputs a prompt is built from.
type Request struct {
	Description string
	Width       int
	Height      int
	Archetype   string // optional catalog name hint
}

// Prompt is a fully assembled initial exchange.
type Prompt struct {
	System string
	User   string
}

// Builder composes prompts from the schema registry vocabulary.
type Builder struct {
	vocab schema.Vocabulary
}

// NewBuilder returns a Builder over the full registry vocabulary.
func NewBuilder() *Builder {
	return &Builder{vocab: schema.Vocab()}
}

// BuildInitial assembles the system instructions and first user message.
// The system prompt embeds the entire vocabulary and the output-format
// contract; the user message carries the description and the exact
// target dimensions.
func (b *Builder) BuildInitial(req Request) Prompt {
	return Prompt{
		System: b.systemPrompt(),
		User:   b.userMessage(req),
	}
}

// BuildRepair assembles a corrective user message from the most recent
// failed attempt. It restates the dimension contract, lists every
// violation verbatim, and demands a complete corrected grid rather than
// a diff. The message is self-contained: it does not assume the service
// remembers earlier turns.
func (b *Builder) BuildRepair(req Request, violations []schema.Violation) string {
	var sb strings.Builder
	sb.WriteString("Your previous map was rejected. Problems found:\n")
	for _, v := range violations {
		sb.WriteString("- ")
		sb.WriteString(string(v))
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "\nThe grid must be exactly %d rows of exactly %d columns, every cell an integer from 0 to 5.\n", req.Height, req.Width)
	sb.WriteString("Return the complete corrected map as one JSON object in the required format. Do not describe the changes; output the full grid.")
	return sb.String()
}

// BuildFormatRepair assembles a corrective user message for responses
// whose payload could not be decoded at all.
func (b *Builder) BuildFormatRepair(req Request, reason string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Your previous response could not be read: %s.\n\n", reason)
	fmt.Fprintf(&sb, "Respond with exactly one JSON object and nothing else. It must contain a \"grid\" field with %d rows of %d integers (0-5) and a \"metadata\" object with \"interpretation\" and \"features\".\n", req.Height, req.Width)
	sb.WriteString("No prose before or after the JSON. Output the complete map.")
	return sb.String()
}

func (b *Builder) systemPrompt() string {
	var sb strings.Builder
	sb.WriteString("You are a map designer. You turn a free-text description of a place into a rectangular tile grid.\n\n")

	sb.WriteString("## Tile values\n")
	for _, t := range b.vocab.Tiles {
		fmt.Fprintf(&sb, "- %d = %s: %s\n", int(t.Value), t.Name, t.Meaning)
	}

	sb.WriteString("\n## Vocabulary\n")
	fmt.Fprintf(&sb, "Positions: %s\n", strings.Join(b.vocab.Positions, ", "))
	fmt.Fprintf(&sb, "Sizes: %s\n", strings.Join(b.vocab.Sizes, ", "))
	fmt.Fprintf(&sb, "Shapes: %s\n", strings.Join(b.vocab.Shapes, ", "))
	fmt.Fprintf(&sb, "Features: %s\n", strings.Join(b.vocab.Features, ", "))

	sb.WriteString("\n## Location archetypes\n")
	for _, a := range b.vocab.Archetypes {
		fmt.Fprintf(&sb, "- %s: %s (typical features: %s)\n", a.Name, a.Description, strings.Join(a.Features, ", "))
	}

	sb.WriteString(`
## Output format
Respond with one JSON object matching this schema, and nothing else:
{
  "grid": [[0,0,0],[0,1,0],[0,0,0]],
  "metadata": {
    "interpretation": "one sentence describing how you read the request",
    "archetype": "one catalog name, or omit if none fits",
    "features": ["short feature phrases you placed"]
  }
}

Rules:
- "grid" is an array of rows; every row has the same number of columns.
- Every cell is an integer from 0 to 5.
- Maps with an entry and a goal use exactly one START (4) and one END (5).
- Do not wrap the JSON in explanation or markdown.`)

	return sb.String()
}

func (b *Builder) userMessage(req Request) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Create a map for: %s\n\n", req.Description)
	fmt.Fprintf(&sb, "The grid must be exactly %d rows tall and %d columns wide.", req.Height, req.Width)
	if req.Archetype != "" {
		if a, ok := schema.ArchetypeByName(req.Archetype); ok {
			fmt.Fprintf(&sb, "\nTreat it as a %s: %s.", a.Name, a.Description)
		}
	}
	return sb.String()
}
