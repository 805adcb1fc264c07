package schema

// Archetype is one of the fixed location templates the model is taught.
// The description and feature list enrich prompts and result metadata;
// the two expectation flags drive advisory semantic checks. Archetypes
// never hard-constrain structural validation.
type Archetype struct {
	Name        string
	Description string
	Features    []string

	// RequiresPath means the layout implies a traversal: exactly one
	// START and one END tile are expected.
	RequiresPath bool

	// Enclosed means the outer boundary is expected to be solid:
	// every edge cell should be a wall or a door.
	Enclosed bool
}

// archetypeCatalog is the fixed set of 10 location templates.
var archetypeCatalog = []Archetype{
	{
		Name:         "dungeon",
		Description:  "a multi-room underground complex connected by corridors",
		Features:     []string{"rooms", "corridors", "doors", "secret passages"},
		RequiresPath: true,
		Enclosed:     true,
	},
	{
		Name:        "castle",
		Description: "a fortified keep with thick outer walls and large halls",
		Features:    []string{"great hall", "towers", "gatehouse", "courtyard"},
		Enclosed:    true,
	},
	{
		Name:         "cave",
		Description:  "an irregular natural cavern with winding passages",
		Features:     []string{"chambers", "narrow passages", "dead ends"},
		RequiresPath: true,
	},
	{
		Name:         "temple",
		Description:  "a symmetric sacred structure with a central sanctum",
		Features:     []string{"sanctum", "pillars", "altar", "antechambers"},
		RequiresPath: true,
		Enclosed:     true,
	},
	{
		Name:        "tavern",
		Description: "a cozy single-building interior with a common room",
		Features:    []string{"common room", "bar", "private rooms", "cellar"},
		Enclosed:    true,
	},
	{
		Name:        "prison",
		Description: "rows of small cells along guarded corridors",
		Features:    []string{"cells", "guard posts", "corridors", "heavy doors"},
		Enclosed:    true,
	},
	{
		Name:         "maze",
		Description:  "a dense labyrinth of narrow winding corridors",
		Features:     []string{"winding corridors", "dead ends", "single solution path"},
		RequiresPath: true,
		Enclosed:     true,
	},
	{
		Name:        "mansion",
		Description: "a sprawling residence of many connected rooms",
		Features:    []string{"foyer", "ballroom", "library", "servant passages"},
		Enclosed:    true,
	},
	{
		Name:        "library",
		Description: "long shelf-lined halls with reading alcoves",
		Features:    []string{"shelf rows", "reading alcoves", "archive vault"},
		Enclosed:    true,
	},
	{
		Name:        "arena",
		Description: "a large open fighting floor ringed by walls",
		Features:    []string{"open floor", "spectator ring", "gates"},
		Enclosed:    true,
	},
}

// Archetypes returns a copy of the full catalog.
func Archetypes() []Archetype {
	out := make([]Archetype, len(archetypeCatalog))
	copy(out, archetypeCatalog)
	return out
}

// ArchetypeByName looks up a catalog entry by its canonical name.
func ArchetypeByName(name string) (Archetype, bool) {
	for _, a := range archetypeCatalog {
		if a.Name == name {
			return a, true
		}
	}
	return Archetype{}, false
}
