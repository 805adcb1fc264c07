package schema

// TileDescriptor pairs a tile value with the meaning taught to the model.
type TileDescriptor struct {
	Value   TileType
	Name    string
	Meaning string
}

// Vocabulary is the immutable description of everything the model is
// taught: tiles, spatial terms, feature primitives, and the archetype
// catalog. It is used to build prompts and to present metadata.
type Vocabulary struct {
	Tiles      []TileDescriptor
	Positions  []string
	Sizes      []string
	Shapes     []string
	Features   []string
	Archetypes []Archetype
}

// Vocab returns the full vocabulary. Each call returns a fresh copy so
// callers cannot mutate the registry.
func Vocab() Vocabulary {
	return Vocabulary{
		Tiles: []TileDescriptor{
			{Wall, "WALL", "impassable solid wall"},
			{Floor, "FLOOR", "open walkable floor"},
			{Door, "DOOR", "passable doorway in a wall"},
			{SecretDoor, "SECRET_DOOR", "hidden doorway, drawn as wall until found"},
			{Start, "START", "the single entry point of the map"},
			{End, "END", "the single goal or exit point of the map"},
		},
		Positions: []string{
			"north", "south", "east", "west",
			"northeast", "northwest", "southeast", "southwest", "center",
		},
		Sizes:  []string{"tiny", "small", "medium", "large", "huge"},
		Shapes: []string{"square", "rectangular", "round", "irregular", "cross-shaped", "L-shaped"},
		Features: []string{
			"room", "corridor", "pillar", "door", "secret door",
			"entrance", "exit", "alcove", "courtyard", "dead end",
		},
		Archetypes: Archetypes(),
	}
}
