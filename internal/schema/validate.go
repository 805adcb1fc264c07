package schema

import "fmt"

// Violation is one broken validation rule, worded for the model: repair
// prompts embed each violation verbatim, so the text must stand alone.
type Violation string

// ValidateStructure checks dimensions and cell value ranges against the
// requested width and height. An empty result means structurally valid.
// A grid with zero rows short-circuits: cell-by-cell reporting would be
// meaningless noise in a repair prompt.
func ValidateStructure(cells [][]int, width, height int) []Violation {
	if len(cells) == 0 {
		return []Violation{Violation(fmt.Sprintf("grid has 0 rows, expected %d", height))}
	}

	var out []Violation
	if len(cells) != height {
		out = append(out, Violation(fmt.Sprintf("grid has %d rows, expected %d", len(cells), height)))
	}
	for i, row := range cells {
		if len(row) != width {
			out = append(out, Violation(fmt.Sprintf("row %d has %d columns, expected %d", i, len(row), width)))
		}
	}
	for i, row := range cells {
		for j, v := range row {
			if !TileType(v).Valid() {
				out = append(out, Violation(fmt.Sprintf(
					"cell at row %d column %d has value %d, valid values are 0 (WALL) through 5 (END)", i, j, v)))
			}
		}
	}
	return out
}

// ValidateSemantics checks archetype-specific expectations. These are
// advisory heuristics, not proofs of playability: an archetype implying a
// traversal expects exactly one START and one END tile, and an enclosed
// archetype expects every edge cell to be a wall or a door. Ragged rows
// are tolerated so semantic findings can accompany structural ones.
func ValidateSemantics(cells [][]int, arch Archetype) []Violation {
	var out []Violation

	if arch.RequiresPath {
		starts, ends := 0, 0
		for _, row := range cells {
			for _, v := range row {
				switch TileType(v) {
				case Start:
					starts++
				case End:
					ends++
				}
			}
		}
		if starts != 1 {
			out = append(out, Violation(fmt.Sprintf(
				"a %s needs exactly 1 START tile (value 4), found %d", arch.Name, starts)))
		}
		if ends != 1 {
			out = append(out, Violation(fmt.Sprintf(
				"a %s needs exactly 1 END tile (value 5), found %d", arch.Name, ends)))
		}
	}

	if arch.Enclosed {
		for i, row := range cells {
			for j, v := range row {
				if i != 0 && i != len(cells)-1 && j != 0 && j != len(row)-1 {
					continue
				}
				if !boundaryTile(TileType(v)) {
					out = append(out, Violation(fmt.Sprintf(
						"a %s is enclosed: edge cell at row %d column %d is %s, expected WALL or DOOR",
						arch.Name, i, j, TileType(v))))
				}
			}
		}
	}

	return out
}

// boundaryTile reports whether t may sit on the outer edge of an
// enclosed map. A secret door counts as a door.
func boundaryTile(t TileType) bool {
	return t == Wall || t == Door || t == SecretDoor
}
