// Package schema is the single source of truth for the map vocabulary:
// the tile enumeration, spatial terms, feature primitives, and the
// archetype catalog. Everything here is constant data and pure functions;
// the package performs no I/O and holds no mutable state.
package schema

import "fmt"

// TileType is the closed enumeration of cell values a generated map may
// contain. Any value outside [Wall, End] is invalid.
type TileType int

const (
	Wall TileType = iota
	Floor
	Door
	SecretDoor
	Start
	End
)

// tileNames are the canonical names taught to the model.
var tileNames = [...]string{"WALL", "FLOOR", "DOOR", "SECRET_DOOR", "START", "END"}

func (t TileType) String() string {
	if t.Valid() {
		return tileNames[t]
	}
	return fmt.Sprintf("TileType(%d)", int(t))
}

// Valid reports whether t is a member of the closed tile set.
func (t TileType) Valid() bool {
	return t >= Wall && t <= End
}

// Grid is a rectangular map of tiles. Every row has the same length.
// A Grid is a value object: once returned, the caller owns it and nothing
// in this module mutates it again.
type Grid [][]TileType

// Height returns the number of rows.
func (g Grid) Height() int { return len(g) }

// Width returns the row length, or 0 for an empty grid.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// GridFromCells converts raw decoded cell values into a typed Grid.
// Callers must validate the cells first; values are converted as-is.
func GridFromCells(cells [][]int) Grid {
	grid := make(Grid, len(cells))
	for i, row := range cells {
		grid[i] = make([]TileType, len(row))
		for j, v := range row {
			grid[i][j] = TileType(v)
		}
	}
	return grid
}
