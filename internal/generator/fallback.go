package generator

import (
	"fmt"

	"mapforge/internal/schema"
)

// FallbackGrid builds the deterministic degraded map returned when every
// attempt is exhausted: a wall border around a floor interior, at the
// requested dimensions.
func FallbackGrid(width, height int) schema.Grid {
	grid := make(schema.Grid, height)
	for i := range grid {
		row := make([]schema.TileType, width)
		for j := range row {
			if i == 0 || i == height-1 || j == 0 || j == width-1 {
				row[j] = schema.Wall
			} else {
				row[j] = schema.Floor
			}
		}
		grid[i] = row
	}
	return grid
}

func failureInterpretation(attempts int) string {
	return fmt.Sprintf("generation failed after %d attempts", attempts)
}
