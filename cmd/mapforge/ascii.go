package main

import (
	"strings"

	"mapforge/internal/schema"
)

// tileRunes maps tile types to their terminal glyphs. This is plain text
// output, not a renderer; real drawing is the embedding application's
// concern.
var tileRunes = map[schema.TileType]rune{
	schema.Wall:       '#',
	schema.Floor:      '.',
	schema.Door:       '+',
	schema.SecretDoor: 's',
	schema.Start:      'S',
	schema.End:        'E',
}

func renderASCII(grid schema.Grid) string {
	var sb strings.Builder
	for i, row := range grid {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, t := range row {
			r, ok := tileRunes[t]
			if !ok {
				r = '?'
			}
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
