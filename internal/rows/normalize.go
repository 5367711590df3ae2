package rows

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// Normalize converts a parsed grid into the visible row set. Every cell is
// trimmed of leading and trailing whitespace. The first physical row is the
// header and is always excluded; so is any row whose item, name and value
// projections are all empty after trimming. Row numbers are the 1-based
// physical positions in the grid, assigned before exclusion.
func Normalize(grid [][]string) []Row {
	var out []Row
	for i, raw := range grid {
		cells := make([]string, len(raw))
		for j, cell := range raw {
			cells[j] = strings.TrimSpace(cell)
		}

		r := Row{cells: cells, num: i + 1}
		if r.num == 1 {
			continue
		}
		if r.Item() == "" && r.Name() == "" && r.RawValue() == "" {
			log.Debug().
				Int("row", r.num).
				Msg("Skipping row with empty projected fields")
			continue
		}
		out = append(out, r)
	}

	log.Debug().
		Int("total_rows", len(grid)).
		Int("visible_rows", len(out)).
		Msg("Normalized sheet grid")

	return out
}
