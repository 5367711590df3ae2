// Package export renders visible rows as tab-separated text and puts them
// on the system clipboard.
package export

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/rs/zerolog/log"

	"sheetboard/internal/rows"
)

// TSV renders the three projected columns of each row as tab-separated
// lines, in the order given.
func TSV(rs []rows.Row) string {
	var b strings.Builder
	for _, r := range rs {
		b.WriteString(r.Item())
		b.WriteByte('\t')
		b.WriteString(r.Name())
		b.WriteByte('\t')
		b.WriteString(r.RawValue())
		b.WriteByte('\n')
	}
	return b.String()
}

// Copy writes the TSV rendering of the rows to the system clipboard.
func Copy(rs []rows.Row) error {
	text := TSV(rs)
	if err := clipboard.WriteAll(text); err != nil {
		log.Warn().Err(err).Msg("Failed to write clipboard")
		return err
	}
	log.Debug().Int("rows", len(rs)).Msg("Copied rows to clipboard")
	return nil
}
