package key

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/cyclehq/cycle/pkg/glyph"
)

// Key prints the legend of glyphs used in listings and calendars.
type Key struct{}

func (r *Key) Do(ctx context.Context) error {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println("Key")

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, g := range glyph.DefaultGlyphs() {
		tbl.AddRow(g.Symbol, g.Meaning)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	return nil
}
