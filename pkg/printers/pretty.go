package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/cyclehq/cycle/pkg/glyph"
	"github.com/cyclehq/cycle/pkg/journal"
	"github.com/cyclehq/cycle/pkg/task"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" item")
	default:
		_, _ = c.Println(" items")
	}
}

// Entries prints journal entries as date / text / tags rows.
func (pp *PrettyPrint) Entries(entries ...journal.Entry) {
	if len(entries) == 0 {
		pp.none()
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	f := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, e := range entries {
		row := []interface{}{
			glyph.Entry.String(),
			e.Date.Local().Format("2006-01-02 15:04"),
			e.Text,
			f.Sprint(tagList(e.Tags)),
		}
		if pp.ShowID {
			row = append([]interface{}{y.Sprint(shortID(e.ID.String()))}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Tasks prints tasks with their status glyphs; completed tasks are struck
// through the way crossed-off items read on paper.
func (pp *PrettyPrint) Tasks(tasks ...task.Task) {
	if len(tasks) == 0 {
		pp.none()
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, t := range tasks {
		title := t.Title
		bullet := glyph.Open
		switch {
		case t.Reflection != nil:
			bullet = glyph.Reflected
			title = glyph.Strike(title)
		case t.Completed:
			bullet = glyph.Completed
			title = glyph.Strike(title)
		}
		row := []interface{}{bullet.String(), title, t.Description}
		if pp.ShowID {
			row = append([]interface{}{y.Sprint(shortID(t.ID.String()))}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Groups prints groups in display order.
func (pp *PrettyPrint) Groups(groups ...task.Group) {
	if len(groups) == 0 {
		pp.none()
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	f := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, g := range groups {
		row := []interface{}{g.Name, f.Sprint(g.ColorHex)}
		if pp.ShowID {
			row = append([]interface{}{y.Sprint(shortID(g.ID.String()))}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Tags prints the tag universe, marking the tags selected for filtering.
func (pp *PrettyPrint) Tags(all []string, selected []string) {
	if len(all) == 0 {
		pp.none()
		return
	}

	on := color.New(color.Bold)
	off := color.New()

	for _, t := range all {
		printer := off
		mark := "  "
		for _, s := range selected {
			if s == t {
				printer = on
				mark = glyph.Dot.String() + " "
				break
			}
		}
		_, _ = printer.Printf("%s%s%s\n", mark, glyph.Tag.String(), t)
	}
	fmt.Println("")
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Print(spacing)
	}
	_, _ = f.Print(" none\n\n")
}

func tagList(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	return glyph.Tag.String() + strings.Join(tags, " "+glyph.Tag.String())
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
