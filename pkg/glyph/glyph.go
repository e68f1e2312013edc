package glyph

import "fmt"

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

const (
	escape     = "\x1b"
	resetCode  = 0
	strikeCode = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func DefaultGlyphs() []Glyph {
	g := make([]Glyph, 0, 6)

	g = append(g, Glyph{
		Key:     "+",
		Symbol:  "●",
		Meaning: "open task",
	}, Glyph{
		Key:     "x",
		Symbol:  "✘",
		Meaning: "task completed",
	}, Glyph{
		Key:     "*",
		Symbol:  "✷",
		Meaning: "task completed with reflection",
	}, Glyph{
		Key:     "-",
		Symbol:  "⁃",
		Meaning: "journal entry",
	}, Glyph{
		Key:     "o",
		Symbol:  "•",
		Meaning: "day with entries",
	}, Glyph{
		Key:     "#",
		Symbol:  "#",
		Meaning: "tag",
	})

	return g
}

type Bullet int

const (
	Open Bullet = iota
	Completed
	Reflected
	Entry
	Dot
	Tag
)

func (b Bullet) Glyph() Glyph {
	return DefaultGlyphs()[b]
}

func (b Bullet) String() string {
	return b.Glyph().String()
}

func (g Glyph) String() string {
	return g.Symbol
}
