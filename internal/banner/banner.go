// Package banner rasterizes short strings into large block-letter text for
// the countdown display.
package banner

import "strings"

// Font turns a string into banner lines. Callers only see rendered rows and
// the row count; glyph data stays behind this interface.
type Font interface {
	// Render returns one string per glyph row, all of equal display width.
	Render(text string) []string
	// Height is the number of rows every rendered banner occupies.
	Height() int
}

const (
	glyphRows  = 5
	glyphWidth = 5
	glyphGap   = " "
)

// BlockFont renders digits and ':' as 5-row block glyphs. Runes without a
// glyph become blank cells so the banner width stays stable.
type BlockFont struct{}

func (BlockFont) Height() int { return glyphRows }

func (BlockFont) Render(text string) []string {
	lines := make([]string, glyphRows)
	for row := 0; row < glyphRows; row++ {
		parts := make([]string, 0, len(text))
		for _, r := range text {
			g, ok := glyphs[r]
			if !ok {
				parts = append(parts, strings.Repeat(" ", glyphWidth))
				continue
			}
			parts = append(parts, g[row])
		}
		lines[row] = strings.Join(parts, glyphGap)
	}
	return lines
}

var glyphs = map[rune][]string{
	'0': {
		"█████",
		"█   █",
		"█   █",
		"█   █",
		"█████",
	},
	'1': {
		"  █  ",
		" ██  ",
		"  █  ",
		"  █  ",
		"█████",
	},
	'2': {
		"█████",
		"    █",
		"█████",
		"█    ",
		"█████",
	},
	'3': {
		"█████",
		"    █",
		"█████",
		"    █",
		"█████",
	},
	'4': {
		"█   █",
		"█   █",
		"█████",
		"    █",
		"    █",
	},
	'5': {
		"█████",
		"█    ",
		"█████",
		"    █",
		"█████",
	},
	'6': {
		"█████",
		"█    ",
		"█████",
		"█   █",
		"█████",
	},
	'7': {
		"█████",
		"    █",
		"   █ ",
		"  █  ",
		" █   ",
	},
	'8': {
		"█████",
		"█   █",
		"█████",
		"█   █",
		"█████",
	},
	'9': {
		"█████",
		"█   █",
		"█████",
		"    █",
		"█████",
	},
	':': {
		" ",
		"█",
		" ",
		"█",
		" ",
	},
}
