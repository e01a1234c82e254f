package host

import "golang.org/x/text/encoding/charmap"

// Glyphs are uint32 code points. Values below 256 are CP437 indices, the
// encoding of the classic bitmap fonts; larger values are Unicode code points
// and are displayed as-is.

// GlyphRune returns the Unicode rune a glyph displays as.
func GlyphRune(glyph uint32) rune {
	if glyph < 256 {
		r := charmap.CodePage437.DecodeByte(byte(glyph))
		if r < ' ' {
			// The control range carries the CP437 pictographs.
			return cp437Controls[r]
		}
		return r
	}
	return rune(glyph)
}

// ToCP437 returns the CP437 index of r, if the code page contains it.
func ToCP437(r rune) (byte, bool) {
	if r >= 1 && r < ' ' {
		return 0, false
	}
	for i, c := range cp437Controls {
		if i > 0 && c == r {
			return byte(i), true
		}
	}
	return charmap.CodePage437.EncodeRune(r)
}

// ToGlyph converts r to the glyph that displays it, preferring the CP437
// index when one exists.
func ToGlyph(r rune) uint32 {
	if b, ok := ToCP437(r); ok {
		return uint32(b)
	}
	return uint32(r)
}

var cp437Controls = [32]rune{
	' ', '☺', '☻', '♥', '♦', '♣', '♠', '•', '◘', '○', '◙', '♂', '♀', '♪', '♫', '☼',
	'►', '◄', '↕', '‼', '¶', '§', '▬', '↨', '↑', '↓', '→', '←', '∟', '↔', '▲', '▼',
}
