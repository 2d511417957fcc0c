package render

import (
	"fmt"
	"strings"

	"github.com/jaminalder/codex-gess/internal/domain"
)

// DefaultGlyph is drawn for empty cells when no glyph is configured.
const DefaultGlyph = "·"

// Text draws the board as labelled plain text: files across the top, ranks
// 20 down to 01 on the left, stones as B and W and empty cells as glyph.
func Text(b domain.Board, glyph string) string {
	if glyph == "" {
		glyph = DefaultGlyph
	}
	var sb strings.Builder
	sb.WriteString("  ")
	for c := 0; c < domain.BoardSize; c++ {
		sb.WriteByte(' ')
		sb.WriteByte(byte('a' + c))
	}
	sb.WriteByte('\n')
	for r := 0; r < domain.BoardSize; r++ {
		fmt.Fprintf(&sb, "%02d", domain.BoardSize-r)
		for c := 0; c < domain.BoardSize; c++ {
			sb.WriteByte(' ')
			switch b[r][c] {
			case domain.Black:
				sb.WriteByte('B')
			case domain.White:
				sb.WriteByte('W')
			default:
				sb.WriteString(glyph)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
