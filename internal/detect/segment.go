package detect

import (
	"strings"
	"unicode"
)

func isTerminal(r rune) bool {
	switch r {
	case '.', '!', '?', '。', '！', '？':
		return true
	}
	return false
}

// Segment splits text into ordered sentences. A boundary is a terminal mark
// followed by whitespace, or the end of the text; a mark glued to the next
// character does not split. Pieces are trimmed and empty pieces dropped, so
// sentence indices are dense. Terminal punctuation stays on the sentence.
func Segment(text string) []string {
	runes := []rune(text)
	var out []string
	start := 0
	for i := 0; i < len(runes); i++ {
		if !isTerminal(runes[i]) {
			continue
		}
		next := i + 1
		if next < len(runes) && !unicode.IsSpace(runes[next]) {
			continue
		}
		if s := strings.TrimSpace(string(runes[start:next])); s != "" {
			out = append(out, s)
		}
		start = next
	}
	if s := strings.TrimSpace(string(runes[start:])); s != "" {
		out = append(out, s)
	}
	return out
}
