package transcript

import (
	"strings"
)

// bulletMarkers are the line prefixes recognized as list items. The server
// emits both the bullet glyph and a plain hyphen, and some deployments have
// been observed sending the glyph mis-encoded, so all three are accepted.
var bulletMarkers = []string{"•", "â¢", "-"}

// FormatBody converts a raw message body into markdown suitable for the
// terminal renderer.
//
// Lines are classified one at a time: consecutive bullet lines are grouped
// into a single list block with the marker stripped; non-bullet lines with
// visible text become individual blocks; empty lines become explicit line
// breaks. A list still open at end of input is closed. If no markup is
// produced at all, the sanitized raw text is returned as-is.
//
// Every fragment is passed through Sanitize before it can reach the
// terminal, so message content can never smuggle in control sequences.
func FormatBody(content string) string {
	var blocks []string
	var list []string

	closeList := func() {
		if len(list) > 0 {
			blocks = append(blocks, strings.Join(list, "\n"))
			list = nil
		}
	}

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)

		if item, ok := stripBullet(trimmed); ok {
			list = append(list, "- "+Escape(strings.TrimSpace(item)))
			continue
		}

		closeList()
		if trimmed != "" {
			blocks = append(blocks, Escape(trimmed))
		} else {
			// Explicit line break for a blank line.
			blocks = append(blocks, "")
		}
	}
	closeList()

	out := strings.Join(blocks, "\n")
	if strings.TrimSpace(out) == "" && strings.TrimSpace(content) != "" {
		// Degenerate input that formatted away to nothing; show it raw.
		return Escape(content)
	}
	return out
}

// stripBullet reports whether a trimmed line is a bullet item and returns
// the text after the marker.
func stripBullet(line string) (string, bool) {
	for _, marker := range bulletMarkers {
		if strings.HasPrefix(line, marker) {
			return line[len(marker):], true
		}
	}
	return "", false
}

// Escape neutralizes a text fragment before it joins the rendered markup:
// control characters are stripped and HTML-significant characters are
// entity-escaped so the markdown renderer can never interpret message
// content as raw markup. The renderer resolves the entities back to plain
// visible text.
func Escape(s string) string {
	s = Sanitize(s)
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

// Sanitize strips control characters from user- or server-supplied text so
// it can never be interpreted as terminal escape sequences. Newlines and
// tabs survive; everything else below 0x20, and DEL, is dropped. This is a
// hard security invariant, not a formatting nicety.
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}
