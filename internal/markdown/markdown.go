// ABOUTME: Markdown-lite renderer for post and profile text
// ABOUTME: Escapes first, then applies bold/italic/line-break substitutions

package markdown

import (
	"regexp"
	"strings"
)

var (
	boldRe   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicRe = regexp.MustCompile(`\*(.+?)\*`)
)

// Render converts raw text to formatted markup: **bold** and *italic*
// delimiters become emphasis tags and newlines become line breaks. The text
// is HTML-escaped before any substitution, so content can never inject
// markup of its own.
func Render(text string) string {
	out := escape(text)
	out = boldRe.ReplaceAllString(out, "<strong>$1</strong>")
	out = italicRe.ReplaceAllString(out, "<em>$1</em>")
	out = strings.ReplaceAll(out, "\n", "<br>")
	return out
}

func escape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
