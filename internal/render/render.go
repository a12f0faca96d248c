// ABOUTME: Pure render functions: state snapshot + route params -> view text
// ABOUTME: Shared styles and the router registration table

package render

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"moireu/internal/markdown"
	"moireu/internal/router"
	"moireu/internal/state"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	faintStyle    = lipgloss.NewStyle().Faint(true)
	notFoundStyle = lipgloss.NewStyle().Faint(true).Italic(true)

	boldTagRe   = regexp.MustCompile(`<strong>(.*?)</strong>`)
	italicTagRe = regexp.MustCompile(`<em>(.*?)</em>`)
)

// Register wires every view's render function into the router. Render
// functions only read the store; persistence stays with domain operations.
func Register(r *router.Router, store *state.Store) {
	r.Handle(router.ViewFeed, func(p router.Params) string { return Feed(store, p) })
	r.Handle(router.ViewPostEditor, func(p router.Params) string { return PostEditor(store, p) })
	r.Handle(router.ViewProfileEditor, func(p router.Params) string { return ProfileEditor(store, p) })
	r.Handle(router.ViewCharacterList, func(p router.Params) string { return CharacterList(store, p) })
	r.Handle(router.ViewDMList, func(p router.Params) string { return DMList(store, p) })
	r.Handle(router.ViewDMChat, func(p router.Params) string { return DMChat(store, p) })
	r.Handle(router.ViewReplies, func(p router.Params) string { return Replies(store, p) })
	r.Handle(router.ViewReplyEditor, func(p router.Params) string { return ReplyEditor(store, p) })
	r.Handle(router.ViewUniverse, func(p router.Params) string { return Universe(store, p) })
}

// content runs text through the markdown-lite renderer and maps its emphasis
// markup onto terminal styles.
func content(text string) string {
	out := markdown.Render(text)
	out = boldTagRe.ReplaceAllStringFunc(out, func(m string) string {
		return titleStyle.Render(boldTagRe.FindStringSubmatch(m)[1])
	})
	out = italicTagRe.ReplaceAllStringFunc(out, func(m string) string {
		return lipgloss.NewStyle().Italic(true).Render(italicTagRe.FindStringSubmatch(m)[1])
	})
	out = strings.ReplaceAll(out, "<br>", "\n")
	out = strings.ReplaceAll(out, "&lt;", "<")
	out = strings.ReplaceAll(out, "&gt;", ">")
	out = strings.ReplaceAll(out, "&amp;", "&")
	return out
}

func notFound(what string) string {
	return notFoundStyle.Render(what + " not found.")
}
