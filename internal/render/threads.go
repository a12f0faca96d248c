// ABOUTME: Thread views: DM list, DM chat, replies, reply editor
// ABOUTME: Missing conversations and posts render inline placeholders

package render

import (
	"fmt"
	"strings"

	"moireu/internal/models"
	"moireu/internal/router"
	"moireu/internal/state"
)

// DMList renders conversations sorted by last activity.
func DMList(store *state.Store, _ router.Params) string {
	rows := store.Conversations()
	if len(rows) == 0 {
		return faintStyle.Render("No conversations yet")
	}

	var s strings.Builder
	s.WriteString(titleStyle.Render("DIRECT MESSAGES") + "\n\n")
	for _, row := range rows {
		s.WriteString(fmt.Sprintf("%s @%s\n", headerStyle.Render(row.OtherDisplay), row.Other))
		if row.LastText != "" {
			s.WriteString(faintStyle.Render(preview(row.LastText)) + "\n")
		}
		s.WriteString("\n")
	}
	return s.String()
}

// DMChat renders one conversation. A missing conversation is an inline
// placeholder, never an error.
func DMChat(store *state.Store, params router.Params) string {
	key := params.String("conversationKey")
	if key == "" {
		if other := params.String("otherUsername"); other != "" {
			key = models.ConversationKey(other)
		}
	}
	conv, ok := store.Conversation(key)
	if !ok {
		return notFound("Conversation")
	}

	local := store.LocalUsername()
	other := conv.Other(local)
	otherDisplay := other
	if p, ok := store.Profile(other); ok {
		otherDisplay = p.DisplayName
	}

	var s strings.Builder
	s.WriteString(fmt.Sprintf("%s @%s\n\n", titleStyle.Render(otherDisplay), other))
	for _, m := range conv.Messages {
		who := headerStyle.Render(m.From)
		if m.From == local {
			who = titleStyle.Render("me")
		}
		s.WriteString(fmt.Sprintf("%s  %s\n", who, m.Text))
	}
	return s.String()
}

// Replies renders a post with its real replies. A missing post is an inline
// placeholder.
func Replies(store *state.Store, params router.Params) string {
	post, ok := store.Post(params.String("postId"))
	if !ok {
		return notFound("Post")
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render(post.DisplayName))
	s.WriteString(faintStyle.Render(fmt.Sprintf(" @%s\n", post.Username)))
	s.WriteString(content(post.Content) + "\n")
	s.WriteString(faintStyle.Render(fmt.Sprintf("♡ %d   ⌯⌲ %d replies\n\n", post.Likes, post.Replies)))

	replies := store.RepliesFor(post.ID)
	if len(replies) == 0 {
		s.WriteString(faintStyle.Render("No replies yet"))
		return s.String()
	}
	for _, r := range replies {
		s.WriteString(headerStyle.Render(r.DisplayName))
		s.WriteString(faintStyle.Render(fmt.Sprintf(" @%s · ♡ %d\n", r.Username, r.Likes)))
		s.WriteString(content(r.Content) + "\n\n")
	}
	return s.String()
}

// ReplyEditor renders the reply compose form for a post.
func ReplyEditor(store *state.Store, params router.Params) string {
	post, ok := store.Post(params.String("postId"))
	if !ok {
		return notFound("Post")
	}

	var s strings.Builder
	s.WriteString(titleStyle.Render("REPLY") + "\n\n")
	s.WriteString(faintStyle.Render(fmt.Sprintf("Replying to @%s: %s\n", post.Username, preview(post.Content))))
	s.WriteString("\nWrite your reply and press enter.")
	return s.String()
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) > 140 {
		return string(runes[:140]) + "…"
	}
	return text
}
