// ABOUTME: Per-view projections of the state document
// ABOUTME: Feed, editors, character list, and universe views

package render

import (
	"fmt"
	"strings"

	"moireu/internal/router"
	"moireu/internal/state"
)

// Feed renders all posts, newest first.
func Feed(store *state.Store, _ router.Params) string {
	posts := store.Feed()
	if len(posts) == 0 {
		return faintStyle.Render("No posts yet")
	}

	var s strings.Builder
	s.WriteString(titleStyle.Render("GLOBAL FEED") + "\n\n")
	for _, p := range posts {
		s.WriteString(headerStyle.Render(p.DisplayName))
		s.WriteString(faintStyle.Render(fmt.Sprintf(" @%s · %s\n", p.Username, p.CreatedAt.Format("Jan 02 15:04"))))
		s.WriteString(content(p.Content) + "\n")
		s.WriteString(faintStyle.Render(fmt.Sprintf("♡ %d   ⌯⌲ %d replies   [%s]\n\n", p.Likes, p.Replies, p.ID)))
	}
	return s.String()
}

// PostEditor renders the compose form, prefilled from the profile named in
// params or from the local user.
func PostEditor(store *state.Store, params router.Params) string {
	username := params.String("username")
	profile, ok := store.Profile(username)
	if !ok {
		profile, ok = store.MyProfile()
	}

	var s strings.Builder
	s.WriteString(titleStyle.Render("POST") + "\n\n")
	if ok {
		min, max := profile.LikeRange()
		s.WriteString(fmt.Sprintf("As: %s @%s\n", profile.DisplayName, profile.Username))
		s.WriteString(faintStyle.Render(fmt.Sprintf("likes %d–%d · replies 5–250\n", min, max)))
	} else {
		s.WriteString(faintStyle.Render("No profile yet; posting creates one\n"))
	}
	s.WriteString("\nWrite your post and press enter.")
	return s.String()
}

// ProfileEditor renders the profile form for the username in params, or a
// blank form for a new profile.
func ProfileEditor(store *state.Store, params router.Params) string {
	username := params.String("username")
	var s strings.Builder
	s.WriteString(titleStyle.Render("PROFILE") + "\n\n")

	profile, ok := store.Profile(username)
	if username != "" && !ok {
		return s.String() + notFound("Profile")
	}
	if !ok {
		s.WriteString(faintStyle.Render("New profile\n"))
		return s.String()
	}

	s.WriteString(fmt.Sprintf("%s @%s\n", headerStyle.Render(profile.DisplayName), profile.Username))
	if profile.Bio != "" {
		s.WriteString(content(profile.Bio) + "\n")
	}
	if profile.Description != "" {
		s.WriteString(faintStyle.Render(profile.Description) + "\n")
	}
	if profile.Relationships != "" {
		s.WriteString(faintStyle.Render("Relationships: "+profile.Relationships) + "\n")
	}
	min, max := profile.LikeRange()
	s.WriteString(faintStyle.Render(fmt.Sprintf("%d followers · likes %d–%d\n", profile.Followers, min, max)))
	return s.String()
}

// CharacterList renders all profiles, newest first.
func CharacterList(store *state.Store, _ router.Params) string {
	profiles := store.Profiles()
	if len(profiles) == 0 {
		return faintStyle.Render("No characters yet")
	}

	me, hasMe := store.MyProfile()
	var s strings.Builder
	s.WriteString(titleStyle.Render("CHARACTERS") + "\n\n")
	for _, p := range profiles {
		marker := ""
		if hasMe && p.ID == me.ID {
			marker = faintStyle.Render(" (me)")
		}
		s.WriteString(fmt.Sprintf("%s @%s%s\n", headerStyle.Render(p.DisplayName), p.Username, marker))
	}
	return s.String()
}

// Universe renders the freeform universe text.
func Universe(store *state.Store, _ router.Params) string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("UNIVERSE") + "\n\n")
	s.WriteString(content(store.UniverseText()))
	return s.String()
}
