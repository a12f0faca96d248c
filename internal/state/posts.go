// ABOUTME: Post domain operations
// ABOUTME: savePost with implicit author creation and the character-post batch

package state

import (
	"fmt"
	"strings"

	"moireu/internal/identity"
	"moireu/internal/models"
)

// SavePost appends a post by the given author, creating a default profile for
// an unknown username. Likes are drawn from the author's like range, the
// decorative reply count from [5,250]. When the author is the local user,
// every other profile posts one templated response of its own in the same
// operation, before the single persist.
func (s *Store) SavePost(authorUsername, displayName, content string) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Validate content before any profile mutation.
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, &models.ValidationError{Field: "content", Reason: "required"}
	}

	username := identity.Normalize(authorUsername)
	if username == "" {
		username = s.localUsernameLocked()
	}
	displayName = strings.TrimSpace(displayName)

	author := s.profileByUsernameLocked(username)
	if author == nil {
		created, err := models.NewProfile(models.ProfileInput{
			DisplayName: displayName,
			Username:    username,
			Followers:   models.DefaultFollowers,
			LikesMin:    models.DefaultLikesMin,
			LikesMax:    models.DefaultLikesMax,
		})
		if err != nil {
			return nil, err
		}
		s.doc.Profiles = append(s.doc.Profiles, created)
		author = created
	}
	if displayName == "" {
		displayName = author.DisplayName
	}

	min, max := author.LikeRange()
	post, err := models.NewPost(author.ID, displayName, username, content,
		s.rng.IntBetween(min, max), s.rng.IntBetween(replyCountMin, replyCountMax))
	if err != nil {
		return nil, err
	}
	s.doc.Posts = append(s.doc.Posts, post)

	if author.ID == s.doc.MyProfileID {
		s.appendCharacterPostsLocked(post)
	}

	return post, s.persist()
}

// appendCharacterPostsLocked synthesizes one response post per character when
// the local user posts. All of them land before the caller persists, so the
// batch is atomic with the primary post.
func (s *Store) appendCharacterPostsLocked(origin *models.Post) {
	for _, character := range s.doc.Profiles {
		if character.ID == origin.ProfileID {
			continue
		}
		min, max := character.LikeRange()
		reaction, err := models.NewPost(character.ID, character.DisplayName, character.Username,
			characterPostContent(origin, character),
			s.rng.IntBetween(min, max),
			s.rng.IntBetween(characterReplyCountMin, characterReplyCountMax))
		if err != nil {
			continue
		}
		s.doc.Posts = append(s.doc.Posts, reaction)
	}
}

func characterPostContent(origin *models.Post, character *models.Profile) string {
	return fmt.Sprintf("Saw @%s post *\"%s\"* — %s has thoughts about this!",
		origin.Username, snippet(origin.Content, 60), character.DisplayName)
}

// snippet returns at most n runes of text, with an ellipsis when truncated.
func snippet(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n]) + "…"
}

func (s *Store) postByIDLocked(id string) *models.Post {
	for _, p := range s.doc.Posts {
		if p.ID == id {
			return p
		}
	}
	return nil
}
