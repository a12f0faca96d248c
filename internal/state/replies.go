// ABOUTME: Reply domain operations
// ABOUTME: One-shot character reply generation and user-published replies

package state

import (
	"fmt"

	"moireu/internal/identity"
	"moireu/internal/models"
)

// GenerateCharacterReplies synthesizes replies to a post from a random sample
// of characters (every profile except the local user's). Runs at most once
// per post for the lifetime of the document: the repliesGenerated guard makes
// a second call a no-op. Returns the replies appended by this call.
func (s *Store) GenerateCharacterReplies(postID string) ([]*models.Reply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := s.postByIDLocked(postID)
	if post == nil {
		return nil, ErrNotFound
	}
	if s.doc.RepliesGenerated[postID] {
		return nil, nil
	}

	var characters []*models.Profile
	for _, p := range s.doc.Profiles {
		if p.ID != s.doc.MyProfileID {
			characters = append(characters, p)
		}
	}

	var appended []*models.Reply
	if len(characters) > 0 {
		n := max(1, len(characters)/3)
		for _, i := range s.rng.Sample(len(characters), n) {
			character := characters[i]
			min, max := character.LikeRange()
			reply, err := models.NewReply(postID, character.ID, character.DisplayName,
				character.Username, characterReplyContent(post, character),
				s.rng.IntBetween(min, max))
			if err != nil {
				continue
			}
			s.doc.Replies[postID] = append(s.doc.Replies[postID], reply)
			appended = append(appended, reply)
		}
	}

	s.doc.RepliesGenerated[postID] = true
	return appended, s.persist()
}

// PublishReply appends a reply authored by the local user (or the placeholder
// identity when no local profile exists). The post's decorative reply counter
// is left untouched; it never tracks the real reply list.
func (s *Store) PublishReply(postID, content string) (*models.Reply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := s.postByIDLocked(postID)
	if post == nil {
		return nil, ErrNotFound
	}

	profileID := ""
	username := s.localUsernameLocked()
	displayName := identity.FallbackDisplayName(username)
	likesMin, likesMax := models.DefaultLikesMin, models.DefaultLikesMax
	if me := s.profileByIDLocked(s.doc.MyProfileID); me != nil {
		profileID = me.ID
		displayName = me.DisplayName
		username = me.Username
		likesMin, likesMax = me.LikeRange()
	}

	reply, err := models.NewReply(postID, profileID, displayName, username,
		content, s.rng.IntBetween(likesMin, likesMax))
	if err != nil {
		return nil, err
	}
	s.doc.Replies[postID] = append(s.doc.Replies[postID], reply)
	return reply, s.persist()
}

func characterReplyContent(post *models.Post, character *models.Profile) string {
	return fmt.Sprintf("Re: \"%s\" — %s couldn't stay quiet about this.",
		snippet(post.Content, 40), character.DisplayName)
}
