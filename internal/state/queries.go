// ABOUTME: Read-only snapshots of the document for render functions
// ABOUTME: Returns copies; callers never see live mutable state

package state

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"moireu/internal/identity"
	"moireu/internal/models"
)

// ConversationSummary is a list row for the dm-list view.
type ConversationSummary struct {
	Key          string
	Other        string
	OtherDisplay string
	LastText     string
	LastAt       time.Time
}

// Feed returns all posts, newest first.
func (s *Store) Feed() []models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts := make([]models.Post, 0, len(s.doc.Posts))
	for _, p := range s.doc.Posts {
		posts = append(posts, *p)
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts
}

// Profiles returns all profiles, newest first.
func (s *Store) Profiles() []models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles := make([]models.Profile, 0, len(s.doc.Profiles))
	for _, p := range s.doc.Profiles {
		profiles = append(profiles, *p)
	}
	sort.SliceStable(profiles, func(i, j int) bool {
		return profiles[i].CreatedAt.After(profiles[j].CreatedAt)
	})
	return profiles
}

// Profile looks up a profile by normalized username.
func (s *Store) Profile(username string) (models.Profile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p := s.profileByUsernameLocked(identity.Normalize(username)); p != nil {
		return *p, true
	}
	return models.Profile{}, false
}

// ProfileByID looks up a profile by id.
func (s *Store) ProfileByID(id string) (models.Profile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p := s.profileByIDLocked(id); p != nil {
		return *p, true
	}
	return models.Profile{}, false
}

// MyProfile returns the local user's profile, if one is set.
func (s *Store) MyProfile() (models.Profile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p := s.profileByIDLocked(s.doc.MyProfileID); p != nil {
		return *p, true
	}
	return models.Profile{}, false
}

// LocalUsername returns the local user's username or the placeholder.
func (s *Store) LocalUsername() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.localUsernameLocked()
}

// Post looks up a post by id.
func (s *Store) Post(id string) (models.Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p := s.postByIDLocked(id); p != nil {
		return *p, true
	}
	return models.Post{}, false
}

// ResolvePostID finds a post by full id or unique id prefix, returning the
// full id.
func (s *Store) ResolvePostID(idOrPrefix string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p := s.postByIDLocked(idOrPrefix); p != nil {
		return p.ID, nil
	}
	match := ""
	for _, p := range s.doc.Posts {
		if strings.HasPrefix(p.ID, idOrPrefix) {
			if match != "" {
				return "", fmt.Errorf("ambiguous post id prefix: %s", idOrPrefix)
			}
			match = p.ID
		}
	}
	if match == "" {
		return "", ErrNotFound
	}
	return match, nil
}

// RepliesFor returns the replies to a post in publication order.
func (s *Store) RepliesFor(postID string) []models.Reply {
	s.mu.Lock()
	defer s.mu.Unlock()

	replies := make([]models.Reply, 0, len(s.doc.Replies[postID]))
	for _, r := range s.doc.Replies[postID] {
		replies = append(replies, *r)
	}
	return replies
}

// RepliesGenerated reports whether character replies were already produced
// for the post.
func (s *Store) RepliesGenerated(postID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.RepliesGenerated[postID]
}

// Conversation returns a copy of the thread under the given key.
func (s *Store) Conversation(key string) (models.Conversation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.doc.DMs[key]
	if !ok {
		return models.Conversation{}, false
	}
	copied := models.Conversation{
		Participants: append([]string(nil), conv.Participants...),
		Messages:     append([]models.Message(nil), conv.Messages...),
	}
	return copied, true
}

// Conversations returns dm-list rows sorted by last activity, newest first.
// Threads with no messages sort last.
func (s *Store) Conversations() []ConversationSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	local := s.localUsernameLocked()
	rows := make([]ConversationSummary, 0, len(s.doc.DMs))
	for key, conv := range s.doc.DMs {
		row := ConversationSummary{Key: key, Other: conv.Other(local)}
		row.OtherDisplay = row.Other
		if p := s.profileByUsernameLocked(row.Other); p != nil {
			row.OtherDisplay = p.DisplayName
		}
		if last := conv.LastMessage(); last != nil {
			row.LastText = last.Text
			row.LastAt = last.CreatedAt
		}
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].LastAt.After(rows[j].LastAt)
	})
	return rows
}

// UniverseText returns the freeform universe blob.
func (s *Store) UniverseText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.UniverseText
}
