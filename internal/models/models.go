// ABOUTME: Core data models for profiles, posts, replies, conversations, messages
// ABOUTME: Provides validating constructor functions with enumerated defaults

package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"moireu/internal/identity"
)

// Default values for profiles created implicitly (posting under an unknown
// username) and for blank profile forms.
const (
	DefaultFollowers = 0
	DefaultLikesMin  = 1
	DefaultLikesMax  = 25
)

// Profile is a user or character identity record. Username is the uniqueness
// key across the document; ID is opaque, stable, and never reused.
type Profile struct {
	ID            string    `json:"id"`
	DisplayName   string    `json:"displayName"`
	Username      string    `json:"username"`
	Bio           string    `json:"bio"`
	Description   string    `json:"description"`
	Relationships string    `json:"relationships"`
	Followers     int       `json:"followers"`
	LikesMin      int       `json:"likesMin"`
	LikesMax      int       `json:"likesMax"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Post is a feed entry. DisplayName and Username are denormalized copies taken
// at creation time; the ProfileID back-reference is weak and may dangle after
// a profile delete. Replies is a decorative count, independent of the actual
// reply list for the post.
type Post struct {
	ID          string    `json:"id"`
	ProfileID   string    `json:"profileId"`
	DisplayName string    `json:"displayName"`
	Username    string    `json:"username"`
	Content     string    `json:"content"`
	Likes       int       `json:"likes"`
	Replies     int       `json:"replies"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Reply is a response to a specific post. ProfileID may be empty when the
// authoring profile was deleted before the reply was written.
type Reply struct {
	ID          string    `json:"id"`
	PostID      string    `json:"postId"`
	ProfileID   string    `json:"profileId"`
	DisplayName string    `json:"displayName"`
	Username    string    `json:"username"`
	Content     string    `json:"content"`
	Likes       int       `json:"likes"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Message is a single direct message within a conversation.
type Message struct {
	ID        string    `json:"id"`
	From      string    `json:"from"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// Conversation is a two-party DM thread, keyed in the document by
// ConversationKey of the counterpart's username.
type Conversation struct {
	Participants []string  `json:"participants"`
	Messages     []Message `json:"messages"`
}

// ProfileInput carries the raw form fields for creating or editing a profile.
type ProfileInput struct {
	DisplayName   string
	Username      string
	Bio           string
	Description   string
	Relationships string
	Followers     int
	LikesMin      int
	LikesMax      int
}

// ConversationKey derives the document key for a DM thread with the given
// counterpart.
func ConversationKey(otherUsername string) string {
	return "dm_" + otherUsername
}

// NewProfile creates a profile from input, normalizing the username and
// clamping negative numeric fields to zero. Returns a ValidationError if the
// normalized username is empty.
func NewProfile(input ProfileInput) (*Profile, error) {
	username := identity.Normalize(input.Username)
	if username == "" {
		return nil, &ValidationError{Field: "username", Reason: "required"}
	}
	displayName := strings.TrimSpace(input.DisplayName)
	if displayName == "" {
		displayName = username
	}
	return &Profile{
		ID:            newID("p"),
		DisplayName:   displayName,
		Username:      username,
		Bio:           input.Bio,
		Description:   input.Description,
		Relationships: input.Relationships,
		Followers:     clampNonNegative(input.Followers),
		LikesMin:      clampNonNegative(input.LikesMin),
		LikesMax:      clampNonNegative(input.LikesMax),
		CreatedAt:     time.Now(),
	}, nil
}

// NewPost creates a post authored by the given profile identity. Likes and
// replies are drawn by the caller; content must be non-empty after trimming.
func NewPost(profileID, displayName, username, content string, likes, replies int) (*Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, &ValidationError{Field: "content", Reason: "required"}
	}
	return &Post{
		ID:          newID("post"),
		ProfileID:   profileID,
		DisplayName: displayName,
		Username:    username,
		Content:     content,
		Likes:       clampNonNegative(likes),
		Replies:     clampNonNegative(replies),
		CreatedAt:   time.Now(),
	}, nil
}

// NewReply creates a reply to a post. Content must be non-empty after trimming.
func NewReply(postID, profileID, displayName, username, content string, likes int) (*Reply, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, &ValidationError{Field: "content", Reason: "required"}
	}
	return &Reply{
		ID:          newID("r"),
		PostID:      postID,
		ProfileID:   profileID,
		DisplayName: displayName,
		Username:    username,
		Content:     content,
		Likes:       clampNonNegative(likes),
		CreatedAt:   time.Now(),
	}, nil
}

// NewMessage creates a direct message. Text must be non-empty after trimming.
func NewMessage(from, text string) (*Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &ValidationError{Field: "text", Reason: "required"}
	}
	return &Message{
		ID:        newID("m"),
		From:      from,
		Text:      text,
		CreatedAt: time.Now(),
	}, nil
}

// NewConversation creates an empty two-party conversation.
func NewConversation(localUsername, otherUsername string) *Conversation {
	return &Conversation{
		Participants: []string{localUsername, otherUsername},
		Messages:     []Message{},
	}
}

// Other returns the participant that is not the given local username, falling
// back to the first participant.
func (c *Conversation) Other(localUsername string) string {
	for _, p := range c.Participants {
		if p != localUsername {
			return p
		}
	}
	if len(c.Participants) > 0 {
		return c.Participants[0]
	}
	return ""
}

// LastMessage returns the most recent message, or nil for an empty thread.
func (c *Conversation) LastMessage() *Message {
	if len(c.Messages) == 0 {
		return nil
	}
	return &c.Messages[len(c.Messages)-1]
}

// LikeRange returns the profile's inclusive like range with inverted bounds
// swapped. The stored fields are left as entered.
func (p *Profile) LikeRange() (min, max int) {
	min, max = p.LikesMin, p.LikesMax
	if min > max {
		min, max = max, min
	}
	return min, max
}

func newID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}

func clampNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
