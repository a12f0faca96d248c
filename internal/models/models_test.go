// ABOUTME: Tests for Moireu data models
// ABOUTME: Verifies constructor validation, defaults, and clamping

package models

import (
	"errors"
	"testing"
)

func TestNewProfile(t *testing.T) {
	profile, err := NewProfile(ProfileInput{
		DisplayName: "Aria",
		Username:    "@aria",
		Bio:         "Wandering bard",
		Followers:   128,
		LikesMin:    20,
		LikesMax:    400,
	})
	if err != nil {
		t.Fatalf("NewProfile failed: %v", err)
	}
	if profile.ID == "" {
		t.Error("expected non-empty ID")
	}
	if profile.Username != "aria" {
		t.Errorf("expected username 'aria', got '%s'", profile.Username)
	}
	if profile.DisplayName != "Aria" {
		t.Errorf("expected displayName 'Aria', got '%s'", profile.DisplayName)
	}
	if profile.CreatedAt.IsZero() {
		t.Error("expected createdAt to be set")
	}
}

func TestNewProfileEmptyUsername(t *testing.T) {
	_, err := NewProfile(ProfileInput{Username: "  @ "})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "username" {
		t.Errorf("expected field 'username', got '%s'", verr.Field)
	}
}

func TestNewProfileDefaultsDisplayName(t *testing.T) {
	profile, err := NewProfile(ProfileInput{Username: "bard"})
	if err != nil {
		t.Fatalf("NewProfile failed: %v", err)
	}
	if profile.DisplayName != "bard" {
		t.Errorf("expected displayName to default to username, got '%s'", profile.DisplayName)
	}
}

func TestNewProfileClampsNegatives(t *testing.T) {
	profile, err := NewProfile(ProfileInput{Username: "bard", Followers: -5, LikesMin: -1, LikesMax: -2})
	if err != nil {
		t.Fatalf("NewProfile failed: %v", err)
	}
	if profile.Followers != 0 || profile.LikesMin != 0 || profile.LikesMax != 0 {
		t.Errorf("expected negative numerics clamped to 0, got %d/%d/%d",
			profile.Followers, profile.LikesMin, profile.LikesMax)
	}
}

func TestLikeRangeSwapsInvertedBounds(t *testing.T) {
	p := &Profile{LikesMin: 100, LikesMax: 10}
	min, max := p.LikeRange()
	if min != 10 || max != 100 {
		t.Errorf("expected swapped range [10,100], got [%d,%d]", min, max)
	}
	if p.LikesMin != 100 || p.LikesMax != 10 {
		t.Error("LikeRange must not mutate stored bounds")
	}
}

func TestNewPost(t *testing.T) {
	post, err := NewPost("p_1", "Aria", "aria", "  hello world  ", 42, 17)
	if err != nil {
		t.Fatalf("NewPost failed: %v", err)
	}
	if post.Content != "hello world" {
		t.Errorf("expected trimmed content, got '%s'", post.Content)
	}
	if post.Likes != 42 || post.Replies != 17 {
		t.Errorf("expected likes 42 / replies 17, got %d/%d", post.Likes, post.Replies)
	}
}

func TestNewPostEmptyContent(t *testing.T) {
	_, err := NewPost("p_1", "Aria", "aria", "   ", 1, 1)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestNewReplyEmptyContent(t *testing.T) {
	_, err := NewReply("post_1", "p_1", "Aria", "aria", "", 1)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestNewMessageEmptyText(t *testing.T) {
	_, err := NewMessage("you", "  ")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestConversationKey(t *testing.T) {
	if got := ConversationKey("aria"); got != "dm_aria" {
		t.Errorf("expected 'dm_aria', got '%s'", got)
	}
}

func TestConversationOther(t *testing.T) {
	conv := NewConversation("you", "aria")
	if got := conv.Other("you"); got != "aria" {
		t.Errorf("expected 'aria', got '%s'", got)
	}
	// Self-conversation falls back to the first participant.
	self := NewConversation("you", "you")
	if got := self.Other("you"); got != "you" {
		t.Errorf("expected fallback 'you', got '%s'", got)
	}
}
