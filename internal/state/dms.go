// ABOUTME: Direct-message domain operations
// ABOUTME: Idempotent conversation creation and message appending

package state

import (
	"moireu/internal/identity"
	"moireu/internal/models"
)

// OpenOrCreateConversation returns the conversation key for the given
// counterpart, creating an empty two-party thread on first use. Idempotent:
// a second call with the same username reuses the existing conversation.
func (s *Store) OpenOrCreateConversation(otherUsername string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	other := identity.Normalize(otherUsername)
	if other == "" {
		return "", &models.ValidationError{Field: "username", Reason: "required"}
	}

	key := models.ConversationKey(other)
	if _, ok := s.doc.DMs[key]; ok {
		return key, nil
	}
	s.doc.DMs[key] = models.NewConversation(s.localUsernameLocked(), other)
	return key, s.persist()
}

// AppendMessage appends a message from the local user to the conversation.
// The text must be non-empty after trimming; messages are never deduplicated.
func (s *Store) AppendMessage(conversationKey, text string) (*models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.doc.DMs[conversationKey]
	if !ok {
		return nil, ErrNotFound
	}

	msg, err := models.NewMessage(s.localUsernameLocked(), text)
	if err != nil {
		return nil, err
	}
	conv.Messages = append(conv.Messages, *msg)
	return msg, s.persist()
}
