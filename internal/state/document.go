// ABOUTME: The root state document and its seed generator
// ABOUTME: One JSON-serializable object holds the whole application state

package state

import (
	"encoding/json"

	"moireu/internal/models"
	"moireu/internal/rng"
)

// Document is the root state object. It is serialized wholesale on every
// mutation and owned exclusively by one Store for the session.
type Document struct {
	Profiles         []*models.Profile               `json:"profiles"`
	Posts            []*models.Post                  `json:"posts"`
	DMs              map[string]*models.Conversation `json:"dms"`
	MyProfileID      string                          `json:"myProfileId"`
	UniverseText     string                          `json:"universeText"`
	Replies          map[string][]*models.Reply      `json:"replies"`
	RepliesGenerated map[string]bool                 `json:"repliesGenerated"`
}

// DefaultUniverseText seeds the freeform universe blob.
const DefaultUniverseText = `The city of Moireu sits where three rivers cross.
Write anything about your world here: places, rumors, house rules.`

// NewDocument returns an empty document with all maps initialized.
func NewDocument() *Document {
	return &Document{
		Profiles:         []*models.Profile{},
		Posts:            []*models.Post{},
		DMs:              map[string]*models.Conversation{},
		Replies:          map[string][]*models.Reply{},
		RepliesGenerated: map[string]bool{},
	}
}

// Seed produces the default document used when no stored document exists:
// a local-user profile, one character, a post from each, one conversation
// with a single message, and the default universe text. Like and reply
// counts are drawn from src, so the shape is fixed but the numbers vary.
func Seed(src rng.Source) *Document {
	doc := NewDocument()

	me, _ := models.NewProfile(models.ProfileInput{
		DisplayName: "You",
		Username:    "you",
		Bio:         "My main profile",
		Description: "Player profile",
		Followers:   42,
		LikesMin:    5,
		LikesMax:    150,
	})
	aria, _ := models.NewProfile(models.ProfileInput{
		DisplayName:   "Aria",
		Username:      "aria",
		Bio:           "Wandering bard",
		Description:   "Plays lute.",
		Relationships: "friend of You",
		Followers:     128,
		LikesMin:      20,
		LikesMax:      400,
	})
	doc.Profiles = append(doc.Profiles, me, aria)
	doc.MyProfileID = me.ID

	ariaMin, ariaMax := aria.LikeRange()
	ariaPost, _ := models.NewPost(aria.ID, aria.DisplayName, aria.Username,
		"Hello world! **I sing** tonight. #bard",
		src.IntBetween(ariaMin, ariaMax), src.IntBetween(replyCountMin, replyCountMax))
	meMin, meMax := me.LikeRange()
	mePost, _ := models.NewPost(me.ID, me.DisplayName, me.Username,
		"Starting Moireu — *client-only*!",
		src.IntBetween(meMin, meMax), src.IntBetween(replyCountMin, replyCountMax))
	doc.Posts = append(doc.Posts, ariaPost, mePost)

	conv := models.NewConversation(me.Username, aria.Username)
	hello, _ := models.NewMessage(aria.Username, "Hey! Want to RP?")
	conv.Messages = append(conv.Messages, *hello)
	doc.DMs[models.ConversationKey(aria.Username)] = conv

	doc.UniverseText = DefaultUniverseText
	return doc
}

// Marshal serializes the document to the stored string form.
func (d *Document) Marshal() (string, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// ParseDocument deserializes a stored string. Missing maps are initialized
// so older blobs that predate a field still load.
func ParseDocument(raw string) (*Document, error) {
	var doc Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, err
	}
	if doc.Profiles == nil {
		doc.Profiles = []*models.Profile{}
	}
	if doc.Posts == nil {
		doc.Posts = []*models.Post{}
	}
	if doc.DMs == nil {
		doc.DMs = map[string]*models.Conversation{}
	}
	if doc.Replies == nil {
		doc.Replies = map[string][]*models.Reply{}
	}
	if doc.RepliesGenerated == nil {
		doc.RepliesGenerated = map[string]bool{}
	}
	return &doc, nil
}
