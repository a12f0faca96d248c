// ABOUTME: Tests for profile save/delete operations
// ABOUTME: Verifies collision handling, adoption, and non-cascading delete

package state

import (
	"errors"
	"testing"

	"moireu/internal/models"
	"moireu/internal/storage"
)

func TestSaveProfileCreate(t *testing.T) {
	store, blob := newTestStore(t)

	profile, err := store.SaveProfile(models.ProfileInput{
		DisplayName: "Bard",
		Username:    "@bard",
		LikesMin:    1,
		LikesMax:    10,
	}, "", false)
	if err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}
	if profile.Username != "bard" {
		t.Errorf("expected normalized username 'bard', got '%s'", profile.Username)
	}
	if blob.Saves != 1 {
		t.Errorf("expected one persist, got %d", blob.Saves)
	}
	assertUsernamesUnique(t, store)
}

func TestSaveProfileEmptyUsername(t *testing.T) {
	store, blob := newTestStore(t)

	_, err := store.SaveProfile(models.ProfileInput{Username: " @ "}, "", false)
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if blob.Saves != 0 {
		t.Error("validation failure must not persist")
	}
}

func TestSaveProfileEditPreservesIdentity(t *testing.T) {
	store, _ := newTestStore(t)
	aria, _ := store.Profile("aria")

	updated, err := store.SaveProfile(models.ProfileInput{
		DisplayName: "Aria the Red",
		Username:    "aria",
		Bio:         "Now with a sword",
		LikesMin:    30,
		LikesMax:    300,
	}, aria.ID, false)
	if err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}
	if updated.ID != aria.ID {
		t.Error("edit must preserve profile id")
	}
	if !updated.CreatedAt.Equal(aria.CreatedAt) {
		t.Error("edit must preserve createdAt")
	}
	if updated.DisplayName != "Aria the Red" {
		t.Errorf("expected updated displayName, got '%s'", updated.DisplayName)
	}
}

func TestSaveProfileCollisionAbortsWithoutOverwrite(t *testing.T) {
	store, blob := newTestStore(t)
	lute, err := store.SaveProfile(models.ProfileInput{Username: "lute"}, "", false)
	if err != nil {
		t.Fatalf("setup SaveProfile failed: %v", err)
	}
	savesBefore := blob.Saves

	// Rename lute to the already-claimed "aria".
	_, err = store.SaveProfile(models.ProfileInput{Username: "aria"}, lute.ID, false)
	var cerr *CollisionError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected CollisionError, got %v", err)
	}
	if cerr.Username != "aria" {
		t.Errorf("expected collision on 'aria', got '%s'", cerr.Username)
	}
	if blob.Saves != savesBefore {
		t.Error("aborted collision must not persist")
	}

	// Both profiles unchanged.
	if _, ok := store.Profile("aria"); !ok {
		t.Error("existing 'aria' profile must survive an aborted collision")
	}
	if _, ok := store.Profile("lute"); !ok {
		t.Error("editing profile must be unchanged after an aborted collision")
	}
}

func TestSaveProfileCollisionOverwriteRemovesExisting(t *testing.T) {
	store, _ := newTestStore(t)
	lute, err := store.SaveProfile(models.ProfileInput{Username: "lute"}, "", false)
	if err != nil {
		t.Fatalf("setup SaveProfile failed: %v", err)
	}

	updated, err := store.SaveProfile(models.ProfileInput{Username: "aria"}, lute.ID, true)
	if err != nil {
		t.Fatalf("SaveProfile with overwrite failed: %v", err)
	}
	if updated.ID != lute.ID {
		t.Error("overwrite must keep the edited profile, not the removed one")
	}

	count := 0
	for _, p := range store.Profiles() {
		if p.Username == "aria" {
			count++
			if p.ID != lute.ID {
				t.Error("surviving 'aria' must be the edited profile")
			}
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one 'aria' profile, got %d", count)
	}
	assertUsernamesUnique(t, store)
}

func TestSaveProfileOverwriteWithMissingEditingIDLeavesDocumentAlone(t *testing.T) {
	store, blob := newTestStore(t)
	savesBefore := blob.Saves

	// Collide against the local user's own username so a leaked removal would
	// also clear myProfileId.
	_, err := store.SaveProfile(models.ProfileInput{Username: "you"}, "p_missing", true)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if blob.Saves != savesBefore {
		t.Error("failed edit must not persist")
	}
	if _, ok := store.Profile("you"); !ok {
		t.Error("colliding profile must survive a failed overwrite edit")
	}
	if _, ok := store.MyProfile(); !ok {
		t.Error("local user designation must survive a failed overwrite edit")
	}
}

func TestSaveProfileFirstCreatedIsAdopted(t *testing.T) {
	blob := &storage.MemBlob{}
	store := New(NewDocument(), blob, lowSource{})

	profile, err := store.SaveProfile(models.ProfileInput{Username: "wanderer"}, "", false)
	if err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}
	me, ok := store.MyProfile()
	if !ok || me.ID != profile.ID {
		t.Error("first created profile must become the local user's identity")
	}
}

func TestSaveProfileEditDoesNotAdopt(t *testing.T) {
	doc := NewDocument()
	orphan, _ := models.NewProfile(models.ProfileInput{Username: "ghost"})
	doc.Profiles = append(doc.Profiles, orphan)
	store := New(doc, &storage.MemBlob{}, lowSource{})

	if _, err := store.SaveProfile(models.ProfileInput{Username: "ghost", Bio: "updated"}, orphan.ID, false); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}
	if _, ok := store.MyProfile(); ok {
		t.Error("editing an existing profile must not adopt it as the local user")
	}
}

func TestDeleteProfileDoesNotCascade(t *testing.T) {
	store, _ := newTestStore(t)
	aria, _ := store.Profile("aria")

	if err := store.DeleteProfile(aria.ID); err != nil {
		t.Fatalf("DeleteProfile failed: %v", err)
	}

	if _, ok := store.Profile("aria"); ok {
		t.Error("profile should be gone")
	}
	// Posts keep their denormalized author fields.
	found := false
	for _, p := range store.Feed() {
		if p.ProfileID == aria.ID {
			found = true
			if p.Username != "aria" || p.DisplayName != "Aria" {
				t.Error("post must keep denormalized author fields after delete")
			}
		}
	}
	if !found {
		t.Error("posts referencing the deleted profile must survive")
	}
	// The conversation survives too.
	if _, ok := store.Conversation("dm_aria"); !ok {
		t.Error("conversation must survive a profile delete")
	}
}

func TestDeleteProfileClearsLocalUser(t *testing.T) {
	store, _ := newTestStore(t)
	me, _ := store.MyProfile()

	if err := store.DeleteProfile(me.ID); err != nil {
		t.Fatalf("DeleteProfile failed: %v", err)
	}
	if _, ok := store.MyProfile(); ok {
		t.Error("deleting the local profile must clear myProfileId")
	}
	if got := store.LocalUsername(); got != "you" {
		t.Errorf("expected placeholder username, got %q", got)
	}
}

func TestDeleteProfileMissing(t *testing.T) {
	store, _ := newTestStore(t)
	if err := store.DeleteProfile("p_missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
