// ABOUTME: Profile domain operations
// ABOUTME: Create/update with collision handling, and non-cascading delete

package state

import (
	"moireu/internal/identity"
	"moireu/internal/models"
)

// SaveProfile creates a profile (editingID empty) or updates an existing one
// in place, preserving its id and creation time. If a different profile
// already owns the normalized username, a *CollisionError is returned unless
// overwrite is set, in which case the colliding profile is removed first. The
// first profile ever created while no local profile is set becomes the local
// user's identity.
func (s *Store) SaveProfile(input models.ProfileInput, editingID string, overwrite bool) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	username := identity.Normalize(input.Username)
	if username == "" {
		return nil, &models.ValidationError{Field: "username", Reason: "required"}
	}

	var profile *models.Profile
	if editingID != "" {
		profile = s.profileByIDLocked(editingID)
		if profile == nil {
			return nil, ErrNotFound
		}
	}

	if existing := s.profileByUsernameLocked(username); existing != nil && existing.ID != editingID {
		if !overwrite {
			return nil, &CollisionError{Username: username, ExistingID: existing.ID}
		}
		s.removeProfileLocked(existing.ID)
	}

	if editingID == "" {
		created, err := models.NewProfile(input)
		if err != nil {
			return nil, err
		}
		s.doc.Profiles = append(s.doc.Profiles, created)
		if s.doc.MyProfileID == "" {
			s.doc.MyProfileID = created.ID
		}
		profile = created
	} else {
		displayName := input.DisplayName
		if displayName == "" {
			displayName = username
		}
		profile.DisplayName = displayName
		profile.Username = username
		profile.Bio = input.Bio
		profile.Description = input.Description
		profile.Relationships = input.Relationships
		profile.Followers = max(0, input.Followers)
		profile.LikesMin = max(0, input.LikesMin)
		profile.LikesMax = max(0, input.LikesMax)
	}

	return profile, s.persist()
}

// DeleteProfile removes the profile with the given id. Posts, replies, and
// conversations that reference it are left alone; they keep their
// denormalized display fields. Clears the local-user designation if it
// pointed at the deleted profile.
func (s *Store) DeleteProfile(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.profileByIDLocked(id) == nil {
		return ErrNotFound
	}
	s.removeProfileLocked(id)
	return s.persist()
}

func (s *Store) removeProfileLocked(id string) {
	kept := s.doc.Profiles[:0]
	for _, p := range s.doc.Profiles {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.doc.Profiles = kept
	if s.doc.MyProfileID == id {
		s.doc.MyProfileID = ""
	}
}

func (s *Store) profileByIDLocked(id string) *models.Profile {
	if id == "" {
		return nil
	}
	for _, p := range s.doc.Profiles {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (s *Store) profileByUsernameLocked(username string) *models.Profile {
	for _, p := range s.doc.Profiles {
		if p.Username == username {
			return p
		}
	}
	return nil
}
