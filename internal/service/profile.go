package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/devconnect/backend/internal/models"
)

// ProfileInput carries an upsert request. Pointer fields distinguish
// "absent" from "empty": only fields present in the request overwrite the
// stored profile.
type ProfileInput struct {
	Company        *string
	Website        *string
	Location       *string
	Status         *string
	Bio            *string
	GithubUsername *string
	Skills         *string // comma-delimited, split and trimmed
	Youtube        *string
	Twitter        *string
	Facebook       *string
	Linkedin       *string
	Instagram      *string
}

// ProfileService owns the 1:1 profile documents and their experience and
// education lists.
type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// Upsert creates the caller's profile on first submission and merges on
// every later one. Omitted fields keep their prior values; array entries
// are managed through the experience/education operations instead.
func (s *ProfileService) Upsert(ctx context.Context, userID uuid.UUID, in ProfileInput) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	isNew := errors.Is(err, gorm.ErrRecordNotFound)
	if err != nil && !isNew {
		return nil, err
	}
	if isNew {
		profile = models.Profile{UserID: userID}
	}

	applyProfileInput(&profile, in)

	if isNew {
		err = s.db.WithContext(ctx).Create(&profile).Error
	} else {
		err = s.db.WithContext(ctx).Save(&profile).Error
	}
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}

func applyProfileInput(profile *models.Profile, in ProfileInput) {
	if in.Company != nil {
		profile.Company = *in.Company
	}
	if in.Website != nil {
		profile.Website = *in.Website
	}
	if in.Location != nil {
		profile.Location = *in.Location
	}
	if in.Status != nil {
		profile.Status = *in.Status
	}
	if in.Bio != nil {
		profile.Bio = *in.Bio
	}
	if in.GithubUsername != nil {
		profile.GithubUsername = *in.GithubUsername
	}
	if in.Skills != nil {
		profile.Skills = SplitSkills(*in.Skills)
	}
	if in.Youtube != nil {
		profile.Youtube = *in.Youtube
	}
	if in.Twitter != nil {
		profile.Twitter = *in.Twitter
	}
	if in.Facebook != nil {
		profile.Facebook = *in.Facebook
	}
	if in.Linkedin != nil {
		profile.Linkedin = *in.Linkedin
	}
	if in.Instagram != nil {
		profile.Instagram = *in.Instagram
	}
}

// SplitSkills turns the comma-delimited skills string into an ordered list
// of trimmed tokens, dropping empties.
func SplitSkills(skills string) []string {
	parts := strings.Split(skills, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Get returns the caller's profile with owner info and both entry lists,
// entries newest first.
func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	return s.loadProfile(ctx, "user_id = ?", userID)
}

// GetByUserID is the public by-account-id read; same shape as Get.
func (s *ProfileService) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	return s.loadProfile(ctx, "user_id = ?", userID)
}

func (s *ProfileService) loadProfile(ctx context.Context, query string, args ...interface{}) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("Experience", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") }).
		Preload("Education", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") }).
		Where(query, args...).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// ListAll returns every profile with its owner's name and avatar.
func (s *ProfileService) ListAll(ctx context.Context) ([]models.Profile, error) {
	var profiles []models.Profile
	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("Experience", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") }).
		Preload("Education", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") }).
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// Delete removes the profile and its entries only; account deletion is a
// separate, sequenced operation on AuthService.
func (s *ProfileService) Delete(ctx context.Context, userID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var profile models.Profile
		if err := tx.Where("user_id = ?", userID).First(&profile).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if err := tx.Where("profile_id = ?", profile.ID).Delete(&models.Experience{}).Error; err != nil {
			return err
		}
		if err := tx.Where("profile_id = ?", profile.ID).Delete(&models.Education{}).Error; err != nil {
			return err
		}
		return tx.Delete(&profile).Error
	})
}

// AddExperience prepends a work-history entry to the caller's profile.
func (s *ProfileService) AddExperience(ctx context.Context, userID uuid.UUID, entry models.Experience) (*models.Profile, error) {
	profile, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	entry.ProfileID = profile.ID
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}

// RemoveExperience deletes the entry with the given id from the caller's
// profile. A missing entry fails with ErrNotFound rather than silently
// succeeding.
func (s *ProfileService) RemoveExperience(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) (*models.Profile, error) {
	profile, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	res := s.db.WithContext(ctx).Where("id = ? AND profile_id = ?", entryID, profile.ID).Delete(&models.Experience{})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.Get(ctx, userID)
}

// AddEducation prepends a schooling entry; identical shape to experience.
func (s *ProfileService) AddEducation(ctx context.Context, userID uuid.UUID, entry models.Education) (*models.Profile, error) {
	profile, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	entry.ProfileID = profile.ID
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}

// RemoveEducation deletes the entry with the given id; missing entries
// fail with ErrNotFound.
func (s *ProfileService) RemoveEducation(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) (*models.Profile, error) {
	profile, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	res := s.db.WithContext(ctx).Where("id = ? AND profile_id = ?", entryID, profile.ID).Delete(&models.Education{})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.Get(ctx, userID)
}

// SetAvatarURL stores the uploaded avatar location on the profile.
func (s *ProfileService) SetAvatarURL(ctx context.Context, userID uuid.UUID, url string) (*models.Profile, error) {
	profile, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&models.Profile{}).Where("id = ?", profile.ID).Update("avatar_url", url).Error; err != nil {
		return nil, err
	}
	profile.AvatarURL = url
	return profile, nil
}
