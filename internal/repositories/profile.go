package repositories

import (
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"bonifacengila/cv-portfolio/internal/models"
)

type ProfileRepository interface {
	Create(name string, seed models.CVDocument) (*models.Profile, error)
	FindAll() ([]models.Profile, error)
	FindByID(id uint) (*models.Profile, error)
	FindDefault() (*models.Profile, error)
	SetDefault(id uint) error
	Count() (int64, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// Create implements ProfileRepository. Every new profile is seeded with one
// "Default v1" version cloned from the given document, in one transaction.
func (p *profileRepository) Create(name string, seed models.CVDocument) (*models.Profile, error) {
	payload, err := json.Marshal(seed)
	if err != nil {
		return nil, fmt.Errorf("failed to encode seed document: %w", err)
	}

	profile := &models.Profile{Name: name}
	err = p.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(profile).Error; err != nil {
			return fmt.Errorf("failed to create profile: %w", err)
		}
		version := &models.CVVersion{
			ProfileID:   profile.ID,
			VersionName: "Default v1",
			CVJSON:      string(payload),
		}
		if err := tx.Create(version).Error; err != nil {
			return fmt.Errorf("failed to create seed version: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// FindAll implements ProfileRepository.
func (p *profileRepository) FindAll() ([]models.Profile, error) {
	var profiles []models.Profile
	if err := p.db.Order("id").Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}

// FindByID implements ProfileRepository.
func (p *profileRepository) FindByID(id uint) (*models.Profile, error) {
	var profile models.Profile
	if err := p.db.First(&profile, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("profile not found: %w", err)
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}
	return &profile, nil
}

// FindDefault implements ProfileRepository. Returns nil without error when no
// profile is flagged default.
func (p *profileRepository) FindDefault() (*models.Profile, error) {
	var profile models.Profile
	err := p.db.Where("is_default = ?", true).First(&profile).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find default profile: %w", err)
	}
	return &profile, nil
}

// SetDefault implements ProfileRepository. Clearing every flag and setting the
// new one happen in a single transaction, so exactly one profile carries the
// default flag at any time.
func (p *profileRepository) SetDefault(id uint) error {
	return p.db.Transaction(func(tx *gorm.DB) error {
		var profile models.Profile
		if err := tx.First(&profile, id).Error; err != nil {
			return fmt.Errorf("profile not found: %w", err)
		}
		if err := tx.Model(&models.Profile{}).Where("is_default = ?", true).
			Update("is_default", false).Error; err != nil {
			return fmt.Errorf("failed to clear default flags: %w", err)
		}
		if err := tx.Model(&models.Profile{}).Where("id = ?", id).
			Update("is_default", true).Error; err != nil {
			return fmt.Errorf("failed to set default profile: %w", err)
		}
		return nil
	})
}

// Count implements ProfileRepository.
func (p *profileRepository) Count() (int64, error) {
	var count int64
	if err := p.db.Model(&models.Profile{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count profiles: %w", err)
	}
	return count, nil
}
