package repositories

import (
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"bonifacengila/cv-portfolio/internal/models"
)

type VersionRepository interface {
	FindByProfile(profileID uint) ([]models.CVVersion, error)
	FindByID(id uint) (*models.CVVersion, error)
	// FindDefaultLatest selects the version shown to the public: the default
	// profile's most recently updated version, ties broken by highest id.
	FindDefaultLatest() (*models.CVVersion, error)
	Update(id uint, versionName string, doc models.CVDocument) error
	Fork(profileID uint, versionName string, doc models.CVDocument) (*models.CVVersion, error)
}

type versionRepository struct {
	db *gorm.DB
}

func NewVersionRepository(db *gorm.DB) VersionRepository {
	return &versionRepository{db: db}
}

// FindByProfile implements VersionRepository, newest first.
func (v *versionRepository) FindByProfile(profileID uint) ([]models.CVVersion, error) {
	var versions []models.CVVersion
	if err := v.db.Where("profile_id = ?", profileID).
		Order("updated_at DESC, id DESC").Find(&versions).Error; err != nil {
		return nil, fmt.Errorf("failed to list versions: %w", err)
	}
	return versions, nil
}

// FindByID implements VersionRepository.
func (v *versionRepository) FindByID(id uint) (*models.CVVersion, error) {
	var version models.CVVersion
	if err := v.db.First(&version, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("version not found: %w", err)
		}
		return nil, fmt.Errorf("failed to find version: %w", err)
	}
	return &version, nil
}

// FindDefaultLatest implements VersionRepository. Returns nil without error
// when no default profile (or no version under it) exists.
func (v *versionRepository) FindDefaultLatest() (*models.CVVersion, error) {
	var version models.CVVersion
	err := v.db.Joins("JOIN profiles ON profiles.id = cv_versions.profile_id").
		Where("profiles.is_default = ?", true).
		Order("cv_versions.updated_at DESC, cv_versions.id DESC").
		First(&version).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find default version: %w", err)
	}
	return &version, nil
}

// Update implements VersionRepository: "Save Changes" mutates the row in
// place and bumps updated_at.
func (v *versionRepository) Update(id uint, versionName string, doc models.CVDocument) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	result := v.db.Model(&models.CVVersion{}).Where("id = ?", id).Updates(map[string]interface{}{
		"version_name": versionName,
		"cv_json":      string(payload),
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update version: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("version not found: %d", id)
	}
	return nil
}

// Fork implements VersionRepository: "Save as New Version" creates a sibling
// row and leaves the original untouched.
func (v *versionRepository) Fork(profileID uint, versionName string, doc models.CVDocument) (*models.CVVersion, error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	version := &models.CVVersion{
		ProfileID:   profileID,
		VersionName: versionName,
		CVJSON:      string(payload),
	}
	if err := v.db.Create(version).Error; err != nil {
		return nil, fmt.Errorf("failed to create version: %w", err)
	}
	return version, nil
}
