package models

import "time"

// Profile is a named collection of CV versions. Exactly one profile carries
// IsDefault at any time; the repository enforces that on every set-default.
type Profile struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:text;not null;uniqueIndex" json:"name"`
	IsDefault bool      `gorm:"not null;default:false" json:"is_default"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (Profile) TableName() string {
	return "profiles"
}

// CVVersion is one concrete, timestamped CV document owned by a profile.
// Versions are edited in place or forked; never deleted.
type CVVersion struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProfileID   uint      `gorm:"not null;index" json:"profile_id"`
	VersionName string    `gorm:"type:text;not null" json:"version_name"`
	CVJSON      string    `gorm:"type:text;not null;column:cv_json" json:"-"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`

	Profile Profile `gorm:"foreignKey:ProfileID" json:"-"`
}

func (CVVersion) TableName() string {
	return "cv_versions"
}

// Document deserializes the stored cv_json payload.
func (v *CVVersion) Document() CVDocument {
	return ParseCVDocument(v.CVJSON)
}
