package repositories

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bonifacengila/cv-portfolio/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Profile{}, &models.CVVersion{}))
	return db
}

func TestCreateProfileSeedsDefaultVersion(t *testing.T) {
	db := newTestDB(t)
	repo := NewProfileRepository(db)

	profile, err := repo.Create("Job Applications", models.DefaultDocument())
	require.NoError(t, err)
	require.NotZero(t, profile.ID)

	versions, err := NewVersionRepository(db).FindByProfile(profile.ID)
	require.NoError(t, err)
	require.Len(t, versions, 1)
	assert.Equal(t, "Default v1", versions[0].VersionName)
	assert.Equal(t, models.DefaultDocument(), versions[0].Document())
}

func TestCreateProfileDuplicateNameFails(t *testing.T) {
	db := newTestDB(t)
	repo := NewProfileRepository(db)

	_, err := repo.Create("Main", models.DefaultDocument())
	require.NoError(t, err)
	_, err = repo.Create("Main", models.DefaultDocument())
	assert.Error(t, err)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSetDefaultIsExclusive(t *testing.T) {
	db := newTestDB(t)
	repo := NewProfileRepository(db)

	var ids []uint
	for _, name := range []string{"A", "B", "C"} {
		profile, err := repo.Create(name, models.CVDocument{})
		require.NoError(t, err)
		ids = append(ids, profile.ID)
	}

	for _, id := range ids {
		require.NoError(t, repo.SetDefault(id))

		var flagged int64
		require.NoError(t, db.Model(&models.Profile{}).
			Where("is_default = ?", true).Count(&flagged).Error)
		assert.Equal(t, int64(1), flagged)

		current, err := repo.FindDefault()
		require.NoError(t, err)
		require.NotNil(t, current)
		assert.Equal(t, id, current.ID)
	}
}

func TestSetDefaultMissingProfile(t *testing.T) {
	db := newTestDB(t)
	repo := NewProfileRepository(db)

	assert.Error(t, repo.SetDefault(42))
}

func TestFindDefaultWhenNoneFlagged(t *testing.T) {
	db := newTestDB(t)
	repo := NewProfileRepository(db)

	_, err := repo.Create("Main", models.CVDocument{})
	require.NoError(t, err)

	profile, err := repo.FindDefault()
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestFindAllOrderedByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewProfileRepository(db)

	for _, name := range []string{"Zed", "Alpha", "Mid"} {
		_, err := repo.Create(name, models.CVDocument{})
		require.NoError(t, err)
	}

	profiles, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, profiles, 3)
	assert.Equal(t, []string{"Zed", "Alpha", "Mid"},
		[]string{profiles[0].Name, profiles[1].Name, profiles[2].Name})
}
