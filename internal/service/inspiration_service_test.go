package service_test

import (
	"testing"

	"wearspace-api/internal/apperr"
	"wearspace-api/internal/model"
	"wearspace-api/internal/repository"
	"wearspace-api/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newInspirationService(db *gorm.DB) service.InspirationService {
	return service.NewInspirationService(repository.NewInspirationRepo(db))
}

func seedInspiration(t *testing.T, svc service.InspirationService, title, tag string) *model.Inspiration {
	t.Helper()
	inspiration, err := svc.Create(&model.Inspiration{
		Title:       title,
		Description: "desc",
		ImageURL:    "https://example.com/img.jpg",
		Tag:         tag,
	})
	require.NoError(t, err)
	return inspiration
}

func TestCreateInspirationMissingFields(t *testing.T) {
	db := newTestDB(t)
	svc := newInspirationService(db)

	_, err := svc.Create(&model.Inspiration{Title: "Only title"})
	assert.True(t, apperr.Is(err, apperr.CodeMissingField))
	assert.Contains(t, err.Error(), "description")
	assert.Contains(t, err.Error(), "image_url")
	assert.Contains(t, err.Error(), "tag")
}

func TestInspirationTagFilter(t *testing.T) {
	db := newTestDB(t)
	svc := newInspirationService(db)

	seedInspiration(t, svc, "Summer Style Guide", "Summer, Fashion, Trends")
	seedInspiration(t, svc, "Sportswear Essentials", "Sport, Fitness, Essentials")

	// Substring match, case-insensitive
	results, err := svc.GetAll("fashion")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Summer Style Guide", results[0].Title)

	results, err = svc.GetAll("s")
	require.NoError(t, err)
	assert.Len(t, results, 2)

	results, err = svc.GetAll("winter")
	require.NoError(t, err)
	assert.Empty(t, results)

	// No filter returns everything
	results, err = svc.GetAll("")
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestUpdateInspirationPartial(t *testing.T) {
	db := newTestDB(t)
	svc := newInspirationService(db)

	created := seedInspiration(t, svc, "Summer Style Guide", "Summer")

	newTag := "Summer, Beach"
	updated, err := svc.Update(created.ID, &service.UpdateInspirationRequest{Tag: &newTag})
	require.NoError(t, err)

	assert.Equal(t, "Summer, Beach", updated.Tag)
	assert.Equal(t, "Summer Style Guide", updated.Title)
}

func TestDeleteInspiration(t *testing.T) {
	db := newTestDB(t)
	svc := newInspirationService(db)

	created := seedInspiration(t, svc, "Summer Style Guide", "Summer")

	require.NoError(t, svc.Delete(created.ID))

	_, err := svc.GetByID(created.ID)
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))

	err = svc.Delete(uuid.New())
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
}
