package database

import (
	"context"
	"errors"
	"testing"

	"aptlist/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProject(t *testing.T, db *DB, name, location string) *models.Project {
	t.Helper()

	project, err := db.CreateProject(context.Background(), name, location)
	require.NoError(t, err)
	return project
}

func seedApartment(t *testing.T, db *DB, apartment models.NewApartment) *models.Apartment {
	t.Helper()

	created, err := db.CreateApartment(context.Background(), apartment)
	require.NoError(t, err)
	return created
}

func TestCreateAndGetApartment(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)
	ctx := context.Background()

	project := seedProject(t, db, "Marassi", "Sidi Abd ElRahman")

	created := seedApartment(t, db, models.NewApartment{
		Name:       "Sea View Apartment",
		UnitNumber: "B202",
		Price:      25000000,
		Bedrooms:   3,
		Bathrooms:  2,
		Area:       150,
		ProjectID:  project.ID,
	})
	require.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	err := db.InsertImagesBatch(ctx, created.ID, []string{
		"https://img.example.com/1.jpg",
		"https://img.example.com/2.jpg",
	})
	require.NoError(t, err)

	fetched, err := db.GetApartment(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "Sea View Apartment", fetched.Name)
	assert.Equal(t, "B202", fetched.UnitNumber)
	assert.Equal(t, 25000000.0, fetched.Price)
	require.Len(t, fetched.Images, 2)
	assert.Equal(t, created.ID, fetched.Images[0].ApartmentID)
	require.NotNil(t, fetched.Project)
	assert.Equal(t, "Marassi", fetched.Project.Name)
	assert.Equal(t, "Sidi Abd ElRahman", fetched.Project.Location)
}

func TestGetApartment_NotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	_, err := db.GetApartment(context.Background(), 9999)
	assert.True(t, errors.Is(err, ErrApartmentNotFound))
}

func TestListApartments_FirstImageOnly(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)
	ctx := context.Background()

	project := seedProject(t, db, "Mivida", "5th Settlement")
	apartment := seedApartment(t, db, models.NewApartment{
		Name: "Luxury Villa", UnitNumber: "D404", Price: 50000000,
		Bedrooms: 4, Bathrooms: 3, Area: 300, ProjectID: project.ID,
	})
	require.NoError(t, db.InsertImagesBatch(ctx, apartment.ID, []string{
		"https://img.example.com/first.jpg",
		"https://img.example.com/second.jpg",
	}))

	bare := seedApartment(t, db, models.NewApartment{
		Name: "Bare Unit", UnitNumber: "E1", Price: 1000000,
		Bedrooms: 1, Bathrooms: 1, Area: 50, ProjectID: project.ID,
	})

	summaries, err := db.ListApartments(ctx, NewQueryBuilder(), 10, 0)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	// Newest first, each card carrying at most one image.
	assert.Equal(t, bare.ID, summaries[0].ID)
	assert.Empty(t, summaries[0].Images)
	assert.Equal(t, apartment.ID, summaries[1].ID)
	require.Len(t, summaries[1].Images, 1)
	assert.Equal(t, "https://img.example.com/first.jpg", summaries[1].Images[0].URL)
}

func TestListApartments_Filtered(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)
	ctx := context.Background()

	marassi := seedProject(t, db, "Marassi", "Sidi Abd ElRahman")
	sodic := seedProject(t, db, "Sodic EAST", "New Cairo")

	seedApartment(t, db, models.NewApartment{
		Name: "Marassi Lagoon", UnitNumber: "D4", Price: 9000000,
		Bedrooms: 2, Bathrooms: 3, Area: 150, ProjectID: marassi.ID,
	})
	seedApartment(t, db, models.NewApartment{
		Name: "Sodic 2BR", UnitNumber: "C3", Price: 4200000,
		Bedrooms: 2, Bathrooms: 2, Area: 100, ProjectID: sodic.ID,
	})

	filters := BuildApartmentFilters(models.ListQuery{ProjectName: "marassi"})

	total, err := db.CountApartments(ctx, filters)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	summaries, err := db.ListApartments(ctx, filters, 10, 0)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "Marassi Lagoon", summaries[0].Name)
}

func TestListApartments_CaseInsensitiveContains(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)
	ctx := context.Background()

	project := seedProject(t, db, "The Waterway", "New Cairo")
	seedApartment(t, db, models.NewApartment{
		Name: "Family Apartment", UnitNumber: "E505", Price: 22000000,
		Bedrooms: 3, Bathrooms: 2, Area: 130, ProjectID: project.ID,
	})

	filters := BuildApartmentFilters(models.ListQuery{UnitName: "FAMILY"})
	total, err := db.CountApartments(ctx, filters)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	// Quoted filter values match the same rows.
	filters = BuildApartmentFilters(models.ListQuery{UnitNumber: `"E505"`})
	total, err = db.CountApartments(ctx, filters)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestInsertImagesBatch_Empty(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()

	assert.NoError(t, db.InsertImagesBatch(context.Background(), 1, nil))
}
