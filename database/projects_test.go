package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProjects_SortedByName(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)
	ctx := context.Background()

	// Insert out of order; the listing must come back name-ascending.
	seedProject(t, db, "The Waterway", "New Cairo")
	seedProject(t, db, "Marassi", "Sidi Abd ElRahman")
	seedProject(t, db, "Sodic EAST", "New Cairo")

	projects, err := db.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 3)

	assert.Equal(t, "Marassi", projects[0].Name)
	assert.Equal(t, "Sodic EAST", projects[1].Name)
	assert.Equal(t, "The Waterway", projects[2].Name)
}

func TestProjectExists(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)
	ctx := context.Background()

	project := seedProject(t, db, "Mivida", "5th Settlement")

	exists, err := db.ProjectExists(ctx, project.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = db.ProjectExists(ctx, project.ID+1000)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCountProjects(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	total, err := db.CountProjects(context.Background())
	require.NoError(t, err)
	assert.Zero(t, total)

	seedProject(t, db, "Marassi", "")

	total, err = db.CountProjects(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}
