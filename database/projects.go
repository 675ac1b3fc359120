package database

import (
	"context"
	"fmt"
	"log/slog"

	"aptlist/models"
)

// ListProjects returns every project projected to {id, name}, ordered by
// name ascending.
func (db *DB) ListProjects(ctx context.Context) ([]models.ProjectSummary, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM projects
		ORDER BY %s ASC
	`, columnID, columnName, columnName)

	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []models.ProjectSummary{}
	for rows.Next() {
		var project models.ProjectSummary
		if err := rows.Scan(&project.ID, &project.Name); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating projects: %w", err)
	}

	return projects, nil
}

// ProjectExists reports whether a project with the given id exists. Called
// before an apartment insert so a dangling projectId fails with a clear
// error instead of a constraint violation.
func (db *DB) ProjectExists(ctx context.Context, id int64) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM projects WHERE %s = $1)`, columnID)

	var exists bool
	if err := db.Pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check project existence: %w", err)
	}

	return exists, nil
}

// CreateProject inserts a project. The HTTP API never creates projects;
// this is used by cmd/seed and the integration tests.
func (db *DB) CreateProject(ctx context.Context, name, location string) (*models.Project, error) {
	query := fmt.Sprintf(`
		INSERT INTO projects (%s, location)
		VALUES ($1, $2)
		RETURNING %s, %s, location
	`, columnName, columnID, columnName)

	var project models.Project
	err := db.Pool.QueryRow(ctx, query, name, location).Scan(&project.ID, &project.Name, &project.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	slog.Info("created project", "id", project.ID, "name", project.Name)
	return &project, nil
}

// CountProjects returns the total number of projects. Used by cmd/seed to
// skip reseeding a populated database.
func (db *DB) CountProjects(ctx context.Context) (int64, error) {
	var total int64
	if err := db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM projects`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count projects: %w", err)
	}
	return total, nil
}
