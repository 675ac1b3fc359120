package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"aptlist/models"

	"github.com/jackc/pgx/v5"
)

// ErrApartmentNotFound is returned by GetApartment when no row matches the
// requested id. Handlers map it to a 404.
var ErrApartmentNotFound = errors.New("apartment not found")

// BatchInsertError indicates which image failed during a bulk insert.
type BatchInsertError struct {
	FailedIndex int
	TotalImages int
	Err         error
}

func (e *BatchInsertError) Error() string {
	return fmt.Sprintf("failed to insert image at index %d/%d: %v", e.FailedIndex, e.TotalImages, e.Err)
}

// CountApartments returns the number of apartments matching the filters.
func (db *DB) CountApartments(ctx context.Context, filters *QueryBuilder) (int64, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM apartments %s`, filters.WhereClause())

	var total int64
	if err := db.Pool.QueryRow(ctx, query, filters.Args()...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count apartments: %w", err)
	}

	return total, nil
}

// ListApartments fetches one page of apartment summaries matching the
// filters, newest first. Each summary carries at most one image (the one
// with the lowest id).
func (db *DB) ListApartments(ctx context.Context, filters *QueryBuilder, limit, offset int) ([]models.ApartmentSummary, error) {
	start := time.Now()
	defer func() {
		slog.Debug("ListApartments", "duration", time.Since(start), "conditions", len(filters.Args()))
	}()

	query := fmt.Sprintf(`
		SELECT
			a.%s, a.%s, a.%s,
			img.%s, img.url
		FROM apartments a
		LEFT JOIN LATERAL (
			SELECT %s, url FROM images WHERE apartment_id = a.%s ORDER BY %s LIMIT 1
		) img ON true
		%s
		ORDER BY a.%s DESC
		LIMIT $%d OFFSET $%d
	`, columnID, columnName, columnPrice,
		columnID,
		columnID, columnID, columnID,
		filters.WhereClause(),
		columnCreatedAt, filters.NextArgNum(), filters.NextArgNum()+1)

	args := append(filters.Args(), limit, offset)

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query apartments: %w", err)
	}
	defer rows.Close()

	apartments := []models.ApartmentSummary{}
	for rows.Next() {
		var (
			summary  models.ApartmentSummary
			imageID  *int64
			imageURL *string
		)
		if err := rows.Scan(&summary.ID, &summary.Name, &summary.Price, &imageID, &imageURL); err != nil {
			return nil, fmt.Errorf("failed to scan apartment row: %w", err)
		}

		summary.Images = []models.ImageRef{}
		if imageID != nil && imageURL != nil {
			summary.Images = append(summary.Images, models.ImageRef{ID: *imageID, URL: *imageURL})
		}
		apartments = append(apartments, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating apartments: %w", err)
	}

	return apartments, nil
}

// GetApartment fetches one apartment by id together with all of its images
// and the owning project. Returns ErrApartmentNotFound when absent.
func (db *DB) GetApartment(ctx context.Context, id int64) (*models.Apartment, error) {
	query := fmt.Sprintf(`
		SELECT
			a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s,
			p.%s, p.%s, p.location
		FROM apartments a
		JOIN projects p ON p.%s = a.%s
		WHERE a.%s = $1
	`, columnID, columnName, columnUnitNumber, columnPrice, columnBedrooms,
		columnBathrooms, columnArea, columnProjectID, columnCreatedAt,
		columnID, columnName,
		columnID, columnProjectID, columnID)

	var (
		apartment models.Apartment
		project   models.Project
	)
	err := db.Pool.QueryRow(ctx, query, id).Scan(
		&apartment.ID,
		&apartment.Name,
		&apartment.UnitNumber,
		&apartment.Price,
		&apartment.Bedrooms,
		&apartment.Bathrooms,
		&apartment.Area,
		&apartment.ProjectID,
		&apartment.CreatedAt,
		&project.ID,
		&project.Name,
		&project.Location,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrApartmentNotFound
		}
		return nil, fmt.Errorf("failed to get apartment: %w", err)
	}
	apartment.Project = &project

	images, err := db.listImages(ctx, id)
	if err != nil {
		return nil, err
	}
	apartment.Images = images

	return &apartment, nil
}

func (db *DB) listImages(ctx context.Context, apartmentID int64) ([]models.Image, error) {
	query := fmt.Sprintf(`
		SELECT %s, url, apartment_id
		FROM images
		WHERE apartment_id = $1
		ORDER BY %s
	`, columnID, columnID)

	rows, err := db.Pool.Query(ctx, query, apartmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query images: %w", err)
	}
	defer rows.Close()

	images := []models.Image{}
	for rows.Next() {
		var image models.Image
		if err := rows.Scan(&image.ID, &image.URL, &image.ApartmentID); err != nil {
			return nil, fmt.Errorf("failed to scan image row: %w", err)
		}
		images = append(images, image)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating images: %w", err)
	}

	return images, nil
}

// CreateApartment inserts a new apartment row and returns the created
// record. Images are not inserted here; callers follow up with
// InsertImagesBatch once the new id is known.
func (db *DB) CreateApartment(ctx context.Context, apartment models.NewApartment) (*models.Apartment, error) {
	query := fmt.Sprintf(`
		INSERT INTO apartments (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s, %s, %s, %s, %s, %s, %s, %s, %s
	`, columnName, columnUnitNumber, columnPrice, columnBedrooms, columnBathrooms,
		columnArea, columnProjectID,
		columnID, columnName, columnUnitNumber, columnPrice, columnBedrooms,
		columnBathrooms, columnArea, columnProjectID, columnCreatedAt)

	var created models.Apartment
	err := db.Pool.QueryRow(ctx, query,
		apartment.Name,
		apartment.UnitNumber,
		apartment.Price,
		apartment.Bedrooms,
		apartment.Bathrooms,
		apartment.Area,
		apartment.ProjectID,
	).Scan(
		&created.ID,
		&created.Name,
		&created.UnitNumber,
		&created.Price,
		&created.Bedrooms,
		&created.Bathrooms,
		&created.Area,
		&created.ProjectID,
		&created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create apartment: %w", err)
	}

	slog.Info("created apartment", "id", created.ID, "project_id", created.ProjectID)
	return &created, nil
}

// InsertImagesBatch inserts image URLs for an apartment in a single network
// round-trip using pgx batching. Empty slice is a no-op. There is no
// transaction around the caller's apartment insert and this batch; a
// failure here leaves the apartment row in place.
func (db *DB) InsertImagesBatch(ctx context.Context, apartmentID int64, urls []string) error {
	if len(urls) == 0 {
		return nil
	}

	start := time.Now()
	defer func() {
		slog.Debug("InsertImagesBatch", "duration", time.Since(start), "count", len(urls))
	}()

	query := `INSERT INTO images (url, apartment_id) VALUES ($1, $2)`

	batch := &pgx.Batch{}
	for _, url := range urls {
		batch.Queue(query, url, apartmentID)
	}

	results := db.Pool.SendBatch(ctx, batch)
	defer func() {
		_ = results.Close()
	}()

	for i := 0; i < len(urls); i++ {
		if _, err := results.Exec(); err != nil {
			return &BatchInsertError{
				FailedIndex: i,
				TotalImages: len(urls),
				Err:         err,
			}
		}
	}

	return nil
}
