package handlers

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"aptlist/database"
	"aptlist/models"
	"aptlist/validation"

	"github.com/gin-gonic/gin"
)

// PageSize is the fixed apartment list page size.
const PageSize = 3

// Store is the storage surface the handlers orchestrate. *database.DB
// satisfies it; tests swap in a fake.
type Store interface {
	CountApartments(ctx context.Context, filters *database.QueryBuilder) (int64, error)
	ListApartments(ctx context.Context, filters *database.QueryBuilder, limit, offset int) ([]models.ApartmentSummary, error)
	GetApartment(ctx context.Context, id int64) (*models.Apartment, error)
	CreateApartment(ctx context.Context, apartment models.NewApartment) (*models.Apartment, error)
	InsertImagesBatch(ctx context.Context, apartmentID int64, urls []string) error
	ProjectExists(ctx context.Context, id int64) (bool, error)
	ListProjects(ctx context.Context) ([]models.ProjectSummary, error)
}

// ListApartments handles GET /api/apartments: validated filters, fixed
// page size, newest first.
func ListApartments(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		query, issues := validation.ListQuery(c.Request.URL.Query())
		if issues != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": issues})
			return
		}

		ctx := c.Request.Context()
		filters := database.BuildApartmentFilters(query)

		total, err := store.CountApartments(ctx, filters)
		if err != nil {
			slog.Error("failed to count apartments", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch apartments"})
			return
		}

		offset := (query.Page - 1) * PageSize
		apartments, err := store.ListApartments(ctx, filters, PageSize, offset)
		if err != nil {
			slog.Error("failed to list apartments", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch apartments"})
			return
		}

		c.JSON(http.StatusOK, models.ApartmentPage{
			Data:       apartments,
			Total:      total,
			Page:       query.Page,
			PageSize:   PageSize,
			TotalPages: int(math.Ceil(float64(total) / float64(PageSize))),
		})
	}
}

// GetApartment handles GET /api/apartments/:id, returning the apartment
// with all images and the owning project.
func GetApartment(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Apartment not found"})
			return
		}

		apartment, err := store.GetApartment(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, database.ErrApartmentNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Apartment not found"})
				return
			}
			slog.Error("failed to get apartment", "id", id, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch apartment"})
			return
		}

		c.JSON(http.StatusOK, apartment)
	}
}

// CreateApartment handles POST /api/apartments. The apartment row and its
// images are inserted in two separate steps with no transaction: if the
// image insert fails the apartment still exists and the caller gets a 500.
func CreateApartment(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateApartmentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Bad Request",
				"details": []validation.Issue{{Path: "", Message: "Invalid JSON body"}},
			})
			return
		}

		apartment, issues := validation.CreateApartment(req)
		if issues != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Bad Request",
				"details": issues,
			})
			return
		}

		ctx := c.Request.Context()

		exists, err := store.ProjectExists(ctx, apartment.ProjectID)
		if err != nil {
			slog.Error("failed to check project", "project_id", apartment.ProjectID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create apartment"})
			return
		}
		if !exists {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Project does not exist"})
			return
		}

		created, err := store.CreateApartment(ctx, apartment)
		if err != nil {
			slog.Error("failed to create apartment", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create apartment"})
			return
		}

		if len(apartment.Images) > 0 {
			if err := store.InsertImagesBatch(ctx, created.ID, apartment.Images); err != nil {
				slog.Error("failed to insert images", "apartment_id", created.ID, "error", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create apartment"})
				return
			}
		}

		c.JSON(http.StatusCreated, created)
	}
}
