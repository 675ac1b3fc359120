// Package validation checks incoming request payloads and query strings
// before any storage call is made. Every check produces a list of
// field-level issues rather than an error, so handlers can return the
// complete set of problems in one response.
package validation

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"aptlist/models"

	"github.com/go-playground/validator/v10"
)

// Issue describes one validation failure.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

var validate = validator.New()

// CreateApartment validates a raw create payload. On success the second
// return value is empty and the first holds the fully typed apartment.
// Issues keep field order: name, unitNumber, price, bedrooms, bathrooms,
// area, projectId, images.
func CreateApartment(req models.CreateApartmentRequest) (models.NewApartment, []Issue) {
	issues := []Issue{}

	name, issue := requireString(req.Name, "name", "Name is required.", "Please enter a valid name.")
	if issue != nil {
		issues = append(issues, *issue)
	}

	unitNumber, issue := requireString(req.UnitNumber, "unitNumber", "Unit number is required.", "Please enter a valid unit number")
	if issue != nil {
		issues = append(issues, *issue)
	}

	price, issue := requireNumber(req.Price, "price", "Please enter a valid price.", "Price must be at least 0.")
	if issue != nil {
		issues = append(issues, *issue)
	}

	bedrooms, issue := requireNumber(req.Bedrooms, "bedrooms", "Please enter a valid number of bedrooms.", "Bedrooms must be 0 or more.")
	if issue != nil {
		issues = append(issues, *issue)
	}

	bathrooms, issue := requireNumber(req.Bathrooms, "bathrooms", "Please enter a valid number of bathrooms.", "Bathrooms must be 0 or more.")
	if issue != nil {
		issues = append(issues, *issue)
	}

	area, issue := requireNumber(req.Area, "area", "Please enter a valid number for area.", "Area must be 0 or more.")
	if issue != nil {
		issues = append(issues, *issue)
	}

	var projectID int64
	switch {
	case !req.ProjectID.Present || !req.ProjectID.Valid:
		issues = append(issues, Issue{Path: "projectId", Message: "Please enter a valid project ID."})
	case !req.ProjectID.IsInt():
		issues = append(issues, Issue{Path: "projectId", Message: "Project ID must be an integer."})
	default:
		projectID = int64(req.ProjectID.Value)
	}

	images := []string{}
	for i, image := range req.Images {
		if !image.URL.Valid || validate.Var(image.URL.Value, "required,url") != nil {
			issues = append(issues, Issue{
				Path:    fmt.Sprintf("images.%d.url", i),
				Message: "Please enter a valid URL.",
			})
			continue
		}
		images = append(images, image.URL.Value)
	}

	if len(issues) > 0 {
		return models.NewApartment{}, issues
	}

	return models.NewApartment{
		Name:       name,
		UnitNumber: unitNumber,
		Price:      price,
		Bedrooms:   int(bedrooms),
		Bathrooms:  int(bathrooms),
		Area:       area,
		ProjectID:  projectID,
		Images:     images,
	}, nil
}

func requireString(s models.String, path, requiredMsg, invalidMsg string) (string, *Issue) {
	switch {
	case !s.Present:
		return "", &Issue{Path: path, Message: requiredMsg}
	case !s.Valid:
		return "", &Issue{Path: path, Message: invalidMsg}
	case s.Value == "":
		return "", &Issue{Path: path, Message: requiredMsg}
	}
	return s.Value, nil
}

func requireNumber(n models.Number, path, invalidMsg, minMsg string) (float64, *Issue) {
	switch {
	case !n.Present || !n.Valid:
		return 0, &Issue{Path: path, Message: invalidMsg}
	case n.Value < 0:
		return 0, &Issue{Path: path, Message: minMsg}
	}
	return n.Value, nil
}

// numeric list-query fields and their messages, in validation order.
var listNumberFields = []struct {
	name       string
	invalidMsg string
	minMsg     string
	assign     func(*models.ListQuery, float64)
}{
	{"minPrice", "Please enter a valid price", "minPrice must be 0 or more.",
		func(q *models.ListQuery, v float64) { q.MinPrice = v }},
	{"maxPrice", "Please enter a valid price", "maxPrice must be 0 or more.",
		func(q *models.ListQuery, v float64) { q.MaxPrice = v }},
	{"minArea", "Please enter a valid number for minArea.", "minArea must be 0 or more.",
		func(q *models.ListQuery, v float64) { q.MinArea = v }},
	{"maxArea", "Please enter a valid number for maxArea.", "maxArea must be 0 or more.",
		func(q *models.ListQuery, v float64) { q.MaxArea = v }},
	{"bedrooms", "Please enter a valid number for bedrooms.", "bedrooms must be 0 or more.",
		func(q *models.ListQuery, v float64) { q.Bedrooms = v }},
	{"bathrooms", "Please enter a valid number for bathrooms.", "bathrooms must be 0 or more.",
		func(q *models.ListQuery, v float64) { q.Bathrooms = v }},
}

// ListQuery parses and validates apartment list parameters. String filters
// pass through untouched; numeric filters must parse and be >= 0. An
// unparseable or missing page falls back to 1.
func ListQuery(values url.Values) (models.ListQuery, []Issue) {
	query := models.ListQuery{
		Page:        parsePage(values.Get("page")),
		UnitName:    values.Get("unitName"),
		UnitNumber:  values.Get("unitNumber"),
		ProjectName: values.Get("projectName"),
	}

	issues := []Issue{}
	for _, field := range listNumberFields {
		raw := values.Get(field.name)
		if raw == "" {
			continue
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			issues = append(issues, Issue{Path: field.name, Message: field.invalidMsg})
			continue
		}
		if value < 0 {
			issues = append(issues, Issue{Path: field.name, Message: field.minMsg})
			continue
		}
		field.assign(&query, value)
	}

	if len(issues) > 0 {
		return models.ListQuery{}, issues
	}
	return query, nil
}

func parsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}
