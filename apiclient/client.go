// Package apiclient is a typed client for the aptlist API. Every call
// resolves to either a decoded value or an *APIError; transport failures,
// bad status codes and undecodable bodies all collapse into the same error
// shape, so callers never see a panic or a raw transport error.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"aptlist/models"
	"aptlist/validation"
)

const defaultTimeout = 10 * time.Second

// APIError is the failure side of every client call.
type APIError struct {
	// Status is the HTTP status code, or 0 for transport failures.
	Status int
	// Message is the server's error string, or "Failed to load" when the
	// response carried none.
	Message string
	// Details holds field-level validation issues on 400 responses.
	Details []validation.Issue
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// Client talks to one API base address.
type Client struct {
	base string
	http *http.Client
}

// New builds a client for the given base address, e.g.
// "http://localhost:4000".
func New(base string) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: defaultTimeout},
	}
}

// ListParams mirrors the list endpoint's query parameters. Zero values are
// omitted from the request.
type ListParams struct {
	Page        int
	UnitName    string
	UnitNumber  string
	ProjectName string
	Bedrooms    string
	Bathrooms   string
	MinPrice    string
	MaxPrice    string
	MinArea     string
	MaxArea     string
}

func (p ListParams) values() url.Values {
	values := url.Values{}
	if p.Page > 1 {
		values.Set("page", strconv.Itoa(p.Page))
	}
	set := func(key, value string) {
		if value != "" {
			values.Set(key, value)
		}
	}
	set("unitName", p.UnitName)
	set("unitNumber", p.UnitNumber)
	set("projectName", p.ProjectName)
	set("bedrooms", p.Bedrooms)
	set("bathrooms", p.Bathrooms)
	set("minPrice", p.MinPrice)
	set("maxPrice", p.MaxPrice)
	set("minArea", p.MinArea)
	set("maxArea", p.MaxArea)
	return values
}

// ListApartments fetches one page of apartment cards.
func (c *Client) ListApartments(ctx context.Context, params ListParams) (*models.ApartmentPage, *APIError) {
	path := "/api/apartments"
	if qs := params.values().Encode(); qs != "" {
		path += "?" + qs
	}

	var page models.ApartmentPage
	if err := c.get(ctx, path, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetApartment fetches one apartment with images and project.
func (c *Client) GetApartment(ctx context.Context, id int64) (*models.Apartment, *APIError) {
	var apartment models.Apartment
	if err := c.get(ctx, fmt.Sprintf("/api/apartments/%d", id), &apartment); err != nil {
		return nil, err
	}
	return &apartment, nil
}

// CreateApartmentPayload is the create request body sent by the client.
type CreateApartmentPayload struct {
	Name       string        `json:"name"`
	UnitNumber string        `json:"unitNumber"`
	Price      float64       `json:"price"`
	Bedrooms   float64       `json:"bedrooms"`
	Bathrooms  float64       `json:"bathrooms"`
	Area       float64       `json:"area"`
	ProjectID  int64         `json:"projectId"`
	Images     []CreateImage `json:"images,omitempty"`
}

type CreateImage struct {
	URL string `json:"url"`
}

// CreateApartment creates a new listing. Validation failures come back as
// an *APIError with Details populated.
func (c *Client) CreateApartment(ctx context.Context, payload CreateApartmentPayload) (*models.Apartment, *APIError) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &APIError{Message: "Failed to load"}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/api/apartments", bytes.NewReader(body))
	if err != nil {
		return nil, &APIError{Message: "Failed to load"}
	}
	req.Header.Set("Content-Type", "application/json")

	var apartment models.Apartment
	if apiErr := c.do(req, &apartment); apiErr != nil {
		return nil, apiErr
	}
	return &apartment, nil
}

// ListProjects fetches every project as {id, name}.
func (c *Client) ListProjects(ctx context.Context) ([]models.ProjectSummary, *APIError) {
	projects := []models.ProjectSummary{}
	if err := c.get(ctx, "/api/projects", &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) *APIError {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return &APIError{Message: "Failed to load"}
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) *APIError {
	res, err := c.http.Do(req)
	if err != nil {
		return &APIError{Message: "Failed to load"}
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return decodeError(res)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return &APIError{Status: res.StatusCode, Message: "Failed to load"}
	}
	return nil
}

// decodeError extracts {error, details} from a failure response. The error
// field may be a plain string or a list of validation issues.
func decodeError(res *http.Response) *APIError {
	apiErr := &APIError{Status: res.StatusCode, Message: "Failed to load"}

	var body struct {
		Error   json.RawMessage    `json:"error"`
		Details []validation.Issue `json:"details"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return apiErr
	}
	apiErr.Details = body.Details

	var message string
	if err := json.Unmarshal(body.Error, &message); err == nil {
		apiErr.Message = message
		return apiErr
	}

	var issues []validation.Issue
	if err := json.Unmarshal(body.Error, &issues); err == nil && len(issues) > 0 {
		apiErr.Message = issues[0].Message
		apiErr.Details = issues
	}
	return apiErr
}
