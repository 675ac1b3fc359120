package models

import "time"

// Apartment is the full apartment record as returned by the detail and
// create endpoints. Images and Project are populated only on the detail
// endpoint; the create endpoint returns the bare row.
type Apartment struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	UnitNumber string    `json:"unitNumber"`
	Price      float64   `json:"price"`
	Bedrooms   int       `json:"bedrooms"`
	Bathrooms  int       `json:"bathrooms"`
	Area       float64   `json:"area"`
	ProjectID  int64     `json:"projectId"`
	CreatedAt  time.Time `json:"createdAt"`
	Images     []Image   `json:"images,omitempty"`
	Project    *Project  `json:"project,omitempty"`
}

// Image is a photo attached to an apartment.
type Image struct {
	ID          int64  `json:"id"`
	URL         string `json:"url"`
	ApartmentID int64  `json:"apartmentId"`
}

// ApartmentSummary is the card projection used by the list endpoint:
// id, name, price and at most one image.
type ApartmentSummary struct {
	ID     int64      `json:"id"`
	Name   string     `json:"name"`
	Price  float64    `json:"price"`
	Images []ImageRef `json:"images"`
}

// ImageRef is the image projection embedded in list cards.
type ImageRef struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
}

// ApartmentPage is the paginated list response.
type ApartmentPage struct {
	Data       []ApartmentSummary `json:"data"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"pageSize"`
	TotalPages int                `json:"totalPages"`
}

// CreateApartmentRequest is the raw create payload. Numeric fields use the
// tolerant Number type so string values coerce and type mismatches surface
// as field-level validation issues.
type CreateApartmentRequest struct {
	Name       String       `json:"name"`
	UnitNumber String       `json:"unitNumber"`
	Price      Number       `json:"price"`
	Bedrooms   Number       `json:"bedrooms"`
	Bathrooms  Number       `json:"bathrooms"`
	Area       Number       `json:"area"`
	ProjectID  Number       `json:"projectId"`
	Images     []ImageInput `json:"images"`
}

// ImageInput is one image entry of a create payload.
type ImageInput struct {
	URL String `json:"url"`
}

// NewApartment is a validated, fully typed apartment ready for insertion.
// Images holds the URLs to insert in the follow-up bulk insert; the
// apartment insert itself excludes them.
type NewApartment struct {
	Name       string
	UnitNumber string
	Price      float64
	Bedrooms   int
	Bathrooms  int
	Area       float64
	ProjectID  int64
	Images     []string
}

// ListQuery holds the parsed apartment list parameters. A zero value on
// any filter field means "not provided" and produces no filter condition,
// so filtering on an explicit 0 is indistinguishable from omitting the
// field. That matches the filter form semantics.
type ListQuery struct {
	Page        int
	UnitName    string
	UnitNumber  string
	ProjectName string
	Bedrooms    float64
	Bathrooms   float64
	MinPrice    float64
	MaxPrice    float64
	MinArea     float64
	MaxArea     float64
}
