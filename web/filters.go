package web

import (
	"net/url"
	"strconv"

	"aptlist/apiclient"
)

// FilterState is one snapshot of the list filters, kept as the raw strings
// the user typed. The URL query is the applied state; the form inputs are
// the draft. Submitting the form (the search action) turns the draft into
// a fresh URL with page reset to 1, and the Clear link drops everything.
type FilterState struct {
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

var filterKeys = []string{
	"unitName", "unitNumber", "projectName",
	"bedrooms", "bathrooms",
	"minPrice", "maxPrice", "minArea", "maxArea",
}

// ParseFilterState reads the applied filters from a URL query.
func ParseFilterState(values url.Values) FilterState {
	return FilterState{
		UnitName:    values.Get("unitName"),
		UnitNumber:  values.Get("unitNumber"),
		ProjectName: values.Get("projectName"),
		Bedrooms:    values.Get("bedrooms"),
		Bathrooms:   values.Get("bathrooms"),
		MinPrice:    values.Get("minPrice"),
		MaxPrice:    values.Get("maxPrice"),
		MinArea:     values.Get("minArea"),
		MaxArea:     values.Get("maxArea"),
	}
}

func (f FilterState) values() url.Values {
	values := url.Values{}
	fields := []string{
		f.UnitName, f.UnitNumber, f.ProjectName,
		f.Bedrooms, f.Bathrooms,
		f.MinPrice, f.MaxPrice, f.MinArea, f.MaxArea,
	}
	for i, key := range filterKeys {
		if fields[i] != "" {
			values.Set(key, fields[i])
		}
	}
	return values
}

// IsZero reports whether no filter is applied.
func (f FilterState) IsZero() bool {
	return f == FilterState{}
}

// Params converts the state into API list parameters for the given page.
func (f FilterState) Params(page int) apiclient.ListParams {
	return apiclient.ListParams{
		Page:        page,
		UnitName:    f.UnitName,
		UnitNumber:  f.UnitNumber,
		ProjectName: f.ProjectName,
		Bedrooms:    f.Bedrooms,
		Bathrooms:   f.Bathrooms,
		MinPrice:    f.MinPrice,
		MaxPrice:    f.MaxPrice,
		MinArea:     f.MinArea,
		MaxArea:     f.MaxArea,
	}
}

// PageURL builds a list URL carrying the applied filters and the given
// page, for the numbered pagination links.
func (f FilterState) PageURL(page int) string {
	values := f.values()
	if page > 1 {
		values.Set("page", strconv.Itoa(page))
	}
	if len(values) == 0 {
		return "/apartments"
	}
	return "/apartments?" + values.Encode()
}
