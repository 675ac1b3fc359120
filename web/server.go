// Package web is the server-rendered frontend: a listing page with filters
// and pagination, an apartment detail page and a create-listing form. All
// data comes through the API client; nothing reads the database directly.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"aptlist/apiclient"
	"aptlist/config"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Server renders the frontend pages.
type Server struct {
	api *apiclient.Client
	// apiDocsURL points browsers at the public API documentation.
	apiDocsURL string
}

// NewRouter wires the frontend routes. The API client targets the internal
// base address; browsers never call the API directly from these pages, but
// the docs link uses the public base.
func NewRouter(cfg *config.Config) *gin.Engine {
	s := &Server{
		api:        apiclient.New(cfg.InternalAPIBase),
		apiDocsURL: strings.TrimRight(cfg.PublicAPIBase, "/") + "/api-docs",
	}

	tmpl := template.Must(template.New("").Funcs(template.FuncMap{
		"formatPrice": formatPrice,
	}).ParseFS(templatesFS, "templates/*.tmpl"))

	r := gin.Default()
	r.SetHTMLTemplate(tmpl)

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/apartments")
	})
	r.GET("/apartments", s.listPage)
	r.GET("/apartment/add", s.addPage)
	r.POST("/apartment/add", s.createListing)
	r.GET("/apartment/:id", s.detailPage)

	return r
}

type pageLink struct {
	Number int
	URL    string
	Active bool
}

func (s *Server) listPage(c *gin.Context) {
	query := c.Request.URL.Query()
	page, err := strconv.Atoi(query.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	applied := ParseFilterState(query)

	result, apiErr := s.api.ListApartments(c.Request.Context(), applied.Params(page))
	if apiErr != nil {
		s.renderError(c, apiErr, c.Request.URL.RequestURI())
		return
	}

	links := make([]pageLink, 0, result.TotalPages)
	for n := 1; n <= result.TotalPages; n++ {
		links = append(links, pageLink{Number: n, URL: applied.PageURL(n), Active: n == result.Page})
	}

	c.HTML(http.StatusOK, "apartments.tmpl", gin.H{
		"Filters":    applied,
		"Filtered":   !applied.IsZero(),
		"Page":       result,
		"Pages":      links,
		"APIDocsURL": s.apiDocsURL,
	})
}

func (s *Server) detailPage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		s.renderError(c, &apiclient.APIError{Status: http.StatusNotFound, Message: "Apartment not found"}, "/apartments")
		return
	}

	apartment, apiErr := s.api.GetApartment(c.Request.Context(), id)
	if apiErr != nil {
		s.renderError(c, apiErr, c.Request.URL.RequestURI())
		return
	}

	c.HTML(http.StatusOK, "apartment.tmpl", gin.H{"Apartment": apartment})
}

func (s *Server) addPage(c *gin.Context) {
	projects, apiErr := s.api.ListProjects(c.Request.Context())
	if apiErr != nil {
		s.renderError(c, apiErr, c.Request.URL.RequestURI())
		return
	}

	c.HTML(http.StatusOK, "add.tmpl", gin.H{
		"Projects": projects,
		"Form":     map[string]string{},
		"Errors":   map[string]string{},
	})
}

func (s *Server) createListing(c *gin.Context) {
	form := map[string]string{
		"name":       strings.TrimSpace(c.PostForm("name")),
		"unitNumber": strings.TrimSpace(c.PostForm("unitNumber")),
		"price":      strings.TrimSpace(c.PostForm("price")),
		"bedrooms":   strings.TrimSpace(c.PostForm("bedrooms")),
		"bathrooms":  strings.TrimSpace(c.PostForm("bathrooms")),
		"area":       strings.TrimSpace(c.PostForm("area")),
		"projectId":  strings.TrimSpace(c.PostForm("projectId")),
		"images":     strings.TrimSpace(c.PostForm("images")),
	}

	payload, errors := buildPayload(form)
	if len(errors) > 0 {
		s.renderAddForm(c, form, errors)
		return
	}

	created, apiErr := s.api.CreateApartment(c.Request.Context(), payload)
	if apiErr != nil {
		if apiErr.Status == http.StatusBadRequest {
			errors := map[string]string{}
			for _, issue := range apiErr.Details {
				path := issue.Path
				// Image issues come back as images.N.url; the form has a
				// single textarea for all URLs.
				if strings.HasPrefix(path, "images.") {
					path = "images"
				}
				errors[path] = issue.Message
			}
			if len(errors) == 0 {
				errors[""] = apiErr.Message
			}
			s.renderAddForm(c, form, errors)
			return
		}
		s.renderError(c, apiErr, c.Request.URL.RequestURI())
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/apartment/%d", created.ID))
}

// buildPayload converts form values to the create payload, reporting the
// same messages the API would for unparseable numbers.
func buildPayload(form map[string]string) (apiclient.CreateApartmentPayload, map[string]string) {
	errors := map[string]string{}

	number := func(field, message string) float64 {
		value, err := strconv.ParseFloat(form[field], 64)
		if err != nil {
			errors[field] = message
			return 0
		}
		return value
	}

	payload := apiclient.CreateApartmentPayload{
		Name:       form["name"],
		UnitNumber: form["unitNumber"],
		Price:      number("price", "Please enter a valid price."),
		Bedrooms:   number("bedrooms", "Please enter a valid number of bedrooms."),
		Bathrooms:  number("bathrooms", "Please enter a valid number of bathrooms."),
		Area:       number("area", "Please enter a valid number for area."),
	}

	projectID, err := strconv.ParseInt(form["projectId"], 10, 64)
	if err != nil {
		errors["projectId"] = "Please enter a valid project ID."
	}
	payload.ProjectID = projectID

	for _, line := range strings.Split(form["images"], "\n") {
		url := strings.TrimSpace(line)
		if url != "" {
			payload.Images = append(payload.Images, apiclient.CreateImage{URL: url})
		}
	}

	return payload, errors
}

func (s *Server) renderAddForm(c *gin.Context, form, errors map[string]string) {
	projects, apiErr := s.api.ListProjects(c.Request.Context())
	if apiErr != nil {
		s.renderError(c, apiErr, c.Request.URL.RequestURI())
		return
	}

	c.HTML(http.StatusBadRequest, "add.tmpl", gin.H{
		"Projects": projects,
		"Form":     form,
		"Errors":   errors,
	})
}

func (s *Server) renderError(c *gin.Context, apiErr *apiclient.APIError, retryURL string) {
	status := apiErr.Status
	if status == 0 {
		status = http.StatusBadGateway
	}
	slog.Warn("page render failed", "path", c.Request.URL.Path, "status", status, "message", apiErr.Message)

	c.HTML(status, "error.tmpl", gin.H{
		"Message":  apiErr.Message,
		"RetryURL": retryURL,
	})
}

// formatPrice renders a price with thousands separators, e.g. 12,000,000.
func formatPrice(price float64) string {
	raw := strconv.FormatInt(int64(price), 10)

	negative := strings.HasPrefix(raw, "-")
	digits := strings.TrimPrefix(raw, "-")

	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	if negative {
		return "-" + b.String()
	}
	return b.String()
}
