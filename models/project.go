package models

// Project groups apartments under a development. Projects are created by
// seeding only; the API never updates or deletes them.
type Project struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// ProjectSummary is the {id, name} projection returned by the project list.
type ProjectSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
