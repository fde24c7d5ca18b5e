package models

import "github.com/samber/mo"

// JobAdvertisement is one job posting as listed by the API.
type JobAdvertisement struct {
	ID                  int                `json:"id"`
	Title               string             `json:"jobTitle"`
	CompanyName         string             `json:"companyName"`
	City                string             `json:"city"`
	OpenPositionCount   int                `json:"openPositionCount"`
	MinSalary           mo.Option[float64] `json:"minSalary,omitzero"`
	MaxSalary           mo.Option[float64] `json:"maxSalary,omitzero"`
	ReleaseDate         Date               `json:"releaseDate"`
	ApplicationDeadline Date               `json:"applicationDeadline"`
	Active              bool               `json:"active"`
}

// JobPosition is a lookup entry for the posting form.
type JobPosition struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// City is a lookup entry for the posting form.
type City struct {
	ID   int    `json:"id"`
	Name string `json:"cityName"`
}

// CreateJobAdvertisementRequest is the body of POST /jobPost/add.
type CreateJobAdvertisementRequest struct {
	JobPositionID       int                `json:"jobPositionId"`
	CityID              int                `json:"cityId"`
	EmployerID          int                `json:"employerId"`
	Description         string             `json:"description"`
	OpenPositionCount   int                `json:"openPositionCount"`
	MinSalary           mo.Option[float64] `json:"minSalary,omitzero"`
	MaxSalary           mo.Option[float64] `json:"maxSalary,omitzero"`
	ApplicationDeadline Date               `json:"applicationDeadline"`
}
