package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"job-board-web/internal/api"
	"job-board-web/internal/controller"
	"job-board-web/internal/models"
)

// page carries what the layout needs.
type page struct {
	Title    string
	Message  string
	Redirect string
}

type homePage struct {
	page
	View     controller.ListingView
	Failed   bool
	RetryURL string
}

type seekerPage struct {
	page
	Draft models.JobSeekerRegisterRequest
}

type employerPage struct {
	page
	Draft models.EmployerRegisterRequest
}

type postJobPage struct {
	page
	Draft     controller.PostJobDraft
	Positions []models.JobPosition
	Cities    []models.City
}

type submittedPage struct {
	page
	Heading      string
	Confirmation string
}

const (
	seekerTitle   = "Job Seeker Registration"
	employerTitle = "Employer Registration"
	postJobTitle  = "Post a New Job"
)

var (
	seekerFields   = []string{"name", "lastName", "nationalId", "birthDate", "email", "password", "confirmPassword"}
	employerFields = []string{"companyName", "companyWebPage", "email", "phoneNumber", "password", "confirmPassword"}
	postJobFields  = []string{"jobPositionId", "cityId", "description", "openPositionCount", "minSalary", "maxSalary", "applicationDeadline"}
)

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// newListing builds a fresh listing for the feed named in the query.
func (s *Server) newListing(c *gin.Context) (*controller.Listing, error) {
	feed, err := controller.ParseFeed(c.Query("feed"))
	if err != nil {
		return nil, err
	}

	employerID := 0
	if feed == controller.FeedByEmployer {
		id, ok := controller.IdentityFrom(c.Request.Context()).EmployerID.Get()
		if !ok {
			return nil, fmt.Errorf("the employer feed needs an %s header or %s cookie", EmployerHeader, EmployerCookie)
		}
		employerID = id
	}

	return controller.NewListing(s.deps.Jobs, s.logger,
		controller.WithFeed(feed, employerID),
		controller.WithClock(s.now),
	), nil
}

func (s *Server) home(c *gin.Context) {
	listing, err := s.newListing(c)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	listing.Load(c.Request.Context())
	view := listing.View(c.Query("q"), c.Query("active") == "1")

	status := http.StatusOK
	failed := view.State == controller.ListingError
	if failed {
		status = http.StatusBadGateway
	}
	c.HTML(status, "home.html", homePage{
		page:     page{Title: view.Heading()},
		View:     view,
		Failed:   failed,
		RetryURL: c.Request.URL.RequestURI(),
	})
}

type jobCardJSON struct {
	models.JobAdvertisement
	DeadlineSoon bool `json:"deadlineSoon"`
}

// jobsJSON serves the listing view in the API's own envelope shape.
func (s *Server) jobsJSON(c *gin.Context) {
	listing, err := s.newListing(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	listing.Load(c.Request.Context())
	view := listing.View(c.Query("q"), c.Query("active") == "1")
	if view.State == controller.ListingError {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": view.Message})
		return
	}

	cards := make([]jobCardJSON, 0, len(view.Cards))
	for _, card := range view.Cards {
		cards = append(cards, jobCardJSON{JobAdvertisement: card.Job, DeadlineSoon: card.DeadlineSoon})
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": view.CountLabel(),
		"data":    cards,
	})
}

func (s *Server) formOptions() []controller.FormOption {
	opts := []controller.FormOption{controller.WithLogger(s.logger)}
	if s.deps.Recorder != nil {
		opts = append(opts, controller.WithRecorder(s.deps.Recorder))
	}
	return opts
}

// bindFields copies the posted values into a form by wire name. Every field
// is applied; the first rejection is returned.
func bindFields(c *gin.Context, fields []string, set func(name, value string) error) error {
	var first error
	for _, name := range fields {
		if err := set(name, c.PostForm(name)); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// failureStatus maps a submission error to the response status.
func failureStatus(err error) int {
	var validationErr *controller.ValidationError
	var serverErr *api.ServerError
	switch {
	case errors.As(err, &validationErr), errors.As(err, &serverErr):
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadGateway
}

// failureMessage is the form's message, or the binding error when the
// draft never reached Submit.
func failureMessage(err error, formMessage string) string {
	if formMessage != "" {
		return formMessage
	}
	var validationErr *controller.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}
	return err.Error()
}

func (s *Server) renderSubmitted(c *gin.Context, title, heading, confirmation string) {
	c.HTML(http.StatusOK, "submitted.html", submittedPage{
		page:         page{Title: title, Redirect: controller.HomePath},
		Heading:      heading,
		Confirmation: confirmation,
	})
}

func (s *Server) seekerPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register_seeker.html", seekerPage{page: page{Title: seekerTitle}})
}

func (s *Server) registerSeeker(c *gin.Context) {
	form := controller.NewJobSeekerForm(s.deps.Accounts, s.formOptions()...)

	err := bindFields(c, seekerFields, form.SetField)
	if err == nil {
		err = form.Submit(c.Request.Context())
	}
	if err != nil {
		c.HTML(failureStatus(err), "register_seeker.html", seekerPage{
			page:  page{Title: seekerTitle, Message: failureMessage(err, form.Message())},
			Draft: form.Draft(),
		})
		return
	}
	s.renderSubmitted(c, seekerTitle, "Registration Successful!", form.Confirmation())
}

func (s *Server) employerPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register_employer.html", employerPage{page: page{Title: employerTitle}})
}

func (s *Server) registerEmployer(c *gin.Context) {
	form := controller.NewEmployerForm(s.deps.Accounts, s.formOptions()...)

	err := bindFields(c, employerFields, form.SetField)
	if err == nil {
		err = form.Submit(c.Request.Context())
	}
	if err != nil {
		c.HTML(failureStatus(err), "register_employer.html", employerPage{
			page:  page{Title: employerTitle, Message: failureMessage(err, form.Message())},
			Draft: form.Draft(),
		})
		return
	}
	s.renderSubmitted(c, employerTitle, "Registration Successful!", form.Confirmation())
}

func (s *Server) newPostJobForm(c *gin.Context) *controller.PostJobForm {
	identity := controller.IdentityFrom(c.Request.Context())
	return controller.NewPostJobForm(s.deps.Jobs, identity, s.formOptions()...)
}

func (s *Server) postJobPage(c *gin.Context) {
	form := s.newPostJobForm(c)
	form.LoadReferenceData(c.Request.Context())

	c.HTML(http.StatusOK, "post_job.html", postJobPage{
		page:      page{Title: postJobTitle},
		Draft:     form.Draft(),
		Positions: form.Positions(),
		Cities:    form.Cities(),
	})
}

func (s *Server) postJob(c *gin.Context) {
	form := s.newPostJobForm(c)

	err := bindFields(c, postJobFields, form.SetField)
	if err == nil {
		err = form.Submit(c.Request.Context())
	}
	if err != nil {
		form.LoadReferenceData(c.Request.Context())
		c.HTML(failureStatus(err), "post_job.html", postJobPage{
			page:      page{Title: postJobTitle, Message: failureMessage(err, form.Message())},
			Draft:     form.Draft(),
			Positions: form.Positions(),
			Cities:    form.Cities(),
		})
		return
	}
	s.renderSubmitted(c, postJobTitle, "Job Posted Successfully!", form.Confirmation())
}
