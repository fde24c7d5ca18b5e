package controller

import (
	"math"
	"strings"
	"time"

	"job-board-web/internal/models"
)

// soonWindowDays is the largest number of remaining days flagged as soon.
const soonWindowDays = 7

// MatchesTerm reports whether the title, company or city contains term,
// ignoring case. An empty term matches everything.
func MatchesTerm(job models.JobAdvertisement, term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(job.Title), term) ||
		strings.Contains(strings.ToLower(job.CompanyName), term) ||
		strings.Contains(strings.ToLower(job.City), term)
}

// FilterJobs returns the jobs matching term, restricted to active ones when
// activeOnly is set. The input order is preserved and jobs is not modified.
func FilterJobs(jobs []models.JobAdvertisement, term string, activeOnly bool) []models.JobAdvertisement {
	filtered := make([]models.JobAdvertisement, 0, len(jobs))
	for _, job := range jobs {
		if !MatchesTerm(job, term) {
			continue
		}
		if activeOnly && !job.Active {
			continue
		}
		filtered = append(filtered, job)
	}
	return filtered
}

// DaysUntil returns the whole days from now to the deadline, rounded up.
func DaysUntil(deadline models.Date, now time.Time) int {
	return int(math.Ceil(deadline.Sub(now).Hours() / 24))
}

// DeadlineSoon is true when 1 to 7 days remain.
func DeadlineSoon(deadline models.Date, now time.Time) bool {
	if deadline.IsZero() {
		return false
	}
	days := DaysUntil(deadline, now)
	return days > 0 && days <= soonWindowDays
}
