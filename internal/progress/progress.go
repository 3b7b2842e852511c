// Package progress holds the bookkeeping rules for a user's course progress. Nothing here
// touches the database.
package progress

import (
	"math"
	"time"

	"ossutracker/internal/models"
)

// Apply returns the progress record that results from applying update to existing at time
// now. A nil existing record starts a new one for userID and courseID. Moving to in_progress
// stamps StartedAt once; moving to completed stamps CompletedAt and forces 100%.
func Apply(existing *models.UserProgress, userID, courseID string, update *models.ProgressUpdate, now time.Time) *models.UserProgress {
	var p models.UserProgress
	if existing != nil {
		p = *existing
	} else {
		p = models.UserProgress{
			UserID:    userID,
			CourseID:  courseID,
			Status:    models.StatusNotStarted,
			CreatedAt: now,
		}
	}

	if update.Status != nil {
		p.Status = *update.Status
	}
	if update.CompletionPercentage != nil {
		p.CompletionPercentage = *update.CompletionPercentage
	}
	if update.TimeSpentHours != nil {
		p.TimeSpentHours = *update.TimeSpentHours
	}
	if update.Notes != nil {
		p.Notes = *update.Notes
	}

	if update.Status != nil {
		switch *update.Status {
		case models.StatusInProgress:
			if p.StartedAt == nil {
				startedAt := now
				p.StartedAt = &startedAt
			}
		case models.StatusCompleted:
			completedAt := now
			p.CompletedAt = &completedAt
			p.CompletionPercentage = 100
		}
	}

	p.UpdatedAt = now
	return &p
}

// Summarize aggregates records against a catalogue of totalCourses courses. Courses without
// a record count as not started.
func Summarize(totalCourses int, records []*models.UserProgress) models.ProgressSummary {
	summary := models.ProgressSummary{TotalCourses: totalCourses}

	for _, p := range records {
		switch p.Status {
		case models.StatusCompleted:
			summary.CompletedCourses++
		case models.StatusInProgress:
			summary.InProgressCourses++
		}
		summary.TotalTimeSpentHours += p.TimeSpentHours
	}

	summary.NotStartedCourses = totalCourses - summary.CompletedCourses - summary.InProgressCourses
	if totalCourses > 0 {
		pct := float64(summary.CompletedCourses) / float64(totalCourses) * 100
		summary.CompletionPercentage = math.Round(pct*10) / 10
	}

	return summary
}

// ByCourse indexes records by course ID.
func ByCourse(records []*models.UserProgress) map[string]*models.UserProgress {
	index := make(map[string]*models.UserProgress, len(records))
	for _, p := range records {
		index[p.CourseID] = p
	}
	return index
}
