package models

import (
	"time"

	"ossutracker/internal/qerrors"
)

// UserProgress is a user's bookkeeping for one course.
type UserProgress struct {
	ID                   string       `json:"id" mapstructure:"id"`
	UserID               string       `json:"user_id" mapstructure:"user_id"`
	CourseID             string       `json:"course_id" mapstructure:"course_id"`
	Status               CourseStatus `json:"status" mapstructure:"status"`
	CompletionPercentage int          `json:"completion_percentage" mapstructure:"completion_percentage"`
	TimeSpentHours       float64      `json:"time_spent_hours" mapstructure:"time_spent_hours"`
	StartedAt            *time.Time   `json:"started_at" mapstructure:"started_at"`
	CompletedAt          *time.Time   `json:"completed_at" mapstructure:"completed_at"`
	Notes                string       `json:"notes" mapstructure:"notes"`
	CreatedAt            time.Time    `json:"created_at" mapstructure:"created_at"`
	UpdatedAt            time.Time    `json:"updated_at" mapstructure:"updated_at"`
}

// ProgressUpdate is the parameter struct for updating progress. Nil fields are left as they are.
type ProgressUpdate struct {
	Status               *CourseStatus `json:"status"`
	CompletionPercentage *int          `json:"completion_percentage"`
	TimeSpentHours       *float64      `json:"time_spent_hours"`
	Notes                *string       `json:"notes"`
}

// Validate checks a ProgressUpdate for errors.
func (u *ProgressUpdate) Validate() error {
	if u.Status != nil && !u.Status.Valid() {
		return qerrors.InvalidStatusError
	}
	if u.CompletionPercentage != nil && (*u.CompletionPercentage < 0 || *u.CompletionPercentage > 100) {
		return qerrors.InvalidCompletionPercentageError
	}
	if u.TimeSpentHours != nil && *u.TimeSpentHours < 0 {
		return qerrors.InvalidTimeSpentError
	}
	return nil
}

// ProgressSummary aggregates a user's progress over the whole catalogue.
type ProgressSummary struct {
	TotalCourses         int     `json:"total_courses"`
	CompletedCourses     int     `json:"completed_courses"`
	InProgressCourses    int     `json:"in_progress_courses"`
	NotStartedCourses    int     `json:"not_started_courses"`
	TotalTimeSpentHours  float64 `json:"total_time_spent_hours"`
	CompletionPercentage float64 `json:"completion_percentage"`
}
