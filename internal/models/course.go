package models

import (
	"strings"
	"time"

	"ossutracker/internal/curriculum"
	"ossutracker/internal/qerrors"
)

type Course struct {
	ID                 string           `json:"id" mapstructure:"id"`
	Title              string           `json:"title" mapstructure:"title"`
	Description        string           `json:"description" mapstructure:"description"`
	URL                string           `json:"url" mapstructure:"url"`
	OSSUURL            string           `json:"ossu_url" mapstructure:"ossu_url"`
	DurationWeeks      *int             `json:"duration_weeks" mapstructure:"duration_weeks"`
	EffortHoursPerWeek string           `json:"effort_hours_per_week" mapstructure:"effort_hours_per_week"`
	Prerequisites      []string         `json:"prerequisites" mapstructure:"prerequisites"`
	Category           CourseCategory   `json:"category" mapstructure:"category"`
	Difficulty         CourseDifficulty `json:"difficulty" mapstructure:"difficulty"`
	TopicsCovered      []string         `json:"topics_covered" mapstructure:"topics_covered"`
	CreatedAt          time.Time        `json:"created_at" mapstructure:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at" mapstructure:"updated_at"`
}

// CourseWithProgress is a course together with the current user's progress on it, if any.
type CourseWithProgress struct {
	*Course
	Progress *UserProgress `json:"progress"`
}

// CreateCourseRequest is the parameter struct for creating a course through the API.
type CreateCourseRequest struct {
	Title              string           `json:"title"`
	Description        string           `json:"description"`
	URL                string           `json:"url"`
	OSSUURL            string           `json:"ossu_url"`
	DurationWeeks      *int             `json:"duration_weeks"`
	EffortHoursPerWeek string           `json:"effort_hours_per_week"`
	Prerequisites      []string         `json:"prerequisites"`
	Category           CourseCategory   `json:"category"`
	Difficulty         CourseDifficulty `json:"difficulty"`
	TopicsCovered      []string         `json:"topics_covered"`
}

// Validate checks a CreateCourseRequest for errors and fills in defaults.
func (r *CreateCourseRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return qerrors.InvalidCourseError
	}
	if !ValidCategory(r.Category) {
		return qerrors.InvalidCategoryError
	}
	if r.DurationWeeks != nil && *r.DurationWeeks < 0 {
		return qerrors.InvalidCourseError
	}
	if r.Difficulty == "" {
		r.Difficulty = DifficultyIntermediate
	}
	if !r.Difficulty.Valid() {
		return qerrors.InvalidDifficultyError
	}
	if r.Prerequisites == nil {
		r.Prerequisites = []string{}
	}
	if r.TopicsCovered == nil {
		r.TopicsCovered = []string{}
	}
	return nil
}

// NewCourseFromRequest builds an unsaved course. The description is cleaned of markdown.
func NewCourseFromRequest(r *CreateCourseRequest, now time.Time) *Course {
	return &Course{
		Title:              r.Title,
		Description:        curriculum.Normalize(r.Description),
		URL:                r.URL,
		OSSUURL:            r.OSSUURL,
		DurationWeeks:      r.DurationWeeks,
		EffortHoursPerWeek: r.EffortHoursPerWeek,
		Prerequisites:      r.Prerequisites,
		Category:           r.Category,
		Difficulty:         r.Difficulty,
		TopicsCovered:      r.TopicsCovered,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// NewCourseFromParsed builds an unsaved course from a parsed curriculum row.
func NewCourseFromParsed(p curriculum.ParsedCourse, now time.Time) *Course {
	c := &Course{
		Difficulty: DifficultyIntermediate,
		CreatedAt:  now,
	}
	c.ApplyParsed(p, now)
	return c
}

// ApplyParsed overwrites the curriculum-derived fields of c, keeping its identity,
// difficulty and creation time.
func (c *Course) ApplyParsed(p curriculum.ParsedCourse, now time.Time) {
	c.Title = p.Title
	c.Description = p.Description
	c.URL = p.SourceURL
	c.OSSUURL = p.AnchorURL
	c.DurationWeeks = p.DurationWeeks
	c.EffortHoursPerWeek = p.EffortPerWeek
	c.Prerequisites = p.Prerequisites
	c.Category = p.Category
	c.TopicsCovered = p.TopicsCovered
	c.UpdatedAt = now
}

// SyncResult reports what a curriculum sync did to the course catalogue.
type SyncResult struct {
	Message        string `json:"message" yaml:"message"`
	NewCourses     int    `json:"new_courses" yaml:"new_courses"`
	UpdatedCourses int    `json:"updated_courses" yaml:"updated_courses"`
	TotalProcessed int    `json:"total_processed" yaml:"total_processed"`
}
