package models

import "ossutracker/internal/curriculum"

const (
	FirestoreCoursesCollection  = "courses"
	FirestoreProgressCollection = "user_progress"
)

// DefaultUserID is the single user the tracker records progress for.
const DefaultUserID = "default_user"

// CourseCategory is a curriculum bucket. Categories produced by the curriculum parser are
// a subset of the ones accepted here.
type CourseCategory = curriculum.Category

// CategoryPrerequisites holds the high-school prerequisites of the curriculum. The README
// parser never assigns it; courses in it are created through the API.
const CategoryPrerequisites CourseCategory = "prerequisites"

// Categories lists every category value accepted by the API.
func Categories() []CourseCategory {
	return append([]CourseCategory{CategoryPrerequisites}, curriculum.Categories()...)
}

// ValidCategory reports whether c is one of Categories.
func ValidCategory(c CourseCategory) bool {
	for _, category := range Categories() {
		if c == category {
			return true
		}
	}
	return false
}

type CourseDifficulty string

const (
	DifficultyBeginner     CourseDifficulty = "beginner"
	DifficultyIntermediate CourseDifficulty = "intermediate"
	DifficultyAdvanced     CourseDifficulty = "advanced"
)

func (d CourseDifficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

type CourseStatus string

const (
	StatusNotStarted CourseStatus = "not_started"
	StatusInProgress CourseStatus = "in_progress"
	StatusCompleted  CourseStatus = "completed"
)

func (s CourseStatus) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}
