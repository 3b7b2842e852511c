package qerrors

import "errors"

var (
	// Course errors
	CourseNotFoundError    = errors.New("course not found")
	InvalidCourseError     = errors.New("course must have a non-empty title and a non-negative duration")
	InvalidCategoryError   = errors.New("invalid course category")
	InvalidDifficultyError = errors.New("invalid course difficulty")

	// Progress errors
	ProgressNotFoundError            = errors.New("progress not found")
	InvalidStatusError               = errors.New("invalid course status")
	InvalidCompletionPercentageError = errors.New("completion percentage must be between 0 and 100")
	InvalidTimeSpentError            = errors.New("time spent must not be negative")
)

// IsValidationError reports whether err is caused by a malformed request.
func IsValidationError(err error) bool {
	for _, target := range []error{
		InvalidCourseError,
		InvalidCategoryError,
		InvalidDifficultyError,
		InvalidStatusError,
		InvalidCompletionPercentageError,
		InvalidTimeSpentError,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
