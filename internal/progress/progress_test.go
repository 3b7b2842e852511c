package progress

import (
	"testing"
	"time"

	"ossutracker/internal/models"
)

func statusPtr(s models.CourseStatus) *models.CourseStatus { return &s }
func intPtr(i int) *int                                   { return &i }
func floatPtr(f float64) *float64                         { return &f }
func stringPtr(s string) *string                          { return &s }

func TestApplyCreatesRecord(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	p := Apply(nil, models.DefaultUserID, "c1", &models.ProgressUpdate{
		Status:         statusPtr(models.StatusInProgress),
		TimeSpentHours: floatPtr(2.5),
	}, now)

	if p.UserID != models.DefaultUserID || p.CourseID != "c1" {
		t.Errorf("Expected user and course to be set, got %q and %q", p.UserID, p.CourseID)
	}
	if p.StartedAt == nil || !p.StartedAt.Equal(now) {
		t.Errorf("Expected StartedAt to be %v, got %v", now, p.StartedAt)
	}
	if p.CompletedAt != nil {
		t.Errorf("Expected no CompletedAt, got %v", p.CompletedAt)
	}
	if p.TimeSpentHours != 2.5 {
		t.Errorf("Expected 2.5 hours, got %f", p.TimeSpentHours)
	}
	if !p.CreatedAt.Equal(now) || !p.UpdatedAt.Equal(now) {
		t.Errorf("Expected timestamps to be %v, got %v and %v", now, p.CreatedAt, p.UpdatedAt)
	}
}

func TestApplyDefaultsToNotStarted(t *testing.T) {
	p := Apply(nil, models.DefaultUserID, "c1", &models.ProgressUpdate{Notes: stringPtr("later")}, time.Now())
	if p.Status != models.StatusNotStarted {
		t.Errorf("Expected status %q, got %q", models.StatusNotStarted, p.Status)
	}
	if p.Notes != "later" {
		t.Errorf("Expected notes to be set, got %q", p.Notes)
	}
}

func TestApplyKeepsFirstStart(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	later := start.Add(48 * time.Hour)

	first := Apply(nil, models.DefaultUserID, "c1", &models.ProgressUpdate{Status: statusPtr(models.StatusInProgress)}, start)
	second := Apply(first, models.DefaultUserID, "c1", &models.ProgressUpdate{
		Status:               statusPtr(models.StatusInProgress),
		CompletionPercentage: intPtr(40),
	}, later)

	if !second.StartedAt.Equal(start) {
		t.Errorf("Expected StartedAt to stay %v, got %v", start, second.StartedAt)
	}
	if second.CompletionPercentage != 40 {
		t.Errorf("Expected 40%%, got %d", second.CompletionPercentage)
	}
	if !second.CreatedAt.Equal(start) || !second.UpdatedAt.Equal(later) {
		t.Errorf("Expected CreatedAt %v and UpdatedAt %v, got %v and %v", start, later, second.CreatedAt, second.UpdatedAt)
	}
	if first.CompletionPercentage != 0 {
		t.Errorf("Expected the existing record to be left untouched, got %d%%", first.CompletionPercentage)
	}
}

func TestApplyCompletionForcesFullPercentage(t *testing.T) {
	now := time.Now()
	p := Apply(nil, models.DefaultUserID, "c1", &models.ProgressUpdate{
		Status:               statusPtr(models.StatusCompleted),
		CompletionPercentage: intPtr(70),
	}, now)

	if p.CompletionPercentage != 100 {
		t.Errorf("Expected 100%%, got %d", p.CompletionPercentage)
	}
	if p.CompletedAt == nil || !p.CompletedAt.Equal(now) {
		t.Errorf("Expected CompletedAt to be %v, got %v", now, p.CompletedAt)
	}
}

func TestSummarize(t *testing.T) {
	records := []*models.UserProgress{
		{CourseID: "a", Status: models.StatusCompleted, TimeSpentHours: 10},
		{CourseID: "b", Status: models.StatusInProgress, TimeSpentHours: 2.5},
		{CourseID: "c", Status: models.StatusNotStarted},
	}

	summary := Summarize(3, records)
	expected := models.ProgressSummary{
		TotalCourses:         3,
		CompletedCourses:     1,
		InProgressCourses:    1,
		NotStartedCourses:    1,
		TotalTimeSpentHours:  12.5,
		CompletionPercentage: 33.3,
	}
	if summary != expected {
		t.Errorf("Expected %+v, got %+v", expected, summary)
	}
}

func TestSummarizeNoCourses(t *testing.T) {
	summary := Summarize(0, nil)
	if summary.CompletionPercentage != 0 || summary.NotStartedCourses != 0 {
		t.Errorf("Expected an empty summary, got %+v", summary)
	}
}

func TestByCourse(t *testing.T) {
	index := ByCourse([]*models.UserProgress{{CourseID: "a"}, {CourseID: "b"}})
	if len(index) != 2 || index["b"].CourseID != "b" {
		t.Errorf("Expected records indexed by course, got %v", index)
	}
}
