package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"ossutracker/internal/curriculum"
	"ossutracker/internal/models"
	"ossutracker/internal/qerrors"
)

func createCourse(t *testing.T, r Repository, title string, category models.CourseCategory) *models.Course {
	t.Helper()
	c := &models.Course{Title: title, Category: category, CreatedAt: time.Now()}
	if err := r.CreateCourse(context.Background(), c); err != nil {
		t.Fatalf("Expected no error creating %q, got %v", title, err)
	}
	return c
}

func TestMemoryRepositoryCourses(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	first := createCourse(t, r, "Calculus 1A", curriculum.CoreMath)
	createCourse(t, r, "Nand2Tetris", curriculum.CoreSystems)
	createCourse(t, r, "Mathematics for CS", curriculum.CoreMath)

	if first.ID == "" {
		t.Fatalf("Expected an ID to be assigned")
	}

	all, _ := r.ListCourses(ctx, "")
	if len(all) != 3 || all[0].Title != "Calculus 1A" || all[2].Title != "Mathematics for CS" {
		t.Errorf("Expected courses in creation order, got %v", all)
	}

	math, _ := r.ListCourses(ctx, curriculum.CoreMath)
	if len(math) != 2 {
		t.Errorf("Expected 2 core math courses, got %d", len(math))
	}

	found, err := r.FindCourse(ctx, "Nand2Tetris", curriculum.CoreSystems)
	if err != nil || found.Title != "Nand2Tetris" {
		t.Errorf("Expected to find Nand2Tetris, got %v, %v", found, err)
	}
	if _, err := r.FindCourse(ctx, "Nand2Tetris", curriculum.CoreMath); !errors.Is(err, qerrors.CourseNotFoundError) {
		t.Errorf("Expected CourseNotFoundError for another category, got %v", err)
	}

	count, _ := r.CountCourses(ctx)
	if count != 3 {
		t.Errorf("Expected 3 courses, got %d", count)
	}
}

func TestMemoryRepositoryUpdateCourse(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()
	c := createCourse(t, r, "Databases", curriculum.CoreApplications)

	c.Description = "updated"
	if err := r.UpdateCourse(ctx, c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	got, _ := r.GetCourseByID(ctx, c.ID)
	if got.Description != "updated" {
		t.Errorf("Expected the update to be stored, got %q", got.Description)
	}

	if err := r.UpdateCourse(ctx, &models.Course{ID: "missing"}); !errors.Is(err, qerrors.CourseNotFoundError) {
		t.Errorf("Expected CourseNotFoundError, got %v", err)
	}
}

func TestMemoryRepositoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()
	c := createCourse(t, r, "Compilers", curriculum.AdvancedProgramming)

	got, _ := r.GetCourseByID(ctx, c.ID)
	got.Title = "mutated"

	again, _ := r.GetCourseByID(ctx, c.ID)
	if again.Title != "Compilers" {
		t.Errorf("Expected stored course to be unaffected, got %q", again.Title)
	}
}

func TestMemoryRepositoryProgress(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	if _, err := r.GetProgress(ctx, models.DefaultUserID, "c1"); !errors.Is(err, qerrors.ProgressNotFoundError) {
		t.Errorf("Expected ProgressNotFoundError, got %v", err)
	}

	p := &models.UserProgress{UserID: models.DefaultUserID, CourseID: "c1", Status: models.StatusInProgress}
	if err := r.SaveProgress(ctx, p); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if p.ID == "" {
		t.Fatalf("Expected an ID to be assigned")
	}

	p.Status = models.StatusCompleted
	_ = r.SaveProgress(ctx, p)
	_ = r.SaveProgress(ctx, &models.UserProgress{UserID: "someone_else", CourseID: "c1"})

	got, err := r.GetProgress(ctx, models.DefaultUserID, "c1")
	if err != nil || got.Status != models.StatusCompleted {
		t.Errorf("Expected the saved record to be replaced, got %v, %v", got, err)
	}

	records, _ := r.ListProgress(ctx, models.DefaultUserID)
	if len(records) != 1 {
		t.Errorf("Expected 1 record for the default user, got %d", len(records))
	}
}
