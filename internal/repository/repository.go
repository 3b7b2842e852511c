package repository

import (
	"context"
	"fmt"
	"log"

	"ossutracker/internal/firebase"
	"ossutracker/internal/models"

	"cloud.google.com/go/firestore"
)

// Repository encapsulates the logic to access courses and progress records.
type Repository interface {
	// ListCourses returns all courses, or only those in category when it is not empty.
	ListCourses(ctx context.Context, category models.CourseCategory) ([]*models.Course, error)
	// GetCourseByID returns the course with the given ID, or qerrors.CourseNotFoundError.
	GetCourseByID(ctx context.Context, id string) (*models.Course, error)
	// FindCourse returns the course with the given title and category, or
	// qerrors.CourseNotFoundError. Title and category identify a course across syncs.
	FindCourse(ctx context.Context, title string, category models.CourseCategory) (*models.Course, error)
	// CreateCourse saves a new course, assigning it an ID.
	CreateCourse(ctx context.Context, course *models.Course) error
	// UpdateCourse overwrites the stored course with the same ID.
	UpdateCourse(ctx context.Context, course *models.Course) error
	// CountCourses returns the number of courses.
	CountCourses(ctx context.Context) (int, error)

	// GetProgress returns the user's progress on a course, or qerrors.ProgressNotFoundError.
	GetProgress(ctx context.Context, userID, courseID string) (*models.UserProgress, error)
	// ListProgress returns every progress record of the user.
	ListProgress(ctx context.Context, userID string) ([]*models.UserProgress, error)
	// SaveProgress creates or replaces a progress record, assigning an ID to new ones.
	SaveProgress(ctx context.Context, progress *models.UserProgress) error
}

var (
	_ Repository = (*FirebaseRepository)(nil)
	_ Repository = (*MemoryRepository)(nil)
)

// FirebaseRepository queries and persists courses and progress in Firestore.
type FirebaseRepository struct {
	firestoreClient *firestore.Client
}

// NewFirebaseRepository creates a new repository with Firestore as the database.
func NewFirebaseRepository(ctx context.Context, credentialsFile, projectID string) (*FirebaseRepository, error) {
	app, err := firebase.NewApp(ctx, credentialsFile, projectID)
	if err != nil {
		return nil, err
	}

	firestoreClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("Firestore client error: %v", err)
	}

	log.Printf("✅ Successfully created Firestore repository client")
	return &FirebaseRepository{firestoreClient: firestoreClient}, nil
}

// Close releases the Firestore client.
func (fr *FirebaseRepository) Close() error {
	return fr.firestoreClient.Close()
}

func validateID(id string) error {
	if id == "" {
		return fmt.Errorf("id must be a non-empty string")
	}
	if len(id) > 128 {
		return fmt.Errorf("id string must not be longer than 128 characters")
	}
	return nil
}
