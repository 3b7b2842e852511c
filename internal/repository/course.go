package repository

import (
	"context"
	"fmt"
	"sort"

	"ossutracker/internal/models"
	"ossutracker/internal/qerrors"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (fr *FirebaseRepository) ListCourses(ctx context.Context, category models.CourseCategory) ([]*models.Course, error) {
	q := fr.firestoreClient.Collection(models.FirestoreCoursesCollection).Query
	if category != "" {
		q = q.Where("category", "==", string(category))
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	courses := []*models.Course{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error listing courses: %w", err)
		}

		c, err := decodeCourse(doc)
		if err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}

	sortCourses(courses)
	return courses, nil
}

func (fr *FirebaseRepository) GetCourseByID(ctx context.Context, id string) (*models.Course, error) {
	if err := validateID(id); err != nil {
		return nil, qerrors.CourseNotFoundError
	}

	doc, err := fr.firestoreClient.Collection(models.FirestoreCoursesCollection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, qerrors.CourseNotFoundError
	}
	if err != nil {
		return nil, fmt.Errorf("error getting course %s: %w", id, err)
	}

	return decodeCourse(doc)
}

func (fr *FirebaseRepository) FindCourse(ctx context.Context, title string, category models.CourseCategory) (*models.Course, error) {
	iter := fr.firestoreClient.Collection(models.FirestoreCoursesCollection).
		Where("title", "==", title).
		Where("category", "==", string(category)).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, qerrors.CourseNotFoundError
	}
	if err != nil {
		return nil, fmt.Errorf("error finding course %q: %w", title, err)
	}

	return decodeCourse(doc)
}

func (fr *FirebaseRepository) CreateCourse(ctx context.Context, course *models.Course) error {
	if course.ID == "" {
		course.ID = uuid.NewString()
	}

	_, err := fr.firestoreClient.Collection(models.FirestoreCoursesCollection).Doc(course.ID).Set(ctx, courseDocument(course))
	if err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}
	return nil
}

func (fr *FirebaseRepository) UpdateCourse(ctx context.Context, course *models.Course) error {
	if err := validateID(course.ID); err != nil {
		return err
	}

	_, err := fr.firestoreClient.Collection(models.FirestoreCoursesCollection).Doc(course.ID).Update(ctx, []firestore.Update{
		{Path: "title", Value: course.Title},
		{Path: "description", Value: course.Description},
		{Path: "url", Value: course.URL},
		{Path: "ossu_url", Value: course.OSSUURL},
		{Path: "duration_weeks", Value: course.DurationWeeks},
		{Path: "effort_hours_per_week", Value: course.EffortHoursPerWeek},
		{Path: "prerequisites", Value: course.Prerequisites},
		{Path: "category", Value: string(course.Category)},
		{Path: "difficulty", Value: string(course.Difficulty)},
		{Path: "topics_covered", Value: course.TopicsCovered},
		{Path: "updated_at", Value: course.UpdatedAt},
	})
	if status.Code(err) == codes.NotFound {
		return qerrors.CourseNotFoundError
	}
	if err != nil {
		return fmt.Errorf("error updating course %s: %w", course.ID, err)
	}
	return nil
}

func (fr *FirebaseRepository) CountCourses(ctx context.Context) (int, error) {
	iter := fr.firestoreClient.Collection(models.FirestoreCoursesCollection).Select().Documents(ctx)
	defer iter.Stop()

	count := 0
	for {
		_, err := iter.Next()
		if err == iterator.Done {
			return count, nil
		}
		if err != nil {
			return 0, fmt.Errorf("error counting courses: %w", err)
		}
		count++
	}
}

// Helpers

func courseDocument(c *models.Course) map[string]interface{} {
	return map[string]interface{}{
		"id":                    c.ID,
		"title":                 c.Title,
		"description":           c.Description,
		"url":                   c.URL,
		"ossu_url":              c.OSSUURL,
		"duration_weeks":        c.DurationWeeks,
		"effort_hours_per_week": c.EffortHoursPerWeek,
		"prerequisites":         c.Prerequisites,
		"category":              string(c.Category),
		"difficulty":            string(c.Difficulty),
		"topics_covered":        c.TopicsCovered,
		"created_at":            c.CreatedAt,
		"updated_at":            c.UpdatedAt,
	}
}

func decodeCourse(doc *firestore.DocumentSnapshot) (*models.Course, error) {
	var c models.Course
	if err := mapstructure.Decode(doc.Data(), &c); err != nil {
		return nil, fmt.Errorf("error destructuring course document %s: %w", doc.Ref.ID, err)
	}
	c.ID = doc.Ref.ID
	if c.Prerequisites == nil {
		c.Prerequisites = []string{}
	}
	if c.TopicsCovered == nil {
		c.TopicsCovered = []string{}
	}
	return &c, nil
}

// sortCourses orders courses by creation time, breaking ties by title.
func sortCourses(courses []*models.Course) {
	sort.SliceStable(courses, func(i, j int) bool {
		if !courses[i].CreatedAt.Equal(courses[j].CreatedAt) {
			return courses[i].CreatedAt.Before(courses[j].CreatedAt)
		}
		return courses[i].Title < courses[j].Title
	})
}
