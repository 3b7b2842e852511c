package repository

import (
	"context"
	"fmt"

	"ossutracker/internal/models"
	"ossutracker/internal/qerrors"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
	"google.golang.org/api/iterator"
)

func (fr *FirebaseRepository) GetProgress(ctx context.Context, userID, courseID string) (*models.UserProgress, error) {
	iter := fr.firestoreClient.Collection(models.FirestoreProgressCollection).
		Where("user_id", "==", userID).
		Where("course_id", "==", courseID).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, qerrors.ProgressNotFoundError
	}
	if err != nil {
		return nil, fmt.Errorf("error getting progress for course %s: %w", courseID, err)
	}

	return decodeProgress(doc)
}

func (fr *FirebaseRepository) ListProgress(ctx context.Context, userID string) ([]*models.UserProgress, error) {
	iter := fr.firestoreClient.Collection(models.FirestoreProgressCollection).
		Where("user_id", "==", userID).
		Documents(ctx)
	defer iter.Stop()

	records := []*models.UserProgress{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error listing progress: %w", err)
		}

		p, err := decodeProgress(doc)
		if err != nil {
			return nil, err
		}
		records = append(records, p)
	}

	return records, nil
}

func (fr *FirebaseRepository) SaveProgress(ctx context.Context, p *models.UserProgress) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	_, err := fr.firestoreClient.Collection(models.FirestoreProgressCollection).Doc(p.ID).Set(ctx, map[string]interface{}{
		"id":                    p.ID,
		"user_id":               p.UserID,
		"course_id":             p.CourseID,
		"status":                string(p.Status),
		"completion_percentage": p.CompletionPercentage,
		"time_spent_hours":      p.TimeSpentHours,
		"started_at":            p.StartedAt,
		"completed_at":          p.CompletedAt,
		"notes":                 p.Notes,
		"created_at":            p.CreatedAt,
		"updated_at":            p.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("error saving progress %s: %w", p.ID, err)
	}
	return nil
}

func decodeProgress(doc *firestore.DocumentSnapshot) (*models.UserProgress, error) {
	var p models.UserProgress
	if err := mapstructure.Decode(doc.Data(), &p); err != nil {
		return nil, fmt.Errorf("error destructuring progress document %s: %w", doc.Ref.ID, err)
	}
	p.ID = doc.Ref.ID
	return &p, nil
}
