package ossu

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ossutracker/internal/curriculum"
	"ossutracker/internal/models"
	"ossutracker/internal/qerrors"
	"ossutracker/internal/repository"

	"github.com/golang/glog"
)

// Syncer parses the curriculum from Source and upserts its courses into Store, matching
// existing courses on title and category.
type Syncer struct {
	Source Source
	Store  repository.Repository
	Now    func() time.Time
}

func NewSyncer(source Source, store repository.Repository) *Syncer {
	return &Syncer{Source: source, Store: store, Now: time.Now}
}

func (s *Syncer) Sync(ctx context.Context) (*models.SyncResult, error) {
	glog.Info("Starting OSSU course sync...")

	document, err := s.Source.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	parsed := curriculum.Parse(document)
	result := &models.SyncResult{TotalProcessed: len(parsed)}

	for _, p := range parsed {
		now := s.now()

		existing, err := s.Store.FindCourse(ctx, p.Title, p.Category)
		switch {
		case errors.Is(err, qerrors.CourseNotFoundError):
			if err := s.Store.CreateCourse(ctx, models.NewCourseFromParsed(p, now)); err != nil {
				return nil, fmt.Errorf("error creating course %q: %w", p.Title, err)
			}
			result.NewCourses++
		case err != nil:
			return nil, fmt.Errorf("error looking up course %q: %w", p.Title, err)
		default:
			existing.ApplyParsed(p, now)
			if err := s.Store.UpdateCourse(ctx, existing); err != nil {
				return nil, fmt.Errorf("error updating course %q: %w", p.Title, err)
			}
			result.UpdatedCourses++
		}
	}

	result.Message = "Successfully synced OSSU curriculum"
	glog.Infof("OSSU sync completed: %d new, %d updated", result.NewCourses, result.UpdatedCourses)
	return result, nil
}

func (s *Syncer) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}
