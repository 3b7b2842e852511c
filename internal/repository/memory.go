package repository

import (
	"context"
	"sync"

	"ossutracker/internal/models"
	"ossutracker/internal/qerrors"

	"github.com/google/uuid"
)

// MemoryRepository keeps courses and progress in process memory. It backs local development
// and tests; nothing survives a restart.
type MemoryRepository struct {
	lock *sync.RWMutex

	courses     map[string]*models.Course
	courseOrder []string
	progress    map[string]*models.UserProgress
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		lock:     &sync.RWMutex{},
		courses:  make(map[string]*models.Course),
		progress: make(map[string]*models.UserProgress),
	}
}

func (mr *MemoryRepository) ListCourses(_ context.Context, category models.CourseCategory) ([]*models.Course, error) {
	mr.lock.RLock()
	defer mr.lock.RUnlock()

	courses := []*models.Course{}
	for _, id := range mr.courseOrder {
		c := mr.courses[id]
		if category != "" && c.Category != category {
			continue
		}
		courses = append(courses, copyCourse(c))
	}
	return courses, nil
}

func (mr *MemoryRepository) GetCourseByID(_ context.Context, id string) (*models.Course, error) {
	mr.lock.RLock()
	defer mr.lock.RUnlock()

	if c, ok := mr.courses[id]; ok {
		return copyCourse(c), nil
	}
	return nil, qerrors.CourseNotFoundError
}

func (mr *MemoryRepository) FindCourse(_ context.Context, title string, category models.CourseCategory) (*models.Course, error) {
	mr.lock.RLock()
	defer mr.lock.RUnlock()

	for _, id := range mr.courseOrder {
		if c := mr.courses[id]; c.Title == title && c.Category == category {
			return copyCourse(c), nil
		}
	}
	return nil, qerrors.CourseNotFoundError
}

func (mr *MemoryRepository) CreateCourse(_ context.Context, course *models.Course) error {
	mr.lock.Lock()
	defer mr.lock.Unlock()

	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	if _, ok := mr.courses[course.ID]; !ok {
		mr.courseOrder = append(mr.courseOrder, course.ID)
	}
	mr.courses[course.ID] = copyCourse(course)
	return nil
}

func (mr *MemoryRepository) UpdateCourse(_ context.Context, course *models.Course) error {
	mr.lock.Lock()
	defer mr.lock.Unlock()

	if _, ok := mr.courses[course.ID]; !ok {
		return qerrors.CourseNotFoundError
	}
	mr.courses[course.ID] = copyCourse(course)
	return nil
}

func (mr *MemoryRepository) CountCourses(_ context.Context) (int, error) {
	mr.lock.RLock()
	defer mr.lock.RUnlock()

	return len(mr.courses), nil
}

func (mr *MemoryRepository) GetProgress(_ context.Context, userID, courseID string) (*models.UserProgress, error) {
	mr.lock.RLock()
	defer mr.lock.RUnlock()

	for _, p := range mr.progress {
		if p.UserID == userID && p.CourseID == courseID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, qerrors.ProgressNotFoundError
}

func (mr *MemoryRepository) ListProgress(_ context.Context, userID string) ([]*models.UserProgress, error) {
	mr.lock.RLock()
	defer mr.lock.RUnlock()

	records := []*models.UserProgress{}
	for _, p := range mr.progress {
		if p.UserID == userID {
			cp := *p
			records = append(records, &cp)
		}
	}
	return records, nil
}

func (mr *MemoryRepository) SaveProgress(_ context.Context, p *models.UserProgress) error {
	mr.lock.Lock()
	defer mr.lock.Unlock()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	cp := *p
	mr.progress[p.ID] = &cp
	return nil
}

// copyCourse keeps callers from mutating stored courses through shared slices.
func copyCourse(c *models.Course) *models.Course {
	cp := *c
	cp.Prerequisites = append([]string{}, c.Prerequisites...)
	cp.TopicsCovered = append([]string{}, c.TopicsCovered...)
	if c.DurationWeeks != nil {
		weeks := *c.DurationWeeks
		cp.DurationWeeks = &weeks
	}
	return &cp
}
