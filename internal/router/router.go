package router

import (
	"errors"
	"net/http"
	"time"

	"ossutracker/internal/models"
	"ossutracker/internal/ossu"
	"ossutracker/internal/qerrors"
	"ossutracker/internal/repository"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/golang/glog"
)

const APIVersion = "1.0.0"

// Env holds what the handlers need to serve a request.
type Env struct {
	Repository repository.Repository
	Syncer     *ossu.Syncer
	// UserID is the user progress is read and written for.
	UserID string
	Now    func() time.Time
}

func (e *Env) now() time.Time {
	if e.Now == nil {
		return time.Now().UTC()
	}
	return e.Now()
}

func (e *Env) userID() string {
	if e.UserID == "" {
		return models.DefaultUserID
	}
	return e.UserID
}

// APIRoutes mounts every /api endpoint.
func APIRoutes(env *Env) *chi.Mux {
	router := chi.NewRouter()

	router.Get("/", rootHandler)
	router.Get("/categories", getCategoriesHandler)
	router.Mount("/courses", CourseRoutes(env))
	router.Get("/progress/summary", env.getProgressSummaryHandler)
	router.Post("/sync-ossu-courses", env.syncHandler)

	return router
}

// GET: /
func rootHandler(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{
		"message": "OSSU Course Tracker API",
		"version": APIVersion,
	})
}

// GET: /categories
func getCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, models.Categories())
}

// renderError responds with {"detail": ...}. Server errors are logged.
func renderError(w http.ResponseWriter, r *http.Request, status int, err error) {
	if status >= http.StatusInternalServerError {
		glog.Errorf("%s %s: %v", r.Method, r.URL.Path, err)
	}
	render.Status(r, status)
	render.JSON(w, r, map[string]string{"detail": err.Error()})
}

// statusFor maps repository and validation errors to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, qerrors.CourseNotFoundError), errors.Is(err, qerrors.ProgressNotFoundError):
		return http.StatusNotFound
	case qerrors.IsValidationError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
