package router

import (
	"encoding/json"
	"errors"
	"net/http"

	"ossutracker/internal/middleware"
	"ossutracker/internal/models"
	"ossutracker/internal/progress"
	"ossutracker/internal/qerrors"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"golang.org/x/sync/errgroup"
)

func CourseRoutes(env *Env) *chi.Mux {
	router := chi.NewRouter()

	// Catalogue
	router.Get("/", env.getCoursesHandler)
	router.Post("/", env.createCourseHandler)

	router.Route("/{courseID}", func(router chi.Router) {
		// Sets "courseID" from URL param in the context
		router.Use(middleware.CourseCtx())

		router.Get("/", env.getCourseHandler)
		router.Post("/progress", env.updateProgressHandler)
	})

	return router
}

// GET: /?category=
func (e *Env) getCoursesHandler(w http.ResponseWriter, r *http.Request) {
	category := models.CourseCategory(r.URL.Query().Get("category"))
	if category != "" && !models.ValidCategory(category) {
		renderError(w, r, http.StatusBadRequest, qerrors.InvalidCategoryError)
		return
	}

	// Courses and progress are independent reads.
	var (
		courses []*models.Course
		records []*models.UserProgress
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		courses, err = e.Repository.ListCourses(ctx, category)
		return err
	})
	g.Go(func() (err error) {
		records, err = e.Repository.ListProgress(ctx, e.userID())
		return err
	})
	if err := g.Wait(); err != nil {
		renderError(w, r, http.StatusInternalServerError, err)
		return
	}

	byCourse := progress.ByCourse(records)
	resp := make([]*models.CourseWithProgress, 0, len(courses))
	for _, c := range courses {
		resp = append(resp, &models.CourseWithProgress{Course: c, Progress: byCourse[c.ID]})
	}

	render.JSON(w, r, resp)
}

// POST: /
func (e *Env) createCourseHandler(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, http.StatusBadRequest, err)
		return
	}
	if err := req.Validate(); err != nil {
		renderError(w, r, http.StatusBadRequest, err)
		return
	}

	course := models.NewCourseFromRequest(&req, e.now())
	if err := e.Repository.CreateCourse(r.Context(), course); err != nil {
		renderError(w, r, http.StatusInternalServerError, err)
		return
	}

	render.JSON(w, r, course)
}

// GET: /{courseID}
func (e *Env) getCourseHandler(w http.ResponseWriter, r *http.Request) {
	courseID := middleware.CourseID(r)

	course, err := e.Repository.GetCourseByID(r.Context(), courseID)
	if err != nil {
		renderError(w, r, statusFor(err), err)
		return
	}

	p, err := e.Repository.GetProgress(r.Context(), e.userID(), courseID)
	if err != nil && !errors.Is(err, qerrors.ProgressNotFoundError) {
		renderError(w, r, http.StatusInternalServerError, err)
		return
	}

	render.JSON(w, r, &models.CourseWithProgress{Course: course, Progress: p})
}

// POST: /{courseID}/progress
func (e *Env) updateProgressHandler(w http.ResponseWriter, r *http.Request) {
	courseID := middleware.CourseID(r)

	if _, err := e.Repository.GetCourseByID(r.Context(), courseID); err != nil {
		renderError(w, r, statusFor(err), err)
		return
	}

	var update models.ProgressUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		renderError(w, r, http.StatusBadRequest, err)
		return
	}
	if err := update.Validate(); err != nil {
		renderError(w, r, http.StatusBadRequest, err)
		return
	}

	existing, err := e.Repository.GetProgress(r.Context(), e.userID(), courseID)
	if err != nil && !errors.Is(err, qerrors.ProgressNotFoundError) {
		renderError(w, r, http.StatusInternalServerError, err)
		return
	}

	p := progress.Apply(existing, e.userID(), courseID, &update, e.now())
	if err := e.Repository.SaveProgress(r.Context(), p); err != nil {
		renderError(w, r, http.StatusInternalServerError, err)
		return
	}

	render.JSON(w, r, p)
}
