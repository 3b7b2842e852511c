package router

import (
	"net/http"

	"ossutracker/internal/models"
	"ossutracker/internal/progress"

	"github.com/go-chi/render"
	"golang.org/x/sync/errgroup"
)

// GET: /progress/summary
func (e *Env) getProgressSummaryHandler(w http.ResponseWriter, r *http.Request) {
	var (
		total   int
		records []*models.UserProgress
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		total, err = e.Repository.CountCourses(ctx)
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

	render.JSON(w, r, progress.Summarize(total, records))
}
