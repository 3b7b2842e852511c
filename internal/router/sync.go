package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/render"
)

// POST: /sync-ossu-courses
//
// Fetches the curriculum README, parses it, and upserts every course on (title, category).
func (e *Env) syncHandler(w http.ResponseWriter, r *http.Request) {
	if e.Syncer == nil {
		renderError(w, r, http.StatusInternalServerError, errors.New("curriculum sync is not configured"))
		return
	}

	result, err := e.Syncer.Sync(r.Context())
	if err != nil {
		renderError(w, r, http.StatusInternalServerError, fmt.Errorf("Failed to sync courses: %v", err))
		return
	}

	render.JSON(w, r, result)
}
