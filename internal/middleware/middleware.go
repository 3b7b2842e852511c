package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type contextKey string

const courseIDKey contextKey = "courseID"

// CourseCtx sets "courseID" from the URL param in the request context.
func CourseCtx() func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			courseID := chi.URLParam(r, "courseID")

			ctx := context.WithValue(r.Context(), courseIDKey, courseID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CourseID returns the course ID stored by CourseCtx, or "".
func CourseID(r *http.Request) string {
	courseID, _ := r.Context().Value(courseIDKey).(string)
	return courseID
}
