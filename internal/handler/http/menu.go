package http

import (
	"net/http"

	apperrors "github.com/bellavista/ordering/pkg/errors"
	"github.com/bellavista/ordering/pkg/httputil"

	"github.com/bellavista/ordering/internal/catalog"
	"github.com/bellavista/ordering/internal/domain"
)

// MenuHandler serves the published menu.
type MenuHandler struct {
	catalog *catalog.Catalog
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(cat *catalog.Catalog) *MenuHandler {
	return &MenuHandler{catalog: cat}
}

// List returns menu entries, optionally filtered to one course.
// GET /api/v1/menu?course=mains
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	course := r.URL.Query().Get("course")
	if course == "" {
		httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: h.catalog.Items()})
		return
	}

	switch course {
	case domain.CourseAppetizers, domain.CourseMains, domain.CourseDesserts, domain.CourseDrinks:
		httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: h.catalog.ItemsByCourse(course)})
	default:
		httputil.WriteError(w, r, apperrors.InvalidInput("unknown course: "+course), nil)
	}
}
