package article

import (
	"errors"
	"net/http"

	"multilingua/internal/handler/http/pathutil"
	"multilingua/internal/handler/http/respond"
	artUC "multilingua/internal/usecase/article"
	subjUC "multilingua/internal/usecase/subject"
)

type BySubjectHandler struct {
	Svc      artUC.Service
	Subjects subjUC.Service
}

// ServeHTTP returns the articles belonging to a subject, newest first.
// The subject must exist; an unknown ID yields 404 rather than an empty list.
func (h BySubjectHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/articles/subject/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if _, err := h.Subjects.Get(r.Context(), id); err != nil {
		if errors.Is(err, subjUC.ErrSubjectNotFound) {
			respond.SafeError(w, http.StatusNotFound, err)
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	list, err := h.Svc.ListBySubject(r.Context(), id)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTOs(list, r.URL.Query().Get("lang")))
}
