package subject

import (
	"errors"
	"net/http"

	"multilingua/internal/domain/entity"
	"multilingua/internal/handler/http/pathutil"
	"multilingua/internal/handler/http/respond"
	subjUC "multilingua/internal/usecase/subject"
)

type GetHandler struct{ Svc subjUC.Service }

// ServeHTTP returns a single subject identified by its slug.
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slug, err := pathutil.ExtractSlug(r.URL.Path, "/subjects/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	s, err := h.Svc.GetBySlug(r.Context(), slug)
	if err != nil {
		var vErr *entity.ValidationError
		switch {
		case errors.Is(err, subjUC.ErrSubjectNotFound):
			respond.SafeError(w, http.StatusNotFound, err)
		case errors.As(err, &vErr):
			respond.SafeError(w, http.StatusBadRequest, err)
		default:
			respond.SafeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(s))
}
