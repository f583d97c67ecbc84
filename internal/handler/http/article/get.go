package article

import (
	"errors"
	"net/http"

	"multilingua/internal/domain/entity"
	"multilingua/internal/handler/http/pathutil"
	"multilingua/internal/handler/http/respond"
	artUC "multilingua/internal/usecase/article"
)

type GetHandler struct{ Svc artUC.Service }

// ServeHTTP returns a single article identified by its slug, resolved into
// the requested language.
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slug, err := pathutil.ExtractSlug(r.URL.Path, "/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	a, err := h.Svc.GetBySlug(r.Context(), slug)
	if err != nil {
		var vErr *entity.ValidationError
		switch {
		case errors.Is(err, artUC.ErrArticleNotFound):
			respond.SafeError(w, http.StatusNotFound, err)
		case errors.As(err, &vErr):
			respond.SafeError(w, http.StatusBadRequest, err)
		default:
			respond.SafeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	dto, err := toDTO(a, r.URL.Query().Get("lang"))
	if err != nil {
		// A stored article without its English entry is a data fault
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, dto)
}
