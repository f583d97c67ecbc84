package article

import (
	"errors"
	"net/http"

	"multilingua/internal/handler/http/respond"
	artUC "multilingua/internal/usecase/article"
)

type SearchHandler struct{ Svc artUC.Service }

// ServeHTTP searches articles by a case-insensitive substring of the resolved
// title, excerpt, or content. The q query parameter is required; lang selects
// the translation the match runs against.
func (h SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	lang := r.URL.Query().Get("lang")

	list, err := h.Svc.Search(r.Context(), q, lang)
	if err != nil {
		if errors.Is(err, artUC.ErrEmptyQuery) {
			respond.SafeError(w, http.StatusBadRequest, err)
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTOs(list, lang))
}
