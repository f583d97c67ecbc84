package article

import (
	"net/http"

	"multilingua/internal/handler/http/respond"
	artUC "multilingua/internal/usecase/article"
)

type ListHandler struct{ Svc artUC.Service }

// ServeHTTP returns all articles resolved into the requested language.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTOs(list, r.URL.Query().Get("lang")))
}
