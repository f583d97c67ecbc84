package article

import (
	"net/http"

	"multilingua/internal/handler/http/respond"
	artUC "multilingua/internal/usecase/article"
)

type FeaturedHandler struct{ Svc artUC.Service }

// ServeHTTP returns featured articles, newest first.
func (h FeaturedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.ListFeatured(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTOs(list, r.URL.Query().Get("lang")))
}
