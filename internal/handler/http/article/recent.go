package article

import (
	"errors"
	"net/http"
	"strconv"

	"multilingua/internal/handler/http/respond"
	artUC "multilingua/internal/usecase/article"
)

// maxRecentLimit caps the limit query parameter to keep responses bounded.
const maxRecentLimit = 50

type RecentHandler struct{ Svc artUC.Service }

// ServeHTTP returns the most recent articles. The limit query parameter
// controls the count; it defaults to 5 and is capped at 50.
func (h RecentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n <= 0 {
			respond.SafeError(w, http.StatusBadRequest,
				errors.New("invalid limit: must be a positive integer"))
			return
		}
		limit = n
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	list, err := h.Svc.ListRecent(r.Context(), limit)
	if err != nil {
		if errors.Is(err, artUC.ErrInvalidLimit) {
			respond.SafeError(w, http.StatusBadRequest, err)
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTOs(list, r.URL.Query().Get("lang")))
}
