package subject

import (
	"net/http"

	"multilingua/internal/handler/http/respond"
	subjUC "multilingua/internal/usecase/subject"
)

type ListHandler struct{ Svc subjUC.Service }

// ServeHTTP returns all subjects with their derived article counts.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]DTO, 0, len(list))
	for _, s := range list {
		out = append(out, toDTO(s))
	}
	respond.JSON(w, http.StatusOK, out)
}
