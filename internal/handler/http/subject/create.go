package subject

import (
	"encoding/json"
	"errors"
	"net/http"

	"multilingua/internal/domain/entity"
	"multilingua/internal/handler/http/respond"
	subjUC "multilingua/internal/usecase/subject"
)

type CreateHandler struct{ Svc subjUC.Service }

// createRequest is the JSON body for creating a subject.
type createRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
	Icon string `json:"icon"`
}

// ServeHTTP creates a new subject from the JSON request body.
// Returns 201 Created with the stored subject, or 400 on invalid input.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	s, err := h.Svc.Create(r.Context(), subjUC.CreateInput{
		Name: req.Name,
		Slug: req.Slug,
		Icon: req.Icon,
	})
	if err != nil {
		var vErr *entity.ValidationError
		if errors.As(err, &vErr) {
			respond.SafeError(w, http.StatusBadRequest, err)
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toDTO(s))
}
