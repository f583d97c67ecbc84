package subject

import (
	"net/http"

	subjUC "multilingua/internal/usecase/subject"
)

// Register registers all subject-related HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc subjUC.Service) {
	mux.Handle("GET    /subjects", ListHandler{svc})
	mux.Handle("GET    /subjects/", GetHandler{svc})
	mux.Handle("POST   /subjects", CreateHandler{svc})
}
