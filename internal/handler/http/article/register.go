package article

import (
	"net/http"

	artUC "multilingua/internal/usecase/article"
	subjUC "multilingua/internal/usecase/subject"
)

// Register registers all article-related HTTP handlers with the given mux.
// The subject service backs the per-subject listing, which verifies the
// subject exists before returning its articles.
func Register(mux *http.ServeMux, svc artUC.Service, subjects subjUC.Service) {
	mux.Handle("GET    /articles", ListHandler{svc})
	mux.Handle("GET    /articles/featured", FeaturedHandler{svc})
	mux.Handle("GET    /articles/recent", RecentHandler{svc})
	mux.Handle("GET    /articles/search", SearchHandler{svc})
	mux.Handle("GET    /articles/subject/", BySubjectHandler{Svc: svc, Subjects: subjects})
	mux.Handle("GET    /articles/", GetHandler{svc})

	mux.Handle("POST   /articles", CreateHandler{svc})
}
