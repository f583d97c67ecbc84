package article

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"multilingua/internal/domain/entity"
	"multilingua/internal/handler/http/respond"
	"multilingua/internal/infra/adapter/persistence/static"
	artUC "multilingua/internal/usecase/article"
)

type CreateHandler struct{ Svc artUC.Service }

// createRequest is the JSON body for creating an article.
type createRequest struct {
	Title              string                        `json:"title"`
	Slug               string                        `json:"slug"`
	Excerpt            string                        `json:"excerpt"`
	Content            string                        `json:"content"`
	ImageURL           string                        `json:"imageUrl"`
	ReadTime           int                           `json:"readTime"`
	SubjectID          int64                         `json:"subjectId"`
	Author             string                        `json:"author"`
	AuthorImage        string                        `json:"authorImage"`
	PublishDate        time.Time                     `json:"publishDate"`
	Translations       map[string]entity.Translation `json:"translations"`
	AvailableLanguages []string                      `json:"availableLanguages"`
	Featured           bool                          `json:"featured"`
}

// ServeHTTP creates a new article from the JSON request body.
// The translations map must include an English entry. An omitted publish
// date defaults to the time of creation. Returns 201 Created with the
// stored article resolved into English.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	if req.PublishDate.IsZero() {
		req.PublishDate = time.Now().UTC()
	}

	a, err := h.Svc.Create(r.Context(), artUC.CreateInput{
		Title:              req.Title,
		Slug:               req.Slug,
		Excerpt:            req.Excerpt,
		Content:            req.Content,
		ImageURL:           req.ImageURL,
		ReadTime:           req.ReadTime,
		SubjectID:          req.SubjectID,
		Author:             req.Author,
		AuthorImage:        req.AuthorImage,
		PublishDate:        req.PublishDate,
		Translations:       req.Translations,
		AvailableLanguages: req.AvailableLanguages,
		Featured:           req.Featured,
	})
	if err != nil {
		var vErr *entity.ValidationError
		switch {
		case errors.As(err, &vErr), errors.Is(err, entity.ErrMissingFallback):
			respond.SafeError(w, http.StatusBadRequest, err)
		case errors.Is(err, static.ErrReadOnly):
			respond.SafeError(w, http.StatusMethodNotAllowed, err)
		default:
			respond.SafeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	dto, err := toDTO(a, entity.FallbackLanguage)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusCreated, dto)
}
