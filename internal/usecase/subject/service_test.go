package subject_test

import (
	"context"
	"errors"
	"testing"

	"multilingua/internal/domain/entity"
	subjUC "multilingua/internal/usecase/subject"
)

// Minimal in-memory SubjectRepository stub.
type stubRepo struct {
	data   []*entity.Subject
	nextID int64
	err    error // forces an error when set
}

func newStub() *stubRepo {
	return &stubRepo{nextID: 1}
}

func (s *stubRepo) List(_ context.Context) ([]*entity.Subject, error) {
	return s.data, s.err
}

func (s *stubRepo) Get(_ context.Context, id int64) (*entity.Subject, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, sub := range s.data {
		if sub.ID == id {
			return sub, nil
		}
	}
	return nil, nil
}

func (s *stubRepo) GetBySlug(_ context.Context, slug string) (*entity.Subject, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, sub := range s.data {
		if sub.Slug == slug {
			return sub, nil
		}
	}
	return nil, nil
}

func (s *stubRepo) Create(_ context.Context, subject *entity.Subject) error {
	if s.err != nil {
		return s.err
	}
	subject.ID = s.nextID
	s.nextID++
	s.data = append(s.data, subject)
	return nil
}

func TestGetBySlug(t *testing.T) {
	repo := newStub()
	repo.data = append(repo.data, &entity.Subject{ID: 1, Name: "Technology", Slug: "technology"})
	svc := subjUC.Service{Repo: repo}

	got, err := svc.GetBySlug(context.Background(), "technology")
	if err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}
	if got.Slug != "technology" {
		t.Errorf("Slug = %q, want %q", got.Slug, "technology")
	}
}

func TestGetBySlug_NotFound(t *testing.T) {
	svc := subjUC.Service{Repo: newStub()}

	_, err := svc.GetBySlug(context.Background(), "nonexistent")
	if !errors.Is(err, subjUC.ErrSubjectNotFound) {
		t.Fatalf("GetBySlug() error = %v, want ErrSubjectNotFound", err)
	}
}

func TestGetBySlug_InvalidSlug(t *testing.T) {
	svc := subjUC.Service{Repo: newStub()}

	var vErr *entity.ValidationError
	_, err := svc.GetBySlug(context.Background(), "Not A Slug")
	if !errors.As(err, &vErr) {
		t.Fatalf("GetBySlug() error = %v, want *ValidationError", err)
	}
}

func TestGet_InvalidID(t *testing.T) {
	svc := subjUC.Service{Repo: newStub()}

	_, err := svc.Get(context.Background(), 0)
	if !errors.Is(err, subjUC.ErrInvalidSubjectID) {
		t.Fatalf("Get(0) error = %v, want ErrInvalidSubjectID", err)
	}
}

func TestCreate(t *testing.T) {
	repo := newStub()
	svc := subjUC.Service{Repo: repo}

	got, err := svc.Create(context.Background(), subjUC.CreateInput{
		Name: "Sports",
		Slug: "sports",
		Icon: "ri-football-line",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if got.ID != 1 {
		t.Errorf("ID = %d, want 1", got.ID)
	}
	if got.ArticleCount != 0 {
		t.Errorf("ArticleCount = %d, want 0", got.ArticleCount)
	}
}

func TestCreate_Invalid(t *testing.T) {
	svc := subjUC.Service{Repo: newStub()}

	var vErr *entity.ValidationError
	_, err := svc.Create(context.Background(), subjUC.CreateInput{Name: "Sports"})
	if !errors.As(err, &vErr) {
		t.Fatalf("Create() error = %v, want *ValidationError", err)
	}
}

func TestList_RepoError(t *testing.T) {
	repo := newStub()
	repo.err = errors.New("boom")
	svc := subjUC.Service{Repo: repo}

	if _, err := svc.List(context.Background()); err == nil {
		t.Fatal("List() error = nil, want wrapped repo error")
	}
}

func TestSentinels_WrapDomainErrors(t *testing.T) {
	if !errors.Is(subjUC.ErrSubjectNotFound, entity.ErrNotFound) {
		t.Error("ErrSubjectNotFound must wrap entity.ErrNotFound")
	}
	if !errors.Is(subjUC.ErrInvalidSubjectID, entity.ErrInvalidInput) {
		t.Error("ErrInvalidSubjectID must wrap entity.ErrInvalidInput")
	}
	if got := subjUC.ErrSubjectNotFound.Error(); got != "subject not found" {
		t.Errorf("ErrSubjectNotFound = %q", got)
	}
	if got := subjUC.ErrInvalidSubjectID.Error(); got != "invalid subject ID" {
		t.Errorf("ErrInvalidSubjectID = %q", got)
	}
}
