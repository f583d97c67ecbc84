package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multilingua/internal/domain/entity"
	"multilingua/internal/infra/adapter/persistence/memory"
	"multilingua/internal/infra/seed"
)

func seededStore(t *testing.T) *memory.Store {
	t.Helper()
	return memory.NewStoreFromDataset(seed.MustLoad())
}

func TestArticleRepo_ListFeatured_ReferenceScenario(t *testing.T) {
	repo := memory.NewArticleRepo(seededStore(t))

	featured, err := repo.ListFeatured(context.Background())
	require.NoError(t, err)
	require.Len(t, featured, 3)

	// Seed dates: 2023-06-03 (travel), 2023-05-15 (AI), 2023-04-29 (health).
	// The unfeatured 2023-07-08 article must not appear.
	slugs := []string{featured[0].Slug, featured[1].Slug, featured[2].Slug}
	assert.Equal(t, []string{
		"hidden-gems-breathtaking-destinations",
		"future-of-artificial-intelligence",
		"nutrition-myths-debunked",
	}, slugs)

	for _, a := range featured {
		assert.True(t, a.Featured)
	}
}

func TestArticleRepo_ListRecent(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewArticleRepo(seededStore(t))

	t.Run("limit below total", func(t *testing.T) {
		recent, err := repo.ListRecent(ctx, 2)
		require.NoError(t, err)
		require.Len(t, recent, 2)
		assert.Equal(t, "evolution-urban-spaces-climate-change", recent[0].Slug)
		assert.Equal(t, "hidden-gems-breathtaking-destinations", recent[1].Slug)
	})

	t.Run("limit above total returns all sorted", func(t *testing.T) {
		recent, err := repo.ListRecent(ctx, 100)
		require.NoError(t, err)
		require.Len(t, recent, 4)
		for i := 1; i < len(recent); i++ {
			assert.False(t, recent[i].PublishDate.After(recent[i-1].PublishDate),
				"articles must be sorted newest first")
		}
	})
}

func TestArticleRepo_SortIsStableOnEqualDates(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repo := memory.NewArticleRepo(store)

	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, slug := range []string{"first", "second", "third"} {
		err := repo.Create(ctx, &entity.Article{
			Title:       slug,
			Slug:        slug,
			ReadTime:    3,
			SubjectID:   1,
			PublishDate: date,
			Featured:    true,
			Translations: map[string]entity.Translation{
				"en": {Title: slug},
			},
		})
		require.NoError(t, err)
	}

	// Equal dates keep insertion order, and repeated calls agree.
	for range 3 {
		featured, err := repo.ListFeatured(ctx)
		require.NoError(t, err)
		require.Len(t, featured, 3)
		assert.Equal(t, "first", featured[0].Slug)
		assert.Equal(t, "second", featured[1].Slug)
		assert.Equal(t, "third", featured[2].Slug)
	}
}

func TestArticleRepo_ListBySubject(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewArticleRepo(seededStore(t))

	articles, err := repo.ListBySubject(ctx, 6)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "hidden-gems-breathtaking-destinations", articles[0].Slug)

	none, err := repo.ListBySubject(ctx, 99)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestArticleRepo_CreateRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := seededStore(t)
	repo := memory.NewArticleRepo(store)

	in := &entity.Article{
		Title:       "The Wonders of Quantum Entanglement",
		Slug:        "quantum-entanglement-wonders",
		Excerpt:     "Particles connected across vast distances.",
		Content:     "Quantum entanglement is a physical phenomenon...",
		ImageURL:    "https://example.com/quantum.jpg",
		ReadTime:    7,
		SubjectID:   2,
		Author:      "Dr. Neil Thomson",
		PublishDate: time.Date(2023, 9, 21, 0, 0, 0, 0, time.UTC),
		Translations: map[string]entity.Translation{
			"en": {Title: "The Wonders of Quantum Entanglement"},
			"fr": {Title: "Les Merveilles de l'Intrication Quantique"},
		},
		AvailableLanguages: []string{"en", "fr"},
	}
	require.NoError(t, repo.Create(ctx, in))
	assert.Equal(t, int64(5), in.ID, "IDs continue after the four seeded articles")

	got, err := repo.GetBySlug(ctx, "quantum-entanglement-wonders")
	require.NoError(t, err)
	require.NotNil(t, got)
	if diff := cmp.Diff(in, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_ArticleCountInvariant(t *testing.T) {
	ctx := context.Background()
	store := seededStore(t)
	subjects := memory.NewSubjectRepo(store)
	articles := memory.NewArticleRepo(store)

	newArticle := func(slug string, subjectID int64) *entity.Article {
		return &entity.Article{
			Title:       slug,
			Slug:        slug,
			ReadTime:    4,
			SubjectID:   subjectID,
			PublishDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			Translations: map[string]entity.Translation{
				"en": {Title: slug},
			},
		}
	}

	require.NoError(t, articles.Create(ctx, newArticle("science-one", 2)))
	require.NoError(t, articles.Create(ctx, newArticle("science-two", 2)))
	require.NoError(t, articles.Create(ctx, newArticle("travel-one", 6)))

	all, err := articles.List(ctx)
	require.NoError(t, err)
	counted := make(map[int64]int)
	for _, a := range all {
		counted[a.SubjectID]++
	}

	subs, err := subjects.List(ctx)
	require.NoError(t, err)
	for _, s := range subs {
		assert.Equal(t, counted[s.ID], s.ArticleCount,
			"subject %s count must match stored articles", s.Slug)
	}
}

func TestStore_CreateArticleUnknownSubject(t *testing.T) {
	ctx := context.Background()
	store := seededStore(t)
	subjects := memory.NewSubjectRepo(store)
	articles := memory.NewArticleRepo(store)

	before, err := subjects.List(ctx)
	require.NoError(t, err)

	// Referencing a nonexistent subject stores the article but updates no
	// count. This leniency is preserved from the original storage layer.
	orphan := &entity.Article{
		Title:       "Orphan",
		Slug:        "orphan",
		ReadTime:    2,
		SubjectID:   42,
		PublishDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Translations: map[string]entity.Translation{
			"en": {Title: "Orphan"},
		},
	}
	require.NoError(t, articles.Create(ctx, orphan))

	got, err := articles.GetBySlug(ctx, "orphan")
	require.NoError(t, err)
	require.NotNil(t, got)

	after, err := subjects.List(ctx)
	require.NoError(t, err)
	for i := range before {
		assert.Equal(t, before[i].ArticleCount, after[i].ArticleCount)
	}
}

func TestArticleRepo_ResultsAreSnapshots(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewArticleRepo(seededStore(t))

	first, err := repo.GetBySlug(ctx, "future-of-artificial-intelligence")
	require.NoError(t, err)
	first.Title = "mutated"
	first.Translations["en"] = entity.Translation{Title: "mutated"}

	second, err := repo.GetBySlug(ctx, "future-of-artificial-intelligence")
	require.NoError(t, err)
	assert.Equal(t, "The Future of Artificial Intelligence", second.Title)
	assert.Equal(t, "The Future of Artificial Intelligence", second.Translations["en"].Title)
}
