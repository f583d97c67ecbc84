// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Content metrics track catalog size and query patterns.
var (
	// SubjectsTotal tracks the number of subjects in the store.
	SubjectsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "subjects_total",
			Help: "Total number of subjects in the content store",
		},
	)

	// ArticlesTotal tracks the number of articles in the store.
	ArticlesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "articles_total",
			Help: "Total number of articles in the content store",
		},
	)

	// ArticlesCreatedTotal counts articles created through the API.
	ArticlesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "articles_created_total",
			Help: "Total number of articles created",
		},
	)

	// SearchQueriesTotal counts search requests by result presence.
	SearchQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_queries_total",
			Help: "Total number of article search queries",
		},
		[]string{"result"}, // result: hit, miss
	)
)

// Translation metrics track resolver behavior.
var (
	// TranslationFallbacksTotal counts resolutions that fell back to English
	// because the requested language had no translation entry.
	TranslationFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "translation_fallbacks_total",
			Help: "Total number of translation resolutions that fell back to English",
		},
		[]string{"requested_language"},
	)

	// TranslationIntegrityFailuresTotal counts articles found without a
	// fallback translation entry at resolution time.
	TranslationIntegrityFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "translation_integrity_failures_total",
			Help: "Total number of articles missing the English fallback translation",
		},
	)
)

// RecordTranslationFallback records a resolution that used the fallback entry.
func RecordTranslationFallback(requestedLanguage string) {
	TranslationFallbacksTotal.WithLabelValues(requestedLanguage).Inc()
}

// RecordMissingFallback records a data integrity failure: an article without
// an English translation entry.
func RecordMissingFallback() {
	TranslationIntegrityFailuresTotal.Inc()
}

// RecordArticleCreated records a successful article creation.
func RecordArticleCreated() {
	ArticlesCreatedTotal.Inc()
}

// RecordSearch records a search query and whether it matched anything.
func RecordSearch(hit bool) {
	result := "hit"
	if !hit {
		result = "miss"
	}
	SearchQueriesTotal.WithLabelValues(result).Inc()
}

// UpdateCatalogSize updates the store size gauges.
func UpdateCatalogSize(subjects, articles int) {
	SubjectsTotal.Set(float64(subjects))
	ArticlesTotal.Set(float64(articles))
}
