// Package translate implements translation resolution: given an article and a
// requested language code, it selects the localized text for that exact code
// with a deterministic fallback to English.
//
// The resolver inspects the article's Translations map only. The advisory
// AvailableLanguages list is never consulted, so a drift between the two
// cannot change fallback behavior.
package translate

import (
	"golang.org/x/text/language"

	"multilingua/internal/domain/entity"
	"multilingua/internal/observability/metrics"
)

// Resolution is the outcome of resolving a requested language against an
// article's translations.
type Resolution struct {
	// Language is the code of the translation actually returned.
	Language string
	// Translation is the localized text to display.
	Translation entity.Translation
	// Fallback reports whether the requested language was unavailable and the
	// fallback entry was used instead.
	Fallback bool
}

// Resolve returns the translation to display for the requested language code.
//
// The code is looked up as given, with no canonicalization: "fr-CA" and "FR"
// are distinct map keys from "fr". When the code has no entry the fallback
// language is used. When even the fallback entry is absent the article's data
// is broken and entity.ErrMissingFallback is returned; callers must not treat
// that as a process-level failure, only as a failure of this one article.
func Resolve(a *entity.Article, lang string) (Resolution, error) {
	if lang != "" {
		if tr, ok := a.Translations[lang]; ok {
			return Resolution{Language: lang, Translation: tr}, nil
		}
	}

	tr, ok := a.Translations[entity.FallbackLanguage]
	if !ok {
		metrics.RecordMissingFallback()
		return Resolution{}, entity.ErrMissingFallback
	}

	if lang != "" && lang != entity.FallbackLanguage {
		metrics.RecordTranslationFallback(fallbackLabel(lang))
	}
	return Resolution{
		Language:    entity.FallbackLanguage,
		Translation: tr,
		Fallback:    true,
	}, nil
}

// fallbackLabel reduces a requested code to a metric label value. The codes
// come straight from user input, so arbitrary strings are collapsed to their
// base language and unparseable ones to a single bucket, keeping the label
// cardinality bounded.
func fallbackLabel(lang string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		return "unparseable"
	}
	base, conf := tag.Base()
	if conf == language.No {
		return "unparseable"
	}
	return base.String()
}
