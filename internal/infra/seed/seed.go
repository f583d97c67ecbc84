// Package seed provides the fixed content dataset embedded in the binary.
// Both persistence backends are initialized from this dataset: the memory
// backend copies it into its mutable collections, the static backend serves
// it as-is.
package seed

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"multilingua/internal/domain/entity"
)

//go:embed dataset.yaml
var datasetYAML []byte

// Dataset holds the decoded seed collections. Entities carry no IDs: the
// loading backend assigns sequential IDs in dataset order, so article
// subject_id references are positions in the subjects list.
type Dataset struct {
	Subjects []*entity.Subject
	Articles []*entity.Article
}

type subjectSeed struct {
	Name string `yaml:"name"`
	Slug string `yaml:"slug"`
	Icon string `yaml:"icon"`
}

type articleSeed struct {
	Title              string                        `yaml:"title"`
	Slug               string                        `yaml:"slug"`
	Excerpt            string                        `yaml:"excerpt"`
	Content            string                        `yaml:"content"`
	ImageURL           string                        `yaml:"image_url"`
	ReadTime           int                           `yaml:"read_time"`
	SubjectID          int64                         `yaml:"subject_id"`
	Author             string                        `yaml:"author"`
	AuthorImage        string                        `yaml:"author_image"`
	PublishDate        time.Time                     `yaml:"publish_date"`
	Featured           bool                          `yaml:"featured"`
	AvailableLanguages []string                      `yaml:"available_languages"`
	Translations       map[string]entity.Translation `yaml:"translations"`
}

type datasetSeed struct {
	Subjects []subjectSeed `yaml:"subjects"`
	Articles []articleSeed `yaml:"articles"`
}

// Load decodes the embedded dataset and validates every entity in it.
// Seed articles must reference seeded subjects and carry a fallback
// translation; a violation is a build-time data bug, not a runtime condition.
func Load() (*Dataset, error) {
	var raw datasetSeed
	if err := yaml.Unmarshal(datasetYAML, &raw); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}

	ds := &Dataset{
		Subjects: make([]*entity.Subject, 0, len(raw.Subjects)),
		Articles: make([]*entity.Article, 0, len(raw.Articles)),
	}

	for i, s := range raw.Subjects {
		subject := &entity.Subject{
			Name: s.Name,
			Slug: s.Slug,
			Icon: s.Icon,
		}
		if err := subject.Validate(); err != nil {
			return nil, fmt.Errorf("seed subject %d (%s): %w", i+1, s.Slug, err)
		}
		ds.Subjects = append(ds.Subjects, subject)
	}

	for i, a := range raw.Articles {
		article := &entity.Article{
			Title:              a.Title,
			Slug:               a.Slug,
			Excerpt:            a.Excerpt,
			Content:            a.Content,
			ImageURL:           a.ImageURL,
			ReadTime:           a.ReadTime,
			SubjectID:          a.SubjectID,
			Author:             a.Author,
			AuthorImage:        a.AuthorImage,
			PublishDate:        a.PublishDate,
			Featured:           a.Featured,
			AvailableLanguages: a.AvailableLanguages,
			Translations:       a.Translations,
		}
		if err := article.Validate(); err != nil {
			return nil, fmt.Errorf("seed article %d (%s): %w", i+1, a.Slug, err)
		}
		if a.SubjectID > int64(len(ds.Subjects)) {
			return nil, fmt.Errorf("seed article %d (%s): unknown subject_id %d", i+1, a.Slug, a.SubjectID)
		}
		ds.Articles = append(ds.Articles, article)
	}

	return ds, nil
}

// MustLoad is like Load but panics on error. Intended for process startup and
// test setup, where a broken embedded dataset is unrecoverable.
func MustLoad() *Dataset {
	ds, err := Load()
	if err != nil {
		panic(err)
	}
	return ds
}
