package domain

import "time"

// Article is a single published news article. TopicID and SourceID are
// optional; an empty string means unset.
type Article struct {
	ID       string
	Title    string
	URL      string
	ImageURL string
	Brief    string
	TopicID  string
	SourceID string
	AddedAt  time.Time
}

// ArticlePatch carries partial updates to an article. Nil fields are left
// unchanged.
type ArticlePatch struct {
	Title    *string
	URL      *string
	ImageURL *string
	Brief    *string
	TopicID  *string
	SourceID *string
}

// Apply overlays the non-nil patch fields onto a.
func (p ArticlePatch) Apply(a *Article) {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.URL != nil {
		a.URL = *p.URL
	}
	if p.ImageURL != nil {
		a.ImageURL = *p.ImageURL
	}
	if p.Brief != nil {
		a.Brief = *p.Brief
	}
	if p.TopicID != nil {
		a.TopicID = *p.TopicID
	}
	if p.SourceID != nil {
		a.SourceID = *p.SourceID
	}
}
