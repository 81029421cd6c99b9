package domain

import "time"

// Source is a news outlet articles are collected from. Deleting a source
// deletes its articles.
type Source struct {
	ID          string
	Name        string
	HomepageURL string
	LogoURL     string
	IsEnabled   bool
	CreatedAt   time.Time
}

// SourcePatch carries partial updates to a source. Nil fields are left
// unchanged.
type SourcePatch struct {
	Name        *string
	HomepageURL *string
	LogoURL     *string
	IsEnabled   *bool
}

// Apply overlays the non-nil patch fields onto s.
func (p SourcePatch) Apply(s *Source) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.HomepageURL != nil {
		s.HomepageURL = *p.HomepageURL
	}
	if p.LogoURL != nil {
		s.LogoURL = *p.LogoURL
	}
	if p.IsEnabled != nil {
		s.IsEnabled = *p.IsEnabled
	}
}
