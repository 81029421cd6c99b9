package domain

import "time"

// Topic groups articles by subject. Deleting a topic deletes its articles.
type Topic struct {
	ID            string
	Label         string
	CoverageScore int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TopicPatch carries partial updates to a topic. Nil fields are left
// unchanged.
type TopicPatch struct {
	Label         *string
	CoverageScore *int64
}

// Apply overlays the non-nil patch fields onto t.
func (p TopicPatch) Apply(t *Topic) {
	if p.Label != nil {
		t.Label = *p.Label
	}
	if p.CoverageScore != nil {
		t.CoverageScore = *p.CoverageScore
	}
}
