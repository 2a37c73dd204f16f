package store

import "github.com/amishk599/jobinsight/internal/model"

// NopStore discards enriched rows. It is used when no database path is configured.
type NopStore struct{}

func NewNopStore() *NopStore { return &NopStore{} }

func (s *NopStore) SaveEnriched(jobs []model.EnrichedJob) error { return nil }
