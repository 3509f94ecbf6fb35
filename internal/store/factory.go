package store

import (
	"timegrid.app/scheduler/core/db/sqlc"
)

type Stores struct {
	queries *sqlc.Queries
}

func NewStores(queries *sqlc.Queries) *Stores {
	return &Stores{queries: queries}
}

func (s *Stores) Gaps() GapStore {
	return newGapStore(s.queries)
}

func (s *Stores) Tasks() TaskStore {
	return newTaskStore(s.queries)
}
