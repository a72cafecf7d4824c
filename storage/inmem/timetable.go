package inmemdb

import (
	"context"

	"github.com/trezcool/ratiba/core/timetable"
)

type TimetableRepository struct {
	db *timetableTable
}

var _ timetable.Repository = (*TimetableRepository)(nil)

func NewTimetableRepository(db *DB) *TimetableRepository {
	return &TimetableRepository{db: db.timetable}
}

// Save swaps the stored snapshot for a copy of tt. The previous one is discarded.
func (repo *TimetableRepository) Save(_ context.Context, tt timetable.Timetable) error {
	snapshot := tt.Clone()

	repo.db.Lock()
	defer repo.db.Unlock()
	repo.db.current = &snapshot
	return nil
}

func (repo *TimetableRepository) Current(_ context.Context) (timetable.Timetable, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if repo.db.current == nil {
		return timetable.Timetable{}, timetable.ErrNotFound
	}
	return repo.db.current.Clone(), nil
}
