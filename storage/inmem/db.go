package inmemdb

import (
	"sync"

	"github.com/trezcool/ratiba/core/timetable"
)

type (
	// DB is the process-wide, non-persistent storage.
	DB struct {
		timetable *timetableTable
	}

	timetableTable struct {
		sync.RWMutex
		current *timetable.Timetable
	}
)

func Open() *DB {
	return &DB{
		timetable: &timetableTable{},
	}
}
