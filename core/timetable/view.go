package timetable

import (
	"time"

	"github.com/google/uuid"
)

type (
	Cell struct {
		Time  string   `json:"time"`
		Kind  SlotKind `json:"kind"`
		Label string   `json:"label"`
	}

	Row struct {
		Day   string `json:"day"`
		Cells []Cell `json:"cells"`
	}

	// View is a Timetable laid out for display: one Row per day, one Cell per time slot.
	View struct {
		ID          uuid.UUID  `json:"id"`
		GeneratedAt time.Time  `json:"generated_at"`
		Headers     []TimeSlot `json:"headers"`
		Rows        []Row      `json:"rows"`
	}
)

// BuildView maps tt onto grid. Entries missing from tt are rendered as "".
func BuildView(tt Timetable, grid Grid) View {
	v := View{
		ID:          tt.ID,
		GeneratedAt: tt.GeneratedAt,
		Headers:     make([]TimeSlot, len(grid.Slots)),
		Rows:        make([]Row, 0, len(grid.Days)),
	}
	copy(v.Headers, grid.Slots)
	for _, day := range grid.Days {
		row := Row{Day: day, Cells: make([]Cell, 0, len(grid.Slots))}
		for _, slot := range grid.Slots {
			label, _ := tt.Get(day, slot.Time)
			row.Cells = append(row.Cells, Cell{Time: slot.Time, Kind: slot.Kind, Label: label})
		}
		v.Rows = append(v.Rows, row)
	}
	return v
}
