package timetable

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type (
	// Teacher is identified by its name.
	Teacher struct {
		Name string `json:"name"`
	}

	// Subject references a Teacher by name. The reference is not enforced.
	Subject struct {
		Name        string `json:"name"`
		TeacherName string `json:"teacher_name"`
	}

	// Entries maps day -> slot time -> display string.
	Entries map[string]map[string]string

	// Timetable is one generated week. It is never merged with a previous one.
	Timetable struct {
		ID          uuid.UUID `json:"id"`
		GeneratedAt time.Time `json:"generated_at"`
		Entries     Entries   `json:"entries"`
	}
)

// Get returns the display string stored for the given day and slot time.
func (tt Timetable) Get(day, slot string) (string, bool) {
	slots, ok := tt.Entries[day]
	if !ok {
		return "", false
	}
	label, ok := slots[slot]
	return label, ok
}

// Len returns the number of stored entries.
func (tt Timetable) Len() int {
	var n int
	for _, slots := range tt.Entries {
		n += len(slots)
	}
	return n
}

// IsZero reports whether tt was never generated.
func (tt Timetable) IsZero() bool {
	return tt.ID == uuid.Nil && tt.Entries == nil
}

// Clone returns a deep copy of tt.
func (tt Timetable) Clone() Timetable {
	c := Timetable{ID: tt.ID, GeneratedAt: tt.GeneratedAt}
	if tt.Entries == nil {
		return c
	}
	c.Entries = make(Entries, len(tt.Entries))
	for day, slots := range tt.Entries {
		cs := make(map[string]string, len(slots))
		for slot, label := range slots {
			cs[slot] = label
		}
		c.Entries[day] = cs
	}
	return c
}

func classLabel(subject, teacher string) string {
	return fmt.Sprintf("%s (%s)", subject, teacher)
}
