package timetable

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

var nowFunc = time.Now // mockable

// Generator fills a Grid with randomly picked subjects.
// It is safe for concurrent use.
type Generator struct {
	grid Grid

	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator returns a Generator drawing from src.
// Use a fixed-seed source for reproducible timetables.
func NewGenerator(grid Grid, src rand.Source) *Generator {
	return &Generator{
		grid: grid.Clone(),
		rng:  rand.New(src),
	}
}

// NewSeededGenerator returns a Generator over the default grid seeded with seed,
// or with the current time when seed is 0.
func NewSeededGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewGenerator(DefaultGrid(), rand.NewSource(seed))
}

// Grid returns a copy of the grid the Generator fills.
func (g *Generator) Grid() Grid {
	return g.grid.Clone()
}

// Generate builds a new Timetable: every class slot of every day gets an independently drawn subject
// (with replacement), break and lunch slots get their fixed labels.
// With no subjects, class slots are left blank (EmptyPoolLabel).
func (g *Generator) Generate(teachers []Teacher, subjects []Subject) Timetable {
	tt := Timetable{
		ID:          uuid.New(),
		GeneratedAt: nowFunc().UTC(),
		Entries:     make(Entries, len(g.grid.Days)),
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, day := range g.grid.Days {
		slots := make(map[string]string, len(g.grid.Slots))
		for _, slot := range g.grid.Slots {
			if label, ok := slot.Kind.Label(); ok {
				slots[slot.Time] = label
				continue
			}
			slots[slot.Time] = g.pick(teachers, subjects)
		}
		tt.Entries[day] = slots
	}
	return tt
}

// pick must be called with g.mu held.
func (g *Generator) pick(teachers []Teacher, subjects []Subject) string {
	if len(subjects) == 0 {
		return EmptyPoolLabel
	}
	subject := subjects[g.rng.Intn(len(subjects))]
	teacher, ok := ResolveTeacher(teachers, subject.TeacherName)
	if !ok {
		teacher = UnknownTeacher
	}
	return classLabel(subject.Name, teacher)
}

// ResolveTeacher looks up name among teachers by exact match. The first match wins.
func ResolveTeacher(teachers []Teacher, name string) (string, bool) {
	for _, t := range teachers {
		if t.Name == name {
			return t.Name, true
		}
	}
	return "", false
}
