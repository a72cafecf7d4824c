package timetable

// SlotKind tags a TimeSlot.
type SlotKind string

const (
	Class SlotKind = "class"
	Break SlotKind = "break"
	Lunch SlotKind = "lunch"
)

// Fixed labels.
const (
	BreakLabel     = "Break"
	LunchLabel     = "Lunch"
	UnknownTeacher = "Unknown"

	// EmptyPoolLabel fills class slots when no subject was submitted.
	EmptyPoolLabel = ""
)

// TimeSlot is one fixed interval of the school day. Time is a label, it is never parsed.
type TimeSlot struct {
	Time string   `json:"time"`
	Kind SlotKind `json:"kind"`
}

var (
	days = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

	timeSlots = []TimeSlot{
		{Time: "09:00-10:00", Kind: Class},
		{Time: "10:00-11:00", Kind: Class},
		{Time: "11:00-11:15", Kind: Break},
		{Time: "11:15-12:15", Kind: Class},
		{Time: "12:15-01:15", Kind: Lunch},
		{Time: "01:15-02:15", Kind: Class},
		{Time: "02:15-02:30", Kind: Break},
		{Time: "02:30-03:30", Kind: Class},
		{Time: "03:30-04:30", Kind: Class},
	}
)

// Grid is the weekly layout: ordered days by ordered time slots.
type Grid struct {
	Days  []string
	Slots []TimeSlot
}

// DefaultGrid returns a copy of the school week configuration.
func DefaultGrid() Grid {
	return Grid{Days: days, Slots: timeSlots}.Clone()
}

// Clone returns a Grid sharing no memory with g.
func (g Grid) Clone() Grid {
	c := Grid{
		Days:  make([]string, len(g.Days)),
		Slots: make([]TimeSlot, len(g.Slots)),
	}
	copy(c.Days, g.Days)
	copy(c.Slots, g.Slots)
	return c
}

// Len returns the number of (day, slot) cells in the grid.
func (g Grid) Len() int {
	return len(g.Days) * len(g.Slots)
}

// Label returns the fixed label of a non-class slot kind.
func (k SlotKind) Label() (string, bool) {
	switch k {
	case Break:
		return BreakLabel, true
	case Lunch:
		return LunchLabel, true
	default:
		return "", false
	}
}
