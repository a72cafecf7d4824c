package timetable

import (
	"strconv"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/trezcool/ratiba/core"
)

var (
	tooManyTag  = "toomany"
	tooManyText = "{0} cannot have more than {1} entries"

	nameTooLongTag  = "nametoolong"
	nameTooLongText = "{0} entries cannot be longer than {1} characters"

	// teacher suggestions
	teacherMinSim = .7
)

// Limits bound the size of a submitted form.
type Limits struct {
	MaxTeachers   int
	MaxSubjects   int
	MaxNameLength int
}

// NewLimits returns the Limits set in conf.
func NewLimits(conf core.TimetableConfig) Limits {
	return Limits{
		MaxTeachers:   conf.MaxTeachers,
		MaxSubjects:   conf.MaxSubjects,
		MaxNameLength: conf.MaxNameLength,
	}
}

// Clip returns a copy of nt cut down to l: lists are shortened and names truncated.
// Zero limits are not enforced.
func (l Limits) Clip(nt NewTimetable) NewTimetable {
	return NewTimetable{
		Teachers:        clipList(nt.Teachers, l.MaxTeachers, l.MaxNameLength),
		Subjects:        clipList(nt.Subjects, l.MaxSubjects, l.MaxNameLength),
		SubjectTeachers: clipList(nt.SubjectTeachers, l.MaxSubjects, l.MaxNameLength),
	}
}

func clipList(names []string, maxLen, maxNameLen int) []string {
	if names == nil {
		return nil
	}
	if maxLen > 0 && len(names) > maxLen {
		names = names[:maxLen]
	}
	clipped := make([]string, len(names))
	for i, name := range names {
		name = core.CleanString(name)
		if r := []rune(name); maxNameLen > 0 && len(r) > maxNameLen {
			name = string(r[:maxNameLen])
		}
		clipped[i] = name
	}
	return clipped
}

// InitValidators registers the NewTimetable struct validation and its translations.
func InitValidators(validate *validator.Validate, translator ut.Translator, limits Limits) {
	validate.RegisterStructValidation(newTimetableStructValidation(limits), NewTimetable{})
	core.RegisterCustomTranslation(validate, translator, tooManyTag, tooManyText)
	core.RegisterCustomTranslation(validate, translator, nameTooLongTag, nameTooLongText)
}

// newTimetableStructValidation checks entry counts and name lengths of a NewTimetable.
// Zero limits are not enforced.
func newTimetableStructValidation(limits Limits) validator.StructLevelFunc {
	return func(sl validator.StructLevel) {
		nt, ok := sl.Current().Interface().(NewTimetable)
		if !ok {
			return
		}
		checkList(sl, nt.Teachers, "teachers", "Teachers", limits.MaxTeachers, limits.MaxNameLength)
		checkList(sl, nt.Subjects, "subjects", "Subjects", limits.MaxSubjects, limits.MaxNameLength)
		checkList(sl, nt.SubjectTeachers, "subjectTeachers", "SubjectTeachers", limits.MaxSubjects, limits.MaxNameLength)
	}
}

func checkList(sl validator.StructLevel, names []string, field, structField string, maxLen, maxNameLen int) {
	if maxLen > 0 && len(names) > maxLen {
		sl.ReportError(names, field, structField, tooManyTag, strconv.Itoa(maxLen))
		return
	}
	if maxNameLen <= 0 {
		return
	}
	for _, name := range names {
		if len([]rune(core.CleanString(name))) > maxNameLen {
			sl.ReportError(names, field, structField, nameTooLongTag, strconv.Itoa(maxNameLen))
			return
		}
	}
}

// SuggestTeacher returns the teacher name most similar to name, if any is similar enough.
func SuggestTeacher(teachers []Teacher, name string) (string, bool) {
	if name == "" {
		return "", false
	}
	var (
		best      string
		bestRatio float64
	)
	lname := strings.ToLower(name)
	for _, t := range teachers {
		ratio := difflib.NewMatcher(strings.Split(lname, ""), strings.Split(strings.ToLower(t.Name), "")).QuickRatio()
		if ratio > bestRatio {
			best, bestRatio = t.Name, ratio
		}
	}
	if bestRatio < teacherMinSim {
		return "", false
	}
	return best, true
}
