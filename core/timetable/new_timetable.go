package timetable

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/ratiba/core"
)

// NewTimetable is the submitted generation form.
// SubjectTeachers[i] is the teacher of Subjects[i].
type NewTimetable struct {
	Teachers        []string `json:"teachers" form:"teachers"`
	Subjects        []string `json:"subjects" form:"subjects"`
	SubjectTeachers []string `json:"subjectTeachers" form:"subjectTeachers"`
}

// Validate only enforces the size Limits registered with InitValidators.
func (nt NewTimetable) Validate(validate *validator.Validate) error {
	return validate.Struct(nt)
}

// Normalize trims every name and pairs subjects with their teachers.
// A subject without a teacher at its index gets UnknownTeacher.
// Blank teachers and blank subjects are dropped once pairing is done.
func (nt NewTimetable) Normalize() ([]Teacher, []Subject) {
	teachers := make([]Teacher, 0, len(nt.Teachers))
	for _, name := range nt.Teachers {
		if name = core.CleanString(name); name != "" {
			teachers = append(teachers, Teacher{Name: name})
		}
	}

	subjects := make([]Subject, 0, len(nt.Subjects))
	for i, name := range nt.Subjects {
		teacher := UnknownTeacher
		if i < len(nt.SubjectTeachers) {
			teacher = core.CleanString(nt.SubjectTeachers[i])
		}
		if name = core.CleanString(name); name != "" {
			subjects = append(subjects, Subject{Name: name, TeacherName: teacher})
		}
	}
	return teachers, subjects
}
