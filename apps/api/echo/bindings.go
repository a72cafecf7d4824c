package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/ratiba/core/timetable"
)

// Form field names of the generation form.
const (
	teachersParam        = "teachers"
	subjectsParam        = "subjects"
	subjectTeachersParam = "subjectTeachers"
)

// bindNewTimetable reads the repeated form fields from the request body.
// Missing fields are left empty.
func bindNewTimetable(ctx echo.Context) (timetable.NewTimetable, error) {
	if _, err := ctx.FormParams(); err != nil {
		return timetable.NewTimetable{}, echo.NewHTTPError(http.StatusBadRequest, "malformed form").SetInternal(errors.Wrap(err, "parsing form"))
	}
	form := ctx.Request().PostForm
	return timetable.NewTimetable{
		Teachers:        form[teachersParam],
		Subjects:        form[subjectsParam],
		SubjectTeachers: form[subjectTeachersParam],
	}, nil
}
