package tests

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/ratiba/core/timetable"
)

const tableHeading = "Generated Timetable"

func Test_timetableApi_generate(t *testing.T) {
	type extra struct {
		classCell string   // expected in every class slot, when set
		absent    []string // substrings
	}
	tests := []httpTest{
		{
			name:     "single subject",
			form:     url.Values{"teachers": {"Ms. Lee"}, "subjects": {"Math"}, "subjectTeachers": {"Ms. Lee"}},
			wantCode: http.StatusOK,
			extra:    extra{classCell: cell(timetable.Class, "Math (Ms. Lee)")},
		},
		{
			name:     "unknown teacher",
			form:     url.Values{"subjects": {"Art"}, "subjectTeachers": {"Mr. X"}},
			wantCode: http.StatusOK,
			extra:    extra{classCell: cell(timetable.Class, "Art (Unknown)")},
		},
		{
			name:     "missing subject teachers",
			form:     url.Values{"teachers": {"Ms. Lee"}, "subjects": {"Art"}},
			wantCode: http.StatusOK,
			extra:    extra{classCell: cell(timetable.Class, "Art (Unknown)")},
		},
		{
			name:     "empty form",
			form:     url.Values{},
			wantCode: http.StatusOK,
			extra:    extra{classCell: cell(timetable.Class, "")},
		},
		{
			name:     "escaped names",
			form:     url.Values{"teachers": {"<b>Lee</b>"}, "subjects": {"Math"}, "subjectTeachers": {"<b>Lee</b>"}},
			wantCode: http.StatusOK,
			extra:    extra{classCell: cell(timetable.Class, "Math (&lt;b&gt;Lee&lt;/b&gt;)")},
		},
		{
			name: "too many subjects are dropped",
			form: url.Values{
				"teachers":        {"Ms. Lee"},
				"subjects":        {"Math", "Art", "Music", "Drama"},
				"subjectTeachers": {"Ms. Lee", "Ms. Lee", "Ms. Lee", "Ms. Lee"},
			},
			wantCode: http.StatusOK,
			extra:    extra{absent: []string{"Drama", "cannot have more than"}},
		},
		{
			name:     "long names are truncated",
			form:     url.Values{"subjects": {strings.Repeat("x", 21)}, "subjectTeachers": {"Ms. Lee"}},
			wantCode: http.StatusOK,
			extra: extra{
				classCell: cell(timetable.Class, strings.Repeat("x", 20)+" (Unknown)"),
				absent:    []string{strings.Repeat("x", 21), "cannot be longer than"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := setup()
			rec := serve(app, http.MethodPost, "/generate", tt.form)
			body := rec.Body.String()
			ex := tt.extra.(extra)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, body, `<form action="/generate" method="POST">`)
			assert.Contains(t, body, tableHeading)
			for _, absent := range ex.absent {
				assert.NotContains(t, body, absent)
			}
			if ex.classCell != "" {
				assert.Equal(t, slotCells(timetable.Class), strings.Count(body, ex.classCell))
			}
			assert.Equal(t, slotCells(timetable.Break), strings.Count(body, cell(timetable.Break, timetable.BreakLabel)))
			assert.Equal(t, slotCells(timetable.Lunch), strings.Count(body, cell(timetable.Lunch, timetable.LunchLabel)))
			assert.Equal(t, len(timetable.DefaultGrid().Slots)+1, strings.Count(body, "<th>"))

			// the rendered timetable is the stored one
			rec = serve(app, http.MethodGet, "/api/timetable", nil)
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func Test_timetableApi_generate_json(t *testing.T) {
	tests := []httpTest{
		{
			name:     "single subject",
			form:     url.Values{"teachers": {"Ms. Lee"}, "subjects": {"Math"}, "subjectTeachers": {"Ms. Lee"}},
			wantCode: http.StatusOK,
			wantBody: []string{`"label":"Math (Ms. Lee)"`, `"label":"Break"`, `"label":"Lunch"`},
		},
		{
			name:     "too many teachers",
			form:     url.Values{"teachers": {"a", "b", "c", "d"}},
			wantCode: http.StatusBadRequest,
			extra:    `{"teachers": "teachers cannot have more than 3 entries"}`,
		},
		{
			name:     "names too long",
			form:     url.Values{"subjects": {strings.Repeat("x", 21)}, "subjectTeachers": {strings.Repeat("y", 21)}},
			wantCode: http.StatusBadRequest,
			extra: `{
				"subjects": "subjects entries cannot be longer than 20 characters",
				"subjectTeachers": "subjectTeachers entries cannot be longer than 20 characters"
			}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := setup()
			rec := serveJSON(app, http.MethodPost, "/generate", tt.form)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, echo.MIMEApplicationJSONCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
			for _, want := range tt.wantBody {
				assert.Contains(t, rec.Body.String(), want)
			}
			if wantJSON, ok := tt.extra.(string); ok {
				assert.JSONEq(t, wantJSON, rec.Body.String())
				// nothing was generated
				rec = serve(app, http.MethodGet, "/api/timetable", nil)
				assert.Equal(t, http.StatusNotFound, rec.Code)
			}
		})
	}
}

func Test_timetableApi_index(t *testing.T) {
	app := setup()

	// first load: form only
	rec := serve(app, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Auto Timetable Generator")
	assert.NotContains(t, rec.Body.String(), tableHeading)

	form := url.Values{"teachers": {"Ms. Lee"}, "subjects": {"Math"}, "subjectTeachers": {"Ms. Lee"}}
	require.Equal(t, http.StatusOK, serve(app, http.MethodPost, "/generate", form).Code)

	// the last generated timetable is shown to everyone
	rec = serve(app, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), tableHeading)
	assert.Equal(t, slotCells(timetable.Class), strings.Count(rec.Body.String(), cell(timetable.Class, "Math (Ms. Lee)")))

	// and replaced by the next one
	form = url.Values{"subjects": {"Art"}}
	require.Equal(t, http.StatusOK, serve(app, http.MethodPost, "/generate", form).Code)
	rec = serve(app, http.MethodGet, "/", nil)
	assert.Equal(t, 0, strings.Count(rec.Body.String(), "Math (Ms. Lee)"))
	assert.Equal(t, slotCells(timetable.Class), strings.Count(rec.Body.String(), cell(timetable.Class, "Art (Unknown)")))
}

func Test_timetableApi_current(t *testing.T) {
	app := setup()

	rec := serve(app, http.MethodGet, "/api/timetable", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "timetable not generated"}`, rec.Body.String())

	form := url.Values{"teachers": {"Ms. Lee"}, "subjects": {"Math"}, "subjectTeachers": {"Ms. Lee"}}
	require.Equal(t, http.StatusOK, serve(app, http.MethodPost, "/generate", form).Code)

	rec = serve(app, http.MethodGet, "/api/timetable", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var view timetable.View
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, timetable.DefaultGrid().Slots, view.Headers)
	require.Len(t, view.Rows, 5)
	for i, row := range view.Rows {
		assert.Equal(t, timetable.DefaultGrid().Days[i], row.Day)
		require.Len(t, row.Cells, 9)
		assert.Equal(t, "Math (Ms. Lee)", row.Cells[0].Label)
		assert.Equal(t, timetable.BreakLabel, row.Cells[2].Label)
		assert.Equal(t, timetable.LunchLabel, row.Cells[4].Label)
	}
}

func Test_appHTTPErrorHandler(t *testing.T) {
	app := setup()

	tests := []httpTest{
		{name: "html not found", method: http.MethodGet, path: "/lol", wantCode: http.StatusNotFound, wantBody: []string{"<h1>404 Not Found</h1>"}},
		{name: "api not found", method: http.MethodGet, path: "/api/lol", wantCode: http.StatusNotFound, wantBody: []string{`{"error":"Not Found"}`}},
		{name: "method not allowed", method: http.MethodGet, path: "/generate", wantCode: http.StatusMethodNotAllowed, wantBody: []string{"405 Method Not Allowed"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(app, tt.method, tt.path, nil)
			assert.Equal(t, tt.wantCode, rec.Code)
			for _, want := range tt.wantBody {
				assert.Contains(t, rec.Body.String(), want)
			}
		})
	}
}
