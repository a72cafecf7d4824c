package tests

import (
	"io"
	"io/ioutil"
	"log"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	. "github.com/trezcool/ratiba/apps/api/echo"
	"github.com/trezcool/ratiba/core"
	"github.com/trezcool/ratiba/core/timetable"
	logsvc "github.com/trezcool/ratiba/services/logger"
	inmemdb "github.com/trezcool/ratiba/storage/inmem"
)

var testLimits = timetable.Limits{MaxTeachers: 3, MaxSubjects: 3, MaxNameLength: 20}

func setup() *Server {
	conf := &core.Config{
		Env:      "TEST",
		TestMode: true,
		AppName:  "Ratiba",
		Server:   core.ServerConfig{DisableReqLogs: true},
	}
	logger := logsvc.NewStdLogger(log.New(ioutil.Discard, "", 0))

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	timetable.InitValidators(validate, translator, testLimits)

	gen := timetable.NewGenerator(timetable.DefaultGrid(), rand.NewSource(1))
	repo := inmemdb.NewTimetableRepository(inmemdb.Open())

	return NewServer(
		ServerDeps{
			Conf:         conf,
			Logger:       logger,
			TimetableSvc: timetable.NewService(gen, repo, logger),
			Limits:       testLimits,
			Validate:     validate,
			Translator:   translator,
		},
	)
}

type httpTest struct {
	name     string
	method   string
	path     string
	form     url.Values
	wantCode int
	wantBody []string // substrings
	extra    interface{}
}

func newRequest(method, path string, form url.Values, accept string) (*http.Request, *httptest.ResponseRecorder) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	if accept != "" {
		req.Header.Set(echo.HeaderAccept, accept)
	}
	return req, httptest.NewRecorder()
}

func serve(app *Server, method, path string, form url.Values) *httptest.ResponseRecorder {
	req, rec := newRequest(method, path, form, "")
	app.ServeHTTP(rec, req)
	return rec
}

func serveJSON(app *Server, method, path string, form url.Values) *httptest.ResponseRecorder {
	req, rec := newRequest(method, path, form, echo.MIMEApplicationJSON)
	app.ServeHTTP(rec, req)
	return rec
}

// slotCells returns the number of cells of the given kind in a generated week.
func slotCells(kind timetable.SlotKind) int {
	grid := timetable.DefaultGrid()
	n := 0
	for _, slot := range grid.Slots {
		if slot.Kind == kind {
			n++
		}
	}
	return n * len(grid.Days)
}

func cell(kind timetable.SlotKind, label string) string {
	return `<td class="` + string(kind) + `">` + label + `</td>`
}
