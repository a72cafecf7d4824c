package echoapi

import (
	"net/http"
	"sort"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/ratiba/core"
	"github.com/trezcool/ratiba/core/timetable"
)

type timetableApi struct {
	svc        *timetable.Service
	limits     timetable.Limits
	logger     core.Logger
	validate   *validator.Validate
	translator ut.Translator
}

func registerTimetableAPI(app *echo.Echo, deps ServerDeps) {
	api := timetableApi{
		svc:        deps.TimetableSvc,
		limits:     deps.Limits,
		logger:     deps.Logger,
		validate:   deps.Validate,
		translator: deps.Translator,
	}

	app.GET("/", api.index)
	app.POST("/generate", api.generate)
	app.GET("/api/timetable", api.current)
}

// Handlers

func (api *timetableApi) index(ctx echo.Context) error {
	page := indexPage{}
	tt, err := api.svc.Current(ctx.Request().Context())
	switch {
	case err == nil:
		view := timetable.BuildView(tt, api.svc.Grid())
		page.View = &view
	case !errors.Is(err, timetable.ErrNotFound):
		return err
	}
	return ctx.Render(http.StatusOK, indexTemplate, page)
}

func (api *timetableApi) generate(ctx echo.Context) error {
	data, err := bindNewTimetable(ctx)
	if err != nil {
		return err
	}
	if err = data.Validate(api.validate); err != nil {
		var vErrs validator.ValidationErrors
		if !errors.As(err, &vErrs) {
			return errors.Wrap(err, "validating form")
		}
		if isAPIRequest(ctx) {
			return api.newValidationError(vErrs)
		}
		// the form always gets a timetable
		api.logger.Warn("form over limits, clipping it", api.translate(vErrs))
		data = api.limits.Clip(data)
	}

	tt, err := api.svc.Generate(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	view := timetable.BuildView(tt, api.svc.Grid())
	if isAPIRequest(ctx) {
		return ctx.JSON(http.StatusOK, view)
	}
	return ctx.Render(http.StatusOK, indexTemplate, indexPage{View: &view})
}

func (api *timetableApi) current(ctx echo.Context) error {
	tt, err := api.svc.Current(ctx.Request().Context())
	if err != nil {
		if errors.Is(err, timetable.ErrNotFound) {
			return errTimetableNotFound
		}
		return err
	}
	return ctx.JSON(http.StatusOK, timetable.BuildView(tt, api.svc.Grid()))
}

func (api *timetableApi) newValidationError(vErrs validator.ValidationErrors) error {
	fields := make([]core.FieldError, 0, len(vErrs))
	for _, vErr := range vErrs {
		fields = append(fields, core.FieldError{Field: vErr.Field(), Error: vErr.Translate(api.translator)})
	}
	return core.NewValidationError(vErrs, fields...)
}

func (api *timetableApi) translate(vErrs validator.ValidationErrors) []string {
	msgs := make([]string, 0, len(vErrs))
	for _, vErr := range vErrs {
		msgs = append(msgs, vErr.Translate(api.translator))
	}
	sort.Strings(msgs)
	return msgs
}
