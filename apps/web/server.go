package main

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/pkg/errors"

	"github.com/drukschool/bulletin/core"
	"github.com/drukschool/bulletin/services/gateway"
	"github.com/drukschool/bulletin/ui"
	"github.com/drukschool/bulletin/ui/render"
)

type (
	Options struct {
		Addr           string
		DisableReqLogs bool
		Ctrl           *ui.Controller
		Renderer       *render.HTMLRenderer
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
	}

	server struct {
		opts *Options
		app  *echo.Echo
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts: opts,
		app:  echo.New(),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	debug := core.Conf.GetBool("debug")

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(debug || core.Conf.GetBool("testMode")) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = s.httpErrorHandler
	s.app.Debug = debug

	registerRoutes(s.app, s.opts.Ctrl, s.opts.Renderer)
}

func (s *server) Start() {
	s.app.Logger.Fatal(s.app.Start(s.opts.Addr))
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

// httpErrorHandler maps controller and gateway failures onto user-facing
// pages. No error is fatal: the UI stays interactive after every failure.
func (s *server) httpErrorHandler(err error, c echo.Context) {
	var (
		code    = http.StatusInternalServerError
		message = "Something went wrong. Please try again."
		fields  map[string]string
	)

	var (
		httpErr *echo.HTTPError
		vErr    *core.ValidationError
		apiErr  *gateway.APIError
	)
	switch {
	case errors.As(err, &httpErr):
		code = httpErr.Code
		if m, ok := httpErr.Message.(string); ok {
			message = m
		}
	case errors.As(err, &vErr):
		code = http.StatusBadRequest
		message = "Please correct the fields below."
		fields = vErr.FieldMap()
	case errors.Is(err, ui.ErrAuthRequired):
		code = http.StatusUnauthorized
		message = ui.ErrAuthRequired.Error()
	case errors.Is(err, ui.ErrPermissionDenied):
		code = http.StatusForbidden
		message = render.TextAccessDenied
	case errors.Is(err, ui.ErrUnknownSection):
		code = http.StatusNotFound
		message = ui.ErrUnknownSection.Error()
	case errors.As(err, &apiErr):
		code = apiErr.StatusCode
		message = apiErr.Error()
	}

	if !c.Response().Committed {
		if rErr := renderErrorPage(c, code, message, fields); rErr != nil {
			c.Echo().Logger.Error(rErr)
		}
	}
}
