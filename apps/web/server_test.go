package main

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drukschool/bulletin/core"
	"github.com/drukschool/bulletin/core/user"
	"github.com/drukschool/bulletin/services/gateway"
	"github.com/drukschool/bulletin/ui"
	"github.com/drukschool/bulletin/ui/render"
)

type nopLogger struct{}

var _ core.Logger = (*nopLogger)(nil)

func (nopLogger) Enable(bool)                  {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func (nopLogger) Fatal(msg string, _ ...interface{}) { panic(msg) }

type fakeAPI struct {
	mu   sync.Mutex
	reqs []string
}

func (f *fakeAPI) count(fragment string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int
	for _, req := range f.reqs {
		if strings.Contains(req, fragment) {
			n++
		}
	}
	return n
}

// setup starts a stub bulletin API plus the web server wired to it.
func setup(t *testing.T, routes map[string]http.HandlerFunc) (Server, *ui.Controller, *fakeAPI) {
	t.Helper()
	api := &fakeAPI{}
	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.mu.Lock()
		api.reqs = append(api.reqs, r.Method+" "+r.URL.Path)
		api.mu.Unlock()
		if h, ok := routes[r.Method+" "+r.URL.Path]; ok {
			h(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(apiSrv.Close)

	gw := gateway.NewClient(apiSrv.URL, nopLogger{})
	ctrl := ui.NewController(gw, nopLogger{}, ui.AlwaysConfirm)
	renderer, err := render.NewHTMLRenderer()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	srv := NewServer(&Options{
		Addr:           ":0",
		DisableReqLogs: true,
		Ctrl:           ctrl,
		Renderer:       renderer,
	})
	return srv, ctrl, api
}

func doGET(s Server, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func doForm(s Server, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func Test_server_index(t *testing.T) {
	s, _, _ := setup(t, nil)
	rec := doGET(s, "/")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/sections/home", rec.Header().Get("Location"))
}

func Test_server_homeLoggedOut(t *testing.T) {
	s, _, _ := setup(t, nil)
	rec := doGET(s, "/sections/home")
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, render.TextLoginToView)
	assert.Contains(t, body, `action="/login"`)
	assert.Contains(t, body, `action="/register"`)
}

func Test_server_protectedSectionLoggedOut(t *testing.T) {
	s, _, api := setup(t, nil)
	rec := doGET(s, "/sections/articles")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "please login to access this section")
	assert.Zero(t, api.count("GET /posts"))
}

func Test_server_unknownSection(t *testing.T) {
	s, _, _ := setup(t, nil)
	rec := doGET(s, "/sections/payroll")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func Test_server_login(t *testing.T) {
	s, _, api := setup(t, map[string]http.HandlerFunc{
		"POST /auth/login": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"user": {"id": 1, "username": "tashi", "role": "student", "grade_level": "junior"}}`))
		},
	})

	rec := doForm(s, "/login", url.Values{"username": {"tashi"}, "password": {"pwd"}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/sections/home", rec.Header().Get("Location"))
	assert.Equal(t, 1, api.count("POST /auth/login"))

	// the session lives server-side in the controller
	rec = doGET(s, "/sections/articles")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func Test_server_loginValidationError(t *testing.T) {
	s, _, api := setup(t, nil)
	rec := doForm(s, "/login", url.Values{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please correct the fields below.")
	assert.Zero(t, api.count("POST /auth/login"))
}

func Test_server_apiErrorSurfacesVerbatim(t *testing.T) {
	s, _, _ := setup(t, map[string]http.HandlerFunc{
		"POST /auth/login": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": "Invalid username or password"}`))
		},
	})
	rec := doForm(s, "/login", url.Values{"username": {"tashi"}, "password": {"nope"}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid username or password")
}

func Test_server_createPostAffordanceFollowsPermissions(t *testing.T) {
	t.Run("student", func(t *testing.T) {
		s, ctrl, _ := setup(t, nil)
		ctrl.Store().SetAuthenticated(&user.Identity{ID: 1, Username: "tashi", Role: user.RoleStudent})

		// no button offered, and the form behind it is refused too
		rec := doGET(s, "/sections/articles")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "Write Article")

		rec = doGET(s, "/posts/new")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("language teacher", func(t *testing.T) {
		s, ctrl, _ := setup(t, nil)
		ctrl.Store().SetAuthenticated(&user.Identity{ID: 2, Username: "pema", Role: user.RoleLanguageTeacher})

		rec := doGET(s, "/sections/articles")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Write Article")

		rec = doGET(s, "/posts/new")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func Test_server_deleteUserUnconfirmed(t *testing.T) {
	s, ctrl, api := setup(t, nil)
	ctrl.Store().SetAuthenticated(&user.Identity{ID: 1, Username: "pema", Role: user.RoleAdmin})

	rec := doForm(s, "/admin/users/2/delete", url.Values{})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	// without the confirm field no delete reaches the API
	assert.Zero(t, api.count("DELETE /admin/users/2"))

	rec = doForm(s, "/admin/users/2/delete", url.Values{"confirm": {"yes"}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, 1, api.count("DELETE /admin/users/2"))
}
