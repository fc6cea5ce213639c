package ui

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/drukschool/bulletin/core"
	"github.com/drukschool/bulletin/core/user"
	"github.com/drukschool/bulletin/services/gateway"
)

type nopLogger struct{}

var _ core.Logger = (*nopLogger)(nil)

func (nopLogger) Enable(bool)                  {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func (nopLogger) Fatal(msg string, _ ...interface{}) { panic(msg) }

// apiRecorder tracks every request the controller makes, so tests can assert
// not just on results but on which calls happened at all.
type apiRecorder struct {
	mu   sync.Mutex
	reqs []string
}

func (r *apiRecorder) add(req *http.Request) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := req.Method + " " + req.URL.Path
	if req.URL.RawQuery != "" {
		key += "?" + req.URL.RawQuery
	}
	r.reqs = append(r.reqs, key)
}

// count returns how many recorded requests contain the given fragment.
func (r *apiRecorder) count(fragment string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int
	for _, req := range r.reqs {
		if strings.Contains(req, fragment) {
			n++
		}
	}
	return n
}

func (r *apiRecorder) total() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reqs)
}

func jsonOK(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}
}

func jsonError(code int, msg string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		w.Write([]byte(`{"error": "` + msg + `"}`))
	}
}

// newTestController spins up a fake API server routed by "METHOD /path" keys
// and a controller pointed at it. Unrouted paths return an empty 200 body so
// loaders see empty lists rather than errors.
func newTestController(t *testing.T, routes map[string]http.HandlerFunc, confirm Confirmer) (*Controller, *apiRecorder) {
	t.Helper()
	rec := &apiRecorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.add(r)
		if h, ok := routes[r.Method+" "+r.URL.Path]; ok {
			h(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	if confirm == nil {
		confirm = AlwaysConfirm
	}
	gw := gateway.NewClient(srv.URL, nopLogger{})
	return NewController(gw, nopLogger{}, confirm), rec
}

func loginAs(ctrl *Controller, role string) *user.Identity {
	usr := &user.Identity{ID: 1, Username: "tester", Role: role, GradeLevel: user.GradeJunior, IsActive: true}
	ctrl.store.SetAuthenticated(usr)
	return usr
}
