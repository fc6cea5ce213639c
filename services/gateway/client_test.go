package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drukschool/bulletin/core"
	"github.com/drukschool/bulletin/core/user"
)

type noopLogger struct{}

var _ core.Logger = (*noopLogger)(nil)

func (noopLogger) Enable(bool)                  {}
func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func (noopLogger) Fatal(msg string, _ ...interface{}) { panic(msg) }

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(srv.URL, noopLogger{}), srv
}

func Test_Client_structuredError(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error": "You have already voted this month"}`))
	}))
	defer srv.Close()

	err := client.Vote(context.Background(), 7)
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "You have already voted this month", apiErr.Error())
	assert.Equal(t, "You have already voted this month", UserMessage(err, "fallback"))
}

func Test_Client_unstructuredError(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	err := client.Logout(context.Background())
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	assert.Equal(t, "request failed (HTTP 502)", apiErr.Error())
	assert.Equal(t, "fallback", UserMessage(err, "fallback"))
}

func Test_Client_transportError(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse all connections

	err := client.Logout(context.Background())
	assert.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
	assert.Equal(t, "fallback", UserMessage(err, "fallback"))
}

func Test_Client_sessionCookiePersists(t *testing.T) {
	var gotCookie string
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			http.SetCookie(w, &http.Cookie{Name: "session", Value: "abc123", Path: "/"})
			w.Write([]byte(`{"user": {"id": 1, "username": "tashi", "role": "student"}}`))
		default:
			if c, err := r.Cookie("session"); err == nil {
				gotCookie = c.Value
			}
			w.Write([]byte(`{"posts": []}`))
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	usr, err := client.Login(ctx, user.Credentials{Username: "tashi", Password: "pwd"})
	assert.NoError(t, err)
	assert.Equal(t, "tashi", usr.Username)

	_, err = client.Posts(ctx, "")
	assert.NoError(t, err)
	assert.Equal(t, "abc123", gotCookie)
}

func Test_Client_CheckAuth(t *testing.T) {
	t.Run("logged out", func(t *testing.T) {
		client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"authenticated": false}`))
		}))
		defer srv.Close()

		usr, err := client.CheckAuth(context.Background())
		assert.NoError(t, err)
		assert.Nil(t, usr)
	})

	t.Run("logged in", func(t *testing.T) {
		client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"authenticated": true, "user": {"id": 3, "username": "pema", "role": "admin"}}`))
		}))
		defer srv.Close()

		usr, err := client.CheckAuth(context.Background())
		assert.NoError(t, err)
		if assert.NotNil(t, usr) {
			assert.Equal(t, "pema", usr.Username)
			assert.True(t, usr.IsAdmin())
		}
	})
}

func Test_Client_Posts_typeFilter(t *testing.T) {
	var gotType string
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotType = r.URL.Query().Get("type")
		w.Write([]byte(`{"posts": [{"id": 1, "title": "Hello", "post_type": "reminder"}]}`))
	}))
	defer srv.Close()

	posts, err := client.Posts(context.Background(), "reminder")
	assert.NoError(t, err)
	assert.Equal(t, "reminder", gotType)
	if assert.Len(t, posts, 1) {
		assert.Equal(t, "Hello", posts[0].Title)
	}
}

func Test_Client_voteFlagRoundTrip(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"posts": [
			{"id": 1, "title": "A", "post_type": "article", "is_published": true, "user_has_voted": false},
			{"id": 2, "title": "B", "post_type": "article", "is_published": true, "user_has_voted": true},
			{"id": 3, "title": "C", "post_type": "article", "is_published": true}
		]}`))
	}))
	defer srv.Close()

	posts, err := client.Posts(context.Background(), "article")
	assert.NoError(t, err)
	if assert.Len(t, posts, 3) {
		student := &user.Identity{Role: user.RoleStudent}
		assert.True(t, posts[0].VotableBy(student))
		assert.False(t, posts[1].VotableBy(student))
		// absent flag means the server sent no voting info; do not offer a vote
		assert.False(t, posts[2].VotableBy(student))
	}
}
