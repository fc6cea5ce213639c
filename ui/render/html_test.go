package render

import (
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/drukschool/bulletin/core/about"
	"github.com/drukschool/bulletin/core/post"
	"github.com/drukschool/bulletin/core/user"
	"github.com/drukschool/bulletin/ui"
)

func newRenderer(t *testing.T) *HTMLRenderer {
	t.Helper()
	r, err := NewHTMLRenderer()
	if err != nil {
		t.Fatalf("NewHTMLRenderer() failed: %v", err)
	}
	return r
}

func Test_Render_home(t *testing.T) {
	r := newRenderer(t)

	t.Run("logged out placeholder", func(t *testing.T) {
		html, err := r.Render(ui.HomeModel{})
		assert.NoError(t, err)
		assert.Contains(t, string(html), TextLoginToView)
	})

	t.Run("member digest", func(t *testing.T) {
		usr := &user.Identity{Role: user.RoleStudent}
		note := post.Post{Title: "Welcome Back", Content: "A new term begins."}
		html, err := r.Render(ui.HomeModel{
			Authenticated:  true,
			Viewer:         usr,
			PrincipalNote:  &note,
			RecentArticles: []post.Post{{Title: "Art One", Content: "..."}},
			Winners:        []post.WinnerEntry{{PostTitle: "Best", PostAuthor: "Pema", VoteCount: 9, GradeLevel: "senior"}},
			WinnersMonth:   "2026-09",
		})
		assert.NoError(t, err)
		out := string(html)
		assert.Contains(t, out, "Welcome Back")
		assert.Contains(t, out, "Art One")
		assert.Contains(t, out, "Best")
		assert.Contains(t, out, "Monthly Winners (2026-09)")
		assert.NotContains(t, out, TextLoginToView)
	})
}

func Test_Render_articles(t *testing.T) {
	r := newRenderer(t)
	no := false

	t.Run("empty states", func(t *testing.T) {
		html, err := r.Render(ui.ArticlesModel{})
		assert.NoError(t, err)
		assert.Contains(t, string(html), TextNoTopArticles)
		assert.Contains(t, string(html), TextNoArticles)
	})

	t.Run("load failure", func(t *testing.T) {
		html, err := r.Render(ui.ArticlesModel{TopErr: errors.New("boom")})
		assert.NoError(t, err)
		assert.Contains(t, string(html), TextLoadError)
	})

	t.Run("vote button only when votable", func(t *testing.T) {
		usr := &user.Identity{Role: user.RoleStudent}
		votable := post.Post{ID: 7, Title: "A", PostType: post.TypeArticle, IsPublished: true, UserHasVoted: &no}
		html, err := r.Render(ui.ArticlesModel{Viewer: usr, AllArticles: []post.Post{votable}})
		assert.NoError(t, err)
		assert.Contains(t, string(html), `action="/posts/7/vote"`)

		// no voting info from the server, no button
		html, err = r.Render(ui.ArticlesModel{Viewer: usr, AllArticles: []post.Post{{ID: 8, Title: "B"}}})
		assert.NoError(t, err)
		assert.NotContains(t, string(html), `action="/posts/8/vote"`)
	})
}

func Test_Render_emptyStates(t *testing.T) {
	r := newRenderer(t)

	tests := []struct {
		name  string
		model ui.RenderModel
		want  string
	}{
		{name: "announcements", model: ui.AnnouncementsModel{}, want: TextNoAnnouncements},
		{name: "reminders", model: ui.RemindersModel{}, want: TextNoReminders},
		{name: "about", model: ui.AboutModel{}, want: TextNoAbout},
		{name: "admin denied", model: ui.AdminModel{Denied: true}, want: TextAccessDenied},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := r.Render(tt.model)
			assert.NoError(t, err)
			assert.Contains(t, string(html), tt.want)
		})
	}
}

func Test_Render_about_markdown(t *testing.T) {
	r := newRenderer(t)

	html, err := r.Render(ui.AboutModel{Sections: []about.Section{
		{Title: "Mission", Content: "We value **honesty** above all."},
	}})
	assert.NoError(t, err)
	assert.Contains(t, string(html), "<strong>honesty</strong>")
}

func Test_Render_postContentIsEscaped(t *testing.T) {
	r := newRenderer(t)

	html, err := r.Render(ui.AnnouncementsModel{Posts: []post.Post{
		{Title: "Notice", Content: "line one\n<script>alert(1)</script>"},
	}})
	assert.NoError(t, err)
	out := string(html)
	assert.Contains(t, out, "line one<br>")
	assert.NotContains(t, out, "<script>")
}

func Test_Render_profile(t *testing.T) {
	r := newRenderer(t)

	html, err := r.Render(ui.ProfileModel{
		Identity: user.Identity{
			FirstName: "Tashi", LastName: "Dorji", Username: "tashid",
			Role: user.RoleStudent, GradeLevel: user.GradeJunior,
			IsActive: true, CreatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		Permissions: []string{"Can view content and vote"},
		GradeAccess: []string{user.GradeJunior},
	})
	assert.NoError(t, err)
	out := string(html)
	assert.Contains(t, out, "Tashi")
	assert.Contains(t, out, "Mar 1, 2025")
	assert.Contains(t, out, "Can view content and vote")
	assert.Contains(t, out, "JUNIOR")
}

func Test_truncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abc...", truncate("abcdef", 3))

	// Dzongkha school notices must not lose half a rune mid-cut
	dz := strings.Repeat("འབྲུག", 3) // 15 runes
	got := truncate(dz, 7)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, string([]rune(dz)[:7])+"...", got)
	assert.NotContains(t, got, "�")
}

func Test_Markdown_invalidInputDegrades(t *testing.T) {
	r := newRenderer(t)
	out := string(r.Markdown("plain text"))
	assert.Contains(t, out, "plain text")
}
