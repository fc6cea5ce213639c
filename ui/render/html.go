package render

import (
	"bytes"
	"html/template"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"

	"github.com/drukschool/bulletin/core/post"
	"github.com/drukschool/bulletin/core/user"
	"github.com/drukschool/bulletin/ui"
)

// Fixed user-facing texts. Loaders return data; these belong to the view.
const (
	TextLoginToView     = "Please login to view content."
	TextNoTopArticles   = "No articles have been voted on this month."
	TextNoArticles      = "No articles available."
	TextNoAnnouncements = "No announcements available."
	TextNoReminders     = "No reminders available."
	TextNoAbout         = "No about information available"
	TextAccessDenied    = "Access denied."
	TextLoadError       = "Error loading articles."
)

// HTMLRenderer turns render models into HTML fragments. Markdown content
// (about sections) goes through goldmark; plain post content only gets its
// newlines preserved.
type HTMLRenderer struct {
	md   goldmark.Markdown
	tmpl *template.Template
}

func NewHTMLRenderer() (*HTMLRenderer, error) {
	r := &HTMLRenderer{md: goldmark.New()}

	tmpl := template.New("sections").Funcs(template.FuncMap{
		"markdown": r.Markdown,
		"nl2br":    nl2br,
		"date":     formatDate,
		"upper":    strings.ToUpper,
		"votable": func(viewer *user.Identity, p post.Post) bool {
			return p.VotableBy(viewer)
		},
		"hasVoted": func(p post.Post) bool {
			return p.UserHasVoted != nil && *p.UserHasVoted
		},
		"trunc": truncate,
		"votecard": func(p post.Post, viewer *user.Identity) postCard {
			return postCard{Post: p, Viewer: viewer, ShowVoting: true}
		},
		"plaincard": func(p post.Post) postCard {
			return postCard{Post: p}
		},
	})
	tmpl, err := tmpl.Parse(sectionTemplates)
	if err != nil {
		return nil, errors.Wrap(err, "render: parse templates")
	}
	r.tmpl = tmpl
	return r, nil
}

// Render produces the HTML fragment for the given model.
func (r *HTMLRenderer) Render(model ui.RenderModel) (template.HTML, error) {
	name := templateName(model)
	if name == "" {
		return "", errors.Errorf("render: no template for %T", model)
	}
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, model); err != nil {
		return "", errors.Wrapf(err, "render: %s", name)
	}
	return template.HTML(buf.String()), nil
}

// Markdown converts markdown source to sanitized-enough HTML for the about
// pages. Invalid input degrades to escaped text, never to an error page.
func (r *HTMLRenderer) Markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return template.HTML("<p>" + template.HTMLEscapeString(src) + "</p>")
	}
	return template.HTML(buf.String())
}

func templateName(model ui.RenderModel) string {
	switch model.(type) {
	case ui.HomeModel:
		return "home"
	case ui.ArticlesModel:
		return "articles"
	case ui.AnnouncementsModel:
		return "announcements"
	case ui.RemindersModel:
		return "reminders"
	case ui.AdminModel:
		return "admin"
	case ui.AboutModel:
		return "about"
	case ui.AboutManageModel:
		return "about_manage"
	case ui.ProfileModel:
		return "profile"
	}
	return ""
}

// postCard is the context handed to the shared post_card template.
type postCard struct {
	Post       post.Post
	Viewer     *user.Identity
	ShowVoting bool
}

func nl2br(s string) template.HTML {
	return template.HTML(strings.ReplaceAll(template.HTMLEscapeString(s), "\n", "<br>"))
}

func formatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// truncate cuts on a rune boundary so multi-byte content never ends in a
// mangled character.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}
