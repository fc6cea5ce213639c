package main

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/drukschool/bulletin/core"
	"github.com/drukschool/bulletin/core/user"
	"github.com/drukschool/bulletin/ui"
)

// pageData is the context for the page shell wrapping a section fragment.
type pageData struct {
	AppName       string
	Title         string
	Active        ui.Section
	Viewer        *user.Identity
	Authenticated bool
	Content       template.HTML
}

type postFormPage struct {
	AppName  string
	Viewer   *user.Identity
	PostType string
}

type aboutFormPage struct {
	AppName      string
	Viewer       *user.Identity
	Edit         bool
	ID           int
	SectionName  string
	Title        string
	Content      string
	DisplayOrder int
	IsActive     bool
}

type errorPage struct {
	AppName string
	Code    int
	Message string
	Fields  map[string]string
}

var sectionTitles = map[ui.Section]string{
	ui.SectionHome:          "Home",
	ui.SectionArticles:      "Articles",
	ui.SectionAnnouncements: "Announcements",
	ui.SectionReminders:     "Reminders",
	ui.SectionAbout:         "About",
	ui.SectionAdmin:         "Admin Dashboard",
	ui.SectionProfile:       "My Profile",
}

func (app *webApp) renderPage(c echo.Context, model ui.RenderModel) error {
	content, err := app.renderer.Render(model)
	if err != nil {
		return err
	}
	usr := app.ctrl.Store().Current()
	data := pageData{
		AppName:       core.Conf.GetString("appName"),
		Title:         sectionTitles[model.Section()],
		Active:        model.Section(),
		Viewer:        usr,
		Authenticated: usr.IsAuthenticated(),
		Content:       content,
	}
	return c.HTML(http.StatusOK, executePage("page", data))
}

func (app *webApp) renderForm(c echo.Context, data interface{}) error {
	usr := app.ctrl.Store().Current()
	name := "about_form"
	switch d := data.(type) {
	case postFormPage:
		d.AppName = core.Conf.GetString("appName")
		d.Viewer = usr
		data, name = d, "post_form"
	case aboutFormPage:
		d.AppName = core.Conf.GetString("appName")
		d.Viewer = usr
		data = d
	}
	return c.HTML(http.StatusOK, executePage(name, data))
}

func renderErrorPage(c echo.Context, code int, message string, fields map[string]string) error {
	data := errorPage{
		AppName: core.Conf.GetString("appName"),
		Code:    code,
		Message: message,
		Fields:  fields,
	}
	return c.HTML(code, executePage("error", data))
}

func executePage(name string, data interface{}) string {
	var b strings.Builder
	if err := pageTemplates.ExecuteTemplate(&b, name, data); err != nil {
		return "<h1>Something went wrong. Please try again.</h1>"
	}
	return b.String()
}

var pageTemplates = template.Must(template.New("pages").Funcs(template.FuncMap{
	"navLink": func(active ui.Section, sec, label string) template.HTML {
		cls := "nav-link"
		if string(active) == sec {
			cls += " active"
		}
		return template.HTML(`<li class="nav-item"><a class="` + cls +
			`" href="/sections/` + template.HTMLEscapeString(sec) + `">` +
			template.HTMLEscapeString(label) + `</a></li>`)
	},
}).Parse(pageShellTemplates))
