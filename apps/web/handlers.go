package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/drukschool/bulletin/core/about"
	"github.com/drukschool/bulletin/core/post"
	"github.com/drukschool/bulletin/core/user"
	"github.com/drukschool/bulletin/ui"
	"github.com/drukschool/bulletin/ui/render"
)

type webApp struct {
	ctrl     *ui.Controller
	renderer *render.HTMLRenderer
}

func registerRoutes(e *echo.Echo, ctrl *ui.Controller, renderer *render.HTMLRenderer) {
	app := &webApp{ctrl: ctrl, renderer: renderer}

	e.GET("/", app.index)
	e.GET("/sections/:name", app.showSection)

	e.POST("/login", app.login)
	e.POST("/register", app.register)
	e.POST("/logout", app.logout)

	e.GET("/posts/new", app.newPostForm)
	e.POST("/posts", app.createPost)
	e.POST("/posts/:id/vote", app.vote)

	e.POST("/admin/users/:id/delete", app.deleteUser)
	e.POST("/admin/posts/:id/delete", app.deletePost)

	e.GET("/admin/about", app.aboutManagement)
	e.GET("/admin/about/new", app.newAboutForm)
	e.GET("/admin/about/:id/edit", app.editAboutForm)
	e.POST("/admin/about", app.createAboutSection)
	e.POST("/admin/about/:id", app.updateAboutSection)
	e.POST("/admin/about/:id/delete", app.deleteAboutSection)
}

func (app *webApp) index(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/sections/home")
}

func (app *webApp) showSection(c echo.Context) error {
	sec := ui.Section(c.Param("name"))
	model, err := app.ctrl.Router().GoTo(c.Request().Context(), sec)
	if err != nil {
		return err
	}
	return app.renderPage(c, model)
}

// Auth commands

func (app *webApp) login(c echo.Context) error {
	creds := user.Credentials{
		Username: c.FormValue("username"),
		Password: c.FormValue("password"),
		Remember: c.FormValue("remember") == "on",
	}
	if _, err := app.ctrl.Login(c.Request().Context(), creds); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/sections/home")
}

func (app *webApp) register(c echo.Context) error {
	reg := user.Registration{
		FirstName:  c.FormValue("first_name"),
		LastName:   c.FormValue("last_name"),
		Username:   c.FormValue("username"),
		Email:      c.FormValue("email"),
		Password:   c.FormValue("password"),
		Role:       c.FormValue("role"),
		GradeLevel: c.FormValue("grade_level"),
	}
	if err := app.ctrl.Register(c.Request().Context(), reg); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/sections/home")
}

func (app *webApp) logout(c echo.Context) error {
	if _, err := app.ctrl.Logout(c.Request().Context()); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/sections/home")
}

// Post commands

func (app *webApp) newPostForm(c echo.Context) error {
	if !app.ctrl.Store().Current().CanCreateContent() {
		return ui.ErrPermissionDenied
	}
	return app.renderForm(c, postFormPage{PostType: c.QueryParam("type")})
}

func (app *webApp) createPost(c echo.Context) error {
	np := post.NewPost{
		Title:      c.FormValue("title"),
		Content:    c.FormValue("content"),
		PostType:   c.FormValue("post_type"),
		GradeLevel: c.FormValue("grade_level"),
	}
	if raw := c.FormValue("expires_at"); raw != "" {
		t, err := time.Parse("2006-01-02T15:04", raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid expiration date format")
		}
		np.ExpiresAt = &t
	}
	if _, err := app.ctrl.CreatePost(c.Request().Context(), np); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/sections/"+string(sectionFor(np.PostType)))
}

func (app *webApp) vote(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	}
	if _, err := app.ctrl.VoteOnPost(c.Request().Context(), id); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/sections/articles")
}

// Admin commands. The browser form carries an explicit confirm field; a
// missing confirmation is a no-op redirect, no API call is made.

func (app *webApp) deleteUser(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	}
	if !confirmed(c) {
		return c.Redirect(http.StatusSeeOther, "/sections/admin")
	}
	if _, err := app.ctrl.DeleteUser(c.Request().Context(), id); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/sections/admin")
}

func (app *webApp) deletePost(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	}
	if !confirmed(c) {
		return c.Redirect(http.StatusSeeOther, "/sections/admin")
	}
	if _, err := app.ctrl.DeletePost(c.Request().Context(), id); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/sections/admin")
}

// About management

func (app *webApp) aboutManagement(c echo.Context) error {
	model, err := app.ctrl.AboutManagement(c.Request().Context())
	if err != nil {
		return err
	}
	return app.renderPage(c, *model)
}

func (app *webApp) newAboutForm(c echo.Context) error {
	if !app.ctrl.Store().Current().CanManageAbout() {
		return ui.ErrPermissionDenied
	}
	return app.renderForm(c, aboutFormPage{IsActive: true})
}

// editAboutForm loads the existing section into the form; the section name
// field renders disabled so the edit path cannot change it.
func (app *webApp) editAboutForm(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	}
	model, err := app.ctrl.AboutManagement(c.Request().Context())
	if err != nil {
		return err
	}
	for _, sec := range model.Sections {
		if sec.ID == id {
			return app.renderForm(c, aboutFormPage{
				Edit:         true,
				ID:           sec.ID,
				SectionName:  sec.SectionName,
				Title:        sec.Title,
				Content:      sec.Content,
				DisplayOrder: sec.DisplayOrder,
				IsActive:     sec.IsActive,
			})
		}
	}
	return echo.NewHTTPError(http.StatusNotFound, "section not found")
}

func (app *webApp) createAboutSection(c echo.Context) error {
	ns := about.NewSection{
		SectionName: c.FormValue("section_name"),
		Title:       c.FormValue("title"),
		Content:     c.FormValue("content"),
		IsActive:    c.FormValue("is_active") == "on",
	}
	ns.DisplayOrder, _ = strconv.Atoi(c.FormValue("display_order"))
	if _, err := app.ctrl.CreateAboutSection(c.Request().Context(), ns); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/about")
}

func (app *webApp) updateAboutSection(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	}
	us := about.UpdateSection{
		Title:    c.FormValue("title"),
		Content:  c.FormValue("content"),
		IsActive: c.FormValue("is_active") == "on",
	}
	us.DisplayOrder, _ = strconv.Atoi(c.FormValue("display_order"))
	if _, err := app.ctrl.UpdateAboutSection(c.Request().Context(), id, us); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/about")
}

func (app *webApp) deleteAboutSection(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	}
	if !confirmed(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/about")
	}
	if _, err := app.ctrl.DeleteAboutSection(c.Request().Context(), id); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/about")
}

func confirmed(c echo.Context) bool {
	return c.FormValue("confirm") == "yes"
}

func sectionFor(postType string) ui.Section {
	switch postType {
	case post.TypeAnnouncement:
		return ui.SectionAnnouncements
	case post.TypeReminder:
		return ui.SectionReminders
	case post.TypeArticle:
		return ui.SectionArticles
	default:
		return ui.SectionHome
	}
}
