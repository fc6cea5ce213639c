package main

import (
	"fmt"
	"strings"

	"github.com/drukschool/bulletin/core/post"
	"github.com/drukschool/bulletin/ui"
	"github.com/drukschool/bulletin/ui/render"
)

func (cli *commandLine) printModels(models []ui.RenderModel) {
	for _, m := range models {
		cli.printModel(m)
	}
}

func (cli *commandLine) printModel(model ui.RenderModel) {
	if model == nil {
		return
	}
	switch m := model.(type) {
	case ui.HomeModel:
		cli.printHome(m)
	case ui.ArticlesModel:
		cli.printArticles(m)
	case ui.AnnouncementsModel:
		cli.printPostList("ANNOUNCEMENTS", m.Posts, render.TextNoAnnouncements)
	case ui.RemindersModel:
		cli.printPostList("REMINDERS", m.Posts, render.TextNoReminders)
	case ui.AdminModel:
		cli.printAdmin(m)
	case ui.AboutModel:
		cli.printAbout(m)
	case ui.AboutManageModel:
		cli.printAboutManage(m)
	case ui.ProfileModel:
		cli.printProfile(m)
	}
}

func (cli *commandLine) printHome(m ui.HomeModel) {
	fmt.Fprintln(cli.out, "== HOME ==")
	if !m.Authenticated {
		fmt.Fprintln(cli.out, render.TextLoginToView)
		return
	}
	fmt.Fprintln(cli.out, "-- Principal's Note --")
	if m.PrincipalNote != nil {
		fmt.Fprintf(cli.out, "%s\n%s\n", m.PrincipalNote.Title, m.PrincipalNote.Content)
	}
	fmt.Fprintln(cli.out, "-- Recent Articles --")
	for _, p := range m.RecentArticles {
		fmt.Fprintf(cli.out, "  [%d] %s (by %s)\n", p.ID, p.Title, p.AuthorName)
	}
	fmt.Fprintln(cli.out, "-- Important Reminders --")
	for _, p := range m.Reminders {
		fmt.Fprintf(cli.out, "  %s: %s\n", p.Title, p.Content)
	}
	if len(m.Winners) > 0 {
		fmt.Fprintf(cli.out, "-- Monthly Winners (%s) --\n", m.WinnersMonth)
		for _, w := range m.Winners {
			fmt.Fprintf(cli.out, "  %s by %s (%s) - %d votes\n", w.PostTitle, w.PostAuthor, w.GradeLevel, w.VoteCount)
		}
	}
}

func (cli *commandLine) printArticles(m ui.ArticlesModel) {
	fmt.Fprintln(cli.out, "== ARTICLES ==")
	fmt.Fprintln(cli.out, "-- Top Articles This Month --")
	switch {
	case m.TopErr != nil:
		fmt.Fprintln(cli.out, render.TextLoadError)
	case len(m.TopArticles) == 0:
		fmt.Fprintln(cli.out, render.TextNoTopArticles)
	default:
		for _, p := range m.TopArticles {
			cli.printArticle(m, p)
		}
	}
	fmt.Fprintln(cli.out, "-- All Articles --")
	switch {
	case m.AllErr != nil:
		fmt.Fprintln(cli.out, render.TextLoadError)
	case len(m.AllArticles) == 0:
		fmt.Fprintln(cli.out, render.TextNoArticles)
	default:
		for _, p := range m.AllArticles {
			cli.printArticle(m, p)
		}
	}
}

func (cli *commandLine) printArticle(m ui.ArticlesModel, p post.Post) {
	mark := " "
	switch {
	case p.VotableBy(m.Viewer):
		mark = "v" // may vote
	case p.UserHasVoted != nil && *p.UserHasVoted:
		mark = "*" // already voted
	}
	fmt.Fprintf(cli.out, "  [%d]%s %s (by %s, %d votes)\n", p.ID, mark, p.Title, p.AuthorName, p.VoteCount)
}

func (cli *commandLine) printPostList(title string, posts []post.Post, empty string) {
	fmt.Fprintf(cli.out, "== %s ==\n", title)
	if len(posts) == 0 {
		fmt.Fprintln(cli.out, empty)
		return
	}
	for _, p := range posts {
		fmt.Fprintf(cli.out, "  [%d] %s (by %s)\n      %s\n", p.ID, p.Title, p.AuthorName, p.Content)
	}
}

func (cli *commandLine) printAdmin(m ui.AdminModel) {
	fmt.Fprintln(cli.out, "== ADMIN ==")
	if m.Denied {
		fmt.Fprintln(cli.out, render.TextAccessDenied)
		return
	}
	if m.Stats != nil {
		fmt.Fprintf(cli.out, "users: %d  posts: %d  votes: %d  active: %d\n",
			m.Stats.TotalUsers, m.Stats.TotalPosts, m.Stats.TotalVotes, m.Stats.ActiveUsers)
	}
	fmt.Fprintln(cli.out, "-- Users --")
	for _, u := range m.Users {
		fmt.Fprintf(cli.out, "  [%d] %s %s (%s, %s, %s)\n", u.ID, u.FirstName, u.LastName, u.Username, u.Role, u.GradeLevel)
	}
	fmt.Fprintln(cli.out, "-- Recent Posts --")
	for _, p := range m.Posts {
		status := "draft"
		if p.IsPublished {
			status = "published"
		}
		fmt.Fprintf(cli.out, "  [%d] %s (%s, %s)\n", p.ID, p.Title, p.PostType, status)
	}
}

func (cli *commandLine) printAbout(m ui.AboutModel) {
	fmt.Fprintln(cli.out, "== ABOUT ==")
	if len(m.Sections) == 0 {
		fmt.Fprintln(cli.out, render.TextNoAbout)
		return
	}
	for _, s := range m.Sections {
		fmt.Fprintf(cli.out, "-- %s --\n%s\n", s.Title, s.Content)
	}
}

func (cli *commandLine) printAboutManage(m ui.AboutManageModel) {
	fmt.Fprintln(cli.out, "== ABOUT SECTIONS ==")
	if len(m.Sections) == 0 {
		fmt.Fprintln(cli.out, "No sections created yet")
		return
	}
	for _, s := range m.Sections {
		status := "inactive"
		if s.IsActive {
			status = "active"
		}
		fmt.Fprintf(cli.out, "  [%d] %s (%s, order %d, %s)\n", s.ID, s.Title, s.SectionName, s.DisplayOrder, status)
	}
}

func (cli *commandLine) printProfile(m ui.ProfileModel) {
	fmt.Fprintln(cli.out, "== PROFILE ==")
	fmt.Fprintf(cli.out, "Name: %s %s\n", m.Identity.FirstName, m.Identity.LastName)
	fmt.Fprintf(cli.out, "Username: %s\n", m.Identity.Username)
	fmt.Fprintf(cli.out, "Email: %s\n", m.Identity.Email)
	fmt.Fprintf(cli.out, "Role: %s\n", m.Identity.Role)
	fmt.Fprintf(cli.out, "Grade: %s\n", m.Identity.GradeLevel)
	fmt.Fprintln(cli.out, "Permissions:")
	for _, p := range m.Permissions {
		fmt.Fprintf(cli.out, "  - %s\n", p)
	}
	fmt.Fprintf(cli.out, "Grade access: %s\n", strings.Join(m.GradeAccess, ", "))
}
