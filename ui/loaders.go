package ui

import (
	"context"
	"sort"
	"sync"

	"github.com/pkg/errors"

	"github.com/drukschool/bulletin/core/post"
	"github.com/drukschool/bulletin/core/user"
)

// loadHome aggregates four independent fetches. They run concurrently and
// fail independently: each goroutine owns exactly one model field, and a
// failed fetch only leaves its field empty (logged, not fatal).
func (r *Router) loadHome(ctx context.Context, usr *user.Identity) (RenderModel, error) {
	m := HomeModel{Authenticated: usr.IsAuthenticated(), Viewer: usr}
	if !m.Authenticated {
		// public placeholder; members-only content needs a login
		return m, nil
	}

	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		notes, err := r.gw.Posts(ctx, post.TypePrincipalNote)
		if err != nil {
			r.log.Error("home: loading principal note failed", err)
			return
		}
		if len(notes) > 0 {
			m.PrincipalNote = &notes[0]
		}
	}()

	go func() {
		defer wg.Done()
		articles, err := r.gw.Posts(ctx, post.TypeArticle)
		if err != nil {
			r.log.Error("home: loading recent articles failed", err)
			return
		}
		if len(articles) > 3 {
			articles = articles[:3]
		}
		m.RecentArticles = articles
	}()

	go func() {
		defer wg.Done()
		reminders, err := r.gw.Posts(ctx, post.TypeReminder)
		if err != nil {
			r.log.Error("home: loading reminders failed", err)
			return
		}
		if len(reminders) > 5 {
			reminders = reminders[:5]
		}
		m.Reminders = reminders
	}()

	go func() {
		defer wg.Done()
		winners, month, err := r.gw.Winners(ctx)
		if err != nil {
			r.log.Error("home: loading monthly winners failed", err)
			return
		}
		if month == "" {
			month = post.CurrentMonth()
		}
		m.Winners = winners
		m.WinnersMonth = month
	}()

	wg.Wait()
	return m, nil
}

// loadArticles runs the two article fetches independently; each list keeps
// its own error so the other still renders.
func (r *Router) loadArticles(ctx context.Context, usr *user.Identity) (RenderModel, error) {
	m := ArticlesModel{Viewer: usr}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		m.TopArticles, m.TopErr = r.gw.TopArticles(ctx)
		if m.TopErr != nil {
			r.log.Error("articles: loading top articles failed", m.TopErr)
		}
	}()

	go func() {
		defer wg.Done()
		m.AllArticles, m.AllErr = r.gw.Posts(ctx, post.TypeArticle)
		if m.AllErr != nil {
			r.log.Error("articles: loading all articles failed", m.AllErr)
		}
	}()

	wg.Wait()
	return m, nil
}

func (r *Router) loadAnnouncements(ctx context.Context, _ *user.Identity) (RenderModel, error) {
	posts, err := r.gw.Posts(ctx, post.TypeAnnouncement)
	if err != nil {
		return nil, errors.Wrap(err, "loading announcements")
	}
	return AnnouncementsModel{Posts: posts}, nil
}

func (r *Router) loadReminders(ctx context.Context, _ *user.Identity) (RenderModel, error) {
	posts, err := r.gw.Posts(ctx, post.TypeReminder)
	if err != nil {
		return nil, errors.Wrap(err, "loading reminders")
	}
	return RemindersModel{Posts: posts}, nil
}

// loadAdmin gates on the admin permission before any fetch; denial renders
// a fixed message and touches the network not at all.
func (r *Router) loadAdmin(ctx context.Context, usr *user.Identity) (RenderModel, error) {
	if !usr.CanSeeAdmin() {
		return AdminModel{Denied: true, Viewer: usr}, nil
	}
	m := AdminModel{Viewer: usr}

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		stats, err := r.gw.AdminStats(ctx)
		if err != nil {
			r.log.Error("admin: loading stats failed", err)
			return
		}
		m.Stats = &stats
	}()

	go func() {
		defer wg.Done()
		users, err := r.gw.AdminUsers(ctx)
		if err != nil {
			r.log.Error("admin: loading users failed", err)
			return
		}
		m.Users = users
	}()

	go func() {
		defer wg.Done()
		posts, err := r.gw.AdminPosts(ctx)
		if err != nil {
			r.log.Error("admin: loading posts failed", err)
			return
		}
		if len(posts) > 10 {
			posts = posts[:10]
		}
		m.Posts = posts
	}()

	wg.Wait()
	return m, nil
}

func (r *Router) loadAbout(ctx context.Context, _ *user.Identity) (RenderModel, error) {
	sections, err := r.gw.AboutSections(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "loading about sections")
	}
	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].DisplayOrder < sections[j].DisplayOrder
	})
	return AboutModel{Sections: sections}, nil
}

// loadProfile projects the session identity; the data is already in the
// Store so no network call happens.
func (r *Router) loadProfile(_ context.Context, usr *user.Identity) (RenderModel, error) {
	return ProfileModel{
		Identity:    *usr,
		Permissions: permissionSummary(usr),
		GradeAccess: usr.AccessibleGrades(),
	}, nil
}

func permissionSummary(usr *user.Identity) []string {
	switch usr.Role {
	case user.RoleAdmin:
		return []string{"Full administrative access"}
	case user.RoleLanguageTeacher:
		return []string{"Can create and manage posts"}
	default:
		return []string{"Can view content and vote"}
	}
}
