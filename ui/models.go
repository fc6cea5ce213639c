package ui

import (
	"github.com/drukschool/bulletin/core/about"
	"github.com/drukschool/bulletin/core/post"
	"github.com/drukschool/bulletin/core/user"
	"github.com/drukschool/bulletin/services/gateway"
)

// Section is a named top-level content panel.
type Section string

const (
	SectionHome          Section = "home"
	SectionArticles      Section = "articles"
	SectionAnnouncements Section = "announcements"
	SectionReminders     Section = "reminders"
	SectionAbout         Section = "about"
	SectionAdmin         Section = "admin"
	SectionProfile       Section = "profile"
)

var AllSections = []Section{
	SectionHome, SectionArticles, SectionAnnouncements, SectionReminders,
	SectionAbout, SectionAdmin, SectionProfile,
}

func (s Section) Valid() bool {
	for _, sec := range AllSections {
		if s == sec {
			return true
		}
	}
	return false
}

// Public reports whether the section is reachable without authentication.
func (s Section) Public() bool {
	return s == SectionHome || s == SectionAbout
}

// RenderModel is the data a loader hands to the render layer. It carries no
// markup; turning it into output is the render layer's concern.
type RenderModel interface {
	Section() Section
}

// HomeModel aggregates the home digest: latest principal note, the 3 most
// recent articles, the 5 most recent reminders, and this month's winners
// (members only). Fields left empty when the matching fetch failed.
// WinnersMonth is the voting period the winners belong to.
type HomeModel struct {
	Authenticated  bool
	Viewer         *user.Identity
	PrincipalNote  *post.Post
	RecentArticles []post.Post
	Reminders      []post.Post
	Winners        []post.WinnerEntry
	WinnersMonth   string
}

func (HomeModel) Section() Section { return SectionHome }

// ArticlesModel carries the two independent article lists; each side keeps
// its own error so one failure never hides the other list.
type ArticlesModel struct {
	Viewer      *user.Identity
	TopArticles []post.Post
	AllArticles []post.Post
	TopErr      error
	AllErr      error
}

func (ArticlesModel) Section() Section { return SectionArticles }

type AnnouncementsModel struct {
	Posts []post.Post
}

func (AnnouncementsModel) Section() Section { return SectionAnnouncements }

type RemindersModel struct {
	Posts []post.Post
}

func (RemindersModel) Section() Section { return SectionReminders }

// AdminModel is the dashboard data. Denied means the viewer lacks admin
// rights: render the fixed denial message, nothing was fetched.
type AdminModel struct {
	Denied bool
	Stats  *gateway.Stats
	Users  []user.Identity
	Posts  []post.Post // first 10 only
	Viewer *user.Identity
}

func (AdminModel) Section() Section { return SectionAdmin }

type AboutModel struct {
	Sections []about.Section // active only, in display order
}

func (AboutModel) Section() Section { return SectionAbout }

// AboutManageModel is the admin-only management view over all sections,
// inactive ones included.
type AboutManageModel struct {
	Sections []about.Section
}

func (AboutManageModel) Section() Section { return SectionAbout }

// ProfileModel is a pure projection of the session identity; no network
// call is involved.
type ProfileModel struct {
	Identity    user.Identity
	Permissions []string
	GradeAccess []string
}

func (ProfileModel) Section() Section { return SectionProfile }
