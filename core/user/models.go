package user

import (
	"time"
)

// Roles
const (
	RoleAdmin           = "admin"
	RoleLanguageTeacher = "language_teacher"
	RoleTeacher         = "teacher"
	RoleStudent         = "student"
	RoleParent          = "parent"
)

// Grade levels
const (
	GradeJunior = "junior"
	GradeMiddle = "middle"
	GradeSenior = "senior"
	GradeAll    = "all"
)

var (
	AllRoles = []string{RoleAdmin, RoleLanguageTeacher, RoleTeacher, RoleStudent, RoleParent}

	// UserGrades are the levels a user account may belong to; GradeAll only
	// ever appears on posts.
	UserGrades = []string{GradeJunior, GradeMiddle, GradeSenior}
	AllGrades  = []string{GradeJunior, GradeMiddle, GradeSenior, GradeAll}

	Roles = []Role{
		{Name: "Student", Value: RoleStudent},
		{Name: "Parent", Value: RoleParent},
		{Name: "Teacher", Value: RoleTeacher},
		{Name: "Language Teacher", Value: RoleLanguageTeacher},
		{Name: "Admin", Value: RoleAdmin},
	}
)

type Role struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Identity is the authenticated user's profile as reported by the server.
// A nil *Identity means no one is logged in. It is replaced wholesale on
// login/logout and never partially mutated.
type Identity struct {
	ID         int       `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	GradeLevel string    `json:"grade_level"`
	IsActive   bool      `json:"is_active"`
	CanVote    *bool     `json:"can_vote,omitempty"` // absent means allowed
	CreatedAt  time.Time `json:"created_at"`
}

func (u *Identity) FullName() string {
	if u == nil {
		return ""
	}
	return u.FirstName + " " + u.LastName
}

// Permission predicates. All are nil-safe and derive purely from the
// identity; they must be consulted on every use, never cached.

func (u *Identity) IsAuthenticated() bool {
	return u != nil
}

// CanSeeMemberSections reports whether the member-only sections
// (articles, announcements, reminders, profile) are reachable.
func (u *Identity) CanSeeMemberSections() bool {
	return u.IsAuthenticated()
}

func (u *Identity) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

func (u *Identity) CanSeeAdmin() bool {
	return u.IsAdmin()
}

func (u *Identity) CanManageAbout() bool {
	return u.IsAdmin()
}

func (u *Identity) CanCreateContent() bool {
	return u != nil && (u.Role == RoleAdmin || u.Role == RoleLanguageTeacher)
}

// VotingAllowed reports whether voting is enabled for this account at all;
// per-post eligibility additionally depends on the post (see post.Post.VotableBy).
func (u *Identity) VotingAllowed() bool {
	if u == nil {
		return false
	}
	return u.CanVote == nil || *u.CanVote
}

// AccessibleGrades returns the grade levels this user may read content for.
func (u *Identity) AccessibleGrades() []string {
	if u.IsAdmin() {
		return []string{GradeJunior, GradeMiddle, GradeSenior}
	}
	if u == nil {
		return nil
	}
	return []string{u.GradeLevel}
}
