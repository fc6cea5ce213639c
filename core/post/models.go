package post

import (
	"time"

	"github.com/drukschool/bulletin/core/user"
)

// Post types
const (
	TypePrincipalNote = "principal_note"
	TypeArticle       = "article"
	TypeAnnouncement  = "announcement"
	TypeReminder      = "reminder"
)

var AllTypes = []string{TypePrincipalNote, TypeArticle, TypeAnnouncement, TypeReminder}

// Post is a server-owned content snapshot. The client never mutates it;
// fresh copies are fetched on every section load.
type Post struct {
	ID           int        `json:"id"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	PostType     string     `json:"post_type"`
	GradeLevel   string     `json:"grade_level"`
	AuthorName   string     `json:"author_name"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	VoteCount    int        `json:"vote_count"`
	UserHasVoted *bool      `json:"user_has_voted,omitempty"`
	IsPublished  bool       `json:"is_published"`
}

// CanBeVotedOn reports whether this post participates in monthly voting at all.
func (p Post) CanBeVotedOn() bool {
	return p.PostType == TypeArticle && p.IsPublished
}

// VotableBy reports whether usr may cast a vote on this post right now:
// the post must participate in voting, the user must be present and allowed
// to vote, and the server must have included voting info showing no vote
// this month. A true UserHasVoted always wins, regardless of role.
func (p Post) VotableBy(usr *user.Identity) bool {
	if !p.CanBeVotedOn() {
		return false
	}
	if !usr.IsAuthenticated() || !usr.VotingAllowed() {
		return false
	}
	return p.UserHasVoted != nil && !*p.UserHasVoted
}

// WinnerEntry is one monthly winner as reported by the server.
type WinnerEntry struct {
	PostTitle  string `json:"post_title"`
	PostAuthor string `json:"post_author"`
	VoteCount  int    `json:"vote_count"`
	GradeLevel string `json:"grade_level"`
}

// CurrentMonth returns the voting period key in YYYY-MM form (UTC).
func CurrentMonth() string {
	return time.Now().UTC().Format("2006-01")
}
