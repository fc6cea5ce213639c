package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/drukschool/bulletin/core/about"
	"github.com/drukschool/bulletin/core/post"
	"github.com/drukschool/bulletin/core/user"
)

// Auth

// CheckAuth probes the current session. A nil identity with a nil error
// means no one is logged in.
func (c *Client) CheckAuth(ctx context.Context) (*user.Identity, error) {
	var env struct {
		Authenticated bool           `json:"authenticated"`
		User          *user.Identity `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/check-auth", nil, nil, &env); err != nil {
		return nil, err
	}
	if !env.Authenticated {
		return nil, nil
	}
	return env.User, nil
}

func (c *Client) Login(ctx context.Context, creds user.Credentials) (*user.Identity, error) {
	var env struct {
		User *user.Identity `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, creds, &env); err != nil {
		return nil, err
	}
	return env.User, nil
}

func (c *Client) Register(ctx context.Context, reg user.Registration) error {
	return c.do(ctx, http.MethodPost, "/auth/register", nil, reg, nil)
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}

// Posts

// Posts fetches published posts, optionally filtered by type.
func (c *Client) Posts(ctx context.Context, postType string) ([]post.Post, error) {
	var query url.Values
	if postType != "" {
		query = url.Values{"type": {postType}}
	}
	var env struct {
		Posts []post.Post `json:"posts"`
	}
	if err := c.do(ctx, http.MethodGet, "/posts", query, nil, &env); err != nil {
		return nil, err
	}
	return env.Posts, nil
}

// Winners fetches this month's winning articles per grade level, along with
// the voting period the server computed them for (YYYY-MM).
func (c *Client) Winners(ctx context.Context) ([]post.WinnerEntry, string, error) {
	var env struct {
		Winners []post.WinnerEntry `json:"winners"`
		Month   string             `json:"month"`
	}
	if err := c.do(ctx, http.MethodGet, "/posts/winners", nil, nil, &env); err != nil {
		return nil, "", err
	}
	return env.Winners, env.Month, nil
}

// TopArticles fetches the most voted articles of the current month.
func (c *Client) TopArticles(ctx context.Context) ([]post.Post, error) {
	var env struct {
		TopArticles []post.Post `json:"top_articles"`
	}
	if err := c.do(ctx, http.MethodGet, "/posts/top-articles", nil, nil, &env); err != nil {
		return nil, err
	}
	return env.TopArticles, nil
}

func (c *Client) CreatePost(ctx context.Context, np post.NewPost) error {
	return c.do(ctx, http.MethodPost, "/posts", nil, np, nil)
}

func (c *Client) Vote(ctx context.Context, postID int) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/posts/%d/vote", postID), nil, nil, nil)
}

// Admin

type Stats struct {
	TotalUsers  int `json:"total_users"`
	TotalPosts  int `json:"total_posts"`
	TotalVotes  int `json:"total_votes"`
	ActiveUsers int `json:"active_users"`
}

func (c *Client) AdminStats(ctx context.Context) (Stats, error) {
	var env struct {
		Stats Stats `json:"stats"`
	}
	if err := c.do(ctx, http.MethodGet, "/admin/stats", nil, nil, &env); err != nil {
		return Stats{}, err
	}
	return env.Stats, nil
}

func (c *Client) AdminUsers(ctx context.Context) ([]user.Identity, error) {
	var env struct {
		Users []user.Identity `json:"users"`
	}
	if err := c.do(ctx, http.MethodGet, "/admin/users", nil, nil, &env); err != nil {
		return nil, err
	}
	return env.Users, nil
}

func (c *Client) DeleteUser(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/users/%d", id), nil, nil, nil)
}

// AdminPosts fetches all posts, drafts included.
func (c *Client) AdminPosts(ctx context.Context) ([]post.Post, error) {
	var env struct {
		Posts []post.Post `json:"posts"`
	}
	if err := c.do(ctx, http.MethodGet, "/admin/posts/all", nil, nil, &env); err != nil {
		return nil, err
	}
	return env.Posts, nil
}

func (c *Client) DeletePost(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/posts/%d", id), nil, nil, nil)
}

// About

// AboutSections fetches the active sections for public display.
func (c *Client) AboutSections(ctx context.Context) ([]about.Section, error) {
	return c.aboutSections(ctx, "/about")
}

// AdminAboutSections fetches all sections, inactive included.
func (c *Client) AdminAboutSections(ctx context.Context) ([]about.Section, error) {
	return c.aboutSections(ctx, "/admin/about")
}

func (c *Client) aboutSections(ctx context.Context, path string) ([]about.Section, error) {
	var env struct {
		Sections []about.Section `json:"sections"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &env); err != nil {
		return nil, err
	}
	return env.Sections, nil
}

func (c *Client) CreateAboutSection(ctx context.Context, ns about.NewSection) error {
	return c.do(ctx, http.MethodPost, "/admin/about", nil, ns, nil)
}

func (c *Client) UpdateAboutSection(ctx context.Context, id int, us about.UpdateSection) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/about/%d", id), nil, us, nil)
}

func (c *Client) DeleteAboutSection(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/about/%d", id), nil, nil, nil)
}
