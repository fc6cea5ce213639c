package ui

import (
	"context"

	"github.com/drukschool/bulletin/core/about"
	"github.com/drukschool/bulletin/core/post"
	"github.com/drukschool/bulletin/core/user"
)

// Mutation commands. Each one validates input locally, calls the gateway,
// and on success re-runs exactly the loaders whose data changed, returning
// the refreshed models. On failure nothing local changes and the error
// carries the server's message.

// Login authenticates and lands on a fresh home digest.
func (c *Controller) Login(ctx context.Context, creds user.Credentials) ([]RenderModel, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	usr, err := c.gw.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	c.store.SetAuthenticated(usr)
	return c.goHome(ctx)
}

func (c *Controller) Register(ctx context.Context, reg user.Registration) error {
	if err := reg.Validate(); err != nil {
		return err
	}
	return c.gw.Register(ctx, reg)
}

// Logout ends the session server-side, clears the identity and resets to home.
func (c *Controller) Logout(ctx context.Context) ([]RenderModel, error) {
	if err := c.gw.Logout(ctx); err != nil {
		return nil, err
	}
	c.store.Clear()
	return c.goHome(ctx)
}

// CreatePost publishes a new post and refreshes the section it appears in,
// if that section is currently active.
func (c *Controller) CreatePost(ctx context.Context, np post.NewPost) ([]RenderModel, error) {
	usr := c.store.Current()
	if !usr.CanCreateContent() {
		return nil, ErrPermissionDenied
	}
	if err := np.Validate(usr); err != nil {
		return nil, err
	}
	if err := c.gw.CreatePost(ctx, np); err != nil {
		return nil, err
	}
	return c.refreshIfActive(ctx, sectionForPostType(np.PostType))
}

// VoteOnPost records a vote. No optimistic local mutation: the refreshed
// articles list is the only way vote counts and the has-voted flag change,
// so the client can never drift from the server's one-vote-per-month truth.
func (c *Controller) VoteOnPost(ctx context.Context, postID int) ([]RenderModel, error) {
	if !c.store.Current().IsAuthenticated() {
		return nil, ErrAuthRequired
	}
	if err := c.gw.Vote(ctx, postID); err != nil {
		return nil, err
	}
	return c.refreshIfActive(ctx, SectionArticles)
}

func (c *Controller) DeleteUser(ctx context.Context, id int) ([]RenderModel, error) {
	if !c.store.Current().CanSeeAdmin() {
		return nil, ErrPermissionDenied
	}
	if !c.confirm.Confirm("Are you sure you want to delete this user?") {
		return nil, nil
	}
	if err := c.gw.DeleteUser(ctx, id); err != nil {
		return nil, err
	}
	return c.refreshIfActive(ctx, SectionAdmin)
}

func (c *Controller) DeletePost(ctx context.Context, id int) ([]RenderModel, error) {
	if !c.store.Current().CanSeeAdmin() {
		return nil, ErrPermissionDenied
	}
	if !c.confirm.Confirm("Are you sure you want to delete this post?") {
		return nil, nil
	}
	if err := c.gw.DeletePost(ctx, id); err != nil {
		return nil, err
	}
	return c.refreshIfActive(ctx, SectionAdmin)
}

// AboutManagement loads the admin-only management view over all sections.
func (c *Controller) AboutManagement(ctx context.Context) (*AboutManageModel, error) {
	if !c.store.Current().CanManageAbout() {
		return nil, ErrPermissionDenied
	}
	sections, err := c.gw.AdminAboutSections(ctx)
	if err != nil {
		return nil, err
	}
	return &AboutManageModel{Sections: sections}, nil
}

func (c *Controller) CreateAboutSection(ctx context.Context, ns about.NewSection) ([]RenderModel, error) {
	if !c.store.Current().CanManageAbout() {
		return nil, ErrPermissionDenied
	}
	if err := ns.Validate(); err != nil {
		return nil, err
	}
	if err := c.gw.CreateAboutSection(ctx, ns); err != nil {
		return nil, err
	}
	return c.aboutChanged(ctx)
}

// UpdateAboutSection edits an existing section. The section name is not part
// of UpdateSection: it is the immutable identity key and cannot change here.
func (c *Controller) UpdateAboutSection(ctx context.Context, id int, us about.UpdateSection) ([]RenderModel, error) {
	if !c.store.Current().CanManageAbout() {
		return nil, ErrPermissionDenied
	}
	if err := us.Validate(); err != nil {
		return nil, err
	}
	if err := c.gw.UpdateAboutSection(ctx, id, us); err != nil {
		return nil, err
	}
	return c.aboutChanged(ctx)
}

func (c *Controller) DeleteAboutSection(ctx context.Context, id int) ([]RenderModel, error) {
	if !c.store.Current().CanManageAbout() {
		return nil, ErrPermissionDenied
	}
	if !c.confirm.Confirm("Are you sure you want to delete this section?") {
		return nil, nil
	}
	if err := c.gw.DeleteAboutSection(ctx, id); err != nil {
		return nil, err
	}
	return c.aboutChanged(ctx)
}

func (c *Controller) goHome(ctx context.Context) ([]RenderModel, error) {
	model, err := c.router.GoTo(ctx, SectionHome)
	if err != nil {
		return nil, err
	}
	return []RenderModel{model}, nil
}

// refreshIfActive re-runs the loader for sec when it is the active section.
func (c *Controller) refreshIfActive(ctx context.Context, sec Section) ([]RenderModel, error) {
	if c.store.ActiveSection() != sec {
		return nil, nil
	}
	model, err := c.router.Refresh(ctx)
	if err != nil {
		return nil, err
	}
	return []RenderModel{model}, nil
}

// aboutChanged refreshes the management view and, when the public about
// section is active, the public view as well.
func (c *Controller) aboutChanged(ctx context.Context) ([]RenderModel, error) {
	manage, err := c.AboutManagement(ctx)
	if err != nil {
		return nil, err
	}
	models := []RenderModel{*manage}
	if c.store.ActiveSection() == SectionAbout {
		pub, err := c.router.Refresh(ctx)
		if err != nil {
			return models, err
		}
		models = append(models, pub)
	}
	return models, nil
}

func sectionForPostType(postType string) Section {
	switch postType {
	case post.TypeArticle:
		return SectionArticles
	case post.TypeAnnouncement:
		return SectionAnnouncements
	case post.TypeReminder:
		return SectionReminders
	default: // principal notes surface on the home digest
		return SectionHome
	}
}
