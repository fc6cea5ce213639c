package ui

import (
	"context"

	"github.com/drukschool/bulletin/core"
	"github.com/drukschool/bulletin/services/gateway"
)

// Controller is the application root: it owns the Store and Router and
// exposes the mutation commands. Front ends (web, cli) drive it and render
// whatever models it returns.
type Controller struct {
	store   *Store
	gw      *gateway.Client
	router  *Router
	log     core.Logger
	confirm Confirmer
}

func NewController(gw *gateway.Client, log core.Logger, confirm Confirmer) *Controller {
	store := NewStore()
	return &Controller{
		store:   store,
		gw:      gw,
		router:  newRouter(store, gw, log),
		log:     log,
		confirm: confirm,
	}
}

func (c *Controller) Store() *Store   { return c.store }
func (c *Controller) Router() *Router { return c.router }

// Start probes the session cookie and enters home. A failed probe is
// treated as logged out, never as a fatal error.
func (c *Controller) Start(ctx context.Context) (RenderModel, error) {
	usr, err := c.gw.CheckAuth(ctx)
	if err != nil {
		c.log.Error("auth check failed", err)
	}
	if usr != nil {
		c.store.SetAuthenticated(usr)
	}
	return c.router.GoTo(ctx, SectionHome)
}
