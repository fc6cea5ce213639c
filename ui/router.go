package ui

import (
	"context"
	"errors"
	"sync"

	"github.com/drukschool/bulletin/core"
	"github.com/drukschool/bulletin/core/user"
	"github.com/drukschool/bulletin/services/gateway"
)

var (
	ErrAuthRequired     = errors.New("please login to access this section")
	ErrUnknownSection   = errors.New("unknown section")
	ErrPermissionDenied = errors.New("permission denied")

	// ErrSuperseded marks a load whose result arrived after a newer
	// navigation to the same section started; the stale model is discarded.
	ErrSuperseded = errors.New("load superseded")
)

type loaderFunc func(ctx context.Context, usr *user.Identity) (RenderModel, error)

// Router switches the active section. Transitions happen only through GoTo;
// on entry it records the section in the Store and runs exactly the matching
// loader. Re-entering the active section re-fetches on purpose: content may
// have changed between visits.
type Router struct {
	store   *Store
	gw      *gateway.Client
	log     core.Logger
	loaders map[Section]loaderFunc

	mu  sync.Mutex
	gen map[Section]uint64
}

func newRouter(store *Store, gw *gateway.Client, log core.Logger) *Router {
	r := &Router{
		store: store,
		gw:    gw,
		log:   log,
		gen:   make(map[Section]uint64, len(AllSections)),
	}
	r.loaders = map[Section]loaderFunc{
		SectionHome:          r.loadHome,
		SectionArticles:      r.loadArticles,
		SectionAnnouncements: r.loadAnnouncements,
		SectionReminders:     r.loadReminders,
		SectionAbout:         r.loadAbout,
		SectionAdmin:         r.loadAdmin,
		SectionProfile:       r.loadProfile,
	}
	return r
}

// GoTo navigates to the named section and returns its fresh render model.
// Protected sections require an identity; a rejected transition leaves the
// router where it was and performs no fetch.
func (r *Router) GoTo(ctx context.Context, sec Section) (RenderModel, error) {
	if !sec.Valid() {
		return nil, ErrUnknownSection
	}
	usr := r.store.Current()
	if !sec.Public() && !usr.IsAuthenticated() {
		return nil, ErrAuthRequired
	}

	gen := r.bump(sec)
	r.store.setActiveSection(sec)

	model, err := r.loaders[sec](ctx, usr)
	if !r.isCurrent(sec, gen) {
		return nil, ErrSuperseded
	}
	if err != nil {
		return nil, err
	}
	return model, nil
}

// Refresh re-runs the loader for the active section.
func (r *Router) Refresh(ctx context.Context) (RenderModel, error) {
	return r.GoTo(ctx, r.store.ActiveSection())
}

func (r *Router) bump(sec Section) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gen[sec]++
	return r.gen[sec]
}

func (r *Router) isCurrent(sec Section, gen uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.gen[sec] == gen
}
