package about

import (
	"time"

	"github.com/drukschool/bulletin/core"
)

// Section is one block of the "about" page. SectionName is the immutable
// identity key; everything else may change on edit.
type Section struct {
	ID           int       `json:"id"`
	SectionName  string    `json:"section_name"`
	Title        string    `json:"title"`
	Content      string    `json:"content"` // markdown
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	CreatorName  string    `json:"creator_name,omitempty"`
	UpdaterName  string    `json:"updater_name,omitempty"`
}

// NewSection contains information needed to create a Section.
type NewSection struct {
	SectionName  string `json:"section_name" validate:"required,min=2,max=100"`
	Title        string `json:"title" validate:"required,max=200"`
	Content      string `json:"content" validate:"required"`
	DisplayOrder int    `json:"display_order" validate:"gte=0"`
	IsActive     bool   `json:"is_active"`
}

func (ns *NewSection) Validate() error {
	ns.SectionName = core.CleanString(ns.SectionName, true /* lower */)
	ns.Title = core.CleanString(ns.Title)
	if err := core.Validate.Struct(ns); err != nil {
		return core.TranslateValidationErrors(err)
	}
	return nil
}

// UpdateSection defines what may be modified on an existing Section.
// SectionName is deliberately absent: the edit path cannot change it.
type UpdateSection struct {
	Title        string `json:"title" validate:"required,max=200"`
	Content      string `json:"content" validate:"required"`
	DisplayOrder int    `json:"display_order" validate:"gte=0"`
	IsActive     bool   `json:"is_active"`
}

func (us *UpdateSection) Validate() error {
	us.Title = core.CleanString(us.Title)
	if err := core.Validate.Struct(us); err != nil {
		return core.TranslateValidationErrors(err)
	}
	return nil
}
