package about

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drukschool/bulletin/core"
)

func Test_NewSection_Validate(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		ns := NewSection{
			SectionName: "  Mission  ",
			Title:       "Our Mission",
			Content:     "We teach.",
		}
		assert.NoError(t, ns.Validate())
		assert.Equal(t, "mission", ns.SectionName) // cleaned and lowered
	})

	t.Run("missing fields", func(t *testing.T) {
		ns := NewSection{}
		err := ns.Validate()
		vErr, ok := err.(*core.ValidationError)
		if !ok {
			t.Fatalf("expected *core.ValidationError, got %T: %v", err, err)
		}
		fields := vErr.FieldMap()
		assert.Contains(t, fields, "section_name")
		assert.Contains(t, fields, "title")
		assert.Contains(t, fields, "content")
	})

	t.Run("negative order", func(t *testing.T) {
		ns := NewSection{SectionName: "mission", Title: "Our Mission", Content: "We teach.", DisplayOrder: -1}
		err := ns.Validate()
		vErr, ok := err.(*core.ValidationError)
		if !ok {
			t.Fatalf("expected *core.ValidationError, got %T: %v", err, err)
		}
		assert.Contains(t, vErr.FieldMap(), "display_order")
	})
}

func Test_UpdateSection_Validate(t *testing.T) {
	us := UpdateSection{Title: "Our Mission", Content: "We teach, updated."}
	assert.NoError(t, us.Validate())

	us = UpdateSection{}
	err := us.Validate()
	vErr, ok := err.(*core.ValidationError)
	if !ok {
		t.Fatalf("expected *core.ValidationError, got %T: %v", err, err)
	}
	fields := vErr.FieldMap()
	assert.Contains(t, fields, "title")
	assert.Contains(t, fields, "content")
}
