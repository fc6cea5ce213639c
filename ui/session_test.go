package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drukschool/bulletin/core/user"
)

func Test_Store(t *testing.T) {
	store := NewStore()
	assert.Nil(t, store.Current())
	assert.Equal(t, SectionHome, store.ActiveSection())

	usr := &user.Identity{ID: 1, Username: "tashi", Role: user.RoleStudent}
	store.SetAuthenticated(usr)
	assert.Same(t, usr, store.Current())

	store.setActiveSection(SectionArticles)
	assert.Equal(t, SectionArticles, store.ActiveSection())

	store.Clear()
	assert.Nil(t, store.Current())
	assert.Equal(t, SectionHome, store.ActiveSection())
}
