package post

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/drukschool/bulletin/core"
	"github.com/drukschool/bulletin/core/user"
)

func validNewPost() NewPost {
	return NewPost{
		Title:      "Sports Day",
		Content:    "The annual sports day is coming up.",
		PostType:   TypeArticle,
		GradeLevel: user.GradeAll,
	}
}

func Test_NewPost_Validate(t *testing.T) {
	student := &user.Identity{Role: user.RoleStudent}
	langTeacher := &user.Identity{Role: user.RoleLanguageTeacher}

	t.Run("ok", func(t *testing.T) {
		np := validNewPost()
		assert.NoError(t, np.Validate(student))
	})

	tests := []struct {
		name      string
		mod       func(*NewPost)
		author    *user.Identity
		wantField string
	}{
		{name: "missing title", mod: func(np *NewPost) { np.Title = "  " }, author: student, wantField: "title"},
		{name: "missing content", mod: func(np *NewPost) { np.Content = "" }, author: student, wantField: "content"},
		{name: "unknown type", mod: func(np *NewPost) { np.PostType = "memo" }, author: student, wantField: "post_type"},
		{name: "unknown grade", mod: func(np *NewPost) { np.GradeLevel = "adult" }, author: student, wantField: "grade_level"},
		{name: "principal note needs content role", mod: func(np *NewPost) { np.PostType = TypePrincipalNote }, author: student, wantField: "post_type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			np := validNewPost()
			tt.mod(&np)
			err := np.Validate(tt.author)
			vErr, ok := err.(*core.ValidationError)
			if !ok {
				t.Fatalf("expected *core.ValidationError, got %T: %v", err, err)
			}
			assert.Contains(t, vErr.FieldMap(), tt.wantField)
		})
	}

	t.Run("principal note allowed for language teacher", func(t *testing.T) {
		np := validNewPost()
		np.PostType = TypePrincipalNote
		assert.NoError(t, np.Validate(langTeacher))
	})
}

func Test_NewPost_Validate_expiration(t *testing.T) {
	student := &user.Identity{Role: user.RoleStudent}
	exp := time.Now().Add(48 * time.Hour)

	// kept on announcements
	np := validNewPost()
	np.PostType = TypeAnnouncement
	np.ExpiresAt = &exp
	assert.NoError(t, np.Validate(student))
	assert.NotNil(t, np.ExpiresAt)

	// dropped on everything else
	np = validNewPost()
	np.ExpiresAt = &exp
	assert.NoError(t, np.Validate(student))
	assert.Nil(t, np.ExpiresAt)
}
