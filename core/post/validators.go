package post

import (
	"errors"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/drukschool/bulletin/core"
	"github.com/drukschool/bulletin/core/user"
)

var (
	postTypeTag  = "posttype"
	postTypeText = "invalid post type"

	postGradeTag  = "postgrade"
	postGradeText = "invalid grade level"
)

func init() {
	_ = core.Validate.RegisterValidation(postTypeTag, postTypeValidation)
	core.RegisterCustomTranslation(postTypeTag, postTypeText)

	_ = core.Validate.RegisterValidation(postGradeTag, postGradeValidation)
	core.RegisterCustomTranslation(postGradeTag, postGradeText)
}

func postTypeValidation(fl validator.FieldLevel) bool {
	return contains(AllTypes, fl.Field().String())
}

func postGradeValidation(fl validator.FieldLevel) bool {
	return contains(user.AllGrades, fl.Field().String())
}

func contains(vals []string, v string) bool {
	sorted := append([]string(nil), vals...)
	sort.Strings(sorted)
	idx := sort.SearchStrings(sorted, v)
	return idx < len(sorted) && sorted[idx] == v
}

// NewPost contains information needed to create a new Post.
type NewPost struct {
	Title      string     `json:"title" validate:"required"`
	Content    string     `json:"content" validate:"required"`
	PostType   string     `json:"post_type" validate:"required,posttype"`
	GradeLevel string     `json:"grade_level" validate:"required,postgrade"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
}

// Validate runs client-side checks before any network call. The server
// remains the source of authorization truth; this mirrors its required set
// so obviously bad input never leaves the client.
func (np *NewPost) Validate(author *user.Identity) error {
	np.Title = core.CleanString(np.Title)
	if err := core.Validate.Struct(np); err != nil {
		return core.TranslateValidationErrors(err)
	}
	if np.PostType == TypePrincipalNote && !author.CanCreateContent() {
		return core.NewValidationError(
			errInvalidType, core.FieldError{Field: "post_type", Error: postTypeText})
	}
	// expiration only applies to announcements
	if np.PostType != TypeAnnouncement {
		np.ExpiresAt = nil
	}
	return nil
}

var errInvalidType = errors.New("invalid post type")
