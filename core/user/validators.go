package user

import (
	"sort"

	"github.com/go-playground/validator/v10"

	"github.com/drukschool/bulletin/core"
)

var (
	roleTag  = "role"
	roleText = "invalid role"

	gradeTag  = "grade"
	gradeText = "invalid grade level"
)

func init() {
	_ = core.Validate.RegisterValidation(roleTag, roleValidation)
	core.RegisterCustomTranslation(roleTag, roleText)

	_ = core.Validate.RegisterValidation(gradeTag, gradeValidation)
	core.RegisterCustomTranslation(gradeTag, gradeText)
}

// roleValidation checks that the provided role is in AllRoles.
func roleValidation(fl validator.FieldLevel) bool {
	return contains(AllRoles, fl.Field().String())
}

// gradeValidation checks that the provided grade level is in UserGrades.
func gradeValidation(fl validator.FieldLevel) bool {
	return contains(UserGrades, fl.Field().String())
}

func contains(vals []string, v string) bool {
	sorted := append([]string(nil), vals...)
	sort.Strings(sorted)
	idx := sort.SearchStrings(sorted, v)
	return idx < len(sorted) && sorted[idx] == v
}

// Credentials is the login form input.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Remember bool   `json:"remember"`
}

func (c *Credentials) Validate() error {
	c.Username = core.CleanString(c.Username)
	if err := core.Validate.Struct(c); err != nil {
		return core.TranslateValidationErrors(err)
	}
	return nil
}

// Registration is the sign-up form input.
type Registration struct {
	FirstName  string `json:"first_name" validate:"required"`
	LastName   string `json:"last_name" validate:"required"`
	Username   string `json:"username" validate:"required,min=3,alphanum"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	Role       string `json:"role" validate:"required,role"`
	GradeLevel string `json:"grade_level" validate:"required,grade"`
}

func (r *Registration) Validate() error {
	r.FirstName = core.CleanString(r.FirstName)
	r.LastName = core.CleanString(r.LastName)
	r.Username = core.CleanString(r.Username, true /* lower */)
	r.Email = core.CleanString(r.Email, true /* lower */)
	if err := core.Validate.Struct(r); err != nil {
		return core.TranslateValidationErrors(err)
	}
	return nil
}
