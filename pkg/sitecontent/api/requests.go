package api

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Validation rule structs, one per create request. Full entity payloads are
// decoded directly into the domain types; these only carry the fields the
// admin API rejects when missing or malformed.

type blogPostRules struct {
	Title string `validate:"required"`
	Slug  string `validate:"required,slug"`
	Body  string `validate:"required"`
}

type caseStudyRules struct {
	Title  string `validate:"required"`
	Slug   string `validate:"required,slug"`
	Client string `validate:"required"`
	Body   string `validate:"required"`
}

type productRules struct {
	Title       string `validate:"required"`
	Slug        string `validate:"required,slug"`
	Description string `validate:"required"`
}

type testimonialRules struct {
	Name    string `validate:"required"`
	Content string `validate:"required"`
	Rating  int    `validate:"gte=1,lte=5"`
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// newValidator creates the request validator with the custom slug rule.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	return v
}
