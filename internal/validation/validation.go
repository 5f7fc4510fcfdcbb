// Package validation configures the request validator shared by the HTTP API
// and the CLI.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"designarena/internal/domain"
)

var hexLike = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// New returns a validator reporting fields by their JSON names and
// knowing the "hexlike" color rule.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("hexlike", func(fl validator.FieldLevel) bool {
		return hexLike.MatchString(fl.Field().String())
	})
	return v
}

// Ideas validates each idea of a plan and reports issues under
// daily_ideas[i].
func Ideas(v *validator.Validate, ideas []domain.Idea) []Issue {
	var out []Issue
	for i := range ideas {
		if err := v.Struct(ideas[i]); err != nil {
			for _, is := range Issues(err) {
				is.Path = fmt.Sprintf("daily_ideas[%d].%s", i, is.Path)
				out = append(out, is)
			}
		}
	}
	return out
}

// Issue describes one failed validation rule.
type Issue struct {
	Path  string `json:"path"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// Issues flattens validator errors into response issues.
func Issues(err error) []Issue {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []Issue{{Rule: err.Error()}}
	}
	out := make([]Issue, 0, len(verrs))
	for _, fe := range verrs {
		path := fe.Namespace()
		if i := strings.IndexByte(path, '.'); i >= 0 {
			path = path[i+1:]
		}
		out = append(out, Issue{Path: path, Rule: fe.Tag(), Param: fe.Param()})
	}
	return out
}
