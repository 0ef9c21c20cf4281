package validate

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"coursecat/internal/domain"
	"coursecat/internal/errs"
)

// FieldErrors maps a form field name to its message.
type FieldErrors map[string]string

// OK reports whether there are no errors.
func (fe FieldErrors) OK() bool { return len(fe) == 0 }

// Clear drops the message for field, as when the user edits it.
func (fe FieldErrors) Clear(field string) { delete(fe, field) }

// Err returns nil when fe is empty, otherwise an errs.Invalid error carrying
// the field messages.
func (fe FieldErrors) Err() error {
	if fe.OK() {
		return nil
	}
	return errs.E(errs.Invalid, "validation failed", map[string]string(fe))
}

type enrolledKey struct{}

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their form names.
	val.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	must(val.RegisterValidation("level", func(fl validator.FieldLevel) bool {
		return domain.IsLevel(fl.Field().String())
	}))
	must(val.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return domain.IsCategory(fl.Field().String())
	}))
	must(val.RegisterValidation("duration", func(fl validator.FieldLevel) bool {
		return domain.IsDuration(fl.Field().String())
	}))
	must(val.RegisterValidationCtx("enrolled", func(ctx context.Context, fl validator.FieldLevel) bool {
		ids, _ := ctx.Value(enrolledKey{}).(map[domain.CourseID]struct{})
		_, ok := ids[domain.CourseID(fl.Field().Int())]
		return ok
	}))
	return val
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// run validates form and turns failures into messages. messages is keyed by
// field then tag; the "" tag is the field's fallback.
func run(ctx context.Context, form any, messages map[string]map[string]string) FieldErrors {
	out := FieldErrors{}
	err := v.StructCtx(ctx, form)
	if err == nil {
		return out
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Only reachable with a non-struct form, which is a programming error.
		panic(err)
	}
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := out[field]; seen {
			continue
		}
		msgs := messages[field]
		if m, ok := msgs[fe.Tag()]; ok {
			out[field] = m
		} else {
			out[field] = msgs[""]
		}
	}
	return out
}
