package validation

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/fadilmartias/useresume-gateway/internal/errors"
)

// Enum is implemented by every closed-set vocabulary type in model.
type Enum interface {
	IsValid() bool
	Choices() []string
}

type defaulter interface {
	ApplyDefaults()
}

type sourceChecker interface {
	SourceViolation() string
}

var (
	engine     *validator.Validate
	engineOnce sync.Once
)

// Engine returns the shared validator with JSON field names and the enum
// rule registered.
func Engine() *validator.Validate {
	engineOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
			e, ok := fl.Field().Interface().(Enum)
			return ok && e.IsValid()
		})
		engine = v
	})
	return engine
}

// Validate decodes raw into a T, applies defaults and checks every rule.
// It returns the normalized value, or a *errors.ValidationError listing
// every violation found. Unknown keys are dropped.
func Validate[T any](raw []byte) (*T, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		raw = []byte("{}")
	}

	// A type mismatch leaves that field at its zero value and decoding
	// carries on, so the remaining rules still run. Malformed JSON and a
	// non-object root stop here.
	out := new(T)
	var violations []errors.FieldViolation
	if err := json.Unmarshal(raw, out); err != nil {
		v, fatal := decodeViolation(err)
		if fatal {
			return nil, &errors.ValidationError{Violations: []errors.FieldViolation{v}}
		}
		violations = append(violations, v)
	}

	if d, ok := any(out).(defaulter); ok {
		d.ApplyDefaults()
	}

	fields, err := fieldViolations(out)
	if err != nil {
		return nil, err
	}
	for _, f := range fields {
		if !decodedBadly(violations, f.Path) {
			violations = append(violations, f)
		}
	}

	if c, ok := any(out).(sourceChecker); ok {
		if msg := c.SourceViolation(); msg != "" {
			violations = append(violations, errors.FieldViolation{Constraint: "file_source", Message: msg})
		}
	}

	if len(violations) > 0 {
		return nil, &errors.ValidationError{Violations: violations}
	}
	return out, nil
}

// decodedBadly reports whether path already carries a type violation; the
// zero value left behind would otherwise also trip required.
func decodedBadly(violations []errors.FieldViolation, path string) bool {
	for _, v := range violations {
		if v.Constraint == "type" && v.Path == path {
			return true
		}
	}
	return false
}

func fieldViolations(v any) ([]errors.FieldViolation, error) {
	err := Engine().Struct(v)
	if err == nil {
		return nil, nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil, errors.Wrap(err, "validate")
	}
	root := reflect.TypeOf(v)
	for root.Kind() == reflect.Pointer {
		root = root.Elem()
	}
	violations := make([]errors.FieldViolation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, translate(root, fe))
	}
	return violations, nil
}
