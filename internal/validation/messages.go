package validation

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/fadilmartias/useresume-gateway/internal/errors"
)

func translate(root reflect.Type, fe validator.FieldError) errors.FieldViolation {
	path := jsonPath(fe.Namespace())
	field, _ := lookupField(root, fe.StructNamespace())
	label := field.Tag.Get("label")
	if label == "" {
		label = humanize(lastSegment(path))
	}
	return errors.FieldViolation{
		Path:       path,
		Constraint: fe.Tag(),
		Message:    message(fe, label),
	}
}

func message(fe validator.FieldError, label string) string {
	param := fe.Param()
	switch fe.Tag() {
	case "required":
		return sentence(label) + " is required"
	case "max":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("%s cannot exceed %s characters", sentence(label), param)
		case reflect.Slice, reflect.Array, reflect.Map:
			return fmt.Sprintf("Cannot add more than %s %s", param, strings.ToLower(label))
		}
		return fmt.Sprintf("%s cannot exceed %s", sentence(label), param)
	case "min":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("%s must be at least %s characters", sentence(label), param)
		case reflect.Slice, reflect.Array, reflect.Map:
			return fmt.Sprintf("Add at least %s %s", param, strings.ToLower(label))
		}
		if param == "0" {
			return sentence(label) + " cannot be negative"
		}
		return fmt.Sprintf("%s must be at least %s", sentence(label), param)
	case "enum":
		if e, ok := fe.Value().(Enum); ok {
			return fmt.Sprintf("Please select a valid %s. (e.g. '%s')",
				strings.ToLower(label), strings.Join(e.Choices(), "', '"))
		}
		return fmt.Sprintf("Please select a valid %s", strings.ToLower(label))
	case "url":
		return sentence(label) + " must be a valid URL"
	}
	return sentence(label) + " is invalid"
}

// decodeViolation turns a json.Unmarshal error into a violation. fatal is
// true when nothing usable was decoded.
func decodeViolation(err error) (v errors.FieldViolation, fatal bool) {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		path := typeErr.Field
		if path == "" {
			return errors.FieldViolation{Constraint: "type", Message: "Input must be a JSON object"}, true
		}
		return errors.FieldViolation{
			Path:       path,
			Constraint: "type",
			Message:    fmt.Sprintf("%s must be %s", humanize(lastSegment(path)), kindName(typeErr.Type)),
		}, false
	}
	return errors.FieldViolation{Constraint: "json", Message: "Input is not valid JSON: " + err.Error()}, true
}

func kindName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Float32, reflect.Float64, reflect.Int, reflect.Int32, reflect.Int64:
		return "a number"
	case reflect.Slice, reflect.Array:
		return "a list"
	}
	return "an object"
}

// jsonPath drops the root type name and embedded struct names from a
// validator namespace. JSON names are lower case, Go names are not.
func jsonPath(ns string) string {
	parts := strings.Split(ns, ".")
	kept := parts[:0]
	for _, p := range parts {
		if p == "" || unicode.IsUpper(rune(p[0])) {
			continue
		}
		kept = append(kept, p)
	}
	return strings.Join(kept, ".")
}

func lastSegment(path string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		path = path[i+1:]
	}
	if i := strings.IndexByte(path, '['); i >= 0 {
		path = path[:i]
	}
	return path
}

// lookupField walks a struct namespace such as
// CreateResumeRequest.Content.Employment[0].Title down from root.
func lookupField(root reflect.Type, structNs string) (reflect.StructField, bool) {
	parts := strings.Split(structNs, ".")
	if len(parts) < 2 {
		return reflect.StructField{}, false
	}
	t := root
	var field reflect.StructField
	for _, part := range parts[1:] {
		for t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if t.Kind() != reflect.Struct {
			return reflect.StructField{}, false
		}
		name, indexed := part, false
		if i := strings.IndexByte(part, '['); i >= 0 {
			name, indexed = part[:i], true
		}
		f, ok := t.FieldByName(name)
		if !ok {
			return reflect.StructField{}, false
		}
		field, t = f, f.Type
		if indexed {
			for t.Kind() == reflect.Pointer {
				t = t.Elem()
			}
			t = t.Elem()
		}
	}
	return field, true
}

func humanize(name string) string {
	if name == "" {
		return "Value"
	}
	return sentence(strings.ReplaceAll(name, "_", " "))
}

func sentence(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
