package model

import (
	"encoding/json"
	"reflect"
	"strconv"
	"strings"

	"github.com/invopop/jsonschema"
)

var reflector = jsonschema.Reflector{
	Anonymous:                  true,
	DoNotReference:             true,
	ExpandedStruct:             true,
	RequiredFromJSONSchemaTags: true,
}

// InputSchema describes v as a JSON Schema. Bounds and required fields are
// read from the same validate tags the validator enforces.
func InputSchema(v any) *jsonschema.Schema {
	s := reflector.Reflect(v)
	s.Version = ""
	applyConstraints(s, indirect(reflect.TypeOf(v)))
	return s
}

// InputSchemaJSON is InputSchema marshalled for tool registration.
func InputSchemaJSON(v any) json.RawMessage {
	raw, err := json.Marshal(InputSchema(v))
	if err != nil {
		panic(err)
	}
	return raw
}

func applyConstraints(s *jsonschema.Schema, t reflect.Type) {
	if s == nil || t.Kind() != reflect.Struct || s.Properties == nil {
		return
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := jsonName(f)
		if f.Anonymous && name == "" {
			applyConstraints(s, indirect(f.Type))
			continue
		}
		if name == "" {
			continue
		}
		prop, ok := s.Properties.Get(name)
		if !ok {
			continue
		}
		ft := indirect(f.Type)
		for _, rule := range strings.Split(f.Tag.Get("validate"), ",") {
			key, param, _ := strings.Cut(rule, "=")
			switch key {
			case "required":
				s.Required = append(s.Required, name)
			case "max":
				setBound(prop, ft, param, true)
			case "min":
				setBound(prop, ft, param, false)
			case "url":
				prop.Format = "uri"
			}
		}
		switch ft.Kind() {
		case reflect.Struct:
			applyConstraints(prop, ft)
		case reflect.Slice:
			applyConstraints(prop.Items, indirect(ft.Elem()))
		}
	}
}

func setBound(prop *jsonschema.Schema, t reflect.Type, param string, upper bool) {
	switch t.Kind() {
	case reflect.String, reflect.Slice:
		n, err := strconv.ParseUint(param, 10, 64)
		if err != nil {
			return
		}
		switch {
		case t.Kind() == reflect.String && upper:
			prop.MaxLength = &n
		case t.Kind() == reflect.String:
			prop.MinLength = &n
		case upper:
			prop.MaxItems = &n
		default:
			prop.MinItems = &n
		}
	case reflect.Float32, reflect.Float64, reflect.Int, reflect.Int64:
		if upper {
			prop.Maximum = json.Number(param)
		} else {
			prop.Minimum = json.Number(param)
		}
	}
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

func indirect(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
