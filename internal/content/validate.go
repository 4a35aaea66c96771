package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError names one field that broke its rule.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError lists every offending field of one input record.
type ValidationError struct {
	Entity string
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}
	return fmt.Sprintf("invalid %s: %s", e.Entity, strings.Join(parts, "; "))
}

func (e *ValidationError) has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

func (e *ValidationError) add(field, reason string) {
	if e.has(field) {
		return
	}
	e.Fields = append(e.Fields, FieldError{Field: field, Reason: reason})
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterValidation("skillcategory", func(fl validator.FieldLevel) bool {
		return Category(fl.Field().String()).Valid()
	})
	return v
}

func (m NewUser) Validate() error           { return check("user", m, nil) }
func (m NewContactMessage) Validate() error { return check("contact message", m, nil) }
func (m NewProject) Validate() error        { return check("project", m, nil) }
func (m NewExperience) Validate() error     { return check("experience", m, nil) }
func (m NewSkill) Validate() error          { return check("skill", m, nil) }

func ParseUser(raw []byte) (NewUser, error) {
	var m NewUser
	err := parse("user", raw, &m)
	return m, err
}

// ParseContactMessage decodes a contact form submission. Fields the store
// assigns (id, createdAt) are ignored if present.
func ParseContactMessage(raw []byte) (NewContactMessage, error) {
	var m NewContactMessage
	err := parse("contact message", raw, &m)
	return m, err
}

func ParseProject(raw []byte) (NewProject, error) {
	var m NewProject
	err := parse("project", raw, &m)
	return m, err
}

func ParseExperience(raw []byte) (NewExperience, error) {
	var m NewExperience
	err := parse("experience", raw, &m)
	return m, err
}

func ParseSkill(raw []byte) (NewSkill, error) {
	var m NewSkill
	err := parse("skill", raw, &m)
	return m, err
}

// parse decodes raw into dst and validates it. json.Unmarshal keeps going past
// a field of the wrong type, so the remaining fields are still checked.
func parse(entity string, raw []byte, dst any) error {
	verr := &ValidationError{Entity: entity}
	if err := json.Unmarshal(raw, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			verr.add("body", "must be a JSON object")
			return verr
		}
		field, _, _ := strings.Cut(typeErr.Field, ".")
		if field == "" {
			verr.add("body", "must be a JSON object")
			return verr
		}
		verr.add(field, "must be "+jsonKind(typeErr.Type))
	}
	return check(entity, reflect.ValueOf(dst).Elem().Interface(), verr)
}

func check(entity string, v any, verr *ValidationError) error {
	if verr == nil {
		verr = &ValidationError{Entity: entity}
	}
	err := validate.Struct(v)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			verr.add(fe.Field(), reason(fe))
		}
	} else if err != nil {
		return err
	}
	if len(verr.Fields) == 0 {
		return nil
	}
	return verr
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "skillcategory":
		names := make([]string, len(Categories))
		for i, c := range Categories {
			names[i] = string(c)
		}
		return "must be one of " + strings.Join(names, ", ")
	}
	return "failed " + fe.Tag()
}

func jsonKind(t reflect.Type) string {
	switch t.Kind() {
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Int, reflect.Int64, reflect.Int32, reflect.Uint, reflect.Uint64:
		return "an integer"
	case reflect.Slice:
		return "an array"
	case reflect.Ptr:
		return jsonKind(t.Elem())
	}
	return "a " + t.Kind().String()
}
