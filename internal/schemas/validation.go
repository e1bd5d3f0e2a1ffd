package schemas

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// FieldErrors is returned for input that fails validation.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for _, e := range fe {
		if e.Field == "" {
			parts = append(parts, e.Message)
			continue
		}
		parts = append(parts, e.Field+": "+e.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var (
	standalone     *validator.Validate
	standaloneOnce sync.Once
)

// Configure registers the custom rules and JSON field naming on v. The HTTP
// layer calls it with gin's validator engine.
func Configure(v *validator.Validate) {
	v.RegisterTagNameFunc(jsonFieldName)
	_ = v.RegisterValidation("notblank", validators.NotBlank)
}

// Validate checks s against its binding tags.
func Validate(s any) error {
	standaloneOnce.Do(func() {
		standalone = validator.New()
		standalone.SetTagName("binding")
		Configure(standalone)
	})
	if err := standalone.Struct(s); err != nil {
		return FromError(err)
	}
	return nil
}

// FromError converts binding and validation failures into FieldErrors.
func FromError(err error) FieldErrors {
	var fieldErrs FieldErrors
	if errors.As(err, &fieldErrs) {
		return fieldErrs
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		out := make(FieldErrors, 0, len(validationErrs))
		for _, fe := range validationErrs {
			out = append(out, FieldError{
				Field:   fieldPath(fe.Namespace()),
				Rule:    fe.Tag(),
				Message: ruleMessage(fe),
			})
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return FieldErrors{{
			Field:   typeErr.Field,
			Rule:    "type",
			Message: "must be of type " + typeErr.Type.String(),
		}}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return FieldErrors{{Field: "body", Rule: "json", Message: "request body must be valid JSON"}}
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return FieldErrors{{Rule: "type", Message: fmt.Sprintf("%q is not a valid number", numErr.Num)}}
	}

	return FieldErrors{{Rule: "invalid", Message: err.Error()}}
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "notblank":
		return "must not be blank"
	case "min":
		if fe.Kind() == reflect.String {
			return "must be at least " + fe.Param() + " characters long"
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "must be at most " + fe.Param() + " characters long"
		}
		return "must be at most " + fe.Param()
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	}
	return "failed the " + fe.Tag() + " rule"
}

// fieldPath turns "GroceryCreate.grocery_items[0].item_id" into
// "grocery_items[0].item_id". Segments named after Go types (the root struct
// and embedded structs) start with an upper case letter and are dropped.
func fieldPath(namespace string) string {
	segments := strings.Split(namespace, ".")
	kept := segments[:0]
	for _, s := range segments {
		if s == "" || unicode.IsUpper(rune(s[0])) {
			continue
		}
		kept = append(kept, s)
	}
	return strings.Join(kept, ".")
}

func jsonFieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}
