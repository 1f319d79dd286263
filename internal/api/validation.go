package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"job_recommendation/internal/models"
)

// useJSONFieldNames makes validation errors report JSON names such as
// "job_id" instead of Go field names.
func useJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// fieldErrors turns a binding error into per-field messages.
func fieldErrors(err error) []models.FieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]models.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, models.FieldError{
				Field:   fieldPath(fe.Namespace()),
				Message: validationMessage(fe),
			})
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return []models.FieldError{{
			Field:   field,
			Message: fmt.Sprintf("expected %s, got %s", typeErr.Type.String(), typeErr.Value),
		}}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return []models.FieldError{{Field: "body", Message: "malformed JSON"}}
	}

	return []models.FieldError{{Field: "body", Message: err.Error()}}
}

// fieldPath strips the root struct name from a validator namespace,
// "RecommendRequest.preferences.locations" becomes "preferences.locations".
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}
