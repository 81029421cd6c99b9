package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/headlinehq/newswire/pkg/apisdk"
)

var validate = validator.New()

// decodeAndValidate parses the JSON body into req and runs struct
// validation. On failure it writes a 400 envelope and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		apisdk.NewAPIError(http.StatusBadRequest, apisdk.ErrorCodeValidation,
			"invalid JSON in request body").WriteError(w)
		return false
	}

	if err := validate.Struct(req); err != nil {
		var ve validator.ValidationErrors
		detail := "request failed validation"
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			detail = strings.Join(msgs, "; ")
		}
		apisdk.NewAPIError(http.StatusBadRequest, apisdk.ErrorCodeValidation, detail).WriteError(w)
		return false
	}

	return true
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "url":
		return field + " must be a valid URL"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "excludes":
		return fmt.Sprintf("%s must not contain %q", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
