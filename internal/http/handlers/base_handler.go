// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"explore/internal/modules/route"
	"explore/internal/service"
)

type errorResponse struct {
	Code        int    `json:"code"`
	Status      string `json:"status"`
	Message     string `json:"message"`
	Description string `json:"description,omitempty"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg, description string) {
	writeJSON(c, status, errorResponse{
		Code:        status,
		Status:      "error",
		Message:     msg,
		Description: description,
	})
}

func writeRouteError(c *gin.Context, err error) {
	var missing *service.MissingPlacesError
	var provider *route.ProviderError
	switch {
	case errors.As(err, &missing):
		ids := make([]string, len(missing.IDs))
		for i, id := range missing.IDs {
			ids[i] = string(id)
		}
		writeError(c, http.StatusNotFound, "Places not found",
			fmt.Sprintf("Places with ids '%s' do not exist", strings.Join(ids, "', '")))
	case errors.Is(err, service.ErrBadRequest),
		errors.Is(err, service.ErrDateOutOfRange),
		errors.Is(err, service.ErrMixedRegions),
		errors.Is(err, route.ErrTooFewWaypoints):
		writeError(c, http.StatusUnprocessableEntity, "Validation error", err.Error())
	case errors.As(err, &provider):
		writeError(c, http.StatusBadGateway, "Route provider error",
			fmt.Sprintf("no route from '%s' to '%s'", provider.Origin, provider.Destination))
	default:
		writeError(c, http.StatusInternalServerError, "Internal server error", "An unexpected error occurred")
	}
}

// validationDescription joins field errors as "field: tag" pairs.
func validationDescription(errs validator.ValidationErrors) string {
	parts := make([]string, len(errs))
	for i, fe := range errs {
		switch fe.Tag() {
		case "required":
			parts[i] = fe.Field() + ": field required"
		case "min":
			parts[i] = fmt.Sprintf("%s: must contain at least %s items", fe.Field(), fe.Param())
		case "oneof":
			parts[i] = fmt.Sprintf("%s: must be one of %s", fe.Field(), fe.Param())
		case "datetime":
			parts[i] = fe.Field() + ": must be in format 'YYYY-MM-DD'"
		default:
			parts[i] = fmt.Sprintf("%s: failed on %s", fe.Field(), fe.Tag())
		}
	}
	return strings.Join(parts, "; ")
}

var registerTagName sync.Once

// useJSONFieldNames makes validation errors report json names instead of Go field names.
func useJSONFieldNames() {
	registerTagName.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
}
