package http

import (
	"errors"
	"net/http"

	"github.com/headlinehq/newswire/internal/api/service"
	"github.com/headlinehq/newswire/pkg/apisdk"
	"github.com/headlinehq/newswire/pkg/slogx"
)

// writeServiceError maps service errors onto the wire envelope. Anything
// unrecognized is logged and returned as a generic 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidClientName):
		apisdk.NewAPIError(http.StatusBadRequest, apisdk.ErrorCodeValidation, err.Error()).WriteError(w)
	case errors.Is(err, service.ErrClientExists):
		apisdk.NewAPIError(http.StatusConflict, apisdk.ErrorCodeConflict, "a client with that name already exists").WriteError(w)
	case errors.Is(err, service.ErrClientNotFound):
		apisdk.NewAPIError(http.StatusNotFound, apisdk.ErrorCodeNotFound, "client not found").WriteError(w)
	case errors.Is(err, service.ErrArticleNotFound):
		apisdk.NewAPIError(http.StatusNotFound, apisdk.ErrorCodeNotFound, "article not found").WriteError(w)
	case errors.Is(err, service.ErrTopicNotFound):
		apisdk.NewAPIError(http.StatusNotFound, apisdk.ErrorCodeNotFound, "topic not found").WriteError(w)
	case errors.Is(err, service.ErrSourceNotFound):
		apisdk.NewAPIError(http.StatusNotFound, apisdk.ErrorCodeNotFound, "source not found").WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("request failed", "error", err, "path", r.URL.Path)
		apisdk.ErrServerError.WriteError(w)
	}
}
