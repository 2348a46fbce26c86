package llm

import (
	"context"
	"errors"
	"net/http"
)

// HTTPStatus maps a provider failure to the status returned to API clients.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}
