package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// ErrNilClient is returned when a method is called on a nil *Client.
var ErrNilClient = errors.New("client is nil")

// ErrorClass groups request failures for logging and metrics.
type ErrorClass string

const (
	ErrorClassClient   ErrorClass = "client"
	ErrorClassServer   ErrorClass = "server"
	ErrorClassNetwork  ErrorClass = "network"
	ErrorClassDecode   ErrorClass = "decode"
	ErrorClassCanceled ErrorClass = "canceled"
)

// APIError reports a non-2xx response from the character service.
type APIError struct {
	StatusCode int
	Class      ErrorClass
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api %s returned status %d", e.URL, e.StatusCode)
}

// IsNotFound reports whether err is a 404 from the service.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

func classifyStatus(code int) ErrorClass {
	if code >= 500 {
		return ErrorClassServer
	}
	return ErrorClassClient
}

func classifyTransport(err error) ErrorClass {
	if errors.Is(err, context.Canceled) {
		return ErrorClassCanceled
	}
	return ErrorClassNetwork
}
