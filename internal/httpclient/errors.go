package httpclient

import "fmt"

// HTTPError represents a non-success HTTP response.
type HTTPError struct {
	StatusCode int
	Status     string
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %s for URL '%s'", e.Status, e.URL)
}

// NewHTTPError creates a new HTTP error for the given response status.
func NewHTTPError(statusCode int, status, url string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Status:     status,
		URL:        url,
	}
}
