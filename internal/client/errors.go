package client

import "fmt"

// UpstreamHTTPError vPIC answered with a non-success status
type UpstreamHTTPError struct {
	StatusCode int
}

func (e *UpstreamHTTPError) Error() string {
	return fmt.Sprintf("Error: Received status code %d", e.StatusCode)
}

// UpstreamDecodeError vPIC body is not the expected json
type UpstreamDecodeError struct {
	Err error
}

func (e *UpstreamDecodeError) Error() string {
	return fmt.Sprintf("Error decoding JSON: %s", e.Err)
}

func (e *UpstreamDecodeError) Unwrap() error {
	return e.Err
}
