package handler

import "fmt"

// MissingParameterError one of the required query parameters is absent or empty
type MissingParameterError struct {
	Names []string
}

func (e *MissingParameterError) Error() string {
	return "Missing required parameters: year, make, model"
}

// InvalidYearError year is not an integer
type InvalidYearError struct {
	Value string
}

func (e *InvalidYearError) Error() string {
	return "Invalid year parameter"
}

// InvalidFlagError a boolean parameter can't be parsed
type InvalidFlagError struct {
	Name  string
	Value string
}

func (e *InvalidFlagError) Error() string {
	return fmt.Sprintf("Invalid %s parameter", e.Name)
}
