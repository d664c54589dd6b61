package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Storage errors
	ErrMissingQuery = fmt.Errorf("sql statement not found")

	// Catalog errors
	ErrValidation   = fmt.Errorf("validation failed")
	ErrBookNotFound = fmt.Errorf("book not found")
	ErrBookExists   = fmt.Errorf("book already exists")

	// Input validation errors
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
