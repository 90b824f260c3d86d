// Package exitcode exports nanotemp's exit status numbers.
package exitcode

const (
	// Success is returned when the command finished without error.
	Success = iota
	// UsageError is returned when there was a syntax or usage error in the arguments.
	UsageError
	// CreateError is returned when a temporary file or directory could not be created.
	CreateError
	// CleanupError is returned when the exit-time cleanup pass failed to
	// remove one or more tracked paths.
	CleanupError
)
