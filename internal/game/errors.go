package game

import "errors"

var (
	// ErrInvalidArgument marks a configuration value the core cannot run with.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrMissingCollaborator marks a required collaborator that was not supplied.
	ErrMissingCollaborator = errors.New("missing collaborator")
)
