package domain

import "errors"

var (
	// ErrSourceUnavailable signals that the container runtime could not be
	// reached at all. Discovery absorbs this into an empty, logged result.
	ErrSourceUnavailable = errors.New("container source unavailable")
	// ErrOverrideNotFound signals a delete of settings that were never stored.
	ErrOverrideNotFound = errors.New("container override not found")
	// ErrContainerNotFound signals a start/stop against an unknown container.
	ErrContainerNotFound = errors.New("container not found")
	// ErrFavoriteNotFound signals a delete of a favorite that is not stored.
	ErrFavoriteNotFound = errors.New("favorite not found")
)
