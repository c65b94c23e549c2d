package gateway

import "errors"

// Sentinel errors shared by every Backend implementation and by the app
// layer dispatch. Anything a backend returns that does not wrap one of
// these is a collaborator failure and propagates to the caller unchanged.
var (
	// ErrNotFound indicates the requested id does not exist on the backend.
	ErrNotFound = errors.New("resource not found")
	// ErrUnsupportedKind indicates a resource-kind token outside the closed
	// enumeration. It is raised before any backend call.
	ErrUnsupportedKind = errors.New("unsupported resource kind")
	// ErrConfiguration indicates the backend is unusable as configured
	// (e.g. no API key). It surfaces at first call, not at construction.
	ErrConfiguration = errors.New("backend not configured")
)
