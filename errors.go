package clubsite

import "errors"

// Sentinel errors returned by repositories and the storage adapter. The HTTP
// error handler maps them to response statuses.
var (
	// ErrNotFound is returned when a requested item or page does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized is returned by mutating repository operations when the
	// caller's session is not authenticated. It is raised before any storage
	// access happens.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrDocumentNotFound is returned by Storage.ReadDocument when the named
	// document has never been written. Repositories translate it into their
	// default document shape.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrUnknownSection is returned when a page update names a section the
	// page schema does not define.
	ErrUnknownSection = errors.New("unknown page section")
)
