package repo

import "errors"

// ErrNotFound is returned when a referenced document is absent. Handlers map
// it to 404.
var ErrNotFound = errors.New("repo: record not found")

// ErrAlreadyExists is returned when an id-keyed insert collides with an
// existing document (duplicate guards, one-entry-per-user rules).
var ErrAlreadyExists = errors.New("repo: record already exists")
