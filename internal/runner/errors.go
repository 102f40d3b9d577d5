package runner

import "errors"

// Configuration errors. A component that reports one of these stays inert.
var (
	ErrEmptyCatalog    = errors.New("runner: spawn catalog is empty")
	ErrNoSpawnPoint    = errors.New("runner: spawn point is not assigned")
	ErrNoViewport      = errors.New("runner: viewport is not assigned")
	ErrMissingLandmark = errors.New("runner: segment has no landmark")
)
