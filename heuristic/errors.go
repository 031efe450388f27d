package heuristic

import "errors"

// ErrIndexOutOfRange is returned when last-1 < 0. When an accessor on the
// figure itself fails (an index past Len(), or a cache that does not cover
// it), Suggest returns the figure package's own error instead.
var ErrIndexOutOfRange = errors.New("heuristic: index out of range")
