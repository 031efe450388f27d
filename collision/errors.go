package collision

import "errors"

// ErrIndexOutOfRange indicates last was outside [0, figure.Len()).
var ErrIndexOutOfRange = errors.New("collision: index out of range")
