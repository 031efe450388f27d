package encode

import "errors"

// ErrCapacityExceeded is returned when the input is large enough that
// 1 + 8*len(data) would exceed figure.MaxSegments.
var ErrCapacityExceeded = errors.New("encode: input too large for figure capacity")
