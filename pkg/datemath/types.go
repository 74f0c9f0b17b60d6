package datemath

import "errors"

// Accepted absolute layouts, tried in order. Layouts without an offset are
// interpreted in the parser's location.
var absoluteLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

const DateLayout = "2006-01-02"

// ErrUnrecognized is returned when a string matches no supported date form.
var ErrUnrecognized = errors.New("unrecognized date")
