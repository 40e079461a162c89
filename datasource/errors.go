package datasource

import "errors"

// ErrBadValue is returned when a stored value does not have the shape its
// use requires, such as a tree view without a valid kind.
var ErrBadValue = errors.New("datasource: malformed value")
