package sharedobject

import "github.com/pkg/errors"

var ErrFileUnavailable = errors.New("shared object file is missing or unreadable")
var ErrOutOfBounds = errors.New("read past the end of the shared object")
var ErrInvalidEncoding = errors.New("string is not valid UTF-8")
var ErrDanglingReference = errors.New("string table reference is out of range")
var ErrUnknownType = errors.New("unknown value type")
