package sharedobject

import "github.com/pkg/errors"

// StringTable holds every inline string and key seen during a parse, in the order they were read.
// Indexed strings in the stream refer back to positions in this table.
type StringTable struct {
	strings []string
}

// Append adds s to the end of the table. Identical strings get independent entries.
func (t *StringTable) Append(s string) {
	t.strings = append(t.strings, s)
}

// Resolve returns the string at index, or ErrDanglingReference if the index hasn't been seen yet.
func (t *StringTable) Resolve(index int) (string, error) {
	if index < 0 || index >= len(t.strings) {
		return "", errors.Wrapf(ErrDanglingReference, "index %d, table has %d entries", index, len(t.strings))
	}
	return t.strings[index], nil
}

func (t *StringTable) Len() int {
	return len(t.strings)
}
