package sharedobject

import "github.com/torresjeff/sharedobject/amf"

// Header is the fixed 16 byte preamble of a shared object file.
// Only Length is interpreted; the other fields are kept as read.
type Header struct {
	// Usually 0x00BF.
	Reserved1 uint16
	// Length is the number of bytes that follow this field.
	Length uint32
	// Usually "TCSO".
	Reserved2 uint32
	Reserved3 uint16
	Reserved4 uint32
}

// Record is a single key/value pair of a shared object.
type Record struct {
	Key   string
	Value Value
}

// Document is the decoded contents of one or more shared object files.
// Records are kept in read order and keys may repeat.
type Document struct {
	Header Header
	Name   string
	// TypeMarker follows the name in the file. It's kept for diagnostics only.
	TypeMarker uint32
	Records    []Record
}

func NewDocument() *Document {
	return &Document{}
}

// Get returns the value of the first record with the given key, or an Undefined value if there's none.
func (d *Document) Get(key string) Value {
	v, _ := d.Lookup(key)
	return v
}

// Lookup returns the value of the first record with the given key and whether it was found.
func (d *Document) Lookup(key string) (Value, bool) {
	for _, r := range d.Records {
		if r.Key == key {
			return r.Value, true
		}
	}
	return UndefinedValue(), false
}

func (d *Document) Len() int {
	return len(d.Records)
}

// Keys returns the record keys in read order, duplicates included.
func (d *Document) Keys() []string {
	keys := make([]string, len(d.Records))
	for i, r := range d.Records {
		keys[i] = r.Key
	}
	return keys
}

// Version returns the AMF version name the type marker stands for.
func (d *Document) Version() string {
	return amf.VersionName(d.TypeMarker)
}
