package amf

import "fmt"

const AMFVersion0 uint8 = 0
const AMFVersion3 uint8 = 3

// VersionName returns the name of the AMF version a shared object's type marker declares.
func VersionName(marker uint32) string {
	switch marker {
	case uint32(AMFVersion0):
		return "AMF0"
	case uint32(AMFVersion3):
		return "AMF3"
	default:
		return fmt.Sprintf("unknown (%d)", marker)
	}
}
