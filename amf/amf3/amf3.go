package amf3

// MaxInt and MinInt bound the values a U29 can carry once it is read as a signed 29-bit integer.
const MaxInt int32 = 268435455
const MinInt int32 = -268435456

// UTF8Empty is the descriptor of an inline empty string (length 0, inline flag set).
const UTF8Empty byte = 0x01

const (
	TypeUndefined    byte = 0x00
	TypeNull         byte = 0x01
	TypeFalse        byte = 0x02
	TypeTrue         byte = 0x03
	TypeInteger      byte = 0x04
	TypeDouble       byte = 0x05
	TypeString       byte = 0x06
	TypeXmlDoc       byte = 0x07
	TypeDate         byte = 0x08
	TypeArray        byte = 0x09
	TypeObject       byte = 0x0A
	TypeXml          byte = 0x0B
	TypeByteArray    byte = 0x0C
	TypeVectorInt    byte = 0x0D
	TypeVectorUint   byte = 0x0E
	TypeVectorDouble byte = 0x0F
	TypeVectorObject byte = 0x10
	TypeDictionary   byte = 0x11
)

var typeNames = [...]string{
	TypeUndefined:    "undefined",
	TypeNull:         "null",
	TypeFalse:        "false",
	TypeTrue:         "true",
	TypeInteger:      "integer",
	TypeDouble:       "double",
	TypeString:       "string",
	TypeXmlDoc:       "xml-doc",
	TypeDate:         "date",
	TypeArray:        "array",
	TypeObject:       "object",
	TypeXml:          "xml",
	TypeByteArray:    "byte-array",
	TypeVectorInt:    "vector-int",
	TypeVectorUint:   "vector-uint",
	TypeVectorDouble: "vector-double",
	TypeVectorObject: "vector-object",
	TypeDictionary:   "dictionary",
}

// IsKnownType reports whether t is one of the AMF3 type markers.
func IsKnownType(t byte) bool {
	return t <= TypeDictionary
}

// TypeName returns a human readable name for the type marker t, or "unknown".
func TypeName(t byte) string {
	if !IsKnownType(t) {
		return "unknown"
	}
	return typeNames[t]
}
