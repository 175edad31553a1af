package sharedobject

import (
	"github.com/pkg/errors"
	"github.com/torresjeff/sharedobject/amf/amf3"
)

// readString reads a string descriptor followed by the string itself when it's inline.
// The low bit of the descriptor is the inline flag; the rest is either the byte length or a string table index.
// Inline strings are appended to the string table.
func (p *parser) readString() (s string, inline bool, err error) {
	descriptor, err := amf3.DecodeU29(p.reader)
	if err != nil {
		return "", false, err
	}
	inline = descriptor&0x01 == 1
	n := int(uint32(descriptor) >> 1)
	if !inline {
		s, err = p.strings.Resolve(n)
		return s, false, err
	}
	s, err = p.reader.ReadUTF8(n)
	if err != nil {
		return "", true, err
	}
	p.strings.Append(s)
	return s, true, nil
}

// readRecord decodes one key, its type marker and payload, and the padding byte that follows it.
func (p *parser) readRecord() (Record, error) {
	var record Record

	key, inline, err := p.readString()
	if err != nil {
		return record, errors.Wrap(err, "reading key")
	}
	record.Key = key
	p.logger.Debugf("key %q (inline: %v)", key, inline)

	start := p.reader.Offset()
	valueType, err := p.reader.ReadByte()
	if err != nil {
		return record, errors.Wrapf(err, "reading type of %q", key)
	}

	switch valueType {
	case amf3.TypeUndefined:
		record.Value = UndefinedValue()
	case amf3.TypeNull:
		record.Value = NullValue()
	case amf3.TypeFalse:
		record.Value = BooleanValue(false)
	case amf3.TypeTrue:
		record.Value = BooleanValue(true)
	case amf3.TypeInteger:
		i, err := amf3.DecodeU29(p.reader)
		if err != nil {
			return record, errors.Wrapf(err, "reading integer %q", key)
		}
		record.Value = IntegerValue(i)
	case amf3.TypeDouble:
		f, err := amf3.DecodeDouble(p.reader)
		if err != nil {
			return record, errors.Wrapf(err, "reading double %q", key)
		}
		record.Value = DoubleValue(f)
	case amf3.TypeString:
		s, inline, err := p.readString()
		if err != nil {
			return record, errors.Wrapf(err, "reading string %q", key)
		}
		p.logger.Debugf("string value of %q (inline: %v)", key, inline)
		record.Value = StringValue(s)
	default:
		if !amf3.IsKnownType(valueType) {
			return record, errors.Wrapf(ErrUnknownType, "type 0x%02x of %q at offset %d", valueType, key, start)
		}
		p.logger.Debugf("type %s of %q is not decoded, skipping its payload", amf3.TypeName(valueType), key)
		if err := p.skipPayload(); err != nil {
			return record, err
		}
		record.Value = SkippedValue(valueType)
	}
	p.logger.Debugf("\t%s %s", record.Value.Kind(), record.Value)

	if p.reader.Remaining() {
		// Padding
		if _, err := p.reader.ReadByte(); err != nil {
			return record, err
		}
	}
	return record, nil
}

// skipPayload steps over the payload of a value whose layout isn't decoded, by moving
// the cursor to the next zero byte. The zero byte is left to be read as padding.
// This is a heuristic: a payload that contains a zero byte before its real end leaves the
// cursor misaligned, and the following records decode as garbage or fail.
func (p *parser) skipPayload() error {
	for p.reader.Remaining() {
		b, err := p.reader.ReadByte()
		if err != nil {
			return err
		}
		if b == 0 {
			return p.reader.UnreadByte()
		}
	}
	return nil
}
