package sharedobject

import (
	"os"

	"github.com/pkg/errors"
	"github.com/torresjeff/sharedobject/amf"
	"github.com/torresjeff/sharedobject/config"
	"github.com/torresjeff/sharedobject/rand"
	"go.uber.org/zap"
)

type Stage uint8

const (
	readingPreamble Stage = iota
	readingDocumentName
	readingRecords
	done
)

func (s Stage) String() string {
	switch s {
	case readingPreamble:
		return "preamble"
	case readingDocumentName:
		return "document name"
	case readingRecords:
		return "records"
	case done:
		return "done"
	default:
		return "unknown"
	}
}

// Decoder parses shared object files. The zero value is ready to use.
type Decoder struct {
	// Logger receives a debug narration of every decoded field. If nil, nothing is logged.
	Logger *zap.Logger
}

// Parse reads the shared object file at path into a new Document.
func Parse(path string) (*Document, error) {
	return (&Decoder{}).ParseFile(path, nil)
}

// ParseFile reads the whole file at path and decodes it. If into is non-nil, the decoded records
// are appended to it and its header, name and type marker are replaced; otherwise a new Document is returned.
// A missing or unreadable file returns an error wrapping ErrFileUnavailable.
func (d *Decoder) ParseFile(path string, into *Document) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(ErrFileUnavailable, "%s: %v", path, err)
	}
	return d.decode(data, into, d.logger().With("path", path))
}

// Decode decodes the contents of a shared object file held in memory. See ParseFile for into.
func (d *Decoder) Decode(data []byte, into *Document) (*Document, error) {
	return d.decode(data, into, d.logger())
}

func (d *Decoder) logger() *zap.SugaredLogger {
	if d.Logger == nil {
		return zap.NewNop().Sugar()
	}
	return d.Logger.Sugar()
}

func (d *Decoder) decode(data []byte, into *Document, logger *zap.SugaredLogger) (*Document, error) {
	p := &parser{
		logger:  logger.With("parse_id", rand.GenerateParseID()),
		reader:  NewReader(data),
		strings: &StringTable{},
		stage:   readingPreamble,
	}
	doc, err := p.parse()
	if err != nil {
		return nil, errors.Wrapf(err, "shared object: %s at offset %d", p.stage, p.reader.Offset())
	}
	if into == nil {
		return doc, nil
	}
	into.Header = doc.Header
	into.Name = doc.Name
	into.TypeMarker = doc.TypeMarker
	into.Records = append(into.Records, doc.Records...)
	return into, nil
}

// parser holds the state of a single parse.
type parser struct {
	logger  *zap.SugaredLogger
	reader  *Reader
	strings *StringTable
	stage   Stage
}

func (p *parser) parse() (*Document, error) {
	doc := NewDocument()
	for p.stage != done {
		var err error
		switch p.stage {
		case readingPreamble:
			if err = p.readHeader(doc); err == nil {
				p.stage = readingDocumentName
			}
		case readingDocumentName:
			if err = p.readName(doc); err == nil {
				p.stage = readingRecords
			}
		case readingRecords:
			if !p.reader.Remaining() {
				p.stage = done
				break
			}
			var record Record
			record, err = p.readRecord()
			if err == nil {
				doc.Records = append(doc.Records, record)
			}
		}
		if err != nil {
			return nil, err
		}
	}
	p.logger.Debugf("decoded %d records, %d strings in table", len(doc.Records), p.strings.Len())
	return doc, nil
}

func (p *parser) readHeader(doc *Document) error {
	if err := p.reader.need(config.HeaderSize); err != nil {
		return err
	}
	var err error
	h := &doc.Header
	if h.Reserved1, err = p.reader.ReadUint16(); err != nil {
		return err
	}
	if h.Length, err = p.reader.ReadUint32(); err != nil {
		return err
	}
	// Length counts every byte after the length field
	p.reader.SetEnd(p.reader.Offset() + int(h.Length))
	if h.Reserved2, err = p.reader.ReadUint32(); err != nil {
		return err
	}
	if h.Reserved3, err = p.reader.ReadUint16(); err != nil {
		return err
	}
	if h.Reserved4, err = p.reader.ReadUint32(); err != nil {
		return err
	}
	p.logger.Debugf("data size: %d", h.Length)
	return nil
}

func (p *parser) readName(doc *Document) error {
	length, err := p.reader.ReadUint16()
	if err != nil {
		return err
	}
	if doc.Name, err = p.reader.ReadUTF8(int(length)); err != nil {
		return err
	}
	if doc.TypeMarker, err = p.reader.ReadUint32(); err != nil {
		return err
	}
	p.logger.Debugf("name: %q, type: %d (%s)", doc.Name, doc.TypeMarker, amf.VersionName(doc.TypeMarker))
	return nil
}
