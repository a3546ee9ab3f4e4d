package model

import (
	"bytes"
	"compress/zlib"
	"encoding/ascii85"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/hhrutter/lzw"
)

const (
	ASCII85   Filter = "ASCII85Decode"
	ASCIIHex  Filter = "ASCIIHexDecode"
	RunLength Filter = "RunLengthDecode"
	LZW       Filter = "LZWDecode"
	Flate     Filter = "FlateDecode"
	CCITTFax  Filter = "CCITTFaxDecode"
	JBIG2     Filter = "JBIG2Decode"
	DCT       Filter = "DCTDecode"
	JPX       Filter = "JPXDecode"
)

type Filter string

// NewFilter validate `s` and returns
// an empty string it is not a known filter
func NewFilter(s string) Filter {
	f := Filter(s)
	switch f {
	case ASCII85, ASCIIHex, RunLength, LZW,
		Flate, CCITTFax, JBIG2, DCT, JPX:
		return f
	default:
		return ""
	}
}

var booleanNames = map[Name]bool{
	"EndOfLine":        true,
	"EncodedByteAlign": true,
	"EndOfBlock":       true,
	"BlackIs1":         true,
}

// FilterEntry pairs a filter with its optional decode parameters.
// Boolean parameter values are stored as 0 (false) or 1 (true).
type FilterEntry struct {
	Name        Filter
	DecodeParms map[Name]int // optional
}

// Filters is the ordered list of filters applied to a stream's content,
// outermost (applied last when encoding) first.
type Filters []FilterEntry

// StreamDict stores the metadata associated
// with a stream
type StreamDict struct {
	Filter Filters
}

// Stream is the common base of every PDF stream object: a dictionary of
// stream parameters (filters, decode parameters) plus the raw bytes, as
// they are meant to be written to (or were read from) the file.
type Stream struct {
	StreamDict
	Content []byte // such as read/writen, not decoded
}

func (s Stream) Length() int {
	return len(s.Content)
}

// Clone returns a deep copy of s.
func (s Stream) Clone() Stream {
	out := s
	if s.Filter != nil {
		out.Filter = make(Filters, len(s.Filter))
		for i, f := range s.Filter {
			fc := f
			if f.DecodeParms != nil {
				fc.DecodeParms = make(map[Name]int, len(f.DecodeParms))
				for k, v := range f.DecodeParms {
					fc.DecodeParms[k] = v
				}
			}
			out.Filter[i] = fc
		}
	}
	out.Content = append([]byte(nil), s.Content...)
	return out
}

// PDFCommonFields returns the dictionary entries shared by every stream
// object (/Filter, /DecodeParms and, when includeLength is true, /Length),
// without the surrounding << >>.
func (s Stream) PDFCommonFields(includeLength bool) string {
	b := newBuffer()
	hasParms := false
	for _, f := range s.Filter {
		if f.DecodeParms != nil {
			hasParms = true
			break
		}
	}
	if len(s.Filter) != 0 {
		names := make([]Name, len(s.Filter))
		for i, f := range s.Filter {
			names[i] = Name(f.Name)
		}
		b.fmt("/Filter %s", writeNameArray(names))
	}
	if hasParms {
		b.WriteString("/DecodeParms [")
		for _, f := range s.Filter {
			if f.DecodeParms == nil {
				b.WriteString("null ")
				continue
			}
			b.WriteString("<<")
			for k, v := range f.DecodeParms {
				if _, ok := booleanNames[k]; ok {
					b.fmt("%s %v", k, v != 0)
				} else {
					b.fmt("%s %d", k, v)
				}
			}
			b.WriteString(">> ")
		}
		b.WriteString("]")
	}
	if includeLength {
		b.fmt("/Length %d", len(s.Content))
	}
	return b.String()
}

// PDFContent returns the full stream dictionary and its raw content,
// suitable as the result of a Referenceable.pdfContent implementation.
func (s Stream) PDFContent() (string, []byte) {
	return fmt.Sprintf("<<%s>>", s.PDFCommonFields(true)), s.Content
}

// Decode returns the stream content with every filter in s.Filter applied,
// in order. Image codecs (DCTDecode, JPXDecode, CCITTFaxDecode, JBIG2Decode)
// are left untouched: callers interested in pixel data decode them directly.
func (s Stream) Decode() ([]byte, error) {
	content := s.Content
	for _, f := range s.Filter {
		var err error
		switch f.Name {
		case Flate:
			content, err = decodeFlate(content)
		case ASCII85:
			content, err = decodeASCII85(content)
		case ASCIIHex:
			content, err = decodeASCIIHex(content)
		case RunLength:
			content, err = decodeRunLength(content)
		case LZW:
			content, err = decodeLZW(content)
		case DCT, JPX, CCITTFax, JBIG2:
			// left encoded: consumers decode the image codec themselves
		default:
			return nil, fmt.Errorf("unsupported filter %s", f.Name)
		}
		if err != nil {
			return nil, fmt.Errorf("invalid %s stream: %w", f.Name, err)
		}
	}
	return content, nil
}

func decodeFlate(b []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

func decodeASCII85(b []byte) ([]byte, error) {
	b = bytes.TrimSuffix(bytes.TrimSpace(b), []byte("~>"))
	out := make([]byte, len(b))
	n, _, err := ascii85.Decode(out, b, true)
	if err != nil {
		return nil, err
	}
	return out[:n], nil
}

func decodeASCIIHex(b []byte) ([]byte, error) {
	b = bytes.TrimSuffix(bytes.TrimSpace(b), []byte(">"))
	b = bytes.Map(func(r rune) rune {
		return r
	}, b)
	clean := make([]byte, 0, len(b))
	for _, c := range b {
		if c == ' ' || c == '\n' || c == '\r' || c == '\t' {
			continue
		}
		clean = append(clean, c)
	}
	if len(clean)%2 != 0 {
		clean = append(clean, '0')
	}
	out := make([]byte, hex.DecodedLen(len(clean)))
	n, err := hex.Decode(out, clean)
	if err != nil {
		return nil, err
	}
	return out[:n], nil
}

func decodeRunLength(b []byte) ([]byte, error) {
	var out bytes.Buffer
	for i := 0; i < len(b); {
		length := b[i]
		i++
		switch {
		case length == 128:
			return out.Bytes(), nil
		case length < 128:
			n := int(length) + 1
			if i+n > len(b) {
				return nil, errors.New("truncated RunLengthDecode stream")
			}
			out.Write(b[i : i+n])
			i += n
		default:
			if i >= len(b) {
				return nil, errors.New("truncated RunLengthDecode stream")
			}
			for j := 0; j < 257-int(length); j++ {
				out.WriteByte(b[i])
			}
			i++
		}
	}
	return out.Bytes(), nil
}

func decodeLZW(b []byte) ([]byte, error) {
	r := lzw.NewReader(bytes.NewReader(b), lzw.MSB, 8)
	defer r.Close()
	return io.ReadAll(r)
}

// ContentStream is a stream holding page or form content operators.
type ContentStream struct {
	Stream
}

// PDFCommonFields is a convenience wrapper always including /Length.
func (c ContentStream) PDFCommonFields() string {
	return c.Stream.PDFCommonFields(true)
}

func (c ContentStream) Clone() ContentStream {
	return ContentStream{Stream: c.Stream.Clone()}
}

// XObject is either a Form or an Image XObject, as stored in a resources
// dictionary /XObject entry.
type XObject interface {
	isXObject()
}

func (*XObjectForm) isXObject()  {}
func (*XObjectImage) isXObject() {}
