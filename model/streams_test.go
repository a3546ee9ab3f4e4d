package model

import (
	"fmt"
	"testing"
)

func TestStream(t *testing.T) {
	s := ContentStream{
		Stream: Stream{
			StreamDict: StreamDict{
				Filter: Filters{
					{Name: JPX}, {Name: ASCII85}, {Name: ASCIIHex}, {Name: JBIG2}, {Name: Flate},
				},
			},
			Content: make([]byte, 245),
		},
	}
	st1 := s.PDFCommonFields()

	s.Filter = Filters{
		{Name: JPX, DecodeParms: map[Name]int{"P1": 1, "EndOfLine": 0, "EncodedByteAlign": 1}},
		{Name: ASCII85},
		{Name: ASCIIHex, DecodeParms: map[Name]int{"P1": 1, "EndOfLine": 0, "EncodedByteAlign": 1}},
		{Name: JBIG2},
		{Name: Flate},
	}
	st2 := s.PDFCommonFields()
	fmt.Println(st1)
	fmt.Println(st2)
}

func TestStreamDecode(t *testing.T) {
	s := Stream{
		StreamDict: StreamDict{Filter: Filters{{Name: ASCIIHex}}},
		Content:    []byte("48656c6c6f>"),
	}
	got, err := s.Decode()
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "Hello" {
		t.Errorf("unexpected decoded content: %q", got)
	}
}
