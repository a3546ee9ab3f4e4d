package model

import (
	"bytes"
	"fmt"
)

// pdfDocEncoding is the simple, single-byte PDFDocEncoding used for text
// strings outside the document content stream (bookmarks, field values,
// metadata). Table D.2 of the PDF specification.
var pdfDocEncoding = map[byte]rune{
	0x01: '\u0001',
	0x02: '\u0002',
	0x03: '\u0003',
	0x04: '\u0004',
	0x05: '\u0005',
	0x06: '\u0006',
	0x07: '\u0007',
	0x08: '\u0008',
	0x09: '\u0009',
	0x0a: '\u000a',
	0x0b: '\u000b',
	0x0c: '\u000c',
	0x0d: '\u000d',
	0x0e: '\u000e',
	0x0f: '\u000f',
	0x10: '\u0010',
	0x11: '\u0011',
	0x12: '\u0012',
	0x13: '\u0013',
	0x14: '\u0014',
	0x15: '\u0015',
	0x16: '\u0016',
	0x17: '\u0017',
	0x18: '˘', // breve
	0x19: 'ˇ', // caron
	0x1a: 'ˆ', // circumflex
	0x1b: '˙', // dotaccent
	0x1c: '˝', // hungarumlaut
	0x1d: '˛', // ogonek
	0x1e: '˚', // ring
	0x1f: '˜', // tilde
	0x20: ' ',
	0x21: '!',
	0x22: '"',
	0x23: '#',
	0x24: '$',
	0x25: '%',
	0x26: '&',
	0x27: '\'',
	0x28: '(',
	0x29: ')',
	0x2a: '*',
	0x2b: '+',
	0x2c: ',',
	0x2d: '-',
	0x2e: '.',
	0x2f: '/',
	0x30: '0',
	0x31: '1',
	0x32: '2',
	0x33: '3',
	0x34: '4',
	0x35: '5',
	0x36: '6',
	0x37: '7',
	0x38: '8',
	0x39: '9',
	0x3a: ':',
	0x3b: ';',
	0x3c: '<',
	0x3d: '=',
	0x3e: '>',
	0x3f: '?',
	0x40: '@',
	0x41: 'A',
	0x42: 'B',
	0x43: 'C',
	0x44: 'D',
	0x45: 'E',
	0x46: 'F',
	0x47: 'G',
	0x48: 'H',
	0x49: 'I',
	0x4a: 'J',
	0x4b: 'K',
	0x4c: 'L',
	0x4d: 'M',
	0x4e: 'N',
	0x4f: 'O',
	0x50: 'P',
	0x51: 'Q',
	0x52: 'R',
	0x53: 'S',
	0x54: 'T',
	0x55: 'U',
	0x56: 'V',
	0x57: 'W',
	0x58: 'X',
	0x59: 'Y',
	0x5a: 'Z',
	0x5b: '[',
	0x5c: '\\',
	0x5d: ']',
	0x5e: '^',
	0x5f: '_',
	0x60: '`',
	0x61: 'a',
	0x62: 'b',
	0x63: 'c',
	0x64: 'd',
	0x65: 'e',
	0x66: 'f',
	0x67: 'g',
	0x68: 'h',
	0x69: 'i',
	0x6a: 'j',
	0x6b: 'k',
	0x6c: 'l',
	0x6d: 'm',
	0x6e: 'n',
	0x6f: 'o',
	0x70: 'p',
	0x71: 'q',
	0x72: 'r',
	0x73: 's',
	0x74: 't',
	0x75: 'u',
	0x76: 'v',
	0x77: 'w',
	0x78: 'x',
	0x79: 'y',
	0x7a: 'z',
	0x7b: '{',
	0x7c: '|',
	0x7d: '}',
	0x7e: '~',
	0x80: '•', // bullet
	0x81: '†', // dagger
	0x82: '‡', // daggerdbl
	0x83: '…', // ellipsis
	0x84: '—', // emdash
	0x85: '–', // endash
	0x86: 'ƒ', // florin
	0x87: '⁄', // fraction
	0x88: '‹', // guilsinglleft
	0x89: '›', // guilsinglright
	0x8a: '−', // minus
	0x8b: '‰', // perthousand
	0x8c: '„', // quotedblbase
	0x8d: '“', // quotedblleft
	0x8e: '”', // quotedblright
	0x8f: '‘', // quoteleft
	0x90: '’', // quoteright
	0x91: '‚', // quotesinglbase
	0x92: '™', // trademark
	0x93: 'ﬁ', // fi
	0x94: 'ﬂ', // fl
	0x95: 'Ł', // Lslash
	0x96: 'Œ', // OE
	0x97: 'Š', // Scaron
	0x98: 'Ÿ', // Ydieresis
	0x99: 'Ž', // Zcaron
	0x9a: 'ı', // dotlessi
	0x9b: 'ł', // lslash
	0x9c: 'œ', // oe
	0x9d: 'š', // scaron
	0x9e: 'ž', // zcaron
	0xa0: '€', // Euro
	0xa1: '¡',
	0xa2: '¢',
	0xa3: '£',
	0xa4: '¤',
	0xa5: '¥',
	0xa6: '¦',
	0xa7: '§',
	0xa8: '¨',
	0xa9: '©',
	0xaa: 'ª',
	0xab: '«',
	0xac: '¬',
	0xae: '®',
	0xaf: '¯',
	0xb0: '°',
	0xb1: '±',
	0xb2: '²',
	0xb3: '³',
	0xb4: '´',
	0xb5: 'µ',
	0xb6: '¶',
	0xb7: '·',
	0xb8: '¸',
	0xb9: '¹',
	0xba: 'º',
	0xbb: '»',
	0xbc: '¼',
	0xbd: '½',
	0xbe: '¾',
	0xbf: '¿',
	0xc0: 'À',
	0xc1: 'Á',
	0xc2: 'Â',
	0xc3: 'Ã',
	0xc4: 'Ä',
	0xc5: 'Å',
	0xc6: 'Æ',
	0xc7: 'Ç',
	0xc8: 'È',
	0xc9: 'É',
	0xca: 'Ê',
	0xcb: 'Ë',
	0xcc: 'Ì',
	0xcd: 'Í',
	0xce: 'Î',
	0xcf: 'Ï',
	0xd0: 'Ð',
	0xd1: 'Ñ',
	0xd2: 'Ò',
	0xd3: 'Ó',
	0xd4: 'Ô',
	0xd5: 'Õ',
	0xd6: 'Ö',
	0xd7: '×',
	0xd8: 'Ø',
	0xd9: 'Ù',
	0xda: 'Ú',
	0xdb: 'Û',
	0xdc: 'Ü',
	0xdd: 'Ý',
	0xde: 'Þ',
	0xdf: 'ß',
	0xe0: 'à',
	0xe1: 'á',
	0xe2: 'â',
	0xe3: 'ã',
	0xe4: 'ä',
	0xe5: 'å',
	0xe6: 'æ',
	0xe7: 'ç',
	0xe8: 'è',
	0xe9: 'é',
	0xea: 'ê',
	0xeb: 'ë',
	0xec: 'ì',
	0xed: 'í',
	0xee: 'î',
	0xef: 'ï',
	0xf0: 'ð',
	0xf1: 'ñ',
	0xf2: 'ò',
	0xf3: 'ó',
	0xf4: 'ô',
	0xf5: 'õ',
	0xf6: 'ö',
	0xf7: '÷',
	0xf8: 'ø',
	0xf9: 'ù',
	0xfa: 'ú',
	0xfb: 'û',
	0xfc: 'ü',
	0xfd: 'ý',
	0xfe: 'þ',
	0xff: 'ÿ',
}

var pdfDocEncodingRuneMap map[rune]byte

func init() {
	pdfDocEncodingRuneMap = make(map[rune]byte, len(pdfDocEncoding))
	for b, r := range pdfDocEncoding {
		pdfDocEncodingRuneMap[r] = b
	}
}

// PdfDocEncodingToString decodes a PDFDocEncoded byte slice to a unicode string.
func PdfDocEncodingToString(b []byte) string {
	runes := make([]rune, 0, len(b))
	for _, bval := range b {
		r, has := pdfDocEncoding[bval]
		if !has {
			continue
		}
		runes = append(runes, r)
	}
	return string(runes)
}

// stringToPDFDocEncoding encodes a go string to PDFDocEncoding, reporting
// an error if a rune has no PDFDocEncoding representation.
func stringToPDFDocEncoding(s string) ([]byte, error) {
	var buf bytes.Buffer
	for _, r := range s {
		b, has := pdfDocEncodingRuneMap[r]
		if !has {
			return nil, fmt.Errorf("rune %q has no PDFDocEncoding representation", r)
		}
		buf.WriteByte(b)
	}
	return buf.Bytes(), nil
}
