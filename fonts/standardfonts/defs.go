package standardfonts

import (
	"log"

	"github.com/agnivon/pdfkit/fonts/simpleencodings"
	"github.com/agnivon/pdfkit/fonts/type1"
	"github.com/agnivon/pdfkit/model"
)

// Metrics provide metrics for Type1 fonts (such as the predefined 14).
// Such metrics are usually extracted from .afm files.
// PDF writers may need the KernPairs entry to support font kerning.
type Metrics struct {
	Descriptor model.FontDescriptor
	Builtin    [256]string // builtin encoding
	// CharsWidths gives all the characters supported
	// by the font, and their widths.
	// It can be used to change the encoding, see `WidthsWithEncoding`.
	CharsWidths map[string]int

	// Represents the section KernPairs in the AFM file. The key is
	// the name of the first character and the value is an array of each kern pair.
	// Not populated for the builtin 14 fonts : their generated source has no kerning data.
	KernPairs map[string][]type1.KernPair
}

// KernsWithEncoding uses the given encoding (byte to name)
// and the available KernPairs field to build a condensed map of kerns,
// to be used with the encoding.
func (m Metrics) KernsWithEncoding(encoding [256]string) map[uint16]int {
	nameToByte := make(map[string]byte, 256)
	for b, name := range encoding {
		if name != "" {
			nameToByte[name] = byte(b)
		}
	}
	out := make(map[uint16]int)
	for b, name := range encoding {
		if name == "" || name == ".notdef" {
			continue
		}
		for _, kern := range m.KernPairs[name] {
			if b2, ok := nameToByte[kern.SndChar]; ok {
				key := uint16(b)<<8 | uint16(b2)
				out[key] = kern.KerningDistance
			}
		}
	}
	return out
}

// WidthsWithEncoding uses the given encoding (byte to name)
// to generate a compatible Widths array.
// An encoding can be the builtin encoding, a predefined encoding
// or one obtained by applying a differences map.
// `widths` is an array of (lastChar − firstChar + 1) widths (that is, lastChar = firstChar + len(widths) - 1).
// Each element is the glyph width for the character code that equals
// `firstChar` plus the array index.
func (m Metrics) WidthsWithEncoding(encoding [256]string) (firstChar byte, widths []int) {
	var lastChar byte
	firstChar = 255
	for code, name := range encoding {
		if name == "" || name == ".notdef" {
			continue
		}
		if byte(code) < firstChar {
			firstChar = byte(code)
		}
		if byte(code) > lastChar {
			lastChar = byte(code)
		}
	}
	widths = make([]int, lastChar-firstChar+1)
	for code, name := range encoding {
		if name == "" || name == ".notdef" {
			continue
		}
		width, ok := m.CharsWidths[name]
		if !ok {
			log.Printf("unsupported glyph name : %s", name)
		}
		index := code - int(firstChar)
		widths[index] = width
	}
	return firstChar, widths
}

// WesternType1Font returns a version of the font using WinAnsi encoding
// (except for Symbol and ZapfDingbats, which keep their builtin encoding).
func (m Metrics) WesternType1Font() model.FontType1 {
	if m.Descriptor.FontName == "ZapfDingbats" || m.Descriptor.FontName == "Symbol" {
		f, w := m.WidthsWithEncoding(m.Builtin)
		return model.FontType1{
			FirstChar:      f,
			Widths:         w,
			FontDescriptor: m.Descriptor,
			BaseFont:       m.Descriptor.FontName,
		}
	}

	f, w := m.WidthsWithEncoding(simpleencodings.WinAnsi.Names)
	return model.FontType1{
		FirstChar:      f,
		Widths:         w,
		FontDescriptor: m.Descriptor,
		BaseFont:       m.Descriptor.FontName,
		Encoding:       model.WinAnsiEncoding,
	}
}

// fromWinAnsi rebuilds the (Builtin, CharsWidths) pair of a Western font
// from its WinAnsi-ordered generated widths: the generated arrays are indexed
// by WinAnsi code point, starting at FirstChar, so the glyph name for slot i
// is simpleencodings.WinAnsi.Names[int(g.FirstChar)+i].
func fromWinAnsi(g generatedMetrics) Metrics {
	charsWidths := make(map[string]int, len(g.Widths))
	var builtin [256]string
	for i, w := range g.Widths {
		code := int(g.FirstChar) + i
		if code > 255 {
			break
		}
		name := simpleencodings.WinAnsi.Names[code]
		if name == "" || name == ".notdef" || w == 0 {
			continue
		}
		builtin[code] = name
		charsWidths[name] = w
	}
	return Metrics{Descriptor: g.Descriptor, Builtin: builtin, CharsWidths: charsWidths}
}

// fromSymbolic rebuilds the (Builtin, CharsWidths) pair of a symbolic font
// (Symbol, ZapfDingbats) from its generated widths, using the entries of
// `names` that have a width as the font's own builtin encoding.
func fromSymbolic(g generatedMetrics, names [256]string) Metrics {
	charsWidths := make(map[string]int, len(g.Widths))
	var builtin [256]string
	for i, w := range g.Widths {
		code := int(g.FirstChar) + i
		if code > 255 {
			break
		}
		name := names[code]
		if name == "" || w == 0 {
			continue
		}
		builtin[code] = name
		charsWidths[name] = w
	}
	return Metrics{Descriptor: g.Descriptor, Builtin: builtin, CharsWidths: charsWidths}
}

var (
	Courier_Bold          = fromWinAnsi(genCourier_Bold)
	Courier_BoldOblique   = fromWinAnsi(genCourier_BoldOblique)
	Courier_Oblique       = fromWinAnsi(genCourier_Oblique)
	Courier               = fromWinAnsi(genCourier)
	Helvetica_Bold        = fromWinAnsi(genHelvetica_Bold)
	Helvetica_BoldOblique = fromWinAnsi(genHelvetica_BoldOblique)
	Helvetica_Oblique     = fromWinAnsi(genHelvetica_Oblique)
	Helvetica             = fromWinAnsi(genHelvetica)
	Times_Bold            = fromWinAnsi(genTimes_Bold)
	Times_BoldItalic      = fromWinAnsi(genTimes_BoldItalic)
	Times_Italic          = fromWinAnsi(genTimes_Italic)
	Times_Roman           = fromWinAnsi(genTimes_Roman)

	// ZapfDingbats keeps its own symbolic encoding.
	ZapfDingbats = fromSymbolic(genZapfDingbats, simpleencodings.ZapfDingbatsNames)

	// Symbol has no dedicated name table in this package; its generated
	// widths are reused positionally (code point as pseudo glyph name),
	// which round-trips to the same FirstChar/Widths through
	// WidthsWithEncoding without inventing glyph semantics.
	Symbol = fromSymbolic(genSymbol, symbolPseudoNames)
)

var symbolPseudoNames = func() (names [256]string) {
	for code := range names {
		names[code] = symbolPseudoName(code)
	}
	return names
}()

func symbolPseudoName(code int) string {
	const hex = "0123456789abcdef"
	return string([]byte{'g', hex[code>>4], hex[code&0xf]})
}

// Fonts is a convenient mapping from a font name to its descriptor.
var Fonts = map[string]Metrics{
	"Courier-Bold":          Courier_Bold,
	"Courier-BoldOblique":   Courier_BoldOblique,
	"Courier-Oblique":       Courier_Oblique,
	"Courier":               Courier,
	"Helvetica-Bold":        Helvetica_Bold,
	"Helvetica-BoldOblique": Helvetica_BoldOblique,
	"Helvetica-Oblique":     Helvetica_Oblique,
	"Helvetica":             Helvetica,
	"Symbol":                Symbol,
	"Times-Bold":            Times_Bold,
	"Times-BoldItalic":      Times_BoldItalic,
	"Times-Italic":          Times_Italic,
	"Times-Roman":           Times_Roman,
	"ZapfDingbats":          ZapfDingbats,
}
