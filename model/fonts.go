package model

import (
	"fmt"
	"sort"
)

// FontDict is a PDF font dictionary: either one of the three Simple font
// kinds (Type1, TrueType, Type3) or a composite (Type0) font.
type FontDict struct {
	Subtype   FontType
	ToUnicode *UnicodeCMap // optional, maps character codes to Unicode
}

func (*FontDict) IsReferenceable() {}

func (f *FontDict) pdfContent(pdf pdfWriter, _ Reference) (string, []byte) {
	return f.Subtype.fontPDFString(pdf), nil
}

func (f *FontDict) clone(cache cloneCache) Referenceable {
	if f == nil {
		return f
	}
	out := *f
	out.Subtype = f.Subtype.cloneFontType(cache)
	if f.ToUnicode != nil {
		cm := f.ToUnicode.Clone()
		out.ToUnicode = &cm
	}
	return &out
}

// FontType is one of FontType0, FontType1, FontTrueType, FontType3.
type FontType interface {
	isFontType()
	fontPDFString(pdf pdfWriter) string
	cloneFontType(cache cloneCache) FontType
}

// Font is an alias of FontType, kept for callers matching font subtypes
// against the dictionary's /Subtype entry.
type Font = FontType

// FontSimple is implemented by the three simple font subtypes,
// as opposed to the composite FontType0.
type FontSimple interface {
	FontType
	isFontSimple()
}

func (FontType0) isFontType()    {}
func (FontType1) isFontType()    {}
func (FontType3) isFontType()    {}
func (FontTrueType) isFontType() {}

func (FontType1) isFontSimple()    {}
func (FontType3) isFontSimple()    {}
func (FontTrueType) isFontSimple() {}

type FontType1 struct {
	BaseFont            Name
	FirstChar, LastChar byte
	Widths              []int // length (LastChar − FirstChar + 1), index i is char FirstChar + i
	FontDescriptor      FontDescriptor
	Encoding            SimpleEncoding // optional
}

func (f FontType1) fontPDFString(pdf pdfWriter) string {
	return simpleFontPDFString(pdf, "Type1", f.BaseFont, f.FirstChar, f.Widths, f.FontDescriptor, f.Encoding)
}

func (f FontType1) cloneFontType(cache cloneCache) FontType {
	out := f
	out.Widths = append([]int(nil), f.Widths...)
	out.FontDescriptor = f.FontDescriptor.clone(cache)
	out.Encoding = cloneSimpleEncoding(f.Encoding, cache)
	return out
}

// TrueType fonts share the layout of Type1 fonts.
type FontTrueType FontType1

func (f FontTrueType) fontPDFString(pdf pdfWriter) string {
	return simpleFontPDFString(pdf, "TrueType", f.BaseFont, f.FirstChar, f.Widths, f.FontDescriptor, f.Encoding)
}

func (f FontTrueType) cloneFontType(cache cloneCache) FontType {
	return FontTrueType(FontType1(f).cloneFontType(cache).(FontType1))
}

type FontType3 struct {
	FontBBox            Rectangle
	FontMatrix          Matrix
	CharProcs           map[Name]ContentStream
	Encoding            SimpleEncoding
	FirstChar, LastChar byte
	Widths              []int
	FontDescriptor      *FontDescriptor // optional: built from FontBBox when absent
	Resources           ResourcesDict
}

func (f FontType3) fontPDFString(pdf pdfWriter) string {
	b := newBuffer()
	b.fmt("<</Type/Font/Subtype/Type3/FontBBox %s", f.FontBBox.PDFstring())
	if (f.FontMatrix != Matrix{}) {
		b.fmt("/FontMatrix %s", f.FontMatrix)
	} else {
		b.WriteString("/FontMatrix [0.001 0 0 0.001 0 0]")
	}
	b.WriteString("/CharProcs <<")
	for name, cs := range f.CharProcs {
		ref := pdf.addItem(&xobjectFormForCharProc{cs, f.Resources})
		b.fmt("%s %s", name, ref)
	}
	b.WriteString(">>")
	if f.Resources.isEmpty() {
	} else {
		b.fmt("/Resources %s", f.Resources.pdfString(pdf))
	}
	writeSimpleFontFields(b, f.FirstChar, f.Widths, f.FontDescriptor, f.Encoding, pdf)
	b.WriteString(">>")
	return b.String()
}

func (f FontType3) cloneFontType(cache cloneCache) FontType {
	out := f
	out.Widths = append([]int(nil), f.Widths...)
	if f.FontDescriptor != nil {
		d := f.FontDescriptor.clone(cache)
		out.FontDescriptor = &d
	}
	out.Encoding = cloneSimpleEncoding(f.Encoding, cache)
	out.Resources = f.Resources.clone(cache)
	if f.CharProcs != nil {
		out.CharProcs = make(map[Name]ContentStream, len(f.CharProcs))
		for k, v := range f.CharProcs {
			out.CharProcs[k] = v.Clone()
		}
	}
	return out
}

// xobjectFormForCharProc wraps a Type3 glyph procedure as a minimal Form
// XObject so it can be written through the ordinary indirect-object path.
type xobjectFormForCharProc struct {
	content   ContentStream
	resources ResourcesDict
}

func (*xobjectFormForCharProc) IsReferenceable() {}

func (c *xobjectFormForCharProc) pdfContent(pdf pdfWriter, _ Reference) (string, []byte) {
	return fmt.Sprintf("<<%s>>", c.content.PDFCommonFields()), c.content.Content
}

func (c *xobjectFormForCharProc) clone(cache cloneCache) Referenceable {
	if c == nil {
		return c
	}
	out := *c
	out.content = c.content.Clone()
	return &out
}

func simpleFontPDFString(pdf pdfWriter, subtype Name, baseFont Name, firstChar byte, widths []int, desc FontDescriptor, enc SimpleEncoding) string {
	b := newBuffer()
	b.fmt("<</Type/Font/Subtype/%s", subtype)
	if baseFont != "" {
		b.fmt("/BaseFont %s", baseFont)
	}
	writeSimpleFontFields(b, firstChar, widths, &desc, enc, pdf)
	b.WriteString(">>")
	return b.String()
}

func writeSimpleFontFields(b buffer, firstChar byte, widths []int, desc *FontDescriptor, enc SimpleEncoding, pdf pdfWriter) {
	if len(widths) != 0 {
		b.fmt("/FirstChar %d/LastChar %d/Widths %s", firstChar, int(firstChar)+len(widths)-1, writeIntArray(widths))
	}
	if desc != nil {
		ref := pdf.addObject(desc.pdfString(pdf))
		b.fmt("/FontDescriptor %s", ref)
	}
	if enc != nil {
		b.fmt("/Encoding %s", enc.encodingPDFString(pdf))
	}
}

type FontFlag uint32

const (
	FixedPitch  FontFlag = 1
	Serif       FontFlag = 1 << 2
	Symbolic    FontFlag = 1 << 3
	Script      FontFlag = 1 << 4
	Nonsymbolic FontFlag = 1 << 6
	Italic      FontFlag = 1 << 7
	AllCap      FontFlag = 1 << 17
	SmallCap    FontFlag = 1 << 18
	ForceBold   FontFlag = 1 << 19
)

// FontDescriptor gathers the metrics and attributes shared by every glyph
// of a font.
type FontDescriptor struct {
	FontName        Name
	FontFamily      string
	Flags           uint32
	FontBBox        Rectangle
	ItalicAngle     int
	Ascent, Descent Fl
	Leading         Fl
	CapHeight       Fl
	XHeight         Fl
	StemV, StemH    Fl
	AvgWidth        Fl
	MaxWidth        Fl
	MissingWidth    int
	FontFile        *FontFile // optional, embedded font program
}

func (d FontDescriptor) pdfString(pdf pdfWriter) string {
	b := newBuffer()
	b.fmt("<</Type/FontDescriptor/FontName %s/Flags %d/FontBBox %s/ItalicAngle %d",
		d.FontName, d.Flags, d.FontBBox.PDFstring(), d.ItalicAngle)
	b.fmt("/Ascent %.3f/Descent %.3f/CapHeight %.3f/StemV %.3f", d.Ascent, d.Descent, d.CapHeight, d.StemV)
	if d.Leading != 0 {
		b.fmt("/Leading %.3f", d.Leading)
	}
	if d.XHeight != 0 {
		b.fmt("/XHeight %.3f", d.XHeight)
	}
	if d.StemH != 0 {
		b.fmt("/StemH %.3f", d.StemH)
	}
	if d.AvgWidth != 0 {
		b.fmt("/AvgWidth %.3f", d.AvgWidth)
	}
	if d.MaxWidth != 0 {
		b.fmt("/MaxWidth %.3f", d.MaxWidth)
	}
	if d.MissingWidth != 0 {
		b.fmt("/MissingWidth %d", d.MissingWidth)
	}
	if d.FontFile != nil {
		ref := pdf.addItem(d.FontFile)
		key := Name("FontFile3")
		if d.FontFile.Subtype == "" {
			key = "FontFile2"
		}
		b.fmt("/%s %s", key, ref)
	}
	b.WriteString(">>")
	return b.String()
}

func (d FontDescriptor) clone(cache cloneCache) FontDescriptor {
	out := d
	if d.FontFile != nil {
		out.FontFile = cache.checkOrClone(d.FontFile).(*FontFile)
	}
	return out
}

// FontFile is an embedded font program, as found in a font descriptor
// /FontFile, /FontFile2 or /FontFile3 entry. Subtype disambiguates the
// /FontFile3 flavours (such as "Type1C" or "OpenType"); it is left empty
// for TrueType programs (/FontFile2).
type FontFile struct {
	Stream

	Subtype Name // optional
}

func (*FontFile) IsReferenceable() {}

func (f *FontFile) pdfContent(pdf pdfWriter, _ Reference) (string, []byte) {
	if f.Subtype != "" {
		return fmt.Sprintf("<</Subtype %s %s>>", f.Subtype, f.Stream.PDFCommonFields(true)), f.Content
	}
	return f.Stream.PDFContent()
}

func (f *FontFile) clone(cache cloneCache) Referenceable {
	if f == nil {
		return f
	}
	out := *f
	out.Stream = f.Stream.Clone()
	return &out
}

// Decode returns the FontFile's content, applying its stream filters.
func (f *FontFile) Decode() ([]byte, error) {
	return f.Stream.Decode()
}

// SimpleEncoding is either a predefined encoding name or an explicit
// base-encoding-plus-differences dictionary, used by the simple font types.
type SimpleEncoding interface {
	isSimpleEncoding()
	encodingPDFString(pdf pdfWriter) string
}

func (SimpleEncodingPredefined) isSimpleEncoding() {}
func (*SimpleEncodingDict) isSimpleEncoding()      {}

func (e SimpleEncodingPredefined) encodingPDFString(pdfWriter) string { return Name(e).String() }

func (e *SimpleEncodingDict) encodingPDFString(pdf pdfWriter) string {
	ref := pdf.addItem(e)
	return ref.String()
}

func cloneSimpleEncoding(e SimpleEncoding, cache cloneCache) SimpleEncoding {
	switch e := e.(type) {
	case nil:
		return nil
	case SimpleEncodingPredefined:
		return e
	case *SimpleEncodingDict:
		return cache.checkOrClone(e).(*SimpleEncodingDict)
	default:
		return nil
	}
}

type SimpleEncodingPredefined Name

const (
	MacRomanEncoding  SimpleEncodingPredefined = "MacRomanEncoding"
	MacExpertEncoding SimpleEncodingPredefined = "MacExpertEncoding"
	WinAnsiEncoding   SimpleEncodingPredefined = "WinAnsiEncoding"
)

// Differences describes the differences from the encoding specified by BaseEncoding
// It is written in a PDF file as a more condensed form: it's an array:
//
//	[ code1, name1_1, name1_2, code2, name2_1, name2_2, name2_3 ... ]
type Differences map[byte]Name

// Apply merges the differences over `base` (indexed by char code),
// returning the resulting glyph names.
func (d Differences) Apply(base [256]string) [256]string {
	out := base
	for code, name := range d {
		out[code] = string(name)
	}
	return out
}

// PDFString renders the differences as a PDF array, grouping
// consecutive codes sharing a run of names under a single starting code.
func (d Differences) PDFString() string {
	if len(d) == 0 {
		return "[]"
	}
	codes := make([]int, 0, len(d))
	for c := range d {
		codes = append(codes, int(c))
	}
	sort.Ints(codes)
	b := newBuffer()
	b.WriteString("[")
	last := -2
	for _, c := range codes {
		if c != last+1 {
			b.fmt(" %d", c)
		}
		b.fmt("%s", d[byte(c)])
		last = c
	}
	b.WriteString("]")
	return b.String()
}

func (d Differences) clone() Differences {
	if d == nil {
		return nil
	}
	out := make(Differences, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

type SimpleEncodingDict struct {
	BaseEncoding Name        // optionnal
	Differences  Differences // optionnal
}

func (*SimpleEncodingDict) IsReferenceable() {}

func (e *SimpleEncodingDict) pdfContent(pdf pdfWriter, _ Reference) (string, []byte) {
	b := newBuffer()
	b.WriteString("<</Type/Encoding")
	if e.BaseEncoding != "" {
		b.fmt("/BaseEncoding %s", e.BaseEncoding)
	}
	if len(e.Differences) != 0 {
		b.fmt("/Differences %s", e.Differences.PDFString())
	}
	b.WriteString(">>")
	return b.String(), nil
}

func (e *SimpleEncodingDict) clone(cloneCache) Referenceable {
	if e == nil {
		return e
	}
	out := *e
	out.Differences = e.Differences.clone()
	return &out
}

// ----------------------- composite (Type0) fonts -----------------------

// CIDSystemInfo identifies the character collection of a CIDFont.
type CIDSystemInfo struct {
	Registry   string
	Ordering   string
	Supplement int
}

// ToUnicodeCMapName returns the name of the predefined CMap mapping this
// character collection to Unicode, following the Registry-Ordering-UCS2
// naming convention used by the standard predefined CMaps.
func (c CIDSystemInfo) ToUnicodeCMapName() Name {
	return Name(c.Registry + "-" + c.Ordering + "-UCS2")
}

func (c CIDSystemInfo) pdfString(PDFWritter, Reference) string {
	return fmt.Sprintf("<</Registry %s/Ordering %s/Supplement %d>>",
		EscapeByteString([]byte(c.Registry)), EscapeByteString([]byte(c.Ordering)), c.Supplement)
}

// CIDFontDict is the single descendant font of a FontType0 composite font.
type CIDFontDict struct {
	Subtype        Name // CIDFontType0 or CIDFontType2
	CIDSystemInfo  CIDSystemInfo
	FontDescriptor FontDescriptor
	DW             int // optional, default 1000
	W              map[CID]int
}

func (d CIDFontDict) clone(cache cloneCache) CIDFontDict {
	out := d
	out.FontDescriptor = d.FontDescriptor.clone(cache)
	if d.W != nil {
		out.W = make(map[CID]int, len(d.W))
		for k, v := range d.W {
			out.W[k] = v
		}
	}
	return out
}

// FontType0 is a composite font, combining an Encoding CMap (mapping byte
// strings to CIDs) with one descendant CIDFont (providing glyph metrics).
type FontType0 struct {
	BaseFont        Name
	Encoding        CMapEncoding // predefined CMap name, or an embedded CMap
	DescendantFonts CIDFontDict
}

func (f FontType0) fontPDFString(pdf pdfWriter) string {
	descRef := pdf.addObject(cidFontDictPDFString(pdf, f.DescendantFonts))
	b := newBuffer()
	b.fmt("<</Type/Font/Subtype/Type0/BaseFont %s/Encoding %s/DescendantFonts [%s]",
		f.BaseFont, f.Encoding.cmapEncodingPDFString(pdf), descRef)
	b.WriteString(">>")
	return b.String()
}

func cidFontDictPDFString(pdf pdfWriter, d CIDFontDict) string {
	b := newBuffer()
	b.fmt("<</Type/Font/Subtype/%s/BaseFont %s/CIDSystemInfo %s",
		d.Subtype, d.FontDescriptor.FontName, d.CIDSystemInfo.pdfString(pdf, 0))
	ref := pdf.addObject(d.FontDescriptor.pdfString(pdf))
	b.fmt("/FontDescriptor %s", ref)
	if d.DW != 0 && d.DW != 1000 {
		b.fmt("/DW %d", d.DW)
	}
	if len(d.W) != 0 {
		b.fmt("/W %s", writeCIDWidths(d.W))
	}
	b.WriteString(">>")
	return b.String()
}

func writeCIDWidths(w map[CID]int) string {
	cids := make([]int, 0, len(w))
	for c := range w {
		cids = append(cids, int(c))
	}
	sort.Ints(cids)
	b := newBuffer()
	b.WriteString("[")
	for _, c := range cids {
		b.fmt("%d [%d]", c, w[CID(c)])
	}
	b.WriteString("]")
	return b.String()
}

func (f FontType0) cloneFontType(cache cloneCache) FontType {
	out := f
	out.Encoding = cloneCMapEncoding(f.Encoding, cache)
	out.DescendantFonts = f.DescendantFonts.clone(cache)
	return out
}

// CMapEncoding is either a predefined CMap name (such as Identity-H) or an
// embedded CMap stream, used in a Type0 font's /Encoding entry.
type CMapEncoding interface {
	cmapEncodingPDFString(pdf pdfWriter) string
}

func (n PredefinedCMapEncoding) cmapEncodingPDFString(pdfWriter) string { return Name(n).String() }

func (cm *UnicodeCMap) cmapEncodingPDFString(pdf pdfWriter) string {
	ref := pdf.addItem(cm)
	return ref.String()
}

func cloneCMapEncoding(c CMapEncoding, cache cloneCache) CMapEncoding {
	switch c := c.(type) {
	case nil:
		return nil
	case PredefinedCMapEncoding:
		return c
	case *UnicodeCMap:
		return cache.checkOrClone(c).(*UnicodeCMap)
	default:
		return nil
	}
}

type PredefinedCMapEncoding Name

const (
	IdentityH PredefinedCMapEncoding = "Identity-H"
	IdentityV PredefinedCMapEncoding = "Identity-V"
)

// UnicodeCMapUse is either an embedded UnicodeCMap or a predefined CMap
// base, as found in a CMap stream's /UseCMap entry.
type UnicodeCMapUse interface {
	isUnicodeCMapUse()
}

func (UnicodeCMap) isUnicodeCMapUse()               {}
func (UnicodeCMapBasePredefined) isUnicodeCMapUse() {}

// UnicodeCMap is an embedded CMap stream, used either as the /Encoding of a
// Type0 font or as the /ToUnicode entry of any font.
type UnicodeCMap struct {
	Stream

	UseCMap UnicodeCMapUse // optional
}

func (*UnicodeCMap) IsReferenceable() {}

func (cm *UnicodeCMap) pdfContent(pdf pdfWriter, _ Reference) (string, []byte) {
	b := newBuffer()
	b.fmt("<</Type/CMap %s", cm.Stream.PDFCommonFields(true))
	switch use := cm.UseCMap.(type) {
	case UnicodeCMapBasePredefined:
		b.fmt("/UseCMap %s", Name(use))
	case UnicodeCMap:
		ref := pdf.addItem(&use)
		b.fmt("/UseCMap %s", ref)
	}
	b.WriteString(">>")
	return b.String(), cm.Content
}

func (cm *UnicodeCMap) clone(cache cloneCache) Referenceable {
	out := cm.Clone()
	return &out
}

func (cm UnicodeCMap) Clone() UnicodeCMap {
	out := cm
	out.Stream = cm.Stream.Clone()
	return out
}

// Decode returns the CMap's content, applying its stream filters.
func (cm UnicodeCMap) Decode() ([]byte, error) {
	return cm.Stream.Decode()
}

// UnicodeCMapBasePredefined names one of the predefined CMaps, used as the
// base of an embedded CMap's /UseCMap entry.
type UnicodeCMapBasePredefined Name
