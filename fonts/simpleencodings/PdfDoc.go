package simpleencodings

import "github.com/agnivon/pdfkit/model"

// PdfDoc is the PdfDoc encoding.
// It should not be used in fonts, but
// is exposed here for the sake of completeness.
var PdfDoc = Encoding{
	Names: model.PdfDocNames,
	Runes: model.PdfDocRunes,
}
