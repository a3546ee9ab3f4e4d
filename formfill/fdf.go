// Package formfill provides support for filling the values of forms found
// in a PDF document (aka AcroForm), building the updated appearance streams.
package formfill

import (
	"strconv"

	"github.com/agnivon/pdfkit/model"
)

type FDFValue interface {
	isFDFValue()
}

func (FDFName) isFDFValue()    {}
func (FDFText) isFDFValue()    {}
func (FDFChoices) isFDFValue() {}

// FDFName is the value of a field with type `Btn`
type FDFName model.ObjName

// FDFText is the value of a field with type `Tx`
type FDFText string

// FDFChoices is the value of field with type `Ch`
type FDFChoices []string

type Values struct {
	V  FDFValue
	RV string
}

type FDFField struct {
	Values
	Kids []FDFField
	T    string // partial field name
}

// FDFDict is the FDF entry of an FDF file catalog.
type FDFDict struct {
	Fields []FDFField
}

// walk the tree and construct the full names
func (f FDFDict) resolve() map[string]Values {
	out := map[string]Values{}
	var walk func(FDFField, string, int)
	walk = func(fi FDFField, parentName string, index int) {
		name := fi.T
		if fi.T == "" {
			name = strconv.Itoa(index)
		}
		fullName := parentName + "." + name
		if parentName == "" { // exception for the root elements
			fullName = name
		}
		if fi.V != nil || fi.RV != "" {
			out[fullName] = fi.Values
		}
		for index, kid := range fi.Kids {
			walk(kid, fullName, index)
		}
	}
	for index, rootField := range f.Fields {
		walk(rootField, "", index)
	}
	return out
}

// FillForm fills the AcroForm contained in the document
// using the values in `fdf`, building the widgets' appearance streams.
// If `lockForm` is true, all the fields are set ReadOnly (even the ones not filled).
func FillForm(doc *model.Document, fdf FDFDict, lockForm bool) error {
	filler := newFiller()
	return filler.fillForm(&doc.Catalog.AcroForm, fdf, lockForm)
}
