package cmapparser

import "github.com/agnivon/pdfkit/model"

type cmapObject interface {
}

type cmapOperand string

// cmapHexString represents a PostScript hex string such as <FFFF>
type cmapHexString []byte

type cmapArray = []cmapObject

type cmapDict = map[model.Name]cmapObject
