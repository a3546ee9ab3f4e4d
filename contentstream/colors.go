package contentstream

import (
	"fmt"
	"image/color"

	"github.com/agnivon/pdfkit/model"
)

// return the more precise representation of the color
func colorToArray(col color.Color) []Fl {
	switch col := col.(type) {
	case color.Gray:
		return []Fl{Fl(col.Y) / 255}
	case color.Gray16:
		return []Fl{Fl(col.Y) / 0xFFFF}
	case color.RGBA:
		return []Fl{Fl(col.R) / Fl(col.A), Fl(col.G) / Fl(col.A), Fl(col.B) / Fl(col.A)}
	case color.RGBA64:
		return []Fl{Fl(col.R) / Fl(col.A), Fl(col.G) / Fl(col.A), Fl(col.B) / Fl(col.A)}
	case color.NRGBA:
		return []Fl{Fl(col.R) / 255, Fl(col.G) / 255, Fl(col.B) / 255}
	case color.NRGBA64:
		return []Fl{Fl(col.R) / 0xFFFF, Fl(col.G) / 0xFFFF, Fl(col.B) / 0xFFFF}
	case color.CMYK:
		return []Fl{Fl(col.C) / 255, Fl(col.M) / 255, Fl(col.Y) / 255, Fl(col.K) / 255}
	default: // default to interface method
		r, g, b := colorRGB(col)
		return []Fl{r, g, b}
	}
}

func clamp(ch, a uint32) Fl {
	if ch < 0 {
		return 0
	}
	if ch > a {
		return 1
	}
	return Fl(ch) / Fl(a)
}

func colorRGB(c color.Color) (r, g, b Fl) {
	if c == nil {
		return 0, 0, 0
	}
	cr, cg, cb, ca := c.RGBA()
	return clamp(cr, ca), clamp(cg, ca), clamp(cb, ca)
}

// check if the color space is already registered or generate a new name and add it
func (ap *Appearance) addColorSpace(cs model.ColorSpace) model.ObjName {
	if ap.resources.ColorSpace == nil {
		ap.resources.ColorSpace = make(map[model.ObjName]model.ColorSpace)
	}
	for name, reg := range ap.resources.ColorSpace {
		if reg == cs {
			return name
		}
	}
	name := model.ObjName(fmt.Sprintf("CS%d", len(ap.resources.ColorSpace)))
	ap.resources.ColorSpace[name] = cs
	return name
}

// SetColorSpaceFillN selects `cs` as the current fill color space and sets
// `color` as the fill color, using the general (non-Device) color operators
// cs/scn. It is the counterpart of SetColorFill for Separation, DeviceN,
// ICCBased and Indexed color spaces, which are not representable by a
// color.Color value.
func (ap *Appearance) SetColorSpaceFillN(cs model.ColorSpace, color []Fl) {
	name := ap.addColorSpace(cs)
	ap.Ops(OpSetFillColorSpace{ColorSpace: name}, OpSetFillColorN{Color: color})
}

// SetColorSpaceStrokeN is the stroking analogue of SetColorSpaceFillN.
func (ap *Appearance) SetColorSpaceStrokeN(cs model.ColorSpace, color []Fl) {
	name := ap.addColorSpace(cs)
	ap.Ops(OpSetStrokeColorSpace{ColorSpace: name}, OpSetStrokeColorN{Color: color})
}

// SetPatternFill selects the Pattern color space and paints with the
// pattern `name`, previously registered with AddPattern. `underlying` holds
// the component values of the pattern's underlying color space, and must be
// omitted (nil) for an uncolored tiling pattern's own color space.
func (ap *Appearance) SetPatternFill(name model.ObjName, underlying []Fl) {
	ap.Ops(OpSetFillColorSpace{ColorSpace: model.ObjName(model.ColorSpacePattern)}, OpSetFillColorN{Color: underlying, Pattern: name})
}
