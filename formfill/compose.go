package formfill

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/agnivon/pdfkit/contentstream"
	"github.com/agnivon/pdfkit/fonts"
	"github.com/agnivon/pdfkit/model"
)

// FieldOptions collects the placement and appearance attributes shared by
// every field a Composer builds: widget rectangle, rotation, colors and
// border, and the font used for variable text.
type FieldOptions struct {
	Name     string
	Rect     model.Rectangle
	Rotation int // 0, 90, 180 or 270, per the MK.R convention

	ReadOnly  bool
	Required  bool
	Printable bool // sets the widget's Print flag, usually desired

	Font     fonts.BuiltFont
	FontName model.Name // key under which Font is registered in the form's DR
	FontSize Fl         // 0 defaults to 12

	TextColor       color.Color
	BorderColor     color.Color
	BackgroundColor color.Color
	BorderWidth     Fl
	BorderStyle     model.Name // S (solid, default), U, B, I or D

	Alignment model.Quadding
}

func (o FieldOptions) flags() model.FormFlag {
	var f model.FormFlag
	if o.ReadOnly {
		f |= model.ReadOnly
	}
	if o.Required {
		f |= model.Required
	}
	return f
}

func (o FieldOptions) annotationFlags() model.AnnotationFlag {
	var f model.AnnotationFlag
	if o.Printable {
		f |= model.APrint
	}
	return f
}

func (o FieldOptions) fontSize() Fl {
	if o.FontSize == 0 {
		return 12
	}
	return o.FontSize
}

// colorComponents mirrors contentstream's own (unexported) colorToArray, so
// that the DA string and MK color entries built here read back the same
// component values an Appearance would use to paint with the same color.
func colorComponents(c color.Color) []Fl {
	if c == nil {
		return nil
	}
	switch col := c.(type) {
	case color.Gray:
		return []Fl{Fl(col.Y) / 255}
	case color.Gray16:
		return []Fl{Fl(col.Y) / 0xffff}
	case color.NRGBA:
		return []Fl{Fl(col.R) / 255, Fl(col.G) / 255, Fl(col.B) / 255}
	case color.NRGBA64:
		return []Fl{Fl(col.R) / 0xffff, Fl(col.G) / 0xffff, Fl(col.B) / 0xffff}
	case color.CMYK:
		return []Fl{Fl(col.C) / 255, Fl(col.M) / 255, Fl(col.Y) / 255, Fl(col.K) / 255}
	default:
		r, g, b, a := c.RGBA()
		if a == 0 {
			return []Fl{0, 0, 0}
		}
		return []Fl{Fl(r) / Fl(a), Fl(g) / Fl(a), Fl(b) / Fl(a)}
	}
}

func colorArray(c color.Color) model.ColorArray {
	comps := colorComponents(c)
	if comps == nil {
		return nil
	}
	out := make(model.ColorArray, len(comps))
	for i, v := range comps {
		out[i] = float64(v)
	}
	return out
}

// buildDA renders a default-appearance string ("/Helv 12 Tf 0 g") the way
// splitDAelements in acrofields.go parses it back.
func buildDA(fontName model.Name, fontSize Fl, textColor color.Color) string {
	comps := colorComponents(textColor)
	var colorOp string
	switch len(comps) {
	case 1:
		colorOp = fmt.Sprintf("%s g", model.FmtFloat(comps[0]))
	case 3:
		colorOp = fmt.Sprintf("%s %s %s rg", model.FmtFloat(comps[0]), model.FmtFloat(comps[1]), model.FmtFloat(comps[2]))
	case 4:
		colorOp = fmt.Sprintf("%s %s %s %s k", model.FmtFloat(comps[0]), model.FmtFloat(comps[1]), model.FmtFloat(comps[2]), model.FmtFloat(comps[3]))
	default:
		colorOp = "0 g"
	}
	if fontName == "" {
		return colorOp
	}
	return fmt.Sprintf("/%s %s Tf %s", fontName, model.FmtFloat(fontSize), colorOp)
}

func quaddingToAlignment(q model.Quadding) contentstream.Alignment {
	switch q {
	case model.Centered:
		return contentstream.AlignCenter
	case model.RightJustified:
		return contentstream.AlignRight
	default:
		return contentstream.AlignLeft
	}
}

// fieldBuilder adapts FieldOptions to the fieldAppearanceBuilder that
// drives getBorderAppearance/getListAppearance, normalizing and (for a
// sideways widget) rotating the rectangle the same way buildAppearance
// does in acrofields.go.
func fieldBuilder(opts FieldOptions) fieldAppearanceBuilder {
	box := getNormalizedRectangle(opts.Rect)
	if opts.Rotation == 90 || opts.Rotation == 270 {
		box = rotate(box)
	}
	return fieldAppearanceBuilder{
		box:             box,
		textColor:       opts.TextColor,
		backgroundColor: opts.BackgroundColor,
		borderStyle:     model.ObjName(opts.BorderStyle),
		borderWidth:     opts.BorderWidth,
		borderColor:     opts.BorderColor,
		alignment:       opts.Alignment,
		rotation:        opts.Rotation,
	}
}

// Composer builds AcroForm fields and their widget annotations, wiring each
// one into a page's Annots list and the form's Fields list. It is not safe
// for concurrent use.
type Composer struct {
	Form *model.AcroForm
}

// NewComposer returns a Composer that registers fields and fonts on `form`.
func NewComposer(form *model.AcroForm) *Composer {
	return &Composer{Form: form}
}

func (c *Composer) registerFont(opts FieldOptions) {
	if opts.Font.Meta == nil || opts.FontName == "" {
		return
	}
	if c.Form.DR.Font == nil {
		c.Form.DR.Font = make(map[model.ObjName]*model.FontDict)
	}
	if _, ok := c.Form.DR.Font[model.ObjName(opts.FontName)]; !ok {
		c.Form.DR.Font[model.ObjName(opts.FontName)] = opts.Font.Meta
	}
}

func (c *Composer) newWidget(opts FieldOptions) *model.AnnotationDict {
	mk := &model.AppearanceCharacteristics{
		BC: colorArray(opts.BorderColor),
		BG: colorArray(opts.BackgroundColor),
		R:  model.NewRotation(opts.Rotation),
	}
	var bs *model.BorderStyle
	if opts.BorderWidth != 0 || opts.BorderStyle != "" {
		style := opts.BorderStyle
		if style == "" {
			style = "S"
		}
		bs = &model.BorderStyle{W: model.ObjFloat(opts.BorderWidth), S: style}
	}
	return &model.AnnotationDict{
		BaseAnnotation: model.BaseAnnotation{
			Rect: opts.Rect,
			F:    opts.annotationFlags(),
		},
		Subtype: model.AnnotationWidget{MK: mk, BS: bs},
	}
}

// addField attaches `widget` to `page` and registers `field` (a top-level
// field, not a radio-group kid) on the form.
func (c *Composer) addField(field *model.FormFieldDict, widget *model.AnnotationDict, page *model.PageObject) {
	field.Widgets = []model.FormFieldWidget{{AnnotationDict: widget}}
	page.Annots = append(page.Annots, widget)
	c.Form.Fields = append(c.Form.Fields, field)
}

// composeTextAppearance draws `text` onto the field's border/background
// appearance (from getBorderAppearance) using the word-wrap and alignment
// layout engine, rather than the hand-rolled loop in buildAppearance: this
// is the appearance path exercised when a caller composes a brand new
// field, as opposed to re-rendering one read back from a filled-in PDF.
func composeTextAppearance(opts FieldOptions, text string, multiline bool) *model.XObjectForm {
	fb := fieldBuilder(opts)
	app := fb.getBorderAppearance()

	_ = app.BeginVariableText()
	if text == "" {
		_ = app.EndVariableText()
		return app.ToXFormObject(true)
	}

	pad := maxF(fb.borderWidth, 1)
	app.SaveState()
	app.Ops(contentstream.OpRectangle{X: pad, Y: pad, W: fb.box.Width() - 2*pad, H: fb.box.Height() - 2*pad})
	app.Ops(contentstream.OpClip{})
	app.Ops(contentstream.OpEndPath{})
	if opts.TextColor == nil {
		app.Ops(contentstream.OpSetFillGray{})
	} else {
		app.SetColorFill(opts.TextColor)
	}

	fontSize := opts.fontSize()
	app.SetFontAndSize(opts.Font, fontSize)
	fd := opts.Font.Desc()
	leading := (fd.FontBBox.Urx - fd.FontBBox.Lly) * fontSize / 1000
	app.SetLeading(leading)
	_ = app.BeginText()

	align := quaddingToAlignment(opts.Alignment)
	top := fb.box.Height() - pad
	bottom := pad
	if multiline {
		_, _ = app.TextRect(pad, top, fb.box.Width()-pad, bottom, text, align, true)
	} else {
		_, _ = app.TextOut(pad, top, fb.box.Width()-pad, bottom, text, align)
	}
	_ = app.EndText()
	_ = app.RestoreState()
	_ = app.EndVariableText()
	return app.ToXFormObject(true)
}

// NewTextField composes a text field, either single-line or multiline
// (wrapped through Component E's TextRect), optionally masked as a password
// field.
func (c *Composer) NewTextField(page *model.PageObject, opts FieldOptions, value string, multiline, password bool) *model.FormFieldDict {
	opts.FontSize = opts.fontSize()
	c.registerFont(opts)

	ff := opts.flags()
	if multiline {
		ff |= model.Multiline
	}
	if password {
		ff |= model.Password
	}

	display := value
	if password {
		display = strings.Repeat("*", len([]rune(value)))
	}

	widget := c.newWidget(opts)
	widget.AP = &model.AppearanceDict{N: model.AppearanceEntry{"": composeTextAppearance(opts, display, multiline)}}

	field := &model.FormFieldDict{
		FormFieldInheritable: model.FormFieldInheritable{
			FT: model.FormFieldText{V: value},
			Ff: ff,
			Q:  opts.Alignment,
			DA: buildDA(opts.FontName, opts.FontSize, opts.TextColor),
		},
		T: opts.Name,
	}
	c.addField(field, widget, page)
	return field
}

const checkBoxOnState model.Name = "Yes"

// composeCheckBoxAppearances draws the checked and unchecked states of a
// check box: the shared border/background, plus a diagonal-line X mark for
// the checked state.
func composeCheckBoxAppearances(opts FieldOptions) (on, off *model.XObjectForm) {
	fb := fieldBuilder(opts)

	offApp := fb.getBorderAppearance()
	off = offApp.ToXFormObject(true)

	onApp := fb.getBorderAppearance()
	markColor := opts.TextColor
	if markColor == nil {
		markColor = color.Black
	}
	lineWidth := maxF(fb.borderWidth, 1)
	pad := lineWidth * 2
	onApp.SetColorStroke(markColor)
	onApp.Ops(
		contentstream.OpSetLineWidth{W: lineWidth},
		contentstream.OpMoveTo{X: pad, Y: pad},
		contentstream.OpLineTo{X: fb.box.Width() - pad, Y: fb.box.Height() - pad},
		contentstream.OpMoveTo{X: pad, Y: fb.box.Height() - pad},
		contentstream.OpLineTo{X: fb.box.Width() - pad, Y: pad},
		contentstream.OpStroke{},
	)
	on = onApp.ToXFormObject(true)
	return on, off
}

// NewCheckBox composes a check box field with "Yes"/"Off" appearance states.
func (c *Composer) NewCheckBox(page *model.PageObject, opts FieldOptions, checked bool) *model.FormFieldDict {
	widget := c.newWidget(opts)
	on, off := composeCheckBoxAppearances(opts)
	widget.AP = &model.AppearanceDict{N: model.AppearanceEntry{checkBoxOnState: on, "Off": off}}
	state := model.Name("Off")
	if checked {
		state = checkBoxOnState
	}
	widget.AS = state

	field := &model.FormFieldDict{
		FormFieldInheritable: model.FormFieldInheritable{
			FT: model.FormFieldButton{V: state},
			Ff: opts.flags(),
		},
		T: opts.Name,
	}
	c.addField(field, widget, page)
	return field
}

// composeRadioAppearances draws the off state (border/background only) and
// the on state (an outer ring, via Component E's Circle, plus a filled
// inner dot) of one radio button.
func composeRadioAppearances(opts FieldOptions) (on, off *model.XObjectForm) {
	fb := fieldBuilder(opts)

	offApp := fb.getBorderAppearance()
	off = offApp.ToXFormObject(true)

	onApp := fb.getBorderAppearance()
	cx, cy := fb.box.Width()/2, fb.box.Height()/2
	lineWidth := maxF(fb.borderWidth, 1)
	r := minF(fb.box.Width(), fb.box.Height())/2 - lineWidth
	if r < 0 {
		r = 0
	}
	markColor := opts.TextColor
	if markColor == nil {
		markColor = color.Black
	}
	onApp.SetColorStroke(markColor)
	onApp.Ops(contentstream.OpSetLineWidth{W: lineWidth})
	_ = onApp.Circle(cx, cy, r)
	_ = onApp.StrokePath()

	onApp.SetColorFill(markColor)
	_ = onApp.Circle(cx, cy, r*0.4)
	_ = onApp.FillPath()

	on = onApp.ToXFormObject(true)
	return on, off
}

// RadioGroup accumulates the options of a single radio-button field: a
// parent FormFieldDict (created by NewRadioGroup) whose Kids each carry one
// widget and their own appearance states.
type RadioGroup struct {
	composer       *Composer
	parent         *model.FormFieldDict
	radiosInUnison bool
	nextIndex      int
}

// NewRadioGroup creates the parent field of a radio-button group. When
// radiosInUnison is set, every option sharing the same export value turns
// on and off together (the PDF /RadiosInUnison flag); otherwise each kid
// gets its own appearance-state name, and only one kid in the group can be
// checked at a time regardless of shared export values.
func (c *Composer) NewRadioGroup(name string, radiosInUnison bool) *RadioGroup {
	ff := model.Radio
	if radiosInUnison {
		ff |= model.RadiosInUnison
	}
	parent := &model.FormFieldDict{
		FormFieldInheritable: model.FormFieldInheritable{FT: model.FormFieldButton{}, Ff: ff},
		T:                    name,
	}
	c.Form.Fields = append(c.Form.Fields, parent)
	return &RadioGroup{composer: c, parent: parent, radiosInUnison: radiosInUnison}
}

func (rg *RadioGroup) stateName(exportValue string) model.Name {
	if rg.radiosInUnison && exportValue != "" {
		return model.Name(exportValue)
	}
	idx := rg.nextIndex
	return model.Name(strconv.Itoa(idx))
}

// AddOption appends one button to the group: a Kid FormFieldDict with its
// own widget, registered on `page`. The same vidx/Opt-array indexing
// acrofields.go's setField uses to resolve a value back to an appearance
// state is mirrored here when building it, except in radiosInUnison mode,
// where the state name is the export value.
func (rg *RadioGroup) AddOption(page *model.PageObject, opts FieldOptions, exportValue string, selected bool) *model.FormFieldDict {
	state := rg.stateName(exportValue)
	rg.nextIndex++

	widget := rg.composer.newWidget(opts)
	on, off := composeRadioAppearances(opts)
	widget.AP = &model.AppearanceDict{N: model.AppearanceEntry{state: on, "Off": off}}
	widget.AS = "Off"

	btn := rg.parent.FT.(model.FormFieldButton)
	btn.Opt = append(btn.Opt, exportValue)
	if selected {
		btn.V = state
		widget.AS = state
	}
	rg.parent.FT = btn

	kid := &model.FormFieldDict{
		Parent:  rg.parent,
		Widgets: []model.FormFieldWidget{{AnnotationDict: widget}},
	}
	rg.parent.Kids = append(rg.parent.Kids, kid)
	page.Annots = append(page.Annots, widget)
	return kid
}

// composeSignatureAppearance draws the field's border/background, plus an
// optional centered label (the signer's name, typically) laid out with
// TextOut.
func composeSignatureAppearance(opts FieldOptions, label string) *model.XObjectForm {
	fb := fieldBuilder(opts)
	app := fb.getBorderAppearance()
	if label == "" {
		return app.ToXFormObject(true)
	}

	fontSize := opts.fontSize()
	app.SetFontAndSize(opts.Font, fontSize)
	if opts.TextColor == nil {
		app.Ops(contentstream.OpSetFillGray{})
	} else {
		app.SetColorFill(opts.TextColor)
	}
	_ = app.BeginText()
	pad := maxF(fb.borderWidth, 1)
	align := quaddingToAlignment(opts.Alignment)
	mid := fb.box.Height() / 2
	_, _ = app.TextOut(pad, mid+fontSize*0.3, fb.box.Width()-pad, mid-fontSize*0.3, label, align)
	_ = app.EndText()
	return app.ToXFormObject(true)
}

// NewSignatureField composes an unsigned signature field, with an optional
// placeholder label drawn in its appearance (e.g. "Sign here").
func (c *Composer) NewSignatureField(page *model.PageObject, opts FieldOptions, label string) *model.FormFieldDict {
	if label != "" {
		opts.FontSize = opts.fontSize()
		c.registerFont(opts)
	}
	widget := c.newWidget(opts)
	widget.AP = &model.AppearanceDict{N: model.AppearanceEntry{"": composeSignatureAppearance(opts, label)}}

	field := &model.FormFieldDict{
		FormFieldInheritable: model.FormFieldInheritable{
			FT: model.FormFieldSignature{},
			Ff: opts.flags(),
		},
		T: opts.Name,
	}
	c.addField(field, widget, page)
	return field
}

// composeListAppearance delegates to the teacher's getListAppearance,
// tracking the top-visible-row index (TI) a list box field must expose.
func composeListAppearance(opts FieldOptions, choices []string, selected int) (*model.XObjectForm, int) {
	fb := fieldBuilder(opts)
	fb.choices = choices
	fb.choiceSelection = selected
	return fb.getListAppearance(opts.Font, opts.fontSize())
}

// NewChoiceField composes a choice field: a combo box (editable if
// `editable`) when combo is set, otherwise a scrollable list box (optionally
// multi-select and/or alphabetically sorted).
func (c *Composer) NewChoiceField(page *model.PageObject, opts FieldOptions, options []model.Option, selected []int, combo, editable, multiSelect, sort bool) *model.FormFieldDict {
	opts.FontSize = opts.fontSize()
	c.registerFont(opts)

	ff := opts.flags()
	if combo {
		ff |= model.Combo
		if editable {
			ff |= model.Edit
		}
	} else {
		if multiSelect {
			ff |= model.MultiSelect
		}
		if sort {
			ff |= model.Sort
		}
	}

	values := make([]string, 0, len(selected))
	for _, idx := range selected {
		if idx >= 0 && idx < len(options) {
			values = append(values, options[idx].Name)
		}
	}

	widget := c.newWidget(opts)
	var app *model.XObjectForm
	topFirst := 0
	if combo {
		text := ""
		if len(values) > 0 {
			text = values[0]
		}
		app = composeTextAppearance(opts, text, false)
	} else {
		names := make([]string, len(options))
		for i, o := range options {
			names[i] = o.Name
		}
		sel := 0
		if len(selected) > 0 {
			sel = selected[0]
		}
		app, topFirst = composeListAppearance(opts, names, sel)
	}
	widget.AP = &model.AppearanceDict{N: model.AppearanceEntry{"": app}}

	field := &model.FormFieldDict{
		FormFieldInheritable: model.FormFieldInheritable{
			FT: model.FormFieldChoice{V: values, Opt: options, TI: topFirst, I: selected},
			Ff: ff,
			Q:  opts.Alignment,
			DA: buildDA(opts.FontName, opts.FontSize, opts.TextColor),
		},
		T: opts.Name,
	}
	c.addField(field, widget, page)
	return field
}
