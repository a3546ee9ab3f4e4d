package formfill

import (
	"image/color"
	"testing"

	"github.com/agnivon/pdfkit/fonts"
	"github.com/agnivon/pdfkit/fonts/standardfonts"
	"github.com/agnivon/pdfkit/model"
)

func testFont(t *testing.T) fonts.BuiltFont {
	font, err := fonts.BuildFont(&model.FontDict{Subtype: standardfonts.Helvetica.WesternType1Font()})
	if err != nil {
		t.Fatalf("can't build standard font: %s", err)
	}
	return font
}

func newTestForm() (*model.AcroForm, *model.PageObject) {
	form := &model.AcroForm{}
	page := &model.PageObject{}
	return form, page
}

func TestComposeTextField(t *testing.T) {
	form, page := newTestForm()
	c := NewComposer(form)
	opts := FieldOptions{
		Name:      "name",
		Rect:      model.Rectangle{Llx: 0, Lly: 0, Urx: 200, Ury: 20},
		Font:      testFont(t),
		FontName:  "Helv",
		TextColor: color.Black,
	}

	field := c.NewTextField(page, opts, "hello world", false, false)
	if field.T != "name" {
		t.Errorf("expected T name, got %s", field.T)
	}
	text, ok := field.FT.(model.FormFieldText)
	if !ok {
		t.Fatalf("expected FormFieldText, got %T", field.FT)
	}
	if text.V != "hello world" {
		t.Errorf("unexpected value: %s", text.V)
	}
	if len(field.Widgets) != 1 {
		t.Fatalf("expected 1 widget, got %d", len(field.Widgets))
	}
	if len(page.Annots) != 1 {
		t.Fatalf("expected 1 annotation on page, got %d", len(page.Annots))
	}
	if len(form.Fields) != 1 {
		t.Fatalf("expected 1 top level field, got %d", len(form.Fields))
	}
	if form.DR.Font["Helv"] == nil {
		t.Errorf("expected font to be registered under Helv")
	}
	widget := field.Widgets[0]
	if widget.AP == nil || widget.AP.N[""] == nil {
		t.Errorf("expected a normal appearance stream")
	}
}

func TestComposeMultilineAndPassword(t *testing.T) {
	form, page := newTestForm()
	c := NewComposer(form)
	opts := FieldOptions{
		Name:     "notes",
		Rect:     model.Rectangle{Llx: 0, Lly: 0, Urx: 200, Ury: 80},
		Font:     testFont(t),
		FontName: "Helv",
	}
	field := c.NewTextField(page, opts, "line one\nline two", true, false)
	text := field.FT.(model.FormFieldText)
	if (field.Ff & model.Multiline) == 0 {
		t.Errorf("expected Multiline flag set")
	}
	if text.V != "line one\nline two" {
		t.Errorf("unexpected value: %q", text.V)
	}

	pwdOpts := FieldOptions{
		Name:     "pwd",
		Rect:     model.Rectangle{Llx: 0, Lly: 0, Urx: 100, Ury: 20},
		Font:     testFont(t),
		FontName: "Helv",
	}
	pwdField := c.NewTextField(page, pwdOpts, "secret", false, true)
	if (pwdField.Ff & model.Password) == 0 {
		t.Errorf("expected Password flag set")
	}
}

func TestComposeCheckBox(t *testing.T) {
	form, page := newTestForm()
	c := NewComposer(form)
	opts := FieldOptions{
		Name: "agree",
		Rect: model.Rectangle{Llx: 0, Lly: 0, Urx: 12, Ury: 12},
	}
	field := c.NewCheckBox(page, opts, true)
	btn, ok := field.FT.(model.FormFieldButton)
	if !ok {
		t.Fatalf("expected FormFieldButton, got %T", field.FT)
	}
	if btn.V != checkBoxOnState {
		t.Errorf("expected V=%s, got %s", checkBoxOnState, btn.V)
	}
	widget := field.Widgets[0]
	if widget.AS != checkBoxOnState {
		t.Errorf("expected AS=%s, got %s", checkBoxOnState, widget.AS)
	}
	if widget.AP == nil || widget.AP.N[checkBoxOnState] == nil || widget.AP.N["Off"] == nil {
		t.Errorf("expected both Yes and Off appearance states")
	}
}

func TestComposeRadioGroup(t *testing.T) {
	form, page := newTestForm()
	c := NewComposer(form)
	rg := c.NewRadioGroup("color", false)

	box := model.Rectangle{Llx: 0, Lly: 0, Urx: 12, Ury: 12}
	redOpts := FieldOptions{Rect: box}
	greenOpts := FieldOptions{Rect: box}

	red := rg.AddOption(page, redOpts, "red", false)
	green := rg.AddOption(page, greenOpts, "green", true)

	if len(rg.parent.Kids) != 2 {
		t.Fatalf("expected 2 kids, got %d", len(rg.parent.Kids))
	}
	if red.Parent != rg.parent || green.Parent != rg.parent {
		t.Errorf("expected kids to point back to the parent field")
	}
	btn := rg.parent.FT.(model.FormFieldButton)
	if len(btn.Opt) != 2 || btn.Opt[0] != "red" || btn.Opt[1] != "green" {
		t.Errorf("unexpected Opt array: %v", btn.Opt)
	}
	if btn.V != "1" {
		t.Errorf("expected selected option state name 1, got %s", btn.V)
	}
	if red.Widgets[0].AS != "Off" {
		t.Errorf("expected unselected kid AS=Off, got %s", red.Widgets[0].AS)
	}
	if green.Widgets[0].AS != "1" {
		t.Errorf("expected selected kid AS=1, got %s", green.Widgets[0].AS)
	}
	if len(page.Annots) != 2 {
		t.Errorf("expected 2 annotations on page, got %d", len(page.Annots))
	}
	// parent itself carries no widget, only its kids do
	for _, f := range form.Fields {
		if f == rg.parent && len(f.Widgets) != 0 {
			t.Errorf("radio group parent should not carry its own widget")
		}
	}
}

func TestComposeRadioGroupInUnison(t *testing.T) {
	form, page := newTestForm()
	c := NewComposer(form)
	rg := c.NewRadioGroup("size", true)
	box := model.Rectangle{Llx: 0, Lly: 0, Urx: 12, Ury: 12}

	a := rg.AddOption(page, FieldOptions{Rect: box}, "M", false)
	b := rg.AddOption(page, FieldOptions{Rect: box}, "M", false)
	if a.Widgets[0].AP.N["M"] == nil || b.Widgets[0].AP.N["M"] == nil {
		t.Errorf("expected both widgets to share the M appearance state in unison mode")
	}
}

func TestComposeSignatureField(t *testing.T) {
	form, page := newTestForm()
	c := NewComposer(form)
	opts := FieldOptions{
		Name:     "sig",
		Rect:     model.Rectangle{Llx: 0, Lly: 0, Urx: 150, Ury: 40},
		Font:     testFont(t),
		FontName: "Helv",
	}
	field := c.NewSignatureField(page, opts, "Sign here")
	if _, ok := field.FT.(model.FormFieldSignature); !ok {
		t.Fatalf("expected FormFieldSignature, got %T", field.FT)
	}
	if form.DR.Font["Helv"] == nil {
		t.Errorf("expected font registered for the label")
	}
}

func TestComposeChoiceFieldCombo(t *testing.T) {
	form, page := newTestForm()
	c := NewComposer(form)
	opts := FieldOptions{
		Name:     "country",
		Rect:     model.Rectangle{Llx: 0, Lly: 0, Urx: 150, Ury: 20},
		Font:     testFont(t),
		FontName: "Helv",
	}
	options := []model.Option{{Name: "France"}, {Name: "Germany"}, {Name: "Italy"}}
	field := c.NewChoiceField(page, opts, options, []int{1}, true, false, false, false)
	choice, ok := field.FT.(model.FormFieldChoice)
	if !ok {
		t.Fatalf("expected FormFieldChoice, got %T", field.FT)
	}
	if (field.Ff & model.Combo) == 0 {
		t.Errorf("expected Combo flag set")
	}
	if len(choice.V) != 1 || choice.V[0] != "Germany" {
		t.Errorf("unexpected selected value: %v", choice.V)
	}
}

func TestComposeChoiceFieldList(t *testing.T) {
	form, page := newTestForm()
	c := NewComposer(form)
	opts := FieldOptions{
		Name:     "fruits",
		Rect:     model.Rectangle{Llx: 0, Lly: 0, Urx: 150, Ury: 60},
		Font:     testFont(t),
		FontName: "Helv",
	}
	options := []model.Option{{Name: "Apple"}, {Name: "Banana"}, {Name: "Cherry"}}
	field := c.NewChoiceField(page, opts, options, []int{0, 2}, false, false, true, true)
	choice, ok := field.FT.(model.FormFieldChoice)
	if !ok {
		t.Fatalf("expected FormFieldChoice, got %T", field.FT)
	}
	if (field.Ff & model.MultiSelect) == 0 {
		t.Errorf("expected MultiSelect flag set")
	}
	if (field.Ff & model.Sort) == 0 {
		t.Errorf("expected Sort flag set")
	}
	if len(choice.V) != 2 {
		t.Errorf("expected 2 selected values, got %v", choice.V)
	}
}

func TestBuildDA(t *testing.T) {
	da := buildDA("Helv", 11, color.NRGBA{R: 255, A: 255})
	conf, err := splitDAelements(da)
	if err != nil {
		t.Fatalf("buildDA produced an unparseable DA string %q: %s", da, err)
	}
	if conf.font != "Helv" {
		t.Errorf("expected font Helv, got %s", conf.font)
	}
	if conf.size != 11 {
		t.Errorf("expected size 11, got %v", conf.size)
	}
	if conf.color == nil {
		t.Errorf("expected a non-nil color")
	}
}
