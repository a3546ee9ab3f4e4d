package formfill

import (
	"reflect"
	"testing"

	"github.com/agnivon/pdfkit/model"
)

func newTestWidget(rect model.Rectangle) model.FormFieldWidget {
	return model.FormFieldWidget{
		AnnotationDict: &model.AnnotationDict{
			BaseAnnotation: model.BaseAnnotation{Rect: rect},
			Subtype:        model.AnnotationWidget{},
		},
	}
}

func TestFillTextField(t *testing.T) {
	widget := newTestWidget(model.Rectangle{Llx: 0, Lly: 0, Urx: 120, Ury: 20})
	field := &model.FormFieldDict{
		FormFieldInheritable: model.FormFieldInheritable{
			FT: model.FormFieldText{},
			DA: "0 g /Helv 10 Tf",
		},
		T:       "name",
		Widgets: []model.FormFieldWidget{widget},
	}
	acro := &model.AcroForm{Fields: []*model.FormFieldDict{field}}

	err := FillForm(&model.Document{Catalog: model.Catalog{AcroForm: *acro}}, FDFDict{
		Fields: []FDFField{{T: "name", Values: Values{V: FDFText("Jane Doe")}}},
	}, false)
	if err != nil {
		t.Fatal(err)
	}

	textField, ok := field.FT.(model.FormFieldText)
	if !ok {
		t.Fatalf("expected a text field, got %T", field.FT)
	}
	if textField.V != "Jane Doe" {
		t.Errorf("expected value %q, got %q", "Jane Doe", textField.V)
	}
	if widget.AP == nil || widget.AP.N[""] == nil {
		t.Error("expected an appearance stream to be built for the widget")
	}
}

func TestFillRadioByOptionIndex(t *testing.T) {
	widgetYes := newTestWidget(model.Rectangle{Llx: 0, Lly: 0, Urx: 20, Ury: 20})
	widgetNo := newTestWidget(model.Rectangle{Llx: 30, Lly: 0, Urx: 50, Ury: 20})
	widgetYes.AP = &model.AppearanceDict{N: model.AppearanceEntry{"0": nil, "Off": nil}}
	widgetNo.AP = &model.AppearanceDict{N: model.AppearanceEntry{"1": nil, "Off": nil}}

	field := &model.FormFieldDict{
		FormFieldInheritable: model.FormFieldInheritable{
			FT: model.FormFieldButton{Opt: []string{"Yes", "No"}},
			Ff: model.Radio,
			DA: "0 g /Helv 10 Tf",
		},
		T:       "choice",
		Widgets: []model.FormFieldWidget{widgetYes, widgetNo},
	}
	acro := &model.AcroForm{Fields: []*model.FormFieldDict{field}}

	err := FillForm(&model.Document{Catalog: model.Catalog{AcroForm: *acro}}, FDFDict{
		Fields: []FDFField{{T: "choice", Values: Values{V: FDFName("No")}}},
	}, false)
	if err != nil {
		t.Fatal(err)
	}

	button, ok := field.FT.(model.FormFieldButton)
	if !ok {
		t.Fatalf("expected a button field, got %T", field.FT)
	}
	if button.V != "No" {
		t.Errorf("expected selected value %q, got %q", "No", button.V)
	}
	if widgetYes.AS != "Off" {
		t.Errorf("expected the unselected widget to be Off, got %q", widgetYes.AS)
	}
	if widgetNo.AS != "1" {
		t.Errorf("expected the selected widget state to be its option index, got %q", widgetNo.AS)
	}
}

func TestFDFDictResolve(t *testing.T) {
	fdf := FDFDict{Fields: []FDFField{
		{T: "parent", Kids: []FDFField{
			{T: "child", Values: Values{V: FDFText("value")}},
		}},
	}}
	got := fdf.resolve()
	want := map[string]Values{"parent.child": {V: FDFText("value")}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("resolve() = %#v, want %#v", got, want)
	}
}
