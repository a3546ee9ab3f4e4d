package structure

import (
	"testing"

	"github.com/agnivon/pdfkit/contentstream"
	"github.com/agnivon/pdfkit/model"
)

func TestAddChildRejectsReparenting(t *testing.T) {
	b := NewBuilder()
	doc := &model.StructureElement{S: "Document"}
	b.AddRoot(doc)

	para := &model.StructureElement{S: "P"}
	if err := b.AddChild(doc, para); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if para.P != doc || len(doc.K) != 1 {
		t.Fatalf("child not attached: P=%v K=%v", para.P, doc.K)
	}

	other := &model.StructureElement{S: "Sect"}
	if err := b.AddChild(other, para); err == nil {
		t.Fatal("expected error reparenting an already-attached element")
	}
}

func TestBeginStructureElementReferenceAllocatesSequentialMCIDs(t *testing.T) {
	b := NewBuilder()
	doc := &model.StructureElement{S: "Document"}
	b.AddRoot(doc)
	para := &model.StructureElement{S: "P"}
	if err := b.AddChild(doc, para); err != nil {
		t.Fatal(err)
	}

	page := &model.PageObject{}
	ap := contentstream.NewAppearance(200, 200)

	for i := 0; i < 3; i++ {
		if err := b.BeginStructureElementReference(&ap, page, para); err != nil {
			t.Fatalf("begin %d: %v", i, err)
		}
		if err := b.EndMarkedContentSequence(&ap); err != nil {
			t.Fatalf("end %d: %v", i, err)
		}
	}

	if len(para.K) != 3 {
		t.Fatalf("expected 3 marked-content items, got %d", len(para.K))
	}
	for i, item := range para.K {
		ref, ok := item.(model.ContentItemMarkedReference)
		if !ok {
			t.Fatalf("item %d: expected ContentItemMarkedReference, got %T", i, item)
		}
		if ref.MCID != i {
			t.Errorf("item %d: expected MCID %d, got %d", i, i, ref.MCID)
		}
		if ref.Container != nil {
			t.Errorf("item %d: expected nil container (same page as se.Pg), got %v", i, ref.Container)
		}
	}
	if para.Pg != page {
		t.Fatalf("expected se.Pg to be claimed by the first reference")
	}

	key, ok := page.StructParents.(model.ObjInt)
	if !ok {
		t.Fatal("expected page.StructParents to be set")
	}

	b.Finish()
	entries := b.Tree.ParentTree.LookupTable()
	entry, ok := entries[int(key)]
	if !ok {
		t.Fatalf("no parent-tree entry for key %d", key)
	}
	if len(entry.Parents) != 3 {
		t.Fatalf("expected 3 parent-tree entries, got %d", len(entry.Parents))
	}
	for _, p := range entry.Parents {
		if p != para {
			t.Error("parent-tree entry does not point back to the structure element")
		}
	}
}

func TestAddMarkedContentSequenceCrossPage(t *testing.T) {
	b := NewBuilder()
	se := &model.StructureElement{S: "P"}
	page1, page2 := &model.PageObject{}, &model.PageObject{}

	b.AddMarkedContentSequence(se, 0, page1)
	b.AddMarkedContentSequence(se, 1, page1)
	b.AddMarkedContentSequence(se, 0, page2)

	if se.Pg != page1 {
		t.Fatalf("expected se.Pg claimed by the first page referencing it")
	}
	if len(se.K) != 3 {
		t.Fatalf("expected 3 items, got %d", len(se.K))
	}
	last := se.K[2].(model.ContentItemMarkedReference)
	if last.Container != page2 {
		t.Errorf("expected explicit reference to page2, got %v", last.Container)
	}
	first := se.K[0].(model.ContentItemMarkedReference)
	if first.Container != nil {
		t.Errorf("expected implicit reference for the owning page, got %v", first.Container)
	}
}

func TestBeginArtifact(t *testing.T) {
	b := NewBuilder()
	ap := contentstream.NewAppearance(100, 100)
	if err := b.BeginArtifact(&ap, ArtifactPagination, ArtifactFooter); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := b.EndMarkedContentSequence(&ap); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
