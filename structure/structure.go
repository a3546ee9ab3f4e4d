// Package structure builds a tagged-PDF structure tree alongside the
// content streams it describes: attaching structure elements to each
// other, allocating per-page marked-content identifiers, and maintaining
// the parent tree that lets a viewer walk from a marked-content sequence
// back to the structure element that owns it.
package structure

import (
	"github.com/agnivon/pdfkit/contentstream"
	"github.com/agnivon/pdfkit/errs"
	"github.com/agnivon/pdfkit/model"
)

// Builder accumulates the bookkeeping a StructureTree needs while pages
// and form XObjects are being written, then resolves it into the tree's
// ParentTree. It is not safe for concurrent use.
type Builder struct {
	Tree *model.StructureTree

	mcidCounters map[model.ContentMarkedContainer]int
	parentKeys   map[model.ContentMarkedContainer]int
	parents      map[int]model.NumToParent
	nextKey      int
}

// NewBuilder returns a Builder tracking a fresh, empty structure tree.
func NewBuilder() *Builder {
	return &Builder{
		Tree:         &model.StructureTree{},
		mcidCounters: make(map[model.ContentMarkedContainer]int),
		parentKeys:   make(map[model.ContentMarkedContainer]int),
		parents:      make(map[int]model.NumToParent),
	}
}

// AddRoot attaches `se` as a top-level child of the structure tree root.
func (b *Builder) AddRoot(se *model.StructureElement) {
	b.Tree.K = append(b.Tree.K, se)
}

// AddChild attaches `child` under `parent`. It fails if `child` already
// has a parent: a structure element may appear once in the hierarchy.
func (b *Builder) AddChild(parent, child *model.StructureElement) error {
	if child.P != nil {
		return errs.ErrInvalidParameter
	}
	child.P = parent
	parent.K = append(parent.K, child)
	return nil
}

// AddMarkedContentSequence records that marked-content identifier `mcid`,
// emitted in the content stream of `page`, belongs to `se`. The first call
// for a given `se` claims `page` as its owning page; later calls against
// the same page just grow `se.K`, while calls against a different page
// fall back to an explicit marked-content reference naming that page.
func (b *Builder) AddMarkedContentSequence(se *model.StructureElement, mcid int, page *model.PageObject) {
	if se.Pg == nil {
		se.Pg = page
	}
	if se.Pg == page {
		se.K = append(se.K, model.ContentItemMarkedReference{MCID: mcid})
	} else {
		se.K = append(se.K, model.ContentItemMarkedReference{MCID: mcid, Container: page})
	}
}

// AddMarkedContentSequenceInForm is the AddMarkedContentSequence analogue
// for marked content emitted inside a form XObject's own content stream
// (an appearance stream), where the sequence can never coincide with
// `se.Pg` and so is always recorded as an explicit reference.
func (b *Builder) AddMarkedContentSequenceInForm(se *model.StructureElement, mcid int, form *model.XObjectForm) {
	se.K = append(se.K, model.ContentItemMarkedReference{MCID: mcid, Container: form})
}

// nextMCID allocates the next marked-content identifier local to
// `container`, claiming a parent-tree key and setting the container's
// StructParents on the container's first use.
func (b *Builder) nextMCID(container model.ContentMarkedContainer) int {
	mcid := b.mcidCounters[container]
	b.mcidCounters[container] = mcid + 1

	if _, ok := b.parentKeys[container]; !ok {
		key := b.nextKey
		b.nextKey++
		b.parentKeys[container] = key
		b.parents[key] = model.NumToParent{}
		switch c := container.(type) {
		case *model.PageObject:
			c.StructParents = model.ObjInt(key)
		case *model.XObjectForm:
			c.StructParents = model.ObjInt(key)
		}
	}
	return mcid
}

// BeginStructureElementReference opens a marked-content sequence tagged
// with `se.S`, allocating the next MCID local to `container`, emitting the
// BDC operator on `ap`, and registering the sequence with `se` and with
// the parent tree. The matching EndMarkedContentSequence must be called
// before any other bracket (text object, another marked-content sequence)
// nested inside it is closed.
func (b *Builder) BeginStructureElementReference(ap *contentstream.Appearance, container model.ContentMarkedContainer, se *model.StructureElement) error {
	mcid := b.nextMCID(container)
	properties := contentstream.PropertyListDict{"MCID": model.ObjInt(mcid)}
	if err := ap.BeginMarkedContent(se.S, properties); err != nil {
		return err
	}

	switch c := container.(type) {
	case *model.PageObject:
		b.AddMarkedContentSequence(se, mcid, c)
	case *model.XObjectForm:
		b.AddMarkedContentSequenceInForm(se, mcid, c)
	}

	key := b.parentKeys[container]
	entry := b.parents[key]
	entry.Parents = append(entry.Parents, se)
	b.parents[key] = entry
	return nil
}

// EndMarkedContentSequence closes the marked-content sequence opened by
// BeginStructureElementReference, or by BeginArtifact.
func (b *Builder) EndMarkedContentSequence(ap *contentstream.Appearance) error {
	return ap.EndMarkedContent()
}

// ArtifactType is the required /Type entry of an artifact properties dict.
type ArtifactType model.ObjName

const (
	ArtifactPagination ArtifactType = "Pagination"
	ArtifactLayout     ArtifactType = "Layout"
	ArtifactPage       ArtifactType = "Page"
	ArtifactBackground ArtifactType = "Background"
)

// ArtifactSubtype is the optional /Subtype entry of an artifact properties
// dict, further qualifying a Pagination artifact.
type ArtifactSubtype model.ObjName

const (
	ArtifactHeader    ArtifactSubtype = "Header"
	ArtifactFooter    ArtifactSubtype = "Footer"
	ArtifactWatermark ArtifactSubtype = "Watermark"
)

// BeginArtifact opens a marked-content sequence tagged "Artifact", marking
// content that is not part of the document's logical structure (page
// furniture such as running headers, footers and watermarks). Closed with
// EndMarkedContentSequence, same as a structure-element reference.
func (b *Builder) BeginArtifact(ap *contentstream.Appearance, kind ArtifactType, subtype ArtifactSubtype) error {
	properties := contentstream.PropertyListDict{"Type": model.ObjName(kind)}
	if subtype != "" {
		properties["Subtype"] = model.ObjName(subtype)
	}
	return ap.BeginMarkedContent("Artifact", properties)
}

// Finish rebuilds the structure tree's ParentTree from the bookkeeping
// accumulated by BeginStructureElementReference. It must be called once
// all pages and form XObjects referencing the tree have been composed,
// typically right before the document is written.
func (b *Builder) Finish() {
	b.Tree.ParentTree = model.NewParentTree(b.parents)
}
