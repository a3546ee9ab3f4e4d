package model

// PageNode is either a `PageTree` or a `PageObject`
type PageNode interface {
	isPageNode()
}

func (PageTree) isPageNode()    {}
func (*PageObject) isPageNode() {}

// PageTree describe the page hierarchy
// of a PDF file.
type PageTree struct {
	Parent    *PageTree
	Kids      []PageNode
	Resources *ResourcesDict // if nil, will be inherited from the parent
}

// Count returns the number of Page objects (leaf node)
// in all the descendants of `p` (not only in its direct children)
func (p PageTree) Count() int {
	return len(p.Flatten())
}

// Flatten returns all the leaf of the tree,
// respecting the indexing convention for pages (0-based):
// the page with index i is Flatten()[i].
// Be aware that inherited resource are not resolved
func (p PageTree) Flatten() []*PageObject {
	var out []*PageObject
	for _, kid := range p.Kids {
		switch kid := kid.(type) {
		case *PageTree:
			out = append(out, kid.Flatten()...)
		case *PageObject:
			out = append(out, kid)
		}
	}
	return out
}

type PageObject struct {
	Parent                    *PageTree
	Resources                 *ResourcesDict // if nil, will be inherited from the parent
	MediaBox                  *Rectangle     // if nil, will be inherited from the parent
	CropBox                   *Rectangle     // if nil, will be inherited. if still nil, default to MediaBox
	BleedBox, TrimBox, ArtBox *Rectangle     // if nil, default to CropBox
	Rotate                    *Rotation      // if nil, will be inherited from the parent. Only multiple of 90 are allowed
	Annots                    []*AnnotationDict
	Contents                  Contents

	// StructParents indexes this page's entry in the structure tree's
	// parent tree, grouping the marked-content sequences emitted directly
	// in its content stream. Set once, the first time a structure element
	// is attached to a marked-content sequence on this page.
	StructParents MaybeInt
}

// Contents is an array of stream (often of length 1)
type Contents []ContentStream

// allocateReferences walks the page tree rooted at `root`, assigning an
// object number to every node before any of them is written. This lets a
// node (an annotation link, an outline item, a structure element) reference
// an arbitrary page by object number before that page is itself written.
func (pdf pdfWriter) allocateReferences(root PageNode) {
	if _, ok := pdf.pages[root]; ok {
		return
	}
	pdf.pages[root] = pdf.CreateObject()
	if tree, ok := root.(*PageTree); ok {
		for _, kid := range tree.Kids {
			pdf.allocateReferences(kid)
		}
	}
}

// allocateClones walks the page tree rooted at `root`, creating the zero
// value of every clone before any field is populated, so that cross
// references between pages (as used by links, outlines, structure elements)
// are preserved in the copy.
func (cache cloneCache) allocateClones(root PageNode) {
	if _, ok := cache.pages[root]; ok {
		return
	}
	switch n := root.(type) {
	case *PageTree:
		out := &PageTree{}
		cache.pages[root] = out
		for _, kid := range n.Kids {
			cache.allocateClones(kid)
		}
	case *PageObject:
		cache.pages[root] = &PageObject{}
	}
}

// pdfString returns the dictionary for this page tree node, writing every
// descendant node to `pdf` (under the object number allocated for it by
// allocateReferences) as a side effect.
func (p *PageTree) pdfString(pdf pdfWriter) string {
	kidsRefs := make([]Reference, len(p.Kids))
	for i, kid := range p.Kids {
		kidRef := pdf.pages[kid]
		var content string
		switch k := kid.(type) {
		case *PageTree:
			content = k.pdfString(pdf)
		case *PageObject:
			content = k.pdfString(pdf)
		}
		pdf.WriteObject(content, kidRef)
		kidsRefs[i] = kidRef
	}
	b := newBuffer()
	b.fmt("<</Type/Pages/Count %d/Kids %s", p.Count(), writeRefArray(kidsRefs))
	if p.Resources != nil && !p.Resources.isEmpty() {
		b.fmt("/Resources %s", p.Resources.pdfString(pdf))
	}
	if p.Parent != nil {
		b.fmt("/Parent %s", pdf.pages[p.Parent])
	}
	b.fmt(">>")
	return b.String()
}

// clone returns a deep copy of p, preserving the identity of cross
// references to other pages, as precomputed by allocateClones.
func (p *PageTree) clone(cache cloneCache) PageNode {
	out := cache.pages[p].(*PageTree)
	if p.Parent != nil {
		out.Parent = cache.pages[p.Parent].(*PageTree)
	}
	if p.Resources != nil {
		r := p.Resources.clone(cache)
		out.Resources = &r
	}
	out.Kids = make([]PageNode, len(p.Kids))
	for i, kid := range p.Kids {
		out.Kids[i] = kid.(interface {
			clone(cloneCache) PageNode
		}).clone(cache)
	}
	return out
}

// pdfString returns the dictionary for this leaf page, writing its
// content streams and annotations to `pdf` as a side effect.
func (p *PageObject) pdfString(pdf pdfWriter) string {
	b := newBuffer()
	b.WriteString("<</Type/Page")
	if p.Parent != nil {
		b.fmt("/Parent %s", pdf.pages[p.Parent])
	}
	if p.MediaBox != nil {
		b.fmt("/MediaBox %s", p.MediaBox.PDFstring())
	}
	if p.CropBox != nil {
		b.fmt("/CropBox %s", p.CropBox.PDFstring())
	}
	if p.BleedBox != nil {
		b.fmt("/BleedBox %s", p.BleedBox.PDFstring())
	}
	if p.TrimBox != nil {
		b.fmt("/TrimBox %s", p.TrimBox.PDFstring())
	}
	if p.ArtBox != nil {
		b.fmt("/ArtBox %s", p.ArtBox.PDFstring())
	}
	if p.Rotate != nil {
		b.fmt("/Rotate %d", p.Rotate.Degrees())
	}
	if p.Resources != nil && !p.Resources.isEmpty() {
		b.fmt("/Resources %s", p.Resources.pdfString(pdf))
	}
	if len(p.Contents) != 0 {
		refs := make([]Reference, len(p.Contents))
		for i, cs := range p.Contents {
			ref := pdf.CreateObject()
			content, stream := cs.PDFContent()
			pdf.WriteStreamRaw(content, stream, ref)
			refs[i] = ref
		}
		if len(refs) == 1 {
			b.fmt("/Contents %s", refs[0])
		} else {
			b.fmt("/Contents %s", writeRefArray(refs))
		}
	}
	if len(p.Annots) != 0 {
		refs := make([]Reference, len(p.Annots))
		for i, a := range p.Annots {
			refs[i] = pdf.addItem(a)
		}
		b.fmt("/Annots %s", writeRefArray(refs))
	}
	if sp, ok := p.StructParents.(ObjInt); ok {
		b.fmt("/StructParents %d", sp)
	}
	b.WriteString(">>")
	return b.String()
}

// clone returns a deep copy of p, preserving the identity of cross
// references to other pages, as precomputed by allocateClones.
func (p *PageObject) clone(cache cloneCache) PageNode {
	out := cache.pages[p].(*PageObject)
	if p.Parent != nil {
		out.Parent = cache.pages[p.Parent].(*PageTree)
	}
	if p.Resources != nil {
		r := p.Resources.clone(cache)
		out.Resources = &r
	}
	if p.MediaBox != nil {
		r := *p.MediaBox
		out.MediaBox = &r
	}
	if p.CropBox != nil {
		r := *p.CropBox
		out.CropBox = &r
	}
	if p.BleedBox != nil {
		r := *p.BleedBox
		out.BleedBox = &r
	}
	if p.TrimBox != nil {
		r := *p.TrimBox
		out.TrimBox = &r
	}
	if p.ArtBox != nil {
		r := *p.ArtBox
		out.ArtBox = &r
	}
	if p.Rotate != nil {
		r := *p.Rotate
		out.Rotate = &r
	}
	out.Annots = make([]*AnnotationDict, len(p.Annots))
	for i, a := range p.Annots {
		out.Annots[i] = cache.checkOrClone(a).(*AnnotationDict)
	}
	out.Contents = make(Contents, len(p.Contents))
	for i, cs := range p.Contents {
		out.Contents[i] = cs.Clone()
	}
	out.StructParents = p.StructParents
	return out
}

type ResourcesDict struct {
	ExtGState  map[Name]*GraphicState // optionnal
	ColorSpace map[Name]ColorSpace
	Shading    map[Name]*ShadingDict
	Pattern    map[Name]Pattern
	Font       map[Name]*FontDict
	XObject    map[Name]XObject
}

// isEmpty returns true if no resource entry is set, in which case
// the /Resources entry may be safely omitted.
func (r ResourcesDict) isEmpty() bool {
	return len(r.ExtGState) == 0 && len(r.ColorSpace) == 0 && len(r.Shading) == 0 &&
		len(r.Pattern) == 0 && len(r.Font) == 0 && len(r.XObject) == 0
}

// pdfString renders the dictionary, writing (or fetching from cache)
// every indirect sub-resource through `pdf`.
func (r ResourcesDict) pdfString(pdf pdfWriter) string {
	b := newBuffer()
	b.WriteString("<<")
	if len(r.ExtGState) != 0 {
		b.WriteString("/ExtGState <<")
		for name, gs := range r.ExtGState {
			b.fmt("%s %s", name, pdf.addItem(gs))
		}
		b.WriteString(">>")
	}
	if len(r.ColorSpace) != 0 {
		b.WriteString("/ColorSpace <<")
		for name, cs := range r.ColorSpace {
			b.fmt("%s %s", name, cs.colorSpacePDFString(pdf))
		}
		b.WriteString(">>")
	}
	if len(r.Shading) != 0 {
		b.WriteString("/Shading <<")
		for name, sh := range r.Shading {
			b.fmt("%s %s", name, pdf.addItem(sh))
		}
		b.WriteString(">>")
	}
	if len(r.Pattern) != 0 {
		b.WriteString("/Pattern <<")
		for name, pa := range r.Pattern {
			b.fmt("%s %s", name, pdf.addItem(pa))
		}
		b.WriteString(">>")
	}
	if len(r.Font) != 0 {
		b.WriteString("/Font <<")
		for name, f := range r.Font {
			b.fmt("%s %s", name, pdf.addItem(f))
		}
		b.WriteString(">>")
	}
	if len(r.XObject) != 0 {
		b.WriteString("/XObject <<")
		for name, xo := range r.XObject {
			ref := pdf.addItem(xo.(Referenceable))
			b.fmt("%s %s", name, ref)
		}
		b.WriteString(">>")
	}
	b.WriteString(">>")
	return b.String()
}

// clone returns a deep copy of r, cloning every sub-resource through `cache`.
func (r ResourcesDict) clone(cache cloneCache) ResourcesDict {
	var out ResourcesDict
	if r.ExtGState != nil {
		out.ExtGState = make(map[Name]*GraphicState, len(r.ExtGState))
		for name, gs := range r.ExtGState {
			out.ExtGState[name] = cache.checkOrClone(gs).(*GraphicState)
		}
	}
	if r.ColorSpace != nil {
		out.ColorSpace = make(map[Name]ColorSpace, len(r.ColorSpace))
		for name, cs := range r.ColorSpace {
			out.ColorSpace[name] = cloneColorSpace(cs, cache)
		}
	}
	if r.Shading != nil {
		out.Shading = make(map[Name]*ShadingDict, len(r.Shading))
		for name, sh := range r.Shading {
			out.Shading[name] = cache.checkOrClone(sh).(*ShadingDict)
		}
	}
	if r.Pattern != nil {
		out.Pattern = make(map[Name]Pattern, len(r.Pattern))
		for name, pa := range r.Pattern {
			out.Pattern[name] = cache.checkOrClone(pa).(Pattern)
		}
	}
	if r.Font != nil {
		out.Font = make(map[Name]*FontDict, len(r.Font))
		for name, f := range r.Font {
			out.Font[name] = cache.checkOrClone(f).(*FontDict)
		}
	}
	if r.XObject != nil {
		out.XObject = make(map[Name]XObject, len(r.XObject))
		for name, xo := range r.XObject {
			out.XObject[name] = cache.checkOrClone(xo.(Referenceable)).(XObject)
		}
	}
	return out
}

// ShallowCopy copies the top-level maps of r (so that callers may add
// entries without mutating r), without cloning the resource values.
func (r ResourcesDict) ShallowCopy() ResourcesDict {
	out := r
	if r.ExtGState != nil {
		out.ExtGState = make(map[Name]*GraphicState, len(r.ExtGState))
		for k, v := range r.ExtGState {
			out.ExtGState[k] = v
		}
	}
	if r.ColorSpace != nil {
		out.ColorSpace = make(map[Name]ColorSpace, len(r.ColorSpace))
		for k, v := range r.ColorSpace {
			out.ColorSpace[k] = v
		}
	}
	if r.Shading != nil {
		out.Shading = make(map[Name]*ShadingDict, len(r.Shading))
		for k, v := range r.Shading {
			out.Shading[k] = v
		}
	}
	if r.Pattern != nil {
		out.Pattern = make(map[Name]Pattern, len(r.Pattern))
		for k, v := range r.Pattern {
			out.Pattern[k] = v
		}
	}
	if r.Font != nil {
		out.Font = make(map[Name]*FontDict, len(r.Font))
		for k, v := range r.Font {
			out.Font[k] = v
		}
	}
	if r.XObject != nil {
		out.XObject = make(map[Name]XObject, len(r.XObject))
		for k, v := range r.XObject {
			out.XObject[k] = v
		}
	}
	return out
}
