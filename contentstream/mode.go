package contentstream

import (
	"github.com/agnivon/pdfkit/errs"
	"github.com/agnivon/pdfkit/model"
)

// GraphicsMode is one of the four graphics objects a content stream can be
// positioned in (PDF 1.7 §8.2, Table 32). Every operator is legal only in a
// subset of these modes; Appearance's operator methods enforce that subset
// as operations are appended, instead of letting a caller assemble an
// illegal stream silently.
type GraphicsMode uint8

const (
	// PageDescription is the initial mode, and the mode path-painting
	// operators, ET and EMC return to.
	PageDescription GraphicsMode = iota
	// PathObject is entered by a path-construction operator (m, l, c, v,
	// y, re) and left by a path-painting operator (S, f, B, n, ...).
	PathObject
	// ClippingPath is entered from PathObject by W or W*; the clip takes
	// effect only once the following path-painting operator runs.
	ClippingPath
	// TextObject is entered by BT and left by ET.
	TextObject
)

func (m GraphicsMode) String() string {
	switch m {
	case PageDescription:
		return "page description"
	case PathObject:
		return "path object"
	case ClippingPath:
		return "clipping path object"
	case TextObject:
		return "text object"
	default:
		return "unknown graphics mode"
	}
}

// bracketKind identifies what a nested BT or BMC/BDC sequence introduced,
// so ET/EMC can check that the innermost open bracket is the matching
// kind, rather than comparing two independent counters as the reference
// implementation does.
type bracketKind uint8

const (
	bracketText bracketKind = iota
	bracketMarkedContent
)

// popBracket closes the innermost bracket if it is of kind `want`. It
// returns ErrUnbalancedOperatorStack if the stack is empty or the
// innermost bracket is of the other kind (e.g. EMC invoked while a nested
// BT is still open).
func (ap *Appearance) popBracket(want bracketKind) error {
	n := len(ap.brackets)
	if n == 0 || ap.brackets[n-1] != want {
		return errs.ErrUnbalancedOperatorStack
	}
	ap.brackets = ap.brackets[:n-1]
	return nil
}

// Finalize checks that every BT/BMC sequence opened on this appearance has
// been closed, and that the graphics-state stack is balanced. It should be
// called once the content stream is complete, before turning it into an
// XObjectForm.
func (ap *Appearance) Finalize() error {
	if len(ap.brackets) != 0 || len(ap.stateList) != 0 {
		return errs.ErrUnbalancedOperatorStack
	}
	return nil
}

// LineCap mirrors the numeric codes the J operator accepts (PDF 1.7 §8.4.3.3).
type LineCap int

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

// LineJoin mirrors the numeric codes the j operator accepts (PDF 1.7 §8.4.3.4).
type LineJoin int

const (
	LineJoinMiter LineJoin = iota
	LineJoinRound
	LineJoinBevel
)

// inAny reports whether the current mode is one of `modes`.
func (ap *Appearance) inAny(modes ...GraphicsMode) bool {
	for _, m := range modes {
		if ap.mode == m {
			return true
		}
	}
	return false
}

// general graphics state: legal in every graphics object (Table 51).

// SetLineWidth emits w. A negative width is invalid.
func (ap *Appearance) SetLineWidth(w Fl) error {
	if w < 0 {
		return errs.ErrOutOfRange
	}
	ap.State.LineWidth = w
	ap.Ops(OpSetLineWidth{W: w})
	return nil
}

// SetLineCap emits J.
func (ap *Appearance) SetLineCap(cap LineCap) error {
	if cap != LineCapButt && cap != LineCapRound && cap != LineCapSquare {
		return errs.ErrOutOfRange
	}
	ap.State.LineCap = cap
	ap.Ops(OpSetLineCap{Cap: cap})
	return nil
}

// SetLineJoin emits j.
func (ap *Appearance) SetLineJoin(join LineJoin) error {
	if join != LineJoinMiter && join != LineJoinRound && join != LineJoinBevel {
		return errs.ErrOutOfRange
	}
	ap.State.LineJoin = join
	ap.Ops(OpSetLineJoin{Join: join})
	return nil
}

// SetMiterLimit emits M. The limit must be at least 1 (PDF 1.7 §8.4.3.4).
func (ap *Appearance) SetMiterLimit(limit Fl) error {
	if limit < 1 {
		return errs.ErrOutOfRange
	}
	ap.State.MiterLimit = limit
	ap.Ops(OpSetMiterLimit{Limit: limit})
	return nil
}

// SetDashPattern emits d. A negative phase, or a dash array with a
// zero or negative element, is invalid. An empty dash array (solid line)
// always gets a phase of 0.
func (ap *Appearance) SetDashPattern(dash model.DashPattern) error {
	if dash.Phase < 0 {
		return errs.ErrOutOfRange
	}
	for _, v := range dash.Array {
		if v <= 0 {
			return errs.ErrOutOfRange
		}
	}
	if len(dash.Array) == 0 {
		dash.Phase = 0
	}
	ap.State.Dash = dash
	ap.Ops(OpSetDash{Dash: dash})
	return nil
}

// SetFlatness emits i. Valid range is 0 to 100.
func (ap *Appearance) SetFlatness(flatness Fl) error {
	if flatness < 0 || flatness > 100 {
		return errs.ErrOutOfRange
	}
	ap.State.Flatness = flatness
	ap.Ops(OpSetFlat{Flatness: flatness})
	return nil
}

// SetRenderingIntentChecked emits ri.
func (ap *Appearance) SetRenderingIntentChecked(intent model.ObjName) error {
	ap.Ops(OpSetRenderingIntent{Intent: intent})
	return nil
}

// text state: also legal in every graphics object.

// SetCharSpacing emits Tc.
func (ap *Appearance) SetCharSpacing(space Fl) {
	ap.State.CharSpace = space
	ap.Ops(OpSetCharSpacing{Space: space})
}

// SetWordSpacing emits Tw.
func (ap *Appearance) SetWordSpacing(space Fl) {
	ap.State.WordSpace = space
	ap.Ops(OpSetWordSpacing{Space: space})
}

// SetHorizScaling emits Tz. `scale` is a percentage; 100 leaves glyphs
// unscaled. Negative scale is invalid.
func (ap *Appearance) SetHorizScaling(scale Fl) error {
	if scale < 0 {
		return errs.ErrOutOfRange
	}
	ap.State.HorizScaling = scale
	ap.Ops(OpSetHorizScaling{Scale: scale})
	return nil
}

// SetTextRise emits Ts.
func (ap *Appearance) SetTextRise(rise Fl) {
	ap.State.TextRise = rise
	ap.Ops(OpSetTextRise{Rise: rise})
}

// SetTextRenderMode emits Tr. Valid modes are 0 to 7.
func (ap *Appearance) SetTextRenderMode(mode int) error {
	if mode < 0 || mode > 7 {
		return errs.ErrOutOfRange
	}
	ap.State.RenderMode = mode
	ap.Ops(OpSetTextRender{Mode: mode})
	return nil
}

// text positioning: legal only inside a text object.

// TextNextLine emits T*, moving to the start of the next line using the
// current leading, as if MoveText(0, -Leading) had been called.
func (ap *Appearance) TextNextLine() error {
	if ap.mode != TextObject {
		return errs.ErrInvalidGraphicsMode
	}
	ap.State.YTLM -= ap.State.Leading
	ap.Ops(OpTextNextLine{})
	return nil
}

// MoveTextSetLeading moves to the start of the next line as MoveText does,
// and additionally sets the leading to -y (TD).
func (ap *Appearance) MoveTextSetLeading(x, y Fl) error {
	if ap.mode != TextObject {
		return errs.ErrInvalidGraphicsMode
	}
	ap.State.Leading = -y
	ap.State.XTLM += x
	ap.State.YTLM += y
	ap.Ops(OpTextMoveSet{X: x, Y: y})
	return nil
}

// text showing: legal only inside a text object, and require a font.

// ShowTextSpaced emits TJ: a sequence of encoded strings interleaved with
// raw position adjustments (expressed in thousandths of a text space unit).
func (ap *Appearance) ShowTextSpaced(texts []TextSpaced) error {
	if ap.mode != TextObject {
		return errs.ErrInvalidGraphicsMode
	}
	if ap.State.Font.Font == nil {
		return errs.ErrFontRequired
	}
	ap.Ops(OpShowSpaceText{Texts: texts})
	return nil
}

// MoveSetShowText emits ": set the word and character spacing, move to the
// next line using the current leading, and show `text`.
func (ap *Appearance) MoveSetShowText(wordSpace, charSpace Fl, text string) error {
	if ap.mode != TextObject {
		return errs.ErrInvalidGraphicsMode
	}
	if ap.State.Font.Font == nil {
		return errs.ErrFontRequired
	}
	ap.State.WordSpace = wordSpace
	ap.State.CharSpace = charSpace
	ap.State.YTLM -= ap.State.Leading
	s := string(ap.State.Font.Encode([]rune(text)))
	ap.Ops(OpMoveSetShowText{WordSpace: wordSpace, CharSpace: charSpace, Text: s})
	return nil
}

// path construction: PageDescription -> PathObject, or PathObject/ClippingPath -> itself.
// Not legal inside a text object.

func (ap *Appearance) startOrContinuePath() error {
	switch ap.mode {
	case PageDescription:
		ap.mode = PathObject
	case PathObject, ClippingPath:
		// stays
	default:
		return errs.ErrInvalidGraphicsMode
	}
	return nil
}

// MoveTo emits m, starting a new subpath at (x, y).
func (ap *Appearance) MoveTo(x, y Fl) error {
	if err := ap.startOrContinuePath(); err != nil {
		return err
	}
	ap.Ops(OpMoveTo{X: x, Y: y})
	return nil
}

// LineTo emits l.
func (ap *Appearance) LineTo(x, y Fl) error {
	if ap.mode != PathObject && ap.mode != ClippingPath {
		return errs.ErrInvalidGraphicsMode
	}
	ap.Ops(OpLineTo{X: x, Y: y})
	return nil
}

// CurveTo emits c: a cubic Bezier with two explicit control points.
func (ap *Appearance) CurveTo(x1, y1, x2, y2, x3, y3 Fl) error {
	if ap.mode != PathObject && ap.mode != ClippingPath {
		return errs.ErrInvalidGraphicsMode
	}
	ap.Ops(OpCubicTo{X1: x1, Y1: y1, X2: x2, Y2: y2, X3: x3, Y3: y3})
	return nil
}

// CurveTo1 emits v: a cubic Bezier whose first control point is the
// current point.
func (ap *Appearance) CurveTo1(x2, y2, x3, y3 Fl) error {
	if ap.mode != PathObject && ap.mode != ClippingPath {
		return errs.ErrInvalidGraphicsMode
	}
	ap.Ops(OpCurveTo1{X2: x2, Y2: y2, X3: x3, Y3: y3})
	return nil
}

// CurveTo2 emits y: a cubic Bezier whose second control point is the
// final point.
func (ap *Appearance) CurveTo2(x1, y1, x3, y3 Fl) error {
	if ap.mode != PathObject && ap.mode != ClippingPath {
		return errs.ErrInvalidGraphicsMode
	}
	ap.Ops(OpCurveTo2{X1: x1, Y1: y1, X3: x3, Y3: y3})
	return nil
}

// ClosePathOp emits h, closing the current subpath with a straight line
// back to its start.
func (ap *Appearance) ClosePathOp() error {
	if ap.mode != PathObject && ap.mode != ClippingPath {
		return errs.ErrInvalidGraphicsMode
	}
	ap.Ops(OpClosePath{})
	return nil
}

// RectanglePath emits re, appending a rectangle subpath.
func (ap *Appearance) RectanglePath(x, y, w, h Fl) error {
	if err := ap.startOrContinuePath(); err != nil {
		return err
	}
	ap.Ops(OpRectangle{X: x, Y: y, W: w, H: h})
	return nil
}

// clipping path: W / W* mark the current path for clipping. The clip
// itself only takes effect once the following path-painting operator runs
// (PDF 1.7 §8.5.4).

// Clip emits W, using the nonzero winding rule.
func (ap *Appearance) Clip() error {
	if ap.mode != PathObject {
		return errs.ErrInvalidGraphicsMode
	}
	ap.mode = ClippingPath
	ap.pendingClip = true
	ap.Ops(OpClip{})
	return nil
}

// ClipEvenOdd emits W*, using the even-odd rule.
func (ap *Appearance) ClipEvenOdd() error {
	if ap.mode != PathObject {
		return errs.ErrInvalidGraphicsMode
	}
	ap.mode = ClippingPath
	ap.pendingClip = true
	ap.Ops(OpEOClip{})
	return nil
}

// path painting: leave PathObject/ClippingPath, returning to PageDescription.

func (ap *Appearance) finishPath(op Operation) error {
	if ap.mode != PathObject && ap.mode != ClippingPath {
		return errs.ErrInvalidGraphicsMode
	}
	ap.mode = PageDescription
	ap.pendingClip = false
	ap.Ops(op)
	return nil
}

// EndPathNoOp emits n: end the path without painting it (used to realize a
// pending clip with no visible effect).
func (ap *Appearance) EndPathNoOp() error { return ap.finishPath(OpEndPath{}) }

// FillPath emits f, using the nonzero winding rule.
func (ap *Appearance) FillPath() error { return ap.finishPath(OpFill{}) }

// FillPathEvenOdd emits f*.
func (ap *Appearance) FillPathEvenOdd() error { return ap.finishPath(OpEOFill{}) }

// StrokePath emits S.
func (ap *Appearance) StrokePath() error { return ap.finishPath(OpStroke{}) }

// CloseAndStrokePath emits s.
func (ap *Appearance) CloseAndStrokePath() error { return ap.finishPath(OpCloseStroke{}) }

// FillAndStrokePath emits B, using the nonzero winding rule.
func (ap *Appearance) FillAndStrokePath() error { return ap.finishPath(OpFillStroke{}) }

// FillAndStrokePathEvenOdd emits B*.
func (ap *Appearance) FillAndStrokePathEvenOdd() error { return ap.finishPath(OpEOFillStroke{}) }

// CloseFillAndStrokePath emits b.
func (ap *Appearance) CloseFillAndStrokePath() error { return ap.finishPath(OpCloseFillStroke{}) }

// CloseFillAndStrokePathEvenOdd emits b*.
func (ap *Appearance) CloseFillAndStrokePathEvenOdd() error {
	return ap.finishPath(OpCloseEOFillStroke{})
}

// XObjects and shadings: legal at the page description level and inside a
// text object, never inside a path or clipping path.

// InvokeXObject emits Do for an already-registered XObject name.
func (ap *Appearance) InvokeXObject(name model.ObjName) error {
	if !ap.inAny(PageDescription, TextObject) {
		return errs.ErrInvalidGraphicsMode
	}
	ap.Ops(OpXObject{XObject: name})
	return nil
}

// ShadingChecked emits sh for an already-registered shading name.
func (ap *Appearance) ShadingChecked(name model.ObjName) error {
	if !ap.inAny(PageDescription, TextObject) {
		return errs.ErrInvalidGraphicsMode
	}
	ap.Ops(OpShFill{Shading: name})
	return nil
}

// marked content: legal at the page description level and inside a text
// object. BeginMarkedContent/EndMarkedContent must be balanced against
// each other and against BeginText/EndText, tracked on the same bracket
// stack (so e.g. "BT BDC ET" is rejected).

// BeginMarkedContent emits BMC, or BDC if `properties` is non-nil.
func (ap *Appearance) BeginMarkedContent(tag model.ObjName, properties PropertyList) error {
	if !ap.inAny(PageDescription, TextObject) {
		return errs.ErrInvalidGraphicsMode
	}
	ap.brackets = append(ap.brackets, bracketMarkedContent)
	ap.Ops(OpBeginMarkedContent{Tag: tag, Properties: properties})
	return nil
}

// EndMarkedContent emits EMC, closing the innermost BeginMarkedContent.
func (ap *Appearance) EndMarkedContent() error {
	if err := ap.popBracket(bracketMarkedContent); err != nil {
		return err
	}
	ap.Ops(OpEndMarkedContent{})
	return nil
}

// MarkPoint emits MP, or DP if `properties` is non-nil. Unlike
// BeginMarkedContent, it does not open a nested sequence.
func (ap *Appearance) MarkPoint(tag model.ObjName, properties PropertyList) error {
	if !ap.inAny(PageDescription, TextObject) {
		return errs.ErrInvalidGraphicsMode
	}
	ap.Ops(OpMarkPoint{Tag: tag, Properties: properties})
	return nil
}
