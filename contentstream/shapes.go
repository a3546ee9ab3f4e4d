package contentstream

import (
	"math"

	"github.com/agnivon/pdfkit/errs"
)

// kappa is the cubic-Bezier control-point offset (as a fraction of the
// radius) that best approximates a quarter circle.
const kappa Fl = 0.552

// Circle appends a closed path approximating a circle of radius `r` centered
// on (x, y), built from four cubic Beziers starting at (x-r, y) and running
// clockwise. Legal wherever path construction is legal.
func (ap *Appearance) Circle(x, y, r Fl) error {
	return ap.Ellipse(x, y, r, r)
}

// Ellipse appends a closed path approximating an ellipse of the given
// radii centered on (x, y), using the same four-Bezier construction as
// Circle with per-axis control offsets.
func (ap *Appearance) Ellipse(x, y, xray, yray Fl) error {
	kx, ky := xray*kappa, yray*kappa
	if err := ap.MoveTo(x-xray, y); err != nil {
		return err
	}
	// quadrant A: (x-xray, y) -> (x, y+yray)
	if err := ap.CurveTo(x-xray, y+ky, x-kx, y+yray, x, y+yray); err != nil {
		return err
	}
	// quadrant B: (x, y+yray) -> (x+xray, y)
	if err := ap.CurveTo(x+kx, y+yray, x+xray, y+ky, x+xray, y); err != nil {
		return err
	}
	// quadrant C: (x+xray, y) -> (x, y-yray)
	if err := ap.CurveTo(x+xray, y-ky, x+kx, y-yray, x, y-yray); err != nil {
		return err
	}
	// quadrant D: (x, y-yray) -> (x-xray, y)
	return ap.CurveTo(x-kx, y-yray, x-xray, y-ky, x-xray, y)
}

// Arc appends the path of a circular arc of radius `r` centered on (cx, cy),
// running from angle α1 to α2 (in degrees, measured clockwise from the
// positive y axis, i.e. from 12 o'clock), as a sequence of cubic Beziers each spanning at
// most 90 degrees. The first point is emitted as a moveto if the stream is
// currently at the page-description level, or as a lineto if a path is
// already being constructed (so an arc can continue an existing subpath).
// An error is returned if the angular span is 360 degrees or more.
func (ap *Appearance) Arc(cx, cy, r, alpha1, alpha2 Fl) error {
	if math.Abs(float64(alpha2-alpha1)) >= 360 {
		return errs.ErrOutOfRange
	}
	for alpha1 < 0 || alpha2 < 0 {
		alpha1 += 360
		alpha2 += 360
	}
	first := true
	for {
		if math.Abs(float64(alpha2-alpha1)) <= 90 {
			return ap.arcSegment(cx, cy, r, alpha1, alpha2, first)
		}
		var tmp Fl
		if alpha2 > alpha1 {
			tmp = alpha1 + 90
		} else {
			tmp = alpha1 - 90
		}
		if err := ap.arcSegment(cx, cy, r, alpha1, tmp, first); err != nil {
			return err
		}
		first = false
		alpha1 = tmp
		if math.Abs(float64(alpha1-alpha2)) < 0.1 {
			return nil
		}
	}
}

// arcSegment emits one Bezier spanning at most 90 degrees of the arc
// described by Arc, following the Whizkid/Cohen circular-arc
// approximation.
func (ap *Appearance) arcSegment(cx, cy, r, alpha1, alpha2 Fl, emitLead bool) error {
	delta := (90 - (alpha1+alpha2)/2) * math.Pi / 180
	theta := (alpha2 - alpha1) / 2 * math.Pi / 180

	p0x := r * Fl(math.Cos(float64(theta)))
	p0y := r * Fl(math.Sin(float64(theta)))
	p2x := (r*4 - p0x) / 3
	p2y := (r - p0x) * (p0x - r*3) / (3 * p0y)
	p1x, p1y := p2x, -p2y
	p3x, p3y := p0x, -p0y

	cosd, sind := Fl(math.Cos(float64(delta))), Fl(math.Sin(float64(delta)))
	rotate := func(px, py Fl) (Fl, Fl) {
		return px*cosd - py*sind + cx, px*sind + py*cosd + cy
	}
	x0, y0 := rotate(p0x, p0y)
	x1, y1 := rotate(p1x, p1y)
	x2, y2 := rotate(p2x, p2y)
	x3, y3 := rotate(p3x, p3y)

	if emitLead {
		if ap.Mode() == PathObject || ap.Mode() == ClippingPath {
			if err := ap.LineTo(x0, y0); err != nil {
				return err
			}
		} else {
			if err := ap.MoveTo(x0, y0); err != nil {
				return err
			}
		}
	}
	return ap.CurveTo(x1, y1, x2, y2, x3, y3)
}
