package contentstream

import (
	"strings"

	"github.com/agnivon/pdfkit/errs"
	"github.com/agnivon/pdfkit/fonts"
)

// Alignment controls the horizontal placement of a line of text laid out
// by TextOut or TextRect.
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignCenter
	AlignJustify
)

// hardBreaks splits text on explicit CR, LF and CRLF line breaks, the way a
// multiline form field value is split before word-wrapping each resulting
// paragraph independently.
func hardBreaks(text string) (arr []string) {
	cs := []rune(text)
	var buf strings.Builder
	for k := 0; k < len(cs); k++ {
		c := cs[k]
		switch c {
		case '\r':
			if k+1 < len(cs) && cs[k+1] == '\n' {
				k++
			}
			arr = append(arr, buf.String())
			buf.Reset()
		case '\n':
			arr = append(arr, buf.String())
			buf.Reset()
		default:
			buf.WriteRune(c)
		}
	}
	arr = append(arr, buf.String())
	return arr
}

func stringWidth(s string, font fonts.Font, size Fl) (w Fl) {
	for _, r := range s {
		w += font.GetWidth(r, size)
	}
	return w
}

// wrapBreaks greedily fills lines no wider than `width`, breaking on spaces
// when possible and falling back to a hard character break otherwise.
// paragraphEnd[i] reports whether lines[i] is the last line of its
// paragraph, i.e. ends on an explicit hard break rather than a wrap point.
func wrapBreaks(breaks []string, font fonts.Font, fontSize, width Fl) (lines []string, paragraphEnd []bool) {
	emit := func(s string) {
		lines = append(lines, s)
		paragraphEnd = append(paragraphEnd, false)
	}
	var buf []rune
	for _, br := range breaks {
		buf = buf[:0]
		var w Fl
		cs := []rune(br)
		// 0: line start, 1: inside a word, 2: skipping leading spaces
		state := 0
		lastSpace := -1
		refk := 0
		for k := 0; k < len(cs); k++ {
			c := cs[k]
			switch state {
			case 0:
				w += font.GetWidth(c, fontSize)
				buf = append(buf, c)
				if w > width {
					w = 0
					if len(buf) > 1 {
						k--
						buf = buf[:len(buf)-1]
					}
					emit(string(buf))
					buf = buf[:0]
					refk = k
					if c == ' ' {
						state = 2
					} else {
						state = 1
					}
				} else if c != ' ' {
					state = 1
				}
			case 1:
				w += font.GetWidth(c, fontSize)
				buf = append(buf, c)
				if c == ' ' {
					lastSpace = k
				}
				if w > width {
					w = 0
					if lastSpace >= 0 {
						k = lastSpace
						buf = buf[:lastSpace-refk]
						emit(strings.TrimRight(string(buf), " "))
						buf = buf[:0]
						refk = k
						lastSpace = -1
						state = 2
					} else {
						if len(buf) > 1 {
							k--
							buf = buf[:len(buf)-1]
						}
						emit(string(buf))
						buf = buf[:0]
						refk = k
						if c == ' ' {
							state = 2
						}
					}
				}
			case 2:
				if c != ' ' {
					w = 0
					k--
					state = 1
				}
			}
		}
		emit(strings.TrimRight(string(buf), " "))
		paragraphEnd[len(paragraphEnd)-1] = true
	}
	return lines, paragraphEnd
}

// layout is the shared engine for TextOut and TextRect: it lays out `text`
// inside the box [left,right]x[bottom,top], wrapping into multiple lines
// when `wrap` is set, and returns the number of runes of `text` actually
// placed. Must be called inside an already-open text object with a font
// and leading configured (SetFontAndSize, SetLeading).
func (ap *Appearance) layout(left, top, right, bottom Fl, text string, align Alignment, wrap, force bool) (int, error) {
	if ap.mode != TextObject {
		return 0, errs.ErrInvalidGraphicsMode
	}
	if ap.State.Font.Font == nil {
		return 0, errNoFont
	}
	font := ap.State.Font.Font
	fontSize := ap.State.FontSize
	fd := ap.State.Font.Desc()
	leading := ap.State.Leading
	width := right - left
	if width < 0 {
		width = 0
	}

	breaks := hardBreaks(text)
	var lines []string
	var paragraphEnd []bool
	if wrap {
		lines, paragraphEnd = wrapBreaks(breaks, font, fontSize, width)
	} else {
		lines = breaks
		paragraphEnd = make([]bool, len(lines))
		for i := range paragraphEnd {
			paragraphEnd[i] = true
		}
		if !force {
			for _, ln := range lines {
				if stringWidth(strings.TrimRight(ln, " \r\n"), font, fontSize) > width {
					return 0, errs.ErrInsufficientSpace
				}
			}
		}
	}

	y0 := top - fd.FontBBox.Ury*fontSize/1000 + leading
	truncated := false
	if !force {
		fit := len(lines)
		if leading > 0 {
			fit = int((y0-bottom)/leading) + 1
		}
		if fit < 0 {
			fit = 0
		}
		if fit == 0 {
			return 0, errs.ErrInsufficientSpace
		}
		if fit < len(lines) {
			lines = lines[:fit]
			paragraphEnd = paragraphEnd[:fit]
			truncated = true
		}
	}

	savedCharSpace := ap.State.CharSpace
	consumed := 0
	for i, ln := range lines {
		trimmed := strings.TrimRight(ln, " \r\n")
		rw := stringWidth(trimmed, font, fontSize)
		clusters := len([]rune(trimmed))

		var x Fl
		switch align {
		case AlignRight:
			x = right - rw
		case AlignCenter:
			x = left + (width-rw)/2
		default:
			x = left
		}

		adjust := savedCharSpace
		if align == AlignJustify && i != len(lines)-1 && !paragraphEnd[i] && clusters > 1 && rw < width {
			adjust = (width - rw) / Fl(clusters-1)
		}
		ap.SetCharSpacing(adjust)

		if i == 0 {
			dx, dy := x-ap.State.XTLM, y0-ap.State.YTLM
			if err := ap.MoveText(dx, dy); err != nil {
				return consumed, err
			}
			if err := ap.ShowText(trimmed); err != nil {
				return consumed, err
			}
		} else {
			if align != AlignLeft {
				if err := ap.MoveText(x-ap.State.XTLM, 0); err != nil {
					return consumed, err
				}
			}
			if err := ap.NewlineShowText(trimmed); err != nil {
				return consumed, err
			}
		}
		consumed += len([]rune(ln))
		if i != len(lines)-1 {
			consumed++ // the hard break consumed between this line and the next
		}
	}
	if truncated {
		return consumed, errs.ErrInsufficientSpace
	}
	return consumed, nil
}

// TextOut draws `text` as a single line inside the box [left,right]x{top},
// aligned per `align`. It never wraps: if the line is wider than the box,
// ErrInsufficientSpace is returned without drawing anything.
func (ap *Appearance) TextOut(left, top, right, bottom Fl, text string, align Alignment) (int, error) {
	return ap.layout(left, top, right, bottom, text, align, false, false)
}

// TextRect draws `text` inside the box [left,right]x[bottom,top], wrapping
// greedily on word boundaries. If `force` is false and the text does not
// fit within the box, ErrInsufficientSpace is returned, carrying (as the
// first return value) the number of runes that were laid out before the
// failure. `force` bypasses the vertical bound, used when generating
// appearance streams for multiline text fields where overflow is
// tolerated.
func (ap *Appearance) TextRect(left, top, right, bottom Fl, text string, align Alignment, force bool) (int, error) {
	return ap.layout(left, top, right, bottom, text, align, true, force)
}
