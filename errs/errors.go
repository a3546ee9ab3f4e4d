// Package errs collects the sentinel error values returned by the
// content-stream state machine and the higher-level layers built on it.
// Callers compare against these with errors.Is; none of them carry
// dynamic state, matching the "errors are surfaced, not retried" policy.
// No function in this module returns ErrInvalidFont, ErrInvalidXObject,
// ErrInvalidExtGState, ErrStringTooLong, ErrDictItemNotFound or ErrAllocation.
package errs

import "errors"

var (
	// ErrInvalidGraphicsMode is returned when an operator is invoked while
	// the content stream is not in one of its legal graphics modes.
	ErrInvalidGraphicsMode = errors.New("pdfkit: operator not legal in the current graphics mode")

	// ErrOutOfRange is returned when a numeric operator argument falls
	// outside the range the PDF specification allows for it.
	ErrOutOfRange = errors.New("pdfkit: argument out of range")

	// ErrInvalidParameter covers malformed arguments that are not simply
	// out of numeric range (an empty structure tag, ...). Unknown line
	// cap/join constants are reported as ErrOutOfRange.
	ErrInvalidParameter = errors.New("pdfkit: invalid parameter")

	// ErrFontRequired is returned by text-showing operators when no font
	// has been selected with Tf.
	ErrFontRequired = errors.New("pdfkit: no font is currently selected")

	// ErrInvalidFont reports a font reference that does not resolve to
	// a usable font for the operation requested.
	ErrInvalidFont = errors.New("pdfkit: invalid font")

	// ErrInvalidXObject reports an XObject, invoked with Do, that does
	// not belong to the same document as the page referencing it.
	ErrInvalidXObject = errors.New("pdfkit: xobject does not belong to this document")

	// ErrInvalidExtGState is the ExtGState analogue of ErrInvalidXObject.
	ErrInvalidExtGState = errors.New("pdfkit: extended graphics state does not belong to this document")

	// ErrUnbalancedOperatorStack is returned by ET/EMC when the innermost
	// open bracket (text object or marked-content sequence) is not the one
	// being closed.
	ErrUnbalancedOperatorStack = errors.New("pdfkit: unbalanced text object / marked-content sequence")

	// ErrCannotRestoreGState is returned by Q when only the sentinel frame
	// remains on the graphics-state stack.
	ErrCannotRestoreGState = errors.New("pdfkit: graphics state stack is empty")

	// ErrInsufficientSpace is returned by TextRect when the given box
	// cannot hold the (remaining) text; it carries partial-progress data
	// in the caller's return values, not in the error itself.
	ErrInsufficientSpace = errors.New("pdfkit: not enough space to lay out text")

	// ErrStringTooLong reports a string argument that exceeds a
	// collaborator-imposed maximum length (e.g. a form field's MaxLen).
	ErrStringTooLong = errors.New("pdfkit: string exceeds maximum length")

	// ErrDictItemNotFound reports a lookup into a dictionary-backed
	// structure (resources, AcroForm fields, ...) that misses.
	ErrDictItemNotFound = errors.New("pdfkit: dictionary item not found")

	// ErrStreamIoFailed wraps a failure writing to the underlying byte
	// sink; the first such failure is sticky for the document.
	ErrStreamIoFailed = errors.New("pdfkit: write to content stream failed")

	// ErrAllocation reports an allocation request that the document's
	// object arena cannot satisfy.
	ErrAllocation = errors.New("pdfkit: allocation failed")
)
