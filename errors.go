package xlsx

import "errors"

// Error kinds. Every error returned by this package wraps exactly one of them,
// so callers can tell bad input (ErrRange, ErrFormat) from bad I/O (ErrIO) and
// broken internal state (ErrStyle).
var (
	ErrRange     = errors.New("value out of range")
	ErrFormat    = errors.New("invalid format")
	ErrStyle     = errors.New("style error")
	ErrIO        = errors.New("xlsx i/o error")
	ErrWorksheet = errors.New("worksheet error")
)

var (
	ErrWorkbookNotExist      = errors.New("xl/workbook.xml doesn't exist")
	ErrSheetNotFound         = errors.New("sheet not found")
	ErrSheetPartNotExist     = errors.New("worksheet part doesn't exist")
	ErrIncorrectSharedString = errors.New("incorrect shared string")
	ErrUnknownComponent      = errors.New("unknown style component")
	ErrNoClosingQuote        = errors.New("no closing quote found")
)
