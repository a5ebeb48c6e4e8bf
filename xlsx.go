package xlsx

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/anfilat/xlsx-rw/internal/opc"
)

const (
	partWorkbook      = "xl/workbook.xml"
	partWorkbookRels  = "xl/_rels/workbook.xml.rels"
	partSharedStrings = "xl/sharedStrings.xml"
	partStyles        = "xl/styles.xml"
	partCoreProps     = "docProps/core.xml"
	partAppProps      = "docProps/app.xml"
	partContentTypes  = "[Content_Types].xml"
	partRootRels      = "_rels/.rels"
)

func worksheetPart(i int) string {
	return fmt.Sprintf("xl/worksheets/sheet%d.xml", i+1)
}

// reader loads one package into a new workbook. Parts are read in the order
// shared strings, styles, workbook, relationships, worksheets.
type reader struct {
	pkg           *opc.Package
	opts          *ImportOptions
	log           *slog.Logger
	book          *Workbook
	sharedStrings sharedStrings
	styles        *styleTable
}

// Open reads the xlsx file at path. opts may be nil.
func Open(path string, opts *ImportOptions) (*Workbook, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrIO, path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: stat %s: %w", ErrIO, path, err)
	}
	return Read(f, info.Size(), opts)
}

// ReadFrom reads a whole xlsx document from a stream.
func ReadFrom(r io.Reader, opts *ImportOptions) (*Workbook, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return Read(bytes.NewReader(data), int64(len(data)), opts)
}

func Read(r io.ReaderAt, size int64, opts *ImportOptions) (*Workbook, error) {
	pkg, err := opc.Open(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: open package: %w", ErrIO, err)
	}
	x := &reader{
		pkg:  pkg,
		opts: opts,
		log:  opts.logger(),
		book: newWorkbook(),
	}
	if opts != nil {
		x.book.Logger = opts.Logger
	}
	if err := x.load(); err != nil {
		return nil, err
	}
	return x.book, nil
}

// part runs fn over a part, wrapping any failure as an i/o error.
func (x *reader) part(name string, fn func(io.Reader) error) error {
	rc, err := x.pkg.Part(name)
	if err != nil {
		return fmt.Errorf("%w: read %s: %w", ErrIO, name, err)
	}
	defer rc.Close()
	if err := fn(rc); err != nil {
		return fmt.Errorf("%w: read %s: %w", ErrIO, name, err)
	}
	return nil
}

// find locates an optional part, first by its usual name and then by suffix.
func (x *reader) find(name, suffix string) (string, bool) {
	if x.pkg.Has(name) {
		return name, true
	}
	return x.pkg.Find(suffix)
}

func (x *reader) load() error {
	if name, ok := x.find(partSharedStrings, "sharedStrings.xml"); ok {
		err := x.part(name, func(rd io.Reader) (err error) {
			x.sharedStrings, err = readSharedStrings(rd, x.opts.phonetics())
			return err
		})
		if err != nil {
			return err
		}
	}

	if name, ok := x.find(partStyles, "styles.xml"); ok {
		err := x.part(name, func(rd io.Reader) (err error) {
			x.styles, err = readStyleSheet(rd)
			return err
		})
		if err != nil {
			return err
		}
		x.book.styles = x.styles.repo
	}

	if !x.pkg.Has(partWorkbook) {
		return fmt.Errorf("%w: %w", ErrIO, ErrWorkbookNotExist)
	}
	var wb *xlsxWorkbook
	err := x.part(partWorkbook, func(rd io.Reader) (err error) {
		wb, err = readWorkbook(rd)
		return err
	})
	if err != nil {
		return err
	}

	sheetParts := map[string]string{}
	if x.pkg.Has(partWorkbookRels) {
		err := x.part(partWorkbookRels, func(rd io.Reader) error {
			rels, err := readRelationships(rd)
			if err != nil {
				return err
			}
			sheetParts = rels.targets(relTypeWorksheet)
			return nil
		})
		if err != nil {
			return err
		}
	}

	x.book.Date1904 = wb.date1904()
	x.book.Protection = wb.protection()
	for i, sheet := range wb.Sheets {
		if err := x.loadSheet(i, sheet, sheetParts); err != nil {
			return err
		}
	}
	if tab := wb.activeTab(); tab >= 0 && tab < len(x.book.sheets) {
		x.book.selected = tab
	}

	if x.pkg.Has(partCoreProps) {
		err := x.part(partCoreProps, func(rd io.Reader) (err error) {
			x.book.Metadata, err = readCoreProperties(rd)
			return err
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (x *reader) loadSheet(i int, sheet xlsxSheet, sheetParts map[string]string) error {
	name, ok := sheetParts[sheet.ID]
	if !ok {
		name = worksheetPart(i)
		x.log.Debug("no relationship for sheet, using positional part name",
			slog.String("sheet", sheet.Name), slog.String("part", name))
	}
	if !x.pkg.Has(name) {
		return fmt.Errorf("%w: sheet %q part %s: %w", ErrIO, sheet.Name, name, ErrSheetPartNotExist)
	}
	ws := newWorksheet(x.book, sheet.Name)
	ws.hidden = sheet.hidden()
	x.book.sheets = append(x.book.sheets, ws)
	return x.part(name, func(rd io.Reader) error {
		return readWorksheet(rd, ws, x)
	})
}
