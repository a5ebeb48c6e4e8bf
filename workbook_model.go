package xlsx

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

const maxSheetNameLength = 31

// Metadata is the document information stored in docProps/core.xml.
type Metadata struct {
	Title          string
	Subject        string
	Creator        string
	Keywords       string
	Description    string
	LastModifiedBy string
	Category       string
	Created        time.Time
	Modified       time.Time
}

// Workbook is an in-memory spreadsheet document. It is not safe for
// concurrent use.
type Workbook struct {
	Metadata   Metadata
	Protection WorkbookProtection
	// Date1904 selects the 1904 date system for dates written as numbers.
	Date1904 bool
	Logger   *slog.Logger

	sheets   []*Worksheet
	styles   *StyleRepository
	selected int
}

// NewWorkbook creates a workbook with one empty worksheet.
func NewWorkbook(sheetName string) (*Workbook, error) {
	wb := newWorkbook()
	if _, err := wb.AddWorksheet(sheetName); err != nil {
		return nil, err
	}
	return wb, nil
}

func newWorkbook() *Workbook {
	return &Workbook{styles: NewStyleRepository()}
}

func (wb *Workbook) logger() *slog.Logger {
	if wb.Logger != nil {
		return wb.Logger
	}
	return discardLogger
}

// Styles is the repository every cell and column style of the workbook is
// interned in.
func (wb *Workbook) Styles() *StyleRepository {
	return wb.styles
}

func (wb *Workbook) intern(s *Style) *Style {
	if s == nil {
		return nil
	}
	return wb.styles.Add(*s)
}

func validateSheetName(name string) error {
	if name == "" || len([]rune(name)) > maxSheetNameLength {
		return fmt.Errorf("sheet name %q must have 1 to %d characters: %w", name, maxSheetNameLength, ErrWorksheet)
	}
	if strings.ContainsAny(name, `[]*?/\:`) {
		return fmt.Errorf("sheet name %q contains an invalid character: %w", name, ErrWorksheet)
	}
	if name[0] == '\'' || name[len(name)-1] == '\'' {
		return fmt.Errorf("sheet name %q starts or ends with an apostrophe: %w", name, ErrWorksheet)
	}
	return nil
}

func (wb *Workbook) AddWorksheet(name string) (*Worksheet, error) {
	if err := validateSheetName(name); err != nil {
		return nil, err
	}
	if wb.index(name) >= 0 {
		return nil, fmt.Errorf("sheet %q already exists: %w", name, ErrWorksheet)
	}
	ws := newWorksheet(wb, name)
	wb.sheets = append(wb.sheets, ws)
	return ws, nil
}

func (wb *Workbook) index(name string) int {
	for i, ws := range wb.sheets {
		if strings.EqualFold(ws.name, name) {
			return i
		}
	}
	return -1
}

// Worksheet finds a sheet by name, ignoring case like Excel does.
func (wb *Workbook) Worksheet(name string) (*Worksheet, error) {
	i := wb.index(name)
	if i < 0 {
		return nil, fmt.Errorf("sheet %q: %w: %w", name, ErrSheetNotFound, ErrWorksheet)
	}
	return wb.sheets[i], nil
}

func (wb *Workbook) WorksheetAt(i int) (*Worksheet, error) {
	if i < 0 || i >= len(wb.sheets) {
		return nil, fmt.Errorf("sheet %d: %w: %w", i, ErrSheetNotFound, ErrWorksheet)
	}
	return wb.sheets[i], nil
}

func (wb *Workbook) Worksheets() []*Worksheet {
	return append([]*Worksheet(nil), wb.sheets...)
}

func (wb *Workbook) SheetNames() []string {
	names := make([]string, len(wb.sheets))
	for i, ws := range wb.sheets {
		names[i] = ws.name
	}
	return names
}

// RemoveWorksheet deletes a sheet. The last visible sheet cannot be removed.
func (wb *Workbook) RemoveWorksheet(name string) error {
	i := wb.index(name)
	if i < 0 {
		return fmt.Errorf("sheet %q: %w: %w", name, ErrSheetNotFound, ErrWorksheet)
	}
	if !wb.sheets[i].hidden && wb.visibleSheets() == 1 {
		return fmt.Errorf("sheet %q is the last visible sheet: %w", name, ErrWorksheet)
	}
	wb.sheets = append(wb.sheets[:i], wb.sheets[i+1:]...)
	if wb.selected >= len(wb.sheets) || wb.selected > i {
		wb.selected = max(wb.selected-1, 0)
	}
	return nil
}

func (wb *Workbook) renameWorksheet(ws *Worksheet, name string) error {
	if err := validateSheetName(name); err != nil {
		return err
	}
	if i := wb.index(name); i >= 0 && wb.sheets[i] != ws {
		return fmt.Errorf("sheet %q already exists: %w", name, ErrWorksheet)
	}
	ws.name = name
	return nil
}

func (wb *Workbook) visibleSheets() int {
	n := 0
	for _, ws := range wb.sheets {
		if !ws.hidden {
			n++
		}
	}
	return n
}

// SelectedWorksheet is the sheet shown when the file is opened.
func (wb *Workbook) SelectedWorksheet() *Worksheet {
	if len(wb.sheets) == 0 {
		return nil
	}
	return wb.sheets[wb.selected]
}

func (wb *Workbook) SetSelectedWorksheet(name string) error {
	i := wb.index(name)
	if i < 0 {
		return fmt.Errorf("sheet %q: %w: %w", name, ErrSheetNotFound, ErrWorksheet)
	}
	if wb.sheets[i].hidden {
		return fmt.Errorf("sheet %q is hidden: %w", name, ErrWorksheet)
	}
	wb.selected = i
	return nil
}

// SetProtection locks the workbook structure. An empty password stores no
// hash.
func (wb *Workbook) SetProtection(lockStructure, lockWindows bool, password string) {
	wb.Protection = WorkbookProtection{
		LockStructure: lockStructure,
		LockWindows:   lockWindows,
		PasswordHash:  LegacyPasswordHash(password),
	}
}

// validate checks the invariants a file must satisfy before it is written.
func (wb *Workbook) validate() error {
	if len(wb.sheets) == 0 {
		return fmt.Errorf("workbook has no sheets: %w", ErrWorksheet)
	}
	if wb.visibleSheets() == 0 {
		return fmt.Errorf("workbook has no visible sheets: %w", ErrWorksheet)
	}
	seen := make(map[string]bool, len(wb.sheets))
	for _, ws := range wb.sheets {
		key := strings.ToLower(ws.name)
		if seen[key] {
			return fmt.Errorf("sheet %q is not unique: %w", ws.name, ErrWorksheet)
		}
		seen[key] = true
	}
	return nil
}

// activeTab is the selected sheet, or the first visible one when the
// selected sheet has been hidden.
func (wb *Workbook) activeTab() int {
	if wb.selected < len(wb.sheets) && !wb.sheets[wb.selected].hidden {
		return wb.selected
	}
	for i, ws := range wb.sheets {
		if !ws.hidden {
			return i
		}
	}
	return 0
}
