package xlsx

import (
	"strconv"
	"strings"
	"unicode/utf16"
)

// SheetProtectionValue is a set of actions still allowed on a protected sheet.
type SheetProtectionValue uint16

const (
	AllowObjects SheetProtectionValue = 1 << iota
	AllowScenarios
	AllowFormatCells
	AllowFormatColumns
	AllowFormatRows
	AllowInsertColumns
	AllowInsertRows
	AllowInsertHyperlinks
	AllowDeleteColumns
	AllowDeleteRows
	AllowSelectLockedCells
	AllowSort
	AllowAutoFilter
	AllowPivotTables
	AllowSelectUnlockedCells
)

// protectionAttrs lists the sheetProtection attributes with the value Excel
// assumes when the attribute is missing. True means the action is blocked.
var protectionAttrs = []struct {
	value   SheetProtectionValue
	name    string
	blocked bool
}{
	{AllowObjects, "objects", false},
	{AllowScenarios, "scenarios", false},
	{AllowFormatCells, "formatCells", true},
	{AllowFormatColumns, "formatColumns", true},
	{AllowFormatRows, "formatRows", true},
	{AllowInsertColumns, "insertColumns", true},
	{AllowInsertRows, "insertRows", true},
	{AllowInsertHyperlinks, "insertHyperlinks", true},
	{AllowDeleteColumns, "deleteColumns", true},
	{AllowDeleteRows, "deleteRows", true},
	{AllowSelectLockedCells, "selectLockedCells", false},
	{AllowSort, "sort", true},
	{AllowAutoFilter, "autoFilter", true},
	{AllowPivotTables, "pivotTables", true},
	{AllowSelectUnlockedCells, "selectUnlockedCells", false},
}

// DefaultSheetProtection keeps the cells selectable, like Excel does.
const DefaultSheetProtection = AllowSelectLockedCells | AllowSelectUnlockedCells

type SheetProtection struct {
	Enabled      bool
	Allowed      SheetProtectionValue
	PasswordHash string
}

func (p SheetProtection) Allows(v SheetProtectionValue) bool {
	return p.Allowed&v != 0
}

type WorkbookProtection struct {
	LockStructure bool
	LockWindows   bool
	PasswordHash  string
}

func (p WorkbookProtection) enabled() bool {
	return p.LockStructure || p.LockWindows || p.PasswordHash != ""
}

// LegacyPasswordHash is the 16 bit hash stored in sheet and workbook
// protection elements. It runs over the UTF-16 code units of the password.
// It is not a security measure.
func LegacyPasswordHash(password string) string {
	if password == "" {
		return ""
	}
	units := utf16.Encode([]rune(password))
	hash := 0
	for i := len(units) - 1; i >= 0; i-- {
		hash = ((hash >> 14) & 0x01) | ((hash << 1) & 0x7fff)
		hash ^= int(units[i])
	}
	hash = ((hash >> 14) & 0x01) | ((hash << 1) & 0x7fff)
	hash ^= 0x8000 | 'N'<<8 | 'K'
	hash ^= len(units)
	return strings.ToUpper(strconv.FormatInt(int64(hash), 16))
}
