package xlsx

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLoadImportOptions(t *testing.T) {
	yml := `
enforce_date_times_as_numbers: true
enforce_phonetic_character_import: true
global_enforcing_type: all_numbers_to_decimal
enforced_column_types:
  B: date
  "3": string
enforcing_start_row_number: 2
time_span_format: "15:04"
temporal_culture: de-DE
`
	opts, err := LoadImportOptions(strings.NewReader(yml))
	require.NoError(t, err)
	require.True(t, opts.EnforceDateTimesAsNumbers)
	require.True(t, opts.phonetics())
	require.Equal(t, AllNumbersToDecimal, opts.GlobalEnforcingType)
	require.Equal(t, map[int]ColumnType{1: ColumnDate, 3: ColumnString}, opts.EnforcedColumnTypes)
	require.Equal(t, 2, opts.EnforcingStartRowNumber)
	require.Equal(t, "15:04", opts.TimeSpanFormat)
	require.Equal(t, language.MustParse("de-DE"), opts.TemporalCulture)
	require.True(t, opts.enforcing())
}

func TestLoadImportOptionsEmpty(t *testing.T) {
	opts, err := LoadImportOptions(strings.NewReader(""))
	require.NoError(t, err)
	require.False(t, opts.enforcing())
}

func TestLoadImportOptionsErrors(t *testing.T) {
	for _, yml := range []string{
		"global_enforcing_type: sometimes\n",
		"enforced_column_types:\n  A: colour\n",
		"unknown_option: 1\n",
		"temporal_culture: \"not a tag!\"\n",
	} {
		_, err := LoadImportOptions(strings.NewReader(yml))
		require.ErrorIs(t, err, ErrFormat, yml)
	}
	_, err := LoadImportOptions(strings.NewReader("enforcing_start_row_number: -1\n"))
	require.ErrorIs(t, err, ErrRange)
}

func enforced(opts *ImportOptions, v Value, row int) *Cell {
	c := &Cell{Value: v, Type: resolveType(v), Address: Address{Row: row}}
	opts.enforce(c, false)
	return c
}

func TestEnforceGlobalType(t *testing.T) {
	opts := &ImportOptions{GlobalEnforcingType: AllNumbersToDouble}
	require.Equal(t, KindFloat64, enforced(opts, Int(3), 0).Value.Kind())

	opts.GlobalEnforcingType = AllNumbersToInt
	c := enforced(opts, Float(2.5), 0)
	require.Equal(t, KindInt, c.Value.Kind())
	require.Equal(t, int64(2), c.Value.Int())

	opts.GlobalEnforcingType = AllNumbersToDecimal
	c = enforced(opts, Float(1.25), 0)
	require.True(t, decimal.RequireFromString("1.25").Equal(c.Value.Decimal()))

	opts.GlobalEnforcingType = AllSingleToDecimal
	require.Equal(t, KindDecimal, enforced(opts, Float(float32(1.5)), 0).Value.Kind())
	require.Equal(t, KindFloat64, enforced(opts, Float(1.5), 0).Value.Kind())

	opts.GlobalEnforcingType = EverythingToString
	c = enforced(opts, Bool(true), 0)
	require.Equal(t, CellTypeString, c.Type)
	require.Equal(t, "true", c.Value.Str())
	c = enforced(opts, Date(time.Date(2020, time.May, 1, 13, 0, 0, 0, time.UTC)), 0)
	require.Equal(t, "2020-05-01 13:00:00", c.Value.Str())
}

func TestEnforceStartRow(t *testing.T) {
	opts := &ImportOptions{GlobalEnforcingType: EverythingToString, EnforcingStartRowNumber: 1}
	require.Equal(t, CellTypeNumber, enforced(opts, Int(1), 0).Type)
	require.Equal(t, CellTypeString, enforced(opts, Int(1), 1).Type)
}

func TestEnforceColumnTypes(t *testing.T) {
	opts := &ImportOptions{EnforcedColumnTypes: map[int]ColumnType{0: ColumnNumeric}}
	c := enforced(opts, String(" 42 "), 0)
	require.Equal(t, int64(42), c.Value.Int())
	require.Equal(t, CellTypeString, enforced(opts, String("abc"), 0).Type)

	opts.EnforcedColumnTypes[0] = ColumnDate
	c = enforced(opts, Float(43952.0), 0)
	require.Equal(t, CellTypeDate, c.Type)
	require.Equal(t, time.Date(2020, time.May, 1, 0, 0, 0, 0, time.UTC), c.Value.Date())
	c = enforced(opts, String("2020-05-01"), 0)
	require.Equal(t, time.Date(2020, time.May, 1, 0, 0, 0, 0, time.UTC), c.Value.Date())

	opts.TemporalCulture = language.German
	c = enforced(opts, String("01.05.2020"), 0)
	require.Equal(t, CellTypeDate, c.Type)
	require.Equal(t, time.Date(2020, time.May, 1, 0, 0, 0, 0, time.UTC), c.Value.Date())

	opts.EnforcedColumnTypes[0] = ColumnTime
	c = enforced(opts, String("01:30:00"), 0)
	require.Equal(t, Time(90*time.Minute), c.Value)

	opts.EnforcedColumnTypes[0] = ColumnBool
	require.True(t, enforced(opts, Int(1), 0).Value.Bool())
	require.Equal(t, CellTypeNumber, enforced(opts, Int(2), 0).Type)

	opts.EnforcedColumnTypes[0] = ColumnDouble
	require.Equal(t, 1.0, enforced(opts, Bool(true), 0).Value.Float())
}

func TestEnforceDateTimesAndEmpty(t *testing.T) {
	opts := &ImportOptions{EnforceDateTimesAsNumbers: true, EnforceEmptyValuesAsString: true}
	c := enforced(opts, Date(time.Date(2020, time.May, 1, 12, 0, 0, 0, time.UTC)), 0)
	require.Equal(t, CellTypeNumber, c.Type)
	require.Equal(t, 43952.5, c.Value.Float())

	c = enforced(opts, Time(6*time.Hour), 0)
	require.Equal(t, 0.25, c.Value.Float())

	c = enforced(opts, Empty(), 0)
	require.Equal(t, CellTypeString, c.Type)
	require.Equal(t, "", c.Value.Str())
}
