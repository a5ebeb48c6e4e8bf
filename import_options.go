package xlsx

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// GlobalEnforcingType converts values of every cell at or after the enforcing
// start row.
type GlobalEnforcingType uint8

const (
	EnforceNone GlobalEnforcingType = iota
	AllNumbersToDouble
	AllNumbersToDecimal
	AllNumbersToInt
	EverythingToString
	AllSingleToDecimal
)

var globalEnforcingNames = map[string]GlobalEnforcingType{
	"default":                EnforceNone,
	"none":                   EnforceNone,
	"all_numbers_to_double":  AllNumbersToDouble,
	"all_numbers_to_decimal": AllNumbersToDecimal,
	"all_numbers_to_int":     AllNumbersToInt,
	"everything_to_string":   EverythingToString,
	"all_single_to_decimal":  AllSingleToDecimal,
}

func (t *GlobalEnforcingType) UnmarshalText(text []byte) error {
	v, ok := globalEnforcingNames[strings.ToLower(string(text))]
	if !ok {
		return fmt.Errorf("global enforcing type %q: %w", text, ErrFormat)
	}
	*t = v
	return nil
}

// ColumnType converts the values of one column.
type ColumnType uint8

const (
	ColumnNumeric ColumnType = iota
	ColumnDouble
	ColumnDecimal
	ColumnDate
	ColumnTime
	ColumnBool
	ColumnString
)

var columnTypeNames = map[string]ColumnType{
	"numeric": ColumnNumeric,
	"double":  ColumnDouble,
	"decimal": ColumnDecimal,
	"date":    ColumnDate,
	"time":    ColumnTime,
	"bool":    ColumnBool,
	"string":  ColumnString,
}

func (t *ColumnType) UnmarshalText(text []byte) error {
	v, ok := columnTypeNames[strings.ToLower(string(text))]
	if !ok {
		return fmt.Errorf("column type %q: %w", text, ErrFormat)
	}
	*t = v
	return nil
}

// ImportOptions tune how cell values are typed while reading. All conversions
// apply to rows with an index of at least EnforcingStartRowNumber; earlier
// rows keep the automatically resolved values.
type ImportOptions struct {
	EnforceDateTimesAsNumbers      bool
	EnforcePhoneticCharacterImport bool
	EnforceEmptyValuesAsString     bool
	GlobalEnforcingType            GlobalEnforcingType
	// EnforcedColumnTypes is keyed by zero-based column number.
	EnforcedColumnTypes     map[int]ColumnType
	EnforcingStartRowNumber int
	// DateTimeFormat and TimeSpanFormat are Go layouts used to parse and
	// format strings when converting to and from dates and times. Empty
	// DateTimeFormat picks a layout for TemporalCulture.
	DateTimeFormat  string
	TimeSpanFormat  string
	TemporalCulture language.Tag
	Logger          *slog.Logger
}

type yamlImportOptions struct {
	EnforceDateTimesAsNumbers      bool                  `yaml:"enforce_date_times_as_numbers"`
	EnforcePhoneticCharacterImport bool                  `yaml:"enforce_phonetic_character_import"`
	EnforceEmptyValuesAsString     bool                  `yaml:"enforce_empty_values_as_string"`
	GlobalEnforcingType            GlobalEnforcingType   `yaml:"global_enforcing_type"`
	EnforcedColumnTypes            map[string]ColumnType `yaml:"enforced_column_types"`
	EnforcingStartRowNumber        int                   `yaml:"enforcing_start_row_number"`
	DateTimeFormat                 string                `yaml:"date_time_format"`
	TimeSpanFormat                 string                `yaml:"time_span_format"`
	TemporalCulture                string                `yaml:"temporal_culture"`
}

// LoadImportOptions reads options from YAML. Column keys are letters ("B")
// or zero-based numbers ("1").
func LoadImportOptions(r io.Reader) (*ImportOptions, error) {
	var raw yamlImportOptions
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode import options: %w: %w", ErrFormat, err)
	}
	opts := &ImportOptions{
		EnforceDateTimesAsNumbers:      raw.EnforceDateTimesAsNumbers,
		EnforcePhoneticCharacterImport: raw.EnforcePhoneticCharacterImport,
		EnforceEmptyValuesAsString:     raw.EnforceEmptyValuesAsString,
		GlobalEnforcingType:            raw.GlobalEnforcingType,
		EnforcingStartRowNumber:        raw.EnforcingStartRowNumber,
		DateTimeFormat:                 raw.DateTimeFormat,
		TimeSpanFormat:                 raw.TimeSpanFormat,
	}
	if opts.EnforcingStartRowNumber < 0 {
		return nil, fmt.Errorf("enforcing start row %d: %w", opts.EnforcingStartRowNumber, ErrRange)
	}
	if raw.TemporalCulture != "" {
		tag, err := language.Parse(raw.TemporalCulture)
		if err != nil {
			return nil, fmt.Errorf("temporal culture %q: %w: %w", raw.TemporalCulture, ErrFormat, err)
		}
		opts.TemporalCulture = tag
	}
	if len(raw.EnforcedColumnTypes) > 0 {
		opts.EnforcedColumnTypes = make(map[int]ColumnType, len(raw.EnforcedColumnTypes))
		for key, typ := range raw.EnforcedColumnTypes {
			col, err := parseColumnKey(key)
			if err != nil {
				return nil, err
			}
			opts.EnforcedColumnTypes[col] = typ
		}
	}
	return opts, nil
}

func parseColumnKey(key string) (int, error) {
	if n, err := strconv.Atoi(key); err == nil {
		if n < 0 || n > MaxColumn {
			return 0, fmt.Errorf("column %d: %w", n, ErrRange)
		}
		return n, nil
	}
	return ColumnNumber(key)
}

func (o *ImportOptions) logger() *slog.Logger {
	if o != nil && o.Logger != nil {
		return o.Logger
	}
	return discardLogger
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func (o *ImportOptions) phonetics() bool {
	return o != nil && o.EnforcePhoneticCharacterImport
}

// enforcing reports whether any conversion is configured at all.
func (o *ImportOptions) enforcing() bool {
	if o == nil {
		return false
	}
	return o.EnforceDateTimesAsNumbers || o.EnforceEmptyValuesAsString ||
		o.GlobalEnforcingType != EnforceNone || len(o.EnforcedColumnTypes) > 0
}
