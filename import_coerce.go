package xlsx

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

const defaultTimeSpanFormat = "15:04:05"

var (
	cultureTags = []language.Tag{
		language.Und,
		language.AmericanEnglish,
		language.BritishEnglish,
		language.German,
		language.French,
		language.Russian,
		language.Japanese,
		language.Chinese,
	}
	cultureLayouts = []string{
		"2006-01-02 15:04:05",
		"1/2/2006 3:04:05 PM",
		"02/01/2006 15:04:05",
		"02.01.2006 15:04:05",
		"02/01/2006 15:04:05",
		"02.01.2006 15:04:05",
		"2006/01/02 15:04:05",
		"2006/1/2 15:04:05",
	}
	cultureMatcher = language.NewMatcher(cultureTags)
)

func (o *ImportOptions) dateLayouts() []string {
	layout := o.DateTimeFormat
	if layout == "" {
		layout = cultureLayouts[0]
		if o.TemporalCulture != language.Und {
			_, idx, conf := cultureMatcher.Match(o.TemporalCulture)
			if conf != language.No {
				layout = cultureLayouts[idx]
			}
		}
	}
	layouts := []string{layout}
	if i := strings.IndexByte(layout, ' '); i > 0 {
		layouts = append(layouts, layout[:i])
	}
	return append(layouts, time.RFC3339, "2006-01-02")
}

func (o *ImportOptions) timeSpanLayout() string {
	if o.TimeSpanFormat != "" {
		return o.TimeSpanFormat
	}
	return defaultTimeSpanFormat
}

// enforce applies the configured conversions to a freshly read cell. Serials
// are converted in the date system of the workbook.
func (o *ImportOptions) enforce(c *Cell, date1904 bool) {
	if c.Address.Row < o.EnforcingStartRowNumber {
		return
	}
	if typ, ok := o.EnforcedColumnTypes[c.Address.Column]; ok {
		o.enforceColumnType(c, typ, date1904)
	}
	o.enforceGlobalType(c)
	if o.EnforceDateTimesAsNumbers && (c.Type == CellTypeDate || c.Type == CellTypeTime) {
		if f, ok := o.toFloat(c, date1904); ok {
			c.setValue(Float(f))
		}
	}
	if o.EnforceEmptyValuesAsString && c.Type == CellTypeEmpty {
		c.setValue(String(""))
	}
}

func (c *Cell) setValue(v Value) {
	c.Value = v
	c.Type = resolveType(v)
}

func (o *ImportOptions) enforceColumnType(c *Cell, typ ColumnType, date1904 bool) {
	switch typ {
	case ColumnNumeric:
		switch c.Type {
		case CellTypeString:
			if v, ok := parseNumber(strings.TrimSpace(c.Value.Str())); ok {
				c.setValue(v)
			}
		case CellTypeBool:
			c.setValue(Int(boolToInt(c.Value.Bool())))
		case CellTypeDate, CellTypeTime:
			if f, ok := o.toFloat(c, date1904); ok {
				c.setValue(Float(f))
			}
		}
	case ColumnDouble:
		if c.Type != CellTypeFormula {
			if f, ok := o.toFloat(c, date1904); ok {
				c.setValue(Float(f))
			}
		}
	case ColumnDecimal:
		if d, ok := o.toDecimal(c, date1904); ok {
			c.setValue(Decimal(d))
		}
	case ColumnDate:
		switch c.Type {
		case CellTypeNumber:
			if f := c.Value.Float(); validOATime(f) {
				c.setValue(Date(serialToDate(f, date1904)))
			}
		case CellTypeString:
			if t, ok := o.parseDate(c.Value.Str()); ok {
				c.setValue(Date(t))
			}
		}
	case ColumnTime:
		switch c.Type {
		case CellTypeNumber:
			if f := c.Value.Float(); validOATime(f) {
				c.setValue(Time(OAToTime(f)))
			}
		case CellTypeString:
			if d, ok := o.parseTimeSpan(c.Value.Str()); ok {
				c.setValue(Time(d))
			}
		}
	case ColumnBool:
		switch c.Type {
		case CellTypeNumber:
			switch c.Value.Float() {
			case 0:
				c.setValue(Bool(false))
			case 1:
				c.setValue(Bool(true))
			}
		case CellTypeString:
			if b, err := strconv.ParseBool(strings.TrimSpace(c.Value.Str())); err == nil {
				c.setValue(Bool(b))
			}
		}
	case ColumnString:
		c.setValue(String(o.toString(c)))
	}
}

func (o *ImportOptions) enforceGlobalType(c *Cell) {
	switch o.GlobalEnforcingType {
	case AllNumbersToDouble:
		if c.Type == CellTypeNumber {
			c.setValue(Float(c.Value.Float()))
		}
	case AllNumbersToDecimal:
		if c.Type == CellTypeNumber {
			c.setValue(Decimal(c.Value.Decimal()))
		}
	case AllNumbersToInt:
		if c.Type == CellTypeNumber {
			f := math.RoundToEven(c.Value.Float())
			if f >= math.MinInt64 && f < math.MaxInt64 {
				c.setValue(Int(int64(f)))
			}
		}
	case EverythingToString:
		c.setValue(String(o.toString(c)))
	case AllSingleToDecimal:
		if c.Value.Kind() == KindFloat32 {
			c.setValue(Decimal(c.Value.Decimal()))
		}
	}
}

func (o *ImportOptions) toFloat(c *Cell, date1904 bool) (float64, bool) {
	switch c.Type {
	case CellTypeNumber:
		return c.Value.Float(), true
	case CellTypeBool:
		return float64(boolToInt(c.Value.Bool())), true
	case CellTypeDate:
		return toSerial(c.Value.Date(), date1904), true
	case CellTypeTime:
		return TimeToOA(c.Value.Time()), true
	case CellTypeString:
		return parseFloat(strings.TrimSpace(c.Value.Str()))
	}
	return 0, false
}

func (o *ImportOptions) toDecimal(c *Cell, date1904 bool) (decimal.Decimal, bool) {
	switch c.Type {
	case CellTypeNumber:
		return c.Value.Decimal(), true
	case CellTypeString:
		d, err := decimal.NewFromString(strings.TrimSpace(c.Value.Str()))
		return d, err == nil
	case CellTypeBool, CellTypeDate, CellTypeTime:
		f, _ := o.toFloat(c, date1904)
		return decimal.NewFromFloat(f), true
	}
	return decimal.Decimal{}, false
}

func (o *ImportOptions) toString(c *Cell) string {
	switch c.Type {
	case CellTypeDate:
		return c.Value.Date().Format(o.dateLayouts()[0])
	case CellTypeTime:
		return time.Time{}.Add(c.Value.Time()).Format(o.timeSpanLayout())
	case CellTypeEmpty:
		return ""
	}
	return c.Value.Text()
}

func (o *ImportOptions) parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range o.dateLayouts() {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (o *ImportOptions) parseTimeSpan(s string) (time.Duration, bool) {
	t, err := time.Parse(o.timeSpanLayout(), strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second + time.Duration(t.Nanosecond()), true
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
