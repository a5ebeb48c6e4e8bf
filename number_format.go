package xlsx

import (
	"slices"
	"strings"
	"unicode/utf8"
)

var builtinNumFormats = map[int]string{
	0:  "general",
	1:  "0",
	2:  "0.00",
	3:  "#,##0",
	4:  "#,##0.00",
	9:  "0%",
	10: "0.00%",
	11: "0.00e+00",
	12: "# ?/?",
	13: "# ??/??",
	14: "mm-dd-yy",
	15: "d-mmm-yy",
	16: "d-mmm",
	17: "mmm-yy",
	18: "h:mm am/pm",
	19: "h:mm:ss am/pm",
	20: "h:mm",
	21: "h:mm:ss",
	22: "m/d/yy h:mm",
	37: "#,##0 ;(#,##0)",
	38: "#,##0 ;[red](#,##0)",
	39: "#,##0.00;(#,##0.00)",
	40: "#,##0.00;[red](#,##0.00)",
	41: `_(* #,##0_);_(* \(#,##0\);_(* "-"_);_(@_)`,
	42: `_("$"* #,##0_);_("$* \(#,##0\);_("$"* "-"_);_(@_)`,
	43: `_(* #,##0.00_);_(* \(#,##0.00\);_(* "-"??_);_(@_)`,
	44: `_("$"* #,##0.00_);_("$"* \(#,##0.00\);_("$"* "-"??_);_(@_)`,
	45: "mm:ss",
	46: "[h]:mm:ss",
	47: "mmss.0",
	48: "##0.0e+0",
	49: "@",
}

// formatClass tells the reader how to interpret a numeric cell value.
type formatClass uint8

const (
	formatNumber formatClass = iota
	formatDate
	formatTime
)

// Code returns the format code, looking up builtin formats.
func (nf NumberFormat) Code() string {
	if nf.IsCustom() {
		return nf.Custom
	}
	return builtinNumFormats[nf.Number]
}

func (nf NumberFormat) class() formatClass {
	if !nf.IsCustom() {
		switch {
		case nf.Number >= 14 && nf.Number <= 17, nf.Number == 22:
			return formatDate
		case nf.Number >= 18 && nf.Number <= 21, nf.Number >= 45 && nf.Number <= 47:
			return formatTime
		}
		return formatNumber
	}
	return classifyFormatCode(nf.Custom)
}

// classifyFormatCode looks at the positive section of a custom code. Codes
// with a year or day part are dates, codes with only hours, minutes or seconds
// are times.
func classifyFormatCode(code string) formatClass {
	section, err := firstSection(code)
	if err != nil {
		return formatNumber
	}
	letters, ok := scanDateTime(section)
	switch {
	case !ok:
		return formatNumber
	case strings.ContainsAny(letters, "yd"):
		return formatDate
	case strings.ContainsAny(letters, "hs"), letters == "":
		return formatTime
	}
	return formatDate
}

// firstSection cuts a format code at its first unquoted, unescaped ';'.
func firstSection(code string) (string, error) {
	for i := 0; i < len(code); i++ {
		switch code[i] {
		case ';':
			return code[:i], nil
		case '\\':
			i++
		case '"':
			end := strings.IndexByte(code[i+1:], '"')
			if end < 0 {
				return "", ErrNoClosingQuote
			}
			i += end + 1
		}
	}
	return code, nil
}

// dateTimeMarkers are the placeholders that make a section a date or time
// format. Letters are matched case-insensitively.
var dateTimeMarkers = []string{"am/pm", "a/p", "y", "m", "d", "h", "s", "上", "午", "下"}

// formatLiterals never decide the kind of a section.
const formatLiterals = "$-+/():!^&'~{}<>=,. 0"

// scanDateTime walks the unquoted parts of a section and collects its date
// and time letters, with elapsed time brackets such as [h] reduced to their
// letter. It fails when the section has anything else, such as a digit
// placeholder or the General keyword, or no date or time marker at all.
func scanDateTime(section string) (string, bool) {
	var (
		letters strings.Builder
		found   bool
	)
	runes := []rune(section)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '\\' || r == '_' || r == '*':
			i++
		case r == '"' || r == '[':
			closer := '"'
			if r == '[' {
				closer = ']'
			}
			end := slices.Index(runes[i+1:], closer)
			if end < 0 {
				return "", false
			}
			if r == '[' {
				inner := strings.ToLower(string(runes[i+1 : i+1+end]))
				if inner != "" && strings.Trim(inner, "hms") == "" {
					letters.WriteString(inner)
					found = true
				}
			}
			i += end + 1
		case strings.ContainsRune(formatLiterals, r):
		default:
			marker := matchMarker(runes[i:])
			if marker == "" {
				return "", false
			}
			if len(marker) == 1 {
				letters.WriteString(marker)
			}
			found = true
			i += utf8.RuneCountInString(marker) - 1
		}
	}
	return letters.String(), found
}

func matchMarker(runes []rune) string {
	rest := strings.ToLower(string(runes[:min(len(runes), 5)]))
	for _, m := range dateTimeMarkers {
		if strings.HasPrefix(rest, m) {
			return m
		}
	}
	return ""
}
