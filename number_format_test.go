package xlsx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuiltinFormatClass(t *testing.T) {
	require.Equal(t, formatNumber, NumberFormat{Number: FormatGeneral}.class())
	require.Equal(t, formatNumber, NumberFormat{Number: FormatText}.class())
	require.Equal(t, formatDate, NumberFormat{Number: FormatDate}.class())
	require.Equal(t, formatDate, NumberFormat{Number: FormatDateTime}.class())
	require.Equal(t, formatTime, NumberFormat{Number: FormatTime}.class())
	require.Equal(t, formatTime, NumberFormat{Number: 46}.class())
}

func TestCustomFormatClass(t *testing.T) {
	tests := []struct {
		code  string
		class formatClass
	}{
		{"yyyy-mm-dd", formatDate},
		{"mmm-yy", formatDate},
		{`"Date: "dd/mm/yyyy`, formatDate},
		{"hh:mm:ss", formatTime},
		{"[h]:mm:ss", formatTime},
		{"mm:ss", formatTime},
		{"0.00", formatNumber},
		{"#,##0", formatNumber},
		{"General", formatNumber},
		{`"unterminated`, formatNumber},
		{"h:mm AM/PM;@", formatTime},
		{"d-mmm;[Red]0", formatDate},
	}
	for _, tt := range tests {
		require.Equal(t, tt.class, NumberFormat{Custom: tt.code}.class(), tt.code)
	}
}

func TestNumberFormatCode(t *testing.T) {
	require.Equal(t, "mm-dd-yy", NumberFormat{Number: FormatDate}.Code())
	require.Equal(t, "0.000", NumberFormat{Custom: "0.000"}.Code())
	require.True(t, NumberFormat{Custom: "0.000"}.IsCustom())
}

func TestFirstSection(t *testing.T) {
	section, err := firstSection(`"a;b"0;\;0`)
	require.NoError(t, err)
	require.Equal(t, `"a;b"0`, section)

	section, err = firstSection(`\;0;0`)
	require.NoError(t, err)
	require.Equal(t, `\;0`, section)

	_, err = firstSection(`"open`)
	require.ErrorIs(t, err, ErrNoClosingQuote)
}

func TestScanDateTime(t *testing.T) {
	letters, ok := scanDateTime(`[Red][h]:MM "elapsed"`)
	require.True(t, ok)
	require.Equal(t, "hmm", letters)

	letters, ok = scanDateTime("h:mm AM/PM")
	require.True(t, ok)
	require.Equal(t, "hmm", letters)

	_, ok = scanDateTime("0.00E+00")
	require.False(t, ok)
	_, ok = scanDateTime(`"text only"`)
	require.False(t, ok)
}
