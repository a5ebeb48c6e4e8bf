package xlsx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateToOALeapYearBug(t *testing.T) {
	for want, d := range map[float64]time.Time{
		1:  date(1900, time.January, 1),
		59: date(1900, time.February, 28),
		61: date(1900, time.March, 1),
	} {
		got, err := DateToOA(d)
		require.NoError(t, err)
		require.Equal(t, want, got, d.String())
	}

	got, err := DateToOA(time.Date(2020, time.May, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Equal(t, 43952.5, got)
}

func TestDateToOAOutOfRange(t *testing.T) {
	_, err := DateToOA(date(1899, time.December, 31))
	require.ErrorIs(t, err, ErrFormat)
	_, err = DateToOA(date(10000, time.January, 1))
	require.ErrorIs(t, err, ErrFormat)

	got, err := DateToOA(time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC))
	require.NoError(t, err)
	require.InDelta(t, MaxOADate, got, 1e-9)
}

func TestDateToOAIgnoresLocation(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	got, err := DateToOA(time.Date(2020, time.May, 1, 0, 0, 0, 0, loc))
	require.NoError(t, err)
	require.Equal(t, 43952.0, got)
}

func TestOAToDate(t *testing.T) {
	require.Equal(t, date(1900, time.January, 1), OAToDate(1))
	require.Equal(t, date(1900, time.February, 28), OAToDate(59))
	require.Equal(t, date(1900, time.March, 1), OAToDate(61))
	require.Equal(t, time.Date(2020, time.May, 1, 12, 0, 0, 0, time.UTC), OAToDate(43952.5))
}

func TestDateRoundTrip(t *testing.T) {
	dates := []time.Time{
		date(1900, time.January, 1),
		date(1900, time.January, 31),
		date(1900, time.February, 28),
		date(1900, time.March, 1),
		time.Date(1955, time.July, 14, 8, 30, 15, 0, time.UTC),
		time.Date(2024, time.February, 29, 23, 59, 59, 0, time.UTC),
		time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC),
	}
	for _, d := range dates {
		oa, err := DateToOA(d)
		require.NoError(t, err)
		require.Equal(t, d, OAToDate(oa), d.String())
	}
}

func TestTimeToOA(t *testing.T) {
	require.Equal(t, 0.5, TimeToOA(12*time.Hour))
	require.Equal(t, 1.25, TimeToOA(30*time.Hour))
	require.Equal(t, 0.0, TimeToOA(999*time.Millisecond))
	require.Equal(t, 13*time.Hour+14*time.Minute+15*time.Second, OAToTime(TimeToOA(13*time.Hour+14*time.Minute+15*time.Second)))
}

func TestTimeFromExcelTime1904(t *testing.T) {
	require.Equal(t, date(1904, time.January, 2), timeFromExcelTime(1, true))
}
