package xlsx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLegacyPasswordHash(t *testing.T) {
	require.Equal(t, "83AF", LegacyPasswordHash("password"))
	require.Equal(t, "CBEB", LegacyPasswordHash("test"))
	require.Equal(t, "", LegacyPasswordHash(""))
}

func TestLegacyPasswordHashNonASCII(t *testing.T) {
	require.Equal(t, "91BB", LegacyPasswordHash("pässwort"))
	require.Equal(t, "99C3", LegacyPasswordHash("密码"))
}

func TestSheetProtectionAllows(t *testing.T) {
	p := SheetProtection{Enabled: true, Allowed: DefaultSheetProtection | AllowSort}
	require.True(t, p.Allows(AllowSort))
	require.True(t, p.Allows(AllowSelectLockedCells))
	require.False(t, p.Allows(AllowDeleteRows))
}
