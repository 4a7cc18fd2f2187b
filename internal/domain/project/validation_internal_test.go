package project

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestHoursInRange(t *testing.T) {
	require.NoError(t, hoursInRange(decimal.NullDecimal{}))
	require.NoError(t, hoursInRange(Hours(MaxHours)))
	require.Error(t, hoursInRange(decimal.NewNullDecimal(decimal.New(1, 50000000))))
	require.Error(t, hoursInRange(decimal.NewNullDecimal(decimal.New(-1, 0))))
	require.NoError(t, hoursInRange(decimal.NewNullDecimal(decimal.New(0, 50000000))))

	// Only NullDecimal fields carry hours.
	require.Error(t, hoursInRange("12.00"))
	require.Error(t, hoursInRange(12))
}
