package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bettersystemsai/BSA-BookingService/pkg/types"
)

func TestAllSlots_Catalog(t *testing.T) {
	slots := AllSlots()

	require.Len(t, slots, CatalogSize)

	assert.Equal(t, types.TimeString("09:00"), slots[0].Time)
	assert.Equal(t, types.TimeString("16:00"), slots[len(slots)-1].Time)

	// Времена строго возрастают
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].Time.IsBefore(slots[i].Time),
			"slot %s must come before %s", slots[i-1].Time, slots[i].Time)
	}
}

func TestAllSlots_SkipsLunchBreak(t *testing.T) {
	times := make(map[types.TimeString]bool)
	for _, slot := range AllSlots() {
		times[slot.Time] = true
	}

	// Утренний блок заканчивается на 11:30, дневной начинается с 13:00
	assert.True(t, times["11:30"])
	assert.False(t, times["12:00"])
	assert.False(t, times["12:30"])
	assert.True(t, times["13:00"])

	// 16:00 - последний слот дня
	assert.True(t, times["16:00"])
	assert.False(t, times["16:30"])
}

func TestAllSlots_DisplayLabels(t *testing.T) {
	slots := AllSlots()

	byTime := make(map[types.TimeString]string, len(slots))
	for _, slot := range slots {
		byTime[slot.Time] = slot.Display
	}

	assert.Equal(t, "9:00 AM", byTime["09:00"])
	assert.Equal(t, "11:30 AM", byTime["11:30"])
	assert.Equal(t, "1:00 PM", byTime["13:00"])
	assert.Equal(t, "4:00 PM", byTime["16:00"])
}

func TestAllSlots_ReturnsCopy(t *testing.T) {
	first := AllSlots()
	first[0].Time = "00:00"

	second := AllSlots()
	assert.Equal(t, types.TimeString("09:00"), second[0].Time)
}

func TestIsCatalogTime(t *testing.T) {
	assert.True(t, IsCatalogTime("09:00"))
	assert.True(t, IsCatalogTime("13:30"))
	assert.True(t, IsCatalogTime("16:00"))

	assert.False(t, IsCatalogTime("12:00"))
	assert.False(t, IsCatalogTime("16:30"))
	assert.False(t, IsCatalogTime("08:30"))
	assert.False(t, IsCatalogTime("09:15"))
	assert.False(t, IsCatalogTime(""))
}
