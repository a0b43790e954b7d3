package rotation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, min, sec int) time.Time {
	return time.Date(2025, 2, 7, hour, min, sec, 0, time.Local)
}

func TestCurrentShiftBoundaries(t *testing.T) {
	cases := []struct {
		time     time.Time
		expected string
	}{
		{at(7, 59, 59), ShiftMalam},
		{at(8, 0, 0), ShiftPagi},
		{at(14, 59, 59), ShiftPagi},
		{at(15, 0, 0), ShiftSore},
		{at(22, 59, 59), ShiftSore},
		{at(23, 0, 0), ShiftMalam},
		{at(0, 0, 0), ShiftMalam},
		{at(3, 30, 0), ShiftMalam},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, CurrentShift(c.time), "jam %s", c.time.Format("15:04:05"))
	}
}

func TestCurrentShiftInfo(t *testing.T) {
	info := CurrentShiftInfo(at(10, 0, 0))
	assert.Equal(t, ShiftInfo{Current: ShiftPagi, Next: ShiftSore, NextStart: "15:00"}, info)

	info = CurrentShiftInfo(at(20, 0, 0))
	assert.Equal(t, ShiftInfo{Current: ShiftSore, Next: ShiftMalam, NextStart: "23:00"}, info)

	info = CurrentShiftInfo(at(2, 0, 0))
	assert.Equal(t, ShiftInfo{Current: ShiftMalam, Next: ShiftPagi, NextStart: "08:00"}, info)
}

func TestDayName(t *testing.T) {
	// 7 Februari 2025 adalah hari Jumat
	assert.Equal(t, "Jumat", DayName(at(10, 0, 0)))
	assert.Equal(t, "Sabtu", DayName(at(10, 0, 0).AddDate(0, 0, 1)))
	assert.Equal(t, "Minggu", DayName(at(10, 0, 0).AddDate(0, 0, 2)))
}
