package rotation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pltp-shift-backend/internal/model"
)

func coLog(ts time.Time, notes string) model.LogEntry {
	return model.LogEntry{Timestamp: ts, Notes: notes}
}

func TestCompletedTodayFiltersByDateAndTag(t *testing.T) {
	today := time.Date(2025, 2, 7, 14, 0, 0, 0, time.Local)
	yesterday := today.AddDate(0, 0, -1)

	logs := []model.LogEntry{
		coLog(today.Add(-2*time.Hour), Tag+" PumpX. Berpindah dari: A -> Ke: B."),
		coLog(yesterday, Tag+" PumpX. Berpindah dari: B -> Ke: A."), // kemarin, harus keluar
		coLog(today.Add(-1*time.Hour), "Laporan shift biasa tanpa event"),
		coLog(today.Add(-30*time.Minute), Tag+" PumpY. Berpindah dari: A -> Ke: B."),
	}

	completed := CompletedToday(logs, today)
	require.Len(t, completed, 2)

	// Terbaru dulu
	assert.Contains(t, completed[0].Notes, "PumpY")
	assert.Contains(t, completed[1].Notes, "PumpX")
}

func TestCompletedTodayDayGranularity(t *testing.T) {
	// Event jam 00:05 dan jam 23:50 di tanggal yang sama dua-duanya masuk
	today := time.Date(2025, 2, 7, 12, 0, 0, 0, time.Local)
	logs := []model.LogEntry{
		coLog(time.Date(2025, 2, 7, 0, 5, 0, 0, time.Local), Tag+" PumpX."),
		coLog(time.Date(2025, 2, 7, 23, 50, 0, 0, time.Local), Tag+" PumpY."),
		coLog(time.Date(2025, 2, 8, 0, 1, 0, 0, time.Local), Tag+" PumpZ."),
	}
	assert.Len(t, CompletedToday(logs, today), 2)
}

func TestIsTaskCompletedToday(t *testing.T) {
	today := time.Date(2025, 2, 7, 14, 0, 0, 0, time.Local)
	task := model.ChangeOverTask{EquipmentName: "PumpX"}

	completed := CompletedToday([]model.LogEntry{
		coLog(today, Tag+" PumpX. Berpindah dari: A (Pump A) -> Ke: B (Pump B)."),
	}, today)
	assert.True(t, IsTaskCompletedToday(task, completed))

	// Log kemarin dengan notes cocok tidak dihitung
	completedYesterday := CompletedToday([]model.LogEntry{
		coLog(today.AddDate(0, 0, -1), Tag+" PumpX. Berpindah dari: A -> Ke: B."),
	}, today)
	assert.Empty(t, completedYesterday)
	assert.False(t, IsTaskCompletedToday(task, completedYesterday))

	// Peralatan lain tidak cocok
	other := model.ChangeOverTask{EquipmentName: "Boiler Feed Pump"}
	assert.False(t, IsTaskCompletedToday(other, completed))
}

func TestIsTaskCompletedTodayEmptyNameNeverMatches(t *testing.T) {
	today := time.Now()
	completed := CompletedToday([]model.LogEntry{coLog(today, Tag+" PumpX.")}, today)
	assert.False(t, IsTaskCompletedToday(model.ChangeOverTask{}, completed))
}

func TestIsTaskCompletedTodaySubstringFragility(t *testing.T) {
	// Korelasi substring: nama yang terkandung di nama lain ikut cocok.
	// Perilaku ini dipertahankan demi kompatibilitas data lama.
	today := time.Now()
	completed := CompletedToday([]model.LogEntry{
		coLog(today, Tag+" Cooling Water Pump A1. Berpindah."),
	}, today)
	sub := model.ChangeOverTask{EquipmentName: "Cooling Water Pump"}
	assert.True(t, IsTaskCompletedToday(sub, completed))
}
