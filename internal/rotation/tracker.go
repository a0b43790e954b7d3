package rotation

import (
	"sort"
	"strings"
	"time"

	"pltp-shift-backend/internal/model"
)

// CompletedToday menyaring riwayat log menjadi event change over yang
// terjadi pada tanggal kalender yang sama dengan today (granularitas hari,
// zona waktu mengikuti today). Hasil diurutkan terbaru dulu.
func CompletedToday(logs []model.LogEntry, today time.Time) []model.LogEntry {
	y, m, d := today.Date()
	var out []model.LogEntry
	for _, entry := range logs {
		ly, lm, ld := entry.Timestamp.In(today.Location()).Date()
		if ly == y && lm == m && ld == d && strings.Contains(entry.Notes, Tag) {
			out = append(out, entry)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

// IsTaskCompletedToday mengecek apakah peralatan task sudah dirotasi hari
// ini. Korelasinya best-effort: nama peralatan dicari sebagai substring di
// Notes, tidak ada foreign key. Nama peralatan yang saling mengandung bisa
// salah cocok.
func IsTaskCompletedToday(task model.ChangeOverTask, completedToday []model.LogEntry) bool {
	if task.EquipmentName == "" {
		return false
	}
	for _, entry := range completedToday {
		if strings.Contains(entry.Notes, task.EquipmentName) {
			return true
		}
	}
	return false
}
