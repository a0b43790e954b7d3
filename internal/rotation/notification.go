package rotation

import (
	"strings"

	"pltp-shift-backend/internal/model"
)

// Label severity untuk tampilan notifikasi.
const (
	SeverityTerlambat = "TERLAMBAT"
	SeverityHariIni   = "HARI INI"
)

// ActiveNotifications memilih task yang perlu ditampilkan sebagai pengingat.
// Sebuah task masuk jika:
//  1. statusnya Due Soon atau Overdue, ATAU
//  2. ScheduleDay-nya mengandung nama hari ini (case-insensitive) —
//     menangkap task "Jumat" walau status di database belum diupdate,
// DAN belum ada event change over peralatan tersebut hari ini.
// Urutan hasil mengikuti urutan tasks masukan.
func ActiveNotifications(tasks []model.ChangeOverTask, completedToday []model.LogEntry, dayName string) []model.ChangeOverTask {
	lowerDay := strings.ToLower(dayName)
	var out []model.ChangeOverTask
	for _, task := range tasks {
		isUrgent := task.Status == StatusDueSoon || task.Status == StatusOverdue
		isDayMatch := lowerDay != "" && strings.Contains(strings.ToLower(task.ScheduleDay), lowerDay)
		if (isUrgent || isDayMatch) && !IsTaskCompletedToday(task, completedToday) {
			out = append(out, task)
		}
	}
	return out
}

// Severity memetakan status task ke label tampilan. Bukan cabang logika
// tersendiri, murni presentasi.
func Severity(task model.ChangeOverTask) string {
	if task.Status == StatusOverdue {
		return SeverityTerlambat
	}
	return SeverityHariIni
}
