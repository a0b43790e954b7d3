package rotation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pltp-shift-backend/internal/model"
)

func TestActiveNotificationsDayMatch(t *testing.T) {
	task := model.ChangeOverTask{
		EquipmentName: "PumpX",
		ScheduleDay:   "Jumat",
		Status:        StatusOnSchedule,
	}

	// Hari ini Jumat -> masuk walau status On Schedule
	active := ActiveNotifications([]model.ChangeOverTask{task}, nil, "Jumat")
	assert.Len(t, active, 1)

	// Case-insensitive
	task.ScheduleDay = "jumat"
	active = ActiveNotifications([]model.ChangeOverTask{task}, nil, "Jumat")
	assert.Len(t, active, 1)

	// Hari lain -> keluar
	active = ActiveNotifications([]model.ChangeOverTask{task}, nil, "Sabtu")
	assert.Empty(t, active)
}

func TestActiveNotificationsUrgentStatus(t *testing.T) {
	overdue := model.ChangeOverTask{EquipmentName: "PumpX", ScheduleDay: "Senin", Status: StatusOverdue}
	dueSoon := model.ChangeOverTask{EquipmentName: "PumpY", ScheduleDay: "Senin", Status: StatusDueSoon}
	onSched := model.ChangeOverTask{EquipmentName: "PumpZ", ScheduleDay: "Senin", Status: StatusOnSchedule}

	active := ActiveNotifications([]model.ChangeOverTask{overdue, dueSoon, onSched}, nil, "Kamis")
	require.Len(t, active, 2)
	assert.Equal(t, "PumpX", active[0].EquipmentName)
	assert.Equal(t, "PumpY", active[1].EquipmentName)
}

func TestActiveNotificationsSuppressedWhenCompletedToday(t *testing.T) {
	task := model.ChangeOverTask{EquipmentName: "PumpX", ScheduleDay: "Jumat", Status: StatusOverdue}

	today := time.Date(2025, 2, 7, 10, 0, 0, 0, time.Local)
	completed := CompletedToday([]model.LogEntry{
		{Timestamp: today, Notes: Tag + " PumpX. Berpindah dari: A -> Ke: B."},
	}, today)

	// Overdue sekalipun tertahan jika sudah dikerjakan hari ini
	active := ActiveNotifications([]model.ChangeOverTask{task}, completed, "Jumat")
	assert.Empty(t, active)
}

func TestActiveNotificationsLocaleMismatchIsSilentMiss(t *testing.T) {
	// ScheduleDay dalam bahasa lain tidak pernah cocok dengan nama hari
	// Indonesia: false negative diam-diam, bukan error.
	task := model.ChangeOverTask{EquipmentName: "PumpX", ScheduleDay: "Friday", Status: StatusOnSchedule}
	active := ActiveNotifications([]model.ChangeOverTask{task}, nil, "Jumat")
	assert.Empty(t, active)
}

func TestActiveNotificationsPreservesInputOrder(t *testing.T) {
	tasks := []model.ChangeOverTask{
		{EquipmentName: "C", ScheduleDay: "Rabu", Status: StatusOverdue},
		{EquipmentName: "A", ScheduleDay: "Rabu", Status: StatusDueSoon},
		{EquipmentName: "B", ScheduleDay: "Rabu", Status: StatusOverdue},
	}
	active := ActiveNotifications(tasks, nil, "Senin")
	require.Len(t, active, 3)
	assert.Equal(t, "C", active[0].EquipmentName)
	assert.Equal(t, "A", active[1].EquipmentName)
	assert.Equal(t, "B", active[2].EquipmentName)
}

func TestSeverity(t *testing.T) {
	assert.Equal(t, SeverityTerlambat, Severity(model.ChangeOverTask{Status: StatusOverdue}))
	assert.Equal(t, SeverityHariIni, Severity(model.ChangeOverTask{Status: StatusDueSoon}))
	assert.Equal(t, SeverityHariIni, Severity(model.ChangeOverTask{Status: StatusOnSchedule}))
}
