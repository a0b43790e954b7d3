package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"pltp-shift-backend/internal/repository"
	"pltp-shift-backend/internal/rotation"
)

type DashboardHandler struct {
	taskRepo repository.ChangeOverRepository
	logRepo  repository.LogEntryRepository
}

func NewDashboardHandler(taskRepo repository.ChangeOverRepository, logRepo repository.LogEntryRepository) *DashboardHandler {
	return &DashboardHandler{taskRepo: taskRepo, logRepo: logRepo}
}

// GetNotifications menghitung ulang pengingat change over dari daftar task
// dan riwayat log. Ini proyeksi murni, tidak ada state yang disimpan.
func (h *DashboardHandler) GetNotifications(c *fiber.Ctx) error {
	tasks, err := h.taskRepo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data jadwal"})
	}
	logs, err := h.logRepo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil riwayat laporan"})
	}

	now := time.Now()
	completed := rotation.CompletedToday(logs, now)
	active := rotation.ActiveNotifications(tasks, completed, rotation.DayName(now))

	notifications := make([]fiber.Map, 0, len(active))
	for _, task := range active {
		notifications = append(notifications, fiber.Map{
			"task":     task,
			"severity": rotation.Severity(task),
		})
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"day":             rotation.DayName(now),
			"notifications":   notifications,
			"completed_today": completed,
		},
	})
}

// GetSummary mengembalikan info shift berjalan dan ringkasan jumlah untuk
// header dashboard.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	tasks, err := h.taskRepo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data jadwal"})
	}
	logs, err := h.logRepo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil riwayat laporan"})
	}

	now := time.Now()
	overdue := 0
	dueSoon := 0
	for _, task := range tasks {
		switch task.Status {
		case rotation.StatusOverdue:
			overdue++
		case rotation.StatusDueSoon:
			dueSoon++
		}
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"shift":            rotation.CurrentShiftInfo(now),
			"total_jadwal":     len(tasks),
			"overdue":          overdue,
			"due_soon":         dueSoon,
			"selesai_hari_ini": len(rotation.CompletedToday(logs, now)),
		},
	})
}
