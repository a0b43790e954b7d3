package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"pltp-shift-backend/internal/model"
	"pltp-shift-backend/internal/repository"
	"pltp-shift-backend/internal/rotation"
)

type LogEntryHandler struct {
	repo repository.LogEntryRepository
}

func NewLogEntryHandler(repo repository.LogEntryRepository) *LogEntryHandler {
	return &LogEntryHandler{repo: repo}
}

func (h *LogEntryHandler) GetAll(c *fiber.Ctx) error {
	targetUnit := c.Query("target_unit")

	var entries []model.LogEntry
	var err error
	if targetUnit != "" {
		entries, err = h.repo.GetByTargetUnit(targetUnit)
	} else {
		entries, err = h.repo.GetAll()
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil riwayat laporan"})
	}
	return c.JSON(fiber.Map{"data": entries})
}

func (h *LogEntryHandler) GetByID(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	entry, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Laporan tidak ditemukan"})
	}
	return c.JSON(fiber.Map{"data": entry})
}

// Create mencatat laporan shift (telemetri). Entry bersifat append-only:
// tidak ada endpoint update.
func (h *LogEntryHandler) Create(c *fiber.Ctx) error {
	var entry model.LogEntry
	if err := c.BodyParser(&entry); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	now := time.Now()
	if entry.Timestamp.IsZero() {
		entry.Timestamp = now
	}
	if entry.UUID == "" {
		entry.UUID = uuid.NewString()
	}
	// Kalau client tidak mengisi shift, derive dari timestamp entry
	// supaya konsisten dengan jam pencatatan.
	if entry.Shift == "" {
		entry.Shift = rotation.CurrentShift(entry.Timestamp)
	}
	if entry.GroupName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nama regu wajib diisi"})
	}

	if err := h.repo.Create(&entry); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan laporan"})
	}
	return c.JSON(fiber.Map{"message": "Laporan berhasil dicatat", "data": entry})
}

func (h *LogEntryHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus laporan"})
	}
	return c.JSON(fiber.Map{"message": "Laporan dihapus"})
}
