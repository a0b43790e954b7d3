package handler

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pltp-shift-backend/internal/model"
	"pltp-shift-backend/internal/repository"
	"pltp-shift-backend/internal/rotation"
	"pltp-shift-backend/internal/usecase"
)

type ChangeOverHandler struct {
	repo    repository.ChangeOverRepository
	usecase *usecase.ChangeOverUsecase
}

func NewChangeOverHandler(repo repository.ChangeOverRepository, uc *usecase.ChangeOverUsecase) *ChangeOverHandler {
	return &ChangeOverHandler{repo: repo, usecase: uc}
}

func (h *ChangeOverHandler) GetAll(c *fiber.Ctx) error {
	targetUnit := c.Query("target_unit")

	var tasks []model.ChangeOverTask
	var err error
	if targetUnit != "" {
		tasks, err = h.repo.GetByTargetUnit(targetUnit)
	} else {
		tasks, err = h.repo.GetAll()
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data jadwal"})
	}
	return c.JSON(fiber.Map{"data": tasks})
}

func (h *ChangeOverHandler) GetByID(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	task, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Jadwal tidak ditemukan"})
	}
	return c.JSON(fiber.Map{"data": task})
}

// validateTask mengecek aturan dasar sebelum create/update.
func validateTask(task *model.ChangeOverTask) string {
	if strings.TrimSpace(task.EquipmentName) == "" {
		return "Nama peralatan wajib diisi"
	}
	if strings.TrimSpace(task.LabelA) == "" || strings.TrimSpace(task.LabelB) == "" {
		return "Label A dan Label B wajib diisi"
	}
	if task.CurrentRunning == "" {
		task.CurrentRunning = string(rotation.SlotA)
	}
	if _, err := rotation.ParseSlot(task.CurrentRunning); err != nil {
		return "Slot berjalan harus A, B, atau C"
	}
	// Slot C hanya valid jika LabelC terisi
	if task.CurrentRunning == string(rotation.SlotC) && !rotation.HasSlotC(*task) {
		return "Slot C tidak bisa dipakai tanpa Label C"
	}
	return ""
}

func (h *ChangeOverHandler) Create(c *fiber.Ctx) error {
	var task model.ChangeOverTask
	if err := c.BodyParser(&task); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if msg := validateTask(&task); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}
	if task.Status == "" {
		task.Status = rotation.StatusOnSchedule
	}

	if err := h.repo.Create(&task); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan jadwal"})
	}
	return c.JSON(fiber.Map{"message": "Jadwal baru tersimpan", "data": task})
}

func (h *ChangeOverHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	var req model.ChangeOverTask
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	task, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Jadwal tidak ditemukan"})
	}

	task.EquipmentName = req.EquipmentName
	task.TargetUnit = req.TargetUnit
	task.Frequency = req.Frequency
	task.ScheduleDay = req.ScheduleDay
	task.CurrentRunning = req.CurrentRunning
	task.Status = req.Status
	task.LabelA = req.LabelA
	task.LabelB = req.LabelB
	task.LabelC = req.LabelC
	task.Procedures = req.Procedures
	task.Precautions = req.Precautions
	if !req.LastPerformed.IsZero() {
		task.LastPerformed = req.LastPerformed
	}

	if msg := validateTask(task); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	if err := h.repo.Update(task); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengupdate jadwal"})
	}
	return c.JSON(fiber.Map{"message": "Jadwal berhasil diupdate", "data": task})
}

func (h *ChangeOverHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus jadwal"})
	}
	return c.JSON(fiber.Map{"message": "Jadwal dihapus"})
}

// GetNextTarget mengembalikan slot tujuan default dan pilihan manual
// (untuk konfigurasi 3 pompa operator harus memilih sendiri).
func (h *ChangeOverHandler) GetNextTarget(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	next, options, err := h.usecase.ProposeTarget(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Jadwal tidak ditemukan"})
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"next_target": next,
			"options":     options,
		},
	})
}

// Execute menjalankan change over: update task + catat log riwayat.
func (h *ChangeOverHandler) Execute(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var input struct {
		Target       string `json:"target"` // Opsional, hanya dipakai task 3 pompa
		Note         string `json:"note"`
		CheckedSteps []int  `json:"checked_steps"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	result, err := h.usecase.PerformRotation(uint(id), input.Target, input.Note, input.CheckedSteps, time.Now())
	if err != nil {
		var partial *usecase.ErrPartialWrite
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Jadwal tidak ditemukan"})
		case errors.As(err, &partial):
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": partial.Error()})
		case errors.Is(err, rotation.ErrInvalidSlot),
			errors.Is(err, rotation.ErrSlotNotLabeled),
			errors.Is(err, rotation.ErrSameSlot),
			errors.Is(err, rotation.ErrEmptyEquipmentName):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menjalankan change over"})
		}
	}

	return c.JSON(fiber.Map{"message": "Change over berhasil dicatat", "data": result})
}
