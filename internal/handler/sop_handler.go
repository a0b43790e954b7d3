package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"pltp-shift-backend/internal/model"
	"pltp-shift-backend/internal/repository"
)

type SOPHandler struct {
	repo repository.SOPRepository
}

func NewSOPHandler(repo repository.SOPRepository) *SOPHandler {
	return &SOPHandler{repo: repo}
}

func (h *SOPHandler) GetAll(c *fiber.Ctx) error {
	sops, err := h.repo.GetAll(c.Query("category"), c.Query("target_unit"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data SOP"})
	}
	return c.JSON(fiber.Map{"data": sops})
}

func (h *SOPHandler) GetByID(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	sop, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "SOP tidak ditemukan"})
	}
	return c.JSON(fiber.Map{"data": sop})
}

func (h *SOPHandler) Create(c *fiber.Ctx) error {
	var sop model.SOP
	if err := c.BodyParser(&sop); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if strings.TrimSpace(sop.Title) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Judul SOP wajib diisi"})
	}

	if err := h.repo.Create(&sop); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan SOP"})
	}
	return c.JSON(fiber.Map{"message": "SOP berhasil disimpan", "data": sop})
}

func (h *SOPHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	var req model.SOP
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	sop, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "SOP tidak ditemukan"})
	}

	sop.Title = req.Title
	sop.Category = req.Category
	sop.TargetUnit = req.TargetUnit
	sop.Type = req.Type
	sop.Content = req.Content
	sop.FileURL = req.FileURL
	sop.FileName = req.FileName
	sop.LinkURL = req.LinkURL

	if err := h.repo.Update(sop); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengupdate SOP"})
	}
	return c.JSON(fiber.Map{"message": "SOP berhasil diupdate", "data": sop})
}

func (h *SOPHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus SOP"})
	}
	return c.JSON(fiber.Map{"message": "SOP dihapus"})
}
