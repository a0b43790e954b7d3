package usecase

import (
	"fmt"
	"strings"
	"time"

	"pltp-shift-backend/internal/logger"
	"pltp-shift-backend/internal/model"
	"pltp-shift-backend/internal/repository"
	"pltp-shift-backend/internal/rotation"
)

// ErrPartialWrite menandai rotasi yang jadwalnya sudah terupdate tapi log
// riwayatnya gagal tersimpan. Kedua write tidak dalam satu transaksi, jadi
// operator harus mengecek riwayat secara manual.
type ErrPartialWrite struct {
	Cause error
}

func (e *ErrPartialWrite) Error() string {
	return fmt.Sprintf("jadwal sudah terupdate tapi log riwayat gagal tersimpan, mohon cek riwayat: %v", e.Cause)
}

func (e *ErrPartialWrite) Unwrap() error {
	return e.Cause
}

type ChangeOverUsecase struct {
	taskRepo repository.ChangeOverRepository
	logRepo  repository.LogEntryRepository
}

func NewChangeOverUsecase(taskRepo repository.ChangeOverRepository, logRepo repository.LogEntryRepository) *ChangeOverUsecase {
	return &ChangeOverUsecase{taskRepo: taskRepo, logRepo: logRepo}
}

// RotationResult adalah hasil satu eksekusi change over.
type RotationResult struct {
	Task            model.ChangeOverTask `json:"task"`
	LogEntry        model.LogEntry       `json:"log_entry"`
	ChecklistDone   int                  `json:"checklist_done"`
	ChecklistTotal  int                  `json:"checklist_total"`
	ProgressPercent int                  `json:"progress_percent"`
}

// PerformRotation memuat task, menjalankan engine rotasi, lalu menyimpan
// kedua artefak: update task dulu, baru insert log. Checklist hanya dicatat
// untuk respons, tidak menghalangi rotasi.
func (u *ChangeOverUsecase) PerformRotation(taskID uint, targetInput, note string, checkedSteps []int, now time.Time) (*RotationResult, error) {
	task, err := u.taskRepo.GetByID(taskID)
	if err != nil {
		return nil, err
	}

	var override *rotation.Slot
	if strings.TrimSpace(targetInput) != "" {
		slot, err := rotation.ParseSlot(targetInput)
		if err != nil {
			return nil, err
		}
		override = &slot
	}
	target := rotation.SelectTarget(*task, override)

	updated, entry, err := rotation.ApplyRotation(*task, target, note, now)
	if err != nil {
		return nil, err
	}

	if err := u.taskRepo.Update(&updated); err != nil {
		return nil, fmt.Errorf("gagal update jadwal change over: %w", err)
	}
	if err := u.logRepo.Create(&entry); err != nil {
		logger.Get().WithField("task_id", taskID).Errorf("log change over gagal tersimpan: %v", err)
		return nil, &ErrPartialWrite{Cause: err}
	}

	checklist := rotation.NewChecklist(updated.Procedures)
	for _, idx := range checkedSteps {
		checklist.Toggle(idx)
	}

	logger.Get().WithFields(map[string]interface{}{
		"task_id":   taskID,
		"equipment": updated.EquipmentName,
		"target":    updated.CurrentRunning,
	}).Info("Change over berhasil dicatat")

	return &RotationResult{
		Task:            updated,
		LogEntry:        entry,
		ChecklistDone:   checklist.Done(),
		ChecklistTotal:  checklist.Total(),
		ProgressPercent: checklist.Percent(),
	}, nil
}

// ProposeTarget mengembalikan slot tujuan default beserta pilihan manual
// untuk task 3 pompa.
func (u *ChangeOverUsecase) ProposeTarget(taskID uint) (rotation.Slot, []rotation.Slot, error) {
	task, err := u.taskRepo.GetByID(taskID)
	if err != nil {
		return "", nil, err
	}
	return rotation.NextTarget(*task), rotation.SelectableTargets(*task), nil
}
