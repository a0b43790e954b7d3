package rotation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"pltp-shift-backend/internal/model"
)

// Tag adalah penanda literal di Notes yang membedakan event change over
// dari laporan telemetri biasa. Pembaca eksternal (history, analitik)
// mencocokkan string ini persis, jadi jangan diubah.
const Tag = "[CHANGE OVER]"

// Slot adalah posisi peralatan dalam satu grup rotasi.
type Slot string

const (
	SlotA Slot = "A"
	SlotB Slot = "B"
	SlotC Slot = "C"
)

// Status urgensi jadwal change over.
const (
	StatusOnSchedule = "On Schedule"
	StatusDueSoon    = "Due Soon"
	StatusOverdue    = "Overdue"
)

// Frekuensi rotasi yang dikenal.
const (
	FreqTigaHarian    = "3 Harian"
	FreqMingguan      = "Mingguan"
	FreqDuaMingguan   = "2 Mingguan"
	FreqBulanan       = "Bulanan"
	FreqJadwalOperasi = "Sesuai Jadwal Operasi"
)

// GroupName yang dipakai untuk log hasil change over.
const rotationGroupName = "Operator (C.O)"

const defaultNote = "Tidak ada catatan khusus."

var (
	ErrEmptyEquipmentName = errors.New("nama peralatan tidak boleh kosong")
	ErrInvalidSlot        = errors.New("slot tidak dikenal")
	ErrSlotNotLabeled     = errors.New("slot tidak punya label pada task ini")
	ErrSameSlot           = errors.New("slot tujuan sama dengan yang sedang berjalan")
)

// HasSlotC melaporkan apakah task memakai konfigurasi 3 pompa.
// Diskriminatornya hanya LabelC yang terisi, tidak ada field terpisah.
func HasSlotC(task model.ChangeOverTask) bool {
	return task.LabelC != ""
}

// SlotLabel mengembalikan label peralatan untuk sebuah slot.
func SlotLabel(task model.ChangeOverTask, slot Slot) (string, error) {
	switch slot {
	case SlotA:
		return task.LabelA, nil
	case SlotB:
		return task.LabelB, nil
	case SlotC:
		if !HasSlotC(task) {
			return "", ErrSlotNotLabeled
		}
		return task.LabelC, nil
	}
	return "", ErrInvalidSlot
}

// NextTarget menghitung slot tujuan rotasi berikutnya.
// 2 pompa: bergantian A<->B. 3 pompa: siklus A->B->C->A.
func NextTarget(task model.ChangeOverTask) Slot {
	current := Slot(task.CurrentRunning)
	if HasSlotC(task) {
		switch current {
		case SlotA:
			return SlotB
		case SlotB:
			return SlotC
		default:
			return SlotA
		}
	}
	if current == SlotA {
		return SlotB
	}
	return SlotA
}

// SelectTarget menentukan slot tujuan dengan memperhitungkan pilihan manual
// operator. Pilihan manual hanya berlaku untuk konfigurasi 3 pompa; untuk
// 2 pompa tujuan selalu hasil NextTarget.
func SelectTarget(task model.ChangeOverTask, override *Slot) Slot {
	if HasSlotC(task) && override != nil {
		return *override
	}
	return NextTarget(task)
}

// SelectableTargets mengembalikan slot yang boleh dipilih operator, yaitu
// semua slot berlabel selain yang sedang berjalan. Untuk 2 pompa hasilnya
// selalu satu slot.
func SelectableTargets(task model.ChangeOverTask) []Slot {
	slots := []Slot{SlotA, SlotB}
	if HasSlotC(task) {
		slots = append(slots, SlotC)
	}
	var out []Slot
	for _, s := range slots {
		if s != Slot(task.CurrentRunning) {
			out = append(out, s)
		}
	}
	return out
}

// ApplyRotation menjalankan satu change over: mengembalikan task yang sudah
// diperbarui dan satu LogEntry untuk riwayat. Tidak ada persistensi di sini;
// kedua artefak dikembalikan agar caller menyimpannya sebagai sepasang write.
func ApplyRotation(task model.ChangeOverTask, target Slot, operatorNote string, now time.Time) (model.ChangeOverTask, model.LogEntry, error) {
	if strings.TrimSpace(task.EquipmentName) == "" {
		return task, model.LogEntry{}, ErrEmptyEquipmentName
	}

	fromLabel, err := SlotLabel(task, Slot(task.CurrentRunning))
	if err != nil {
		return task, model.LogEntry{}, fmt.Errorf("slot berjalan %q tidak valid: %w", task.CurrentRunning, err)
	}
	toLabel, err := SlotLabel(task, target)
	if err != nil {
		return task, model.LogEntry{}, fmt.Errorf("slot tujuan %q tidak valid: %w", target, err)
	}
	if target == Slot(task.CurrentRunning) {
		return task, model.LogEntry{}, ErrSameSlot
	}

	note := strings.TrimSpace(operatorNote)
	if note == "" {
		note = defaultNote
	}
	logNote := fmt.Sprintf("%s %s. Berpindah dari: %s (%s) -> Ke: %s (%s). Catatan Operator: %s",
		Tag, task.EquipmentName, task.CurrentRunning, fromLabel, target, toLabel, note)

	entry := model.LogEntry{
		UUID:       uuid.NewString(),
		Timestamp:  now,
		GroupName:  rotationGroupName,
		Shift:      CurrentShift(now),
		TargetUnit: task.TargetUnit,
		Units:      placeholderUnits(task.TargetUnit),
		Checklist:  nil,
		Notes:      logNote,
	}

	updated := task
	updated.CurrentRunning = string(target)
	updated.LastPerformed = now
	// Rotasi selalu mengembalikan status ke On Schedule, apapun status sebelumnya.
	updated.Status = StatusOnSchedule

	return updated, entry, nil
}

// placeholderUnits mengisi telemetri nol untuk kedua unit di pasangan target.
// Event change over bukan pembacaan telemetri, tapi skema log tidak punya
// jenis entry terpisah.
func placeholderUnits(targetUnit string) model.UnitsMap {
	empty := model.UnitMetrics{Status: "Normal"}
	units := model.UnitsMap{}
	if targetUnit == "Unit 1-2" {
		units["Unit 1"] = empty
		units["Unit 2"] = empty
	} else {
		units["Unit 3"] = empty
		units["Unit 4"] = empty
	}
	return units
}

// ParseSlot memvalidasi input slot dari request.
func ParseSlot(s string) (Slot, error) {
	switch Slot(strings.ToUpper(strings.TrimSpace(s))) {
	case SlotA:
		return SlotA, nil
	case SlotB:
		return SlotB, nil
	case SlotC:
		return SlotC, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSlot, s)
}
