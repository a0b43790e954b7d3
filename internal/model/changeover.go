package model

import (
	"time"

	"gorm.io/gorm"
)

// StringList disimpan sebagai kolom JSON via serializer gorm.
type StringList []string

// ChangeOverTask adalah satu grup peralatan redundan (pompa A/B, atau A/B/C)
// yang dirotasi secara berkala. LabelC kosong berarti konfigurasi 2 pompa.
type ChangeOverTask struct {
	gorm.Model
	EquipmentName  string     `json:"equipment_name" gorm:"not null"`
	TargetUnit     string     `json:"target_unit"`  // "Unit 1-2" atau "Unit 3-4"
	Frequency      string     `json:"frequency"`    // Mingguan / Bulanan / 2 Mingguan / 3 Harian / Sesuai Jadwal Operasi
	ScheduleDay    string     `json:"schedule_day"` // Contoh: "Senin", "Jumat", atau tanggal untuk jadwal operasi
	LastPerformed  time.Time  `json:"last_performed"`
	CurrentRunning string     `json:"current_running" gorm:"default:A"`  // A / B / C
	Status         string     `json:"status" gorm:"default:On Schedule"` // On Schedule / Due Soon / Overdue
	LabelA         string     `json:"label_a"`
	LabelB         string     `json:"label_b"`
	LabelC         string     `json:"label_c"` // Opsional, hanya untuk konfigurasi 3 pompa
	Procedures     StringList `json:"procedures" gorm:"serializer:json"`
	Precautions    StringList `json:"precautions" gorm:"serializer:json"`
}
