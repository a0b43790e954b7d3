package model

import (
	"time"

	"gorm.io/gorm"
)

// UnitMetrics adalah snapshot telemetri satu unit pada saat laporan shift.
type UnitMetrics struct {
	LoadMW        float64 `json:"load_mw"`
	FrequencyHz   float64 `json:"frequency_hz"`
	VoltageKV     float64 `json:"voltage_kv"`
	SteamInletBar float64 `json:"steam_inlet_bar"`
	Status        string  `json:"status"` // Normal / Issue / Maintenance / Standby / Offline
}

// UnitsMap memetakan nama unit (misal "Unit 1") ke telemetrinya.
type UnitsMap map[string]UnitMetrics

// ShiftChecklist adalah checklist rutin per shift. Semua field opsional
// karena tiap pasangan unit punya item yang berbeda.
type ShiftChecklist struct {
	PemanasanEDG          *bool `json:"pemanasan_edg,omitempty"`
	Housekeeping          *bool `json:"housekeeping,omitempty"`
	PemanasanFirefighting *bool `json:"pemanasan_firefighting,omitempty"`

	// Khusus Unit 1-2
	DrainKompresor    *bool `json:"drain_kompresor,omitempty"`
	PurifierUnit1     *bool `json:"purifier_unit1,omitempty"`
	PurifierUnit2     *bool `json:"purifier_unit2,omitempty"`
	EngkolManualUnit1 *bool `json:"engkol_manual_unit1,omitempty"`
	EngkolManualUnit2 *bool `json:"engkol_manual_unit2,omitempty"`

	// Khusus Unit 3-4
	PemanasanPompaOil   *bool `json:"pemanasan_pompa_oil,omitempty"`
	DrainSeparator      *bool `json:"drain_separator,omitempty"`
	PenambahanNaOHUnit3 *bool `json:"penambahan_naoh_unit3,omitempty"`
	PenambahanNaOHUnit4 *bool `json:"penambahan_naoh_unit4,omitempty"`
}

// LogEntry adalah catatan laporan shift, append-only. Event change over
// memakai bentuk yang sama dengan telemetri nol dan penanda di Notes.
type LogEntry struct {
	gorm.Model
	UUID       string          `json:"uuid" gorm:"unique;not null"`
	Timestamp  time.Time       `json:"timestamp"`
	GroupName  string          `json:"group_name"`
	Shift      string          `json:"shift"` // Pagi / Sore / Malam
	TargetUnit string          `json:"target_unit"`
	Units      UnitsMap        `json:"units" gorm:"serializer:json"`
	Checklist  *ShiftChecklist `json:"checklist,omitempty" gorm:"serializer:json"`
	Notes      string          `json:"notes" gorm:"type:text"`
}
