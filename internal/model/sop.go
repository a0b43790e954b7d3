package model

import "gorm.io/gorm"

// SOP adalah dokumen prosedur operasi. Isinya bisa berupa teks langsung,
// file PDF yang sudah diupload, atau link eksternal (lihat field Type).
type SOP struct {
	gorm.Model
	Title      string     `json:"title" gorm:"not null"`
	Category   string     `json:"category"`                 // Safety / Operation / Emergency / Maintenance
	TargetUnit string     `json:"target_unit"`              // General / Unit 1-2 / Unit 3-4
	Type       string     `json:"type" gorm:"default:text"` // text / pdf / url
	Content    StringList `json:"content" gorm:"serializer:json"`
	FileURL    string     `json:"file_url"`
	FileName   string     `json:"file_name"`
	LinkURL    string     `json:"link_url"`
}
