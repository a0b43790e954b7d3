package database

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pltp-shift-backend/internal/logger"
	"pltp-shift-backend/internal/model"
	"pltp-shift-backend/internal/rotation"
)

func SeedAll(db *gorm.DB) {
	log := logger.Get()

	// 1. Akun admin pertama
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := model.User{
		Nama:     "Administrator",
		Username: "admin",
		Password: string(hashedPassword),
		Role:     "admin",
	}
	db.FirstOrCreate(&admin, model.User{Username: admin.Username})

	// 2. Jadwal change over contoh
	tasks := []model.ChangeOverTask{
		{
			EquipmentName:  "Cooling Water Pump",
			TargetUnit:     "Unit 1-2",
			Frequency:      rotation.FreqMingguan,
			ScheduleDay:    "Jumat",
			LastPerformed:  time.Now().AddDate(0, 0, -7),
			CurrentRunning: "A",
			Status:         rotation.StatusOnSchedule,
			LabelA:         "CWP A",
			LabelB:         "CWP B",
			Procedures: model.StringList{
				"Pastikan pompa standby siap operasi (valve suction terbuka)",
				"Start pompa standby, tunggu tekanan discharge stabil",
				"Stop pompa yang sedang berjalan",
				"Cek vibrasi dan temperatur bearing pompa baru",
			},
			Precautions: model.StringList{
				"Jangan stop pompa lama sebelum pompa baru stabil",
				"Perhatikan level air di basin cooling tower",
			},
		},
		{
			EquipmentName:  "Boiler Feed Pump",
			TargetUnit:     "Unit 3-4",
			Frequency:      rotation.FreqDuaMingguan,
			ScheduleDay:    "Senin",
			LastPerformed:  time.Now().AddDate(0, 0, -14),
			CurrentRunning: "A",
			Status:         rotation.StatusOnSchedule,
			LabelA:         "BFP A",
			LabelB:         "BFP B",
			LabelC:         "BFP C",
			Procedures: model.StringList{
				"Warming up pompa standby minimal 15 menit",
				"Samakan tekanan discharge sebelum switching",
				"Start pompa tujuan, stop pompa berjalan",
			},
		},
	}
	for _, t := range tasks {
		db.FirstOrCreate(&t, model.ChangeOverTask{EquipmentName: t.EquipmentName})
	}

	// 3. SOP contoh
	sops := []model.SOP{
		{
			Title:      "Prosedur Change Over Pompa",
			Category:   "Operation",
			TargetUnit: "General",
			Type:       "text",
			Content: model.StringList{
				"Lapor ke control room sebelum switching",
				"Ikuti checklist change over pada jadwal masing-masing",
				"Catat hasil di log sheet shift",
			},
		},
		{
			Title:      "Penanganan Trip Unit",
			Category:   "Emergency",
			TargetUnit: "General",
			Type:       "text",
			Content: model.StringList{
				"Amankan turbin sesuai SOP emergency shutdown",
				"Informasikan supervisor shift",
			},
		},
	}
	for _, s := range sops {
		db.FirstOrCreate(&s, model.SOP{Title: s.Title})
	}

	log.Info("Seed selesai: admin, jadwal change over, dan SOP contoh tersedia")
}
