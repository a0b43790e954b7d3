package rotation

import "time"

// Nama shift operasi.
const (
	ShiftPagi  = "Pagi"
	ShiftSore  = "Sore"
	ShiftMalam = "Malam"
)

// CurrentShift menentukan shift dari jam lokal:
// Pagi 08:00-15:00, Sore 15:00-23:00, Malam 23:00-08:00.
// Batas bawah inklusif, batas atas eksklusif.
func CurrentShift(t time.Time) string {
	hour := t.Hour()
	if hour >= 8 && hour < 15 {
		return ShiftPagi
	}
	if hour >= 15 && hour < 23 {
		return ShiftSore
	}
	return ShiftMalam
}

// ShiftInfo adalah info shift berjalan untuk header dashboard.
type ShiftInfo struct {
	Current   string `json:"current"`
	Next      string `json:"next"`
	NextStart string `json:"next_start"`
}

// CurrentShiftInfo melengkapi CurrentShift dengan shift berikutnya dan
// jam mulainya.
func CurrentShiftInfo(t time.Time) ShiftInfo {
	switch CurrentShift(t) {
	case ShiftPagi:
		return ShiftInfo{Current: ShiftPagi, Next: ShiftSore, NextStart: "15:00"}
	case ShiftSore:
		return ShiftInfo{Current: ShiftSore, Next: ShiftMalam, NextStart: "23:00"}
	default:
		return ShiftInfo{Current: ShiftMalam, Next: ShiftPagi, NextStart: "08:00"}
	}
}

// Nama hari dalam Bahasa Indonesia. ScheduleDay pada task ditulis dengan
// nama-nama ini, jadi pencocokan notifikasi harus memakai tabel yang sama.
var weekdayNames = map[time.Weekday]string{
	time.Sunday:    "Minggu",
	time.Monday:    "Senin",
	time.Tuesday:   "Selasa",
	time.Wednesday: "Rabu",
	time.Thursday:  "Kamis",
	time.Friday:    "Jumat",
	time.Saturday:  "Sabtu",
}

// DayName mengembalikan nama hari Bahasa Indonesia untuk sebuah waktu.
func DayName(t time.Time) string {
	return weekdayNames[t.Weekday()]
}
