package domain

import "time"

// Medication 药品库条目
type Medication struct {
	ID          int    `json:"id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Dosage      string `json:"dosage,omitempty"`
	Form        string `json:"form,omitempty"`
	Description string `json:"description,omitempty"`
}

// MedicationInput 药品库创建/更新
type MedicationInput struct {
	Name        string `json:"name" validate:"required"`
	Dosage      string `json:"dosage,omitempty"`
	Form        string `json:"form,omitempty"`
	Description string `json:"description,omitempty"`
}

// ResidentMedication 住户用药
type ResidentMedication struct {
	ID           int                  `json:"id" validate:"required"`
	ResidentID   int                  `json:"resident_id"`
	MedicationID int                  `json:"medication_id"`
	Medication   *Medication          `json:"medication,omitempty"`
	Dosage       string               `json:"dosage,omitempty"`
	Instructions string               `json:"instructions,omitempty"`
	StartDate    string               `json:"start_date,omitempty"`
	EndDate      string               `json:"end_date,omitempty"`
	IsActive     bool                 `json:"is_active"`
	Schedules    []MedicationSchedule `json:"schedules,omitempty"`
}

// ResidentMedicationInput 住户用药创建/更新
type ResidentMedicationInput struct {
	ResidentID   int    `json:"resident_id" validate:"required"`
	MedicationID int    `json:"medication_id" validate:"required"`
	Dosage       string `json:"dosage,omitempty"`
	Instructions string `json:"instructions,omitempty"`
	StartDate    string `json:"start_date,omitempty"`
	EndDate      string `json:"end_date,omitempty"`
	IsActive     bool   `json:"is_active"`
}

// MedicationSchedule 用药时间表；Dagdeel 为显示值（Ochtend/Middag/Avond/Nacht）
type MedicationSchedule struct {
	ID                   int    `json:"id" validate:"required"`
	ResidentMedicationID int    `json:"resident_medication_id"`
	Dagdeel              string `json:"dagdeel"`
	Time                 string `json:"time,omitempty"`
	DayOfWeek            string `json:"day_of_week,omitempty"`
}

// ScheduleInput 用药时间表创建/更新
type ScheduleInput struct {
	ResidentMedicationID int    `json:"resident_medication_id" validate:"required"`
	Dagdeel              string `json:"dagdeel"`
	Time                 string `json:"time,omitempty"`
	DayOfWeek            string `json:"day_of_week,omitempty"`
}

// MedicationRound 给药记录：住户-用药-时间表 三元组 + 状态
// Status 为显示值（Gegeven/Gemist/Geweigerd/Uitgesteld）
type MedicationRound struct {
	ID                   int                 `json:"id" validate:"required"`
	ResidentID           int                 `json:"resident_id"`
	Resident             *Resident           `json:"resident,omitempty"`
	ResidentMedicationID int                 `json:"resident_medication_id"`
	ResidentMedication   *ResidentMedication `json:"resident_medication,omitempty"`
	ScheduleID           *int                `json:"schedule_id,omitempty"`
	Schedule             *MedicationSchedule `json:"schedule,omitempty"`
	Status               string              `json:"status"`
	Notes                string              `json:"notes,omitempty"`
	ScheduledAt          *time.Time          `json:"scheduled_at,omitempty"`
	AdministeredAt       *time.Time          `json:"administered_at,omitempty"`
	AdministeredBy       *int                `json:"administered_by,omitempty"`
}

// RoundInput 给药记录创建/更新（Status 为显示值）
type RoundInput struct {
	ResidentID           int        `json:"resident_id" validate:"required"`
	ResidentMedicationID int        `json:"resident_medication_id" validate:"required"`
	ScheduleID           *int       `json:"schedule_id,omitempty"`
	Status               string     `json:"status" validate:"required"`
	Notes                string     `json:"notes,omitempty"`
	AdministeredAt       *time.Time `json:"administered_at,omitempty"`
	AdministeredBy       *int       `json:"administered_by,omitempty"`
}

// RoundFilter 给药记录过滤条件
type RoundFilter struct {
	Date       string // YYYY-MM-DD
	Dagdeel    string // 显示值
	ResidentID *int
	Status     string // 显示值
}

// RoundStats 给药统计（按状态显示值计数）
type RoundStats struct {
	Date     string         `json:"date,omitempty"`
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status,omitempty"`
}
