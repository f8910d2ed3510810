package domain

// Allergy 过敏信息
type Allergy struct {
	ID         int    `json:"id" validate:"required"`
	ResidentID int    `json:"resident_id"`
	Allergen   string `json:"allergen" validate:"required"`
	Severity   string `json:"severity,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// AllergyInput 过敏信息创建/更新
type AllergyInput struct {
	ResidentID int    `json:"resident_id" validate:"required"`
	Allergen   string `json:"allergen" validate:"required"`
	Severity   string `json:"severity,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// Diet 饮食信息
type Diet struct {
	ID          int    `json:"id" validate:"required"`
	ResidentID  int    `json:"resident_id"`
	DietType    string `json:"diet_type"`
	Description string `json:"description,omitempty"`
	Preferences string `json:"preferences,omitempty"`
}

// DietInput 饮食信息创建/更新
type DietInput struct {
	ResidentID  int    `json:"resident_id" validate:"required"`
	DietType    string `json:"diet_type" validate:"required"`
	Description string `json:"description,omitempty"`
	Preferences string `json:"preferences,omitempty"`
}
