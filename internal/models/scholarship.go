package models

// Scholarship - запись каталога стипендий
type Scholarship struct {
	BaseModel
	Name                 string   `gorm:"column:scholarship_name;size:255;not null;index" json:"scholarship_name"`
	Country              string   `gorm:"size:100;not null;index" json:"country"`
	EligibleUniversities string   `gorm:"type:text" json:"eligible_universities"`
	Coverage             string   `gorm:"size:100;index" json:"coverage"`
	Amount               *float64 `gorm:"column:amount_eur" json:"amount_eur"`
	Eligibility          string   `gorm:"type:text" json:"eligibility"`
	WebsiteURL           *string  `gorm:"size:512" json:"website_url,omitempty"`
}

func (Scholarship) TableName() string {
	return "scholarships"
}

// HasAmount - у стипендии указана сумма
func (s Scholarship) HasAmount() bool {
	return s.Amount != nil
}
