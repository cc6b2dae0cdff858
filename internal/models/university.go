package models

// University - запись каталога вузов.
// Имена колонок и JSON-ключи совпадают с форматом исходных CSV (university, min_ielts, average_fees_eur).
type University struct {
	BaseModel
	Name         string  `gorm:"column:university;size:255;not null;index" json:"university"`
	Country      string  `gorm:"size:100;not null;index" json:"country"`
	City         string  `gorm:"size:100" json:"city"`
	Field        string  `gorm:"size:255" json:"field"`
	MinGPA       float64 `gorm:"column:min_gpa" json:"min_gpa"`
	MinTestScore float64 `gorm:"column:min_ielts" json:"min_ielts"`
	AnnualFee    float64 `gorm:"column:average_fees_eur" json:"average_fees_eur"`
	Ranking      int     `json:"ranking"`
	CourseURL    *string `gorm:"size:512" json:"course_url,omitempty"`
}

func (University) TableName() string {
	return "universities"
}
