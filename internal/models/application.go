package models

// JobApplication - отклик кандидата на вакансию. Резюме сохраняется
// на диск, в записи хранится путь.
type JobApplication struct {
	BaseModel
	JobID string `gorm:"not null;index" json:"job_id"`
	Job   *Job   `gorm:"foreignKey:JobID" json:"job,omitempty"`

	Name        string `gorm:"not null" json:"name"`
	Email       string `gorm:"not null" json:"email"`
	Phone       string `json:"phone"`
	CoverLetter string `json:"cover_letter"`
	ResumePath  string `json:"resume_path"`
}
