package dto

// ApplyRequest - отклик на вакансию. Приходит multipart-формой
// вместе с файлом резюме.
type ApplyRequest struct {
	Name        string `form:"name" json:"name" validate:"required,min=2,max=200"`
	Email       string `form:"email" json:"email" validate:"required,email"`
	Phone       string `form:"phone" json:"phone" validate:"max=30"`
	CoverLetter string `form:"cover_letter" json:"cover_letter" validate:"max=4000"`
}
