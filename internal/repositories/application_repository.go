package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrApplicationNotFound = errors.New("job application not found")

type ApplicationRepository interface {
	FindByID(id string) (*models.JobApplication, error)
	FindByJob(jobID string) ([]models.JobApplication, error)
	Create(app *models.JobApplication) error
	Delete(id string) error
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.JobApplication, error) {
	var app models.JobApplication
	err := r.db.First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) FindByJob(jobID string) ([]models.JobApplication, error) {
	apps := []models.JobApplication{}
	err := r.db.Where("job_id = ?", jobID).Order("created_at DESC").Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) Create(app *models.JobApplication) error {
	return r.db.Create(app).Error
}

func (r *ApplicationRepositoryImpl) Delete(id string) error {
	res := r.db.Delete(&models.JobApplication{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
