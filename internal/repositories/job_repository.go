package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	FindByID(id string) (*models.Job, error)
	FindPublicByID(id string) (*models.Job, error)
	FindAllPublic(filter JobFilter) ([]models.Job, error)
	FindByOwner(ownerID string) ([]models.Job, error)
	Create(job *models.Job) error
	Save(job *models.Job) error
	Delete(id string) error
	SetState(id string, state models.PublishState) (*models.Job, error)
}

// JobFilter - допустимые фильтры публичной выборки вакансий.
// Все прочие параметры запроса игнорируются.
type JobFilter struct {
	City            string
	Specializations []string
	Industries      []string
	EmploymentTypes []string
	Page            int
	PageSize        int
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) FindByID(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.Preload("Owner").First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindPublicByID(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.Scopes(PublicOnly).Preload("Owner").First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindAllPublic(filter JobFilter) ([]models.Job, error) {
	jobs := []models.Job{}
	tx := r.db.Scopes(
		PublicOnly,
		JSONAnyOf("specializations", filter.Specializations),
		JSONAnyOf("industries", filter.Industries),
		JSONAnyOf("employment_types", filter.EmploymentTypes),
		Paginate(filter.Page, filter.PageSize),
	).Preload("Owner")
	if filter.City != "" {
		tx = tx.Where("city = ?", filter.City)
	}
	err := tx.Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) FindByOwner(ownerID string) ([]models.Job, error) {
	jobs := []models.Job{}
	err := r.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) Save(job *models.Job) error {
	return r.db.Save(job).Error
}

func (r *JobRepositoryImpl) Delete(id string) error {
	res := r.db.Delete(&models.Job{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) SetState(id string, state models.PublishState) (*models.Job, error) {
	res := r.db.Model(&models.Job{}).Where("id = ?", id).Update("state", state)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrJobNotFound
	}
	return r.FindByID(id)
}
