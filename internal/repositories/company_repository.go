package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrCompanyNotFound = errors.New("company not found")

type CompanyRepository interface {
	FindByID(id string) (*models.Company, error)
	FindPublicByID(id string) (*models.Company, error)
	FindAllPublic(filter CompanyFilter) ([]models.Company, error)
	FindByOwner(ownerID string) ([]models.Company, error)
	Create(company *models.Company) error
	Save(company *models.Company) error
	Delete(id string) error
	SetState(id string, state models.PublishState) (*models.Company, error)
}

// CompanyFilter - допустимые фильтры публичной выборки компаний
type CompanyFilter struct {
	City       string
	Industries []string
	Page       int
	PageSize   int
}

type CompanyRepositoryImpl struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &CompanyRepositoryImpl{db: db}
}

func (r *CompanyRepositoryImpl) FindByID(id string) (*models.Company, error) {
	var company models.Company
	err := r.db.Preload("Owner").First(&company, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepositoryImpl) FindPublicByID(id string) (*models.Company, error) {
	var company models.Company
	err := r.db.Scopes(PublicOnly).Preload("Owner").First(&company, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepositoryImpl) FindAllPublic(filter CompanyFilter) ([]models.Company, error) {
	companies := []models.Company{}
	tx := r.db.Scopes(
		PublicOnly,
		JSONAnyOf("industries", filter.Industries),
		Paginate(filter.Page, filter.PageSize),
	).Preload("Owner")
	if filter.City != "" {
		tx = tx.Where("city = ?", filter.City)
	}
	err := tx.Order("created_at DESC").Find(&companies).Error
	return companies, err
}

func (r *CompanyRepositoryImpl) FindByOwner(ownerID string) ([]models.Company, error) {
	companies := []models.Company{}
	err := r.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&companies).Error
	return companies, err
}

func (r *CompanyRepositoryImpl) Create(company *models.Company) error {
	return r.db.Create(company).Error
}

func (r *CompanyRepositoryImpl) Save(company *models.Company) error {
	return r.db.Save(company).Error
}

func (r *CompanyRepositoryImpl) Delete(id string) error {
	res := r.db.Delete(&models.Company{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCompanyNotFound
	}
	return nil
}

func (r *CompanyRepositoryImpl) SetState(id string, state models.PublishState) (*models.Company, error) {
	res := r.db.Model(&models.Company{}).Where("id = ?", id).Update("state", state)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrCompanyNotFound
	}
	return r.FindByID(id)
}
