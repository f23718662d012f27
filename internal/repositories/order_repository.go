package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderRepository interface {
	FindByID(id string) (*models.Order, error)
	FindPublicByID(id string) (*models.Order, error)
	FindAllPublic(filter OrderFilter) ([]models.Order, error)
	FindByOwner(ownerID string) ([]models.Order, error)
	Create(order *models.Order) error
	Save(order *models.Order) error
	Delete(id string) error
	SetState(id string, state models.PublishState) (*models.Order, error)
}

// OrderFilter - допустимые фильтры публичной выборки заказов
type OrderFilter struct {
	Specializations []string
	Page            int
	PageSize        int
}

type OrderRepositoryImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &OrderRepositoryImpl{db: db}
}

func (r *OrderRepositoryImpl) FindByID(id string) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Owner").First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepositoryImpl) FindPublicByID(id string) (*models.Order, error) {
	var order models.Order
	err := r.db.Scopes(PublicOnly).Preload("Owner").First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepositoryImpl) FindAllPublic(filter OrderFilter) ([]models.Order, error) {
	orders := []models.Order{}
	err := r.db.Scopes(
		PublicOnly,
		JSONAnyOf("specializations", filter.Specializations),
		Paginate(filter.Page, filter.PageSize),
	).Preload("Owner").Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepositoryImpl) FindByOwner(ownerID string) ([]models.Order, error) {
	orders := []models.Order{}
	err := r.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepositoryImpl) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *OrderRepositoryImpl) Save(order *models.Order) error {
	return r.db.Save(order).Error
}

func (r *OrderRepositoryImpl) Delete(id string) error {
	res := r.db.Delete(&models.Order{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepositoryImpl) SetState(id string, state models.PublishState) (*models.Order, error) {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).Update("state", state)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrOrderNotFound
	}
	return r.FindByID(id)
}
