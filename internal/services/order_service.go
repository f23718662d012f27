package services

import (
	"jobboard_backend/internal/apperrors"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"

	"github.com/google/uuid"
)

type OrderService interface {
	GetPublicByID(id string) (*dto.OrderView, error)
	ListPublic(q *dto.OrderFilterQuery, page, pageSize int) ([]dto.OrderView, error)
	ListMine(ownerID string) ([]dto.OrderView, error)
	Create(ownerID string, req *dto.CreateOrderRequest) (*dto.OrderView, error)
	Update(id string, req *dto.UpdateOrderRequest) (*dto.OrderView, error)
	UpdateProjectInfo(id string, req *dto.ProjectInfoRequest) (*dto.OrderView, error)
	UpdateContacts(id string, req *dto.ContactsRequest) (*dto.OrderView, error)
	Delete(id string) error
	SetPublishState(id string, state models.PublishState) (*dto.OrderView, error)
}

type OrderServiceImpl struct {
	orderRepo   repositories.OrderRepository
	userService UserService
	taxRepos    *repositories.TaxonomyRepos
}

func NewOrderService(
	orderRepo repositories.OrderRepository,
	userService UserService,
	taxRepos *repositories.TaxonomyRepos,
) OrderService {
	return &OrderServiceImpl{
		orderRepo:   orderRepo,
		userService: userService,
		taxRepos:    taxRepos,
	}
}

func (s *OrderServiceImpl) GetPublicByID(id string) (*dto.OrderView, error) {
	order, err := s.orderRepo.FindPublicByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrOrderNotFound) {
			return nil, apperrors.NotFound("Order", id)
		}
		return nil, apperrors.InternalError(err)
	}
	return s.buildOrderView(order)
}

func (s *OrderServiceImpl) ListPublic(q *dto.OrderFilterQuery, page, pageSize int) ([]dto.OrderView, error) {
	orders, err := s.orderRepo.FindAllPublic(repositories.OrderFilter{
		Specializations: q.Specializations,
		Page:            page,
		PageSize:        pageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.buildOrderViews(orders)
}

func (s *OrderServiceImpl) ListMine(ownerID string) ([]dto.OrderView, error) {
	orders, err := s.orderRepo.FindByOwner(ownerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.buildOrderViews(orders)
}

func (s *OrderServiceImpl) Create(ownerID string, req *dto.CreateOrderRequest) (*dto.OrderView, error) {
	order := &models.Order{
		OwnerID:         ownerID,
		State:           models.StatePrivate,
		Title:           req.Title,
		Description:     req.Description,
		BudgetMin:       req.BudgetMin,
		BudgetMax:       req.BudgetMax,
		Specializations: req.Specializations,
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, apperrors.InternalError(err)
	}

	created, err := s.orderRepo.FindByID(order.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.buildOrderView(created)
}

func (s *OrderServiceImpl) Update(id string, req *dto.UpdateOrderRequest) (*dto.OrderView, error) {
	order, err := s.load(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		order.Title = *req.Title
	}
	if req.Description != nil {
		order.Description = *req.Description
	}
	if req.BudgetMin != nil {
		order.BudgetMin = *req.BudgetMin
	}
	if req.BudgetMax != nil {
		order.BudgetMax = *req.BudgetMax
	}
	if req.Specializations != nil {
		order.Specializations = *req.Specializations
	}

	return s.save(order)
}

// UpdateProjectInfo заменяет вложенный документ проекта целиком
func (s *OrderServiceImpl) UpdateProjectInfo(id string, req *dto.ProjectInfoRequest) (*dto.OrderView, error) {
	order, err := s.load(id)
	if err != nil {
		return nil, err
	}
	order.ProjectInfo = newJSONType(models.ProjectInfo{
		ID:          uuid.NewString(),
		Deadline:    req.Deadline,
		Stack:       req.Stack,
		Description: req.Description,
	})
	return s.save(order)
}

func (s *OrderServiceImpl) UpdateContacts(id string, req *dto.ContactsRequest) (*dto.OrderView, error) {
	order, err := s.load(id)
	if err != nil {
		return nil, err
	}
	order.Contacts = newJSONType(models.ContactInfo{
		ID:       uuid.NewString(),
		Email:    req.Email,
		Phone:    req.Phone,
		Website:  req.Website,
		Address:  req.Address,
		Telegram: req.Telegram,
	})
	return s.save(order)
}

func (s *OrderServiceImpl) Delete(id string) error {
	if err := s.orderRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrOrderNotFound) {
			return apperrors.NotFound("Order", id)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *OrderServiceImpl) SetPublishState(id string, state models.PublishState) (*dto.OrderView, error) {
	order, err := s.orderRepo.SetState(id, state)
	if err != nil {
		if apperrors.Is(err, repositories.ErrOrderNotFound) {
			return nil, apperrors.NotFound("Order", id)
		}
		return nil, apperrors.InternalError(err)
	}
	return s.buildOrderView(order)
}

// --- Вспомогательные ---

func (s *OrderServiceImpl) load(id string) (*models.Order, error) {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrOrderNotFound) {
			return nil, apperrors.NotFound("Order", id)
		}
		return nil, apperrors.InternalError(err)
	}
	return order, nil
}

func (s *OrderServiceImpl) save(order *models.Order) (*dto.OrderView, error) {
	if err := s.orderRepo.Save(order); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.buildOrderView(order)
}

func (s *OrderServiceImpl) buildOrderViews(orders []models.Order) ([]dto.OrderView, error) {
	views := []dto.OrderView{}
	for i := range orders {
		view, err := s.buildOrderView(&orders[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

func (s *OrderServiceImpl) buildOrderView(order *models.Order) (*dto.OrderView, error) {
	specializations, err := expandRefs(s.taxRepos.Specializations, order.Specializations)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	view := &dto.OrderView{
		Order:           order,
		Specializations: specializations,
	}

	if order.Owner != nil {
		owner, err := s.userService.BuildView(order.Owner)
		if err != nil {
			return nil, err
		}
		view.Owner = owner
	}

	return view, nil
}
