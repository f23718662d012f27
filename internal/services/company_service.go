package services

import (
	"jobboard_backend/internal/apperrors"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"

	"github.com/google/uuid"
)

type CompanyService interface {
	GetPublicByID(id string) (*dto.CompanyView, error)
	ListPublic(q *dto.CompanyFilterQuery, page, pageSize int) ([]dto.CompanyView, error)
	ListMine(ownerID string) ([]dto.CompanyView, error)
	Create(ownerID string, req *dto.CreateCompanyRequest) (*dto.CompanyView, error)
	Update(id string, req *dto.UpdateCompanyRequest) (*dto.CompanyView, error)
	UpdateContacts(id string, req *dto.ContactsRequest) (*dto.CompanyView, error)
	Delete(id string) error
	SetPublishState(id string, state models.PublishState) (*dto.CompanyView, error)

	AddTeamMember(id string, req *dto.TeamMemberRequest) (*dto.CompanyView, error)
	UpdateTeamMember(id, itemID string, req *dto.TeamMemberRequest) (*dto.CompanyView, error)
	DeleteTeamMember(id, itemID string) (*dto.CompanyView, error)

	AddPortfolioItem(id string, req *dto.PortfolioItemRequest) (*dto.CompanyView, error)
	UpdatePortfolioItem(id, itemID string, req *dto.PortfolioItemRequest) (*dto.CompanyView, error)
	DeletePortfolioItem(id, itemID string) (*dto.CompanyView, error)
}

type CompanyServiceImpl struct {
	companyRepo repositories.CompanyRepository
	userService UserService
	taxRepos    *repositories.TaxonomyRepos
}

func NewCompanyService(
	companyRepo repositories.CompanyRepository,
	userService UserService,
	taxRepos *repositories.TaxonomyRepos,
) CompanyService {
	return &CompanyServiceImpl{
		companyRepo: companyRepo,
		userService: userService,
		taxRepos:    taxRepos,
	}
}

func (s *CompanyServiceImpl) GetPublicByID(id string) (*dto.CompanyView, error) {
	company, err := s.companyRepo.FindPublicByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.NotFound("Company", id)
		}
		return nil, apperrors.InternalError(err)
	}
	return s.buildCompanyView(company)
}

func (s *CompanyServiceImpl) ListPublic(q *dto.CompanyFilterQuery, page, pageSize int) ([]dto.CompanyView, error) {
	companies, err := s.companyRepo.FindAllPublic(repositories.CompanyFilter{
		City:       q.City,
		Industries: q.Industries,
		Page:       page,
		PageSize:   pageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.buildCompanyViews(companies)
}

func (s *CompanyServiceImpl) ListMine(ownerID string) ([]dto.CompanyView, error) {
	companies, err := s.companyRepo.FindByOwner(ownerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.buildCompanyViews(companies)
}

func (s *CompanyServiceImpl) Create(ownerID string, req *dto.CreateCompanyRequest) (*dto.CompanyView, error) {
	company := &models.Company{
		OwnerID:         ownerID,
		State:           models.StatePrivate,
		Name:            req.Name,
		Description:     req.Description,
		City:            req.City,
		LegalFormID:     req.LegalFormID,
		Industries:      req.Industries,
		Specializations: req.Specializations,
	}

	if err := s.companyRepo.Create(company); err != nil {
		return nil, apperrors.InternalError(err)
	}

	created, err := s.companyRepo.FindByID(company.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.buildCompanyView(created)
}

func (s *CompanyServiceImpl) Update(id string, req *dto.UpdateCompanyRequest) (*dto.CompanyView, error) {
	company, err := s.load(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.Description != nil {
		company.Description = *req.Description
	}
	if req.City != nil {
		company.City = *req.City
	}
	if req.LegalFormID != nil {
		company.LegalFormID = *req.LegalFormID
	}
	if req.Industries != nil {
		company.Industries = *req.Industries
	}
	if req.Specializations != nil {
		company.Specializations = *req.Specializations
	}

	return s.save(company)
}

func (s *CompanyServiceImpl) UpdateContacts(id string, req *dto.ContactsRequest) (*dto.CompanyView, error) {
	company, err := s.load(id)
	if err != nil {
		return nil, err
	}
	company.Contacts = newJSONType(models.ContactInfo{
		ID:       uuid.NewString(),
		Email:    req.Email,
		Phone:    req.Phone,
		Website:  req.Website,
		Address:  req.Address,
		Telegram: req.Telegram,
	})
	return s.save(company)
}

func (s *CompanyServiceImpl) Delete(id string) error {
	if err := s.companyRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return apperrors.NotFound("Company", id)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *CompanyServiceImpl) SetPublishState(id string, state models.PublishState) (*dto.CompanyView, error) {
	company, err := s.companyRepo.SetState(id, state)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.NotFound("Company", id)
		}
		return nil, apperrors.InternalError(err)
	}
	return s.buildCompanyView(company)
}

// --- Команда ---

func (s *CompanyServiceImpl) AddTeamMember(id string, req *dto.TeamMemberRequest) (*dto.CompanyView, error) {
	company, err := s.load(id)
	if err != nil {
		return nil, err
	}
	company.Team = append(company.Team, models.TeamMember{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Position: req.Position,
		About:    req.About,
	})
	return s.save(company)
}

func (s *CompanyServiceImpl) UpdateTeamMember(id, itemID string, req *dto.TeamMemberRequest) (*dto.CompanyView, error) {
	company, err := s.load(id)
	if err != nil {
		return nil, err
	}
	items, ok := models.ReplaceItem([]models.TeamMember(company.Team), models.TeamMember{
		ID:       itemID,
		Name:     req.Name,
		Position: req.Position,
		About:    req.About,
	})
	if !ok {
		return nil, apperrors.NotFound("Team member", itemID)
	}
	company.Team = items
	return s.save(company)
}

func (s *CompanyServiceImpl) DeleteTeamMember(id, itemID string) (*dto.CompanyView, error) {
	company, err := s.load(id)
	if err != nil {
		return nil, err
	}
	items, ok := models.RemoveItem([]models.TeamMember(company.Team), itemID)
	if !ok {
		return nil, apperrors.NotFound("Team member", itemID)
	}
	company.Team = items
	return s.save(company)
}

// --- Портфолио ---

func (s *CompanyServiceImpl) AddPortfolioItem(id string, req *dto.PortfolioItemRequest) (*dto.CompanyView, error) {
	company, err := s.load(id)
	if err != nil {
		return nil, err
	}
	company.Portfolios = append(company.Portfolios, models.PortfolioItem{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
	})
	return s.save(company)
}

func (s *CompanyServiceImpl) UpdatePortfolioItem(id, itemID string, req *dto.PortfolioItemRequest) (*dto.CompanyView, error) {
	company, err := s.load(id)
	if err != nil {
		return nil, err
	}
	items, ok := models.ReplaceItem([]models.PortfolioItem(company.Portfolios), models.PortfolioItem{
		ID:          itemID,
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
	})
	if !ok {
		return nil, apperrors.NotFound("Portfolio entry", itemID)
	}
	company.Portfolios = items
	return s.save(company)
}

func (s *CompanyServiceImpl) DeletePortfolioItem(id, itemID string) (*dto.CompanyView, error) {
	company, err := s.load(id)
	if err != nil {
		return nil, err
	}
	items, ok := models.RemoveItem([]models.PortfolioItem(company.Portfolios), itemID)
	if !ok {
		return nil, apperrors.NotFound("Portfolio entry", itemID)
	}
	company.Portfolios = items
	return s.save(company)
}

// --- Вспомогательные ---

func (s *CompanyServiceImpl) load(id string) (*models.Company, error) {
	company, err := s.companyRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.NotFound("Company", id)
		}
		return nil, apperrors.InternalError(err)
	}
	return company, nil
}

func (s *CompanyServiceImpl) save(company *models.Company) (*dto.CompanyView, error) {
	if err := s.companyRepo.Save(company); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.buildCompanyView(company)
}

func (s *CompanyServiceImpl) buildCompanyViews(companies []models.Company) ([]dto.CompanyView, error) {
	views := []dto.CompanyView{}
	for i := range companies {
		view, err := s.buildCompanyView(&companies[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

func (s *CompanyServiceImpl) buildCompanyView(company *models.Company) (*dto.CompanyView, error) {
	legalForm, err := expandRef(s.taxRepos.LegalForms, company.LegalFormID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	industries, err := expandRefs(s.taxRepos.Industries, company.Industries)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	specializations, err := expandRefs(s.taxRepos.Specializations, company.Specializations)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	view := &dto.CompanyView{
		Company:         company,
		LegalForm:       legalForm,
		Industries:      industries,
		Specializations: specializations,
	}

	if company.Owner != nil {
		owner, err := s.userService.BuildView(company.Owner)
		if err != nil {
			return nil, err
		}
		view.Owner = owner
	}

	return view, nil
}
