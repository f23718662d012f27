package services

import (
	"jobboard_backend/internal/apperrors"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"

	"github.com/google/uuid"
)

type UserService interface {
	GetPublicProfile(id string) (*dto.UserView, error)
	ListPublicProfiles(filter repositories.UserFilter) ([]dto.UserView, error)
	GetOwnProfile(userID string) (*dto.UserView, error)
	BuildView(user *models.User) (*dto.UserView, error)
	UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*dto.UserView, error)
	UpdateContacts(userID string, req *dto.ContactsRequest) (*dto.UserView, error)
	SetPublishState(userID string, state models.PublishState) (*dto.UserView, error)

	AddWorkExperience(userID string, req *dto.WorkExperienceRequest) (*dto.UserView, error)
	UpdateWorkExperience(userID, itemID string, req *dto.WorkExperienceRequest) (*dto.UserView, error)
	DeleteWorkExperience(userID, itemID string) (*dto.UserView, error)

	AddEducation(userID string, req *dto.EducationRequest) (*dto.UserView, error)
	UpdateEducation(userID, itemID string, req *dto.EducationRequest) (*dto.UserView, error)
	DeleteEducation(userID, itemID string) (*dto.UserView, error)

	AddAchievement(userID string, req *dto.AchievementRequest) (*dto.UserView, error)
	UpdateAchievement(userID, itemID string, req *dto.AchievementRequest) (*dto.UserView, error)
	DeleteAchievement(userID, itemID string) (*dto.UserView, error)

	AddPortfolioItem(userID string, req *dto.PortfolioItemRequest) (*dto.UserView, error)
	UpdatePortfolioItem(userID, itemID string, req *dto.PortfolioItemRequest) (*dto.UserView, error)
	DeletePortfolioItem(userID, itemID string) (*dto.UserView, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
	taxRepos *repositories.TaxonomyRepos
}

func NewUserService(userRepo repositories.UserRepository, taxRepos *repositories.TaxonomyRepos) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		taxRepos: taxRepos,
	}
}

// GetPublicProfile возвращает профиль только в состоянии public
func (s *UserServiceImpl) GetPublicProfile(id string) (*dto.UserView, error) {
	user, err := s.userRepo.FindPublicByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NotFound("User", id)
		}
		return nil, apperrors.InternalError(err)
	}
	return s.buildUserView(user)
}

func (s *UserServiceImpl) ListPublicProfiles(filter repositories.UserFilter) ([]dto.UserView, error) {
	users, err := s.userRepo.FindAllPublic(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	views := []dto.UserView{}
	for i := range users {
		view, err := s.buildUserView(&users[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

func (s *UserServiceImpl) GetOwnProfile(userID string) (*dto.UserView, error) {
	return s.loadView(userID)
}

// BuildView раскрывает ссылки уже загруженного пользователя
// (используется другими сервисами для раскрытия владельца)
func (s *UserServiceImpl) BuildView(user *models.User) (*dto.UserView, error) {
	return s.buildUserView(user)
}

// UpdateProfile применяет только явно переданные поля анкеты
func (s *UserServiceImpl) UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*dto.UserView, error) {
	user, err := s.load(userID)
	if err != nil {
		return nil, err
	}

	profile := user.Profile.Data()
	if req.FirstName != nil {
		profile.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		profile.LastName = *req.LastName
	}
	if req.About != nil {
		profile.About = *req.About
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.Skills != nil {
		profile.Skills = *req.Skills
	}
	if req.SpecializationCategories != nil {
		profile.SpecializationCategories = *req.SpecializationCategories
	}
	if req.RegionID != nil {
		profile.RegionID = *req.RegionID
	}
	user.Profile = newJSONType(profile)

	return s.save(user)
}

// UpdateContacts заменяет контактный вложенный документ целиком,
// присваивая ему новый идентификатор
func (s *UserServiceImpl) UpdateContacts(userID string, req *dto.ContactsRequest) (*dto.UserView, error) {
	user, err := s.load(userID)
	if err != nil {
		return nil, err
	}
	user.Contacts = newJSONType(models.ContactInfo{
		ID:       uuid.NewString(),
		Email:    req.Email,
		Phone:    req.Phone,
		Website:  req.Website,
		Address:  req.Address,
		Telegram: req.Telegram,
	})
	return s.save(user)
}

func (s *UserServiceImpl) SetPublishState(userID string, state models.PublishState) (*dto.UserView, error) {
	user, err := s.userRepo.SetState(userID, state)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NotFound("User", userID)
		}
		return nil, apperrors.InternalError(err)
	}
	return s.buildUserView(user)
}

// --- Опыт работы ---

func (s *UserServiceImpl) AddWorkExperience(userID string, req *dto.WorkExperienceRequest) (*dto.UserView, error) {
	user, err := s.load(userID)
	if err != nil {
		return nil, err
	}
	user.WorkExperiences = append(user.WorkExperiences, models.WorkExperienceItem{
		ID:          uuid.NewString(),
		Company:     req.Company,
		Position:    req.Position,
		Description: req.Description,
		StartYear:   req.StartYear,
		EndYear:     req.EndYear,
	})
	return s.save(user)
}

func (s *UserServiceImpl) UpdateWorkExperience(userID, itemID string, req *dto.WorkExperienceRequest) (*dto.UserView, error) {
	user, err := s.load(userID)
	if err != nil {
		return nil, err
	}
	items, ok := models.ReplaceItem([]models.WorkExperienceItem(user.WorkExperiences), models.WorkExperienceItem{
		ID:          itemID,
		Company:     req.Company,
		Position:    req.Position,
		Description: req.Description,
		StartYear:   req.StartYear,
		EndYear:     req.EndYear,
	})
	if !ok {
		return nil, apperrors.NotFound("Work experience entry", itemID)
	}
	user.WorkExperiences = items
	return s.save(user)
}

func (s *UserServiceImpl) DeleteWorkExperience(userID, itemID string) (*dto.UserView, error) {
	user, err := s.load(userID)
	if err != nil {
		return nil, err
	}
	items, ok := models.RemoveItem([]models.WorkExperienceItem(user.WorkExperiences), itemID)
	if !ok {
		return nil, apperrors.NotFound("Work experience entry", itemID)
	}
	user.WorkExperiences = items
	return s.save(user)
}

// --- Образование ---

func (s *UserServiceImpl) AddEducation(userID string, req *dto.EducationRequest) (*dto.UserView, error) {
	user, err := s.load(userID)
	if err != nil {
		return nil, err
	}
	user.Educations = append(user.Educations, models.EducationItem{
		ID:          uuid.NewString(),
		Institution: req.Institution,
		Degree:      req.Degree,
		Field:       req.Field,
		StartYear:   req.StartYear,
		EndYear:     req.EndYear,
	})
	return s.save(user)
}

func (s *UserServiceImpl) UpdateEducation(userID, itemID string, req *dto.EducationRequest) (*dto.UserView, error) {
	user, err := s.load(userID)
	if err != nil {
		return nil, err
	}
	items, ok := models.ReplaceItem([]models.EducationItem(user.Educations), models.EducationItem{
		ID:          itemID,
		Institution: req.Institution,
		Degree:      req.Degree,
		Field:       req.Field,
		StartYear:   req.StartYear,
		EndYear:     req.EndYear,
	})
	if !ok {
		return nil, apperrors.NotFound("Education entry", itemID)
	}
	user.Educations = items
	return s.save(user)
}

func (s *UserServiceImpl) DeleteEducation(userID, itemID string) (*dto.UserView, error) {
	user, err := s.load(userID)
	if err != nil {
		return nil, err
	}
	items, ok := models.RemoveItem([]models.EducationItem(user.Educations), itemID)
	if !ok {
		return nil, apperrors.NotFound("Education entry", itemID)
	}
	user.Educations = items
	return s.save(user)
}

// --- Достижения ---

func (s *UserServiceImpl) AddAchievement(userID string, req *dto.AchievementRequest) (*dto.UserView, error) {
	user, err := s.load(userID)
	if err != nil {
		return nil, err
	}
	user.Achievements = append(user.Achievements, models.AchievementItem{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Year:        req.Year,
	})
	return s.save(user)
}

func (s *UserServiceImpl) UpdateAchievement(userID, itemID string, req *dto.AchievementRequest) (*dto.UserView, error) {
	user, err := s.load(userID)
	if err != nil {
		return nil, err
	}
	items, ok := models.ReplaceItem([]models.AchievementItem(user.Achievements), models.AchievementItem{
		ID:          itemID,
		Title:       req.Title,
		Description: req.Description,
		Year:        req.Year,
	})
	if !ok {
		return nil, apperrors.NotFound("Achievement entry", itemID)
	}
	user.Achievements = items
	return s.save(user)
}

func (s *UserServiceImpl) DeleteAchievement(userID, itemID string) (*dto.UserView, error) {
	user, err := s.load(userID)
	if err != nil {
		return nil, err
	}
	items, ok := models.RemoveItem([]models.AchievementItem(user.Achievements), itemID)
	if !ok {
		return nil, apperrors.NotFound("Achievement entry", itemID)
	}
	user.Achievements = items
	return s.save(user)
}

// --- Портфолио ---

func (s *UserServiceImpl) AddPortfolioItem(userID string, req *dto.PortfolioItemRequest) (*dto.UserView, error) {
	user, err := s.load(userID)
	if err != nil {
		return nil, err
	}
	user.Portfolios = append(user.Portfolios, models.PortfolioItem{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
	})
	return s.save(user)
}

func (s *UserServiceImpl) UpdatePortfolioItem(userID, itemID string, req *dto.PortfolioItemRequest) (*dto.UserView, error) {
	user, err := s.load(userID)
	if err != nil {
		return nil, err
	}
	items, ok := models.ReplaceItem([]models.PortfolioItem(user.Portfolios), models.PortfolioItem{
		ID:          itemID,
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
	})
	if !ok {
		return nil, apperrors.NotFound("Portfolio entry", itemID)
	}
	user.Portfolios = items
	return s.save(user)
}

func (s *UserServiceImpl) DeletePortfolioItem(userID, itemID string) (*dto.UserView, error) {
	user, err := s.load(userID)
	if err != nil {
		return nil, err
	}
	items, ok := models.RemoveItem([]models.PortfolioItem(user.Portfolios), itemID)
	if !ok {
		return nil, apperrors.NotFound("Portfolio entry", itemID)
	}
	user.Portfolios = items
	return s.save(user)
}

// --- Вспомогательные ---

func (s *UserServiceImpl) load(userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NotFound("User", userID)
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *UserServiceImpl) save(user *models.User) (*dto.UserView, error) {
	if err := s.userRepo.Save(user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.buildUserView(user)
}

func (s *UserServiceImpl) loadView(userID string) (*dto.UserView, error) {
	user, err := s.load(userID)
	if err != nil {
		return nil, err
	}
	return s.buildUserView(user)
}

// buildUserView раскрывает ссылки анкеты на справочники
func (s *UserServiceImpl) buildUserView(user *models.User) (*dto.UserView, error) {
	profile := user.Profile.Data()

	skills, err := expandRefs(s.taxRepos.Skills, profile.Skills)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	categories, err := expandRefs(s.taxRepos.SpecializationCategories, profile.SpecializationCategories)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	region, err := expandRef(s.taxRepos.Regions, profile.RegionID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.UserView{
		User: user,
		Profile: dto.ProfileView{
			FirstName:                profile.FirstName,
			LastName:                 profile.LastName,
			About:                    profile.About,
			Phone:                    profile.Phone,
			Skills:                   skills,
			SpecializationCategories: categories,
			Region:                   region,
		},
	}, nil
}
