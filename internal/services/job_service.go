package services

import (
	"jobboard_backend/internal/apperrors"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"

	"github.com/google/uuid"
)

type JobService interface {
	GetPublicByID(id string) (*dto.JobView, error)
	ListPublic(q *dto.JobFilterQuery, page, pageSize int) ([]dto.JobView, error)
	ListMine(ownerID string) ([]dto.JobView, error)
	Create(ownerID string, req *dto.CreateJobRequest) (*dto.JobView, error)
	Update(id string, req *dto.UpdateJobRequest) (*dto.JobView, error)
	UpdateRequirements(id string, req *dto.JobRequirementsRequest) (*dto.JobView, error)
	UpdateEmployerInfo(id string, req *dto.EmployerInfoRequest) (*dto.JobView, error)
	Delete(id string) error
	SetPublishState(id string, state models.PublishState) (*dto.JobView, error)
}

type JobServiceImpl struct {
	jobRepo     repositories.JobRepository
	userService UserService
	taxRepos    *repositories.TaxonomyRepos
}

func NewJobService(
	jobRepo repositories.JobRepository,
	userService UserService,
	taxRepos *repositories.TaxonomyRepos,
) JobService {
	return &JobServiceImpl{
		jobRepo:     jobRepo,
		userService: userService,
		taxRepos:    taxRepos,
	}
}

// GetPublicByID видит только опубликованные вакансии
func (s *JobServiceImpl) GetPublicByID(id string) (*dto.JobView, error) {
	job, err := s.jobRepo.FindPublicByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.NotFound("Job", id)
		}
		return nil, apperrors.InternalError(err)
	}
	return s.buildJobView(job)
}

// ListPublic: пустой результат - пустой список, не ошибка
func (s *JobServiceImpl) ListPublic(q *dto.JobFilterQuery, page, pageSize int) ([]dto.JobView, error) {
	jobs, err := s.jobRepo.FindAllPublic(repositories.JobFilter{
		City:            q.City,
		Specializations: q.Specializations,
		Industries:      q.Industries,
		EmploymentTypes: q.EmploymentTypes,
		Page:            page,
		PageSize:        pageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.buildJobViews(jobs)
}

func (s *JobServiceImpl) ListMine(ownerID string) ([]dto.JobView, error) {
	jobs, err := s.jobRepo.FindByOwner(ownerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.buildJobViews(jobs)
}

// Create ставит владельца и создает вакансию в состоянии private
func (s *JobServiceImpl) Create(ownerID string, req *dto.CreateJobRequest) (*dto.JobView, error) {
	job := &models.Job{
		OwnerID:         ownerID,
		State:           models.StatePrivate,
		Title:           req.Title,
		Description:     req.Description,
		City:            req.City,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		Specializations: req.Specializations,
		Industries:      req.Industries,
		EmploymentTypes: req.EmploymentTypes,
		WorkStyles:      req.WorkStyles,
		RequiredSkills:  req.RequiredSkills,
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Перечитываем с Preload, чтобы ответ содержал раскрытого владельца
	created, err := s.jobRepo.FindByID(job.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.buildJobView(created)
}

// Update применяет только явно переданные поля
func (s *JobServiceImpl) Update(id string, req *dto.UpdateJobRequest) (*dto.JobView, error) {
	job, err := s.load(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.City != nil {
		job.City = *req.City
	}
	if req.SalaryMin != nil {
		job.SalaryMin = *req.SalaryMin
	}
	if req.SalaryMax != nil {
		job.SalaryMax = *req.SalaryMax
	}
	if req.Specializations != nil {
		job.Specializations = *req.Specializations
	}
	if req.Industries != nil {
		job.Industries = *req.Industries
	}
	if req.EmploymentTypes != nil {
		job.EmploymentTypes = *req.EmploymentTypes
	}
	if req.WorkStyles != nil {
		job.WorkStyles = *req.WorkStyles
	}
	if req.RequiredSkills != nil {
		job.RequiredSkills = *req.RequiredSkills
	}

	return s.save(job)
}

// UpdateRequirements заменяет вложенный документ требований целиком
func (s *JobServiceImpl) UpdateRequirements(id string, req *dto.JobRequirementsRequest) (*dto.JobView, error) {
	job, err := s.load(id)
	if err != nil {
		return nil, err
	}
	job.Requirements = newJSONType(models.JobRequirements{
		ID:         uuid.NewString(),
		Experience: req.Experience,
		Education:  req.Education,
		Skills:     req.Skills,
		Languages:  req.Languages,
	})
	return s.save(job)
}

// UpdateEmployerInfo заменяет вложенный документ работодателя целиком
func (s *JobServiceImpl) UpdateEmployerInfo(id string, req *dto.EmployerInfoRequest) (*dto.JobView, error) {
	job, err := s.load(id)
	if err != nil {
		return nil, err
	}
	job.EmployerInfo = newJSONType(models.EmployerInfo{
		ID:          uuid.NewString(),
		CompanyName: req.CompanyName,
		ContactName: req.ContactName,
		Email:       req.Email,
		Phone:       req.Phone,
	})
	return s.save(job)
}

func (s *JobServiceImpl) Delete(id string) error {
	if err := s.jobRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.NotFound("Job", id)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *JobServiceImpl) SetPublishState(id string, state models.PublishState) (*dto.JobView, error) {
	job, err := s.jobRepo.SetState(id, state)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.NotFound("Job", id)
		}
		return nil, apperrors.InternalError(err)
	}
	return s.buildJobView(job)
}

// --- Вспомогательные ---

func (s *JobServiceImpl) load(id string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.NotFound("Job", id)
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) save(job *models.Job) (*dto.JobView, error) {
	if err := s.jobRepo.Save(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.buildJobView(job)
}

func (s *JobServiceImpl) buildJobViews(jobs []models.Job) ([]dto.JobView, error) {
	views := []dto.JobView{}
	for i := range jobs {
		view, err := s.buildJobView(&jobs[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

// buildJobView раскрывает владельца и ссылки на справочники на один уровень
func (s *JobServiceImpl) buildJobView(job *models.Job) (*dto.JobView, error) {
	specializations, err := expandRefs(s.taxRepos.Specializations, job.Specializations)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	industries, err := expandRefs(s.taxRepos.Industries, job.Industries)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	employmentTypes, err := expandRefs(s.taxRepos.EmploymentTypes, job.EmploymentTypes)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	workStyles, err := expandRefs(s.taxRepos.WorkStyles, job.WorkStyles)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	requiredSkills, err := expandRefs(s.taxRepos.RequiredSkills, job.RequiredSkills)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	view := &dto.JobView{
		Job:             job,
		Specializations: specializations,
		Industries:      industries,
		EmploymentTypes: employmentTypes,
		WorkStyles:      workStyles,
		RequiredSkills:  requiredSkills,
	}

	if job.Owner != nil {
		owner, err := s.userService.BuildView(job.Owner)
		if err != nil {
			return nil, err
		}
		view.Owner = owner
	}

	return view, nil
}
