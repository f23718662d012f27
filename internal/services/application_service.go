package services

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"jobboard_backend/internal/apperrors"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/storage"

	"github.com/google/uuid"
)

// ApplicationView - отклик с публичным URL резюме
type ApplicationView struct {
	*models.JobApplication
	ResumeURL string `json:"resume_url,omitempty"`
}

type ApplicationService interface {
	Apply(ctx context.Context, jobID string, req *dto.ApplyRequest, resume io.Reader, filename string) (*ApplicationView, error)
	ListForJob(ctx context.Context, jobID string) ([]ApplicationView, error)
}

type ApplicationServiceImpl struct {
	appRepo repositories.ApplicationRepository
	jobRepo repositories.JobRepository
	files   storage.Storage
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	files storage.Storage,
) ApplicationService {
	return &ApplicationServiceImpl{
		appRepo: appRepo,
		jobRepo: jobRepo,
		files:   files,
	}
}

// Apply создает отклик на опубликованную вакансию. Резюме (если есть)
// сохраняется в хранилище под непредсказуемым именем.
func (s *ApplicationServiceImpl) Apply(ctx context.Context, jobID string, req *dto.ApplyRequest, resume io.Reader, filename string) (*ApplicationView, error) {
	if _, err := s.jobRepo.FindPublicByID(jobID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.NotFound("Job", jobID)
		}
		return nil, apperrors.InternalError(err)
	}

	app := &models.JobApplication{
		JobID:       jobID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		CoverLetter: req.CoverLetter,
	}

	if resume != nil {
		ext := strings.ToLower(filepath.Ext(filename))
		path := filepath.Join("resumes", jobID, uuid.NewString()+ext)
		if err := s.files.Save(ctx, path, resume); err != nil {
			return nil, apperrors.InternalError(err)
		}
		app.ResumePath = path
	}

	if err := s.appRepo.Create(app); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.buildView(ctx, app)
}

// ListForJob возвращает отклики на вакансию (для ее владельца)
func (s *ApplicationServiceImpl) ListForJob(ctx context.Context, jobID string) ([]ApplicationView, error) {
	apps, err := s.appRepo.FindByJob(jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	views := []ApplicationView{}
	for i := range apps {
		view, err := s.buildView(ctx, &apps[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

func (s *ApplicationServiceImpl) buildView(ctx context.Context, app *models.JobApplication) (*ApplicationView, error) {
	view := &ApplicationView{JobApplication: app}
	if app.ResumePath != "" {
		url, err := s.files.GetURL(ctx, app.ResumePath)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		view.ResumeURL = url
	}
	return view, nil
}
