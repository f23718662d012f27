package services

import (
	"jobboard_backend/internal/apperrors"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
)

// TaxonomyService - один обобщенный сервис на все справочники.
// label - человекочитаемое имя ресурса для сообщений об ошибках.
type TaxonomyService[T any, P repositories.TaxonomyPtr[T]] struct {
	repo  *repositories.TaxonomyRepository[T, P]
	label string
}

func NewTaxonomyService[T any, P repositories.TaxonomyPtr[T]](
	repo *repositories.TaxonomyRepository[T, P],
	label string,
) *TaxonomyService[T, P] {
	return &TaxonomyService[T, P]{repo: repo, label: label}
}

func (s *TaxonomyService[T, P]) Get(id string) (*dto.TaxonomyRef, error) {
	rec, err := s.repo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTaxonomyNotFound) {
			return nil, apperrors.NotFound(s.label, id)
		}
		return nil, apperrors.InternalError(err)
	}
	base := rec.Base()
	return &dto.TaxonomyRef{ID: base.ID, Name: base.Name}, nil
}

func (s *TaxonomyService[T, P]) List(page, pageSize int) ([]dto.TaxonomyRef, error) {
	recs, err := s.repo.FindAll(page, pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	refs := []dto.TaxonomyRef{}
	for i := range recs {
		base := P(&recs[i]).Base()
		refs = append(refs, dto.TaxonomyRef{ID: base.ID, Name: base.Name})
	}
	return refs, nil
}

// Create добавляет запись справочника. Занятое имя - ошибка валидации.
func (s *TaxonomyService[T, P]) Create(ownerID string, req *dto.TaxonomyRequest) (*dto.TaxonomyRef, error) {
	var rec T
	p := P(&rec)
	p.Base().Name = req.Name
	p.Base().OwnerID = ownerID

	if err := s.repo.Create(p); err != nil {
		if apperrors.Is(err, repositories.ErrTaxonomyNameTaken) {
			return nil, apperrors.ValidationError(map[string]string{
				"name": "name is already taken",
			})
		}
		return nil, apperrors.InternalError(err)
	}

	base := p.Base()
	return &dto.TaxonomyRef{ID: base.ID, Name: base.Name}, nil
}

func (s *TaxonomyService[T, P]) Rename(id string, req *dto.TaxonomyRequest) (*dto.TaxonomyRef, error) {
	rec, err := s.repo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTaxonomyNotFound) {
			return nil, apperrors.NotFound(s.label, id)
		}
		return nil, apperrors.InternalError(err)
	}

	rec.Base().Name = req.Name
	if err := s.repo.Save(rec); err != nil {
		return nil, apperrors.InternalError(err)
	}

	base := rec.Base()
	return &dto.TaxonomyRef{ID: base.ID, Name: base.Name}, nil
}

func (s *TaxonomyService[T, P]) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrTaxonomyNotFound) {
			return apperrors.NotFound(s.label, id)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// TaxonomyServices - контейнер сервисов всех справочников
type TaxonomyServices struct {
	LegalForms               *TaxonomyService[models.LegalForm, *models.LegalForm]
	Industries               *TaxonomyService[models.Industry, *models.Industry]
	Specializations          *TaxonomyService[models.Specialization, *models.Specialization]
	SpecializationCategories *TaxonomyService[models.SpecializationCategory, *models.SpecializationCategory]
	SpecializationBPOs       *TaxonomyService[models.SpecializationBPO, *models.SpecializationBPO]
	Regions                  *TaxonomyService[models.Region, *models.Region]
	Skills                   *TaxonomyService[models.Skill, *models.Skill]
	RequiredSkills           *TaxonomyService[models.RequiredSkill, *models.RequiredSkill]
	EmploymentTypes          *TaxonomyService[models.EmploymentType, *models.EmploymentType]
	WorkStyles               *TaxonomyService[models.WorkStyle, *models.WorkStyle]
	WorkExperienceKinds      *TaxonomyService[models.WorkExperienceKind, *models.WorkExperienceKind]
}

func NewTaxonomyServices(repos *repositories.TaxonomyRepos) *TaxonomyServices {
	return &TaxonomyServices{
		LegalForms:               NewTaxonomyService(repos.LegalForms, "Legal form"),
		Industries:               NewTaxonomyService(repos.Industries, "Industry"),
		Specializations:          NewTaxonomyService(repos.Specializations, "Specialization"),
		SpecializationCategories: NewTaxonomyService(repos.SpecializationCategories, "Specialization category"),
		SpecializationBPOs:       NewTaxonomyService(repos.SpecializationBPOs, "BPO specialization"),
		Regions:                  NewTaxonomyService(repos.Regions, "Region"),
		Skills:                   NewTaxonomyService(repos.Skills, "Skill"),
		RequiredSkills:           NewTaxonomyService(repos.RequiredSkills, "Required skill"),
		EmploymentTypes:          NewTaxonomyService(repos.EmploymentTypes, "Employment type"),
		WorkStyles:               NewTaxonomyService(repos.WorkStyles, "Work style"),
		WorkExperienceKinds:      NewTaxonomyService(repos.WorkExperienceKinds, "Work experience kind"),
	}
}
