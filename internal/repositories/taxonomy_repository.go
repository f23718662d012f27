package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrTaxonomyNotFound  = errors.New("taxonomy record not found")
	ErrTaxonomyNameTaken = errors.New("taxonomy name already taken")
)

// TaxonomyPtr - указатель на конкретный тип справочника.
// Через Base() обобщенный код получает доступ к общим полям.
type TaxonomyPtr[T any] interface {
	*T
	Base() *models.TaxonomyBase
}

// TaxonomyRepository - один обобщенный репозиторий на все ~11 справочников.
// Контракт у них одинаковый, различаются только таблицы.
type TaxonomyRepository[T any, P TaxonomyPtr[T]] struct {
	db *gorm.DB
}

func NewTaxonomyRepository[T any, P TaxonomyPtr[T]](db *gorm.DB) *TaxonomyRepository[T, P] {
	return &TaxonomyRepository[T, P]{db: db}
}

func (r *TaxonomyRepository[T, P]) FindByID(id string) (P, error) {
	var rec T
	err := r.db.First(&rec, "id = ?", id).Error
	if err != nil {
		var zero P
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, ErrTaxonomyNotFound
		}
		return zero, err
	}
	return P(&rec), nil
}

func (r *TaxonomyRepository[T, P]) FindAll(page, pageSize int) ([]T, error) {
	recs := []T{}
	err := r.db.Scopes(Paginate(page, pageSize)).Order("name ASC").Find(&recs).Error
	return recs, err
}

func (r *TaxonomyRepository[T, P]) FindByIDs(ids []string) ([]T, error) {
	recs := []T{}
	if len(ids) == 0 {
		return recs, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&recs).Error
	return recs, err
}

// Create сохраняет запись; занятое имя - ErrTaxonomyNameTaken
// (имена справочников уникальны)
func (r *TaxonomyRepository[T, P]) Create(rec P) error {
	var existing T
	err := r.db.Where("name = ?", rec.Base().Name).First(&existing).Error
	if err == nil {
		return ErrTaxonomyNameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.db.Create(rec).Error
}

func (r *TaxonomyRepository[T, P]) Save(rec P) error {
	return r.db.Save(rec).Error
}

// Delete удаляет запись безусловно: висячие ссылки из
// вакансий/компаний/заказов допускаются
func (r *TaxonomyRepository[T, P]) Delete(id string) error {
	var rec T
	res := r.db.Delete(&rec, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrTaxonomyNotFound
	}
	return nil
}

// TaxonomyRepos - контейнер типизированных репозиториев справочников,
// создается один раз при старте
type TaxonomyRepos struct {
	LegalForms               *TaxonomyRepository[models.LegalForm, *models.LegalForm]
	Industries               *TaxonomyRepository[models.Industry, *models.Industry]
	Specializations          *TaxonomyRepository[models.Specialization, *models.Specialization]
	SpecializationCategories *TaxonomyRepository[models.SpecializationCategory, *models.SpecializationCategory]
	SpecializationBPOs       *TaxonomyRepository[models.SpecializationBPO, *models.SpecializationBPO]
	Regions                  *TaxonomyRepository[models.Region, *models.Region]
	Skills                   *TaxonomyRepository[models.Skill, *models.Skill]
	RequiredSkills           *TaxonomyRepository[models.RequiredSkill, *models.RequiredSkill]
	EmploymentTypes          *TaxonomyRepository[models.EmploymentType, *models.EmploymentType]
	WorkStyles               *TaxonomyRepository[models.WorkStyle, *models.WorkStyle]
	WorkExperienceKinds      *TaxonomyRepository[models.WorkExperienceKind, *models.WorkExperienceKind]
}

func NewTaxonomyRepos(db *gorm.DB) *TaxonomyRepos {
	return &TaxonomyRepos{
		LegalForms:               NewTaxonomyRepository[models.LegalForm](db),
		Industries:               NewTaxonomyRepository[models.Industry](db),
		Specializations:          NewTaxonomyRepository[models.Specialization](db),
		SpecializationCategories: NewTaxonomyRepository[models.SpecializationCategory](db),
		SpecializationBPOs:       NewTaxonomyRepository[models.SpecializationBPO](db),
		Regions:                  NewTaxonomyRepository[models.Region](db),
		Skills:                   NewTaxonomyRepository[models.Skill](db),
		RequiredSkills:           NewTaxonomyRepository[models.RequiredSkill](db),
		EmploymentTypes:          NewTaxonomyRepository[models.EmploymentType](db),
		WorkStyles:               NewTaxonomyRepository[models.WorkStyle](db),
		WorkExperienceKinds:      NewTaxonomyRepository[models.WorkExperienceKind](db),
	}
}
