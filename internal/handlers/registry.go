package handlers

import (
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	UserHandler        *UserHandler
	JobHandler         *JobHandler
	CompanyHandler     *CompanyHandler
	OrderHandler       *OrderHandler
	ApplicationHandler *ApplicationHandler
	FileHandler        *FileHandler
	TaxonomyHandlers   *TaxonomyHandlers
}

// TaxonomyHandlers - хендлеры всех справочников
type TaxonomyHandlers struct {
	LegalForms               *TaxonomyHandler[models.LegalForm, *models.LegalForm]
	Industries               *TaxonomyHandler[models.Industry, *models.Industry]
	Specializations          *TaxonomyHandler[models.Specialization, *models.Specialization]
	SpecializationCategories *TaxonomyHandler[models.SpecializationCategory, *models.SpecializationCategory]
	SpecializationBPOs       *TaxonomyHandler[models.SpecializationBPO, *models.SpecializationBPO]
	Regions                  *TaxonomyHandler[models.Region, *models.Region]
	Skills                   *TaxonomyHandler[models.Skill, *models.Skill]
	RequiredSkills           *TaxonomyHandler[models.RequiredSkill, *models.RequiredSkill]
	EmploymentTypes          *TaxonomyHandler[models.EmploymentType, *models.EmploymentType]
	WorkStyles               *TaxonomyHandler[models.WorkStyle, *models.WorkStyle]
	WorkExperienceKinds      *TaxonomyHandler[models.WorkExperienceKind, *models.WorkExperienceKind]
}

func NewTaxonomyHandlers(base *BaseHandler, svcs *services.TaxonomyServices) *TaxonomyHandlers {
	return &TaxonomyHandlers{
		LegalForms:               NewTaxonomyHandler(base, svcs.LegalForms, "legal-forms"),
		Industries:               NewTaxonomyHandler(base, svcs.Industries, "industries"),
		Specializations:          NewTaxonomyHandler(base, svcs.Specializations, "specializations"),
		SpecializationCategories: NewTaxonomyHandler(base, svcs.SpecializationCategories, "specialization-categories"),
		SpecializationBPOs:       NewTaxonomyHandler(base, svcs.SpecializationBPOs, "specialization-bpos"),
		Regions:                  NewTaxonomyHandler(base, svcs.Regions, "regions"),
		Skills:                   NewTaxonomyHandler(base, svcs.Skills, "skills"),
		RequiredSkills:           NewTaxonomyHandler(base, svcs.RequiredSkills, "required-skills"),
		EmploymentTypes:          NewTaxonomyHandler(base, svcs.EmploymentTypes, "employment-types"),
		WorkStyles:               NewTaxonomyHandler(base, svcs.WorkStyles, "work-styles"),
		WorkExperienceKinds:      NewTaxonomyHandler(base, svcs.WorkExperienceKinds, "work-experience-kinds"),
	}
}

// RegisterRoutes регистрирует маршруты всех справочников
func (t *TaxonomyHandlers) RegisterRoutes(public, admin *gin.RouterGroup) {
	t.LegalForms.RegisterRoutes(public, admin)
	t.Industries.RegisterRoutes(public, admin)
	t.Specializations.RegisterRoutes(public, admin)
	t.SpecializationCategories.RegisterRoutes(public, admin)
	t.SpecializationBPOs.RegisterRoutes(public, admin)
	t.Regions.RegisterRoutes(public, admin)
	t.Skills.RegisterRoutes(public, admin)
	t.RequiredSkills.RegisterRoutes(public, admin)
	t.EmploymentTypes.RegisterRoutes(public, admin)
	t.WorkStyles.RegisterRoutes(public, admin)
	t.WorkExperienceKinds.RegisterRoutes(public, admin)
}
