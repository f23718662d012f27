package models

// TaxonomyBase - общая форма справочной записи: уникальное имя,
// владелец, таймстемпы. Справочники не каскадируются при удалении -
// висячие ссылки из вакансий/компаний допускаются.
type TaxonomyBase struct {
	BaseModel
	Name    string `gorm:"uniqueIndex;not null" json:"name"`
	OwnerID string `gorm:"index" json:"owner_id"`
}

// Base дает обобщенному коду доступ к общим полям справочника
func (b *TaxonomyBase) Base() *TaxonomyBase { return b }

// Справочники. Каждый тип - отдельная таблица.
type (
	LegalForm              struct{ TaxonomyBase }
	Industry               struct{ TaxonomyBase }
	Specialization         struct{ TaxonomyBase }
	SpecializationCategory struct{ TaxonomyBase }
	SpecializationBPO      struct{ TaxonomyBase }
	Region                 struct{ TaxonomyBase }
	Skill                  struct{ TaxonomyBase }
	RequiredSkill          struct{ TaxonomyBase }
	EmploymentType         struct{ TaxonomyBase }
	WorkStyle              struct{ TaxonomyBase }
	WorkExperienceKind     struct{ TaxonomyBase }
)
