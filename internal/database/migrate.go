package database

import (
	"fmt"

	"jobboard_backend/internal/config"
	"jobboard_backend/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open подключается к БД согласно конфигурации (postgres по умолчанию,
// mysql как альтернативный драйвер)
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "mysql":
		dialector = mysql.Open(cfg.Database.DSN)
	default:
		dialector = postgres.Open(cfg.Database.DSN)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// Migrate прогоняет AutoMigrate для всех моделей
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.Company{},
		&models.Order{},
		&models.JobApplication{},

		// Справочники
		&models.LegalForm{},
		&models.Industry{},
		&models.Specialization{},
		&models.SpecializationCategory{},
		&models.SpecializationBPO{},
		&models.Region{},
		&models.Skill{},
		&models.RequiredSkill{},
		&models.EmploymentType{},
		&models.WorkStyle{},
		&models.WorkExperienceKind{},
	)
}
