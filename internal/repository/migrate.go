package repository

import (
	"fmt"

	"github.com/fadilmartias/hr-backend/internal/model"
	"gorm.io/gorm"
)

// Migrate installs the extensions the schema relies on and migrates all tables.
func Migrate(db *gorm.DB) error {
	for _, ext := range []string{"uuid-ossp", "vector"} {
		if err := db.Exec(fmt.Sprintf(`CREATE EXTENSION IF NOT EXISTS "%s"`, ext)).Error; err != nil {
			return fmt.Errorf("create extension %s: %w", ext, err)
		}
	}
	return db.AutoMigrate(&model.Vacancy{}, &model.Candidate{}, &model.Interview{})
}
