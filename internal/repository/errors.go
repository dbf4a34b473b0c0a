package repository

import (
	"errors"
	"fmt"

	"github.com/fadilmartias/hr-backend/internal/apperror"
	"gorm.io/gorm"
)

func translateError(err error, entity string, id any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound("%s with ID %v not found.", entity, id)
	}
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.Persistence(fmt.Sprintf("database error on %s", entity), err)
}
