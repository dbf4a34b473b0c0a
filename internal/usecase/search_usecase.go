package usecase

import (
	"context"
	"strings"

	"github.com/fadilmartias/hr-backend/internal/apperror"
	"github.com/fadilmartias/hr-backend/internal/dto"
)

type SearchUsecase struct {
	parser DescriptionParser
}

func NewSearchUsecase(parser DescriptionParser) *SearchUsecase {
	return &SearchUsecase{parser: parser}
}

// ParseDescription extracts role, skills and experience filters from a free
// text description.
func (uc *SearchUsecase) ParseDescription(ctx context.Context, description string) (*dto.SearchDescriptionParseResponse, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, apperror.Validation("Description cannot be empty.")
	}
	return uc.parser.ParseSearchQuery(ctx, description)
}
