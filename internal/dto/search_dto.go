package dto

type SearchDescriptionParseRequest struct {
	Description string `json:"description"`
}

type SearchDescriptionParseResponse struct {
	Role            *string  `json:"role"`
	Skills          []string `json:"skills"`
	ExperienceYears *string  `json:"experience_years"`
}
