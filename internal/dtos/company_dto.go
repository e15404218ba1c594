package dtos

type CompanyCreationRequest struct {
	Name string `json:"name" binding:"required"`
}

type CompanyUpdateRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1"`
	Description *string `json:"description"`
	Logo        *string `json:"logo"`
	CoverImage  *string `json:"cover_image"`
	Mail        *string `json:"mail" binding:"omitempty,email"`
	Website     *string `json:"website"`
	LinkedIn    *string `json:"linkedin"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	Zipcode     *string `json:"zipcode"`
}
