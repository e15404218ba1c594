package services

import (
	"context"
	"fmt"

	"github.com/justsurfingit/job-board/internal/dtos"
	"github.com/justsurfingit/job-board/internal/models"
	"gorm.io/gorm"
)

type CompanyService struct {
	DB *gorm.DB
}

func NewCompanyService(db *gorm.DB) *CompanyService {
	return &CompanyService{DB: db}
}

func (s *CompanyService) CreateCompany(ctx context.Context, userID string, req *dtos.CompanyCreationRequest) (*models.Company, error) {
	company := &models.Company{UserID: userID, Name: req.Name}
	if err := s.DB.WithContext(ctx).Create(company).Error; err != nil {
		return nil, err
	}
	return company, nil
}

func (s *CompanyService) ListCompanies(ctx context.Context, userID string) ([]models.Company, error) {
	var companies []models.Company
	err := s.DB.WithContext(ctx).Where("user_id = ?", userID).Order("created_at desc").Find(&companies).Error
	return companies, err
}

func (s *CompanyService) GetCompany(ctx context.Context, userID string, id uint) (*models.Company, error) {
	var company models.Company
	err := s.DB.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&company).Error
	if err != nil {
		return nil, notFound(err, "company")
	}
	return &company, nil
}

func (s *CompanyService) UpdateCompany(ctx context.Context, userID string, id uint, req *dtos.CompanyUpdateRequest) (*models.Company, error) {
	company, err := s.GetCompany(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	var fields []string
	set := func(name string, dst *string, src *string) {
		if src != nil {
			*dst = *src
			fields = append(fields, name)
		}
	}
	set("Name", &company.Name, req.Name)
	set("Description", &company.Description, req.Description)
	set("Logo", &company.Logo, req.Logo)
	set("CoverImage", &company.CoverImage, req.CoverImage)
	set("Mail", &company.Mail, req.Mail)
	set("Website", &company.Website, req.Website)
	set("LinkedIn", &company.LinkedIn, req.LinkedIn)
	set("Address", &company.Address, req.Address)
	set("City", &company.City, req.City)
	set("State", &company.State, req.State)
	set("Zipcode", &company.Zipcode, req.Zipcode)

	if len(fields) == 0 {
		return nil, ErrNoChanges
	}
	if err := s.DB.WithContext(ctx).Model(company).Select(fields).Updates(company).Error; err != nil {
		return nil, err
	}
	return company, nil
}

func (s *CompanyService) DeleteCompany(ctx context.Context, userID string, id uint) error {
	res := s.DB.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Company{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("company: %w", ErrNotFound)
	}
	return nil
}
