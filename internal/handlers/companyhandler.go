package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-board/internal/dtos"
	"github.com/justsurfingit/job-board/internal/models"
)

type CompanyManager interface {
	CreateCompany(ctx context.Context, userID string, req *dtos.CompanyCreationRequest) (*models.Company, error)
	ListCompanies(ctx context.Context, userID string) ([]models.Company, error)
	GetCompany(ctx context.Context, userID string, id uint) (*models.Company, error)
	UpdateCompany(ctx context.Context, userID string, id uint, req *dtos.CompanyUpdateRequest) (*models.Company, error)
	DeleteCompany(ctx context.Context, userID string, id uint) error
}

type CompanyHandler struct {
	Companies CompanyManager
}

func NewCompanyHandler(companies CompanyManager) *CompanyHandler {
	return &CompanyHandler{Companies: companies}
}

func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req dtos.CompanyCreationRequest
	if !bindJSON(c, &req) {
		return
	}
	company, err := h.Companies.CreateCompany(c.Request.Context(), currentUser(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, company)
}

func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	companies, err := h.Companies.ListCompanies(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, companies)
}

func (h *CompanyHandler) GetCompany(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	company, err := h.Companies.GetCompany(c.Request.Context(), currentUser(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req dtos.CompanyUpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	company, err := h.Companies.UpdateCompany(c.Request.Context(), currentUser(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := h.Companies.DeleteCompany(c.Request.Context(), currentUser(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
