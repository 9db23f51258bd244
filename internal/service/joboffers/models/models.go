package models

import (
	"time"

	"github.com/m04kA/EVP-GatewayService/internal/domain"
)

// Request модели

// UpsertJobOfferRequest запрос на создание/обновление вакансии
type UpsertJobOfferRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Location     string `json:"location"`
	ContractType string `json:"contractType"`
	Published    bool   `json:"published"`
}

// Response модели

// JobOfferResponse ответ с данными вакансии
type JobOfferResponse struct {
	ID           int64  `json:"id"`
	CompanyID    int64  `json:"companyId"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Location     string `json:"location,omitempty"`
	ContractType string `json:"contractType,omitempty"`
	Published    bool   `json:"published"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

// JobOfferListResponse список вакансий компании
type JobOfferListResponse struct {
	JobOffers []JobOfferResponse `json:"jobOffers"`
	Total     int                `json:"total"`
}

// FromDomainJobOffer конвертирует доменную модель в response
func FromDomainJobOffer(o *domain.JobOffer) *JobOfferResponse {
	return &JobOfferResponse{
		ID:           o.ID,
		CompanyID:    o.CompanyID,
		Title:        o.Title,
		Description:  o.Description,
		Location:     o.Location,
		ContractType: o.ContractType,
		Published:    o.Published,
		CreatedAt:    o.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    o.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainJobOfferList конвертирует список вакансий в response
func FromDomainJobOfferList(offers []*domain.JobOffer) *JobOfferListResponse {
	resp := &JobOfferListResponse{
		JobOffers: make([]JobOfferResponse, 0, len(offers)),
		Total:     len(offers),
	}
	for _, o := range offers {
		resp.JobOffers = append(resp.JobOffers, *FromDomainJobOffer(o))
	}
	return resp
}
