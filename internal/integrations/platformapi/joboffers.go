package platformapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/m04kA/EVP-GatewayService/internal/domain"
)

// ListJobOffers получает вакансии компании
func (c *Client) ListJobOffers(ctx context.Context, companyID int64) ([]*domain.JobOffer, error) {
	var dtos []JobOfferDTO
	err := c.doJSON(ctx, http.MethodGet,
		fmt.Sprintf("/companies/%d/job-offers", companyID), "", nil, &dtos, http.StatusOK)
	if err != nil {
		return nil, err
	}

	offers := make([]*domain.JobOffer, 0, len(dtos))
	for i := range dtos {
		offers = append(offers, dtos[i].ToDomain())
	}
	return offers, nil
}

// CreateJobOffer создает вакансию компании
func (c *Client) CreateJobOffer(ctx context.Context, companyID int64, req *UpsertJobOfferRequest) (*domain.JobOffer, error) {
	var dto JobOfferDTO
	err := c.doJSON(ctx, http.MethodPost,
		fmt.Sprintf("/companies/%d/job-offers", companyID), "", req, &dto, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return dto.ToDomain(), nil
}

// UpdateJobOffer обновляет вакансию
func (c *Client) UpdateJobOffer(ctx context.Context, companyID, offerID int64, req *UpsertJobOfferRequest) (*domain.JobOffer, error) {
	var dto JobOfferDTO
	err := c.doJSON(ctx, http.MethodPut,
		fmt.Sprintf("/companies/%d/job-offers/%d", companyID, offerID), "", req, &dto, http.StatusOK)
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			return nil, ErrJobOfferNotFound
		}
		return nil, err
	}
	return dto.ToDomain(), nil
}

// DeleteJobOffer удаляет вакансию
func (c *Client) DeleteJobOffer(ctx context.Context, companyID, offerID int64) error {
	err := c.doJSON(ctx, http.MethodDelete,
		fmt.Sprintf("/companies/%d/job-offers/%d", companyID, offerID), "", nil, nil, http.StatusNoContent)
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			return ErrJobOfferNotFound
		}
		return err
	}
	return nil
}
