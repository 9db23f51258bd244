package joboffers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/EVP-GatewayService/internal/integrations/platformapi"
	"github.com/m04kA/EVP-GatewayService/internal/service/joboffers/models"
)

// Service сервис для работы с вакансиями компаний-экспонентов
type Service struct {
	platform PlatformClient
	logger   Logger
}

// NewService создает новый экземпляр сервиса вакансий
func NewService(platform PlatformClient, logger Logger) *Service {
	return &Service{
		platform: platform,
		logger:   logger,
	}
}

// List получает вакансии компании
func (s *Service) List(ctx context.Context, companyID int64) (*models.JobOfferListResponse, error) {
	s.logger.Info("List: fetching job offers for company=%d", companyID)

	offers, err := s.platform.ListJobOffers(ctx, companyID)
	if err != nil {
		s.logger.Error("List: platform error for company=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d job offers for company=%d", len(offers), companyID)
	return models.FromDomainJobOfferList(offers), nil
}

// Create создает вакансию компании
func (s *Service) Create(ctx context.Context, companyID int64, req *models.UpsertJobOfferRequest) (*models.JobOfferResponse, error) {
	s.logger.Info("Create: company=%d, title=%s", companyID, req.Title)

	if err := validateUpsert(req); err != nil {
		s.logger.Warn("Create: validation failed for company=%d: %v", companyID, err)
		return nil, err
	}

	offer, err := s.platform.CreateJobOffer(ctx, companyID, toUpstreamRequest(req))
	if err != nil {
		s.logger.Error("Create: platform error for company=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	s.logger.Info("Create: created job offer id=%d for company=%d", offer.ID, companyID)
	return models.FromDomainJobOffer(offer), nil
}

// Update обновляет вакансию
func (s *Service) Update(ctx context.Context, companyID, offerID int64, req *models.UpsertJobOfferRequest) (*models.JobOfferResponse, error) {
	s.logger.Info("Update: company=%d, offer=%d", companyID, offerID)

	if err := validateUpsert(req); err != nil {
		s.logger.Warn("Update: validation failed for offer=%d: %v", offerID, err)
		return nil, err
	}

	offer, err := s.platform.UpdateJobOffer(ctx, companyID, offerID, toUpstreamRequest(req))
	if err != nil {
		if errors.Is(err, platformapi.ErrJobOfferNotFound) {
			s.logger.Warn("Update: job offer id=%d not found for company=%d", offerID, companyID)
			return nil, ErrJobOfferNotFound
		}
		s.logger.Error("Update: platform error for offer=%d: %v", offerID, err)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated job offer id=%d", offerID)
	return models.FromDomainJobOffer(offer), nil
}

// Delete удаляет вакансию
func (s *Service) Delete(ctx context.Context, companyID, offerID int64) error {
	s.logger.Info("Delete: company=%d, offer=%d", companyID, offerID)

	if err := s.platform.DeleteJobOffer(ctx, companyID, offerID); err != nil {
		if errors.Is(err, platformapi.ErrJobOfferNotFound) {
			s.logger.Warn("Delete: job offer id=%d not found for company=%d", offerID, companyID)
			return ErrJobOfferNotFound
		}
		s.logger.Error("Delete: platform error for offer=%d: %v", offerID, err)
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted job offer id=%d", offerID)
	return nil
}

func validateUpsert(req *models.UpsertJobOfferRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	return nil
}

func toUpstreamRequest(req *models.UpsertJobOfferRequest) *platformapi.UpsertJobOfferRequest {
	return &platformapi.UpsertJobOfferRequest{
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		ContractType: req.ContractType,
		Published:    req.Published,
	}
}
