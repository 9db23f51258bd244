package joboffers

import (
	"context"

	"github.com/m04kA/EVP-GatewayService/internal/domain"
	"github.com/m04kA/EVP-GatewayService/internal/integrations/platformapi"
)

// PlatformClient интерфейс клиента REST API платформы
type PlatformClient interface {
	ListJobOffers(ctx context.Context, companyID int64) ([]*domain.JobOffer, error)
	CreateJobOffer(ctx context.Context, companyID int64, req *platformapi.UpsertJobOfferRequest) (*domain.JobOffer, error)
	UpdateJobOffer(ctx context.Context, companyID, offerID int64, req *platformapi.UpsertJobOfferRequest) (*domain.JobOffer, error)
	DeleteJobOffer(ctx context.Context, companyID, offerID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
