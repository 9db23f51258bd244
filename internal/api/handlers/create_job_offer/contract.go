package create_job_offer

import (
	"context"

	"github.com/m04kA/EVP-GatewayService/internal/service/joboffers/models"
)

type JobOfferService interface {
	Create(ctx context.Context, companyID int64, req *models.UpsertJobOfferRequest) (*models.JobOfferResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
