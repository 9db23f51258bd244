package update_job_offer

import (
	"context"

	"github.com/m04kA/EVP-GatewayService/internal/service/joboffers/models"
)

type JobOfferService interface {
	Update(ctx context.Context, companyID, offerID int64, req *models.UpsertJobOfferRequest) (*models.JobOfferResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
