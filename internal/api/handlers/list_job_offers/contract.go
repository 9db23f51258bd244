package list_job_offers

import (
	"context"

	"github.com/m04kA/EVP-GatewayService/internal/service/joboffers/models"
)

type JobOfferService interface {
	List(ctx context.Context, companyID int64) (*models.JobOfferListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
