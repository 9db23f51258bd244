package delete_job_offer

import "context"

type JobOfferService interface {
	Delete(ctx context.Context, companyID, offerID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
