package delete_job_offer

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/EVP-GatewayService/internal/api/handlers"
	"github.com/m04kA/EVP-GatewayService/internal/service/joboffers"
)

const (
	msgInvalidCompanyID = "некорректный ID компании"
	msgInvalidOfferID   = "некорректный ID вакансии"
	msgNotFound         = "вакансия не найдена"
)

type Handler struct {
	service JobOfferService
	logger  Logger
}

func NewHandler(service JobOfferService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/companies/{companyId}/job-offers/{offerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	companyID, err := strconv.ParseInt(vars["companyId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /companies/{id}/job-offers/{id} - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	offerID, err := strconv.ParseInt(vars["offerId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /companies/{id}/job-offers/{id} - Invalid offer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOfferID)
		return
	}

	err = h.service.Delete(r.Context(), companyID, offerID)
	if err != nil {
		switch {
		case errors.Is(err, joboffers.ErrJobOfferNotFound):
			h.logger.Warn("DELETE /companies/{id}/job-offers/{id} - Job offer not found: offer_id=%d", offerID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /companies/{id}/job-offers/{id} - Failed to delete job offer: offer_id=%d, error=%v",
				offerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /companies/{id}/job-offers/{id} - Job offer deleted: offer_id=%d, company_id=%d",
		offerID, companyID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
