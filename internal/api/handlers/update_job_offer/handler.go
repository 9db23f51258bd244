package update_job_offer

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/EVP-GatewayService/internal/api/handlers"
	"github.com/m04kA/EVP-GatewayService/internal/service/joboffers"
	"github.com/m04kA/EVP-GatewayService/internal/service/joboffers/models"
)

const (
	msgInvalidCompanyID   = "некорректный ID компании"
	msgInvalidOfferID     = "некорректный ID вакансии"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidJobOffer    = "некорректные данные вакансии"
	msgNotFound           = "вакансия не найдена"
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

// Handle PUT /api/v1/companies/{companyId}/job-offers/{offerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	companyID, err := strconv.ParseInt(vars["companyId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /companies/{id}/job-offers/{id} - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	offerID, err := strconv.ParseInt(vars["offerId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /companies/{id}/job-offers/{id} - Invalid offer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOfferID)
		return
	}

	var req models.UpsertJobOfferRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /companies/{id}/job-offers/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), companyID, offerID, &req)
	if err != nil {
		switch {
		case errors.Is(err, joboffers.ErrJobOfferNotFound):
			h.logger.Warn("PUT /companies/{id}/job-offers/{id} - Job offer not found: offer_id=%d", offerID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, joboffers.ErrInvalidInput):
			h.logger.Warn("PUT /companies/{id}/job-offers/{id} - Invalid job offer: offer_id=%d: %v",
				offerID, err)
			handlers.RespondBadRequest(w, msgInvalidJobOffer)

		default:
			h.logger.Error("PUT /companies/{id}/job-offers/{id} - Failed to update job offer: offer_id=%d, error=%v",
				offerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /companies/{id}/job-offers/{id} - Job offer updated: offer_id=%d, company_id=%d",
		offerID, companyID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
