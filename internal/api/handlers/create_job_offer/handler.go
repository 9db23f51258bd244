package create_job_offer

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
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidJobOffer    = "некорректные данные вакансии"
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

// Handle POST /api/v1/companies/{companyId}/job-offers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	companyIDStr := vars["companyId"]

	companyID, err := strconv.ParseInt(companyIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /companies/{id}/job-offers - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	var req models.UpsertJobOfferRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /companies/{id}/job-offers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), companyID, &req)
	if err != nil {
		switch {
		case errors.Is(err, joboffers.ErrInvalidInput):
			h.logger.Warn("POST /companies/{id}/job-offers - Invalid job offer: company_id=%d: %v",
				companyID, err)
			handlers.RespondBadRequest(w, msgInvalidJobOffer)

		default:
			h.logger.Error("POST /companies/{id}/job-offers - Failed to create job offer: company_id=%d, error=%v",
				companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /companies/{id}/job-offers - Job offer created: offer_id=%d, company_id=%d",
		result.ID, companyID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
