package list_job_offers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/EVP-GatewayService/internal/api/handlers"
)

const (
	msgInvalidCompanyID = "некорректный ID компании"
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

// Handle GET /api/v1/companies/{companyId}/job-offers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	companyIDStr := vars["companyId"]

	companyID, err := strconv.ParseInt(companyIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /companies/{id}/job-offers - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	result, err := h.service.List(r.Context(), companyID)
	if err != nil {
		h.logger.Error("GET /companies/{id}/job-offers - Failed to fetch job offers: company_id=%d, error=%v",
			companyID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /companies/{id}/job-offers - Fetched %d job offers: company_id=%d", result.Total, companyID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
