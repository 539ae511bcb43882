package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/RiqueAlvess/imobteste/internal/contextkeys"
	"github.com/RiqueAlvess/imobteste/internal/contracts"
	"github.com/RiqueAlvess/imobteste/internal/core/domain"
	"github.com/RiqueAlvess/imobteste/internal/core/port"
	"github.com/RiqueAlvess/imobteste/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
)

type PublicHandler struct {
	getHomePageUC        usecases_port.GetHomePageUseCase
	findPropertiesUC     usecases_port.FindPropertiesUseCase
	getPropertyDetailsUC usecases_port.GetPropertyDetailsUseCase
	registerLeadUC       usecases_port.RegisterLeadUseCase
}

func NewPublicHandler(getHomePageUC usecases_port.GetHomePageUseCase,
	findPropertiesUC usecases_port.FindPropertiesUseCase,
	getPropertyDetailsUC usecases_port.GetPropertyDetailsUseCase,
	registerLeadUC usecases_port.RegisterLeadUseCase) *PublicHandler {
	return &PublicHandler{
		getHomePageUC:        getHomePageUC,
		findPropertiesUC:     findPropertiesUC,
		getPropertyDetailsUC: getPropertyDetailsUC,
		registerLeadUC:       registerLeadUC,
	}
}

// GetHomePage handles GET /api/v1/home
func (h *PublicHandler) GetHomePage(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	handlerLogger := logger.WithFields(port.Fields{"handler": "GetHomePage"})
	handlerLogger.Debug("Processing home page request", nil)

	homePage, err := h.getHomePageUC.Execute(r.Context())
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to load home page")
		return
	}

	response := HomePageResponse{
		Featured: toPropertyCardResponses(homePage.Featured, time.Now()),
		Cities:   homePage.Cities,
		Types:    make([]DictionaryItemResponse, len(homePage.Types)),
	}
	for i, item := range homePage.Types {
		response.Types[i] = DictionaryItemResponse{Value: item.SystemName, Label: item.DisplayName}
	}

	handlerLogger.Info("Home page loaded", port.Fields{
		"featured": len(response.Featured),
		"cities":   len(response.Cities),
	})
	RespondWithJSON(w, http.StatusOK, response)
}

// FindProperties handles GET /api/v1/properties
func (h *PublicHandler) FindProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	filters, page, applied := ParseSearchFilters(r.URL.Query())

	handlerLogger := logger.WithFields(port.Fields{
		"handler": "FindProperties",
		"page":    page,
		"filters": applied,
	})
	handlerLogger.Debug("Processing property search", nil)

	result, err := h.findPropertiesUC.Execute(r.Context(), filters, page)
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to search properties")
		return
	}

	handlerLogger.Info("Property search finished", port.Fields{
		"total_found":   result.TotalCount,
		"items_on_page": len(result.Properties),
	})

	RespondWithJSON(w, http.StatusOK, PaginatedPropertiesResponse{
		Data:           toPropertyCardResponses(result.Properties, time.Now()),
		Total:          result.TotalCount,
		Page:           result.CurrentPage,
		TotalPages:     result.TotalPages,
		PerPage:        result.PerPage,
		AppliedFilters: applied,
	})
}

// GetPropertyDetails handles GET /api/v1/properties/{propertyID}
func (h *PublicHandler) GetPropertyDetails(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	propertyID, err := strconv.ParseInt(chi.URLParam(r, "propertyID"), 10, 64)
	if err != nil {
		logger.Warn("Invalid property ID format", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid property ID format")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler":     "GetPropertyDetails",
		"property_id": propertyID,
	})
	handlerLogger.Debug("Processing property details request", nil)

	details, err := h.getPropertyDetailsUC.Execute(r.Context(), propertyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			handlerLogger.Warn("Property not found", nil)
			WriteJSONError(w, http.StatusNotFound, "Property not found")
			return
		}
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to load property")
		return
	}

	handlerLogger.Info("Property details loaded", port.Fields{
		"similar": len(details.Similar),
	})

	RespondWithJSON(w, http.StatusOK, PropertyDetailsResponse{
		Property:        toPropertyResponse(&details.Property),
		Similar:         toPropertyCardResponses(details.Similar, time.Now()),
		WhatsAppMessage: details.WhatsAppMessage,
	})
}

// SubmitLead handles POST /api/v1/leads
func (h *PublicHandler) SubmitLead(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		logger.Warn("Failed to read request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := contracts.ValidateLeadSubmission(body); err != nil {
		logger.Warn("Lead payload failed schema validation", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid lead payload: "+err.Error())
		return
	}

	var req LeadRequest
	if err := json.Unmarshal(body, &req); err != nil {
		logger.Warn("Invalid request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler": "SubmitLead",
		"origin":  req.Origin,
	})
	handlerLogger.Debug("Processing lead submission", nil)

	client, err := h.registerLeadUC.Execute(r.Context(), domain.LeadSubmission{
		FullName:        req.FullName,
		Email:           req.Email,
		Phone:           req.Phone,
		InterestPurpose: req.InterestPurpose,
		MaxBudget:       req.MaxBudget,
		Notes:           req.Notes,
		PropertyID:      req.PropertyID,
		Origin:          domain.ContactOrigin(req.Origin),
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			handlerLogger.Warn("Lead rejected", port.Fields{"error": err.Error()})
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to register lead")
		return
	}

	handlerLogger.Info("Lead registered", port.Fields{"client_id": client.ID})
	RespondWithJSON(w, http.StatusCreated, LeadResponse{
		ID:     client.ID,
		Status: string(client.Status),
	})
}
