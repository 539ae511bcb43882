package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/RiqueAlvess/imobteste/internal/contextkeys"
	"github.com/RiqueAlvess/imobteste/internal/core/domain"
	"github.com/RiqueAlvess/imobteste/internal/core/port"
	"github.com/RiqueAlvess/imobteste/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// CrmAdminHandler serves the owner, client and amenity admin surface.
type CrmAdminHandler struct {
	ownerUC   usecases_port.OwnerAdminUseCase
	clientUC  usecases_port.ClientAdminUseCase
	amenityUC usecases_port.AmenityAdminUseCase
}

func NewCrmAdminHandler(ownerUC usecases_port.OwnerAdminUseCase,
	clientUC usecases_port.ClientAdminUseCase,
	amenityUC usecases_port.AmenityAdminUseCase) *CrmAdminHandler {
	return &CrmAdminHandler{
		ownerUC:   ownerUC,
		clientUC:  clientUC,
		amenityUC: amenityUC,
	}
}

func writeAdminError(w http.ResponseWriter, logger port.LoggerPort, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		logger.Warn("Invalid payload", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid payload")
	case errors.Is(err, domain.ErrNotFound):
		WriteJSONError(w, http.StatusNotFound, notFoundMsg)
	default:
		logger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal error")
	}
}

// --- Owners ---

func ownerFromRequest(req OwnerRequest) *domain.Owner {
	return &domain.Owner{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
	}
}

func (h *CrmAdminHandler) CreateOwner(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	var req OwnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	owner, err := h.ownerUC.Create(r.Context(), ownerFromRequest(req))
	if err != nil {
		writeAdminError(w, logger, err, "Owner not found")
		return
	}

	logger.Info("Owner created", port.Fields{"owner_id": owner.ID.String()})
	RespondWithJSON(w, http.StatusCreated, toOwnerResponse(owner))
}

func (h *CrmAdminHandler) UpdateOwner(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	ownerID, err := uuid.Parse(chi.URLParam(r, "ownerID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid owner ID format")
		return
	}

	var req OwnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	owner := ownerFromRequest(req)
	owner.ID = ownerID

	updated, err := h.ownerUC.Update(r.Context(), owner)
	if err != nil {
		writeAdminError(w, logger, err, "Owner not found")
		return
	}
	RespondWithJSON(w, http.StatusOK, toOwnerResponse(updated))
}

func (h *CrmAdminHandler) DeleteOwner(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	ownerID, err := uuid.Parse(chi.URLParam(r, "ownerID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid owner ID format")
		return
	}

	if err := h.ownerUC.Delete(r.Context(), ownerID); err != nil {
		writeAdminError(w, logger, err, "Owner not found")
		return
	}

	logger.Info("Owner deleted", port.Fields{"owner_id": ownerID.String()})
	w.WriteHeader(http.StatusNoContent)
}

func (h *CrmAdminHandler) GetOwner(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	ownerID, err := uuid.Parse(chi.URLParam(r, "ownerID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid owner ID format")
		return
	}

	owner, err := h.ownerUC.Get(r.Context(), ownerID)
	if err != nil {
		writeAdminError(w, logger, err, "Owner not found")
		return
	}
	RespondWithJSON(w, http.StatusOK, toOwnerResponse(owner))
}

func (h *CrmAdminHandler) ListOwners(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	limit, offset := GetLimitOffset(r)

	owners, total, err := h.ownerUC.List(r.Context(), limit, offset)
	if err != nil {
		writeAdminError(w, logger, err, "Owner not found")
		return
	}

	response := OwnerListResponse{
		Data:  make([]OwnerResponse, len(owners)),
		Total: total,
	}
	for i := range owners {
		response.Data[i] = toOwnerResponse(&owners[i])
	}
	RespondWithJSON(w, http.StatusOK, response)
}

// --- Clients ---

func clientFromRequest(req ClientRequest) *domain.Client {
	return &domain.Client{
		FullName:            req.FullName,
		Email:               req.Email,
		Phone:               req.Phone,
		Status:              domain.ClientStatus(req.Status),
		Origin:              domain.ContactOrigin(req.Origin),
		InterestPurpose:     req.InterestPurpose,
		MaxBudget:           req.MaxBudget,
		Notes:               req.Notes,
		InterestPropertyIDs: req.InterestPropertyIDs,
		LastContactAt:       req.LastContactAt,
	}
}

func (h *CrmAdminHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	var req ClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	client, err := h.clientUC.Create(r.Context(), clientFromRequest(req))
	if err != nil {
		writeAdminError(w, logger, err, "Client not found")
		return
	}

	logger.Info("Client created", port.Fields{"client_id": client.ID})
	RespondWithJSON(w, http.StatusCreated, toClientResponse(client))
}

func (h *CrmAdminHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	clientID, err := strconv.ParseInt(chi.URLParam(r, "clientID"), 10, 64)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	var req ClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	client := clientFromRequest(req)
	client.ID = clientID

	updated, err := h.clientUC.Update(r.Context(), client)
	if err != nil {
		writeAdminError(w, logger, err, "Client not found")
		return
	}
	RespondWithJSON(w, http.StatusOK, toClientResponse(updated))
}

func (h *CrmAdminHandler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	clientID, err := strconv.ParseInt(chi.URLParam(r, "clientID"), 10, 64)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	if err := h.clientUC.Delete(r.Context(), clientID); err != nil {
		writeAdminError(w, logger, err, "Client not found")
		return
	}

	logger.Info("Client deleted", port.Fields{"client_id": clientID})
	w.WriteHeader(http.StatusNoContent)
}

func (h *CrmAdminHandler) GetClient(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	clientID, err := strconv.ParseInt(chi.URLParam(r, "clientID"), 10, 64)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	client, err := h.clientUC.Get(r.Context(), clientID)
	if err != nil {
		writeAdminError(w, logger, err, "Client not found")
		return
	}
	RespondWithJSON(w, http.StatusOK, toClientResponse(client))
}

func (h *CrmAdminHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	limit, offset := GetLimitOffset(r)

	clients, total, err := h.clientUC.List(r.Context(), limit, offset)
	if err != nil {
		writeAdminError(w, logger, err, "Client not found")
		return
	}

	now := time.Now()
	response := AdminClientListResponse{
		Data:  make([]AdminClientRowResponse, len(clients)),
		Total: total,
	}
	for i := range clients {
		response.Data[i] = toAdminClientRow(&clients[i], now)
	}
	RespondWithJSON(w, http.StatusOK, response)
}

// BulkSetClientStatus handles POST /api/v1/admin/clients/bulk-status
func (h *CrmAdminHandler) BulkSetClientStatus(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	var req BulkStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.IDs) == 0 {
		WriteJSONError(w, http.StatusBadRequest, "No IDs provided")
		return
	}

	affected, err := h.clientUC.BulkSetStatus(r.Context(), req.IDs, domain.ClientStatus(req.Status))
	if err != nil {
		writeAdminError(w, logger, err, "Client not found")
		return
	}

	logger.Info("Bulk client status applied", port.Fields{
		"status":   req.Status,
		"affected": affected,
	})
	RespondWithJSON(w, http.StatusOK, BulkResultResponse{Affected: affected})
}

// BulkTouchContact handles POST /api/v1/admin/clients/bulk-touch-contact
func (h *CrmAdminHandler) BulkTouchContact(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	var req BulkIDsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.IDs) == 0 {
		WriteJSONError(w, http.StatusBadRequest, "No IDs provided")
		return
	}

	affected, err := h.clientUC.BulkTouchContact(r.Context(), req.IDs, time.Now())
	if err != nil {
		writeAdminError(w, logger, err, "Client not found")
		return
	}

	logger.Info("Bulk contact touch applied", port.Fields{"affected": affected})
	RespondWithJSON(w, http.StatusOK, BulkResultResponse{Affected: affected})
}

// --- Amenities ---

func (h *CrmAdminHandler) CreateAmenity(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	var req AmenityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	amenity, err := h.amenityUC.Create(r.Context(), &domain.Amenity{Name: req.Name, Icon: req.Icon})
	if err != nil {
		writeAdminError(w, logger, err, "Amenity not found")
		return
	}
	RespondWithJSON(w, http.StatusCreated, toAmenityResponse(*amenity))
}

func (h *CrmAdminHandler) UpdateAmenity(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	amenityID, err := strconv.ParseInt(chi.URLParam(r, "amenityID"), 10, 64)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid amenity ID format")
		return
	}

	var req AmenityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	amenity, err := h.amenityUC.Update(r.Context(), &domain.Amenity{
		ID:   amenityID,
		Name: req.Name,
		Icon: req.Icon,
	})
	if err != nil {
		writeAdminError(w, logger, err, "Amenity not found")
		return
	}
	RespondWithJSON(w, http.StatusOK, toAmenityResponse(*amenity))
}

func (h *CrmAdminHandler) DeleteAmenity(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	amenityID, err := strconv.ParseInt(chi.URLParam(r, "amenityID"), 10, 64)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid amenity ID format")
		return
	}

	if err := h.amenityUC.Delete(r.Context(), amenityID); err != nil {
		writeAdminError(w, logger, err, "Amenity not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CrmAdminHandler) ListAmenities(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	amenities, err := h.amenityUC.List(r.Context())
	if err != nil {
		writeAdminError(w, logger, err, "Amenity not found")
		return
	}

	response := make([]AmenityResponse, len(amenities))
	for i, amenity := range amenities {
		response[i] = toAmenityResponse(amenity)
	}
	RespondWithJSON(w, http.StatusOK, response)
}
