package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/RiqueAlvess/imobteste/internal/contextkeys"
	"github.com/RiqueAlvess/imobteste/internal/core/domain"
	"github.com/RiqueAlvess/imobteste/internal/core/port"
	"github.com/RiqueAlvess/imobteste/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type PropertyAdminHandler struct {
	propertyUC usecases_port.PropertyAdminUseCase
}

func NewPropertyAdminHandler(propertyUC usecases_port.PropertyAdminUseCase) *PropertyAdminHandler {
	return &PropertyAdminHandler{propertyUC: propertyUC}
}

func (h *PropertyAdminHandler) writeUseCaseError(w http.ResponseWriter, logger port.LoggerPort, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		logger.Warn("Invalid property payload", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid property payload")
	case errors.Is(err, domain.ErrNotFound):
		WriteJSONError(w, http.StatusNotFound, "Property not found")
	default:
		logger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal error")
	}
}

func (h *PropertyAdminHandler) decodeProperty(r *http.Request) (*domain.Property, error) {
	var req PropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, err
	}
	ownerID, err := uuid.Parse(req.OwnerID)
	if err != nil {
		return nil, err
	}
	property := &domain.Property{
		OwnerID:          ownerID,
		Title:            req.Title,
		Description:      req.Description,
		Type:             domain.PropertyType(req.Type),
		Status:           domain.PropertyStatus(req.Status),
		Street:           req.Street,
		Neighborhood:     req.Neighborhood,
		City:             req.City,
		State:            req.State,
		PostalCode:       req.PostalCode,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		UsableArea:       req.UsableArea,
		TotalArea:        req.TotalArea,
		Bedrooms:         req.Bedrooms,
		Suites:           req.Suites,
		Bathrooms:        req.Bathrooms,
		GarageSpots:      req.GarageSpots,
		Floor:            req.Floor,
		YearBuilt:        req.YearBuilt,
		Furnishing:       domain.Furnishing(req.Furnishing),
		PetFriendly:      req.PetFriendly,
		AcceptsFinancing: req.AcceptsFinancing,
		CondoFee:         req.CondoFee,
		Tax:              req.Tax,
	}
	for _, amenityID := range req.AmenityIDs {
		property.Amenities = append(property.Amenities, domain.Amenity{ID: amenityID})
	}
	for _, price := range req.Prices {
		property.Prices = append(property.Prices, domain.Price{
			Purpose:       domain.Purpose(price.Purpose),
			Value:         price.Value,
			MinNights:     price.MinNights,
			CleaningFee:   price.CleaningFee,
			GuestCapacity: price.GuestCapacity,
		})
	}
	for _, photo := range req.Photos {
		property.Photos = append(property.Photos, domain.Photo{
			ImagePath: photo.ImagePath,
			Caption:   photo.Caption,
			IsCover:   photo.IsCover,
			SortOrder: photo.SortOrder,
		})
	}
	return property, nil
}

// CreateProperty handles POST /api/v1/admin/properties
func (h *PropertyAdminHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	property, err := h.decodeProperty(r)
	if err != nil {
		logger.Warn("Invalid request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.propertyUC.Create(r.Context(), property)
	if err != nil {
		h.writeUseCaseError(w, logger, err)
		return
	}

	logger.Info("Property created", port.Fields{"property_id": created.ID})
	RespondWithJSON(w, http.StatusCreated, toPropertyResponse(created))
}

// UpdateProperty handles PUT /api/v1/admin/properties/{propertyID}
func (h *PropertyAdminHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	propertyID, err := strconv.ParseInt(chi.URLParam(r, "propertyID"), 10, 64)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property ID format")
		return
	}

	property, err := h.decodeProperty(r)
	if err != nil {
		logger.Warn("Invalid request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	property.ID = propertyID

	updated, err := h.propertyUC.Update(r.Context(), property)
	if err != nil {
		h.writeUseCaseError(w, logger, err)
		return
	}

	logger.Info("Property updated", port.Fields{"property_id": propertyID})
	RespondWithJSON(w, http.StatusOK, toPropertyResponse(updated))
}

// DeleteProperty handles DELETE /api/v1/admin/properties/{propertyID}
func (h *PropertyAdminHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	propertyID, err := strconv.ParseInt(chi.URLParam(r, "propertyID"), 10, 64)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property ID format")
		return
	}

	if err := h.propertyUC.Delete(r.Context(), propertyID); err != nil {
		h.writeUseCaseError(w, logger, err)
		return
	}

	logger.Info("Property deleted", port.Fields{"property_id": propertyID})
	w.WriteHeader(http.StatusNoContent)
}

// GetProperty handles GET /api/v1/admin/properties/{propertyID}
func (h *PropertyAdminHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	propertyID, err := strconv.ParseInt(chi.URLParam(r, "propertyID"), 10, 64)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property ID format")
		return
	}

	property, err := h.propertyUC.Get(r.Context(), propertyID)
	if err != nil {
		h.writeUseCaseError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toPropertyResponse(property))
}

// ListProperties handles GET /api/v1/admin/properties
func (h *PropertyAdminHandler) ListProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	limit, offset := GetLimitOffset(r)

	properties, total, err := h.propertyUC.List(r.Context(), limit, offset)
	if err != nil {
		h.writeUseCaseError(w, logger, err)
		return
	}

	response := AdminPropertyListResponse{
		Data:  make([]AdminPropertyRowResponse, len(properties)),
		Total: total,
	}
	for i := range properties {
		response.Data[i] = toAdminPropertyRow(&properties[i])
	}

	RespondWithJSON(w, http.StatusOK, response)
}

// BulkSetStatus handles POST /api/v1/admin/properties/bulk-status
func (h *PropertyAdminHandler) BulkSetStatus(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	var req BulkStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Invalid request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.IDs) == 0 {
		WriteJSONError(w, http.StatusBadRequest, "No IDs provided")
		return
	}

	affected, err := h.propertyUC.BulkSetStatus(r.Context(), req.IDs, domain.PropertyStatus(req.Status))
	if err != nil {
		h.writeUseCaseError(w, logger, err)
		return
	}

	logger.Info("Bulk property status applied", port.Fields{
		"status":   req.Status,
		"affected": affected,
	})
	RespondWithJSON(w, http.StatusOK, BulkResultResponse{Affected: affected})
}

// SavePrice handles PUT /api/v1/admin/properties/{propertyID}/prices
func (h *PropertyAdminHandler) SavePrice(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	propertyID, err := strconv.ParseInt(chi.URLParam(r, "propertyID"), 10, 64)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property ID format")
		return
	}

	var req PriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Invalid request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	price, err := h.propertyUC.SavePrice(r.Context(), &domain.Price{
		PropertyID:    propertyID,
		Purpose:       domain.Purpose(req.Purpose),
		Value:         req.Value,
		MinNights:     req.MinNights,
		CleaningFee:   req.CleaningFee,
		GuestCapacity: req.GuestCapacity,
	})
	if err != nil {
		h.writeUseCaseError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toPriceResponse(*price))
}

// DeletePrice handles DELETE /api/v1/admin/prices/{priceID}
func (h *PropertyAdminHandler) DeletePrice(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	priceID, err := strconv.ParseInt(chi.URLParam(r, "priceID"), 10, 64)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid price ID format")
		return
	}

	if err := h.propertyUC.DeletePrice(r.Context(), priceID); err != nil {
		h.writeUseCaseError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SavePhoto handles POST /api/v1/admin/properties/{propertyID}/photos
func (h *PropertyAdminHandler) SavePhoto(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	propertyID, err := strconv.ParseInt(chi.URLParam(r, "propertyID"), 10, 64)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property ID format")
		return
	}

	var req PhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Invalid request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	photo, err := h.propertyUC.SavePhoto(r.Context(), &domain.Photo{
		PropertyID: propertyID,
		ImagePath:  req.ImagePath,
		Caption:    req.Caption,
		IsCover:    req.IsCover,
		SortOrder:  req.SortOrder,
	})
	if err != nil {
		h.writeUseCaseError(w, logger, err)
		return
	}

	logger.Info("Photo saved", port.Fields{
		"property_id": propertyID,
		"photo_id":    photo.ID,
		"is_cover":    photo.IsCover,
	})
	RespondWithJSON(w, http.StatusCreated, toPhotoResponse(*photo))
}

// DeletePhoto handles DELETE /api/v1/admin/photos/{photoID}
func (h *PropertyAdminHandler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	photoID, err := strconv.ParseInt(chi.URLParam(r, "photoID"), 10, 64)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid photo ID format")
		return
	}

	if err := h.propertyUC.DeletePhoto(r.Context(), photoID); err != nil {
		h.writeUseCaseError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
