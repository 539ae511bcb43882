package rest

import (
	"time"

	"github.com/RiqueAlvess/imobteste/internal/core/domain"
	"github.com/RiqueAlvess/imobteste/internal/presenter"
)

func toBadgeResponse(b presenter.Badge) BadgeResponse {
	return BadgeResponse{Label: b.Label, Color: b.Color}
}

func toPriceResponse(p domain.Price) PriceResponse {
	return PriceResponse{
		ID:            p.ID,
		Purpose:       string(p.Purpose),
		PurposeLabel:  domain.PurposeLabels[p.Purpose],
		Value:         p.Value,
		Formatted:     presenter.FormatPrice(p),
		MinNights:     p.MinNights,
		CleaningFee:   p.CleaningFee,
		GuestCapacity: p.GuestCapacity,
	}
}

func toPhotoResponse(p domain.Photo) PhotoResponse {
	return PhotoResponse{
		ID:        p.ID,
		ImagePath: p.ImagePath,
		Caption:   p.Caption,
		IsCover:   p.IsCover,
		SortOrder: p.SortOrder,
	}
}

func toAmenityResponse(a domain.Amenity) AmenityResponse {
	return AmenityResponse{ID: a.ID, Name: a.Name, Icon: a.Icon}
}

func toPropertyCardResponse(p *domain.Property, now time.Time) PropertyCardResponse {
	card := PropertyCardResponse{
		ID:           p.ID,
		Title:        p.Title,
		Type:         string(p.Type),
		TypeLabel:    domain.PropertyTypeLabels[p.Type],
		Street:       p.Street,
		Neighborhood: p.Neighborhood,
		City:         p.City,
		State:        p.State,
		Bedrooms:     p.Bedrooms,
		Bathrooms:    p.Bathrooms,
		GarageSpots:  p.GarageSpots,
		UsableArea:   p.UsableArea,
		PhotosCount:  len(p.Photos),
		Prices:       make([]PriceResponse, len(p.Prices)),
		PriceSummary: presenter.PriceSummary(p.Prices),
		IsNew:        p.RecentlyPublished(now),
		CreatedAt:    p.CreatedAt,
	}
	for i, price := range p.Prices {
		card.Prices[i] = toPriceResponse(price)
	}
	if cover := p.CoverPhoto(); cover != nil {
		photo := toPhotoResponse(*cover)
		card.CoverPhoto = &photo
	}
	return card
}

func toPropertyCardResponses(props []domain.Property, now time.Time) []PropertyCardResponse {
	cards := make([]PropertyCardResponse, len(props))
	for i := range props {
		cards[i] = toPropertyCardResponse(&props[i], now)
	}
	return cards
}

func toPropertyResponse(p *domain.Property) PropertyResponse {
	resp := PropertyResponse{
		ID:               p.ID,
		OwnerID:          p.OwnerID.String(),
		Title:            p.Title,
		Description:      p.Description,
		Type:             string(p.Type),
		TypeLabel:        domain.PropertyTypeLabels[p.Type],
		Status:           string(p.Status),
		Street:           p.Street,
		Neighborhood:     p.Neighborhood,
		City:             p.City,
		State:            p.State,
		PostalCode:       p.PostalCode,
		Latitude:         p.Latitude,
		Longitude:        p.Longitude,
		UsableArea:       p.UsableArea,
		TotalArea:        p.TotalArea,
		Bedrooms:         p.Bedrooms,
		Suites:           p.Suites,
		Bathrooms:        p.Bathrooms,
		GarageSpots:      p.GarageSpots,
		Floor:            p.Floor,
		YearBuilt:        p.YearBuilt,
		Furnishing:       string(p.Furnishing),
		PetFriendly:      p.PetFriendly,
		AcceptsFinancing: p.AcceptsFinancing,
		CondoFee:         p.CondoFee,
		Tax:              p.Tax,
		Amenities:        make([]AmenityResponse, len(p.Amenities)),
		Prices:           make([]PriceResponse, len(p.Prices)),
		Photos:           make([]PhotoResponse, len(p.Photos)),
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
	if p.CondoFee != nil {
		resp.CondoFeeDisplay = presenter.FormatCurrency(*p.CondoFee)
	}
	if p.Tax != nil {
		resp.TaxDisplay = presenter.FormatCurrency(*p.Tax)
	}
	for i, amenity := range p.Amenities {
		resp.Amenities[i] = toAmenityResponse(amenity)
	}
	for i, price := range p.Prices {
		resp.Prices[i] = toPriceResponse(price)
	}
	for i, photo := range p.Photos {
		resp.Photos[i] = toPhotoResponse(photo)
	}
	return resp
}

func toAdminPropertyRow(p *domain.Property) AdminPropertyRowResponse {
	return AdminPropertyRowResponse{
		ID:           p.ID,
		Title:        presenter.TruncateTitle(p.Title),
		TypeBadge:    toBadgeResponse(presenter.TypeBadge(p.Type)),
		StatusBadge:  toBadgeResponse(presenter.PropertyStatusBadge(p.Status)),
		PhotosBadge:  toBadgeResponse(presenter.PhotosBadge(len(p.Photos))),
		PriceSummary: presenter.PriceSummary(p.Prices),
		City:         p.City,
		CreatedAt:    p.CreatedAt,
	}
}

func toOwnerResponse(o *domain.Owner) OwnerResponse {
	return OwnerResponse{
		ID:            o.ID.String(),
		FullName:      o.FullName,
		Email:         o.Email,
		Phone:         o.Phone,
		PropertyCount: o.PropertyCount,
		CreatedAt:     o.CreatedAt,
	}
}

func toClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ID:                  c.ID,
		FullName:            c.FullName,
		Email:               c.Email,
		Phone:               c.Phone,
		Status:              string(c.Status),
		Origin:              string(c.Origin),
		InterestPurpose:     c.InterestPurpose,
		MaxBudget:           c.MaxBudget,
		Notes:               c.Notes,
		InterestPropertyIDs: c.InterestPropertyIDs,
		LastContactAt:       c.LastContactAt,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

func toAdminClientRow(c *domain.Client, now time.Time) AdminClientRowResponse {
	origin := presenter.OriginIcon(c.Origin)
	return AdminClientRowResponse{
		ID:               c.ID,
		FullName:         c.FullName,
		Phone:            c.Phone,
		StatusBadge:      toBadgeResponse(presenter.ClientStatusBadge(c.Status)),
		OriginIconClass:  origin.Class,
		OriginLabel:      origin.Label,
		BudgetDisplay:    presenter.FormatBudget(c.MaxBudget),
		LastContactBadge: toBadgeResponse(presenter.LastContactBadge(now, c.LastContactAt)),
		InterestCount:    c.InterestCount(),
	}
}
