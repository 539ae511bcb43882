// Package presenter derives display strings and badge colors from entity
// state. Everything here is pure: fixed lookup tables in, strings out.
package presenter

import (
	"fmt"
	"strconv"
	"time"

	"github.com/RiqueAlvess/imobteste/internal/core/domain"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Badge is a label with the color the admin UI paints it in.
type Badge struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// Icon is a Font Awesome class with its display label.
type Icon struct {
	Class string `json:"class"`
	Label string `json:"label"`
}

const (
	neutralGray  = "#6c757d"
	mutedGray    = "#7A7A7A"
	invalidValue = "Valor inválido"
	missingValue = "-"
)

var propertyStatusColors = map[domain.PropertyStatus]string{
	domain.StatusActive:   "#28a745",
	domain.StatusSold:     "#dc3545",
	domain.StatusRented:   "#ffc107",
	domain.StatusReserved: "#17a2b8",
	domain.StatusInactive: "#6c757d",
}

// PropertyStatusBadge is total: unknown stored values get the neutral
// color and their raw value as label.
func PropertyStatusBadge(s domain.PropertyStatus) Badge {
	color, ok := propertyStatusColors[s]
	if !ok {
		color = neutralGray
	}
	label, ok := domain.PropertyStatusLabels[s]
	if !ok {
		label = string(s)
	}
	return Badge{Label: label, Color: color}
}

var clientStatusColors = map[domain.ClientStatus]string{
	domain.ClientColdLead:   "#7A7A7A",
	domain.ClientWarmLead:   "#C8A866",
	domain.ClientHotLead:    "#D4AF37",
	domain.ClientActive:     "#1E3A5F",
	domain.ClientLost:       "#dc3545",
	domain.ClientClosedDeal: "#28a745",
}

func ClientStatusBadge(s domain.ClientStatus) Badge {
	color, ok := clientStatusColors[s]
	if !ok {
		color = mutedGray
	}
	label, ok := domain.ClientStatusLabels[s]
	if !ok {
		label = string(s)
	}
	return Badge{Label: label, Color: color}
}

var originIcons = map[domain.ContactOrigin]string{
	domain.OriginSite:      "fas fa-globe",
	domain.OriginWhatsApp:  "fas fa-phone",
	domain.OriginPhone:     "fas fa-phone",
	domain.OriginEmail:     "fas fa-envelope",
	domain.OriginReferral:  "fas fa-user-friends",
	domain.OriginFacebook:  "fas fa-share-alt",
	domain.OriginInstagram: "fas fa-share-alt",
	domain.OriginSign:      "fas fa-sign",
	domain.OriginOther:     "fas fa-question",
}

func OriginIcon(o domain.ContactOrigin) Icon {
	class, ok := originIcons[o]
	if !ok {
		class = "fas fa-question"
	}
	label, ok := domain.ContactOriginLabels[o]
	if !ok {
		label = string(o)
	}
	return Icon{Class: class, Label: label}
}

func TypeBadge(t domain.PropertyType) Badge {
	label, ok := domain.PropertyTypeLabels[t]
	if !ok {
		label = string(t)
	}
	return Badge{Label: label, Color: "#1E3A5F"}
}

var currencyPrinter = message.NewPrinter(language.BrazilianPortuguese)

// FormatCurrency renders a stored decimal as a pt-BR currency string with
// no fraction digits. A value that does not parse renders as the explicit
// invalid placeholder instead of failing.
func FormatCurrency(raw string) string {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return invalidValue
	}
	return currencyPrinter.Sprintf("R$ %v", number.Decimal(v, number.MaxFractionDigits(0)))
}

// FormatPrice renders one price row; seasonal prices get the per-day
// suffix.
func FormatPrice(p domain.Price) string {
	formatted := FormatCurrency(p.Value)
	if formatted == invalidValue {
		return formatted
	}
	if p.Purpose == domain.PurposeSeasonal {
		return formatted + "/dia"
	}
	return formatted
}

// FormatBudget renders the client's max budget, or a dash when unset.
func FormatBudget(raw *string) string {
	if raw == nil {
		return missingValue
	}
	return FormatCurrency(*raw)
}

// PriceSummary joins up to two formatted prices; more than two appends an
// ellipsis.
func PriceSummary(prices []domain.Price) string {
	if len(prices) == 0 {
		return missingValue
	}
	summary := FormatPrice(prices[0])
	if len(prices) > 1 {
		summary += " | " + FormatPrice(prices[1])
	}
	if len(prices) > 2 {
		summary += "..."
	}
	return summary
}

// LastContactBadge buckets the days since last contact. Day counts use
// calendar dates, not elapsed hours.
func LastContactBadge(now time.Time, last *time.Time) Badge {
	if last == nil {
		return Badge{Label: "Nunca", Color: mutedGray}
	}
	y1, m1, d1 := now.Date()
	y2, m2, d2 := last.Date()
	nowDate := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	lastDate := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	days := int(nowDate.Sub(lastDate).Hours() / 24)
	switch {
	case days <= 0:
		return Badge{Label: "Hoje", Color: "#28a745"}
	case days == 1:
		return Badge{Label: "Ontem", Color: "#C8A866"}
	case days <= 7:
		return Badge{Label: fmt.Sprintf("%d dias", days), Color: "#ffc107"}
	default:
		return Badge{Label: fmt.Sprintf("%d dias", days), Color: "#dc3545"}
	}
}

const titleLimit = 50

// TruncateTitle cuts titles longer than 50 characters for list views.
func TruncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= titleLimit {
		return title
	}
	return string(runes[:titleLimit]) + "..."
}

// PhotosBadge summarizes a property's photo count for the admin list.
func PhotosBadge(count int) Badge {
	if count == 0 {
		return Badge{Label: "Sem fotos", Color: "#dc3545"}
	}
	return Badge{Label: strconv.Itoa(count), Color: "#D4AF37"}
}
