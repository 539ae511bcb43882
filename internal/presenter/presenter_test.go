package presenter

import (
	"strings"
	"testing"
	"time"

	"github.com/RiqueAlvess/imobteste/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func TestPropertyStatusBadgeTotality(t *testing.T) {
	cases := map[domain.PropertyStatus]string{
		domain.StatusActive:   "#28a745",
		domain.StatusSold:     "#dc3545",
		domain.StatusRented:   "#ffc107",
		domain.StatusReserved: "#17a2b8",
		domain.StatusInactive: "#6c757d",
	}
	for status, color := range cases {
		badge := PropertyStatusBadge(status)
		assert.Equal(t, color, badge.Color)
		assert.NotEmpty(t, badge.Label)
	}

	// Unknown stored value renders with the neutral fallback
	badge := PropertyStatusBadge("demolido")
	assert.Equal(t, "#6c757d", badge.Color)
	assert.Equal(t, "demolido", badge.Label)
}

func TestClientStatusBadgeTotality(t *testing.T) {
	statuses := []domain.ClientStatus{
		domain.ClientColdLead, domain.ClientWarmLead, domain.ClientHotLead,
		domain.ClientActive, domain.ClientLost, domain.ClientClosedDeal,
	}
	seen := make(map[string]bool)
	for _, status := range statuses {
		badge := ClientStatusBadge(status)
		assert.NotEmpty(t, badge.Color)
		assert.NotEmpty(t, badge.Label)
		seen[badge.Color] = true
	}
	assert.Len(t, seen, 6, "each client status should have its own color")

	badge := ClientStatusBadge("desconhecido")
	assert.Equal(t, "#7A7A7A", badge.Color)
}

func TestOriginIconTotality(t *testing.T) {
	origins := []domain.ContactOrigin{
		domain.OriginSite, domain.OriginWhatsApp, domain.OriginPhone,
		domain.OriginEmail, domain.OriginReferral, domain.OriginFacebook,
		domain.OriginInstagram, domain.OriginSign, domain.OriginOther,
	}
	for _, origin := range origins {
		icon := OriginIcon(origin)
		assert.True(t, strings.HasPrefix(icon.Class, "fas fa-"))
		assert.NotEmpty(t, icon.Label)
	}

	icon := OriginIcon("pombo-correio")
	assert.Equal(t, "fas fa-question", icon.Class)
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "R$ 250.000", FormatCurrency("250000.00"))
	assert.Equal(t, "R$ 1.500", FormatCurrency("1500"))
	assert.Equal(t, "R$ 0", FormatCurrency("0"))

	// Malformed stored values never raise, they render the placeholder
	assert.Equal(t, "Valor inválido", FormatCurrency("abc"))
	assert.Equal(t, "Valor inválido", FormatCurrency(""))
	assert.Equal(t, "Valor inválido", FormatCurrency("12,50"))
}

func TestFormatPrice(t *testing.T) {
	sale := domain.Price{Purpose: domain.PurposeSale, Value: "300000"}
	assert.Equal(t, "R$ 300.000", FormatPrice(sale))

	seasonal := domain.Price{Purpose: domain.PurposeSeasonal, Value: "450"}
	assert.Equal(t, "R$ 450/dia", FormatPrice(seasonal))

	broken := domain.Price{Purpose: domain.PurposeSeasonal, Value: "x"}
	assert.Equal(t, "Valor inválido", FormatPrice(broken))
}

func TestFormatBudget(t *testing.T) {
	assert.Equal(t, "-", FormatBudget(nil))

	budget := "800000"
	assert.Equal(t, "R$ 800.000", FormatBudget(&budget))
}

func TestPriceSummary(t *testing.T) {
	assert.Equal(t, "-", PriceSummary(nil))

	one := []domain.Price{{Purpose: domain.PurposeSale, Value: "200000"}}
	assert.Equal(t, "R$ 200.000", PriceSummary(one))

	two := append(one, domain.Price{Purpose: domain.PurposeRent, Value: "1500"})
	assert.Equal(t, "R$ 200.000 | R$ 1.500", PriceSummary(two))

	three := append(two, domain.Price{Purpose: domain.PurposeSeasonal, Value: "300"})
	assert.Equal(t, "R$ 200.000 | R$ 1.500...", PriceSummary(three))
}

func TestLastContactBadge(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	badge := LastContactBadge(now, nil)
	assert.Equal(t, "Nunca", badge.Label)

	today := time.Date(2025, 6, 15, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, "Hoje", LastContactBadge(now, &today).Label)

	// Calendar yesterday counts as Ontem even if under 24h elapsed
	yesterday := time.Date(2025, 6, 14, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, "Ontem", LastContactBadge(now, &yesterday).Label)

	fiveDays := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	badge = LastContactBadge(now, &fiveDays)
	assert.Equal(t, "5 dias", badge.Label)
	assert.Equal(t, "#ffc107", badge.Color)

	tenDays := time.Date(2025, 6, 5, 12, 0, 0, 0, time.UTC)
	badge = LastContactBadge(now, &tenDays)
	assert.Equal(t, "10 dias", badge.Label)
	assert.Equal(t, "#dc3545", badge.Color)
}

func TestTruncateTitle(t *testing.T) {
	short := "Casa com piscina"
	assert.Equal(t, short, TruncateTitle(short))

	exactly50 := strings.Repeat("a", 50)
	assert.Equal(t, exactly50, TruncateTitle(exactly50))

	long := strings.Repeat("a", 60)
	assert.Equal(t, strings.Repeat("a", 50)+"...", TruncateTitle(long))

	// Rune-aware: accented titles truncate on characters, not bytes
	accented := strings.Repeat("ã", 55)
	assert.Equal(t, strings.Repeat("ã", 50)+"...", TruncateTitle(accented))
}

func TestPhotosBadge(t *testing.T) {
	badge := PhotosBadge(0)
	assert.Equal(t, "Sem fotos", badge.Label)
	assert.Equal(t, "#dc3545", badge.Color)

	badge = PhotosBadge(7)
	assert.Equal(t, "7", badge.Label)
	assert.Equal(t, "#D4AF37", badge.Color)
}
