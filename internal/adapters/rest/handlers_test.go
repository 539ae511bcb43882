package rest

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/RiqueAlvess/imobteste/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRegisterLead struct {
	submission domain.LeadSubmission
}

func (f *fakeRegisterLead) Execute(_ context.Context, submission domain.LeadSubmission) (*domain.Client, error) {
	f.submission = submission
	return &domain.Client{ID: 42, Status: domain.ClientColdLead}, nil
}

func TestSubmitLead(t *testing.T) {
	registerLead := &fakeRegisterLead{}
	handler := NewPublicHandler(nil, nil, nil, registerLead)

	body := `{"full_name": "Maria Souza", "phone": "41999990000", "origin": "whatsapp"}`
	r := httptest.NewRequest("POST", "/api/v1/leads", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.SubmitLead(w, r)

	require.Equal(t, 201, w.Code)
	assert.JSONEq(t, `{"id": 42, "status": "lead_frio"}`, w.Body.String())

	// The submitted origin reaches the use case as the typed origin
	assert.Equal(t, domain.OriginWhatsApp, registerLead.submission.Origin)
	assert.Equal(t, "Maria Souza", registerLead.submission.FullName)
}

func TestSubmitLeadRejectsInvalidPayload(t *testing.T) {
	handler := NewPublicHandler(nil, nil, nil, &fakeRegisterLead{})

	// Fails JSON schema validation (phone missing), use case never runs
	r := httptest.NewRequest("POST", "/api/v1/leads", strings.NewReader(`{"full_name": "Maria Souza"}`))
	w := httptest.NewRecorder()
	handler.SubmitLead(w, r)

	assert.Equal(t, 400, w.Code)
}

func TestDecodePropertyNestedRows(t *testing.T) {
	body := `{
		"owner_id": "7a6a4a8e-2a3b-4c4d-9e8f-1b2c3d4e5f6a",
		"title": "Casa com piscina",
		"type": "casa",
		"status": "ativo",
		"city": "Curitiba",
		"amenity_ids": [3, 5],
		"prices": [
			{"purpose": "venda", "value": "450000.00"},
			{"purpose": "temporada", "value": "350.00", "min_nights": 2}
		],
		"photos": [
			{"image_path": "casa/frente.jpg", "is_cover": true},
			{"image_path": "casa/quintal.jpg", "sort_order": 1}
		]
	}`
	handler := &PropertyAdminHandler{}
	r := httptest.NewRequest("POST", "/api/v1/admin/properties", strings.NewReader(body))

	property, err := handler.decodeProperty(r)

	require.NoError(t, err)
	assert.Equal(t, []domain.Amenity{{ID: 3}, {ID: 5}}, property.Amenities)

	require.Len(t, property.Prices, 2)
	assert.Equal(t, domain.PurposeSale, property.Prices[0].Purpose)
	assert.Equal(t, "450000.00", property.Prices[0].Value)
	assert.Equal(t, 2, *property.Prices[1].MinNights)

	require.Len(t, property.Photos, 2)
	assert.True(t, property.Photos[0].IsCover)
	assert.Equal(t, "casa/quintal.jpg", property.Photos[1].ImagePath)
	assert.Equal(t, 1, property.Photos[1].SortOrder)
}
