package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateKeyFromPath(t *testing.T) {
	assert.Equal(t, "LeadRegisteredEvent/1.0.0",
		generateKeyFromPath("schemas/events/lead-registered/v1.json"))
	assert.Equal(t, "BulkActionAppliedEvent/1.0.0",
		generateKeyFromPath("schemas/events/bulk-action-applied/v1.json"))
	assert.Equal(t, "LeadSubmissionRequest/1.0.0",
		generateKeyFromPath("schemas/requests/lead-submission/v1.json"))
	assert.Equal(t, "", generateKeyFromPath("schemas/unexpected.json"))
}

func TestValidateLeadSubmission(t *testing.T) {
	valid := []byte(`{
		"full_name": "Maria Souza",
		"phone": "41999990000",
		"interest_purpose": "venda",
		"max_budget": "350000.00",
		"property_id": 12
	}`)
	assert.NoError(t, ValidateLeadSubmission(valid))

	minimal := []byte(`{"full_name": "Ana Lima", "phone": "41988887777"}`)
	assert.NoError(t, ValidateLeadSubmission(minimal))
}

func TestValidateLeadSubmissionRejections(t *testing.T) {
	cases := map[string][]byte{
		"missing phone":     []byte(`{"full_name": "Maria Souza"}`),
		"short name":        []byte(`{"full_name": "ab", "phone": "41999990000"}`),
		"bad purpose":       []byte(`{"full_name": "Maria Souza", "phone": "41999990000", "interest_purpose": "compra"}`),
		"bad budget format": []byte(`{"full_name": "Maria Souza", "phone": "41999990000", "max_budget": "12,50"}`),
		"unknown field":     []byte(`{"full_name": "Maria Souza", "phone": "41999990000", "extra": true}`),
		"zero property id":  []byte(`{"full_name": "Maria Souza", "phone": "41999990000", "property_id": 0}`),
		"not json":          []byte(`{"full_name":`),
	}
	for name, body := range cases {
		assert.Error(t, ValidateLeadSubmission(body), name)
	}
}

func TestValidateEvent(t *testing.T) {
	lead := []byte(`{
		"client_id": 42,
		"full_name": "Maria Souza",
		"phone": "41999990000",
		"status": "lead_frio",
		"origin": "site",
		"registered_at": "2026-09-01T12:00:00Z",
		"interest_property_ids": [7]
	}`)
	assert.NoError(t, ValidateEvent("LeadRegisteredEvent", "1.0.0", lead))

	bulk := []byte(`{"action": "status_ativo", "affected": 3, "applied_at": "2026-09-01T12:00:00Z"}`)
	assert.NoError(t, ValidateEvent("BulkActionAppliedEvent", "1.0.0", bulk))

	assert.Error(t, ValidateEvent("LeadRegisteredEvent", "1.0.0", []byte(`{"client_id": 42}`)))
	assert.Error(t, ValidateEvent("NoSuchEvent", "1.0.0", []byte(`{}`)))
}
