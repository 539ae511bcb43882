package domain

// LeadSubmission is the public lead-form payload after JSON Schema
// validation. The resulting Client always starts as a cold lead.
type LeadSubmission struct {
	FullName        string
	Email           string
	Phone           string
	InterestPurpose string
	MaxBudget       *string
	Notes           string
	// Property the visitor was looking at when submitting, if any.
	PropertyID *int64
	Origin     ContactOrigin
}
