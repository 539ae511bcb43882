package constants

const (
	CrmEventsExchange = "crm_events"
)

// Routing keys
const (
	RoutingKeyLeadRegistered = "crm.lead.registered"
	RoutingKeyBulkAction     = "crm.bulk.applied"
)
