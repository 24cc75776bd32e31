package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // Actor ID reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // Actor ID reference
}

// Organization is the tenant boundary. Accounts, periods, journal types and
// journals are all scoped to exactly one organization.
type Organization struct {
	OrganizationID     string `json:"organizationID"`
	Name               string `json:"name"`
	FunctionalCurrency string `json:"functionalCurrency"` // Currency all ledger entries are stored in
	AuditFields
}
