package models

import "time"

// AuditFields holds standard audit columns shared by all tables.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	CreatedBy     string    `db:"created_by"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
	LastUpdatedBy string    `db:"last_updated_by"`
}

// Organization is the db-layer shape of a tenant row.
type Organization struct {
	OrganizationID     string `db:"organization_id"`
	Name               string `db:"name"`
	FunctionalCurrency string `db:"functional_currency"`
	AuditFields
}
