package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryDirection indicates whether stock is issued or received.
type InventoryDirection string

const (
	InventoryIssue   InventoryDirection = "ISSUE"
	InventoryReceipt InventoryDirection = "RECEIPT"
)

// InventoryMovement is the payload handed to the inventory collaborator for
// each inventory-bearing line after the financial posting has committed.
type InventoryMovement struct {
	OrganizationID string             `json:"organizationID"`
	JournalID      string             `json:"journalID"`
	JournalLineID  string             `json:"journalLineID"`
	ProductID      string             `json:"productID"`
	WarehouseID    string             `json:"warehouseID"`
	Quantity       decimal.Decimal    `json:"quantity"`
	Direction      InventoryDirection `json:"direction"`
}

// ReconciliationItem records an inventory collaborator failure after the
// financial commit. The journal stays posted; the item is worked manually.
type ReconciliationItem struct {
	ItemID         string    `json:"itemID"`
	OrganizationID string    `json:"organizationID"`
	JournalID      string    `json:"journalID"`
	JournalLineID  string    `json:"journalLineID"`
	Reason         string    `json:"reason"`
	Resolved       bool      `json:"resolved"`
	RecordedAt     time.Time `json:"recordedAt"`
}
