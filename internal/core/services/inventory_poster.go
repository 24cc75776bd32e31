package services

import (
	"context"
	"log/slog"

	"github.com/openbooks/ledger_engine/internal/core/domain"
	portssvc "github.com/openbooks/ledger_engine/internal/core/ports/services"
	"github.com/openbooks/ledger_engine/internal/middleware"
)

// loggingInventoryPoster is the default inventory collaborator: it records
// the movements in the log and always succeeds. Deployments with a real
// inventory system substitute their own InventoryPoster in the container.
type loggingInventoryPoster struct{}

// NewLoggingInventoryPoster creates the default inventory collaborator.
func NewLoggingInventoryPoster() portssvc.InventoryPoster {
	return &loggingInventoryPoster{}
}

var _ portssvc.InventoryPoster = (*loggingInventoryPoster)(nil)

func (p *loggingInventoryPoster) PostMovements(ctx context.Context, movements []domain.InventoryMovement) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	for _, movement := range movements {
		logger.Info("Inventory movement",
			slog.String("journal_id", movement.JournalID),
			slog.String("product_id", movement.ProductID),
			slog.String("warehouse_id", movement.WarehouseID),
			slog.String("direction", string(movement.Direction)),
			slog.String("quantity", movement.Quantity.String()))
	}
	return nil
}
