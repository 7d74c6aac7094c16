package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	erp "github.com/goliatone/go-erp-dashboard/components/erp"
)

// SaveProductInput creates or replaces a product.
type SaveProductInput struct {
	Product erp.Product  `json:"product"`
	Result  *erp.Product `json:"-"`
}

type productService interface {
	SaveProduct(ctx context.Context, p erp.Product) (erp.Product, error)
}

// SaveProductCommand wraps Service.SaveProduct.
type SaveProductCommand struct {
	service   productService
	telemetry Telemetry
}

// NewSaveProductCommand creates the command.
func NewSaveProductCommand(service productService, telemetry Telemetry) *SaveProductCommand {
	return &SaveProductCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SaveProductInput] = (*SaveProductCommand)(nil)

// Execute persists the product.
func (c *SaveProductCommand) Execute(ctx context.Context, msg SaveProductInput) error {
	if c.service == nil {
		return errors.New("save product command requires service")
	}
	saved, err := c.service.SaveProduct(ctx, msg.Product)
	if err != nil {
		return err
	}
	if msg.Result != nil {
		*msg.Result = saved
	}
	c.telemetry.Record(ctx, "erp.command.product.save", map[string]any{
		"id":     saved.ID,
		"status": saved.Status,
	})
	return nil
}
