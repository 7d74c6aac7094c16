package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	erp "github.com/goliatone/go-erp-dashboard/components/erp"
)

// UpdateOrderStatusInput moves an order to a new status.
type UpdateOrderStatusInput struct {
	OrderID string     `json:"order_id"`
	Status  string     `json:"status"`
	Result  *erp.Order `json:"-"`
}

type orderService interface {
	UpdateOrderStatus(ctx context.Context, id, status string) (erp.Order, error)
}

// UpdateOrderStatusCommand wraps Service.UpdateOrderStatus.
type UpdateOrderStatusCommand struct {
	service   orderService
	telemetry Telemetry
}

// NewUpdateOrderStatusCommand creates the command.
func NewUpdateOrderStatusCommand(service orderService, telemetry Telemetry) *UpdateOrderStatusCommand {
	return &UpdateOrderStatusCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[UpdateOrderStatusInput] = (*UpdateOrderStatusCommand)(nil)

// Execute updates the order.
func (c *UpdateOrderStatusCommand) Execute(ctx context.Context, msg UpdateOrderStatusInput) error {
	if c.service == nil {
		return errors.New("order status command requires service")
	}
	if msg.OrderID == "" {
		return errors.New("order status command requires order id")
	}
	order, err := c.service.UpdateOrderStatus(ctx, msg.OrderID, msg.Status)
	if err != nil {
		return err
	}
	if msg.Result != nil {
		*msg.Result = order
	}
	c.telemetry.Record(ctx, "erp.command.order.status", map[string]any{
		"id":     order.ID,
		"status": order.Status,
	})
	return nil
}
