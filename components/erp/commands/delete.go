package commands

import (
	"context"
	"errors"
	"fmt"

	gocommand "github.com/goliatone/go-command"
	erp "github.com/goliatone/go-erp-dashboard/components/erp"
)

// DeleteRecordInput identifies a record to remove.
type DeleteRecordInput struct {
	Entity string `json:"entity"`
	ID     string `json:"id"`
}

type deleteService interface {
	DeleteCustomer(ctx context.Context, id string) error
	DeleteProduct(ctx context.Context, id string) error
}

// DeleteRecordCommand removes customers or products.
type DeleteRecordCommand struct {
	service   deleteService
	telemetry Telemetry
}

// NewDeleteRecordCommand creates the command.
func NewDeleteRecordCommand(service deleteService, telemetry Telemetry) *DeleteRecordCommand {
	return &DeleteRecordCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[DeleteRecordInput] = (*DeleteRecordCommand)(nil)

// Execute dispatches to the entity's delete operation.
func (c *DeleteRecordCommand) Execute(ctx context.Context, msg DeleteRecordInput) error {
	if c.service == nil {
		return errors.New("delete command requires service")
	}
	if msg.ID == "" {
		return errors.New("delete command requires record id")
	}
	var err error
	switch msg.Entity {
	case erp.EntityCustomers:
		err = c.service.DeleteCustomer(ctx, msg.ID)
	case erp.EntityProducts:
		err = c.service.DeleteProduct(ctx, msg.ID)
	default:
		err = fmt.Errorf("%w: %s cannot be deleted", erp.ErrUnknownEntity, msg.Entity)
	}
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, "erp.command.record.delete", map[string]any{
		"entity": msg.Entity,
		"id":     msg.ID,
	})
	return nil
}
