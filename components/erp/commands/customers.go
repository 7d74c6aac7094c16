package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	erp "github.com/goliatone/go-erp-dashboard/components/erp"
)

// AddCustomerInput carries a new customer. Result, when set, receives the
// stored record including its generated id.
type AddCustomerInput struct {
	Customer erp.Customer  `json:"customer"`
	Result   *erp.Customer `json:"-"`
}

type customerService interface {
	AddCustomer(ctx context.Context, c erp.Customer) (erp.Customer, error)
}

// AddCustomerCommand wraps Service.AddCustomer.
type AddCustomerCommand struct {
	service   customerService
	telemetry Telemetry
}

// NewAddCustomerCommand creates the command.
func NewAddCustomerCommand(service customerService, telemetry Telemetry) *AddCustomerCommand {
	return &AddCustomerCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[AddCustomerInput] = (*AddCustomerCommand)(nil)

// Execute stores the customer.
func (c *AddCustomerCommand) Execute(ctx context.Context, msg AddCustomerInput) error {
	if c.service == nil {
		return errors.New("add customer command requires service")
	}
	created, err := c.service.AddCustomer(ctx, msg.Customer)
	if err != nil {
		return err
	}
	if msg.Result != nil {
		*msg.Result = created
	}
	c.telemetry.Record(ctx, "erp.command.customer.add", map[string]any{
		"id": created.ID,
	})
	return nil
}
