package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	erp "github.com/goliatone/go-erp-dashboard/components/erp"
)

// AddEmployeeInput carries a new employee.
type AddEmployeeInput struct {
	Employee erp.Employee  `json:"employee"`
	Result   *erp.Employee `json:"-"`
}

type employeeService interface {
	AddEmployee(ctx context.Context, e erp.Employee) (erp.Employee, error)
}

// AddEmployeeCommand wraps Service.AddEmployee.
type AddEmployeeCommand struct {
	service   employeeService
	telemetry Telemetry
}

// NewAddEmployeeCommand creates the command.
func NewAddEmployeeCommand(service employeeService, telemetry Telemetry) *AddEmployeeCommand {
	return &AddEmployeeCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[AddEmployeeInput] = (*AddEmployeeCommand)(nil)

// Execute stores the employee.
func (c *AddEmployeeCommand) Execute(ctx context.Context, msg AddEmployeeInput) error {
	if c.service == nil {
		return errors.New("add employee command requires service")
	}
	created, err := c.service.AddEmployee(ctx, msg.Employee)
	if err != nil {
		return err
	}
	if msg.Result != nil {
		*msg.Result = created
	}
	c.telemetry.Record(ctx, "erp.command.employee.add", map[string]any{
		"id":         created.ID,
		"department": created.Department,
	})
	return nil
}
