package commands

import (
	"errors"
	"fmt"

	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a new catering request.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(order.Draft{Details: details, Lines: lines})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(orderStore)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	draft order.Draft

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand checks the line list: at least one line, every quantity
// positive. Field-level checks that need the catalog are left to the store.
func NewCreateOrderCommand(draft order.Draft) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDraft(draft); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Draft returns a copy of the submitted draft.
func (c CreateOrderCommand) Draft() order.Draft {
	d := c.draft
	d.Lines = append([]order.LineDraft(nil), c.draft.Lines...)
	return d
}

func (c *CreateOrderCommand) setDraft(draft order.Draft) error {
	if len(draft.Lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}

	var problems []error
	for n, line := range draft.Lines {
		if line.Quantity <= 0 {
			problems = append(problems, errs.NewValueIsOutOfRangeError(
				fmt.Sprintf("lines[%d].quantity", n), line.Quantity, 1, "unbounded"))
		}
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	c.draft = draft
	c.draft.Lines = append([]order.LineDraft(nil), draft.Lines...)
	return nil
}
