package commands

import (
	"errors"

	"ordertrack/internal/pkg/guard"
)

var ErrEnsureDemoOrderCommandIsNotConstructed = errors.New(
	"EnsureDemoOrderCommand must be created via NewEnsureDemoOrderCommand constructor",
)

// EnsureDemoOrderCommand represents a request to make sure the demo
// customer's order exists, creating it in the preparing stage when it does
// not. Used at startup and by the progression job.
type EnsureDemoOrderCommand struct { //nolint:recvcheck //using for validation
	customerName string

	guard guard.ConstructorGuard
}

// NewEnsureDemoOrderCommand creates a command to ensure the demo order for
// the named customer exists.
func NewEnsureDemoOrderCommand(customerName string) (EnsureDemoOrderCommand, error) {
	demoCommand := EnsureDemoOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := demoCommand.setCustomerName(customerName); err != nil {
		return EnsureDemoOrderCommand{}, err
	}

	return demoCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c EnsureDemoOrderCommand) Validate() error {
	return c.guard.Validate(ErrEnsureDemoOrderCommandIsNotConstructed)
}

// CustomerName returns the demo customer's name.
func (c EnsureDemoOrderCommand) CustomerName() string {
	return c.customerName
}

func (c *EnsureDemoOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerName = customerName
	return nil
}
