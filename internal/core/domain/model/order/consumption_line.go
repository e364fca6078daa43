package order

import (
	"errors"
	"strings"

	"catering/internal/pkg/errs"
)

// ConsumptionLine is one ordered consumption item. The display name is stored with
// the line so it still renders if the catalog entry is later removed.
type ConsumptionLine struct {
	catalogItemID string
	displayName   string
	unit          string
	quantity      int
}

// NewConsumptionLine validates and builds a line. catalogItemID may be empty for
// free-form lines; displayName and unit are required and quantity must be positive.
func NewConsumptionLine(catalogItemID, displayName, unit string, quantity int) (ConsumptionLine, error) {
	line := ConsumptionLine{
		catalogItemID: strings.TrimSpace(catalogItemID),
		displayName:   strings.TrimSpace(displayName),
		unit:          strings.TrimSpace(unit),
		quantity:      quantity,
	}

	var problems []error
	if line.displayName == "" {
		problems = append(problems, errs.NewValueIsRequiredError("line.displayName"))
	}
	if line.unit == "" {
		problems = append(problems, errs.NewValueIsRequiredError("line.unit"))
	}
	if quantity <= 0 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("line.quantity", quantity, 1, "unbounded"))
	}
	if err := errors.Join(problems...); err != nil {
		return ConsumptionLine{}, err
	}

	return line, nil
}

// CatalogItemID is the catalog reference, empty for free-form lines.
func (l ConsumptionLine) CatalogItemID() string {
	return l.catalogItemID
}

func (l ConsumptionLine) DisplayName() string {
	return l.displayName
}

func (l ConsumptionLine) Unit() string {
	return l.unit
}

func (l ConsumptionLine) Quantity() int {
	return l.quantity
}
