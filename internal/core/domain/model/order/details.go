package order

import (
	"errors"
	"strings"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
)

// Details groups the descriptive fields of an order. It is plain data; Validate
// checks the fields every stored order must carry.
type Details struct {
	EventName    string
	RequestDate  kernel.Date
	DeliveryDate kernel.Date
	TimeSlot     kernel.TimeSlot
	DeliveryTime kernel.ClockTime
	Location     string
	GuestTier    kernel.GuestTier
	RequestedBy  string
	Department   string
	ApproverName string
	Note         string
}

// Normalized returns a copy with surrounding whitespace removed from text fields.
func (d Details) Normalized() Details {
	d.EventName = strings.TrimSpace(d.EventName)
	d.Location = strings.TrimSpace(d.Location)
	d.RequestedBy = strings.TrimSpace(d.RequestedBy)
	d.Department = strings.TrimSpace(d.Department)
	d.ApproverName = strings.TrimSpace(d.ApproverName)
	d.Note = strings.TrimSpace(d.Note)
	return d
}

// Validate reports every missing identity field and every unknown enum value at once.
// RequestDate and DeliveryTime are optional.
func (d Details) Validate() error {
	var problems []error

	required := []struct {
		name  string
		value string
	}{
		{"eventName", d.EventName},
		{"location", d.Location},
		{"requestedBy", d.RequestedBy},
		{"department", d.Department},
		{"approverName", d.ApproverName},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			problems = append(problems, errs.NewValueIsRequiredError(field.name))
		}
	}

	if d.DeliveryDate.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("deliveryDate"))
	}
	if err := d.TimeSlot.Validate(); err != nil {
		problems = append(problems, err)
	}
	if err := d.GuestTier.Validate(); err != nil {
		problems = append(problems, err)
	}

	return errors.Join(problems...)
}
