package filestore

import (
	"errors"
	"fmt"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
)

const formatVersion = 1

type document struct {
	Version int           `json:"version"`
	SavedAt time.Time     `json:"savedAt"`
	Orders  []orderRecord `json:"orders"`
}

type orderRecord struct {
	ID           string           `json:"id"`
	EventName    string           `json:"eventName"`
	RequestDate  kernel.Date      `json:"requestDate"`
	DeliveryDate kernel.Date      `json:"deliveryDate"`
	TimeSlot     kernel.TimeSlot  `json:"timeSlot"`
	DeliveryTime kernel.ClockTime `json:"deliveryTime"`
	Location     string           `json:"location"`
	GuestTier    kernel.GuestTier `json:"guestTier"`
	RequestedBy  string           `json:"requestedBy"`
	Department   string           `json:"department"`
	ApproverName string           `json:"approverName"`
	Note         string           `json:"note,omitempty"`
	Lines        []lineRecord     `json:"lines"`
	Status       order.Status     `json:"status"`
	History      []historyRecord  `json:"history"`
	CreatedAt    time.Time        `json:"createdAt"`
}

type lineRecord struct {
	CatalogItemID string `json:"catalogItemId,omitempty"`
	DisplayName   string `json:"displayName"`
	Unit          string `json:"unit"`
	Quantity      int    `json:"quantity"`
}

type historyRecord struct {
	Status    order.Status `json:"status"`
	Timestamp time.Time    `json:"timestamp"`
	Actor     string       `json:"actor"`
}

func fromDomain(o order.Order) orderRecord {
	d := o.Details()

	lines := make([]lineRecord, 0, len(o.Lines()))
	for _, l := range o.Lines() {
		lines = append(lines, lineRecord{
			CatalogItemID: l.CatalogItemID(),
			DisplayName:   l.DisplayName(),
			Unit:          l.Unit(),
			Quantity:      l.Quantity(),
		})
	}

	history := make([]historyRecord, 0, len(o.History()))
	for _, h := range o.History() {
		history = append(history, historyRecord{
			Status:    h.Status(),
			Timestamp: h.Timestamp(),
			Actor:     h.Actor(),
		})
	}

	return orderRecord{
		ID:           o.ID(),
		EventName:    d.EventName,
		RequestDate:  d.RequestDate,
		DeliveryDate: d.DeliveryDate,
		TimeSlot:     d.TimeSlot,
		DeliveryTime: d.DeliveryTime,
		Location:     d.Location,
		GuestTier:    d.GuestTier,
		RequestedBy:  d.RequestedBy,
		Department:   d.Department,
		ApproverName: d.ApproverName,
		Note:         d.Note,
		Lines:        lines,
		Status:       o.Status(),
		History:      history,
		CreatedAt:    o.CreatedAt(),
	}
}

func toDomain(r orderRecord) (order.Order, error) {
	var problems []error

	lines := make([]order.ConsumptionLine, 0, len(r.Lines))
	for _, l := range r.Lines {
		line, err := order.NewConsumptionLine(l.CatalogItemID, l.DisplayName, l.Unit, l.Quantity)
		if err != nil {
			problems = append(problems, err)
			continue
		}
		lines = append(lines, line)
	}

	history := make([]order.HistoryEntry, 0, len(r.History))
	for _, h := range r.History {
		entry, err := order.NewHistoryEntry(h.Status, h.Timestamp, h.Actor)
		if err != nil {
			problems = append(problems, err)
			continue
		}
		history = append(history, entry)
	}

	if err := errors.Join(problems...); err != nil {
		return order.Order{}, fmt.Errorf("order %s: %w", r.ID, err)
	}

	o, err := order.RestoreOrder(r.ID, order.Details{
		EventName:    r.EventName,
		RequestDate:  r.RequestDate,
		DeliveryDate: r.DeliveryDate,
		TimeSlot:     r.TimeSlot,
		DeliveryTime: r.DeliveryTime,
		Location:     r.Location,
		GuestTier:    r.GuestTier,
		RequestedBy:  r.RequestedBy,
		Department:   r.Department,
		ApproverName: r.ApproverName,
		Note:         r.Note,
	}, lines, r.Status, history, r.CreatedAt)
	if err != nil {
		return order.Order{}, fmt.Errorf("order %s: %w", r.ID, err)
	}
	return o, nil
}
