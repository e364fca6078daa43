// Package orderrepo maps order snapshots onto relational tables. An order row
// carries its details and status; lines and history entries live in child tables
// keyed by order id and ordered by position.
package orderrepo

import (
	"errors"
	"fmt"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is one row of the orders table.
type OrderDTO struct {
	ID           string    `gorm:"type:varchar(32);primaryKey"`
	Position     int       `gorm:"index"`
	EventName    string    `gorm:"not null"`
	RequestDate  time.Time `gorm:"type:date"`
	DeliveryDate time.Time `gorm:"type:date;index"`
	TimeSlot     int       `gorm:"type:smallint"`
	DeliveryTime string    `gorm:"type:varchar(5)"`
	Location     string
	GuestTier    int `gorm:"type:smallint"`
	RequestedBy  string
	Department   string
	ApproverName string
	Note         string
	Status       int `gorm:"type:smallint;index"`
	CreatedAt    time.Time

	Lines   []LineDTO    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	History []HistoryDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO is one consumption line of an order.
type LineDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       string    `gorm:"type:varchar(32);index"`
	Position      int
	CatalogItemID string
	DisplayName   string
	Unit          string
	Quantity      int
}

func (LineDTO) TableName() string {
	return "order_lines"
}

// HistoryDTO is one status history entry of an order.
type HistoryDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID  string    `gorm:"type:varchar(32);index"`
	Position int
	Status   int `gorm:"type:smallint"`
	At       time.Time
	Actor    string
}

func (HistoryDTO) TableName() string {
	return "order_history"
}

// Models lists every table the repository needs, in migration order.
func Models() []any {
	return []any{&OrderDTO{}, &LineDTO{}, &HistoryDTO{}}
}

func fromDomain(o order.Order, position int) OrderDTO {
	d := o.Details()

	lines := make([]LineDTO, 0, len(o.Lines()))
	for i, l := range o.Lines() {
		lines = append(lines, LineDTO{
			ID:            uuid.New(),
			OrderID:       o.ID(),
			Position:      i,
			CatalogItemID: l.CatalogItemID(),
			DisplayName:   l.DisplayName(),
			Unit:          l.Unit(),
			Quantity:      l.Quantity(),
		})
	}

	history := make([]HistoryDTO, 0, len(o.History()))
	for i, h := range o.History() {
		history = append(history, HistoryDTO{
			ID:       uuid.New(),
			OrderID:  o.ID(),
			Position: i,
			Status:   int(h.Status()),
			At:       h.Timestamp(),
			Actor:    h.Actor(),
		})
	}

	return OrderDTO{
		ID:           o.ID(),
		Position:     position,
		EventName:    d.EventName,
		RequestDate:  d.RequestDate.Time(),
		DeliveryDate: d.DeliveryDate.Time(),
		TimeSlot:     int(d.TimeSlot),
		DeliveryTime: d.DeliveryTime.String(),
		Location:     d.Location,
		GuestTier:    int(d.GuestTier),
		RequestedBy:  d.RequestedBy,
		Department:   d.Department,
		ApproverName: d.ApproverName,
		Note:         d.Note,
		Status:       int(o.Status()),
		CreatedAt:    o.CreatedAt(),
		Lines:        lines,
		History:      history,
	}
}

// toDomain rebuilds an order through RestoreOrder so rows that break domain
// rules are rejected instead of loaded.
func toDomain(dto OrderDTO) (order.Order, error) {
	var problems []error

	deliveryTime, err := kernel.ParseClockTime(dto.DeliveryTime)
	if err != nil {
		problems = append(problems, err)
	}

	lines := make([]order.ConsumptionLine, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		line, lineErr := order.NewConsumptionLine(l.CatalogItemID, l.DisplayName, l.Unit, l.Quantity)
		if lineErr != nil {
			problems = append(problems, lineErr)
			continue
		}
		lines = append(lines, line)
	}

	history := make([]order.HistoryEntry, 0, len(dto.History))
	for _, h := range dto.History {
		entry, entryErr := order.NewHistoryEntry(order.Status(h.Status), h.At, h.Actor)
		if entryErr != nil {
			problems = append(problems, entryErr)
			continue
		}
		history = append(history, entry)
	}

	if err := errors.Join(problems...); err != nil {
		return order.Order{}, fmt.Errorf("order %s: %w", dto.ID, err)
	}

	o, err := order.RestoreOrder(dto.ID, order.Details{
		EventName:    dto.EventName,
		RequestDate:  dateOf(dto.RequestDate),
		DeliveryDate: dateOf(dto.DeliveryDate),
		TimeSlot:     kernel.TimeSlot(dto.TimeSlot),
		DeliveryTime: deliveryTime,
		Location:     dto.Location,
		GuestTier:    kernel.GuestTier(dto.GuestTier),
		RequestedBy:  dto.RequestedBy,
		Department:   dto.Department,
		ApproverName: dto.ApproverName,
		Note:         dto.Note,
	}, lines, order.Status(dto.Status), history, dto.CreatedAt)
	if err != nil {
		return order.Order{}, fmt.Errorf("order %s: %w", dto.ID, err)
	}
	return o, nil
}

func dateOf(t time.Time) kernel.Date {
	if t.IsZero() {
		return kernel.Date{}
	}
	return kernel.DateOf(t)
}
