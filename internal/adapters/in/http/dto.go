package http

import (
	"errors"
	"strings"
	"time"

	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/catalog"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
)

// Error is the body of every non-2xx JSON response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type NewLine struct {
	CatalogItemID string `json:"catalogItemId,omitempty"`
	DisplayName   string `json:"displayName,omitempty"`
	Unit          string `json:"unit,omitempty"`
	Quantity      int    `json:"quantity"`
}

type NewOrder struct {
	EventName    string    `json:"eventName"`
	RequestDate  string    `json:"requestDate,omitempty"`
	DeliveryDate string    `json:"deliveryDate"`
	TimeSlot     string    `json:"timeSlot"`
	DeliveryTime string    `json:"deliveryTime,omitempty"`
	Location     string    `json:"location"`
	GuestTier    string    `json:"guestTier"`
	RequestedBy  string    `json:"requestedBy"`
	Department   string    `json:"department"`
	ApproverName string    `json:"approverName"`
	Note         string    `json:"note,omitempty"`
	Lines        []NewLine `json:"lines"`
}

// Draft parses the textual fields. Blank enum and date fields are left unset so
// the domain reports them as missing; unparsable ones are reported here.
func (r NewOrder) Draft() (order.Draft, error) {
	var problems []error

	details := order.Details{
		EventName:    r.EventName,
		Location:     r.Location,
		RequestedBy:  r.RequestedBy,
		Department:   r.Department,
		ApproverName: r.ApproverName,
		Note:         r.Note,
	}

	if s := strings.TrimSpace(r.RequestDate); s != "" {
		d, err := kernel.ParseDate(s)
		problems = append(problems, err)
		details.RequestDate = d
	}
	if s := strings.TrimSpace(r.DeliveryDate); s != "" {
		d, err := kernel.ParseDate(s)
		problems = append(problems, err)
		details.DeliveryDate = d
	}
	if s := strings.TrimSpace(r.TimeSlot); s != "" {
		slot, err := kernel.ParseTimeSlot(s)
		problems = append(problems, err)
		details.TimeSlot = slot
	}
	if s := strings.TrimSpace(r.GuestTier); s != "" {
		tier, err := kernel.ParseGuestTier(s)
		problems = append(problems, err)
		details.GuestTier = tier
	}
	deliveryTime, err := kernel.ParseClockTime(strings.TrimSpace(r.DeliveryTime))
	problems = append(problems, err)
	details.DeliveryTime = deliveryTime

	if err := errors.Join(problems...); err != nil {
		return order.Draft{}, err
	}

	lines := make([]order.LineDraft, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, order.LineDraft{
			CatalogItemID: l.CatalogItemID,
			DisplayName:   l.DisplayName,
			Unit:          l.Unit,
			Quantity:      l.Quantity,
		})
	}

	return order.Draft{Details: details, Lines: lines}, nil
}

type StatusChange struct {
	Status string `json:"status"`
	Actor  string `json:"actor"`
}

type Line struct {
	CatalogItemID string `json:"catalogItemId,omitempty"`
	DisplayName   string `json:"displayName"`
	Unit          string `json:"unit"`
	Quantity      int    `json:"quantity"`
}

type HistoryEntry struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Actor     string    `json:"actor"`
}

type Order struct {
	ID             string         `json:"id"`
	EventName      string         `json:"eventName"`
	RequestDate    string         `json:"requestDate,omitempty"`
	DeliveryDate   string         `json:"deliveryDate"`
	TimeSlot       string         `json:"timeSlot"`
	TimeSlotLabel  string         `json:"timeSlotLabel"`
	DeliveryTime   string         `json:"deliveryTime,omitempty"`
	Location       string         `json:"location"`
	GuestTier      string         `json:"guestTier"`
	GuestTierLabel string         `json:"guestTierLabel"`
	RequestedBy    string         `json:"requestedBy"`
	Department     string         `json:"department"`
	ApproverName   string         `json:"approverName"`
	Note           string         `json:"note,omitempty"`
	Status         string         `json:"status"`
	StatusLabel    string         `json:"statusLabel"`
	Lines          []Line         `json:"lines"`
	History        []HistoryEntry `json:"history"`
	CreatedAt      time.Time      `json:"createdAt"`
}

func toOrder(o order.Order) Order {
	d := o.Details()

	lines := make([]Line, 0, len(o.Lines()))
	for _, l := range o.Lines() {
		lines = append(lines, Line{
			CatalogItemID: l.CatalogItemID(),
			DisplayName:   l.DisplayName(),
			Unit:          l.Unit(),
			Quantity:      l.Quantity(),
		})
	}

	history := make([]HistoryEntry, 0, len(o.History()))
	for _, h := range o.History() {
		history = append(history, HistoryEntry{
			Status:    h.Status().String(),
			Timestamp: h.Timestamp(),
			Actor:     h.Actor(),
		})
	}

	return Order{
		ID:             o.ID(),
		EventName:      d.EventName,
		RequestDate:    d.RequestDate.String(),
		DeliveryDate:   d.DeliveryDate.String(),
		TimeSlot:       d.TimeSlot.String(),
		TimeSlotLabel:  d.TimeSlot.Label(),
		DeliveryTime:   d.DeliveryTime.String(),
		Location:       d.Location,
		GuestTier:      d.GuestTier.String(),
		GuestTierLabel: d.GuestTier.Label(),
		RequestedBy:    d.RequestedBy,
		Department:     d.Department,
		ApproverName:   d.ApproverName,
		Note:           d.Note,
		Status:         o.Status().String(),
		StatusLabel:    o.Status().Label(),
		Lines:          lines,
		History:        history,
		CreatedAt:      o.CreatedAt(),
	}
}

func toOrders(orders []order.Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrder(o))
	}
	return out
}

type OrderCounts struct {
	ByStatus map[string]int `json:"byStatus"`
	Total    int            `json:"total"`
}

func toOrderCounts(resp queries.GetOrderCountsQueryResponse) OrderCounts {
	byStatus := make(map[string]int, len(resp.ByStatus))
	for status, n := range resp.ByStatus {
		byStatus[status.String()] = n
	}
	return OrderCounts{ByStatus: byStatus, Total: resp.Total}
}

type CatalogItem struct {
	ID           string   `json:"id"`
	DisplayName  string   `json:"displayName"`
	MinimumTier  string   `json:"minimumTier"`
	AllowedSlots []string `json:"allowedSlots"`
	DefaultUnit  string   `json:"defaultUnit"`
}

func toCatalogItems(items []catalog.Item) []CatalogItem {
	out := make([]CatalogItem, 0, len(items))
	for _, item := range items {
		slots := make([]string, 0, len(item.AllowedSlots()))
		for _, s := range item.AllowedSlots() {
			slots = append(slots, s.String())
		}
		out = append(out, CatalogItem{
			ID:           item.ID(),
			DisplayName:  item.DisplayName(),
			MinimumTier:  item.MinimumTier().String(),
			AllowedSlots: slots,
			DefaultUnit:  item.DefaultUnit(),
		})
	}
	return out
}

type Eligibility struct {
	ItemID   string `json:"itemId"`
	Known    bool   `json:"known"`
	Eligible bool   `json:"eligible"`
}
