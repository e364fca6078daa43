package services

import (
	"fmt"
	"sort"
	"strings"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"
)

type filterKind int

const (
	filterAll filterKind = iota
	filterActive
	filterStatus
)

// StatusFilter selects orders by status: all of them, the active ones
// (Pending and Approved) or exactly one status. The zero value is All.
type StatusFilter struct {
	kind   filterKind
	status order.Status
}

func FilterAll() StatusFilter {
	return StatusFilter{kind: filterAll}
}

// FilterActive matches Pending and Approved.
func FilterActive() StatusFilter {
	return StatusFilter{kind: filterActive}
}

func FilterByStatus(status order.Status) StatusFilter {
	return StatusFilter{kind: filterStatus, status: status}
}

// ParseStatusFilter accepts "All"/"Semua", "Active"/"Aktif" or any status name
// or label. The empty string means All.
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all", "semua":
		return FilterAll(), nil
	case "active", "aktif":
		return FilterActive(), nil
	}

	status, err := order.ParseStatus(s)
	if err != nil {
		return StatusFilter{}, errs.NewValueIsInvalidErrorWithCause("filter", fmt.Errorf("%q is not a filter", s))
	}
	return FilterByStatus(status), nil
}

// Matches reports whether status passes the filter.
func (f StatusFilter) Matches(status order.Status) bool {
	switch f.kind {
	case filterActive:
		return status.IsActive()
	case filterStatus:
		return status == f.status
	default:
		return true
	}
}

func (f StatusFilter) String() string {
	switch f.kind {
	case filterActive:
		return "Active"
	case filterStatus:
		return f.status.String()
	default:
		return "All"
	}
}

// SortOrder orders a view by creation instant.
type SortOrder int

const (
	// Newest puts the most recently created order first. It is the zero value.
	Newest SortOrder = iota
	Oldest
)

// ParseSortOrder accepts "Newest"/"Terbaru" and "Oldest"/"Terlama". The empty string means Newest.
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "newest", "terbaru":
		return Newest, nil
	case "oldest", "terlama":
		return Oldest, nil
	}
	return Newest, errs.NewValueIsInvalidErrorWithCause("sort", fmt.Errorf("%q is not a sort order", s))
}

func (s SortOrder) String() string {
	if s == Oldest {
		return "Oldest"
	}
	return "Newest"
}

// ViewCriteria bundles the view parameters. A zero DeliveryDate disables the date filter.
type ViewCriteria struct {
	Filter       StatusFilter
	DeliveryDate kernel.Date
	Sort         SortOrder
}

// QueryEngine derives display views from an order collection.
type QueryEngine struct{}

func NewQueryEngine() QueryEngine {
	return QueryEngine{}
}

// View returns a new slice holding the orders that pass the criteria, sorted by
// creation instant. The sort is stable, so orders created at the same instant
// keep their input order. orders itself is not reordered.
func (QueryEngine) View(orders []order.Order, criteria ViewCriteria) []order.Order {
	view := make([]order.Order, 0, len(orders))
	for _, o := range orders {
		if !criteria.Filter.Matches(o.Status()) {
			continue
		}
		if !criteria.DeliveryDate.IsZero() && !o.Details().DeliveryDate.Equal(criteria.DeliveryDate) {
			continue
		}
		view = append(view, o)
	}

	sort.SliceStable(view, func(i, j int) bool {
		if criteria.Sort == Oldest {
			return view[i].CreatedAt().Before(view[j].CreatedAt())
		}
		return view[i].CreatedAt().After(view[j].CreatedAt())
	})

	return view
}

// Counts tallies the whole collection per status. Every valid status is present,
// with 0 when no order has it.
func (QueryEngine) Counts(orders []order.Order) map[order.Status]int {
	counts := make(map[order.Status]int, len(order.AllStatuses()))
	for _, status := range order.AllStatuses() {
		counts[status] = 0
	}
	for _, o := range orders {
		counts[o.Status()]++
	}
	return counts
}
