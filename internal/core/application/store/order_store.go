package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/services"
	"catering/internal/core/ports"
	"catering/internal/pkg/errs"
)

const defaultSaveTimeout = 10 * time.Second

// Config tunes store behaviour.
type Config struct {
	// MinLeadDays is the minimum number of days between today and the delivery
	// date of a new order. Zero disables the check.
	MinLeadDays int

	// SaveTimeout bounds each background save. Zero means 10s.
	SaveTimeout time.Duration
}

// OrderStore is the single owner of the order collection.
type OrderStore struct {
	persistence ports.OrderPersistence
	workflow    services.StatusWorkflow
	resolver    services.CatalogResolver
	ids         services.IDAllocator
	clock       kernel.Clock
	logger      *slog.Logger
	cfg         Config

	mu      sync.Mutex
	orders  atomic.Pointer[[]order.Order]
	version atomic.Uint64

	saveMu       sync.Mutex
	savedVersion uint64
	lastSaveErr  error
}

// NewOrderStore builds a store and loads the persisted collection into memory.
// A failing load or a collection with duplicate ids is returned as an error.
func NewOrderStore(
	ctx context.Context,
	persistence ports.OrderPersistence,
	resolver services.CatalogResolver,
	ids services.IDAllocator,
	clock kernel.Clock,
	logger *slog.Logger,
	cfg Config,
) (*OrderStore, error) {
	if persistence == nil {
		return nil, errs.NewValueIsRequiredError("persistence")
	}
	if err := ids.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("ids", err)
	}
	if clock == nil {
		clock = kernel.SystemClock()
	}
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.SaveTimeout <= 0 {
		cfg.SaveTimeout = defaultSaveTimeout
	}
	if cfg.MinLeadDays < 0 {
		return nil, errs.NewValueIsOutOfRangeError("minLeadDays", cfg.MinLeadDays, 0, "unbounded")
	}

	s := &OrderStore{
		persistence: persistence,
		workflow:    services.NewStatusWorkflow(clock),
		resolver:    resolver,
		ids:         ids,
		clock:       clock,
		logger:      logger.With("component", "order_store"),
		cfg:         cfg,
	}

	loaded, err := persistence.Load(ctx)
	if err != nil {
		return nil, errs.NewPersistenceFailedError("load", err)
	}
	if err := checkUniqueIDs(loaded); err != nil {
		return nil, err
	}

	snapshot := append([]order.Order(nil), loaded...)
	s.orders.Store(&snapshot)
	s.logger.Info("orders loaded", "count", len(snapshot))

	return s, nil
}

func checkUniqueIDs(orders []order.Order) error {
	seen := make(map[string]bool, len(orders))
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return err
		}
		if seen[o.ID()] {
			return errs.NewValueIsInvalidErrorWithCause("orders", fmt.Errorf("duplicate order id %q", o.ID()))
		}
		seen[o.ID()] = true
	}
	return nil
}

// List returns a copy of the whole collection in insertion order.
func (s *OrderStore) List() []order.Order {
	return append([]order.Order(nil), s.snapshot()...)
}

// Get returns the order with id or an ObjectNotFoundError.
func (s *OrderStore) Get(id string) (order.Order, error) {
	current := s.snapshot()
	if n := indexOf(current, id); n >= 0 {
		return current[n], nil
	}
	return order.Order{}, errs.NewObjectNotFoundError("order", id)
}

// Create validates draft, completes its lines from the catalog and appends a new
// Pending order. Every validation problem is reported at once.
func (s *OrderStore) Create(draft order.Draft) (order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now().UTC()
	details, lines, err := s.prepare(draft, now)
	if err != nil {
		return order.Order{}, err
	}

	current := s.snapshot()
	id, err := s.ids.Next(current)
	if err != nil {
		return order.Order{}, err
	}
	if indexOf(current, id) >= 0 {
		return order.Order{}, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("allocated id %q is already taken", id))
	}

	created, err := order.NewOrder(id, details, lines, now)
	if err != nil {
		return order.Order{}, err
	}

	next := make([]order.Order, 0, len(current)+1)
	next = append(next, current...)
	next = append(next, created)
	s.publish(next)

	s.logger.Info("order created",
		"order_id", created.ID(),
		"status", created.Status().String(),
		"actor", details.RequestedBy,
		"lines", len(lines))
	return created, nil
}

// UpdateStatus moves order id to target on behalf of actor. Unknown ids yield an
// ObjectNotFoundError and illegal edges a StatusTransitionIsInvalidError; in both
// cases the collection is unchanged.
func (s *OrderStore) UpdateStatus(id string, target order.Status, actor string) (order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.snapshot()
	n := indexOf(current, id)
	if n < 0 {
		return order.Order{}, errs.NewObjectNotFoundError("order", id)
	}

	updated, err := s.workflow.Transition(current[n], target, actor)
	if err != nil {
		return order.Order{}, err
	}

	next := append([]order.Order(nil), current...)
	next[n] = updated
	s.publish(next)

	s.logger.Info("order status changed",
		"order_id", id,
		"from", current[n].Status().String(),
		"status", updated.Status().String(),
		"actor", actor)
	return updated, nil
}

// Complete marks an approved order as delivered.
func (s *OrderStore) Complete(id, actor string) (order.Order, error) {
	return s.UpdateStatus(id, order.Completed, actor)
}

// Delete removes order id. There is no undo.
func (s *OrderStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.snapshot()
	n := indexOf(current, id)
	if n < 0 {
		return errs.NewObjectNotFoundError("order", id)
	}

	next := make([]order.Order, 0, len(current)-1)
	next = append(next, current[:n]...)
	next = append(next, current[n+1:]...)
	s.publish(next)

	s.logger.Info("order deleted", "order_id", id, "status", current[n].Status().String())
	return nil
}

// Dirty reports whether the latest snapshot has not been saved yet.
func (s *OrderStore) Dirty() bool {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	return s.version.Load() > s.savedVersion
}

// LastSaveError returns the error of the most recent failed save, or nil once a
// later save succeeded.
func (s *OrderStore) LastSaveError() error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	return s.lastSaveErr
}

// Flush saves the latest snapshot if it has not been saved yet and returns the
// save error, if any. It is the retry path for failed background saves.
func (s *OrderStore) Flush(ctx context.Context) error {
	s.mu.Lock()
	version := s.version.Load()
	current := s.snapshot()
	s.mu.Unlock()

	return s.save(ctx, version, current)
}

// publish installs next as the current collection and saves it in the background.
// Callers hold s.mu.
func (s *OrderStore) publish(next []order.Order) {
	s.orders.Store(&next)
	version := s.version.Add(1)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.cfg.SaveTimeout)
		defer cancel()
		_ = s.save(ctx, version, next)
	}()
}

// save writes snapshot version unless a newer or equal version is already stored.
func (s *OrderStore) save(ctx context.Context, version uint64, orders []order.Order) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	if version <= s.savedVersion {
		return nil
	}

	if err := s.persistence.Save(ctx, orders); err != nil {
		saveErr := errs.NewPersistenceFailedError("save", err)
		s.lastSaveErr = saveErr
		s.logger.Error("failed to save orders",
			"version", version,
			"count", len(orders),
			"error", saveErr)
		return saveErr
	}

	s.savedVersion = version
	s.lastSaveErr = nil
	s.logger.Debug("orders saved", "version", version, "count", len(orders))
	return nil
}

func (s *OrderStore) snapshot() []order.Order {
	if p := s.orders.Load(); p != nil {
		return *p
	}
	return nil
}

func indexOf(orders []order.Order, id string) int {
	for n, o := range orders {
		if o.ID() == id {
			return n
		}
	}
	return -1
}

// prepare validates the draft and turns its lines into consumption lines.
func (s *OrderStore) prepare(draft order.Draft, now time.Time) (order.Details, []order.ConsumptionLine, error) {
	details := draft.Details.Normalized()
	if details.RequestDate.IsZero() {
		details.RequestDate = kernel.DateOf(now)
	}

	var problems []error
	if err := details.Validate(); err != nil {
		problems = append(problems, err)
	}

	if s.cfg.MinLeadDays > 0 && !details.DeliveryDate.IsZero() {
		earliest := kernel.DateOf(now).AddDays(s.cfg.MinLeadDays)
		if details.DeliveryDate.Before(earliest) {
			problems = append(problems, errs.NewValueIsOutOfRangeError(
				"deliveryDate", details.DeliveryDate.String(), earliest.String(), "unbounded"))
		}
	}

	lines, err := s.completeLines(draft.Lines, details.GuestTier, details.TimeSlot)
	if err != nil {
		problems = append(problems, err)
	}

	if err := errors.Join(problems...); err != nil {
		return order.Details{}, nil, err
	}
	return details, lines, nil
}

// completeLines fills unit and display name from the catalog and rejects items
// that are unknown or not offered for the tier and slot.
func (s *OrderStore) completeLines(drafts []order.LineDraft, tier kernel.GuestTier, slot kernel.TimeSlot) ([]order.ConsumptionLine, error) {
	if len(drafts) == 0 {
		return nil, errs.NewValueIsRequiredError("lines")
	}

	checkEligibility := tier.Validate() == nil && slot.Validate() == nil

	var problems []error
	lines := make([]order.ConsumptionLine, 0, len(drafts))
	for n, d := range drafts {
		itemID := strings.TrimSpace(d.CatalogItemID)
		name, unit := strings.TrimSpace(d.DisplayName), strings.TrimSpace(d.Unit)

		if itemID != "" {
			item, ok := s.resolver.Catalog().Item(itemID)
			if !ok {
				problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
					fmt.Sprintf("lines[%d].catalogItemId", n), fmt.Errorf("unknown catalog item %q", itemID)))
				continue
			}
			if checkEligibility && !s.resolver.IsEligible(item.ID(), tier, slot) {
				problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
					fmt.Sprintf("lines[%d].catalogItemId", n),
					fmt.Errorf("%q is not offered to %s guests at %s", item.ID(), tier, slot)))
				continue
			}
			if name == "" {
				name = item.DisplayName()
			}
			if unit == "" {
				unit = item.DefaultUnit()
			}
		}

		line, err := order.NewConsumptionLine(itemID, name, unit, d.Quantity)
		if err != nil {
			problems = append(problems, fmt.Errorf("lines[%d]: %w", n, err))
			continue
		}
		lines = append(lines, line)
	}

	if err := errors.Join(problems...); err != nil {
		return nil, err
	}
	return lines, nil
}
