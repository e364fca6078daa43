package services

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

const (
	DefaultIDPrefix = "P"
	DefaultIDWidth  = 3
	maxIDWidth      = 18
)

var ErrIDAllocatorIsNotConstructed = errors.New("IDAllocator must be created via NewIDAllocator")

// IDAllocator formats order ids as <prefix>-<N> with N zero-padded to width.
//
// Next scans the existing collection for the highest N carried by an id with the
// allocator's prefix and returns N+1, so deleting old orders never causes reuse of
// a higher id. Two writers allocating from the same snapshot will collide; the
// store serializes writers.
type IDAllocator struct {
	prefix  string
	width   int
	pattern *regexp.Regexp
	guard   guard.ConstructorGuard
}

// NewIDAllocator validates the prefix and width. Width must lie in 1..18.
func NewIDAllocator(prefix string, width int) (IDAllocator, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return IDAllocator{}, errs.NewValueIsRequiredError("idPrefix")
	}
	if strings.Contains(prefix, "-") {
		return IDAllocator{}, errs.NewValueIsInvalidErrorWithCause("idPrefix", fmt.Errorf("%q must not contain '-'", prefix))
	}
	if width < 1 || width > maxIDWidth {
		return IDAllocator{}, errs.NewValueIsOutOfRangeError("idWidth", width, 1, maxIDWidth)
	}

	return IDAllocator{
		prefix:  prefix,
		width:   width,
		pattern: regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `-(\d+)$`),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (a IDAllocator) Validate() error {
	return a.guard.Validate(ErrIDAllocatorIsNotConstructed)
}

// Next returns the id following the highest matching id in orders, or the first
// id when none match. Once the sequence reaches MaxUint64 no further id exists and
// Next returns a ValueIsOutOfRangeError.
func (a IDAllocator) Next(orders []order.Order) (string, error) {
	if err := a.Validate(); err != nil {
		return "", err
	}
	highest := uint64(0)
	for _, o := range orders {
		if n, ok := a.sequence(o.ID()); ok && n > highest {
			highest = n
		}
	}
	if highest == math.MaxUint64 {
		return "", errs.NewValueIsOutOfRangeError("orderSequence", a.Format(highest), 1, uint64(math.MaxUint64-1))
	}
	return a.Format(highest + 1), nil
}

// Format renders sequence number n. Numbers wider than the configured width are
// rendered in full.
func (a IDAllocator) Format(n uint64) string {
	return fmt.Sprintf("%s-%0*d", a.prefix, a.width, n)
}

func (a IDAllocator) sequence(id string) (uint64, bool) {
	m := a.pattern.FindStringSubmatch(id)
	if m == nil {
		return 0, false
	}
	n, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
