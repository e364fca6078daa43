// Package catalog describes the consumption items that may be ordered and the
// rules that decide which guests and time slots each item is offered for.
//
// An Item is eligible for a (tier, slot) pair when the tier ranks at least the
// item's minimum tier and the slot is one of the item's allowed slots. A Catalog
// keeps items in their declared order and looks them up by identifier.
package catalog
