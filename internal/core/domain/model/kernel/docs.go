// Package kernel provides the shared value objects of the catering order domain.
// They are used by both the order aggregate and the consumption catalog.
//
// The package includes:
//   - GuestTier: the ranked guest class (Standard < Regular < Premium < VIP < VVIP)
//   - TimeSlot: the named meal/delivery window of an event
//   - Date: a calendar date without time of day or zone
//   - ClockTime: an optional HH:MM wall-clock delivery time
//   - Clock: the "now" supplier injected wherever instants are recorded, with
//     Instant normalizing recorded instants to UTC microseconds
//
// All values are immutable and safe to copy. Textual forms accept both the English
// names and the Indonesian labels used by the request form, case-insensitively.
package kernel
