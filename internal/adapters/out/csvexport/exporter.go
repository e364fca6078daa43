// Package csvexport renders orders as a CSV document in which every field is quoted.
//
// Columns:
//
//	ID,Acara,Tanggal,Waktu,Jam,Lokasi,Tamu,Pengaju,Bagian,Approval,Status,Konsumsi,Catatan,DibuatPada
//
// Tanggal is the delivery date (YYYY-MM-DD), Waktu the slot label, Jam the HH:MM
// delivery time or empty, Tamu the tier label and Status the Indonesian status
// label. Konsumsi flattens the lines as "qty unit name; qty unit name".
// DibuatPada is the creation instant in RFC 3339 UTC.
package csvexport

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"catering/internal/core/domain/model/order"
)

const contentType = "text/csv; charset=utf-8"

// Header lists the column names in output order.
var Header = []string{
	"ID", "Acara", "Tanggal", "Waktu", "Jam", "Lokasi", "Tamu",
	"Pengaju", "Bagian", "Approval", "Status", "Konsumsi", "Catatan", "DibuatPada",
}

// Exporter renders orders in the order it receives them.
type Exporter struct{}

func NewExporter() Exporter {
	return Exporter{}
}

func (Exporter) ContentType() string {
	return contentType
}

// Export returns the whole document as a string.
func (e Exporter) Export(orders []order.Order) (string, error) {
	var b strings.Builder
	if err := e.Write(&b, orders); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Write streams the document to w. Rows end with "\n".
func (Exporter) Write(w io.Writer, orders []order.Order) error {
	if err := writeRow(w, Header); err != nil {
		return err
	}
	for _, o := range orders {
		if err := writeRow(w, Row(o)); err != nil {
			return fmt.Errorf("order %s: %w", o.ID(), err)
		}
	}
	return nil
}

// Row returns the unquoted field values of one order.
func Row(o order.Order) []string {
	d := o.Details()
	return []string{
		o.ID(),
		d.EventName,
		d.DeliveryDate.String(),
		d.TimeSlot.Label(),
		d.DeliveryTime.String(),
		d.Location,
		d.GuestTier.Label(),
		d.RequestedBy,
		d.Department,
		d.ApproverName,
		o.Status().Label(),
		FlattenLines(o.Lines()),
		d.Note,
		o.CreatedAt().UTC().Format(time.RFC3339),
	}
}

// FlattenLines joins lines as "qty unit name" separated by "; ".
func FlattenLines(lines []order.ConsumptionLine) string {
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		parts = append(parts, strconv.Itoa(l.Quantity())+" "+l.Unit()+" "+l.DisplayName())
	}
	return strings.Join(parts, "; ")
}

func writeRow(w io.Writer, fields []string) error {
	var b strings.Builder
	for n, f := range fields {
		if n > 0 {
			b.WriteByte(',')
		}
		b.WriteString(Quote(f))
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

// Quote wraps s in double quotes and doubles any embedded quote. Commas,
// semicolons and newlines are kept verbatim.
func Quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
