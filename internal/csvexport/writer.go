// Package csvexport renders a normalized invoice as CSV for the
// format=csv response variant.
package csvexport

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/TeCom0/InvoiceAIService/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// invoiceColumns defines the invoice summary header row.
var invoiceColumns = []string{
	"Vendor",
	"Invoice Number",
	"Invoice Date",
	"Due Date",
	"Customer Name",
	"Customer Address",
	"Payment Method",
	"Currency",
	"Sub Total",
	"Tax",
	"Total Amount",
	"Line Item Count",
}

// itemColumns defines the line item header row.
var itemColumns = []string{
	"Description",
	"Quantity",
	"Price",
	"Sub Total",
}

// Writer wraps csv.Writer for exporting normalized invoices as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteInvoice writes the invoice summary section followed by a blank
// separator row and the line item section.
func (w *Writer) WriteInvoice(inv *domain.NormalizedInvoice) error {
	if err := w.csv.Write(invoiceColumns); err != nil {
		return err
	}
	if err := w.csv.Write(invoiceToRow(inv)); err != nil {
		return err
	}
	if len(inv.Items) == 0 {
		return nil
	}
	if err := w.csv.Write([]string{""}); err != nil {
		return err
	}
	if err := w.csv.Write(itemColumns); err != nil {
		return err
	}
	for i := range inv.Items {
		if err := w.csv.Write(itemToRow(&inv.Items[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func invoiceToRow(inv *domain.NormalizedInvoice) []string {
	return []string{
		inv.Vendor,
		inv.InvoiceNumber,
		inv.InvoiceDate,
		inv.DueDate,
		inv.CustomerName,
		inv.CustomerAddress,
		inv.PaymentMethod,
		inv.Currency,
		inv.SubTotal,
		inv.Tax,
		inv.TotalAmount,
		strconv.Itoa(len(inv.Items)),
	}
}

func itemToRow(item *domain.LineItem) []string {
	return []string{
		item.Description,
		item.Quantity,
		item.Price,
		item.SubTotal,
	}
}
