// Package normalizer projects the sparse, semi-structured field map
// returned by the document-intelligence service into the fixed
// consumer-facing invoice schema.
package normalizer

import (
	"github.com/TeCom0/InvoiceAIService/internal/domain"
)

// Defaults substituted for absent or empty source fields.
const (
	DefaultUnknown       = "Unknown"
	DefaultCurrency      = "USD"
	DefaultPaymentMethod = "Not provided"
)

// itemsField is the source field holding the invoice line items.
const itemsField = "Items"

// slotMapping binds one output slot to its source field name and the
// default substituted when the source field is absent or has no content.
// Keeping the projection in a table makes the defaulting contract
// auditable and testable per slot.
type slotMapping struct {
	source string
	deflt  string
	assign func(inv *domain.NormalizedInvoice, value string)
}

var invoiceSlots = []slotMapping{
	{"VendorName", DefaultUnknown, func(inv *domain.NormalizedInvoice, v string) { inv.Vendor = v }},
	{"InvoiceId", DefaultUnknown, func(inv *domain.NormalizedInvoice, v string) { inv.InvoiceNumber = v }},
	{"InvoiceTotal", DefaultUnknown, func(inv *domain.NormalizedInvoice, v string) { inv.TotalAmount = v }},
	{"InvoiceDate", DefaultUnknown, func(inv *domain.NormalizedInvoice, v string) { inv.InvoiceDate = v }},
	{"DueDate", DefaultUnknown, func(inv *domain.NormalizedInvoice, v string) { inv.DueDate = v }},
	{"CustomerName", DefaultUnknown, func(inv *domain.NormalizedInvoice, v string) { inv.CustomerName = v }},
	{"CustomerAddress", DefaultUnknown, func(inv *domain.NormalizedInvoice, v string) { inv.CustomerAddress = v }},
	{"PaymentMethod", DefaultPaymentMethod, func(inv *domain.NormalizedInvoice, v string) { inv.PaymentMethod = v }},
	{"Currency", DefaultCurrency, func(inv *domain.NormalizedInvoice, v string) { inv.Currency = v }},
	{"SubTotal", DefaultUnknown, func(inv *domain.NormalizedInvoice, v string) { inv.SubTotal = v }},
	{"TotalTax", DefaultUnknown, func(inv *domain.NormalizedInvoice, v string) { inv.Tax = v }},
}

// itemSlotMapping binds one LineItem slot to its sub-field name. Every item
// slot defaults to DefaultUnknown.
type itemSlotMapping struct {
	source string
	assign func(item *domain.LineItem, value string)
}

var lineItemSlots = []itemSlotMapping{
	{"Description", func(item *domain.LineItem, v string) { item.Description = v }},
	{"Quantity", func(item *domain.LineItem, v string) { item.Quantity = v }},
	{"UnitPrice", func(item *domain.LineItem, v string) { item.Price = v }},
	{"Amount", func(item *domain.LineItem, v string) { item.SubTotal = v }},
}

// Normalize projects an analysis result into a NormalizedInvoice. Missing
// fields are absorbed via per-slot defaults and never cause an error; the
// only failure is an analysis result with zero documents, reported as
// domain.ErrNoDocumentsFound. When the result contains multiple documents
// only the first is used.
func Normalize(result *domain.AnalyzeResult) (*domain.NormalizedInvoice, error) {
	if result == nil || len(result.Documents) == 0 {
		return nil, domain.ErrNoDocumentsFound
	}
	fields := result.Documents[0].Fields

	inv := &domain.NormalizedInvoice{
		Items:            []domain.LineItem{},
		AdditionalFields: make(map[string]string, len(fields)),
	}
	for _, slot := range invoiceSlots {
		slot.assign(inv, fieldContent(fields, slot.source, slot.deflt))
	}
	inv.Items = extractLineItems(fields)

	// Pass the whole flattened field->content map through for consumers
	// that need fields outside the fixed schema.
	for name, field := range fields {
		inv.AdditionalFields[name] = field.Content
	}

	return inv, nil
}

// fieldContent returns the textual content of the named field, or deflt
// when the field is absent or has no content.
func fieldContent(fields domain.FieldMap, name, deflt string) string {
	field, ok := fields[name]
	if !ok || field.Content == "" {
		return deflt
	}
	return field.Content
}

// extractLineItems pulls LineItems out of the "Items" array field. An
// absent or non-array Items field yields an empty slice. Elements that are
// not object-typed are skipped silently rather than failing the request.
func extractLineItems(fields domain.FieldMap) []domain.LineItem {
	items := []domain.LineItem{}

	field, ok := fields[itemsField]
	if !ok || field.Type != domain.FieldTypeArray {
		return items
	}

	for _, element := range field.ValueArray {
		if element.Type != domain.FieldTypeObject || element.ValueObject == nil {
			continue
		}
		sub := domain.FieldMap(element.ValueObject)

		var item domain.LineItem
		for _, slot := range lineItemSlots {
			slot.assign(&item, fieldContent(sub, slot.source, DefaultUnknown))
		}
		items = append(items, item)
	}

	return items
}
