package domain

// DocumentField is one extracted field from the document-intelligence
// service. Content is the textual rendition of the value; ValueArray and
// ValueObject are populated only for array- and object-typed fields.
type DocumentField struct {
	Type        FieldType                `json:"type"`
	Content     string                   `json:"content,omitempty"`
	ValueArray  []DocumentField          `json:"value_array,omitempty"`
	ValueObject map[string]DocumentField `json:"value_object,omitempty"`
	Confidence  float64                  `json:"confidence,omitempty"`
}

// FieldMap maps a semantic field name ("VendorName", "InvoiceTotal", ...)
// to its extracted field. No key is ever guaranteed to be present.
type FieldMap map[string]DocumentField

// AnalyzedDocument is one document's worth of analyzer output.
type AnalyzedDocument struct {
	DocType    string   `json:"doc_type"`
	Fields     FieldMap `json:"fields"`
	Confidence float64  `json:"confidence"`
}

// AnalyzeResult is the outcome of one analysis operation.
type AnalyzeResult struct {
	ModelID   string             `json:"model_id"`
	Content   string             `json:"content"`
	Documents []AnalyzedDocument `json:"documents"`
}

// LineItem is one row of a normalized invoice's itemized list. Values are
// scoped to a single NormalizedInvoice and never shared across requests.
type LineItem struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	Price       string `json:"price"`
	SubTotal    string `json:"subTotal"`
}

// NormalizedInvoice is the fixed consumer-facing schema. Every slot is
// always populated: with the extracted value when present, otherwise with
// the slot's documented default.
type NormalizedInvoice struct {
	Vendor           string            `json:"vendor"`
	InvoiceNumber    string            `json:"invoiceNumber"`
	TotalAmount      string            `json:"totalAmount"`
	InvoiceDate      string            `json:"invoiceDate"`
	DueDate          string            `json:"dueDate"`
	CustomerName     string            `json:"customerName"`
	CustomerAddress  string            `json:"customerAddress"`
	Items            []LineItem        `json:"items"`
	PaymentMethod    string            `json:"paymentMethod"`
	Currency         string            `json:"currency"`
	SubTotal         string            `json:"subTotal"`
	Tax              string            `json:"tax"`
	AdditionalFields map[string]string `json:"additionalFields"`
}

// TextExtraction is the result of the OCR-text endpoint. No structured
// extraction is performed on pre-extracted text; the text is echoed back.
type TextExtraction struct {
	Text      string `json:"text"`
	Extracted bool   `json:"extracted"`
}
