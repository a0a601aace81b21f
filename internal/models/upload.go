package models

// UploadFile is an opaque file handed to the repository's upload endpoints.
// The engine never interprets its contents; CSV parsing happens server-side.
type UploadFile struct {
	Name string
	Data []byte
}

// UploadRequest carries one upload call's inputs.
type UploadRequest struct {
	AccountID int64
	File      UploadFile
}

// UploadLineResult is the per-line outcome reported by the upload endpoints,
// both for the preview-only parse call and for the committing process call.
type UploadLineResult struct {
	LineNumber   int               `json:"lineNumber"`
	RawLine      string            `json:"rawLine,omitempty"`
	Success      bool              `json:"success"`
	Error        bool              `json:"error"`
	ErrorMessage string            `json:"errorMessage,omitempty"`
	ParsedData   *UploadParsedLine `json:"csvParsedData,omitempty"`
	Transaction  *Transaction      `json:"transaction,omitempty"`
}

// UploadParsedLine is the structured interpretation of one uploaded line.
type UploadParsedLine struct {
	TransactionDate string `json:"transactionDate,omitempty"`
	Description     string `json:"description,omitempty"`
	Amount          string `json:"amount,omitempty"`
}

// UploadResponse wraps the per-line results of an upload call.
type UploadResponse struct {
	Items []UploadLineResult `json:"items"`
}
