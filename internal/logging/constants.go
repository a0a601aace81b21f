package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldAccountID = "account_id"
	FieldAccount   = "account"
	FieldItem      = "item"
	FieldQuery     = "query"
	FieldPhase     = "phase"
	FieldFile      = "file_path"
	FieldEndpoint  = "endpoint"
	FieldCount     = "count"
	FieldValue     = "value"
	FieldLine      = "line"
	FieldOperation = "operation"
	FieldStatus    = "status"
	FieldError     = "error"
	FieldDuration  = "duration_ms"
)
