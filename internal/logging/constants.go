package logging

// Standardized field names for structured logging.
// These constants keep log output consistent across the application,
// making logs easier to parse, filter, and analyze.
const (
	FieldExpenseID = "expense_id"
	FieldVendor    = "vendor"
	FieldCategory  = "category"
	FieldStatus    = "status"
	FieldAmount    = "amount"
	FieldOperation = "operation"
	FieldCount     = "count"
	FieldFile      = "file_path"
	FieldReason    = "reason"
	FieldStrategy  = "strategy"
)
