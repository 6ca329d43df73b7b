package logging

// Standardized field names for structured logging.
const (
	FieldInputFile   = "input_file"
	FieldOutputFile  = "output_file"
	FieldRunID       = "run_id"
	FieldState       = "state"
	FieldRow         = "row"
	FieldColumn      = "column"
	FieldSource      = "source_currency"
	FieldDestination = "destination_currency"
	FieldMultiplier  = "multiplier"
	FieldEncoding    = "encoding"
	FieldSeparator   = "separator"
	FieldCount       = "count"
	FieldKind        = "error_kind"
	FieldComponent   = "component"
)
