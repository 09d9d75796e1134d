package logging

// Standardized field names for structured logging. Keeping the names in one
// place keeps log output consistent across commands and parsers.
const (
	FieldFile        = "file_path"
	FieldRulesFile   = "rules_file"
	FieldInputFile   = "input_file"
	FieldOutputFile  = "output_file"
	FieldPreset      = "preset"
	FieldPattern     = "pattern"
	FieldAccount     = "account"
	FieldCategory    = "category"
	FieldCount       = "count"
	FieldUnmatched   = "unmatched"
	FieldDate        = "date"
	FieldDescription = "description"
	FieldAmount      = "amount"
)
