package logger

// Standard field names for structured log entries
const (
	FieldRunID      = "run_id"
	FieldStage      = "stage"
	FieldPath       = "path"
	FieldClass      = "class"
	FieldOutput     = "output"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
	FieldError      = "error"
	FieldErrorCode  = "error_code"
)

// Component names
const (
	ComponentPipeline = "pipeline"
	ComponentRead     = "read"
	ComponentGenerate = "generate"
	ComponentWrite    = "write"
	ComponentWatch    = "watch"
)
