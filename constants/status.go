package constants

// ExtractionStatus is the canonical status for rows in extractions.
type ExtractionStatus string

// Stable values (store these exact strings in DB).
const (
	ExtractionUploaded   ExtractionStatus = "UPLOADED"   // unit created, not yet dispatched
	ExtractionParsing    ExtractionStatus = "PARSING"    // parse call in flight (or awaiting cached result)
	ExtractionParsed     ExtractionStatus = "PARSED"     // parse record available
	ExtractionExtracting ExtractionStatus = "EXTRACTING" // extract call in flight
	ExtractionCompleted  ExtractionStatus = "COMPLETED"  // terminal: fields persisted
	ExtractionVerified   ExtractionStatus = "VERIFIED"   // terminal: human verified all fields
	ExtractionError      ExtractionStatus = "ERROR"      // terminal: unrecoverable failure
	ExtractionCancelled  ExtractionStatus = "CANCELLED"  // terminal: dropped before dispatch
)

// DocumentStatus tracks the template-discovery classification of a
// physical file, which runs before any template is chosen.
type DocumentStatus string

const (
	DocumentUploaded        DocumentStatus = "UPLOADED"
	DocumentAnalyzing       DocumentStatus = "ANALYZING"
	DocumentTemplateMatched DocumentStatus = "TEMPLATE_MATCHED"
	DocumentTemplateNeeded  DocumentStatus = "TEMPLATE_NEEDED"
)

// ValidationStatus is the per-field outcome of the validation engine.
type ValidationStatus string

const (
	ValidationValid   ValidationStatus = "valid"
	ValidationWarning ValidationStatus = "warning"
	ValidationError   ValidationStatus = "error"
)
