// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/oakfield-labs/docuflow/db/ent/schema"
	"github.com/oakfield-labs/docuflow/gen/ent/extractedfield"
	"github.com/oakfield-labs/docuflow/gen/ent/extraction"
	"github.com/oakfield-labs/docuflow/gen/ent/parserecord"
	"github.com/oakfield-labs/docuflow/gen/ent/physicalfile"
	"github.com/oakfield-labs/docuflow/gen/ent/template"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	extractedfieldFields := schema.ExtractedField{}.Fields()
	_ = extractedfieldFields
	// extractedfieldDescName is the schema descriptor for name field.
	extractedfieldDescName := extractedfieldFields[2].Descriptor()
	// extractedfield.NameValidator is a validator for the "name" field. It is called by the builders before save.
	extractedfield.NameValidator = extractedfieldDescName.Validators[0].(func(string) error)
	// extractedfieldDescConfidence is the schema descriptor for confidence field.
	extractedfieldDescConfidence := extractedfieldFields[4].Descriptor()
	// extractedfield.DefaultConfidence holds the default value on creation for the confidence field.
	extractedfield.DefaultConfidence = extractedfieldDescConfidence.Default.(float32)
	// extractedfieldDescVerified is the schema descriptor for verified field.
	extractedfieldDescVerified := extractedfieldFields[8].Descriptor()
	// extractedfield.DefaultVerified holds the default value on creation for the verified field.
	extractedfield.DefaultVerified = extractedfieldDescVerified.Default.(bool)
	// extractedfieldDescValidationStatus is the schema descriptor for validation_status field.
	extractedfieldDescValidationStatus := extractedfieldFields[9].Descriptor()
	// extractedfield.DefaultValidationStatus holds the default value on creation for the validation_status field.
	extractedfield.DefaultValidationStatus = extractedfieldDescValidationStatus.Default.(string)
	// extractedfield.ValidationStatusValidator is a validator for the "validation_status" field. It is called by the builders before save.
	extractedfield.ValidationStatusValidator = extractedfieldDescValidationStatus.Validators[0].(func(string) error)
	// extractedfieldDescAuditPriority is the schema descriptor for audit_priority field.
	extractedfieldDescAuditPriority := extractedfieldFields[11].Descriptor()
	// extractedfield.DefaultAuditPriority holds the default value on creation for the audit_priority field.
	extractedfield.DefaultAuditPriority = extractedfieldDescAuditPriority.Default.(int)
	// extractedfield.AuditPriorityValidator is a validator for the "audit_priority" field. It is called by the builders before save.
	extractedfield.AuditPriorityValidator = func() func(int) error {
		validators := extractedfieldDescAuditPriority.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(audit_priority int) error {
			for _, fn := range fns {
				if err := fn(audit_priority); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractedfieldDescID is the schema descriptor for id field.
	extractedfieldDescID := extractedfieldFields[0].Descriptor()
	// extractedfield.DefaultID holds the default value on creation for the id field.
	extractedfield.DefaultID = extractedfieldDescID.Default.(func() uuid.UUID)
	extractionFields := schema.Extraction{}.Fields()
	_ = extractionFields
	// extractionDescStatus is the schema descriptor for status field.
	extractionDescStatus := extractionFields[3].Descriptor()
	// extraction.DefaultStatus holds the default value on creation for the status field.
	extraction.DefaultStatus = extractionDescStatus.Default.(string)
	// extraction.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	extraction.StatusValidator = extractionDescStatus.Validators[0].(func(string) error)
	// extractionDescStartedAt is the schema descriptor for started_at field.
	extractionDescStartedAt := extractionFields[6].Descriptor()
	// extraction.DefaultStartedAt holds the default value on creation for the started_at field.
	extraction.DefaultStartedAt = extractionDescStartedAt.Default.(func() time.Time)
	// extractionDescID is the schema descriptor for id field.
	extractionDescID := extractionFields[0].Descriptor()
	// extraction.DefaultID holds the default value on creation for the id field.
	extraction.DefaultID = extractionDescID.Default.(func() uuid.UUID)
	parserecordFields := schema.ParseRecord{}.Fields()
	_ = parserecordFields
	// parserecordDescCreatedAt is the schema descriptor for created_at field.
	parserecordDescCreatedAt := parserecordFields[4].Descriptor()
	// parserecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	parserecord.DefaultCreatedAt = parserecordDescCreatedAt.Default.(func() time.Time)
	// parserecordDescID is the schema descriptor for id field.
	parserecordDescID := parserecordFields[0].Descriptor()
	// parserecord.DefaultID holds the default value on creation for the id field.
	parserecord.DefaultID = parserecordDescID.Default.(func() uuid.UUID)
	physicalfileFields := schema.PhysicalFile{}.Fields()
	_ = physicalfileFields
	// physicalfileDescContentHash is the schema descriptor for content_hash field.
	physicalfileDescContentHash := physicalfileFields[1].Descriptor()
	// physicalfile.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	physicalfile.ContentHashValidator = physicalfileDescContentHash.Validators[0].(func([]byte) error)
	// physicalfileDescFileSize is the schema descriptor for file_size field.
	physicalfileDescFileSize := physicalfileFields[2].Descriptor()
	// physicalfile.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	physicalfile.FileSizeValidator = physicalfileDescFileSize.Validators[0].(func(int) error)
	// physicalfileDescStoragePath is the schema descriptor for storage_path field.
	physicalfileDescStoragePath := physicalfileFields[3].Descriptor()
	// physicalfile.StoragePathValidator is a validator for the "storage_path" field. It is called by the builders before save.
	physicalfile.StoragePathValidator = physicalfileDescStoragePath.Validators[0].(func(string) error)
	// physicalfileDescRefCount is the schema descriptor for ref_count field.
	physicalfileDescRefCount := physicalfileFields[4].Descriptor()
	// physicalfile.DefaultRefCount holds the default value on creation for the ref_count field.
	physicalfile.DefaultRefCount = physicalfileDescRefCount.Default.(int)
	// physicalfile.RefCountValidator is a validator for the "ref_count" field. It is called by the builders before save.
	physicalfile.RefCountValidator = physicalfileDescRefCount.Validators[0].(func(int) error)
	// physicalfileDescDiscoveryStatus is the schema descriptor for discovery_status field.
	physicalfileDescDiscoveryStatus := physicalfileFields[5].Descriptor()
	// physicalfile.DefaultDiscoveryStatus holds the default value on creation for the discovery_status field.
	physicalfile.DefaultDiscoveryStatus = physicalfileDescDiscoveryStatus.Default.(string)
	// physicalfile.DiscoveryStatusValidator is a validator for the "discovery_status" field. It is called by the builders before save.
	physicalfile.DiscoveryStatusValidator = physicalfileDescDiscoveryStatus.Validators[0].(func(string) error)
	// physicalfileDescUploadedAt is the schema descriptor for uploaded_at field.
	physicalfileDescUploadedAt := physicalfileFields[7].Descriptor()
	// physicalfile.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	physicalfile.DefaultUploadedAt = physicalfileDescUploadedAt.Default.(func() time.Time)
	// physicalfileDescID is the schema descriptor for id field.
	physicalfileDescID := physicalfileFields[0].Descriptor()
	// physicalfile.DefaultID holds the default value on creation for the id field.
	physicalfile.DefaultID = physicalfileDescID.Default.(func() uuid.UUID)
	templateFields := schema.Template{}.Fields()
	_ = templateFields
	// templateDescName is the schema descriptor for name field.
	templateDescName := templateFields[1].Descriptor()
	// template.NameValidator is a validator for the "name" field. It is called by the builders before save.
	template.NameValidator = templateDescName.Validators[0].(func(string) error)
	// templateDescCategory is the schema descriptor for category field.
	templateDescCategory := templateFields[2].Descriptor()
	// template.DefaultCategory holds the default value on creation for the category field.
	template.DefaultCategory = templateDescCategory.Default.(string)
	// template.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	template.CategoryValidator = templateDescCategory.Validators[0].(func(string) error)
	// templateDescVersion is the schema descriptor for version field.
	templateDescVersion := templateFields[3].Descriptor()
	// template.DefaultVersion holds the default value on creation for the version field.
	template.DefaultVersion = templateDescVersion.Default.(int)
	// template.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	template.VersionValidator = templateDescVersion.Validators[0].(func(int) error)
	// templateDescCreatedAt is the schema descriptor for created_at field.
	templateDescCreatedAt := templateFields[5].Descriptor()
	// template.DefaultCreatedAt holds the default value on creation for the created_at field.
	template.DefaultCreatedAt = templateDescCreatedAt.Default.(func() time.Time)
	// templateDescUpdatedAt is the schema descriptor for updated_at field.
	templateDescUpdatedAt := templateFields[6].Descriptor()
	// template.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	template.DefaultUpdatedAt = templateDescUpdatedAt.Default.(func() time.Time)
	// template.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	template.UpdateDefaultUpdatedAt = templateDescUpdatedAt.UpdateDefault.(func() time.Time)
	// templateDescID is the schema descriptor for id field.
	templateDescID := templateFields[0].Descriptor()
	// template.DefaultID holds the default value on creation for the id field.
	template.DefaultID = templateDescID.Default.(func() uuid.UUID)
}
