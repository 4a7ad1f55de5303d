// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExtractedFieldsColumns holds the columns for the "extracted_fields" table.
	ExtractedFieldsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "value", Type: field.TypeJSON, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat32, Default: 0},
		{Name: "source_page", Type: field.TypeInt, Nullable: true},
		{Name: "source_bbox", Type: field.TypeJSON, Nullable: true},
		{Name: "source_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "verified", Type: field.TypeBool, Default: false},
		{Name: "validation_status", Type: field.TypeString, Default: "valid"},
		{Name: "validation_errors", Type: field.TypeJSON, Nullable: true},
		{Name: "audit_priority", Type: field.TypeInt, Default: 3},
		{Name: "extraction_id", Type: field.TypeUUID},
	}
	// ExtractedFieldsTable holds the schema information for the "extracted_fields" table.
	ExtractedFieldsTable = &schema.Table{
		Name:       "extracted_fields",
		Columns:    ExtractedFieldsColumns,
		PrimaryKey: []*schema.Column{ExtractedFieldsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extracted_fields_extractions_fields",
				Columns:    []*schema.Column{ExtractedFieldsColumns[11]},
				RefColumns: []*schema.Column{ExtractionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractedfield_extraction_id_name",
				Unique:  true,
				Columns: []*schema.Column{ExtractedFieldsColumns[11], ExtractedFieldsColumns[1]},
			},
			{
				Name:    "extractedfield_verified_audit_priority",
				Unique:  false,
				Columns: []*schema.Column{ExtractedFieldsColumns[7], ExtractedFieldsColumns[10]},
			},
		},
	}
	// ExtractionsColumns holds the columns for the "extractions" table.
	ExtractionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString, Default: "UPLOADED"},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "organized_path", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "file_id", Type: field.TypeUUID},
		{Name: "template_id", Type: field.TypeUUID},
	}
	// ExtractionsTable holds the schema information for the "extractions" table.
	ExtractionsTable = &schema.Table{
		Name:       "extractions",
		Columns:    ExtractionsColumns,
		PrimaryKey: []*schema.Column{ExtractionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extractions_physical_files_extractions",
				Columns:    []*schema.Column{ExtractionsColumns[6]},
				RefColumns: []*schema.Column{PhysicalFilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "extractions_templates_extractions",
				Columns:    []*schema.Column{ExtractionsColumns[7]},
				RefColumns: []*schema.Column{TemplatesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extraction_file_id_template_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractionsColumns[6], ExtractionsColumns[7]},
			},
			{
				Name:    "extraction_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractionsColumns[1], ExtractionsColumns[4]},
			},
		},
	}
	// ParseRecordsColumns holds the columns for the "parse_records" table.
	ParseRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "job_token", Type: field.TypeString, Nullable: true},
		{Name: "blocks", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "file_id", Type: field.TypeUUID, Unique: true},
	}
	// ParseRecordsTable holds the schema information for the "parse_records" table.
	ParseRecordsTable = &schema.Table{
		Name:       "parse_records",
		Columns:    ParseRecordsColumns,
		PrimaryKey: []*schema.Column{ParseRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "parse_records_physical_files_parse_record",
				Columns:    []*schema.Column{ParseRecordsColumns[4]},
				RefColumns: []*schema.Column{PhysicalFilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "parserecord_file_id",
				Unique:  true,
				Columns: []*schema.Column{ParseRecordsColumns[4]},
			},
		},
	}
	// PhysicalFilesColumns holds the columns for the "physical_files" table.
	PhysicalFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "content_hash", Type: field.TypeBytes, Unique: true, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "storage_path", Type: field.TypeString},
		{Name: "ref_count", Type: field.TypeInt, Default: 1},
		{Name: "discovery_status", Type: field.TypeString, Default: "UPLOADED"},
		{Name: "matched_template_id", Type: field.TypeUUID, Nullable: true},
		{Name: "uploaded_at", Type: field.TypeTime},
	}
	// PhysicalFilesTable holds the schema information for the "physical_files" table.
	PhysicalFilesTable = &schema.Table{
		Name:       "physical_files",
		Columns:    PhysicalFilesColumns,
		PrimaryKey: []*schema.Column{PhysicalFilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "physicalfile_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{PhysicalFilesColumns[7]},
			},
		},
	}
	// TemplatesColumns holds the columns for the "templates" table.
	TemplatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "category", Type: field.TypeString, Default: "Generic"},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "fields", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TemplatesTable holds the schema information for the "templates" table.
	TemplatesTable = &schema.Table{
		Name:       "templates",
		Columns:    TemplatesColumns,
		PrimaryKey: []*schema.Column{TemplatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "template_name_version",
				Unique:  true,
				Columns: []*schema.Column{TemplatesColumns[1], TemplatesColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExtractedFieldsTable,
		ExtractionsTable,
		ParseRecordsTable,
		PhysicalFilesTable,
		TemplatesTable,
	}
)

func init() {
	ExtractedFieldsTable.ForeignKeys[0].RefTable = ExtractionsTable
	ExtractedFieldsTable.Annotation = &entsql.Annotation{
		Table: "extracted_fields",
	}
	ExtractionsTable.ForeignKeys[0].RefTable = PhysicalFilesTable
	ExtractionsTable.ForeignKeys[1].RefTable = TemplatesTable
	ExtractionsTable.Annotation = &entsql.Annotation{
		Table: "extractions",
	}
	ParseRecordsTable.ForeignKeys[0].RefTable = PhysicalFilesTable
	ParseRecordsTable.Annotation = &entsql.Annotation{
		Table: "parse_records",
	}
	PhysicalFilesTable.Annotation = &entsql.Annotation{
		Table: "physical_files",
	}
	TemplatesTable.Annotation = &entsql.Annotation{
		Table: "templates",
	}
}
