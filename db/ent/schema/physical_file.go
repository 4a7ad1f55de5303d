package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/oakfield-labs/docuflow/constants"
	"github.com/oakfield-labs/docuflow/utils"
)

type PhysicalFile struct {
	ent.Schema
}

func (PhysicalFile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "physical_files"},
	}
}

func (PhysicalFile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.Bytes("content_hash").NotEmpty().
			Unique().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.Int("file_size").NonNegative(),
		field.String("storage_path").NotEmpty(),
		field.Int("ref_count").Default(1).NonNegative(),
		field.String("discovery_status").
			Default(string(constants.DocumentUploaded)).
			Validate(utils.EnumValidator(
				string(constants.DocumentUploaded),
				string(constants.DocumentAnalyzing),
				string(constants.DocumentTemplateMatched),
				string(constants.DocumentTemplateNeeded),
			)),
		field.UUID("matched_template_id", uuid.UUID{}).Optional().Nillable(),
		field.Time("uploaded_at").Default(time.Now),
	}
}

func (PhysicalFile) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE file -> at most ONE parse record
		edge.To("parse_record", ParseRecord.Type).Unique(),
		// ONE file -> MANY extractions
		edge.To("extractions", Extraction.Type),
	}
}

func (PhysicalFile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("uploaded_at"),
	}
}
