package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/oakfield-labs/docuflow/constants"
	"github.com/oakfield-labs/docuflow/utils"
)

type Extraction struct{ ent.Schema }

func (Extraction) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extractions"},
	}
}

func (Extraction) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("file_id", uuid.UUID{}),
		field.UUID("template_id", uuid.UUID{}),
		field.String("status").
			Default(string(constants.ExtractionUploaded)).
			Validate(utils.EnumValidator(
				string(constants.ExtractionUploaded),
				string(constants.ExtractionParsing),
				string(constants.ExtractionParsed),
				string(constants.ExtractionExtracting),
				string(constants.ExtractionCompleted),
				string(constants.ExtractionVerified),
				string(constants.ExtractionError),
				string(constants.ExtractionCancelled),
			)),
		field.String("error_message").Optional().Nillable(),
		field.String("organized_path").Optional().Nillable(),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
	}
}

func (Extraction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("file", PhysicalFile.Type).
			Ref("extractions").
			Field("file_id").
			Unique().
			Required(),
		edge.From("template", Template.Type).
			Ref("extractions").
			Field("template_id").
			Unique().
			Required(),
		edge.To("fields", ExtractedField.Type),
	}
}

func (Extraction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("file_id", "template_id"),
		index.Fields("status", "started_at"),
	}
}
