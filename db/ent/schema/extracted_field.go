package schema

import (
	"encoding/json"

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

type ExtractedField struct{ ent.Schema }

func (ExtractedField) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extracted_fields"},
	}
}

func (ExtractedField) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("extraction_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		field.JSON("value", json.RawMessage{}).Optional(),
		field.Float32("confidence").Default(0),
		field.Int("source_page").Optional().Nillable(),
		field.JSON("source_bbox", json.RawMessage{}).Optional(),
		field.String("source_text").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Bool("verified").Default(false),
		field.String("validation_status").
			Default(string(constants.ValidationValid)).
			Validate(utils.EnumValidator(
				string(constants.ValidationValid),
				string(constants.ValidationWarning),
				string(constants.ValidationError),
			)),
		field.JSON("validation_errors", []string{}).Optional(),
		field.Int("audit_priority").Default(3).Min(0).Max(3),
	}
}

func (ExtractedField) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("extraction", Extraction.Type).
			Ref("fields").
			Field("extraction_id").
			Unique().
			Required(),
	}
}

func (ExtractedField) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("extraction_id", "name").Unique(),
		index.Fields("verified", "audit_priority"),
	}
}
