package schema

import (
	"encoding/json"
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

type Template struct{ ent.Schema }

func (Template) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "templates"},
	}
}

func (Template) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty(),
		field.String("category").
			Default(string(constants.CategoryGeneric)).
			Validate(utils.EnumValidator(constants.CategoryNames()...)),
		// bumped on every field-definition change; validation model caches
		// key on (id, version)
		field.Int("version").Default(1).Positive(),
		field.JSON("fields", json.RawMessage{}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Template) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("extractions", Extraction.Type),
	}
}

func (Template) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name", "version").Unique(),
	}
}
