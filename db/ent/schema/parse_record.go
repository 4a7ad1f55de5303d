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
)

type ParseRecord struct{ ent.Schema }

func (ParseRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "parse_records"},
	}
}

func (ParseRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK; unique enforces "at most one parse record per file"
		field.UUID("file_id", uuid.UUID{}).Unique(),
		field.String("job_token").Optional(),
		field.JSON("blocks", json.RawMessage{}),
		field.Time("created_at").Default(time.Now),
	}
}

func (ParseRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("file", PhysicalFile.Type).
			Ref("parse_record").
			Field("file_id").
			Unique().
			Required(),
	}
}

func (ParseRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("file_id").Unique(),
	}
}
