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
)

// Venture is the stub owner aggregate for uploaded diligence documents.
// The org/permission model lives in a collaborator service; only the
// fields the pipeline and listings need are kept here.
type Venture struct {
	ent.Schema
}

func (Venture) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "ventures"},
	}
}

func (Venture) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty(),
		field.String("industry").Optional().Nillable(),
		field.String("stage").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Venture) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("documents", Document.Type),
	}
}

func (Venture) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
	}
}
