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
	"github.com/nnamdi-udeh/dealdesk/constants"
	"github.com/nnamdi-udeh/dealdesk/db/ent/schema/utils"
)

// Evaluation is the scoring engine's output for one pipeline run.
// Dimension scores are stored risk-adjusted, matching what the engine
// reports.
type Evaluation struct {
	ent.Schema
}

func (Evaluation) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "evaluations"},
	}
}

func (Evaluation) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("document_id", uuid.UUID{}),
		field.Float("financial_score"),
		field.Float("market_score"),
		field.Float("team_score"),
		field.Float("product_score"),
		field.Float("risk_score"),
		field.Float("overall_score"),
		field.Float("confidence_lower"),
		field.Float("confidence_upper"),
		field.String("recommendation").NotEmpty().
			Validate(utils.EnumValidator(constants.Recommendations...)),
		field.JSON("reasoning", json.RawMessage{}).Optional(),
		field.Time("created_at").Default(time.Now),
	}
}

func (Evaluation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("evaluations").
			Field("document_id").
			Unique().
			Required(),
	}
}

func (Evaluation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "created_at"),
	}
}
