package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/nnamdi-udeh/dealdesk/constants"
	"github.com/nnamdi-udeh/dealdesk/db/ent/schema/utils"
)

// Document is one uploaded diligence file plus the pipeline's derived
// outputs. Derived fields are write-once per run and cleared as a block
// on reprocessing.
type Document struct {
	ent.Schema
}

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("venture_id", uuid.UUID{}),
		field.String("filename").NotEmpty(),
		field.String("original_filename").NotEmpty(),
		field.String("file_type").NotEmpty(), // declared MIME type
		field.String("format").NotEmpty().
			Validate(utils.EnumValidator(constants.DocumentFormats...)),
		field.String("source_path").NotEmpty(),
		field.Int("file_size").NonNegative(),
		field.String("processing_status").
			Default(string(constants.StatusPending)).
			Validate(utils.EnumValidator(constants.ProcessingStatuses...)),
		field.Time("processing_started_at").Optional().Nillable(),
		field.Time("processing_completed_at").Optional().Nillable(),
		field.String("processing_error").Optional().Nillable(),
		// stage outputs, serialized
		field.JSON("extracted_content", json.RawMessage{}).Optional(),
		field.JSON("structured_data", json.RawMessage{}).Optional(),
		field.JSON("entities", json.RawMessage{}).Optional(),
		field.JSON("financial_data", json.RawMessage{}).Optional(),
		field.JSON("quality_metrics", json.RawMessage{}).Optional(),
		// derived scalars
		field.String("document_type").Optional().Nillable(),
		field.Float("confidence_score").Optional().Nillable(),
		field.Float("text_quality").Optional().Nillable(),
		field.Float("data_completeness").Optional().Nillable(),
		field.String("full_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("venture", Venture.Type).
			Ref("documents").
			Field("venture_id").
			Unique().
			Required(),
		edge.To("evaluations", Evaluation.Type),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("venture_id", "processing_status", "created_at"),
		index.Fields("venture_id", "created_at"),
	}
}
