// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "original_filename", Type: field.TypeString},
		{Name: "file_type", Type: field.TypeString},
		{Name: "format", Type: field.TypeString},
		{Name: "source_path", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "processing_status", Type: field.TypeString, Default: "PENDING"},
		{Name: "processing_started_at", Type: field.TypeTime, Nullable: true},
		{Name: "processing_completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "processing_error", Type: field.TypeString, Nullable: true},
		{Name: "extracted_content", Type: field.TypeJSON, Nullable: true},
		{Name: "structured_data", Type: field.TypeJSON, Nullable: true},
		{Name: "entities", Type: field.TypeJSON, Nullable: true},
		{Name: "financial_data", Type: field.TypeJSON, Nullable: true},
		{Name: "quality_metrics", Type: field.TypeJSON, Nullable: true},
		{Name: "document_type", Type: field.TypeString, Nullable: true},
		{Name: "confidence_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "text_quality", Type: field.TypeFloat64, Nullable: true},
		{Name: "data_completeness", Type: field.TypeFloat64, Nullable: true},
		{Name: "full_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "venture_id", Type: field.TypeUUID},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "documents_ventures_documents",
				Columns:    []*schema.Column{DocumentsColumns[22]},
				RefColumns: []*schema.Column{VenturesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "document_venture_id_processing_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[22], DocumentsColumns[7], DocumentsColumns[21]},
			},
			{
				Name:    "document_venture_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[22], DocumentsColumns[21]},
			},
		},
	}
	// EvaluationsColumns holds the columns for the "evaluations" table.
	EvaluationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "financial_score", Type: field.TypeFloat64},
		{Name: "market_score", Type: field.TypeFloat64},
		{Name: "team_score", Type: field.TypeFloat64},
		{Name: "product_score", Type: field.TypeFloat64},
		{Name: "risk_score", Type: field.TypeFloat64},
		{Name: "overall_score", Type: field.TypeFloat64},
		{Name: "confidence_lower", Type: field.TypeFloat64},
		{Name: "confidence_upper", Type: field.TypeFloat64},
		{Name: "recommendation", Type: field.TypeString},
		{Name: "reasoning", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// EvaluationsTable holds the schema information for the "evaluations" table.
	EvaluationsTable = &schema.Table{
		Name:       "evaluations",
		Columns:    EvaluationsColumns,
		PrimaryKey: []*schema.Column{EvaluationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "evaluations_documents_evaluations",
				Columns:    []*schema.Column{EvaluationsColumns[12]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "evaluation_document_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{EvaluationsColumns[12], EvaluationsColumns[11]},
			},
		},
	}
	// VenturesColumns holds the columns for the "ventures" table.
	VenturesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "industry", Type: field.TypeString, Nullable: true},
		{Name: "stage", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// VenturesTable holds the schema information for the "ventures" table.
	VenturesTable = &schema.Table{
		Name:       "ventures",
		Columns:    VenturesColumns,
		PrimaryKey: []*schema.Column{VenturesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "venture_name",
				Unique:  false,
				Columns: []*schema.Column{VenturesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentsTable,
		EvaluationsTable,
		VenturesTable,
	}
)

func init() {
	DocumentsTable.ForeignKeys[0].RefTable = VenturesTable
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	EvaluationsTable.ForeignKeys[0].RefTable = DocumentsTable
	EvaluationsTable.Annotation = &entsql.Annotation{
		Table: "evaluations",
	}
	VenturesTable.Annotation = &entsql.Annotation{
		Table: "ventures",
	}
}
