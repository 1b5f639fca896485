package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/nnamdi-udeh/dealdesk/constants"
	"github.com/nnamdi-udeh/dealdesk/gen/ent"
	"github.com/nnamdi-udeh/dealdesk/internal/analyze"

	_ "modernc.org/sqlite"
)

// openTestClient opens a fresh in-memory SQLite database per test and
// runs the schema migration against it.
func openTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name())
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatal(err)
	}
	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.SQLite, db)))
	if err := client.Schema.Create(context.Background()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func seedVentureAndDocument(t *testing.T, client *ent.Client) (VentureRepository, DocumentRepository, uuid.UUID, uuid.UUID) {
	t.Helper()
	logger := slog.Default()
	ventures := NewVentureRepository(client, logger)
	documents := NewDocumentRepository(client, logger)

	v, err := ventures.CreateVenture(context.Background(), &CreateVentureRequest{
		Name:     "Acme Robotics",
		Industry: "robotics",
		Stage:    "seed",
	})
	if err != nil {
		t.Fatal(err)
	}

	d, err := documents.CreateDocument(context.Background(), &CreateDocumentRequest{
		VentureID:        v.ID,
		Filename:         "deck.pptx",
		OriginalFilename: "Acme Deck.pptx",
		FileType:         "application/vnd.openxmlformats-officedocument.presentationml.presentation",
		Format:           constants.SLIDES,
		SourcePath:       "/data/deck.pptx",
		FileSize:         1024,
	})
	if err != nil {
		t.Fatal(err)
	}
	return ventures, documents, v.ID, d.ID
}

func validCompletion(t *testing.T) *CompleteDocumentRequest {
	t.Helper()
	analysis, err := json.Marshal(analyze.EmptyResult())
	if err != nil {
		t.Fatal(err)
	}
	return &CompleteDocumentRequest{
		ExtractedContent: json.RawMessage(`{}`),
		StructuredData:   analysis,
		Entities:         json.RawMessage(`{}`),
		FinancialData:    json.RawMessage(`{}`),
		QualityMetrics:   json.RawMessage(`{}`),
		DocumentType:     constants.DocTypeGeneral,
		ConfidenceScore:  0.3,
		TextQuality:      0.8,
		DataCompleteness: 0.5,
		FullText:         "deck text",
	}
}

func TestVentureRoundTrip(t *testing.T) {
	client := openTestClient(t)
	ventures, _, ventureID, _ := seedVentureAndDocument(t, client)
	ctx := context.Background()

	v, err := ventures.GetVenture(ctx, ventureID)
	if err != nil {
		t.Fatal(err)
	}
	if v.Name != "Acme Robotics" {
		t.Errorf("name = %q", v.Name)
	}

	all, err := ventures.ListVentures(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 {
		t.Errorf("ventures = %d, want 1", len(all))
	}
}

func TestDocumentLifecycle(t *testing.T) {
	client := openTestClient(t)
	_, documents, ventureID, documentID := seedVentureAndDocument(t, client)
	ctx := context.Background()

	doc, err := documents.GetDocument(ctx, documentID)
	if err != nil {
		t.Fatal(err)
	}
	if doc.ProcessingStatus != string(constants.StatusPending) {
		t.Errorf("fresh document status = %q, want PENDING", doc.ProcessingStatus)
	}

	if err := documents.MarkProcessing(ctx, documentID); err != nil {
		t.Fatal(err)
	}
	doc, _ = documents.GetDocument(ctx, documentID)
	if doc.ProcessingStatus != string(constants.StatusProcessing) {
		t.Errorf("status = %q, want PROCESSING", doc.ProcessingStatus)
	}
	if doc.ProcessingStartedAt == nil {
		t.Error("processing start time should be set")
	}

	if err := documents.MarkCompleted(ctx, documentID, validCompletion(t)); err != nil {
		t.Fatal(err)
	}
	doc, _ = documents.GetDocument(ctx, documentID)
	if doc.ProcessingStatus != string(constants.StatusCompleted) {
		t.Errorf("status = %q, want COMPLETED", doc.ProcessingStatus)
	}
	if doc.DocumentType == nil || *doc.DocumentType != constants.DocTypeGeneral {
		t.Error("document type should be persisted")
	}
	if doc.StructuredData == nil {
		t.Error("structured data should be persisted")
	}

	// listing by status only returns matching documents
	completed, err := documents.ListDocuments(ctx, ventureID, string(constants.StatusCompleted))
	if err != nil {
		t.Fatal(err)
	}
	if len(completed) != 1 {
		t.Errorf("completed documents = %d, want 1", len(completed))
	}
	pending, err := documents.ListDocuments(ctx, ventureID, string(constants.StatusPending))
	if err != nil {
		t.Fatal(err)
	}
	if len(pending) != 0 {
		t.Errorf("pending documents = %d, want 0", len(pending))
	}
}

func TestMarkCompletedRejectsInvalidPayload(t *testing.T) {
	client := openTestClient(t)
	_, documents, _, documentID := seedVentureAndDocument(t, client)
	ctx := context.Background()

	req := validCompletion(t)
	req.StructuredData = json.RawMessage(`{"not": "an analysis"}`)
	if err := documents.MarkCompleted(ctx, documentID, req); err == nil {
		t.Fatal("payload failing the schema must not be persisted")
	}

	doc, err := documents.GetDocument(ctx, documentID)
	if err != nil {
		t.Fatal(err)
	}
	if doc.ProcessingStatus == string(constants.StatusCompleted) {
		t.Error("document must not read completed after a rejected persist")
	}
}

func TestMarkFailedRecordsError(t *testing.T) {
	client := openTestClient(t)
	_, documents, _, documentID := seedVentureAndDocument(t, client)
	ctx := context.Background()

	if err := documents.MarkFailed(ctx, documentID, "extraction: open zip"); err != nil {
		t.Fatal(err)
	}
	doc, _ := documents.GetDocument(ctx, documentID)
	if doc.ProcessingStatus != string(constants.StatusFailed) {
		t.Errorf("status = %q, want FAILED", doc.ProcessingStatus)
	}
	if doc.ProcessingError == nil || *doc.ProcessingError != "extraction: open zip" {
		t.Error("failure message should be recorded")
	}
}

func TestResetForReprocessingClearsDerivedFields(t *testing.T) {
	client := openTestClient(t)
	_, documents, _, documentID := seedVentureAndDocument(t, client)
	ctx := context.Background()

	if err := documents.MarkProcessing(ctx, documentID); err != nil {
		t.Fatal(err)
	}
	if err := documents.MarkCompleted(ctx, documentID, validCompletion(t)); err != nil {
		t.Fatal(err)
	}

	if err := documents.ResetForReprocessing(ctx, documentID); err != nil {
		t.Fatal(err)
	}
	doc, err := documents.GetDocument(ctx, documentID)
	if err != nil {
		t.Fatal(err)
	}
	if doc.ProcessingStatus != string(constants.StatusPending) {
		t.Errorf("status = %q, want PENDING after reset", doc.ProcessingStatus)
	}
	if doc.StructuredData != nil || doc.ExtractedContent != nil {
		t.Error("derived JSON fields should be cleared")
	}
	if doc.DocumentType != nil || doc.ConfidenceScore != nil || doc.FullText != nil {
		t.Error("derived scalar fields should be cleared")
	}
	if doc.ProcessingStartedAt != nil || doc.ProcessingCompletedAt != nil || doc.ProcessingError != nil {
		t.Error("processing timestamps and error should be cleared")
	}
}
