package server

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/nnamdi-udeh/dealdesk/constants"
	dealdeskpb "github.com/nnamdi-udeh/dealdesk/gen/proto/dealdesk/v1"
	"github.com/nnamdi-udeh/dealdesk/internal/async"
	"github.com/nnamdi-udeh/dealdesk/internal/entity"
	"github.com/nnamdi-udeh/dealdesk/internal/repository"
)

type memVentures struct {
	ventures map[uuid.UUID]*entity.Venture
}

func (m *memVentures) CreateVenture(_ context.Context, req *repository.CreateVentureRequest) (*entity.Venture, error) {
	v := &entity.Venture{ID: uuid.New(), Name: req.Name}
	m.ventures[v.ID] = v
	return v, nil
}

func (m *memVentures) GetVenture(_ context.Context, id uuid.UUID) (*entity.Venture, error) {
	return m.ventures[id], nil
}

func (m *memVentures) ListVentures(_ context.Context) ([]*entity.Venture, error) {
	out := []*entity.Venture{}
	for _, v := range m.ventures {
		out = append(out, v)
	}
	return out, nil
}

type memDocuments struct {
	docs    map[uuid.UUID]*entity.Document
	created []*repository.CreateDocumentRequest
}

func (m *memDocuments) CreateDocument(_ context.Context, req *repository.CreateDocumentRequest) (*entity.Document, error) {
	m.created = append(m.created, req)
	d := &entity.Document{
		ID:               uuid.New(),
		VentureID:        req.VentureID,
		Filename:         req.Filename,
		OriginalFilename: req.OriginalFilename,
		FileType:         req.FileType,
		Format:           string(req.Format),
		SourcePath:       req.SourcePath,
		FileSize:         req.FileSize,
		ProcessingStatus: string(constants.StatusPending),
	}
	m.docs[d.ID] = d
	return d, nil
}

func (m *memDocuments) GetDocument(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	return m.docs[id], nil
}

func (m *memDocuments) ListDocuments(_ context.Context, ventureID uuid.UUID, status string) ([]*entity.Document, error) {
	out := []*entity.Document{}
	for _, d := range m.docs {
		if d.VentureID == ventureID && (status == "" || d.ProcessingStatus == status) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *memDocuments) MarkProcessing(_ context.Context, _ uuid.UUID) error { return nil }

func (m *memDocuments) MarkCompleted(_ context.Context, _ uuid.UUID, _ *repository.CompleteDocumentRequest) error {
	return nil
}

func (m *memDocuments) MarkFailed(_ context.Context, _ uuid.UUID, _ string) error { return nil }

func (m *memDocuments) ResetForReprocessing(_ context.Context, _ uuid.UUID) error { return nil }

type recordingQueue struct {
	jobs []async.Job
}

func (q *recordingQueue) Enqueue(_ context.Context, job async.Job) error {
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *recordingQueue) Shutdown(_ context.Context) {}

func newDocumentServiceUnderTest(t *testing.T) (*DocumentService, *memVentures, *memDocuments, *recordingQueue, uuid.UUID) {
	t.Helper()
	ventures := &memVentures{ventures: map[uuid.UUID]*entity.Venture{}}
	documents := &memDocuments{docs: map[uuid.UUID]*entity.Document{}}
	queue := &recordingQueue{}
	v, _ := ventures.CreateVenture(context.Background(), &repository.CreateVentureRequest{Name: "Acme"})
	svc := NewDocumentService(documents, ventures, queue, slog.Default())
	return svc, ventures, documents, queue, v.ID
}

func TestRegisterDocument(t *testing.T) {
	svc, _, documents, queue, ventureID := newDocumentServiceUnderTest(t)

	path := filepath.Join(t.TempDir(), "deck.pptx")
	if err := os.WriteFile(path, []byte("stub"), 0o644); err != nil {
		t.Fatal(err)
	}

	resp, err := svc.RegisterDocument(context.Background(), &dealdeskpb.RegisterDocumentRequest{
		VentureId:  ventureID.String(),
		SourcePath: path,
	})
	if err != nil {
		t.Fatalf("RegisterDocument: %v", err)
	}

	if !resp.GetQueued() {
		t.Error("response should confirm the job was queued")
	}
	if got := resp.GetDocument().GetProcessingStatus(); got != string(constants.StatusPending) {
		t.Errorf("registered status = %q, want PENDING", got)
	}

	if len(documents.created) != 1 {
		t.Fatalf("created %d documents, want 1", len(documents.created))
	}
	created := documents.created[0]
	// MIME inferred from the extension when file_type is omitted
	if created.Format != constants.SLIDES {
		t.Errorf("format = %q, want SLIDES", created.Format)
	}
	if created.OriginalFilename != "deck.pptx" {
		t.Errorf("original filename = %q, want the base name fallback", created.OriginalFilename)
	}

	if len(queue.jobs) != 1 || queue.jobs[0].Reprocess {
		t.Errorf("queued jobs = %+v, want one non-reprocess job", queue.jobs)
	}
}

func TestRegisterDocumentValidation(t *testing.T) {
	svc, _, _, queue, ventureID := newDocumentServiceUnderTest(t)
	ctx := context.Background()

	txtPath := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(txtPath, []byte("text"), 0o644); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name string
		req  *dealdeskpb.RegisterDocumentRequest
	}{
		{"bad venture id", &dealdeskpb.RegisterDocumentRequest{VentureId: "not-a-uuid", SourcePath: txtPath}},
		{"missing source path", &dealdeskpb.RegisterDocumentRequest{VentureId: ventureID.String()}},
		{"missing file", &dealdeskpb.RegisterDocumentRequest{VentureId: ventureID.String(), SourcePath: "/nope/deck.pdf"}},
		{"unsupported type", &dealdeskpb.RegisterDocumentRequest{VentureId: ventureID.String(), SourcePath: txtPath}},
	}
	for _, tc := range cases {
		_, err := svc.RegisterDocument(ctx, tc.req)
		if status.Code(err) != codes.InvalidArgument {
			t.Errorf("%s: code = %v, want InvalidArgument", tc.name, status.Code(err))
		}
	}
	if len(queue.jobs) != 0 {
		t.Errorf("rejected requests queued %d jobs, want 0", len(queue.jobs))
	}
}

func TestListDocumentsRejectsUnknownStatus(t *testing.T) {
	svc, _, _, _, ventureID := newDocumentServiceUnderTest(t)

	_, err := svc.ListDocuments(context.Background(), &dealdeskpb.ListDocumentsRequest{
		VentureId:        ventureID.String(),
		ProcessingStatus: "DONE",
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("code = %v, want InvalidArgument", status.Code(err))
	}
}

func TestGetDocumentContentRequiresCompleted(t *testing.T) {
	svc, _, documents, _, ventureID := newDocumentServiceUnderTest(t)
	ctx := context.Background()

	doc, _ := documents.CreateDocument(ctx, &repository.CreateDocumentRequest{
		VentureID: ventureID, Filename: "deck.pptx", FileType: "application/vnd.ms-powerpoint",
	})

	_, err := svc.GetDocumentContent(ctx, &dealdeskpb.GetDocumentContentRequest{DocumentId: doc.ID.String()})
	if status.Code(err) != codes.FailedPrecondition {
		t.Errorf("code = %v, want FailedPrecondition for a PENDING document", status.Code(err))
	}

	fullText := "deck text"
	doc.ProcessingStatus = string(constants.StatusCompleted)
	doc.FullText = &fullText
	doc.StructuredData = []byte(`{"confidence_score":0.3}`)

	resp, err := svc.GetDocumentContent(ctx, &dealdeskpb.GetDocumentContentRequest{DocumentId: doc.ID.String()})
	if err != nil {
		t.Fatalf("GetDocumentContent: %v", err)
	}
	if resp.GetContent().GetFullText() != "deck text" {
		t.Errorf("full text = %q", resp.GetContent().GetFullText())
	}
	if len(resp.GetContent().GetStructuredData()) == 0 {
		t.Error("structured data should be returned")
	}
}

func TestReprocessDocument(t *testing.T) {
	svc, _, documents, queue, ventureID := newDocumentServiceUnderTest(t)
	ctx := context.Background()

	doc, _ := documents.CreateDocument(ctx, &repository.CreateDocumentRequest{
		VentureID: ventureID, Filename: "deck.pptx", FileType: "application/vnd.ms-powerpoint",
	})

	doc.ProcessingStatus = string(constants.StatusProcessing)
	_, err := svc.ReprocessDocument(ctx, &dealdeskpb.ReprocessDocumentRequest{DocumentId: doc.ID.String()})
	if status.Code(err) != codes.FailedPrecondition {
		t.Errorf("code = %v, want FailedPrecondition mid-run", status.Code(err))
	}

	doc.ProcessingStatus = string(constants.StatusFailed)
	resp, err := svc.ReprocessDocument(ctx, &dealdeskpb.ReprocessDocumentRequest{DocumentId: doc.ID.String()})
	if err != nil {
		t.Fatalf("ReprocessDocument: %v", err)
	}
	if !resp.GetQueued() {
		t.Error("response should confirm the job was queued")
	}
	if len(queue.jobs) != 1 || !queue.jobs[0].Reprocess {
		t.Errorf("queued jobs = %+v, want one reprocess job", queue.jobs)
	}
}
