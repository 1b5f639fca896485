// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: dealdesk/v1/dealdesk.proto

package dealdeskv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Venture struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Industry      string                 `protobuf:"bytes,3,opt,name=industry,proto3" json:"industry,omitempty"`
	Stage         string                 `protobuf:"bytes,4,opt,name=stage,proto3" json:"stage,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC3339
	UpdatedAt     string                 `protobuf:"bytes,6,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"` // RFC3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Venture) Reset() {
	*x = Venture{}
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Venture) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Venture) ProtoMessage() {}

func (x *Venture) ProtoReflect() protoreflect.Message {
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Venture.ProtoReflect.Descriptor instead.
func (*Venture) Descriptor() ([]byte, []int) {
	return file_dealdesk_v1_dealdesk_proto_rawDescGZIP(), []int{0}
}

func (x *Venture) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Venture) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Venture) GetIndustry() string {
	if x != nil {
		return x.Industry
	}
	return ""
}

func (x *Venture) GetStage() string {
	if x != nil {
		return x.Stage
	}
	return ""
}

func (x *Venture) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Venture) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Document struct {
	state                 protoimpl.MessageState `protogen:"open.v1"`
	Id                    string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	VentureId             string                 `protobuf:"bytes,2,opt,name=venture_id,json=ventureId,proto3" json:"venture_id,omitempty"`
	Filename              string                 `protobuf:"bytes,3,opt,name=filename,proto3" json:"filename,omitempty"`
	OriginalFilename      string                 `protobuf:"bytes,4,opt,name=original_filename,json=originalFilename,proto3" json:"original_filename,omitempty"`
	FileType              string                 `protobuf:"bytes,5,opt,name=file_type,json=fileType,proto3" json:"file_type,omitempty"` // MIME type
	Format                string                 `protobuf:"bytes,6,opt,name=format,proto3" json:"format,omitempty"`                     // PDF | WORD | SPREADSHEET | SLIDES
	SourcePath            string                 `protobuf:"bytes,7,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	FileSize              int64                  `protobuf:"varint,8,opt,name=file_size,json=fileSize,proto3" json:"file_size,omitempty"`
	ProcessingStatus      string                 `protobuf:"bytes,9,opt,name=processing_status,json=processingStatus,proto3" json:"processing_status,omitempty"`                   // PENDING | PROCESSING | COMPLETED | FAILED
	ProcessingStartedAt   string                 `protobuf:"bytes,10,opt,name=processing_started_at,json=processingStartedAt,proto3" json:"processing_started_at,omitempty"`       // RFC3339, empty until started
	ProcessingCompletedAt string                 `protobuf:"bytes,11,opt,name=processing_completed_at,json=processingCompletedAt,proto3" json:"processing_completed_at,omitempty"` // RFC3339, empty until finished
	ProcessingError       string                 `protobuf:"bytes,12,opt,name=processing_error,json=processingError,proto3" json:"processing_error,omitempty"`                     // set only when FAILED
	DocumentType          string                 `protobuf:"bytes,13,opt,name=document_type,json=documentType,proto3" json:"document_type,omitempty"`                              // classifier label, set when COMPLETED
	ConfidenceScore       float64                `protobuf:"fixed64,14,opt,name=confidence_score,json=confidenceScore,proto3" json:"confidence_score,omitempty"`
	TextQuality           float64                `protobuf:"fixed64,15,opt,name=text_quality,json=textQuality,proto3" json:"text_quality,omitempty"`
	DataCompleteness      float64                `protobuf:"fixed64,16,opt,name=data_completeness,json=dataCompleteness,proto3" json:"data_completeness,omitempty"`
	CreatedAt             string                 `protobuf:"bytes,17,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC3339
	unknownFields         protoimpl.UnknownFields
	sizeCache             protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_dealdesk_v1_dealdesk_proto_rawDescGZIP(), []int{1}
}

func (x *Document) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Document) GetVentureId() string {
	if x != nil {
		return x.VentureId
	}
	return ""
}

func (x *Document) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *Document) GetOriginalFilename() string {
	if x != nil {
		return x.OriginalFilename
	}
	return ""
}

func (x *Document) GetFileType() string {
	if x != nil {
		return x.FileType
	}
	return ""
}

func (x *Document) GetFormat() string {
	if x != nil {
		return x.Format
	}
	return ""
}

func (x *Document) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *Document) GetFileSize() int64 {
	if x != nil {
		return x.FileSize
	}
	return 0
}

func (x *Document) GetProcessingStatus() string {
	if x != nil {
		return x.ProcessingStatus
	}
	return ""
}

func (x *Document) GetProcessingStartedAt() string {
	if x != nil {
		return x.ProcessingStartedAt
	}
	return ""
}

func (x *Document) GetProcessingCompletedAt() string {
	if x != nil {
		return x.ProcessingCompletedAt
	}
	return ""
}

func (x *Document) GetProcessingError() string {
	if x != nil {
		return x.ProcessingError
	}
	return ""
}

func (x *Document) GetDocumentType() string {
	if x != nil {
		return x.DocumentType
	}
	return ""
}

func (x *Document) GetConfidenceScore() float64 {
	if x != nil {
		return x.ConfidenceScore
	}
	return 0
}

func (x *Document) GetTextQuality() float64 {
	if x != nil {
		return x.TextQuality
	}
	return 0
}

func (x *Document) GetDataCompleteness() float64 {
	if x != nil {
		return x.DataCompleteness
	}
	return 0
}

func (x *Document) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type DocumentContent struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	DocumentId string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	FullText   string                 `protobuf:"bytes,2,opt,name=full_text,json=fullText,proto3" json:"full_text,omitempty"`
	// serialized stage outputs, JSON
	ExtractedContent []byte `protobuf:"bytes,3,opt,name=extracted_content,json=extractedContent,proto3" json:"extracted_content,omitempty"`
	StructuredData   []byte `protobuf:"bytes,4,opt,name=structured_data,json=structuredData,proto3" json:"structured_data,omitempty"`
	Entities         []byte `protobuf:"bytes,5,opt,name=entities,proto3" json:"entities,omitempty"`
	FinancialData    []byte `protobuf:"bytes,6,opt,name=financial_data,json=financialData,proto3" json:"financial_data,omitempty"`
	QualityMetrics   []byte `protobuf:"bytes,7,opt,name=quality_metrics,json=qualityMetrics,proto3" json:"quality_metrics,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *DocumentContent) Reset() {
	*x = DocumentContent{}
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DocumentContent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DocumentContent) ProtoMessage() {}

func (x *DocumentContent) ProtoReflect() protoreflect.Message {
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DocumentContent.ProtoReflect.Descriptor instead.
func (*DocumentContent) Descriptor() ([]byte, []int) {
	return file_dealdesk_v1_dealdesk_proto_rawDescGZIP(), []int{2}
}

func (x *DocumentContent) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *DocumentContent) GetFullText() string {
	if x != nil {
		return x.FullText
	}
	return ""
}

func (x *DocumentContent) GetExtractedContent() []byte {
	if x != nil {
		return x.ExtractedContent
	}
	return nil
}

func (x *DocumentContent) GetStructuredData() []byte {
	if x != nil {
		return x.StructuredData
	}
	return nil
}

func (x *DocumentContent) GetEntities() []byte {
	if x != nil {
		return x.Entities
	}
	return nil
}

func (x *DocumentContent) GetFinancialData() []byte {
	if x != nil {
		return x.FinancialData
	}
	return nil
}

func (x *DocumentContent) GetQualityMetrics() []byte {
	if x != nil {
		return x.QualityMetrics
	}
	return nil
}

type Evaluation struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DocumentId      string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	FinancialScore  float64                `protobuf:"fixed64,3,opt,name=financial_score,json=financialScore,proto3" json:"financial_score,omitempty"`
	MarketScore     float64                `protobuf:"fixed64,4,opt,name=market_score,json=marketScore,proto3" json:"market_score,omitempty"`
	TeamScore       float64                `protobuf:"fixed64,5,opt,name=team_score,json=teamScore,proto3" json:"team_score,omitempty"`
	ProductScore    float64                `protobuf:"fixed64,6,opt,name=product_score,json=productScore,proto3" json:"product_score,omitempty"`
	RiskScore       float64                `protobuf:"fixed64,7,opt,name=risk_score,json=riskScore,proto3" json:"risk_score,omitempty"`
	OverallScore    float64                `protobuf:"fixed64,8,opt,name=overall_score,json=overallScore,proto3" json:"overall_score,omitempty"`
	ConfidenceLower float64                `protobuf:"fixed64,9,opt,name=confidence_lower,json=confidenceLower,proto3" json:"confidence_lower,omitempty"`
	ConfidenceUpper float64                `protobuf:"fixed64,10,opt,name=confidence_upper,json=confidenceUpper,proto3" json:"confidence_upper,omitempty"`
	Recommendation  string                 `protobuf:"bytes,11,opt,name=recommendation,proto3" json:"recommendation,omitempty"`        // strong_buy | buy | hold | pass
	Reasoning       []byte                 `protobuf:"bytes,12,opt,name=reasoning,proto3" json:"reasoning,omitempty"`                  // JSON
	CreatedAt       string                 `protobuf:"bytes,13,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC3339
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Evaluation) Reset() {
	*x = Evaluation{}
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Evaluation) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Evaluation) ProtoMessage() {}

func (x *Evaluation) ProtoReflect() protoreflect.Message {
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Evaluation.ProtoReflect.Descriptor instead.
func (*Evaluation) Descriptor() ([]byte, []int) {
	return file_dealdesk_v1_dealdesk_proto_rawDescGZIP(), []int{3}
}

func (x *Evaluation) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Evaluation) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *Evaluation) GetFinancialScore() float64 {
	if x != nil {
		return x.FinancialScore
	}
	return 0
}

func (x *Evaluation) GetMarketScore() float64 {
	if x != nil {
		return x.MarketScore
	}
	return 0
}

func (x *Evaluation) GetTeamScore() float64 {
	if x != nil {
		return x.TeamScore
	}
	return 0
}

func (x *Evaluation) GetProductScore() float64 {
	if x != nil {
		return x.ProductScore
	}
	return 0
}

func (x *Evaluation) GetRiskScore() float64 {
	if x != nil {
		return x.RiskScore
	}
	return 0
}

func (x *Evaluation) GetOverallScore() float64 {
	if x != nil {
		return x.OverallScore
	}
	return 0
}

func (x *Evaluation) GetConfidenceLower() float64 {
	if x != nil {
		return x.ConfidenceLower
	}
	return 0
}

func (x *Evaluation) GetConfidenceUpper() float64 {
	if x != nil {
		return x.ConfidenceUpper
	}
	return 0
}

func (x *Evaluation) GetRecommendation() string {
	if x != nil {
		return x.Recommendation
	}
	return ""
}

func (x *Evaluation) GetReasoning() []byte {
	if x != nil {
		return x.Reasoning
	}
	return nil
}

func (x *Evaluation) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type CreateVentureRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Industry      string                 `protobuf:"bytes,2,opt,name=industry,proto3" json:"industry,omitempty"`
	Stage         string                 `protobuf:"bytes,3,opt,name=stage,proto3" json:"stage,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateVentureRequest) Reset() {
	*x = CreateVentureRequest{}
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateVentureRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateVentureRequest) ProtoMessage() {}

func (x *CreateVentureRequest) ProtoReflect() protoreflect.Message {
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateVentureRequest.ProtoReflect.Descriptor instead.
func (*CreateVentureRequest) Descriptor() ([]byte, []int) {
	return file_dealdesk_v1_dealdesk_proto_rawDescGZIP(), []int{4}
}

func (x *CreateVentureRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateVentureRequest) GetIndustry() string {
	if x != nil {
		return x.Industry
	}
	return ""
}

func (x *CreateVentureRequest) GetStage() string {
	if x != nil {
		return x.Stage
	}
	return ""
}

type CreateVentureResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Venture       *Venture               `protobuf:"bytes,1,opt,name=venture,proto3" json:"venture,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateVentureResponse) Reset() {
	*x = CreateVentureResponse{}
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateVentureResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateVentureResponse) ProtoMessage() {}

func (x *CreateVentureResponse) ProtoReflect() protoreflect.Message {
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateVentureResponse.ProtoReflect.Descriptor instead.
func (*CreateVentureResponse) Descriptor() ([]byte, []int) {
	return file_dealdesk_v1_dealdesk_proto_rawDescGZIP(), []int{5}
}

func (x *CreateVentureResponse) GetVenture() *Venture {
	if x != nil {
		return x.Venture
	}
	return nil
}

type GetVentureRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	VentureId     string                 `protobuf:"bytes,1,opt,name=venture_id,json=ventureId,proto3" json:"venture_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetVentureRequest) Reset() {
	*x = GetVentureRequest{}
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetVentureRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetVentureRequest) ProtoMessage() {}

func (x *GetVentureRequest) ProtoReflect() protoreflect.Message {
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetVentureRequest.ProtoReflect.Descriptor instead.
func (*GetVentureRequest) Descriptor() ([]byte, []int) {
	return file_dealdesk_v1_dealdesk_proto_rawDescGZIP(), []int{6}
}

func (x *GetVentureRequest) GetVentureId() string {
	if x != nil {
		return x.VentureId
	}
	return ""
}

type GetVentureResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Venture       *Venture               `protobuf:"bytes,1,opt,name=venture,proto3" json:"venture,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetVentureResponse) Reset() {
	*x = GetVentureResponse{}
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetVentureResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetVentureResponse) ProtoMessage() {}

func (x *GetVentureResponse) ProtoReflect() protoreflect.Message {
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetVentureResponse.ProtoReflect.Descriptor instead.
func (*GetVentureResponse) Descriptor() ([]byte, []int) {
	return file_dealdesk_v1_dealdesk_proto_rawDescGZIP(), []int{7}
}

func (x *GetVentureResponse) GetVenture() *Venture {
	if x != nil {
		return x.Venture
	}
	return nil
}

type ListVenturesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListVenturesRequest) Reset() {
	*x = ListVenturesRequest{}
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListVenturesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListVenturesRequest) ProtoMessage() {}

func (x *ListVenturesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListVenturesRequest.ProtoReflect.Descriptor instead.
func (*ListVenturesRequest) Descriptor() ([]byte, []int) {
	return file_dealdesk_v1_dealdesk_proto_rawDescGZIP(), []int{8}
}

type ListVenturesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ventures      []*Venture             `protobuf:"bytes,1,rep,name=ventures,proto3" json:"ventures,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListVenturesResponse) Reset() {
	*x = ListVenturesResponse{}
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListVenturesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListVenturesResponse) ProtoMessage() {}

func (x *ListVenturesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListVenturesResponse.ProtoReflect.Descriptor instead.
func (*ListVenturesResponse) Descriptor() ([]byte, []int) {
	return file_dealdesk_v1_dealdesk_proto_rawDescGZIP(), []int{9}
}

func (x *ListVenturesResponse) GetVentures() []*Venture {
	if x != nil {
		return x.Ventures
	}
	return nil
}

type RegisterDocumentRequest struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	VentureId        string                 `protobuf:"bytes,1,opt,name=venture_id,json=ventureId,proto3" json:"venture_id,omitempty"`
	SourcePath       string                 `protobuf:"bytes,2,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	OriginalFilename string                 `protobuf:"bytes,3,opt,name=original_filename,json=originalFilename,proto3" json:"original_filename,omitempty"`
	// optional; derived from the filename extension when empty
	FileType      string `protobuf:"bytes,4,opt,name=file_type,json=fileType,proto3" json:"file_type,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegisterDocumentRequest) Reset() {
	*x = RegisterDocumentRequest{}
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterDocumentRequest) ProtoMessage() {}

func (x *RegisterDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegisterDocumentRequest.ProtoReflect.Descriptor instead.
func (*RegisterDocumentRequest) Descriptor() ([]byte, []int) {
	return file_dealdesk_v1_dealdesk_proto_rawDescGZIP(), []int{10}
}

func (x *RegisterDocumentRequest) GetVentureId() string {
	if x != nil {
		return x.VentureId
	}
	return ""
}

func (x *RegisterDocumentRequest) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *RegisterDocumentRequest) GetOriginalFilename() string {
	if x != nil {
		return x.OriginalFilename
	}
	return ""
}

func (x *RegisterDocumentRequest) GetFileType() string {
	if x != nil {
		return x.FileType
	}
	return ""
}

type RegisterDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	Queued        bool                   `protobuf:"varint,2,opt,name=queued,proto3" json:"queued,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegisterDocumentResponse) Reset() {
	*x = RegisterDocumentResponse{}
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterDocumentResponse) ProtoMessage() {}

func (x *RegisterDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegisterDocumentResponse.ProtoReflect.Descriptor instead.
func (*RegisterDocumentResponse) Descriptor() ([]byte, []int) {
	return file_dealdesk_v1_dealdesk_proto_rawDescGZIP(), []int{11}
}

func (x *RegisterDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

func (x *RegisterDocumentResponse) GetQueued() bool {
	if x != nil {
		return x.Queued
	}
	return false
}

type GetDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentRequest) Reset() {
	*x = GetDocumentRequest{}
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentRequest) ProtoMessage() {}

func (x *GetDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentRequest.ProtoReflect.Descriptor instead.
func (*GetDocumentRequest) Descriptor() ([]byte, []int) {
	return file_dealdesk_v1_dealdesk_proto_rawDescGZIP(), []int{12}
}

func (x *GetDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type GetDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentResponse) Reset() {
	*x = GetDocumentResponse{}
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentResponse) ProtoMessage() {}

func (x *GetDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentResponse.ProtoReflect.Descriptor instead.
func (*GetDocumentResponse) Descriptor() ([]byte, []int) {
	return file_dealdesk_v1_dealdesk_proto_rawDescGZIP(), []int{13}
}

func (x *GetDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type ListDocumentsRequest struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	VentureId string                 `protobuf:"bytes,1,opt,name=venture_id,json=ventureId,proto3" json:"venture_id,omitempty"`
	// optional status filter
	ProcessingStatus string `protobuf:"bytes,2,opt,name=processing_status,json=processingStatus,proto3" json:"processing_status,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *ListDocumentsRequest) Reset() {
	*x = ListDocumentsRequest{}
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsRequest) ProtoMessage() {}

func (x *ListDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ListDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_dealdesk_v1_dealdesk_proto_rawDescGZIP(), []int{14}
}

func (x *ListDocumentsRequest) GetVentureId() string {
	if x != nil {
		return x.VentureId
	}
	return ""
}

func (x *ListDocumentsRequest) GetProcessingStatus() string {
	if x != nil {
		return x.ProcessingStatus
	}
	return ""
}

type ListDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Documents     []*Document            `protobuf:"bytes,1,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsResponse) Reset() {
	*x = ListDocumentsResponse{}
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsResponse) ProtoMessage() {}

func (x *ListDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ListDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_dealdesk_v1_dealdesk_proto_rawDescGZIP(), []int{15}
}

func (x *ListDocumentsResponse) GetDocuments() []*Document {
	if x != nil {
		return x.Documents
	}
	return nil
}

type GetDocumentContentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentContentRequest) Reset() {
	*x = GetDocumentContentRequest{}
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentContentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentContentRequest) ProtoMessage() {}

func (x *GetDocumentContentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentContentRequest.ProtoReflect.Descriptor instead.
func (*GetDocumentContentRequest) Descriptor() ([]byte, []int) {
	return file_dealdesk_v1_dealdesk_proto_rawDescGZIP(), []int{16}
}

func (x *GetDocumentContentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type GetDocumentContentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Content       *DocumentContent       `protobuf:"bytes,1,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentContentResponse) Reset() {
	*x = GetDocumentContentResponse{}
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentContentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentContentResponse) ProtoMessage() {}

func (x *GetDocumentContentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentContentResponse.ProtoReflect.Descriptor instead.
func (*GetDocumentContentResponse) Descriptor() ([]byte, []int) {
	return file_dealdesk_v1_dealdesk_proto_rawDescGZIP(), []int{17}
}

func (x *GetDocumentContentResponse) GetContent() *DocumentContent {
	if x != nil {
		return x.Content
	}
	return nil
}

type ReprocessDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReprocessDocumentRequest) Reset() {
	*x = ReprocessDocumentRequest{}
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReprocessDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReprocessDocumentRequest) ProtoMessage() {}

func (x *ReprocessDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReprocessDocumentRequest.ProtoReflect.Descriptor instead.
func (*ReprocessDocumentRequest) Descriptor() ([]byte, []int) {
	return file_dealdesk_v1_dealdesk_proto_rawDescGZIP(), []int{18}
}

func (x *ReprocessDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type ReprocessDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	Queued        bool                   `protobuf:"varint,2,opt,name=queued,proto3" json:"queued,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReprocessDocumentResponse) Reset() {
	*x = ReprocessDocumentResponse{}
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReprocessDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReprocessDocumentResponse) ProtoMessage() {}

func (x *ReprocessDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReprocessDocumentResponse.ProtoReflect.Descriptor instead.
func (*ReprocessDocumentResponse) Descriptor() ([]byte, []int) {
	return file_dealdesk_v1_dealdesk_proto_rawDescGZIP(), []int{19}
}

func (x *ReprocessDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

func (x *ReprocessDocumentResponse) GetQueued() bool {
	if x != nil {
		return x.Queued
	}
	return false
}

type GetLatestEvaluationRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetLatestEvaluationRequest) Reset() {
	*x = GetLatestEvaluationRequest{}
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetLatestEvaluationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetLatestEvaluationRequest) ProtoMessage() {}

func (x *GetLatestEvaluationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetLatestEvaluationRequest.ProtoReflect.Descriptor instead.
func (*GetLatestEvaluationRequest) Descriptor() ([]byte, []int) {
	return file_dealdesk_v1_dealdesk_proto_rawDescGZIP(), []int{20}
}

func (x *GetLatestEvaluationRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type GetLatestEvaluationResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Evaluation    *Evaluation            `protobuf:"bytes,1,opt,name=evaluation,proto3" json:"evaluation,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetLatestEvaluationResponse) Reset() {
	*x = GetLatestEvaluationResponse{}
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetLatestEvaluationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetLatestEvaluationResponse) ProtoMessage() {}

func (x *GetLatestEvaluationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetLatestEvaluationResponse.ProtoReflect.Descriptor instead.
func (*GetLatestEvaluationResponse) Descriptor() ([]byte, []int) {
	return file_dealdesk_v1_dealdesk_proto_rawDescGZIP(), []int{21}
}

func (x *GetLatestEvaluationResponse) GetEvaluation() *Evaluation {
	if x != nil {
		return x.Evaluation
	}
	return nil
}

type ListEvaluationsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListEvaluationsRequest) Reset() {
	*x = ListEvaluationsRequest{}
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListEvaluationsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListEvaluationsRequest) ProtoMessage() {}

func (x *ListEvaluationsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListEvaluationsRequest.ProtoReflect.Descriptor instead.
func (*ListEvaluationsRequest) Descriptor() ([]byte, []int) {
	return file_dealdesk_v1_dealdesk_proto_rawDescGZIP(), []int{22}
}

func (x *ListEvaluationsRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type ListEvaluationsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Evaluations   []*Evaluation          `protobuf:"bytes,1,rep,name=evaluations,proto3" json:"evaluations,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListEvaluationsResponse) Reset() {
	*x = ListEvaluationsResponse{}
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListEvaluationsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListEvaluationsResponse) ProtoMessage() {}

func (x *ListEvaluationsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListEvaluationsResponse.ProtoReflect.Descriptor instead.
func (*ListEvaluationsResponse) Descriptor() ([]byte, []int) {
	return file_dealdesk_v1_dealdesk_proto_rawDescGZIP(), []int{23}
}

func (x *ListEvaluationsResponse) GetEvaluations() []*Evaluation {
	if x != nil {
		return x.Evaluations
	}
	return nil
}

type ExportEvaluationsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	VentureId     string                 `protobuf:"bytes,1,opt,name=venture_id,json=ventureId,proto3" json:"venture_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportEvaluationsRequest) Reset() {
	*x = ExportEvaluationsRequest{}
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportEvaluationsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportEvaluationsRequest) ProtoMessage() {}

func (x *ExportEvaluationsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportEvaluationsRequest.ProtoReflect.Descriptor instead.
func (*ExportEvaluationsRequest) Descriptor() ([]byte, []int) {
	return file_dealdesk_v1_dealdesk_proto_rawDescGZIP(), []int{24}
}

func (x *ExportEvaluationsRequest) GetVentureId() string {
	if x != nil {
		return x.VentureId
	}
	return ""
}

type ExportEvaluationsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportEvaluationsResponse) Reset() {
	*x = ExportEvaluationsResponse{}
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportEvaluationsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportEvaluationsResponse) ProtoMessage() {}

func (x *ExportEvaluationsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_dealdesk_v1_dealdesk_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportEvaluationsResponse.ProtoReflect.Descriptor instead.
func (*ExportEvaluationsResponse) Descriptor() ([]byte, []int) {
	return file_dealdesk_v1_dealdesk_proto_rawDescGZIP(), []int{25}
}

func (x *ExportEvaluationsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportEvaluationsResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

var File_dealdesk_v1_dealdesk_proto protoreflect.FileDescriptor

const file_dealdesk_v1_dealdesk_proto_rawDesc = "" +
	"\n" +
	"\x1adealdesk/v1/dealdesk.proto\x12\vdealdesk.v1\"\x9d\x01\n" +
	"\aVenture\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x1a\n" +
	"\bindustry\x18\x03 \x01(\tR\bindustry\x12\x14\n" +
	"\x05stage\x18\x04 \x01(\tR\x05stage\x12\x1d\n" +
	"\n" +
	"created_at\x18\x05 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x06 \x01(\tR\tupdatedAt\"\xf8\x04\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"venture_id\x18\x02 \x01(\tR\tventureId\x12\x1a\n" +
	"\bfilename\x18\x03 \x01(\tR\bfilename\x12+\n" +
	"\x11original_filename\x18\x04 \x01(\tR\x10originalFilename\x12\x1b\n" +
	"\tfile_type\x18\x05 \x01(\tR\bfileType\x12\x16\n" +
	"\x06format\x18\x06 \x01(\tR\x06format\x12\x1f\n" +
	"\vsource_path\x18\a \x01(\tR\n" +
	"sourcePath\x12\x1b\n" +
	"\tfile_size\x18\b \x01(\x03R\bfileSize\x12+\n" +
	"\x11processing_status\x18\t \x01(\tR\x10processingStatus\x122\n" +
	"\x15processing_started_at\x18\n" +
	" \x01(\tR\x13processingStartedAt\x126\n" +
	"\x17processing_completed_at\x18\v \x01(\tR\x15processingCompletedAt\x12)\n" +
	"\x10processing_error\x18\f \x01(\tR\x0fprocessingError\x12#\n" +
	"\rdocument_type\x18\r \x01(\tR\fdocumentType\x12)\n" +
	"\x10confidence_score\x18\x0e \x01(\x01R\x0fconfidenceScore\x12!\n" +
	"\ftext_quality\x18\x0f \x01(\x01R\vtextQuality\x12+\n" +
	"\x11data_completeness\x18\x10 \x01(\x01R\x10dataCompleteness\x12\x1d\n" +
	"\n" +
	"created_at\x18\x11 \x01(\tR\tcreatedAt\"\x91\x02\n" +
	"\x0fDocumentContent\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x1b\n" +
	"\tfull_text\x18\x02 \x01(\tR\bfullText\x12+\n" +
	"\x11extracted_content\x18\x03 \x01(\fR\x10extractedContent\x12'\n" +
	"\x0fstructured_data\x18\x04 \x01(\fR\x0estructuredData\x12\x1a\n" +
	"\bentities\x18\x05 \x01(\fR\bentities\x12%\n" +
	"\x0efinancial_data\x18\x06 \x01(\fR\rfinancialData\x12'\n" +
	"\x0fquality_metrics\x18\a \x01(\fR\x0equalityMetrics\"\xcc\x03\n" +
	"\n" +
	"Evaluation\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12'\n" +
	"\x0ffinancial_score\x18\x03 \x01(\x01R\x0efinancialScore\x12!\n" +
	"\fmarket_score\x18\x04 \x01(\x01R\vmarketScore\x12\x1d\n" +
	"\n" +
	"team_score\x18\x05 \x01(\x01R\tteamScore\x12#\n" +
	"\rproduct_score\x18\x06 \x01(\x01R\fproductScore\x12\x1d\n" +
	"\n" +
	"risk_score\x18\a \x01(\x01R\triskScore\x12#\n" +
	"\roverall_score\x18\b \x01(\x01R\foverallScore\x12)\n" +
	"\x10confidence_lower\x18\t \x01(\x01R\x0fconfidenceLower\x12)\n" +
	"\x10confidence_upper\x18\n" +
	" \x01(\x01R\x0fconfidenceUpper\x12&\n" +
	"\x0erecommendation\x18\v \x01(\tR\x0erecommendation\x12\x1c\n" +
	"\treasoning\x18\f \x01(\fR\treasoning\x12\x1d\n" +
	"\n" +
	"created_at\x18\r \x01(\tR\tcreatedAt\"\\\n" +
	"\x14CreateVentureRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x1a\n" +
	"\bindustry\x18\x02 \x01(\tR\bindustry\x12\x14\n" +
	"\x05stage\x18\x03 \x01(\tR\x05stage\"G\n" +
	"\x15CreateVentureResponse\x12.\n" +
	"\aventure\x18\x01 \x01(\v2\x14.dealdesk.v1.VentureR\aventure\"2\n" +
	"\x11GetVentureRequest\x12\x1d\n" +
	"\n" +
	"venture_id\x18\x01 \x01(\tR\tventureId\"D\n" +
	"\x12GetVentureResponse\x12.\n" +
	"\aventure\x18\x01 \x01(\v2\x14.dealdesk.v1.VentureR\aventure\"\x15\n" +
	"\x13ListVenturesRequest\"H\n" +
	"\x14ListVenturesResponse\x120\n" +
	"\bventures\x18\x01 \x03(\v2\x14.dealdesk.v1.VentureR\bventures\"\xa3\x01\n" +
	"\x17RegisterDocumentRequest\x12\x1d\n" +
	"\n" +
	"venture_id\x18\x01 \x01(\tR\tventureId\x12\x1f\n" +
	"\vsource_path\x18\x02 \x01(\tR\n" +
	"sourcePath\x12+\n" +
	"\x11original_filename\x18\x03 \x01(\tR\x10originalFilename\x12\x1b\n" +
	"\tfile_type\x18\x04 \x01(\tR\bfileType\"e\n" +
	"\x18RegisterDocumentResponse\x121\n" +
	"\bdocument\x18\x01 \x01(\v2\x15.dealdesk.v1.DocumentR\bdocument\x12\x16\n" +
	"\x06queued\x18\x02 \x01(\bR\x06queued\"5\n" +
	"\x12GetDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"H\n" +
	"\x13GetDocumentResponse\x121\n" +
	"\bdocument\x18\x01 \x01(\v2\x15.dealdesk.v1.DocumentR\bdocument\"b\n" +
	"\x14ListDocumentsRequest\x12\x1d\n" +
	"\n" +
	"venture_id\x18\x01 \x01(\tR\tventureId\x12+\n" +
	"\x11processing_status\x18\x02 \x01(\tR\x10processingStatus\"L\n" +
	"\x15ListDocumentsResponse\x123\n" +
	"\tdocuments\x18\x01 \x03(\v2\x15.dealdesk.v1.DocumentR\tdocuments\"<\n" +
	"\x19GetDocumentContentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"T\n" +
	"\x1aGetDocumentContentResponse\x126\n" +
	"\acontent\x18\x01 \x01(\v2\x1c.dealdesk.v1.DocumentContentR\acontent\";\n" +
	"\x18ReprocessDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"f\n" +
	"\x19ReprocessDocumentResponse\x121\n" +
	"\bdocument\x18\x01 \x01(\v2\x15.dealdesk.v1.DocumentR\bdocument\x12\x16\n" +
	"\x06queued\x18\x02 \x01(\bR\x06queued\"=\n" +
	"\x1aGetLatestEvaluationRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"V\n" +
	"\x1bGetLatestEvaluationResponse\x127\n" +
	"\n" +
	"evaluation\x18\x01 \x01(\v2\x17.dealdesk.v1.EvaluationR\n" +
	"evaluation\"9\n" +
	"\x16ListEvaluationsRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"T\n" +
	"\x17ListEvaluationsResponse\x129\n" +
	"\vevaluations\x18\x01 \x03(\v2\x17.dealdesk.v1.EvaluationR\vevaluations\"9\n" +
	"\x18ExportEvaluationsRequest\x12\x1d\n" +
	"\n" +
	"venture_id\x18\x01 \x01(\tR\tventureId\"K\n" +
	"\x19ExportEvaluationsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename2\x8d\x02\n" +
	"\x0fVenturesService\x12V\n" +
	"\rCreateVenture\x12!.dealdesk.v1.CreateVentureRequest\x1a\".dealdesk.v1.CreateVentureResponse\x12M\n" +
	"\n" +
	"GetVenture\x12\x1e.dealdesk.v1.GetVentureRequest\x1a\x1f.dealdesk.v1.GetVentureResponse\x12S\n" +
	"\fListVentures\x12 .dealdesk.v1.ListVenturesRequest\x1a!.dealdesk.v1.ListVenturesResponse2\xe8\x03\n" +
	"\x10DocumentsService\x12_\n" +
	"\x10RegisterDocument\x12$.dealdesk.v1.RegisterDocumentRequest\x1a%.dealdesk.v1.RegisterDocumentResponse\x12P\n" +
	"\vGetDocument\x12\x1f.dealdesk.v1.GetDocumentRequest\x1a .dealdesk.v1.GetDocumentResponse\x12V\n" +
	"\rListDocuments\x12!.dealdesk.v1.ListDocumentsRequest\x1a\".dealdesk.v1.ListDocumentsResponse\x12e\n" +
	"\x12GetDocumentContent\x12&.dealdesk.v1.GetDocumentContentRequest\x1a'.dealdesk.v1.GetDocumentContentResponse\x12b\n" +
	"\x11ReprocessDocument\x12%.dealdesk.v1.ReprocessDocumentRequest\x1a&.dealdesk.v1.ReprocessDocumentResponse2\xc0\x02\n" +
	"\x12EvaluationsService\x12h\n" +
	"\x13GetLatestEvaluation\x12'.dealdesk.v1.GetLatestEvaluationRequest\x1a(.dealdesk.v1.GetLatestEvaluationResponse\x12\\\n" +
	"\x0fListEvaluations\x12#.dealdesk.v1.ListEvaluationsRequest\x1a$.dealdesk.v1.ListEvaluationsResponse\x12b\n" +
	"\x11ExportEvaluations\x12%.dealdesk.v1.ExportEvaluationsRequest\x1a&.dealdesk.v1.ExportEvaluationsResponseBBZ@github.com/nnamdi-udeh/dealdesk/gen/proto/dealdesk/v1;dealdeskv1b\x06proto3"

var (
	file_dealdesk_v1_dealdesk_proto_rawDescOnce sync.Once
	file_dealdesk_v1_dealdesk_proto_rawDescData []byte
)

func file_dealdesk_v1_dealdesk_proto_rawDescGZIP() []byte {
	file_dealdesk_v1_dealdesk_proto_rawDescOnce.Do(func() {
		file_dealdesk_v1_dealdesk_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_dealdesk_v1_dealdesk_proto_rawDesc), len(file_dealdesk_v1_dealdesk_proto_rawDesc)))
	})
	return file_dealdesk_v1_dealdesk_proto_rawDescData
}

var file_dealdesk_v1_dealdesk_proto_msgTypes = make([]protoimpl.MessageInfo, 26)
var file_dealdesk_v1_dealdesk_proto_goTypes = []any{
	(*Venture)(nil),                     // 0: dealdesk.v1.Venture
	(*Document)(nil),                    // 1: dealdesk.v1.Document
	(*DocumentContent)(nil),             // 2: dealdesk.v1.DocumentContent
	(*Evaluation)(nil),                  // 3: dealdesk.v1.Evaluation
	(*CreateVentureRequest)(nil),        // 4: dealdesk.v1.CreateVentureRequest
	(*CreateVentureResponse)(nil),       // 5: dealdesk.v1.CreateVentureResponse
	(*GetVentureRequest)(nil),           // 6: dealdesk.v1.GetVentureRequest
	(*GetVentureResponse)(nil),          // 7: dealdesk.v1.GetVentureResponse
	(*ListVenturesRequest)(nil),         // 8: dealdesk.v1.ListVenturesRequest
	(*ListVenturesResponse)(nil),        // 9: dealdesk.v1.ListVenturesResponse
	(*RegisterDocumentRequest)(nil),     // 10: dealdesk.v1.RegisterDocumentRequest
	(*RegisterDocumentResponse)(nil),    // 11: dealdesk.v1.RegisterDocumentResponse
	(*GetDocumentRequest)(nil),          // 12: dealdesk.v1.GetDocumentRequest
	(*GetDocumentResponse)(nil),         // 13: dealdesk.v1.GetDocumentResponse
	(*ListDocumentsRequest)(nil),        // 14: dealdesk.v1.ListDocumentsRequest
	(*ListDocumentsResponse)(nil),       // 15: dealdesk.v1.ListDocumentsResponse
	(*GetDocumentContentRequest)(nil),   // 16: dealdesk.v1.GetDocumentContentRequest
	(*GetDocumentContentResponse)(nil),  // 17: dealdesk.v1.GetDocumentContentResponse
	(*ReprocessDocumentRequest)(nil),    // 18: dealdesk.v1.ReprocessDocumentRequest
	(*ReprocessDocumentResponse)(nil),   // 19: dealdesk.v1.ReprocessDocumentResponse
	(*GetLatestEvaluationRequest)(nil),  // 20: dealdesk.v1.GetLatestEvaluationRequest
	(*GetLatestEvaluationResponse)(nil), // 21: dealdesk.v1.GetLatestEvaluationResponse
	(*ListEvaluationsRequest)(nil),      // 22: dealdesk.v1.ListEvaluationsRequest
	(*ListEvaluationsResponse)(nil),     // 23: dealdesk.v1.ListEvaluationsResponse
	(*ExportEvaluationsRequest)(nil),    // 24: dealdesk.v1.ExportEvaluationsRequest
	(*ExportEvaluationsResponse)(nil),   // 25: dealdesk.v1.ExportEvaluationsResponse
}
var file_dealdesk_v1_dealdesk_proto_depIdxs = []int32{
	0,  // 0: dealdesk.v1.CreateVentureResponse.venture:type_name -> dealdesk.v1.Venture
	0,  // 1: dealdesk.v1.GetVentureResponse.venture:type_name -> dealdesk.v1.Venture
	0,  // 2: dealdesk.v1.ListVenturesResponse.ventures:type_name -> dealdesk.v1.Venture
	1,  // 3: dealdesk.v1.RegisterDocumentResponse.document:type_name -> dealdesk.v1.Document
	1,  // 4: dealdesk.v1.GetDocumentResponse.document:type_name -> dealdesk.v1.Document
	1,  // 5: dealdesk.v1.ListDocumentsResponse.documents:type_name -> dealdesk.v1.Document
	2,  // 6: dealdesk.v1.GetDocumentContentResponse.content:type_name -> dealdesk.v1.DocumentContent
	1,  // 7: dealdesk.v1.ReprocessDocumentResponse.document:type_name -> dealdesk.v1.Document
	3,  // 8: dealdesk.v1.GetLatestEvaluationResponse.evaluation:type_name -> dealdesk.v1.Evaluation
	3,  // 9: dealdesk.v1.ListEvaluationsResponse.evaluations:type_name -> dealdesk.v1.Evaluation
	4,  // 10: dealdesk.v1.VenturesService.CreateVenture:input_type -> dealdesk.v1.CreateVentureRequest
	6,  // 11: dealdesk.v1.VenturesService.GetVenture:input_type -> dealdesk.v1.GetVentureRequest
	8,  // 12: dealdesk.v1.VenturesService.ListVentures:input_type -> dealdesk.v1.ListVenturesRequest
	10, // 13: dealdesk.v1.DocumentsService.RegisterDocument:input_type -> dealdesk.v1.RegisterDocumentRequest
	12, // 14: dealdesk.v1.DocumentsService.GetDocument:input_type -> dealdesk.v1.GetDocumentRequest
	14, // 15: dealdesk.v1.DocumentsService.ListDocuments:input_type -> dealdesk.v1.ListDocumentsRequest
	16, // 16: dealdesk.v1.DocumentsService.GetDocumentContent:input_type -> dealdesk.v1.GetDocumentContentRequest
	18, // 17: dealdesk.v1.DocumentsService.ReprocessDocument:input_type -> dealdesk.v1.ReprocessDocumentRequest
	20, // 18: dealdesk.v1.EvaluationsService.GetLatestEvaluation:input_type -> dealdesk.v1.GetLatestEvaluationRequest
	22, // 19: dealdesk.v1.EvaluationsService.ListEvaluations:input_type -> dealdesk.v1.ListEvaluationsRequest
	24, // 20: dealdesk.v1.EvaluationsService.ExportEvaluations:input_type -> dealdesk.v1.ExportEvaluationsRequest
	5,  // 21: dealdesk.v1.VenturesService.CreateVenture:output_type -> dealdesk.v1.CreateVentureResponse
	7,  // 22: dealdesk.v1.VenturesService.GetVenture:output_type -> dealdesk.v1.GetVentureResponse
	9,  // 23: dealdesk.v1.VenturesService.ListVentures:output_type -> dealdesk.v1.ListVenturesResponse
	11, // 24: dealdesk.v1.DocumentsService.RegisterDocument:output_type -> dealdesk.v1.RegisterDocumentResponse
	13, // 25: dealdesk.v1.DocumentsService.GetDocument:output_type -> dealdesk.v1.GetDocumentResponse
	15, // 26: dealdesk.v1.DocumentsService.ListDocuments:output_type -> dealdesk.v1.ListDocumentsResponse
	17, // 27: dealdesk.v1.DocumentsService.GetDocumentContent:output_type -> dealdesk.v1.GetDocumentContentResponse
	19, // 28: dealdesk.v1.DocumentsService.ReprocessDocument:output_type -> dealdesk.v1.ReprocessDocumentResponse
	21, // 29: dealdesk.v1.EvaluationsService.GetLatestEvaluation:output_type -> dealdesk.v1.GetLatestEvaluationResponse
	23, // 30: dealdesk.v1.EvaluationsService.ListEvaluations:output_type -> dealdesk.v1.ListEvaluationsResponse
	25, // 31: dealdesk.v1.EvaluationsService.ExportEvaluations:output_type -> dealdesk.v1.ExportEvaluationsResponse
	21, // [21:32] is the sub-list for method output_type
	10, // [10:21] is the sub-list for method input_type
	10, // [10:10] is the sub-list for extension type_name
	10, // [10:10] is the sub-list for extension extendee
	0,  // [0:10] is the sub-list for field type_name
}

func init() { file_dealdesk_v1_dealdesk_proto_init() }
func file_dealdesk_v1_dealdesk_proto_init() {
	if File_dealdesk_v1_dealdesk_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_dealdesk_v1_dealdesk_proto_rawDesc), len(file_dealdesk_v1_dealdesk_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   26,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_dealdesk_v1_dealdesk_proto_goTypes,
		DependencyIndexes: file_dealdesk_v1_dealdesk_proto_depIdxs,
		MessageInfos:      file_dealdesk_v1_dealdesk_proto_msgTypes,
	}.Build()
	File_dealdesk_v1_dealdesk_proto = out.File
	file_dealdesk_v1_dealdesk_proto_goTypes = nil
	file_dealdesk_v1_dealdesk_proto_depIdxs = nil
}
