// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: docuflow/v1/docuflow.proto

package docuflowv1

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

type UploadDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Content       []byte                 `protobuf:"bytes,1,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDocumentRequest) Reset() {
	*x = UploadDocumentRequest{}
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentRequest) ProtoMessage() {}

func (x *UploadDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentRequest.ProtoReflect.Descriptor instead.
func (*UploadDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docuflow_v1_docuflow_proto_rawDescGZIP(), []int{0}
}

func (x *UploadDocumentRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type UploadDocumentResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	FileId         string                 `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	Deduplicated   bool                   `protobuf:"varint,2,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	ContentHashHex string                 `protobuf:"bytes,3,opt,name=content_hash_hex,json=contentHashHex,proto3" json:"content_hash_hex,omitempty"`
	FileSize       int64                  `protobuf:"varint,4,opt,name=file_size,json=fileSize,proto3" json:"file_size,omitempty"`
	UploadedAt     string                 `protobuf:"bytes,5,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *UploadDocumentResponse) Reset() {
	*x = UploadDocumentResponse{}
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentResponse) ProtoMessage() {}

func (x *UploadDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentResponse.ProtoReflect.Descriptor instead.
func (*UploadDocumentResponse) Descriptor() ([]byte, []int) {
	return file_docuflow_v1_docuflow_proto_rawDescGZIP(), []int{1}
}

func (x *UploadDocumentResponse) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *UploadDocumentResponse) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

func (x *UploadDocumentResponse) GetContentHashHex() string {
	if x != nil {
		return x.ContentHashHex
	}
	return ""
}

func (x *UploadDocumentResponse) GetFileSize() int64 {
	if x != nil {
		return x.FileSize
	}
	return 0
}

func (x *UploadDocumentResponse) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

type ReleaseDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FileId        string                 `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReleaseDocumentRequest) Reset() {
	*x = ReleaseDocumentRequest{}
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReleaseDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReleaseDocumentRequest) ProtoMessage() {}

func (x *ReleaseDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReleaseDocumentRequest.ProtoReflect.Descriptor instead.
func (*ReleaseDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docuflow_v1_docuflow_proto_rawDescGZIP(), []int{2}
}

func (x *ReleaseDocumentRequest) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

type ReleaseDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Deleted       bool                   `protobuf:"varint,1,opt,name=deleted,proto3" json:"deleted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReleaseDocumentResponse) Reset() {
	*x = ReleaseDocumentResponse{}
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReleaseDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReleaseDocumentResponse) ProtoMessage() {}

func (x *ReleaseDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReleaseDocumentResponse.ProtoReflect.Descriptor instead.
func (*ReleaseDocumentResponse) Descriptor() ([]byte, []int) {
	return file_docuflow_v1_docuflow_proto_rawDescGZIP(), []int{3}
}

func (x *ReleaseDocumentResponse) GetDeleted() bool {
	if x != nil {
		return x.Deleted
	}
	return false
}

type AnalyzeDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FileId        string                 `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AnalyzeDocumentRequest) Reset() {
	*x = AnalyzeDocumentRequest{}
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalyzeDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalyzeDocumentRequest) ProtoMessage() {}

func (x *AnalyzeDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalyzeDocumentRequest.ProtoReflect.Descriptor instead.
func (*AnalyzeDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docuflow_v1_docuflow_proto_rawDescGZIP(), []int{4}
}

func (x *AnalyzeDocumentRequest) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

type AnalyzeDocumentResponse struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	DiscoveryStatus   string                 `protobuf:"bytes,1,opt,name=discovery_status,json=discoveryStatus,proto3" json:"discovery_status,omitempty"`
	MatchedTemplateId string                 `protobuf:"bytes,2,opt,name=matched_template_id,json=matchedTemplateId,proto3" json:"matched_template_id,omitempty"`
	BestScore         float64                `protobuf:"fixed64,3,opt,name=best_score,json=bestScore,proto3" json:"best_score,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *AnalyzeDocumentResponse) Reset() {
	*x = AnalyzeDocumentResponse{}
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalyzeDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalyzeDocumentResponse) ProtoMessage() {}

func (x *AnalyzeDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalyzeDocumentResponse.ProtoReflect.Descriptor instead.
func (*AnalyzeDocumentResponse) Descriptor() ([]byte, []int) {
	return file_docuflow_v1_docuflow_proto_rawDescGZIP(), []int{5}
}

func (x *AnalyzeDocumentResponse) GetDiscoveryStatus() string {
	if x != nil {
		return x.DiscoveryStatus
	}
	return ""
}

func (x *AnalyzeDocumentResponse) GetMatchedTemplateId() string {
	if x != nil {
		return x.MatchedTemplateId
	}
	return ""
}

func (x *AnalyzeDocumentResponse) GetBestScore() float64 {
	if x != nil {
		return x.BestScore
	}
	return 0
}

type ExtractionUnit struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FileId        string                 `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	TemplateId    string                 `protobuf:"bytes,2,opt,name=template_id,json=templateId,proto3" json:"template_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractionUnit) Reset() {
	*x = ExtractionUnit{}
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractionUnit) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractionUnit) ProtoMessage() {}

func (x *ExtractionUnit) ProtoReflect() protoreflect.Message {
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractionUnit.ProtoReflect.Descriptor instead.
func (*ExtractionUnit) Descriptor() ([]byte, []int) {
	return file_docuflow_v1_docuflow_proto_rawDescGZIP(), []int{6}
}

func (x *ExtractionUnit) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *ExtractionUnit) GetTemplateId() string {
	if x != nil {
		return x.TemplateId
	}
	return ""
}

type SubmitBatchRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Units         []*ExtractionUnit      `protobuf:"bytes,1,rep,name=units,proto3" json:"units,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitBatchRequest) Reset() {
	*x = SubmitBatchRequest{}
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitBatchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitBatchRequest) ProtoMessage() {}

func (x *SubmitBatchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitBatchRequest.ProtoReflect.Descriptor instead.
func (*SubmitBatchRequest) Descriptor() ([]byte, []int) {
	return file_docuflow_v1_docuflow_proto_rawDescGZIP(), []int{7}
}

func (x *SubmitBatchRequest) GetUnits() []*ExtractionUnit {
	if x != nil {
		return x.Units
	}
	return nil
}

type SubmitBatchResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BatchId       string                 `protobuf:"bytes,1,opt,name=batch_id,json=batchId,proto3" json:"batch_id,omitempty"`
	ExtractionIds []string               `protobuf:"bytes,2,rep,name=extraction_ids,json=extractionIds,proto3" json:"extraction_ids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitBatchResponse) Reset() {
	*x = SubmitBatchResponse{}
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitBatchResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitBatchResponse) ProtoMessage() {}

func (x *SubmitBatchResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitBatchResponse.ProtoReflect.Descriptor instead.
func (*SubmitBatchResponse) Descriptor() ([]byte, []int) {
	return file_docuflow_v1_docuflow_proto_rawDescGZIP(), []int{8}
}

func (x *SubmitBatchResponse) GetBatchId() string {
	if x != nil {
		return x.BatchId
	}
	return ""
}

func (x *SubmitBatchResponse) GetExtractionIds() []string {
	if x != nil {
		return x.ExtractionIds
	}
	return nil
}

type GetBatchStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BatchId       string                 `protobuf:"bytes,1,opt,name=batch_id,json=batchId,proto3" json:"batch_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBatchStatusRequest) Reset() {
	*x = GetBatchStatusRequest{}
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBatchStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBatchStatusRequest) ProtoMessage() {}

func (x *GetBatchStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBatchStatusRequest.ProtoReflect.Descriptor instead.
func (*GetBatchStatusRequest) Descriptor() ([]byte, []int) {
	return file_docuflow_v1_docuflow_proto_rawDescGZIP(), []int{9}
}

func (x *GetBatchStatusRequest) GetBatchId() string {
	if x != nil {
		return x.BatchId
	}
	return ""
}

type GetBatchStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BatchId       string                 `protobuf:"bytes,1,opt,name=batch_id,json=batchId,proto3" json:"batch_id,omitempty"`
	State         string                 `protobuf:"bytes,2,opt,name=state,proto3" json:"state,omitempty"`
	Total         int32                  `protobuf:"varint,3,opt,name=total,proto3" json:"total,omitempty"`
	Completed     int32                  `protobuf:"varint,4,opt,name=completed,proto3" json:"completed,omitempty"`
	Failed        int32                  `protobuf:"varint,5,opt,name=failed,proto3" json:"failed,omitempty"`
	Cancelled     int32                  `protobuf:"varint,6,opt,name=cancelled,proto3" json:"cancelled,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBatchStatusResponse) Reset() {
	*x = GetBatchStatusResponse{}
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBatchStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBatchStatusResponse) ProtoMessage() {}

func (x *GetBatchStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBatchStatusResponse.ProtoReflect.Descriptor instead.
func (*GetBatchStatusResponse) Descriptor() ([]byte, []int) {
	return file_docuflow_v1_docuflow_proto_rawDescGZIP(), []int{10}
}

func (x *GetBatchStatusResponse) GetBatchId() string {
	if x != nil {
		return x.BatchId
	}
	return ""
}

func (x *GetBatchStatusResponse) GetState() string {
	if x != nil {
		return x.State
	}
	return ""
}

func (x *GetBatchStatusResponse) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

func (x *GetBatchStatusResponse) GetCompleted() int32 {
	if x != nil {
		return x.Completed
	}
	return 0
}

func (x *GetBatchStatusResponse) GetFailed() int32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *GetBatchStatusResponse) GetCancelled() int32 {
	if x != nil {
		return x.Cancelled
	}
	return 0
}

type CancelBatchRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BatchId       string                 `protobuf:"bytes,1,opt,name=batch_id,json=batchId,proto3" json:"batch_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelBatchRequest) Reset() {
	*x = CancelBatchRequest{}
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelBatchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelBatchRequest) ProtoMessage() {}

func (x *CancelBatchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelBatchRequest.ProtoReflect.Descriptor instead.
func (*CancelBatchRequest) Descriptor() ([]byte, []int) {
	return file_docuflow_v1_docuflow_proto_rawDescGZIP(), []int{11}
}

func (x *CancelBatchRequest) GetBatchId() string {
	if x != nil {
		return x.BatchId
	}
	return ""
}

type CancelBatchResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelBatchResponse) Reset() {
	*x = CancelBatchResponse{}
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelBatchResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelBatchResponse) ProtoMessage() {}

func (x *CancelBatchResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelBatchResponse.ProtoReflect.Descriptor instead.
func (*CancelBatchResponse) Descriptor() ([]byte, []int) {
	return file_docuflow_v1_docuflow_proto_rawDescGZIP(), []int{12}
}

type GetExtractionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ExtractionId  string                 `protobuf:"bytes,1,opt,name=extraction_id,json=extractionId,proto3" json:"extraction_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetExtractionRequest) Reset() {
	*x = GetExtractionRequest{}
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetExtractionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetExtractionRequest) ProtoMessage() {}

func (x *GetExtractionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetExtractionRequest.ProtoReflect.Descriptor instead.
func (*GetExtractionRequest) Descriptor() ([]byte, []int) {
	return file_docuflow_v1_docuflow_proto_rawDescGZIP(), []int{13}
}

func (x *GetExtractionRequest) GetExtractionId() string {
	if x != nil {
		return x.ExtractionId
	}
	return ""
}

type ExtractedFieldView struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	FieldId          string                 `protobuf:"bytes,1,opt,name=field_id,json=fieldId,proto3" json:"field_id,omitempty"`
	Name             string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	ValueJson        string                 `protobuf:"bytes,3,opt,name=value_json,json=valueJson,proto3" json:"value_json,omitempty"`
	Confidence       float32                `protobuf:"fixed32,4,opt,name=confidence,proto3" json:"confidence,omitempty"`
	SourcePage       int32                  `protobuf:"varint,5,opt,name=source_page,json=sourcePage,proto3" json:"source_page,omitempty"`
	SourceText       string                 `protobuf:"bytes,6,opt,name=source_text,json=sourceText,proto3" json:"source_text,omitempty"`
	Verified         bool                   `protobuf:"varint,7,opt,name=verified,proto3" json:"verified,omitempty"`
	ValidationStatus string                 `protobuf:"bytes,8,opt,name=validation_status,json=validationStatus,proto3" json:"validation_status,omitempty"`
	ValidationErrors []string               `protobuf:"bytes,9,rep,name=validation_errors,json=validationErrors,proto3" json:"validation_errors,omitempty"`
	AuditPriority    string                 `protobuf:"bytes,10,opt,name=audit_priority,json=auditPriority,proto3" json:"audit_priority,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *ExtractedFieldView) Reset() {
	*x = ExtractedFieldView{}
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractedFieldView) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractedFieldView) ProtoMessage() {}

func (x *ExtractedFieldView) ProtoReflect() protoreflect.Message {
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractedFieldView.ProtoReflect.Descriptor instead.
func (*ExtractedFieldView) Descriptor() ([]byte, []int) {
	return file_docuflow_v1_docuflow_proto_rawDescGZIP(), []int{14}
}

func (x *ExtractedFieldView) GetFieldId() string {
	if x != nil {
		return x.FieldId
	}
	return ""
}

func (x *ExtractedFieldView) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ExtractedFieldView) GetValueJson() string {
	if x != nil {
		return x.ValueJson
	}
	return ""
}

func (x *ExtractedFieldView) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *ExtractedFieldView) GetSourcePage() int32 {
	if x != nil {
		return x.SourcePage
	}
	return 0
}

func (x *ExtractedFieldView) GetSourceText() string {
	if x != nil {
		return x.SourceText
	}
	return ""
}

func (x *ExtractedFieldView) GetVerified() bool {
	if x != nil {
		return x.Verified
	}
	return false
}

func (x *ExtractedFieldView) GetValidationStatus() string {
	if x != nil {
		return x.ValidationStatus
	}
	return ""
}

func (x *ExtractedFieldView) GetValidationErrors() []string {
	if x != nil {
		return x.ValidationErrors
	}
	return nil
}

func (x *ExtractedFieldView) GetAuditPriority() string {
	if x != nil {
		return x.AuditPriority
	}
	return ""
}

type GetExtractionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ExtractionId  string                 `protobuf:"bytes,1,opt,name=extraction_id,json=extractionId,proto3" json:"extraction_id,omitempty"`
	FileId        string                 `protobuf:"bytes,2,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	TemplateId    string                 `protobuf:"bytes,3,opt,name=template_id,json=templateId,proto3" json:"template_id,omitempty"`
	Status        string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	ErrorMessage  string                 `protobuf:"bytes,5,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	OrganizedPath string                 `protobuf:"bytes,6,opt,name=organized_path,json=organizedPath,proto3" json:"organized_path,omitempty"`
	Fields        []*ExtractedFieldView  `protobuf:"bytes,7,rep,name=fields,proto3" json:"fields,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetExtractionResponse) Reset() {
	*x = GetExtractionResponse{}
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetExtractionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetExtractionResponse) ProtoMessage() {}

func (x *GetExtractionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetExtractionResponse.ProtoReflect.Descriptor instead.
func (*GetExtractionResponse) Descriptor() ([]byte, []int) {
	return file_docuflow_v1_docuflow_proto_rawDescGZIP(), []int{15}
}

func (x *GetExtractionResponse) GetExtractionId() string {
	if x != nil {
		return x.ExtractionId
	}
	return ""
}

func (x *GetExtractionResponse) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *GetExtractionResponse) GetTemplateId() string {
	if x != nil {
		return x.TemplateId
	}
	return ""
}

func (x *GetExtractionResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *GetExtractionResponse) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *GetExtractionResponse) GetOrganizedPath() string {
	if x != nil {
		return x.OrganizedPath
	}
	return ""
}

func (x *GetExtractionResponse) GetFields() []*ExtractedFieldView {
	if x != nil {
		return x.Fields
	}
	return nil
}

type ReprocessExtractionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ExtractionId  string                 `protobuf:"bytes,1,opt,name=extraction_id,json=extractionId,proto3" json:"extraction_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReprocessExtractionRequest) Reset() {
	*x = ReprocessExtractionRequest{}
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReprocessExtractionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReprocessExtractionRequest) ProtoMessage() {}

func (x *ReprocessExtractionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReprocessExtractionRequest.ProtoReflect.Descriptor instead.
func (*ReprocessExtractionRequest) Descriptor() ([]byte, []int) {
	return file_docuflow_v1_docuflow_proto_rawDescGZIP(), []int{16}
}

func (x *ReprocessExtractionRequest) GetExtractionId() string {
	if x != nil {
		return x.ExtractionId
	}
	return ""
}

type ReprocessExtractionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ExtractionId  string                 `protobuf:"bytes,1,opt,name=extraction_id,json=extractionId,proto3" json:"extraction_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReprocessExtractionResponse) Reset() {
	*x = ReprocessExtractionResponse{}
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReprocessExtractionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReprocessExtractionResponse) ProtoMessage() {}

func (x *ReprocessExtractionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReprocessExtractionResponse.ProtoReflect.Descriptor instead.
func (*ReprocessExtractionResponse) Descriptor() ([]byte, []int) {
	return file_docuflow_v1_docuflow_proto_rawDescGZIP(), []int{17}
}

func (x *ReprocessExtractionResponse) GetExtractionId() string {
	if x != nil {
		return x.ExtractionId
	}
	return ""
}

type GetAuditQueueRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TemplateId    string                 `protobuf:"bytes,1,opt,name=template_id,json=templateId,proto3" json:"template_id,omitempty"`    // optional filter
	MinPriority   string                 `protobuf:"bytes,2,opt,name=min_priority,json=minPriority,proto3" json:"min_priority,omitempty"` // least-urgent tier included; empty means LOW
	Offset        int32                  `protobuf:"varint,3,opt,name=offset,proto3" json:"offset,omitempty"`
	Limit         int32                  `protobuf:"varint,4,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetAuditQueueRequest) Reset() {
	*x = GetAuditQueueRequest{}
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAuditQueueRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAuditQueueRequest) ProtoMessage() {}

func (x *GetAuditQueueRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAuditQueueRequest.ProtoReflect.Descriptor instead.
func (*GetAuditQueueRequest) Descriptor() ([]byte, []int) {
	return file_docuflow_v1_docuflow_proto_rawDescGZIP(), []int{18}
}

func (x *GetAuditQueueRequest) GetTemplateId() string {
	if x != nil {
		return x.TemplateId
	}
	return ""
}

func (x *GetAuditQueueRequest) GetMinPriority() string {
	if x != nil {
		return x.MinPriority
	}
	return ""
}

func (x *GetAuditQueueRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

func (x *GetAuditQueueRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type AuditEntry struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Field         *ExtractedFieldView    `protobuf:"bytes,1,opt,name=field,proto3" json:"field,omitempty"`
	ExtractionId  string                 `protobuf:"bytes,2,opt,name=extraction_id,json=extractionId,proto3" json:"extraction_id,omitempty"`
	Priority      string                 `protobuf:"bytes,3,opt,name=priority,proto3" json:"priority,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AuditEntry) Reset() {
	*x = AuditEntry{}
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AuditEntry) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AuditEntry) ProtoMessage() {}

func (x *AuditEntry) ProtoReflect() protoreflect.Message {
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AuditEntry.ProtoReflect.Descriptor instead.
func (*AuditEntry) Descriptor() ([]byte, []int) {
	return file_docuflow_v1_docuflow_proto_rawDescGZIP(), []int{19}
}

func (x *AuditEntry) GetField() *ExtractedFieldView {
	if x != nil {
		return x.Field
	}
	return nil
}

func (x *AuditEntry) GetExtractionId() string {
	if x != nil {
		return x.ExtractionId
	}
	return ""
}

func (x *AuditEntry) GetPriority() string {
	if x != nil {
		return x.Priority
	}
	return ""
}

type GetAuditQueueResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Entries       []*AuditEntry          `protobuf:"bytes,1,rep,name=entries,proto3" json:"entries,omitempty"`
	Total         int32                  `protobuf:"varint,2,opt,name=total,proto3" json:"total,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetAuditQueueResponse) Reset() {
	*x = GetAuditQueueResponse{}
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAuditQueueResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAuditQueueResponse) ProtoMessage() {}

func (x *GetAuditQueueResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAuditQueueResponse.ProtoReflect.Descriptor instead.
func (*GetAuditQueueResponse) Descriptor() ([]byte, []int) {
	return file_docuflow_v1_docuflow_proto_rawDescGZIP(), []int{20}
}

func (x *GetAuditQueueResponse) GetEntries() []*AuditEntry {
	if x != nil {
		return x.Entries
	}
	return nil
}

func (x *GetAuditQueueResponse) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

type VerifyFieldRequest struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	FieldId            string                 `protobuf:"bytes,1,opt,name=field_id,json=fieldId,proto3" json:"field_id,omitempty"`
	CorrectedValueJson string                 `protobuf:"bytes,2,opt,name=corrected_value_json,json=correctedValueJson,proto3" json:"corrected_value_json,omitempty"` // empty keeps the extracted value
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *VerifyFieldRequest) Reset() {
	*x = VerifyFieldRequest{}
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VerifyFieldRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VerifyFieldRequest) ProtoMessage() {}

func (x *VerifyFieldRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VerifyFieldRequest.ProtoReflect.Descriptor instead.
func (*VerifyFieldRequest) Descriptor() ([]byte, []int) {
	return file_docuflow_v1_docuflow_proto_rawDescGZIP(), []int{21}
}

func (x *VerifyFieldRequest) GetFieldId() string {
	if x != nil {
		return x.FieldId
	}
	return ""
}

func (x *VerifyFieldRequest) GetCorrectedValueJson() string {
	if x != nil {
		return x.CorrectedValueJson
	}
	return ""
}

type VerifyFieldResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Field         *ExtractedFieldView    `protobuf:"bytes,1,opt,name=field,proto3" json:"field,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VerifyFieldResponse) Reset() {
	*x = VerifyFieldResponse{}
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VerifyFieldResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VerifyFieldResponse) ProtoMessage() {}

func (x *VerifyFieldResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VerifyFieldResponse.ProtoReflect.Descriptor instead.
func (*VerifyFieldResponse) Descriptor() ([]byte, []int) {
	return file_docuflow_v1_docuflow_proto_rawDescGZIP(), []int{22}
}

func (x *VerifyFieldResponse) GetField() *ExtractedFieldView {
	if x != nil {
		return x.Field
	}
	return nil
}

type ExportAuditQueueRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TemplateId    string                 `protobuf:"bytes,1,opt,name=template_id,json=templateId,proto3" json:"template_id,omitempty"`
	MinPriority   string                 `protobuf:"bytes,2,opt,name=min_priority,json=minPriority,proto3" json:"min_priority,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportAuditQueueRequest) Reset() {
	*x = ExportAuditQueueRequest{}
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportAuditQueueRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportAuditQueueRequest) ProtoMessage() {}

func (x *ExportAuditQueueRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportAuditQueueRequest.ProtoReflect.Descriptor instead.
func (*ExportAuditQueueRequest) Descriptor() ([]byte, []int) {
	return file_docuflow_v1_docuflow_proto_rawDescGZIP(), []int{23}
}

func (x *ExportAuditQueueRequest) GetTemplateId() string {
	if x != nil {
		return x.TemplateId
	}
	return ""
}

func (x *ExportAuditQueueRequest) GetMinPriority() string {
	if x != nil {
		return x.MinPriority
	}
	return ""
}

type ExportAuditQueueResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportAuditQueueResponse) Reset() {
	*x = ExportAuditQueueResponse{}
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportAuditQueueResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportAuditQueueResponse) ProtoMessage() {}

func (x *ExportAuditQueueResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportAuditQueueResponse.ProtoReflect.Descriptor instead.
func (*ExportAuditQueueResponse) Descriptor() ([]byte, []int) {
	return file_docuflow_v1_docuflow_proto_rawDescGZIP(), []int{24}
}

func (x *ExportAuditQueueResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type ExportExtractionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ExtractionId  string                 `protobuf:"bytes,1,opt,name=extraction_id,json=extractionId,proto3" json:"extraction_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportExtractionRequest) Reset() {
	*x = ExportExtractionRequest{}
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportExtractionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportExtractionRequest) ProtoMessage() {}

func (x *ExportExtractionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportExtractionRequest.ProtoReflect.Descriptor instead.
func (*ExportExtractionRequest) Descriptor() ([]byte, []int) {
	return file_docuflow_v1_docuflow_proto_rawDescGZIP(), []int{25}
}

func (x *ExportExtractionRequest) GetExtractionId() string {
	if x != nil {
		return x.ExtractionId
	}
	return ""
}

type ExportExtractionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportExtractionResponse) Reset() {
	*x = ExportExtractionResponse{}
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportExtractionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportExtractionResponse) ProtoMessage() {}

func (x *ExportExtractionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportExtractionResponse.ProtoReflect.Descriptor instead.
func (*ExportExtractionResponse) Descriptor() ([]byte, []int) {
	return file_docuflow_v1_docuflow_proto_rawDescGZIP(), []int{26}
}

func (x *ExportExtractionResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type FieldRule struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Pattern        string                 `protobuf:"bytes,1,opt,name=pattern,proto3" json:"pattern,omitempty"`
	Min            *float64               `protobuf:"fixed64,2,opt,name=min,proto3,oneof" json:"min,omitempty"`
	Max            *float64               `protobuf:"fixed64,3,opt,name=max,proto3,oneof" json:"max,omitempty"`
	MinLength      *int32                 `protobuf:"varint,4,opt,name=min_length,json=minLength,proto3,oneof" json:"min_length,omitempty"`
	MaxLength      *int32                 `protobuf:"varint,5,opt,name=max_length,json=maxLength,proto3,oneof" json:"max_length,omitempty"`
	Format         string                 `protobuf:"bytes,6,opt,name=format,proto3" json:"format,omitempty"`
	RecommendedMin *float64               `protobuf:"fixed64,7,opt,name=recommended_min,json=recommendedMin,proto3,oneof" json:"recommended_min,omitempty"`
	RecommendedMax *float64               `protobuf:"fixed64,8,opt,name=recommended_max,json=recommendedMax,proto3,oneof" json:"recommended_max,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *FieldRule) Reset() {
	*x = FieldRule{}
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FieldRule) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FieldRule) ProtoMessage() {}

func (x *FieldRule) ProtoReflect() protoreflect.Message {
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FieldRule.ProtoReflect.Descriptor instead.
func (*FieldRule) Descriptor() ([]byte, []int) {
	return file_docuflow_v1_docuflow_proto_rawDescGZIP(), []int{27}
}

func (x *FieldRule) GetPattern() string {
	if x != nil {
		return x.Pattern
	}
	return ""
}

func (x *FieldRule) GetMin() float64 {
	if x != nil && x.Min != nil {
		return *x.Min
	}
	return 0
}

func (x *FieldRule) GetMax() float64 {
	if x != nil && x.Max != nil {
		return *x.Max
	}
	return 0
}

func (x *FieldRule) GetMinLength() int32 {
	if x != nil && x.MinLength != nil {
		return *x.MinLength
	}
	return 0
}

func (x *FieldRule) GetMaxLength() int32 {
	if x != nil && x.MaxLength != nil {
		return *x.MaxLength
	}
	return 0
}

func (x *FieldRule) GetFormat() string {
	if x != nil {
		return x.Format
	}
	return ""
}

func (x *FieldRule) GetRecommendedMin() float64 {
	if x != nil && x.RecommendedMin != nil {
		return *x.RecommendedMin
	}
	return 0
}

func (x *FieldRule) GetRecommendedMax() float64 {
	if x != nil && x.RecommendedMax != nil {
		return *x.RecommendedMax
	}
	return 0
}

type FieldDefinition struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Type          string                 `protobuf:"bytes,2,opt,name=type,proto3" json:"type,omitempty"`
	Required      bool                   `protobuf:"varint,3,opt,name=required,proto3" json:"required,omitempty"`
	Rules         *FieldRule             `protobuf:"bytes,4,opt,name=rules,proto3" json:"rules,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FieldDefinition) Reset() {
	*x = FieldDefinition{}
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FieldDefinition) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FieldDefinition) ProtoMessage() {}

func (x *FieldDefinition) ProtoReflect() protoreflect.Message {
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FieldDefinition.ProtoReflect.Descriptor instead.
func (*FieldDefinition) Descriptor() ([]byte, []int) {
	return file_docuflow_v1_docuflow_proto_rawDescGZIP(), []int{28}
}

func (x *FieldDefinition) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *FieldDefinition) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *FieldDefinition) GetRequired() bool {
	if x != nil {
		return x.Required
	}
	return false
}

func (x *FieldDefinition) GetRules() *FieldRule {
	if x != nil {
		return x.Rules
	}
	return nil
}

type CreateTemplateRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Category      string                 `protobuf:"bytes,2,opt,name=category,proto3" json:"category,omitempty"`
	Fields        []*FieldDefinition     `protobuf:"bytes,3,rep,name=fields,proto3" json:"fields,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateTemplateRequest) Reset() {
	*x = CreateTemplateRequest{}
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateTemplateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateTemplateRequest) ProtoMessage() {}

func (x *CreateTemplateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateTemplateRequest.ProtoReflect.Descriptor instead.
func (*CreateTemplateRequest) Descriptor() ([]byte, []int) {
	return file_docuflow_v1_docuflow_proto_rawDescGZIP(), []int{29}
}

func (x *CreateTemplateRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateTemplateRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *CreateTemplateRequest) GetFields() []*FieldDefinition {
	if x != nil {
		return x.Fields
	}
	return nil
}

type GetTemplateRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TemplateId    string                 `protobuf:"bytes,1,opt,name=template_id,json=templateId,proto3" json:"template_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetTemplateRequest) Reset() {
	*x = GetTemplateRequest{}
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetTemplateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetTemplateRequest) ProtoMessage() {}

func (x *GetTemplateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetTemplateRequest.ProtoReflect.Descriptor instead.
func (*GetTemplateRequest) Descriptor() ([]byte, []int) {
	return file_docuflow_v1_docuflow_proto_rawDescGZIP(), []int{30}
}

func (x *GetTemplateRequest) GetTemplateId() string {
	if x != nil {
		return x.TemplateId
	}
	return ""
}

type ListTemplatesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTemplatesRequest) Reset() {
	*x = ListTemplatesRequest{}
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTemplatesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTemplatesRequest) ProtoMessage() {}

func (x *ListTemplatesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTemplatesRequest.ProtoReflect.Descriptor instead.
func (*ListTemplatesRequest) Descriptor() ([]byte, []int) {
	return file_docuflow_v1_docuflow_proto_rawDescGZIP(), []int{31}
}

type Template struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TemplateId    string                 `protobuf:"bytes,1,opt,name=template_id,json=templateId,proto3" json:"template_id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Category      string                 `protobuf:"bytes,3,opt,name=category,proto3" json:"category,omitempty"`
	Version       int32                  `protobuf:"varint,4,opt,name=version,proto3" json:"version,omitempty"`
	Fields        []*FieldDefinition     `protobuf:"bytes,5,rep,name=fields,proto3" json:"fields,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,7,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Template) Reset() {
	*x = Template{}
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Template) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Template) ProtoMessage() {}

func (x *Template) ProtoReflect() protoreflect.Message {
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Template.ProtoReflect.Descriptor instead.
func (*Template) Descriptor() ([]byte, []int) {
	return file_docuflow_v1_docuflow_proto_rawDescGZIP(), []int{32}
}

func (x *Template) GetTemplateId() string {
	if x != nil {
		return x.TemplateId
	}
	return ""
}

func (x *Template) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Template) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *Template) GetVersion() int32 {
	if x != nil {
		return x.Version
	}
	return 0
}

func (x *Template) GetFields() []*FieldDefinition {
	if x != nil {
		return x.Fields
	}
	return nil
}

func (x *Template) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Template) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type TemplateResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Template      *Template              `protobuf:"bytes,1,opt,name=template,proto3" json:"template,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TemplateResponse) Reset() {
	*x = TemplateResponse{}
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TemplateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TemplateResponse) ProtoMessage() {}

func (x *TemplateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TemplateResponse.ProtoReflect.Descriptor instead.
func (*TemplateResponse) Descriptor() ([]byte, []int) {
	return file_docuflow_v1_docuflow_proto_rawDescGZIP(), []int{33}
}

func (x *TemplateResponse) GetTemplate() *Template {
	if x != nil {
		return x.Template
	}
	return nil
}

type ListTemplatesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Templates     []*Template            `protobuf:"bytes,1,rep,name=templates,proto3" json:"templates,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTemplatesResponse) Reset() {
	*x = ListTemplatesResponse{}
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTemplatesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTemplatesResponse) ProtoMessage() {}

func (x *ListTemplatesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTemplatesResponse.ProtoReflect.Descriptor instead.
func (*ListTemplatesResponse) Descriptor() ([]byte, []int) {
	return file_docuflow_v1_docuflow_proto_rawDescGZIP(), []int{34}
}

func (x *ListTemplatesResponse) GetTemplates() []*Template {
	if x != nil {
		return x.Templates
	}
	return nil
}

type UpdateTemplateFieldsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TemplateId    string                 `protobuf:"bytes,1,opt,name=template_id,json=templateId,proto3" json:"template_id,omitempty"`
	Fields        []*FieldDefinition     `protobuf:"bytes,2,rep,name=fields,proto3" json:"fields,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateTemplateFieldsRequest) Reset() {
	*x = UpdateTemplateFieldsRequest{}
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateTemplateFieldsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateTemplateFieldsRequest) ProtoMessage() {}

func (x *UpdateTemplateFieldsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docuflow_v1_docuflow_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateTemplateFieldsRequest.ProtoReflect.Descriptor instead.
func (*UpdateTemplateFieldsRequest) Descriptor() ([]byte, []int) {
	return file_docuflow_v1_docuflow_proto_rawDescGZIP(), []int{35}
}

func (x *UpdateTemplateFieldsRequest) GetTemplateId() string {
	if x != nil {
		return x.TemplateId
	}
	return ""
}

func (x *UpdateTemplateFieldsRequest) GetFields() []*FieldDefinition {
	if x != nil {
		return x.Fields
	}
	return nil
}

var File_docuflow_v1_docuflow_proto protoreflect.FileDescriptor

const file_docuflow_v1_docuflow_proto_rawDesc = "" +
	"\n" +
	"\x1adocuflow/v1/docuflow.proto\x12\vdocuflow.v1\"1\n" +
	"\x15UploadDocumentRequest\x12\x18\n" +
	"\acontent\x18\x01 \x01(\fR\acontent\"\xbd\x01\n" +
	"\x16UploadDocumentResponse\x12\x17\n" +
	"\afile_id\x18\x01 \x01(\tR\x06fileId\x12\"\n" +
	"\fdeduplicated\x18\x02 \x01(\bR\fdeduplicated\x12(\n" +
	"\x10content_hash_hex\x18\x03 \x01(\tR\x0econtentHashHex\x12\x1b\n" +
	"\tfile_size\x18\x04 \x01(\x03R\bfileSize\x12\x1f\n" +
	"\vuploaded_at\x18\x05 \x01(\tR\n" +
	"uploadedAt\"1\n" +
	"\x16ReleaseDocumentRequest\x12\x17\n" +
	"\afile_id\x18\x01 \x01(\tR\x06fileId\"3\n" +
	"\x17ReleaseDocumentResponse\x12\x18\n" +
	"\adeleted\x18\x01 \x01(\bR\adeleted\"1\n" +
	"\x16AnalyzeDocumentRequest\x12\x17\n" +
	"\afile_id\x18\x01 \x01(\tR\x06fileId\"\x93\x01\n" +
	"\x17AnalyzeDocumentResponse\x12)\n" +
	"\x10discovery_status\x18\x01 \x01(\tR\x0fdiscoveryStatus\x12.\n" +
	"\x13matched_template_id\x18\x02 \x01(\tR\x11matchedTemplateId\x12\x1d\n" +
	"\n" +
	"best_score\x18\x03 \x01(\x01R\tbestScore\"J\n" +
	"\x0eExtractionUnit\x12\x17\n" +
	"\afile_id\x18\x01 \x01(\tR\x06fileId\x12\x1f\n" +
	"\vtemplate_id\x18\x02 \x01(\tR\n" +
	"templateId\"G\n" +
	"\x12SubmitBatchRequest\x121\n" +
	"\x05units\x18\x01 \x03(\v2\x1b.docuflow.v1.ExtractionUnitR\x05units\"W\n" +
	"\x13SubmitBatchResponse\x12\x19\n" +
	"\bbatch_id\x18\x01 \x01(\tR\abatchId\x12%\n" +
	"\x0eextraction_ids\x18\x02 \x03(\tR\rextractionIds\"2\n" +
	"\x15GetBatchStatusRequest\x12\x19\n" +
	"\bbatch_id\x18\x01 \x01(\tR\abatchId\"\xb3\x01\n" +
	"\x16GetBatchStatusResponse\x12\x19\n" +
	"\bbatch_id\x18\x01 \x01(\tR\abatchId\x12\x14\n" +
	"\x05state\x18\x02 \x01(\tR\x05state\x12\x14\n" +
	"\x05total\x18\x03 \x01(\x05R\x05total\x12\x1c\n" +
	"\tcompleted\x18\x04 \x01(\x05R\tcompleted\x12\x16\n" +
	"\x06failed\x18\x05 \x01(\x05R\x06failed\x12\x1c\n" +
	"\tcancelled\x18\x06 \x01(\x05R\tcancelled\"/\n" +
	"\x12CancelBatchRequest\x12\x19\n" +
	"\bbatch_id\x18\x01 \x01(\tR\abatchId\"\x15\n" +
	"\x13CancelBatchResponse\";\n" +
	"\x14GetExtractionRequest\x12#\n" +
	"\rextraction_id\x18\x01 \x01(\tR\fextractionId\"\xe1\x02\n" +
	"\x12ExtractedFieldView\x12\x19\n" +
	"\bfield_id\x18\x01 \x01(\tR\afieldId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x1d\n" +
	"\n" +
	"value_json\x18\x03 \x01(\tR\tvalueJson\x12\x1e\n" +
	"\n" +
	"confidence\x18\x04 \x01(\x02R\n" +
	"confidence\x12\x1f\n" +
	"\vsource_page\x18\x05 \x01(\x05R\n" +
	"sourcePage\x12\x1f\n" +
	"\vsource_text\x18\x06 \x01(\tR\n" +
	"sourceText\x12\x1a\n" +
	"\bverified\x18\a \x01(\bR\bverified\x12+\n" +
	"\x11validation_status\x18\b \x01(\tR\x10validationStatus\x12+\n" +
	"\x11validation_errors\x18\t \x03(\tR\x10validationErrors\x12%\n" +
	"\x0eaudit_priority\x18\n" +
	" \x01(\tR\rauditPriority\"\x93\x02\n" +
	"\x15GetExtractionResponse\x12#\n" +
	"\rextraction_id\x18\x01 \x01(\tR\fextractionId\x12\x17\n" +
	"\afile_id\x18\x02 \x01(\tR\x06fileId\x12\x1f\n" +
	"\vtemplate_id\x18\x03 \x01(\tR\n" +
	"templateId\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12#\n" +
	"\rerror_message\x18\x05 \x01(\tR\ferrorMessage\x12%\n" +
	"\x0eorganized_path\x18\x06 \x01(\tR\rorganizedPath\x127\n" +
	"\x06fields\x18\a \x03(\v2\x1f.docuflow.v1.ExtractedFieldViewR\x06fields\"A\n" +
	"\x1aReprocessExtractionRequest\x12#\n" +
	"\rextraction_id\x18\x01 \x01(\tR\fextractionId\"B\n" +
	"\x1bReprocessExtractionResponse\x12#\n" +
	"\rextraction_id\x18\x01 \x01(\tR\fextractionId\"\x88\x01\n" +
	"\x14GetAuditQueueRequest\x12\x1f\n" +
	"\vtemplate_id\x18\x01 \x01(\tR\n" +
	"templateId\x12!\n" +
	"\fmin_priority\x18\x02 \x01(\tR\vminPriority\x12\x16\n" +
	"\x06offset\x18\x03 \x01(\x05R\x06offset\x12\x14\n" +
	"\x05limit\x18\x04 \x01(\x05R\x05limit\"\x84\x01\n" +
	"\n" +
	"AuditEntry\x125\n" +
	"\x05field\x18\x01 \x01(\v2\x1f.docuflow.v1.ExtractedFieldViewR\x05field\x12#\n" +
	"\rextraction_id\x18\x02 \x01(\tR\fextractionId\x12\x1a\n" +
	"\bpriority\x18\x03 \x01(\tR\bpriority\"`\n" +
	"\x15GetAuditQueueResponse\x121\n" +
	"\aentries\x18\x01 \x03(\v2\x17.docuflow.v1.AuditEntryR\aentries\x12\x14\n" +
	"\x05total\x18\x02 \x01(\x05R\x05total\"a\n" +
	"\x12VerifyFieldRequest\x12\x19\n" +
	"\bfield_id\x18\x01 \x01(\tR\afieldId\x120\n" +
	"\x14corrected_value_json\x18\x02 \x01(\tR\x12correctedValueJson\"L\n" +
	"\x13VerifyFieldResponse\x125\n" +
	"\x05field\x18\x01 \x01(\v2\x1f.docuflow.v1.ExtractedFieldViewR\x05field\"]\n" +
	"\x17ExportAuditQueueRequest\x12\x1f\n" +
	"\vtemplate_id\x18\x01 \x01(\tR\n" +
	"templateId\x12!\n" +
	"\fmin_priority\x18\x02 \x01(\tR\vminPriority\".\n" +
	"\x18ExportAuditQueueResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\">\n" +
	"\x17ExportExtractionRequest\x12#\n" +
	"\rextraction_id\x18\x01 \x01(\tR\fextractionId\".\n" +
	"\x18ExportExtractionResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"\xe5\x02\n" +
	"\tFieldRule\x12\x18\n" +
	"\apattern\x18\x01 \x01(\tR\apattern\x12\x15\n" +
	"\x03min\x18\x02 \x01(\x01H\x00R\x03min\x88\x01\x01\x12\x15\n" +
	"\x03max\x18\x03 \x01(\x01H\x01R\x03max\x88\x01\x01\x12\"\n" +
	"\n" +
	"min_length\x18\x04 \x01(\x05H\x02R\tminLength\x88\x01\x01\x12\"\n" +
	"\n" +
	"max_length\x18\x05 \x01(\x05H\x03R\tmaxLength\x88\x01\x01\x12\x16\n" +
	"\x06format\x18\x06 \x01(\tR\x06format\x12,\n" +
	"\x0frecommended_min\x18\a \x01(\x01H\x04R\x0erecommendedMin\x88\x01\x01\x12,\n" +
	"\x0frecommended_max\x18\b \x01(\x01H\x05R\x0erecommendedMax\x88\x01\x01B\x06\n" +
	"\x04_minB\x06\n" +
	"\x04_maxB\r\n" +
	"\v_min_lengthB\r\n" +
	"\v_max_lengthB\x12\n" +
	"\x10_recommended_minB\x12\n" +
	"\x10_recommended_max\"\x83\x01\n" +
	"\x0fFieldDefinition\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x12\n" +
	"\x04type\x18\x02 \x01(\tR\x04type\x12\x1a\n" +
	"\brequired\x18\x03 \x01(\bR\brequired\x12,\n" +
	"\x05rules\x18\x04 \x01(\v2\x16.docuflow.v1.FieldRuleR\x05rules\"}\n" +
	"\x15CreateTemplateRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x1a\n" +
	"\bcategory\x18\x02 \x01(\tR\bcategory\x124\n" +
	"\x06fields\x18\x03 \x03(\v2\x1c.docuflow.v1.FieldDefinitionR\x06fields\"5\n" +
	"\x12GetTemplateRequest\x12\x1f\n" +
	"\vtemplate_id\x18\x01 \x01(\tR\n" +
	"templateId\"\x16\n" +
	"\x14ListTemplatesRequest\"\xe9\x01\n" +
	"\bTemplate\x12\x1f\n" +
	"\vtemplate_id\x18\x01 \x01(\tR\n" +
	"templateId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x1a\n" +
	"\bcategory\x18\x03 \x01(\tR\bcategory\x12\x18\n" +
	"\aversion\x18\x04 \x01(\x05R\aversion\x124\n" +
	"\x06fields\x18\x05 \x03(\v2\x1c.docuflow.v1.FieldDefinitionR\x06fields\x12\x1d\n" +
	"\n" +
	"created_at\x18\x06 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\a \x01(\tR\tupdatedAt\"E\n" +
	"\x10TemplateResponse\x121\n" +
	"\btemplate\x18\x01 \x01(\v2\x15.docuflow.v1.TemplateR\btemplate\"L\n" +
	"\x15ListTemplatesResponse\x123\n" +
	"\ttemplates\x18\x01 \x03(\v2\x15.docuflow.v1.TemplateR\ttemplates\"t\n" +
	"\x1bUpdateTemplateFieldsRequest\x12\x1f\n" +
	"\vtemplate_id\x18\x01 \x01(\tR\n" +
	"templateId\x124\n" +
	"\x06fields\x18\x02 \x03(\v2\x1c.docuflow.v1.FieldDefinitionR\x06fields2\xa8\x02\n" +
	"\x0fDocumentService\x12Y\n" +
	"\x0eUploadDocument\x12\".docuflow.v1.UploadDocumentRequest\x1a#.docuflow.v1.UploadDocumentResponse\x12\\\n" +
	"\x0fReleaseDocument\x12#.docuflow.v1.ReleaseDocumentRequest\x1a$.docuflow.v1.ReleaseDocumentResponse\x12\\\n" +
	"\x0fAnalyzeDocument\x12#.docuflow.v1.AnalyzeDocumentRequest\x1a$.docuflow.v1.AnalyzeDocumentResponse2\xd4\x03\n" +
	"\x11ExtractionService\x12P\n" +
	"\vSubmitBatch\x12\x1f.docuflow.v1.SubmitBatchRequest\x1a .docuflow.v1.SubmitBatchResponse\x12Y\n" +
	"\x0eGetBatchStatus\x12\".docuflow.v1.GetBatchStatusRequest\x1a#.docuflow.v1.GetBatchStatusResponse\x12P\n" +
	"\vCancelBatch\x12\x1f.docuflow.v1.CancelBatchRequest\x1a .docuflow.v1.CancelBatchResponse\x12V\n" +
	"\rGetExtraction\x12!.docuflow.v1.GetExtractionRequest\x1a\".docuflow.v1.GetExtractionResponse\x12h\n" +
	"\x13ReprocessExtraction\x12'.docuflow.v1.ReprocessExtractionRequest\x1a(.docuflow.v1.ReprocessExtractionResponse2\xfa\x02\n" +
	"\fAuditService\x12V\n" +
	"\rGetAuditQueue\x12!.docuflow.v1.GetAuditQueueRequest\x1a\".docuflow.v1.GetAuditQueueResponse\x12P\n" +
	"\vVerifyField\x12\x1f.docuflow.v1.VerifyFieldRequest\x1a .docuflow.v1.VerifyFieldResponse\x12_\n" +
	"\x10ExportAuditQueue\x12$.docuflow.v1.ExportAuditQueueRequest\x1a%.docuflow.v1.ExportAuditQueueResponse\x12_\n" +
	"\x10ExportExtraction\x12$.docuflow.v1.ExportExtractionRequest\x1a%.docuflow.v1.ExportExtractionResponse2\xee\x02\n" +
	"\x0fTemplateService\x12S\n" +
	"\x0eCreateTemplate\x12\".docuflow.v1.CreateTemplateRequest\x1a\x1d.docuflow.v1.TemplateResponse\x12M\n" +
	"\vGetTemplate\x12\x1f.docuflow.v1.GetTemplateRequest\x1a\x1d.docuflow.v1.TemplateResponse\x12V\n" +
	"\rListTemplates\x12!.docuflow.v1.ListTemplatesRequest\x1a\".docuflow.v1.ListTemplatesResponse\x12_\n" +
	"\x14UpdateTemplateFields\x12(.docuflow.v1.UpdateTemplateFieldsRequest\x1a\x1d.docuflow.v1.TemplateResponseBDZBgithub.com/oakfield-labs/docuflow/gen/proto/docuflow/v1;docuflowv1b\x06proto3"

var (
	file_docuflow_v1_docuflow_proto_rawDescOnce sync.Once
	file_docuflow_v1_docuflow_proto_rawDescData []byte
)

func file_docuflow_v1_docuflow_proto_rawDescGZIP() []byte {
	file_docuflow_v1_docuflow_proto_rawDescOnce.Do(func() {
		file_docuflow_v1_docuflow_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_docuflow_v1_docuflow_proto_rawDesc), len(file_docuflow_v1_docuflow_proto_rawDesc)))
	})
	return file_docuflow_v1_docuflow_proto_rawDescData
}

var file_docuflow_v1_docuflow_proto_msgTypes = make([]protoimpl.MessageInfo, 36)
var file_docuflow_v1_docuflow_proto_goTypes = []any{
	(*UploadDocumentRequest)(nil),       // 0: docuflow.v1.UploadDocumentRequest
	(*UploadDocumentResponse)(nil),      // 1: docuflow.v1.UploadDocumentResponse
	(*ReleaseDocumentRequest)(nil),      // 2: docuflow.v1.ReleaseDocumentRequest
	(*ReleaseDocumentResponse)(nil),     // 3: docuflow.v1.ReleaseDocumentResponse
	(*AnalyzeDocumentRequest)(nil),      // 4: docuflow.v1.AnalyzeDocumentRequest
	(*AnalyzeDocumentResponse)(nil),     // 5: docuflow.v1.AnalyzeDocumentResponse
	(*ExtractionUnit)(nil),              // 6: docuflow.v1.ExtractionUnit
	(*SubmitBatchRequest)(nil),          // 7: docuflow.v1.SubmitBatchRequest
	(*SubmitBatchResponse)(nil),         // 8: docuflow.v1.SubmitBatchResponse
	(*GetBatchStatusRequest)(nil),       // 9: docuflow.v1.GetBatchStatusRequest
	(*GetBatchStatusResponse)(nil),      // 10: docuflow.v1.GetBatchStatusResponse
	(*CancelBatchRequest)(nil),          // 11: docuflow.v1.CancelBatchRequest
	(*CancelBatchResponse)(nil),         // 12: docuflow.v1.CancelBatchResponse
	(*GetExtractionRequest)(nil),        // 13: docuflow.v1.GetExtractionRequest
	(*ExtractedFieldView)(nil),          // 14: docuflow.v1.ExtractedFieldView
	(*GetExtractionResponse)(nil),       // 15: docuflow.v1.GetExtractionResponse
	(*ReprocessExtractionRequest)(nil),  // 16: docuflow.v1.ReprocessExtractionRequest
	(*ReprocessExtractionResponse)(nil), // 17: docuflow.v1.ReprocessExtractionResponse
	(*GetAuditQueueRequest)(nil),        // 18: docuflow.v1.GetAuditQueueRequest
	(*AuditEntry)(nil),                  // 19: docuflow.v1.AuditEntry
	(*GetAuditQueueResponse)(nil),       // 20: docuflow.v1.GetAuditQueueResponse
	(*VerifyFieldRequest)(nil),          // 21: docuflow.v1.VerifyFieldRequest
	(*VerifyFieldResponse)(nil),         // 22: docuflow.v1.VerifyFieldResponse
	(*ExportAuditQueueRequest)(nil),     // 23: docuflow.v1.ExportAuditQueueRequest
	(*ExportAuditQueueResponse)(nil),    // 24: docuflow.v1.ExportAuditQueueResponse
	(*ExportExtractionRequest)(nil),     // 25: docuflow.v1.ExportExtractionRequest
	(*ExportExtractionResponse)(nil),    // 26: docuflow.v1.ExportExtractionResponse
	(*FieldRule)(nil),                   // 27: docuflow.v1.FieldRule
	(*FieldDefinition)(nil),             // 28: docuflow.v1.FieldDefinition
	(*CreateTemplateRequest)(nil),       // 29: docuflow.v1.CreateTemplateRequest
	(*GetTemplateRequest)(nil),          // 30: docuflow.v1.GetTemplateRequest
	(*ListTemplatesRequest)(nil),        // 31: docuflow.v1.ListTemplatesRequest
	(*Template)(nil),                    // 32: docuflow.v1.Template
	(*TemplateResponse)(nil),            // 33: docuflow.v1.TemplateResponse
	(*ListTemplatesResponse)(nil),       // 34: docuflow.v1.ListTemplatesResponse
	(*UpdateTemplateFieldsRequest)(nil), // 35: docuflow.v1.UpdateTemplateFieldsRequest
}
var file_docuflow_v1_docuflow_proto_depIdxs = []int32{
	6,  // 0: docuflow.v1.SubmitBatchRequest.units:type_name -> docuflow.v1.ExtractionUnit
	14, // 1: docuflow.v1.GetExtractionResponse.fields:type_name -> docuflow.v1.ExtractedFieldView
	14, // 2: docuflow.v1.AuditEntry.field:type_name -> docuflow.v1.ExtractedFieldView
	19, // 3: docuflow.v1.GetAuditQueueResponse.entries:type_name -> docuflow.v1.AuditEntry
	14, // 4: docuflow.v1.VerifyFieldResponse.field:type_name -> docuflow.v1.ExtractedFieldView
	27, // 5: docuflow.v1.FieldDefinition.rules:type_name -> docuflow.v1.FieldRule
	28, // 6: docuflow.v1.CreateTemplateRequest.fields:type_name -> docuflow.v1.FieldDefinition
	28, // 7: docuflow.v1.Template.fields:type_name -> docuflow.v1.FieldDefinition
	32, // 8: docuflow.v1.TemplateResponse.template:type_name -> docuflow.v1.Template
	32, // 9: docuflow.v1.ListTemplatesResponse.templates:type_name -> docuflow.v1.Template
	28, // 10: docuflow.v1.UpdateTemplateFieldsRequest.fields:type_name -> docuflow.v1.FieldDefinition
	0,  // 11: docuflow.v1.DocumentService.UploadDocument:input_type -> docuflow.v1.UploadDocumentRequest
	2,  // 12: docuflow.v1.DocumentService.ReleaseDocument:input_type -> docuflow.v1.ReleaseDocumentRequest
	4,  // 13: docuflow.v1.DocumentService.AnalyzeDocument:input_type -> docuflow.v1.AnalyzeDocumentRequest
	7,  // 14: docuflow.v1.ExtractionService.SubmitBatch:input_type -> docuflow.v1.SubmitBatchRequest
	9,  // 15: docuflow.v1.ExtractionService.GetBatchStatus:input_type -> docuflow.v1.GetBatchStatusRequest
	11, // 16: docuflow.v1.ExtractionService.CancelBatch:input_type -> docuflow.v1.CancelBatchRequest
	13, // 17: docuflow.v1.ExtractionService.GetExtraction:input_type -> docuflow.v1.GetExtractionRequest
	16, // 18: docuflow.v1.ExtractionService.ReprocessExtraction:input_type -> docuflow.v1.ReprocessExtractionRequest
	18, // 19: docuflow.v1.AuditService.GetAuditQueue:input_type -> docuflow.v1.GetAuditQueueRequest
	21, // 20: docuflow.v1.AuditService.VerifyField:input_type -> docuflow.v1.VerifyFieldRequest
	23, // 21: docuflow.v1.AuditService.ExportAuditQueue:input_type -> docuflow.v1.ExportAuditQueueRequest
	25, // 22: docuflow.v1.AuditService.ExportExtraction:input_type -> docuflow.v1.ExportExtractionRequest
	29, // 23: docuflow.v1.TemplateService.CreateTemplate:input_type -> docuflow.v1.CreateTemplateRequest
	30, // 24: docuflow.v1.TemplateService.GetTemplate:input_type -> docuflow.v1.GetTemplateRequest
	31, // 25: docuflow.v1.TemplateService.ListTemplates:input_type -> docuflow.v1.ListTemplatesRequest
	35, // 26: docuflow.v1.TemplateService.UpdateTemplateFields:input_type -> docuflow.v1.UpdateTemplateFieldsRequest
	1,  // 27: docuflow.v1.DocumentService.UploadDocument:output_type -> docuflow.v1.UploadDocumentResponse
	3,  // 28: docuflow.v1.DocumentService.ReleaseDocument:output_type -> docuflow.v1.ReleaseDocumentResponse
	5,  // 29: docuflow.v1.DocumentService.AnalyzeDocument:output_type -> docuflow.v1.AnalyzeDocumentResponse
	8,  // 30: docuflow.v1.ExtractionService.SubmitBatch:output_type -> docuflow.v1.SubmitBatchResponse
	10, // 31: docuflow.v1.ExtractionService.GetBatchStatus:output_type -> docuflow.v1.GetBatchStatusResponse
	12, // 32: docuflow.v1.ExtractionService.CancelBatch:output_type -> docuflow.v1.CancelBatchResponse
	15, // 33: docuflow.v1.ExtractionService.GetExtraction:output_type -> docuflow.v1.GetExtractionResponse
	17, // 34: docuflow.v1.ExtractionService.ReprocessExtraction:output_type -> docuflow.v1.ReprocessExtractionResponse
	20, // 35: docuflow.v1.AuditService.GetAuditQueue:output_type -> docuflow.v1.GetAuditQueueResponse
	22, // 36: docuflow.v1.AuditService.VerifyField:output_type -> docuflow.v1.VerifyFieldResponse
	24, // 37: docuflow.v1.AuditService.ExportAuditQueue:output_type -> docuflow.v1.ExportAuditQueueResponse
	26, // 38: docuflow.v1.AuditService.ExportExtraction:output_type -> docuflow.v1.ExportExtractionResponse
	33, // 39: docuflow.v1.TemplateService.CreateTemplate:output_type -> docuflow.v1.TemplateResponse
	33, // 40: docuflow.v1.TemplateService.GetTemplate:output_type -> docuflow.v1.TemplateResponse
	34, // 41: docuflow.v1.TemplateService.ListTemplates:output_type -> docuflow.v1.ListTemplatesResponse
	33, // 42: docuflow.v1.TemplateService.UpdateTemplateFields:output_type -> docuflow.v1.TemplateResponse
	27, // [27:43] is the sub-list for method output_type
	11, // [11:27] is the sub-list for method input_type
	11, // [11:11] is the sub-list for extension type_name
	11, // [11:11] is the sub-list for extension extendee
	0,  // [0:11] is the sub-list for field type_name
}

func init() { file_docuflow_v1_docuflow_proto_init() }
func file_docuflow_v1_docuflow_proto_init() {
	if File_docuflow_v1_docuflow_proto != nil {
		return
	}
	file_docuflow_v1_docuflow_proto_msgTypes[27].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_docuflow_v1_docuflow_proto_rawDesc), len(file_docuflow_v1_docuflow_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   36,
			NumExtensions: 0,
			NumServices:   4,
		},
		GoTypes:           file_docuflow_v1_docuflow_proto_goTypes,
		DependencyIndexes: file_docuflow_v1_docuflow_proto_depIdxs,
		MessageInfos:      file_docuflow_v1_docuflow_proto_msgTypes,
	}.Build()
	File_docuflow_v1_docuflow_proto = out.File
	file_docuflow_v1_docuflow_proto_goTypes = nil
	file_docuflow_v1_docuflow_proto_depIdxs = nil
}
