// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: steward/v1/steward.proto

package stewardv1

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

// ReceiptFilter mirrors the bulk filter: absent fields mean no constraint.
// Dates are YYYY-MM-DD; empty string means unbounded.
type ReceiptFilter struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DateStart     string                 `protobuf:"bytes,1,opt,name=date_start,json=dateStart,proto3" json:"date_start,omitempty"`
	DateEnd       string                 `protobuf:"bytes,2,opt,name=date_end,json=dateEnd,proto3" json:"date_end,omitempty"`
	AmountMin     *float64               `protobuf:"fixed64,3,opt,name=amount_min,json=amountMin,proto3,oneof" json:"amount_min,omitempty"`
	AmountMax     *float64               `protobuf:"fixed64,4,opt,name=amount_max,json=amountMax,proto3,oneof" json:"amount_max,omitempty"`
	Categories    []string               `protobuf:"bytes,5,rep,name=categories,proto3" json:"categories,omitempty"`
	Merchants     []string               `protobuf:"bytes,6,rep,name=merchants,proto3" json:"merchants,omitempty"`
	ConfidenceMin *float64               `protobuf:"fixed64,7,opt,name=confidence_min,json=confidenceMin,proto3,oneof" json:"confidence_min,omitempty"`
	ConfidenceMax *float64               `protobuf:"fixed64,8,opt,name=confidence_max,json=confidenceMax,proto3,oneof" json:"confidence_max,omitempty"`
	HasSummary    *bool                  `protobuf:"varint,9,opt,name=has_summary,json=hasSummary,proto3,oneof" json:"has_summary,omitempty"`
	SearchQuery   string                 `protobuf:"bytes,10,opt,name=search_query,json=searchQuery,proto3" json:"search_query,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReceiptFilter) Reset() {
	*x = ReceiptFilter{}
	mi := &file_steward_v1_steward_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReceiptFilter) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReceiptFilter) ProtoMessage() {}

func (x *ReceiptFilter) ProtoReflect() protoreflect.Message {
	mi := &file_steward_v1_steward_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReceiptFilter.ProtoReflect.Descriptor instead.
func (*ReceiptFilter) Descriptor() ([]byte, []int) {
	return file_steward_v1_steward_proto_rawDescGZIP(), []int{0}
}

func (x *ReceiptFilter) GetDateStart() string {
	if x != nil {
		return x.DateStart
	}
	return ""
}

func (x *ReceiptFilter) GetDateEnd() string {
	if x != nil {
		return x.DateEnd
	}
	return ""
}

func (x *ReceiptFilter) GetAmountMin() float64 {
	if x != nil && x.AmountMin != nil {
		return *x.AmountMin
	}
	return 0
}

func (x *ReceiptFilter) GetAmountMax() float64 {
	if x != nil && x.AmountMax != nil {
		return *x.AmountMax
	}
	return 0
}

func (x *ReceiptFilter) GetCategories() []string {
	if x != nil {
		return x.Categories
	}
	return nil
}

func (x *ReceiptFilter) GetMerchants() []string {
	if x != nil {
		return x.Merchants
	}
	return nil
}

func (x *ReceiptFilter) GetConfidenceMin() float64 {
	if x != nil && x.ConfidenceMin != nil {
		return *x.ConfidenceMin
	}
	return 0
}

func (x *ReceiptFilter) GetConfidenceMax() float64 {
	if x != nil && x.ConfidenceMax != nil {
		return *x.ConfidenceMax
	}
	return 0
}

func (x *ReceiptFilter) GetHasSummary() bool {
	if x != nil && x.HasSummary != nil {
		return *x.HasSummary
	}
	return false
}

func (x *ReceiptFilter) GetSearchQuery() string {
	if x != nil {
		return x.SearchQuery
	}
	return ""
}

type Receipt struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Merchant        string                 `protobuf:"bytes,2,opt,name=merchant,proto3" json:"merchant,omitempty"`
	Total           string                 `protobuf:"bytes,3,opt,name=total,proto3" json:"total,omitempty"`                                   // decimal string, two places
	PurchaseDate    string                 `protobuf:"bytes,4,opt,name=purchase_date,json=purchaseDate,proto3" json:"purchase_date,omitempty"` // YYYY-MM-DD
	Category        string                 `protobuf:"bytes,5,opt,name=category,proto3" json:"category,omitempty"`
	Subcategory     string                 `protobuf:"bytes,6,opt,name=subcategory,proto3" json:"subcategory,omitempty"`
	ConfidenceScore *float64               `protobuf:"fixed64,7,opt,name=confidence_score,json=confidenceScore,proto3,oneof" json:"confidence_score,omitempty"`
	Summary         string                 `protobuf:"bytes,8,opt,name=summary,proto3" json:"summary,omitempty"`
	ImageUrl        string                 `protobuf:"bytes,9,opt,name=image_url,json=imageUrl,proto3" json:"image_url,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Receipt) Reset() {
	*x = Receipt{}
	mi := &file_steward_v1_steward_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Receipt) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Receipt) ProtoMessage() {}

func (x *Receipt) ProtoReflect() protoreflect.Message {
	mi := &file_steward_v1_steward_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Receipt.ProtoReflect.Descriptor instead.
func (*Receipt) Descriptor() ([]byte, []int) {
	return file_steward_v1_steward_proto_rawDescGZIP(), []int{1}
}

func (x *Receipt) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Receipt) GetMerchant() string {
	if x != nil {
		return x.Merchant
	}
	return ""
}

func (x *Receipt) GetTotal() string {
	if x != nil {
		return x.Total
	}
	return ""
}

func (x *Receipt) GetPurchaseDate() string {
	if x != nil {
		return x.PurchaseDate
	}
	return ""
}

func (x *Receipt) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *Receipt) GetSubcategory() string {
	if x != nil {
		return x.Subcategory
	}
	return ""
}

func (x *Receipt) GetConfidenceScore() float64 {
	if x != nil && x.ConfidenceScore != nil {
		return *x.ConfidenceScore
	}
	return 0
}

func (x *Receipt) GetSummary() string {
	if x != nil {
		return x.Summary
	}
	return ""
}

func (x *Receipt) GetImageUrl() string {
	if x != nil {
		return x.ImageUrl
	}
	return ""
}

type FilterReceiptsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Filter        *ReceiptFilter         `protobuf:"bytes,2,opt,name=filter,proto3" json:"filter,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FilterReceiptsRequest) Reset() {
	*x = FilterReceiptsRequest{}
	mi := &file_steward_v1_steward_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FilterReceiptsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FilterReceiptsRequest) ProtoMessage() {}

func (x *FilterReceiptsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_steward_v1_steward_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FilterReceiptsRequest.ProtoReflect.Descriptor instead.
func (*FilterReceiptsRequest) Descriptor() ([]byte, []int) {
	return file_steward_v1_steward_proto_rawDescGZIP(), []int{2}
}

func (x *FilterReceiptsRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *FilterReceiptsRequest) GetFilter() *ReceiptFilter {
	if x != nil {
		return x.Filter
	}
	return nil
}

type FilterReceiptsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Receipts      []*Receipt             `protobuf:"bytes,1,rep,name=receipts,proto3" json:"receipts,omitempty"`
	TotalCount    int32                  `protobuf:"varint,2,opt,name=total_count,json=totalCount,proto3" json:"total_count,omitempty"`
	FilteredCount int32                  `protobuf:"varint,3,opt,name=filtered_count,json=filteredCount,proto3" json:"filtered_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FilterReceiptsResponse) Reset() {
	*x = FilterReceiptsResponse{}
	mi := &file_steward_v1_steward_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FilterReceiptsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FilterReceiptsResponse) ProtoMessage() {}

func (x *FilterReceiptsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_steward_v1_steward_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FilterReceiptsResponse.ProtoReflect.Descriptor instead.
func (*FilterReceiptsResponse) Descriptor() ([]byte, []int) {
	return file_steward_v1_steward_proto_rawDescGZIP(), []int{3}
}

func (x *FilterReceiptsResponse) GetReceipts() []*Receipt {
	if x != nil {
		return x.Receipts
	}
	return nil
}

func (x *FilterReceiptsResponse) GetTotalCount() int32 {
	if x != nil {
		return x.TotalCount
	}
	return 0
}

func (x *FilterReceiptsResponse) GetFilteredCount() int32 {
	if x != nil {
		return x.FilteredCount
	}
	return 0
}

type GetFilteredReceiptIdsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Filter        *ReceiptFilter         `protobuf:"bytes,2,opt,name=filter,proto3" json:"filter,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetFilteredReceiptIdsRequest) Reset() {
	*x = GetFilteredReceiptIdsRequest{}
	mi := &file_steward_v1_steward_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetFilteredReceiptIdsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetFilteredReceiptIdsRequest) ProtoMessage() {}

func (x *GetFilteredReceiptIdsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_steward_v1_steward_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetFilteredReceiptIdsRequest.ProtoReflect.Descriptor instead.
func (*GetFilteredReceiptIdsRequest) Descriptor() ([]byte, []int) {
	return file_steward_v1_steward_proto_rawDescGZIP(), []int{4}
}

func (x *GetFilteredReceiptIdsRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *GetFilteredReceiptIdsRequest) GetFilter() *ReceiptFilter {
	if x != nil {
		return x.Filter
	}
	return nil
}

type GetFilteredReceiptIdsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReceiptIds    []string               `protobuf:"bytes,1,rep,name=receipt_ids,json=receiptIds,proto3" json:"receipt_ids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetFilteredReceiptIdsResponse) Reset() {
	*x = GetFilteredReceiptIdsResponse{}
	mi := &file_steward_v1_steward_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetFilteredReceiptIdsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetFilteredReceiptIdsResponse) ProtoMessage() {}

func (x *GetFilteredReceiptIdsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_steward_v1_steward_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetFilteredReceiptIdsResponse.ProtoReflect.Descriptor instead.
func (*GetFilteredReceiptIdsResponse) Descriptor() ([]byte, []int) {
	return file_steward_v1_steward_proto_rawDescGZIP(), []int{5}
}

func (x *GetFilteredReceiptIdsResponse) GetReceiptIds() []string {
	if x != nil {
		return x.ReceiptIds
	}
	return nil
}

type GetFilterOptionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetFilterOptionsRequest) Reset() {
	*x = GetFilterOptionsRequest{}
	mi := &file_steward_v1_steward_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetFilterOptionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetFilterOptionsRequest) ProtoMessage() {}

func (x *GetFilterOptionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_steward_v1_steward_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetFilterOptionsRequest.ProtoReflect.Descriptor instead.
func (*GetFilterOptionsRequest) Descriptor() ([]byte, []int) {
	return file_steward_v1_steward_proto_rawDescGZIP(), []int{6}
}

func (x *GetFilterOptionsRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type GetFilterOptionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Categories    []string               `protobuf:"bytes,1,rep,name=categories,proto3" json:"categories,omitempty"`
	Merchants     []string               `protobuf:"bytes,2,rep,name=merchants,proto3" json:"merchants,omitempty"`
	DateMin       string                 `protobuf:"bytes,3,opt,name=date_min,json=dateMin,proto3" json:"date_min,omitempty"` // YYYY-MM-DD
	DateMax       string                 `protobuf:"bytes,4,opt,name=date_max,json=dateMax,proto3" json:"date_max,omitempty"`
	AmountMin     float64                `protobuf:"fixed64,5,opt,name=amount_min,json=amountMin,proto3" json:"amount_min,omitempty"`
	AmountMax     float64                `protobuf:"fixed64,6,opt,name=amount_max,json=amountMax,proto3" json:"amount_max,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetFilterOptionsResponse) Reset() {
	*x = GetFilterOptionsResponse{}
	mi := &file_steward_v1_steward_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetFilterOptionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetFilterOptionsResponse) ProtoMessage() {}

func (x *GetFilterOptionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_steward_v1_steward_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetFilterOptionsResponse.ProtoReflect.Descriptor instead.
func (*GetFilterOptionsResponse) Descriptor() ([]byte, []int) {
	return file_steward_v1_steward_proto_rawDescGZIP(), []int{7}
}

func (x *GetFilterOptionsResponse) GetCategories() []string {
	if x != nil {
		return x.Categories
	}
	return nil
}

func (x *GetFilterOptionsResponse) GetMerchants() []string {
	if x != nil {
		return x.Merchants
	}
	return nil
}

func (x *GetFilterOptionsResponse) GetDateMin() string {
	if x != nil {
		return x.DateMin
	}
	return ""
}

func (x *GetFilterOptionsResponse) GetDateMax() string {
	if x != nil {
		return x.DateMax
	}
	return ""
}

func (x *GetFilterOptionsResponse) GetAmountMin() float64 {
	if x != nil {
		return x.AmountMin
	}
	return 0
}

func (x *GetFilterOptionsResponse) GetAmountMax() float64 {
	if x != nil {
		return x.AmountMax
	}
	return 0
}

type GetReceiptStatsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Filter        *ReceiptFilter         `protobuf:"bytes,2,opt,name=filter,proto3" json:"filter,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetReceiptStatsRequest) Reset() {
	*x = GetReceiptStatsRequest{}
	mi := &file_steward_v1_steward_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetReceiptStatsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReceiptStatsRequest) ProtoMessage() {}

func (x *GetReceiptStatsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_steward_v1_steward_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetReceiptStatsRequest.ProtoReflect.Descriptor instead.
func (*GetReceiptStatsRequest) Descriptor() ([]byte, []int) {
	return file_steward_v1_steward_proto_rawDescGZIP(), []int{8}
}

func (x *GetReceiptStatsRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *GetReceiptStatsRequest) GetFilter() *ReceiptFilter {
	if x != nil {
		return x.Filter
	}
	return nil
}

type CategoryStat struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Category      string                 `protobuf:"bytes,1,opt,name=category,proto3" json:"category,omitempty"`
	Count         int32                  `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
	Total         float64                `protobuf:"fixed64,3,opt,name=total,proto3" json:"total,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CategoryStat) Reset() {
	*x = CategoryStat{}
	mi := &file_steward_v1_steward_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CategoryStat) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CategoryStat) ProtoMessage() {}

func (x *CategoryStat) ProtoReflect() protoreflect.Message {
	mi := &file_steward_v1_steward_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CategoryStat.ProtoReflect.Descriptor instead.
func (*CategoryStat) Descriptor() ([]byte, []int) {
	return file_steward_v1_steward_proto_rawDescGZIP(), []int{9}
}

func (x *CategoryStat) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *CategoryStat) GetCount() int32 {
	if x != nil {
		return x.Count
	}
	return 0
}

func (x *CategoryStat) GetTotal() float64 {
	if x != nil {
		return x.Total
	}
	return 0
}

type MonthStat struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Month         string                 `protobuf:"bytes,1,opt,name=month,proto3" json:"month,omitempty"` // YYYY-MM
	Count         int32                  `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
	Total         float64                `protobuf:"fixed64,3,opt,name=total,proto3" json:"total,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MonthStat) Reset() {
	*x = MonthStat{}
	mi := &file_steward_v1_steward_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MonthStat) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MonthStat) ProtoMessage() {}

func (x *MonthStat) ProtoReflect() protoreflect.Message {
	mi := &file_steward_v1_steward_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MonthStat.ProtoReflect.Descriptor instead.
func (*MonthStat) Descriptor() ([]byte, []int) {
	return file_steward_v1_steward_proto_rawDescGZIP(), []int{10}
}

func (x *MonthStat) GetMonth() string {
	if x != nil {
		return x.Month
	}
	return ""
}

func (x *MonthStat) GetCount() int32 {
	if x != nil {
		return x.Count
	}
	return 0
}

func (x *MonthStat) GetTotal() float64 {
	if x != nil {
		return x.Total
	}
	return 0
}

type GetReceiptStatsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReceiptCount  int32                  `protobuf:"varint,1,opt,name=receipt_count,json=receiptCount,proto3" json:"receipt_count,omitempty"`
	TotalAmount   float64                `protobuf:"fixed64,2,opt,name=total_amount,json=totalAmount,proto3" json:"total_amount,omitempty"`
	AverageAmount float64                `protobuf:"fixed64,3,opt,name=average_amount,json=averageAmount,proto3" json:"average_amount,omitempty"`
	ByCategory    []*CategoryStat        `protobuf:"bytes,4,rep,name=by_category,json=byCategory,proto3" json:"by_category,omitempty"`
	ByMonth       []*MonthStat           `protobuf:"bytes,5,rep,name=by_month,json=byMonth,proto3" json:"by_month,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetReceiptStatsResponse) Reset() {
	*x = GetReceiptStatsResponse{}
	mi := &file_steward_v1_steward_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetReceiptStatsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReceiptStatsResponse) ProtoMessage() {}

func (x *GetReceiptStatsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_steward_v1_steward_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetReceiptStatsResponse.ProtoReflect.Descriptor instead.
func (*GetReceiptStatsResponse) Descriptor() ([]byte, []int) {
	return file_steward_v1_steward_proto_rawDescGZIP(), []int{11}
}

func (x *GetReceiptStatsResponse) GetReceiptCount() int32 {
	if x != nil {
		return x.ReceiptCount
	}
	return 0
}

func (x *GetReceiptStatsResponse) GetTotalAmount() float64 {
	if x != nil {
		return x.TotalAmount
	}
	return 0
}

func (x *GetReceiptStatsResponse) GetAverageAmount() float64 {
	if x != nil {
		return x.AverageAmount
	}
	return 0
}

func (x *GetReceiptStatsResponse) GetByCategory() []*CategoryStat {
	if x != nil {
		return x.ByCategory
	}
	return nil
}

func (x *GetReceiptStatsResponse) GetByMonth() []*MonthStat {
	if x != nil {
		return x.ByMonth
	}
	return nil
}

type BulkUpdateRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	ReceiptIds    []string               `protobuf:"bytes,2,rep,name=receipt_ids,json=receiptIds,proto3" json:"receipt_ids,omitempty"`
	Category      *string                `protobuf:"bytes,3,opt,name=category,proto3,oneof" json:"category,omitempty"`
	Subcategory   *string                `protobuf:"bytes,4,opt,name=subcategory,proto3,oneof" json:"subcategory,omitempty"`
	Merchant      *string                `protobuf:"bytes,5,opt,name=merchant,proto3,oneof" json:"merchant,omitempty"`
	Summary       *string                `protobuf:"bytes,6,opt,name=summary,proto3,oneof" json:"summary,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BulkUpdateRequest) Reset() {
	*x = BulkUpdateRequest{}
	mi := &file_steward_v1_steward_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BulkUpdateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BulkUpdateRequest) ProtoMessage() {}

func (x *BulkUpdateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_steward_v1_steward_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BulkUpdateRequest.ProtoReflect.Descriptor instead.
func (*BulkUpdateRequest) Descriptor() ([]byte, []int) {
	return file_steward_v1_steward_proto_rawDescGZIP(), []int{12}
}

func (x *BulkUpdateRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *BulkUpdateRequest) GetReceiptIds() []string {
	if x != nil {
		return x.ReceiptIds
	}
	return nil
}

func (x *BulkUpdateRequest) GetCategory() string {
	if x != nil && x.Category != nil {
		return *x.Category
	}
	return ""
}

func (x *BulkUpdateRequest) GetSubcategory() string {
	if x != nil && x.Subcategory != nil {
		return *x.Subcategory
	}
	return ""
}

func (x *BulkUpdateRequest) GetMerchant() string {
	if x != nil && x.Merchant != nil {
		return *x.Merchant
	}
	return ""
}

func (x *BulkUpdateRequest) GetSummary() string {
	if x != nil && x.Summary != nil {
		return *x.Summary
	}
	return ""
}

type OperationError struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReceiptId     string                 `protobuf:"bytes,1,opt,name=receipt_id,json=receiptId,proto3" json:"receipt_id,omitempty"`
	Error         string                 `protobuf:"bytes,2,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *OperationError) Reset() {
	*x = OperationError{}
	mi := &file_steward_v1_steward_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OperationError) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OperationError) ProtoMessage() {}

func (x *OperationError) ProtoReflect() protoreflect.Message {
	mi := &file_steward_v1_steward_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OperationError.ProtoReflect.Descriptor instead.
func (*OperationError) Descriptor() ([]byte, []int) {
	return file_steward_v1_steward_proto_rawDescGZIP(), []int{13}
}

func (x *OperationError) GetReceiptId() string {
	if x != nil {
		return x.ReceiptId
	}
	return ""
}

func (x *OperationError) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type BulkOperationResult struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Success        bool                   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	ProcessedCount int32                  `protobuf:"varint,2,opt,name=processed_count,json=processedCount,proto3" json:"processed_count,omitempty"`
	SuccessCount   int32                  `protobuf:"varint,3,opt,name=success_count,json=successCount,proto3" json:"success_count,omitempty"`
	ErrorCount     int32                  `protobuf:"varint,4,opt,name=error_count,json=errorCount,proto3" json:"error_count,omitempty"`
	Errors         []*OperationError      `protobuf:"bytes,5,rep,name=errors,proto3" json:"errors,omitempty"`
	OperationId    string                 `protobuf:"bytes,6,opt,name=operation_id,json=operationId,proto3" json:"operation_id,omitempty"`
	DurationMs     int64                  `protobuf:"varint,7,opt,name=duration_ms,json=durationMs,proto3" json:"duration_ms,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *BulkOperationResult) Reset() {
	*x = BulkOperationResult{}
	mi := &file_steward_v1_steward_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BulkOperationResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BulkOperationResult) ProtoMessage() {}

func (x *BulkOperationResult) ProtoReflect() protoreflect.Message {
	mi := &file_steward_v1_steward_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BulkOperationResult.ProtoReflect.Descriptor instead.
func (*BulkOperationResult) Descriptor() ([]byte, []int) {
	return file_steward_v1_steward_proto_rawDescGZIP(), []int{14}
}

func (x *BulkOperationResult) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *BulkOperationResult) GetProcessedCount() int32 {
	if x != nil {
		return x.ProcessedCount
	}
	return 0
}

func (x *BulkOperationResult) GetSuccessCount() int32 {
	if x != nil {
		return x.SuccessCount
	}
	return 0
}

func (x *BulkOperationResult) GetErrorCount() int32 {
	if x != nil {
		return x.ErrorCount
	}
	return 0
}

func (x *BulkOperationResult) GetErrors() []*OperationError {
	if x != nil {
		return x.Errors
	}
	return nil
}

func (x *BulkOperationResult) GetOperationId() string {
	if x != nil {
		return x.OperationId
	}
	return ""
}

func (x *BulkOperationResult) GetDurationMs() int64 {
	if x != nil {
		return x.DurationMs
	}
	return 0
}

type BulkUpdateResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Result        *BulkOperationResult   `protobuf:"bytes,1,opt,name=result,proto3" json:"result,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BulkUpdateResponse) Reset() {
	*x = BulkUpdateResponse{}
	mi := &file_steward_v1_steward_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BulkUpdateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BulkUpdateResponse) ProtoMessage() {}

func (x *BulkUpdateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_steward_v1_steward_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BulkUpdateResponse.ProtoReflect.Descriptor instead.
func (*BulkUpdateResponse) Descriptor() ([]byte, []int) {
	return file_steward_v1_steward_proto_rawDescGZIP(), []int{15}
}

func (x *BulkUpdateResponse) GetResult() *BulkOperationResult {
	if x != nil {
		return x.Result
	}
	return nil
}

type BulkDeleteRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	ReceiptIds    []string               `protobuf:"bytes,2,rep,name=receipt_ids,json=receiptIds,proto3" json:"receipt_ids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BulkDeleteRequest) Reset() {
	*x = BulkDeleteRequest{}
	mi := &file_steward_v1_steward_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BulkDeleteRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BulkDeleteRequest) ProtoMessage() {}

func (x *BulkDeleteRequest) ProtoReflect() protoreflect.Message {
	mi := &file_steward_v1_steward_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BulkDeleteRequest.ProtoReflect.Descriptor instead.
func (*BulkDeleteRequest) Descriptor() ([]byte, []int) {
	return file_steward_v1_steward_proto_rawDescGZIP(), []int{16}
}

func (x *BulkDeleteRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *BulkDeleteRequest) GetReceiptIds() []string {
	if x != nil {
		return x.ReceiptIds
	}
	return nil
}

type BulkDeleteResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Result        *BulkOperationResult   `protobuf:"bytes,1,opt,name=result,proto3" json:"result,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BulkDeleteResponse) Reset() {
	*x = BulkDeleteResponse{}
	mi := &file_steward_v1_steward_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BulkDeleteResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BulkDeleteResponse) ProtoMessage() {}

func (x *BulkDeleteResponse) ProtoReflect() protoreflect.Message {
	mi := &file_steward_v1_steward_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BulkDeleteResponse.ProtoReflect.Descriptor instead.
func (*BulkDeleteResponse) Descriptor() ([]byte, []int) {
	return file_steward_v1_steward_proto_rawDescGZIP(), []int{17}
}

func (x *BulkDeleteResponse) GetResult() *BulkOperationResult {
	if x != nil {
		return x.Result
	}
	return nil
}

type ExportReceiptsRequest struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	UserId           string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	ReceiptIds       []string               `protobuf:"bytes,2,rep,name=receipt_ids,json=receiptIds,proto3" json:"receipt_ids,omitempty"`
	Format           string                 `protobuf:"bytes,3,opt,name=format,proto3" json:"format,omitempty"` // csv|json|pdf|xlsx
	IncludeAnalytics bool                   `protobuf:"varint,4,opt,name=include_analytics,json=includeAnalytics,proto3" json:"include_analytics,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *ExportReceiptsRequest) Reset() {
	*x = ExportReceiptsRequest{}
	mi := &file_steward_v1_steward_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReceiptsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReceiptsRequest) ProtoMessage() {}

func (x *ExportReceiptsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_steward_v1_steward_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReceiptsRequest.ProtoReflect.Descriptor instead.
func (*ExportReceiptsRequest) Descriptor() ([]byte, []int) {
	return file_steward_v1_steward_proto_rawDescGZIP(), []int{18}
}

func (x *ExportReceiptsRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ExportReceiptsRequest) GetReceiptIds() []string {
	if x != nil {
		return x.ReceiptIds
	}
	return nil
}

func (x *ExportReceiptsRequest) GetFormat() string {
	if x != nil {
		return x.Format
	}
	return ""
}

func (x *ExportReceiptsRequest) GetIncludeAnalytics() bool {
	if x != nil {
		return x.IncludeAnalytics
	}
	return false
}

type ExportReceiptsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Payload       []byte                 `protobuf:"bytes,1,opt,name=payload,proto3" json:"payload,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	ContentType   string                 `protobuf:"bytes,3,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	Size          int64                  `protobuf:"varint,4,opt,name=size,proto3" json:"size,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReceiptsResponse) Reset() {
	*x = ExportReceiptsResponse{}
	mi := &file_steward_v1_steward_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReceiptsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReceiptsResponse) ProtoMessage() {}

func (x *ExportReceiptsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_steward_v1_steward_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReceiptsResponse.ProtoReflect.Descriptor instead.
func (*ExportReceiptsResponse) Descriptor() ([]byte, []int) {
	return file_steward_v1_steward_proto_rawDescGZIP(), []int{19}
}

func (x *ExportReceiptsResponse) GetPayload() []byte {
	if x != nil {
		return x.Payload
	}
	return nil
}

func (x *ExportReceiptsResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ExportReceiptsResponse) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *ExportReceiptsResponse) GetSize() int64 {
	if x != nil {
		return x.Size
	}
	return 0
}

var File_steward_v1_steward_proto protoreflect.FileDescriptor

const file_steward_v1_steward_proto_rawDesc = "" +
	"\n" +
	"\x18steward/v1/steward.proto\x12\n" +
	"steward.v1\"\xc4\x03\n" +
	"\rReceiptFilter\x12\x1d\n" +
	"\n" +
	"date_start\x18\x01 \x01(\tR\tdateStart\x12\x19\n" +
	"\bdate_end\x18\x02 \x01(\tR\adateEnd\x12\"\n" +
	"\n" +
	"amount_min\x18\x03 \x01(\x01H\x00R\tamountMin\x88\x01\x01\x12\"\n" +
	"\n" +
	"amount_max\x18\x04 \x01(\x01H\x01R\tamountMax\x88\x01\x01\x12\x1e\n" +
	"\n" +
	"categories\x18\x05 \x03(\tR\n" +
	"categories\x12\x1c\n" +
	"\tmerchants\x18\x06 \x03(\tR\tmerchants\x12*\n" +
	"\x0econfidence_min\x18\a \x01(\x01H\x02R\rconfidenceMin\x88\x01\x01\x12*\n" +
	"\x0econfidence_max\x18\b \x01(\x01H\x03R\rconfidenceMax\x88\x01\x01\x12$\n" +
	"\vhas_summary\x18\t \x01(\bH\x04R\n" +
	"hasSummary\x88\x01\x01\x12!\n" +
	"\fsearch_query\x18\n" +
	" \x01(\tR\vsearchQueryB\r\n" +
	"\v_amount_minB\r\n" +
	"\v_amount_maxB\x11\n" +
	"\x0f_confidence_minB\x11\n" +
	"\x0f_confidence_maxB\x0e\n" +
	"\f_has_summary\"\xaa\x02\n" +
	"\aReceipt\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1a\n" +
	"\bmerchant\x18\x02 \x01(\tR\bmerchant\x12\x14\n" +
	"\x05total\x18\x03 \x01(\tR\x05total\x12#\n" +
	"\rpurchase_date\x18\x04 \x01(\tR\fpurchaseDate\x12\x1a\n" +
	"\bcategory\x18\x05 \x01(\tR\bcategory\x12 \n" +
	"\vsubcategory\x18\x06 \x01(\tR\vsubcategory\x12.\n" +
	"\x10confidence_score\x18\a \x01(\x01H\x00R\x0fconfidenceScore\x88\x01\x01\x12\x18\n" +
	"\asummary\x18\b \x01(\tR\asummary\x12\x1b\n" +
	"\timage_url\x18\t \x01(\tR\bimageUrlB\x13\n" +
	"\x11_confidence_score\"c\n" +
	"\x15FilterReceiptsRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x121\n" +
	"\x06filter\x18\x02 \x01(\v2\x19.steward.v1.ReceiptFilterR\x06filter\"\x91\x01\n" +
	"\x16FilterReceiptsResponse\x12/\n" +
	"\breceipts\x18\x01 \x03(\v2\x13.steward.v1.ReceiptR\breceipts\x12\x1f\n" +
	"\vtotal_count\x18\x02 \x01(\x05R\n" +
	"totalCount\x12%\n" +
	"\x0efiltered_count\x18\x03 \x01(\x05R\rfilteredCount\"j\n" +
	"\x1cGetFilteredReceiptIdsRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x121\n" +
	"\x06filter\x18\x02 \x01(\v2\x19.steward.v1.ReceiptFilterR\x06filter\"@\n" +
	"\x1dGetFilteredReceiptIdsResponse\x12\x1f\n" +
	"\vreceipt_ids\x18\x01 \x03(\tR\n" +
	"receiptIds\"2\n" +
	"\x17GetFilterOptionsRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\"\xcc\x01\n" +
	"\x18GetFilterOptionsResponse\x12\x1e\n" +
	"\n" +
	"categories\x18\x01 \x03(\tR\n" +
	"categories\x12\x1c\n" +
	"\tmerchants\x18\x02 \x03(\tR\tmerchants\x12\x19\n" +
	"\bdate_min\x18\x03 \x01(\tR\adateMin\x12\x19\n" +
	"\bdate_max\x18\x04 \x01(\tR\adateMax\x12\x1d\n" +
	"\n" +
	"amount_min\x18\x05 \x01(\x01R\tamountMin\x12\x1d\n" +
	"\n" +
	"amount_max\x18\x06 \x01(\x01R\tamountMax\"d\n" +
	"\x16GetReceiptStatsRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x121\n" +
	"\x06filter\x18\x02 \x01(\v2\x19.steward.v1.ReceiptFilterR\x06filter\"V\n" +
	"\fCategoryStat\x12\x1a\n" +
	"\bcategory\x18\x01 \x01(\tR\bcategory\x12\x14\n" +
	"\x05count\x18\x02 \x01(\x05R\x05count\x12\x14\n" +
	"\x05total\x18\x03 \x01(\x01R\x05total\"M\n" +
	"\tMonthStat\x12\x14\n" +
	"\x05month\x18\x01 \x01(\tR\x05month\x12\x14\n" +
	"\x05count\x18\x02 \x01(\x05R\x05count\x12\x14\n" +
	"\x05total\x18\x03 \x01(\x01R\x05total\"\xf5\x01\n" +
	"\x17GetReceiptStatsResponse\x12#\n" +
	"\rreceipt_count\x18\x01 \x01(\x05R\freceiptCount\x12!\n" +
	"\ftotal_amount\x18\x02 \x01(\x01R\vtotalAmount\x12%\n" +
	"\x0eaverage_amount\x18\x03 \x01(\x01R\raverageAmount\x129\n" +
	"\vby_category\x18\x04 \x03(\v2\x18.steward.v1.CategoryStatR\n" +
	"byCategory\x120\n" +
	"\bby_month\x18\x05 \x03(\v2\x15.steward.v1.MonthStatR\abyMonth\"\x8b\x02\n" +
	"\x11BulkUpdateRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1f\n" +
	"\vreceipt_ids\x18\x02 \x03(\tR\n" +
	"receiptIds\x12\x1f\n" +
	"\bcategory\x18\x03 \x01(\tH\x00R\bcategory\x88\x01\x01\x12%\n" +
	"\vsubcategory\x18\x04 \x01(\tH\x01R\vsubcategory\x88\x01\x01\x12\x1f\n" +
	"\bmerchant\x18\x05 \x01(\tH\x02R\bmerchant\x88\x01\x01\x12\x1d\n" +
	"\asummary\x18\x06 \x01(\tH\x03R\asummary\x88\x01\x01B\v\n" +
	"\t_categoryB\x0e\n" +
	"\f_subcategoryB\v\n" +
	"\t_merchantB\n" +
	"\n" +
	"\b_summary\"E\n" +
	"\x0eOperationError\x12\x1d\n" +
	"\n" +
	"receipt_id\x18\x01 \x01(\tR\treceiptId\x12\x14\n" +
	"\x05error\x18\x02 \x01(\tR\x05error\"\x96\x02\n" +
	"\x13BulkOperationResult\x12\x18\n" +
	"\asuccess\x18\x01 \x01(\bR\asuccess\x12'\n" +
	"\x0fprocessed_count\x18\x02 \x01(\x05R\x0eprocessedCount\x12#\n" +
	"\rsuccess_count\x18\x03 \x01(\x05R\fsuccessCount\x12\x1f\n" +
	"\verror_count\x18\x04 \x01(\x05R\n" +
	"errorCount\x122\n" +
	"\x06errors\x18\x05 \x03(\v2\x1a.steward.v1.OperationErrorR\x06errors\x12!\n" +
	"\foperation_id\x18\x06 \x01(\tR\voperationId\x12\x1f\n" +
	"\vduration_ms\x18\a \x01(\x03R\n" +
	"durationMs\"M\n" +
	"\x12BulkUpdateResponse\x127\n" +
	"\x06result\x18\x01 \x01(\v2\x1f.steward.v1.BulkOperationResultR\x06result\"M\n" +
	"\x11BulkDeleteRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1f\n" +
	"\vreceipt_ids\x18\x02 \x03(\tR\n" +
	"receiptIds\"M\n" +
	"\x12BulkDeleteResponse\x127\n" +
	"\x06result\x18\x01 \x01(\v2\x1f.steward.v1.BulkOperationResultR\x06result\"\x96\x01\n" +
	"\x15ExportReceiptsRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1f\n" +
	"\vreceipt_ids\x18\x02 \x03(\tR\n" +
	"receiptIds\x12\x16\n" +
	"\x06format\x18\x03 \x01(\tR\x06format\x12+\n" +
	"\x11include_analytics\x18\x04 \x01(\bR\x10includeAnalytics\"\x85\x01\n" +
	"\x16ExportReceiptsResponse\x12\x18\n" +
	"\apayload\x18\x01 \x01(\fR\apayload\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12!\n" +
	"\fcontent_type\x18\x03 \x01(\tR\vcontentType\x12\x12\n" +
	"\x04size\x18\x04 \x01(\x03R\x04size2\xa9\x04\n" +
	"\vBulkService\x12W\n" +
	"\x0eFilterReceipts\x12!.steward.v1.FilterReceiptsRequest\x1a\".steward.v1.FilterReceiptsResponse\x12l\n" +
	"\x15GetFilteredReceiptIds\x12(.steward.v1.GetFilteredReceiptIdsRequest\x1a).steward.v1.GetFilteredReceiptIdsResponse\x12]\n" +
	"\x10GetFilterOptions\x12#.steward.v1.GetFilterOptionsRequest\x1a$.steward.v1.GetFilterOptionsResponse\x12Z\n" +
	"\x0fGetReceiptStats\x12\".steward.v1.GetReceiptStatsRequest\x1a#.steward.v1.GetReceiptStatsResponse\x12K\n" +
	"\n" +
	"BulkUpdate\x12\x1d.steward.v1.BulkUpdateRequest\x1a\x1e.steward.v1.BulkUpdateResponse\x12K\n" +
	"\n" +
	"BulkDelete\x12\x1d.steward.v1.BulkDeleteRequest\x1a\x1e.steward.v1.BulkDeleteResponse2h\n" +
	"\rExportService\x12W\n" +
	"\x0eExportReceipts\x12!.steward.v1.ExportReceiptsRequest\x1a\".steward.v1.ExportReceiptsResponseB<Z:github.com/xyzruben/steward/gen/proto/steward/v1;stewardv1b\x06proto3"

var (
	file_steward_v1_steward_proto_rawDescOnce sync.Once
	file_steward_v1_steward_proto_rawDescData []byte
)

func file_steward_v1_steward_proto_rawDescGZIP() []byte {
	file_steward_v1_steward_proto_rawDescOnce.Do(func() {
		file_steward_v1_steward_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_steward_v1_steward_proto_rawDesc), len(file_steward_v1_steward_proto_rawDesc)))
	})
	return file_steward_v1_steward_proto_rawDescData
}

var file_steward_v1_steward_proto_msgTypes = make([]protoimpl.MessageInfo, 20)
var file_steward_v1_steward_proto_goTypes = []any{
	(*ReceiptFilter)(nil),                 // 0: steward.v1.ReceiptFilter
	(*Receipt)(nil),                       // 1: steward.v1.Receipt
	(*FilterReceiptsRequest)(nil),         // 2: steward.v1.FilterReceiptsRequest
	(*FilterReceiptsResponse)(nil),        // 3: steward.v1.FilterReceiptsResponse
	(*GetFilteredReceiptIdsRequest)(nil),  // 4: steward.v1.GetFilteredReceiptIdsRequest
	(*GetFilteredReceiptIdsResponse)(nil), // 5: steward.v1.GetFilteredReceiptIdsResponse
	(*GetFilterOptionsRequest)(nil),       // 6: steward.v1.GetFilterOptionsRequest
	(*GetFilterOptionsResponse)(nil),      // 7: steward.v1.GetFilterOptionsResponse
	(*GetReceiptStatsRequest)(nil),        // 8: steward.v1.GetReceiptStatsRequest
	(*CategoryStat)(nil),                  // 9: steward.v1.CategoryStat
	(*MonthStat)(nil),                     // 10: steward.v1.MonthStat
	(*GetReceiptStatsResponse)(nil),       // 11: steward.v1.GetReceiptStatsResponse
	(*BulkUpdateRequest)(nil),             // 12: steward.v1.BulkUpdateRequest
	(*OperationError)(nil),                // 13: steward.v1.OperationError
	(*BulkOperationResult)(nil),           // 14: steward.v1.BulkOperationResult
	(*BulkUpdateResponse)(nil),            // 15: steward.v1.BulkUpdateResponse
	(*BulkDeleteRequest)(nil),             // 16: steward.v1.BulkDeleteRequest
	(*BulkDeleteResponse)(nil),            // 17: steward.v1.BulkDeleteResponse
	(*ExportReceiptsRequest)(nil),         // 18: steward.v1.ExportReceiptsRequest
	(*ExportReceiptsResponse)(nil),        // 19: steward.v1.ExportReceiptsResponse
}
var file_steward_v1_steward_proto_depIdxs = []int32{
	0,  // 0: steward.v1.FilterReceiptsRequest.filter:type_name -> steward.v1.ReceiptFilter
	1,  // 1: steward.v1.FilterReceiptsResponse.receipts:type_name -> steward.v1.Receipt
	0,  // 2: steward.v1.GetFilteredReceiptIdsRequest.filter:type_name -> steward.v1.ReceiptFilter
	0,  // 3: steward.v1.GetReceiptStatsRequest.filter:type_name -> steward.v1.ReceiptFilter
	9,  // 4: steward.v1.GetReceiptStatsResponse.by_category:type_name -> steward.v1.CategoryStat
	10, // 5: steward.v1.GetReceiptStatsResponse.by_month:type_name -> steward.v1.MonthStat
	13, // 6: steward.v1.BulkOperationResult.errors:type_name -> steward.v1.OperationError
	14, // 7: steward.v1.BulkUpdateResponse.result:type_name -> steward.v1.BulkOperationResult
	14, // 8: steward.v1.BulkDeleteResponse.result:type_name -> steward.v1.BulkOperationResult
	2,  // 9: steward.v1.BulkService.FilterReceipts:input_type -> steward.v1.FilterReceiptsRequest
	4,  // 10: steward.v1.BulkService.GetFilteredReceiptIds:input_type -> steward.v1.GetFilteredReceiptIdsRequest
	6,  // 11: steward.v1.BulkService.GetFilterOptions:input_type -> steward.v1.GetFilterOptionsRequest
	8,  // 12: steward.v1.BulkService.GetReceiptStats:input_type -> steward.v1.GetReceiptStatsRequest
	12, // 13: steward.v1.BulkService.BulkUpdate:input_type -> steward.v1.BulkUpdateRequest
	16, // 14: steward.v1.BulkService.BulkDelete:input_type -> steward.v1.BulkDeleteRequest
	18, // 15: steward.v1.ExportService.ExportReceipts:input_type -> steward.v1.ExportReceiptsRequest
	3,  // 16: steward.v1.BulkService.FilterReceipts:output_type -> steward.v1.FilterReceiptsResponse
	5,  // 17: steward.v1.BulkService.GetFilteredReceiptIds:output_type -> steward.v1.GetFilteredReceiptIdsResponse
	7,  // 18: steward.v1.BulkService.GetFilterOptions:output_type -> steward.v1.GetFilterOptionsResponse
	11, // 19: steward.v1.BulkService.GetReceiptStats:output_type -> steward.v1.GetReceiptStatsResponse
	15, // 20: steward.v1.BulkService.BulkUpdate:output_type -> steward.v1.BulkUpdateResponse
	17, // 21: steward.v1.BulkService.BulkDelete:output_type -> steward.v1.BulkDeleteResponse
	19, // 22: steward.v1.ExportService.ExportReceipts:output_type -> steward.v1.ExportReceiptsResponse
	16, // [16:23] is the sub-list for method output_type
	9,  // [9:16] is the sub-list for method input_type
	9,  // [9:9] is the sub-list for extension type_name
	9,  // [9:9] is the sub-list for extension extendee
	0,  // [0:9] is the sub-list for field type_name
}

func init() { file_steward_v1_steward_proto_init() }
func file_steward_v1_steward_proto_init() {
	if File_steward_v1_steward_proto != nil {
		return
	}
	file_steward_v1_steward_proto_msgTypes[0].OneofWrappers = []any{}
	file_steward_v1_steward_proto_msgTypes[1].OneofWrappers = []any{}
	file_steward_v1_steward_proto_msgTypes[12].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_steward_v1_steward_proto_rawDesc), len(file_steward_v1_steward_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   20,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_steward_v1_steward_proto_goTypes,
		DependencyIndexes: file_steward_v1_steward_proto_depIdxs,
		MessageInfos:      file_steward_v1_steward_proto_msgTypes,
	}.Build()
	File_steward_v1_steward_proto = out.File
	file_steward_v1_steward_proto_goTypes = nil
	file_steward_v1_steward_proto_depIdxs = nil
}
