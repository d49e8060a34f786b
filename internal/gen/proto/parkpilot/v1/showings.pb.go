// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.34.2
// 	protoc        (unknown)
// source: parkpilot/v1/showings.proto

package parkpilotv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	sync "sync"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ShowingStatus int32

const (
	ShowingStatus_SHOWING_STATUS_UNSPECIFIED ShowingStatus = 0
	ShowingStatus_SHOWING_STATUS_SCHEDULED   ShowingStatus = 1
	ShowingStatus_SHOWING_STATUS_CONFIRMED   ShowingStatus = 2
	ShowingStatus_SHOWING_STATUS_COMPLETED   ShowingStatus = 3
	ShowingStatus_SHOWING_STATUS_CANCELED    ShowingStatus = 4
)

// Enum value maps for ShowingStatus.
var (
	ShowingStatus_name = map[int32]string{
		0: "SHOWING_STATUS_UNSPECIFIED",
		1: "SHOWING_STATUS_SCHEDULED",
		2: "SHOWING_STATUS_CONFIRMED",
		3: "SHOWING_STATUS_COMPLETED",
		4: "SHOWING_STATUS_CANCELED",
	}
	ShowingStatus_value = map[string]int32{
		"SHOWING_STATUS_UNSPECIFIED": 0,
		"SHOWING_STATUS_SCHEDULED":   1,
		"SHOWING_STATUS_CONFIRMED":   2,
		"SHOWING_STATUS_COMPLETED":   3,
		"SHOWING_STATUS_CANCELED":    4,
	}
)

func (x ShowingStatus) Enum() *ShowingStatus {
	p := new(ShowingStatus)
	*p = x
	return p
}

func (x ShowingStatus) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (ShowingStatus) Descriptor() protoreflect.EnumDescriptor {
	return file_parkpilot_v1_showings_proto_enumTypes[0].Descriptor()
}

func (ShowingStatus) Type() protoreflect.EnumType {
	return &file_parkpilot_v1_showings_proto_enumTypes[0]
}

func (x ShowingStatus) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use ShowingStatus.Descriptor instead.
func (ShowingStatus) EnumDescriptor() ([]byte, []int) {
	return file_parkpilot_v1_showings_proto_rawDescGZIP(), []int{0}
}

type Showing struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Id                string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	LotId             string                 `protobuf:"bytes,2,opt,name=lot_id,json=lotId,proto3" json:"lot_id,omitempty"`
	ManagerId         string                 `protobuf:"bytes,3,opt,name=manager_id,json=managerId,proto3" json:"manager_id,omitempty"`
	ClientName        string                 `protobuf:"bytes,4,opt,name=client_name,json=clientName,proto3" json:"client_name,omitempty"`
	ClientEmail       string                 `protobuf:"bytes,5,opt,name=client_email,json=clientEmail,proto3" json:"client_email,omitempty"`
	ClientPhone       string                 `protobuf:"bytes,6,opt,name=client_phone,json=clientPhone,proto3" json:"client_phone,omitempty"`
	Notes             string                 `protobuf:"bytes,7,opt,name=notes,proto3" json:"notes,omitempty"`
	StartTime         *timestamppb.Timestamp `protobuf:"bytes,8,opt,name=start_time,json=startTime,proto3" json:"start_time,omitempty"`
	EndTime           *timestamppb.Timestamp `protobuf:"bytes,9,opt,name=end_time,json=endTime,proto3" json:"end_time,omitempty"`
	Status            ShowingStatus          `protobuf:"varint,10,opt,name=status,proto3,enum=parkpilot.v1.ShowingStatus" json:"status,omitempty"`
	CalendarEventId   string                 `protobuf:"bytes,11,opt,name=calendar_event_id,json=calendarEventId,proto3" json:"calendar_event_id,omitempty"`
	CalendarHtmlLink  string                 `protobuf:"bytes,12,opt,name=calendar_html_link,json=calendarHtmlLink,proto3" json:"calendar_html_link,omitempty"`
	CalendarSyncError bool                   `protobuf:"varint,13,opt,name=calendar_sync_error,json=calendarSyncError,proto3" json:"calendar_sync_error,omitempty"`
	CreatedAt         *timestamppb.Timestamp `protobuf:"bytes,14,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt         *timestamppb.Timestamp `protobuf:"bytes,15,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
}

func (x *Showing) Reset() {
	*x = Showing{}
	if protoimpl.UnsafeEnabled {
		mi := &file_parkpilot_v1_showings_proto_msgTypes[0]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *Showing) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Showing) ProtoMessage() {}

func (x *Showing) ProtoReflect() protoreflect.Message {
	mi := &file_parkpilot_v1_showings_proto_msgTypes[0]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Showing.ProtoReflect.Descriptor instead.
func (*Showing) Descriptor() ([]byte, []int) {
	return file_parkpilot_v1_showings_proto_rawDescGZIP(), []int{0}
}

func (x *Showing) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Showing) GetLotId() string {
	if x != nil {
		return x.LotId
	}
	return ""
}

func (x *Showing) GetManagerId() string {
	if x != nil {
		return x.ManagerId
	}
	return ""
}

func (x *Showing) GetClientName() string {
	if x != nil {
		return x.ClientName
	}
	return ""
}

func (x *Showing) GetClientEmail() string {
	if x != nil {
		return x.ClientEmail
	}
	return ""
}

func (x *Showing) GetClientPhone() string {
	if x != nil {
		return x.ClientPhone
	}
	return ""
}

func (x *Showing) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

func (x *Showing) GetStartTime() *timestamppb.Timestamp {
	if x != nil {
		return x.StartTime
	}
	return nil
}

func (x *Showing) GetEndTime() *timestamppb.Timestamp {
	if x != nil {
		return x.EndTime
	}
	return nil
}

func (x *Showing) GetStatus() ShowingStatus {
	if x != nil {
		return x.Status
	}
	return ShowingStatus_SHOWING_STATUS_UNSPECIFIED
}

func (x *Showing) GetCalendarEventId() string {
	if x != nil {
		return x.CalendarEventId
	}
	return ""
}

func (x *Showing) GetCalendarHtmlLink() string {
	if x != nil {
		return x.CalendarHtmlLink
	}
	return ""
}

func (x *Showing) GetCalendarSyncError() bool {
	if x != nil {
		return x.CalendarSyncError
	}
	return false
}

func (x *Showing) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Showing) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

type WindowItem struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Showing      *Showing `protobuf:"bytes,1,opt,name=showing,proto3" json:"showing,omitempty"`
	LotLabel     string   `protobuf:"bytes,2,opt,name=lot_label,json=lotLabel,proto3" json:"lot_label,omitempty"`
	ParkName     string   `protobuf:"bytes,3,opt,name=park_name,json=parkName,proto3" json:"park_name,omitempty"`
	CalendarOnly bool     `protobuf:"varint,4,opt,name=calendar_only,json=calendarOnly,proto3" json:"calendar_only,omitempty"`
}

func (x *WindowItem) Reset() {
	*x = WindowItem{}
	if protoimpl.UnsafeEnabled {
		mi := &file_parkpilot_v1_showings_proto_msgTypes[1]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *WindowItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WindowItem) ProtoMessage() {}

func (x *WindowItem) ProtoReflect() protoreflect.Message {
	mi := &file_parkpilot_v1_showings_proto_msgTypes[1]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WindowItem.ProtoReflect.Descriptor instead.
func (*WindowItem) Descriptor() ([]byte, []int) {
	return file_parkpilot_v1_showings_proto_rawDescGZIP(), []int{1}
}

func (x *WindowItem) GetShowing() *Showing {
	if x != nil {
		return x.Showing
	}
	return nil
}

func (x *WindowItem) GetLotLabel() string {
	if x != nil {
		return x.LotLabel
	}
	return ""
}

func (x *WindowItem) GetParkName() string {
	if x != nil {
		return x.ParkName
	}
	return ""
}

func (x *WindowItem) GetCalendarOnly() bool {
	if x != nil {
		return x.CalendarOnly
	}
	return false
}

type BookShowingRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	LotId       string                 `protobuf:"bytes,1,opt,name=lot_id,json=lotId,proto3" json:"lot_id,omitempty"`
	ClientName  string                 `protobuf:"bytes,2,opt,name=client_name,json=clientName,proto3" json:"client_name,omitempty"`
	ClientEmail string                 `protobuf:"bytes,3,opt,name=client_email,json=clientEmail,proto3" json:"client_email,omitempty"`
	ClientPhone string                 `protobuf:"bytes,4,opt,name=client_phone,json=clientPhone,proto3" json:"client_phone,omitempty"`
	Notes       string                 `protobuf:"bytes,5,opt,name=notes,proto3" json:"notes,omitempty"`
	StartTime   *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=start_time,json=startTime,proto3" json:"start_time,omitempty"`
	EndTime     *timestamppb.Timestamp `protobuf:"bytes,7,opt,name=end_time,json=endTime,proto3" json:"end_time,omitempty"`
}

func (x *BookShowingRequest) Reset() {
	*x = BookShowingRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_parkpilot_v1_showings_proto_msgTypes[2]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *BookShowingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BookShowingRequest) ProtoMessage() {}

func (x *BookShowingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_parkpilot_v1_showings_proto_msgTypes[2]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BookShowingRequest.ProtoReflect.Descriptor instead.
func (*BookShowingRequest) Descriptor() ([]byte, []int) {
	return file_parkpilot_v1_showings_proto_rawDescGZIP(), []int{2}
}

func (x *BookShowingRequest) GetLotId() string {
	if x != nil {
		return x.LotId
	}
	return ""
}

func (x *BookShowingRequest) GetClientName() string {
	if x != nil {
		return x.ClientName
	}
	return ""
}

func (x *BookShowingRequest) GetClientEmail() string {
	if x != nil {
		return x.ClientEmail
	}
	return ""
}

func (x *BookShowingRequest) GetClientPhone() string {
	if x != nil {
		return x.ClientPhone
	}
	return ""
}

func (x *BookShowingRequest) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

func (x *BookShowingRequest) GetStartTime() *timestamppb.Timestamp {
	if x != nil {
		return x.StartTime
	}
	return nil
}

func (x *BookShowingRequest) GetEndTime() *timestamppb.Timestamp {
	if x != nil {
		return x.EndTime
	}
	return nil
}

type BookShowingResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Showing *Showing `protobuf:"bytes,1,opt,name=showing,proto3" json:"showing,omitempty"`
}

func (x *BookShowingResponse) Reset() {
	*x = BookShowingResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_parkpilot_v1_showings_proto_msgTypes[3]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *BookShowingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BookShowingResponse) ProtoMessage() {}

func (x *BookShowingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_parkpilot_v1_showings_proto_msgTypes[3]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BookShowingResponse.ProtoReflect.Descriptor instead.
func (*BookShowingResponse) Descriptor() ([]byte, []int) {
	return file_parkpilot_v1_showings_proto_rawDescGZIP(), []int{3}
}

func (x *BookShowingResponse) GetShowing() *Showing {
	if x != nil {
		return x.Showing
	}
	return nil
}

type ListShowingsRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	ManagerId   string                 `protobuf:"bytes,1,opt,name=manager_id,json=managerId,proto3" json:"manager_id,omitempty"`
	WindowStart *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=window_start,json=windowStart,proto3" json:"window_start,omitempty"`
	WindowEnd   *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=window_end,json=windowEnd,proto3" json:"window_end,omitempty"`
}

func (x *ListShowingsRequest) Reset() {
	*x = ListShowingsRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_parkpilot_v1_showings_proto_msgTypes[4]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ListShowingsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListShowingsRequest) ProtoMessage() {}

func (x *ListShowingsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_parkpilot_v1_showings_proto_msgTypes[4]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListShowingsRequest.ProtoReflect.Descriptor instead.
func (*ListShowingsRequest) Descriptor() ([]byte, []int) {
	return file_parkpilot_v1_showings_proto_rawDescGZIP(), []int{4}
}

func (x *ListShowingsRequest) GetManagerId() string {
	if x != nil {
		return x.ManagerId
	}
	return ""
}

func (x *ListShowingsRequest) GetWindowStart() *timestamppb.Timestamp {
	if x != nil {
		return x.WindowStart
	}
	return nil
}

func (x *ListShowingsRequest) GetWindowEnd() *timestamppb.Timestamp {
	if x != nil {
		return x.WindowEnd
	}
	return nil
}

type ListShowingsResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Items []*WindowItem `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
}

func (x *ListShowingsResponse) Reset() {
	*x = ListShowingsResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_parkpilot_v1_showings_proto_msgTypes[5]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ListShowingsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListShowingsResponse) ProtoMessage() {}

func (x *ListShowingsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_parkpilot_v1_showings_proto_msgTypes[5]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListShowingsResponse.ProtoReflect.Descriptor instead.
func (*ListShowingsResponse) Descriptor() ([]byte, []int) {
	return file_parkpilot_v1_showings_proto_rawDescGZIP(), []int{5}
}

func (x *ListShowingsResponse) GetItems() []*WindowItem {
	if x != nil {
		return x.Items
	}
	return nil
}

type ConfirmShowingRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	ShowingId string `protobuf:"bytes,1,opt,name=showing_id,json=showingId,proto3" json:"showing_id,omitempty"`
}

func (x *ConfirmShowingRequest) Reset() {
	*x = ConfirmShowingRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_parkpilot_v1_showings_proto_msgTypes[6]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ConfirmShowingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConfirmShowingRequest) ProtoMessage() {}

func (x *ConfirmShowingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_parkpilot_v1_showings_proto_msgTypes[6]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConfirmShowingRequest.ProtoReflect.Descriptor instead.
func (*ConfirmShowingRequest) Descriptor() ([]byte, []int) {
	return file_parkpilot_v1_showings_proto_rawDescGZIP(), []int{6}
}

func (x *ConfirmShowingRequest) GetShowingId() string {
	if x != nil {
		return x.ShowingId
	}
	return ""
}

type ConfirmShowingResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Showing *Showing `protobuf:"bytes,1,opt,name=showing,proto3" json:"showing,omitempty"`
}

func (x *ConfirmShowingResponse) Reset() {
	*x = ConfirmShowingResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_parkpilot_v1_showings_proto_msgTypes[7]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ConfirmShowingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConfirmShowingResponse) ProtoMessage() {}

func (x *ConfirmShowingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_parkpilot_v1_showings_proto_msgTypes[7]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConfirmShowingResponse.ProtoReflect.Descriptor instead.
func (*ConfirmShowingResponse) Descriptor() ([]byte, []int) {
	return file_parkpilot_v1_showings_proto_rawDescGZIP(), []int{7}
}

func (x *ConfirmShowingResponse) GetShowing() *Showing {
	if x != nil {
		return x.Showing
	}
	return nil
}

type CancelShowingRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	ShowingId string `protobuf:"bytes,1,opt,name=showing_id,json=showingId,proto3" json:"showing_id,omitempty"`
}

func (x *CancelShowingRequest) Reset() {
	*x = CancelShowingRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_parkpilot_v1_showings_proto_msgTypes[8]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *CancelShowingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelShowingRequest) ProtoMessage() {}

func (x *CancelShowingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_parkpilot_v1_showings_proto_msgTypes[8]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelShowingRequest.ProtoReflect.Descriptor instead.
func (*CancelShowingRequest) Descriptor() ([]byte, []int) {
	return file_parkpilot_v1_showings_proto_rawDescGZIP(), []int{8}
}

func (x *CancelShowingRequest) GetShowingId() string {
	if x != nil {
		return x.ShowingId
	}
	return ""
}

type CancelShowingResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Showing *Showing `protobuf:"bytes,1,opt,name=showing,proto3" json:"showing,omitempty"`
}

func (x *CancelShowingResponse) Reset() {
	*x = CancelShowingResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_parkpilot_v1_showings_proto_msgTypes[9]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *CancelShowingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelShowingResponse) ProtoMessage() {}

func (x *CancelShowingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_parkpilot_v1_showings_proto_msgTypes[9]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelShowingResponse.ProtoReflect.Descriptor instead.
func (*CancelShowingResponse) Descriptor() ([]byte, []int) {
	return file_parkpilot_v1_showings_proto_rawDescGZIP(), []int{9}
}

func (x *CancelShowingResponse) GetShowing() *Showing {
	if x != nil {
		return x.Showing
	}
	return nil
}

type CompleteShowingRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	ShowingId string `protobuf:"bytes,1,opt,name=showing_id,json=showingId,proto3" json:"showing_id,omitempty"`
}

func (x *CompleteShowingRequest) Reset() {
	*x = CompleteShowingRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_parkpilot_v1_showings_proto_msgTypes[10]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *CompleteShowingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompleteShowingRequest) ProtoMessage() {}

func (x *CompleteShowingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_parkpilot_v1_showings_proto_msgTypes[10]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompleteShowingRequest.ProtoReflect.Descriptor instead.
func (*CompleteShowingRequest) Descriptor() ([]byte, []int) {
	return file_parkpilot_v1_showings_proto_rawDescGZIP(), []int{10}
}

func (x *CompleteShowingRequest) GetShowingId() string {
	if x != nil {
		return x.ShowingId
	}
	return ""
}

type CompleteShowingResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Showing *Showing `protobuf:"bytes,1,opt,name=showing,proto3" json:"showing,omitempty"`
}

func (x *CompleteShowingResponse) Reset() {
	*x = CompleteShowingResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_parkpilot_v1_showings_proto_msgTypes[11]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *CompleteShowingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompleteShowingResponse) ProtoMessage() {}

func (x *CompleteShowingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_parkpilot_v1_showings_proto_msgTypes[11]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompleteShowingResponse.ProtoReflect.Descriptor instead.
func (*CompleteShowingResponse) Descriptor() ([]byte, []int) {
	return file_parkpilot_v1_showings_proto_rawDescGZIP(), []int{11}
}

func (x *CompleteShowingResponse) GetShowing() *Showing {
	if x != nil {
		return x.Showing
	}
	return nil
}

type BeginCalendarConnectRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	UserId string `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
}

func (x *BeginCalendarConnectRequest) Reset() {
	*x = BeginCalendarConnectRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_parkpilot_v1_showings_proto_msgTypes[12]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *BeginCalendarConnectRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BeginCalendarConnectRequest) ProtoMessage() {}

func (x *BeginCalendarConnectRequest) ProtoReflect() protoreflect.Message {
	mi := &file_parkpilot_v1_showings_proto_msgTypes[12]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BeginCalendarConnectRequest.ProtoReflect.Descriptor instead.
func (*BeginCalendarConnectRequest) Descriptor() ([]byte, []int) {
	return file_parkpilot_v1_showings_proto_rawDescGZIP(), []int{12}
}

func (x *BeginCalendarConnectRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type BeginCalendarConnectResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	AuthUrl string `protobuf:"bytes,1,opt,name=auth_url,json=authUrl,proto3" json:"auth_url,omitempty"`
}

func (x *BeginCalendarConnectResponse) Reset() {
	*x = BeginCalendarConnectResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_parkpilot_v1_showings_proto_msgTypes[13]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *BeginCalendarConnectResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BeginCalendarConnectResponse) ProtoMessage() {}

func (x *BeginCalendarConnectResponse) ProtoReflect() protoreflect.Message {
	mi := &file_parkpilot_v1_showings_proto_msgTypes[13]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BeginCalendarConnectResponse.ProtoReflect.Descriptor instead.
func (*BeginCalendarConnectResponse) Descriptor() ([]byte, []int) {
	return file_parkpilot_v1_showings_proto_rawDescGZIP(), []int{13}
}

func (x *BeginCalendarConnectResponse) GetAuthUrl() string {
	if x != nil {
		return x.AuthUrl
	}
	return ""
}

type CompleteCalendarConnectRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Code  string `protobuf:"bytes,1,opt,name=code,proto3" json:"code,omitempty"`
	State string `protobuf:"bytes,2,opt,name=state,proto3" json:"state,omitempty"`
}

func (x *CompleteCalendarConnectRequest) Reset() {
	*x = CompleteCalendarConnectRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_parkpilot_v1_showings_proto_msgTypes[14]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *CompleteCalendarConnectRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompleteCalendarConnectRequest) ProtoMessage() {}

func (x *CompleteCalendarConnectRequest) ProtoReflect() protoreflect.Message {
	mi := &file_parkpilot_v1_showings_proto_msgTypes[14]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompleteCalendarConnectRequest.ProtoReflect.Descriptor instead.
func (*CompleteCalendarConnectRequest) Descriptor() ([]byte, []int) {
	return file_parkpilot_v1_showings_proto_rawDescGZIP(), []int{14}
}

func (x *CompleteCalendarConnectRequest) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

func (x *CompleteCalendarConnectRequest) GetState() string {
	if x != nil {
		return x.State
	}
	return ""
}

type CompleteCalendarConnectResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields
}

func (x *CompleteCalendarConnectResponse) Reset() {
	*x = CompleteCalendarConnectResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_parkpilot_v1_showings_proto_msgTypes[15]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *CompleteCalendarConnectResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompleteCalendarConnectResponse) ProtoMessage() {}

func (x *CompleteCalendarConnectResponse) ProtoReflect() protoreflect.Message {
	mi := &file_parkpilot_v1_showings_proto_msgTypes[15]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompleteCalendarConnectResponse.ProtoReflect.Descriptor instead.
func (*CompleteCalendarConnectResponse) Descriptor() ([]byte, []int) {
	return file_parkpilot_v1_showings_proto_rawDescGZIP(), []int{15}
}

type DisconnectCalendarRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	UserId string `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
}

func (x *DisconnectCalendarRequest) Reset() {
	*x = DisconnectCalendarRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_parkpilot_v1_showings_proto_msgTypes[16]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *DisconnectCalendarRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DisconnectCalendarRequest) ProtoMessage() {}

func (x *DisconnectCalendarRequest) ProtoReflect() protoreflect.Message {
	mi := &file_parkpilot_v1_showings_proto_msgTypes[16]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DisconnectCalendarRequest.ProtoReflect.Descriptor instead.
func (*DisconnectCalendarRequest) Descriptor() ([]byte, []int) {
	return file_parkpilot_v1_showings_proto_rawDescGZIP(), []int{16}
}

func (x *DisconnectCalendarRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type DisconnectCalendarResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields
}

func (x *DisconnectCalendarResponse) Reset() {
	*x = DisconnectCalendarResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_parkpilot_v1_showings_proto_msgTypes[17]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *DisconnectCalendarResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DisconnectCalendarResponse) ProtoMessage() {}

func (x *DisconnectCalendarResponse) ProtoReflect() protoreflect.Message {
	mi := &file_parkpilot_v1_showings_proto_msgTypes[17]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DisconnectCalendarResponse.ProtoReflect.Descriptor instead.
func (*DisconnectCalendarResponse) Descriptor() ([]byte, []int) {
	return file_parkpilot_v1_showings_proto_rawDescGZIP(), []int{17}
}

type GetCalendarStatusRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	UserId string `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
}

func (x *GetCalendarStatusRequest) Reset() {
	*x = GetCalendarStatusRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_parkpilot_v1_showings_proto_msgTypes[18]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetCalendarStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCalendarStatusRequest) ProtoMessage() {}

func (x *GetCalendarStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_parkpilot_v1_showings_proto_msgTypes[18]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCalendarStatusRequest.ProtoReflect.Descriptor instead.
func (*GetCalendarStatusRequest) Descriptor() ([]byte, []int) {
	return file_parkpilot_v1_showings_proto_rawDescGZIP(), []int{18}
}

func (x *GetCalendarStatusRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type GetCalendarStatusResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Connected bool `protobuf:"varint,1,opt,name=connected,proto3" json:"connected,omitempty"`
}

func (x *GetCalendarStatusResponse) Reset() {
	*x = GetCalendarStatusResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_parkpilot_v1_showings_proto_msgTypes[19]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetCalendarStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCalendarStatusResponse) ProtoMessage() {}

func (x *GetCalendarStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_parkpilot_v1_showings_proto_msgTypes[19]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCalendarStatusResponse.ProtoReflect.Descriptor instead.
func (*GetCalendarStatusResponse) Descriptor() ([]byte, []int) {
	return file_parkpilot_v1_showings_proto_rawDescGZIP(), []int{19}
}

func (x *GetCalendarStatusResponse) GetConnected() bool {
	if x != nil {
		return x.Connected
	}
	return false
}

var File_parkpilot_v1_showings_proto protoreflect.FileDescriptor

var file_parkpilot_v1_showings_proto_rawDesc = []byte{
	0x0a, 0x1b, 0x70, 0x61, 0x72, 0x6b, 0x70, 0x69, 0x6c, 0x6f, 0x74, 0x2f, 0x76, 0x31, 0x2f, 0x73,
	0x68, 0x6f, 0x77, 0x69, 0x6e, 0x67, 0x73, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x12, 0x0c, 0x70,
	0x61, 0x72, 0x6b, 0x70, 0x69, 0x6c, 0x6f, 0x74, 0x2e, 0x76, 0x31, 0x1a, 0x1f, 0x67, 0x6f, 0x6f,
	0x67, 0x6c, 0x65, 0x2f, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2f, 0x74, 0x69, 0x6d,
	0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x22, 0xf3, 0x04, 0x0a,
	0x07, 0x53, 0x68, 0x6f, 0x77, 0x69, 0x6e, 0x67, 0x12, 0x0e, 0x0a, 0x02, 0x69, 0x64, 0x18, 0x01,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x02, 0x69, 0x64, 0x12, 0x15, 0x0a, 0x06, 0x6c, 0x6f, 0x74, 0x5f,
	0x69, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x6c, 0x6f, 0x74, 0x49, 0x64, 0x12,
	0x1d, 0x0a, 0x0a, 0x6d, 0x61, 0x6e, 0x61, 0x67, 0x65, 0x72, 0x5f, 0x69, 0x64, 0x18, 0x03, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x09, 0x6d, 0x61, 0x6e, 0x61, 0x67, 0x65, 0x72, 0x49, 0x64, 0x12, 0x1f,
	0x0a, 0x0b, 0x63, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x5f, 0x6e, 0x61, 0x6d, 0x65, 0x18, 0x04, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x0a, 0x63, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x4e, 0x61, 0x6d, 0x65, 0x12,
	0x21, 0x0a, 0x0c, 0x63, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x5f, 0x65, 0x6d, 0x61, 0x69, 0x6c, 0x18,
	0x05, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0b, 0x63, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x45, 0x6d, 0x61,
	0x69, 0x6c, 0x12, 0x21, 0x0a, 0x0c, 0x63, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x5f, 0x70, 0x68, 0x6f,
	0x6e, 0x65, 0x18, 0x06, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0b, 0x63, 0x6c, 0x69, 0x65, 0x6e, 0x74,
	0x50, 0x68, 0x6f, 0x6e, 0x65, 0x12, 0x14, 0x0a, 0x05, 0x6e, 0x6f, 0x74, 0x65, 0x73, 0x18, 0x07,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x6e, 0x6f, 0x74, 0x65, 0x73, 0x12, 0x39, 0x0a, 0x0a, 0x73,
	0x74, 0x61, 0x72, 0x74, 0x5f, 0x74, 0x69, 0x6d, 0x65, 0x18, 0x08, 0x20, 0x01, 0x28, 0x0b, 0x32,
	0x1a, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75,
	0x66, 0x2e, 0x54, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x09, 0x73, 0x74, 0x61,
	0x72, 0x74, 0x54, 0x69, 0x6d, 0x65, 0x12, 0x35, 0x0a, 0x08, 0x65, 0x6e, 0x64, 0x5f, 0x74, 0x69,
	0x6d, 0x65, 0x18, 0x09, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c,
	0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e, 0x54, 0x69, 0x6d, 0x65, 0x73,
	0x74, 0x61, 0x6d, 0x70, 0x52, 0x07, 0x65, 0x6e, 0x64, 0x54, 0x69, 0x6d, 0x65, 0x12, 0x33, 0x0a,
	0x06, 0x73, 0x74, 0x61, 0x74, 0x75, 0x73, 0x18, 0x0a, 0x20, 0x01, 0x28, 0x0e, 0x32, 0x1b, 0x2e,
	0x70, 0x61, 0x72, 0x6b, 0x70, 0x69, 0x6c, 0x6f, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x68, 0x6f,
	0x77, 0x69, 0x6e, 0x67, 0x53, 0x74, 0x61, 0x74, 0x75, 0x73, 0x52, 0x06, 0x73, 0x74, 0x61, 0x74,
	0x75, 0x73, 0x12, 0x2a, 0x0a, 0x11, 0x63, 0x61, 0x6c, 0x65, 0x6e, 0x64, 0x61, 0x72, 0x5f, 0x65,
	0x76, 0x65, 0x6e, 0x74, 0x5f, 0x69, 0x64, 0x18, 0x0b, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0f, 0x63,
	0x61, 0x6c, 0x65, 0x6e, 0x64, 0x61, 0x72, 0x45, 0x76, 0x65, 0x6e, 0x74, 0x49, 0x64, 0x12, 0x2c,
	0x0a, 0x12, 0x63, 0x61, 0x6c, 0x65, 0x6e, 0x64, 0x61, 0x72, 0x5f, 0x68, 0x74, 0x6d, 0x6c, 0x5f,
	0x6c, 0x69, 0x6e, 0x6b, 0x18, 0x0c, 0x20, 0x01, 0x28, 0x09, 0x52, 0x10, 0x63, 0x61, 0x6c, 0x65,
	0x6e, 0x64, 0x61, 0x72, 0x48, 0x74, 0x6d, 0x6c, 0x4c, 0x69, 0x6e, 0x6b, 0x12, 0x2e, 0x0a, 0x13,
	0x63, 0x61, 0x6c, 0x65, 0x6e, 0x64, 0x61, 0x72, 0x5f, 0x73, 0x79, 0x6e, 0x63, 0x5f, 0x65, 0x72,
	0x72, 0x6f, 0x72, 0x18, 0x0d, 0x20, 0x01, 0x28, 0x08, 0x52, 0x11, 0x63, 0x61, 0x6c, 0x65, 0x6e,
	0x64, 0x61, 0x72, 0x53, 0x79, 0x6e, 0x63, 0x45, 0x72, 0x72, 0x6f, 0x72, 0x12, 0x39, 0x0a, 0x0a,
	0x63, 0x72, 0x65, 0x61, 0x74, 0x65, 0x64, 0x5f, 0x61, 0x74, 0x18, 0x0e, 0x20, 0x01, 0x28, 0x0b,
	0x32, 0x1a, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62,
	0x75, 0x66, 0x2e, 0x54, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x09, 0x63, 0x72,
	0x65, 0x61, 0x74, 0x65, 0x64, 0x41, 0x74, 0x12, 0x39, 0x0a, 0x0a, 0x75, 0x70, 0x64, 0x61, 0x74,
	0x65, 0x64, 0x5f, 0x61, 0x74, 0x18, 0x0f, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x67, 0x6f,
	0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e, 0x54, 0x69,
	0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x09, 0x75, 0x70, 0x64, 0x61, 0x74, 0x65, 0x64,
	0x41, 0x74, 0x22, 0x9c, 0x01, 0x0a, 0x0a, 0x57, 0x69, 0x6e, 0x64, 0x6f, 0x77, 0x49, 0x74, 0x65,
	0x6d, 0x12, 0x2f, 0x0a, 0x07, 0x73, 0x68, 0x6f, 0x77, 0x69, 0x6e, 0x67, 0x18, 0x01, 0x20, 0x01,
	0x28, 0x0b, 0x32, 0x15, 0x2e, 0x70, 0x61, 0x72, 0x6b, 0x70, 0x69, 0x6c, 0x6f, 0x74, 0x2e, 0x76,
	0x31, 0x2e, 0x53, 0x68, 0x6f, 0x77, 0x69, 0x6e, 0x67, 0x52, 0x07, 0x73, 0x68, 0x6f, 0x77, 0x69,
	0x6e, 0x67, 0x12, 0x1b, 0x0a, 0x09, 0x6c, 0x6f, 0x74, 0x5f, 0x6c, 0x61, 0x62, 0x65, 0x6c, 0x18,
	0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x6c, 0x6f, 0x74, 0x4c, 0x61, 0x62, 0x65, 0x6c, 0x12,
	0x1b, 0x0a, 0x09, 0x70, 0x61, 0x72, 0x6b, 0x5f, 0x6e, 0x61, 0x6d, 0x65, 0x18, 0x03, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x08, 0x70, 0x61, 0x72, 0x6b, 0x4e, 0x61, 0x6d, 0x65, 0x12, 0x23, 0x0a, 0x0d,
	0x63, 0x61, 0x6c, 0x65, 0x6e, 0x64, 0x61, 0x72, 0x5f, 0x6f, 0x6e, 0x6c, 0x79, 0x18, 0x04, 0x20,
	0x01, 0x28, 0x08, 0x52, 0x0c, 0x63, 0x61, 0x6c, 0x65, 0x6e, 0x64, 0x61, 0x72, 0x4f, 0x6e, 0x6c,
	0x79, 0x22, 0x9a, 0x02, 0x0a, 0x12, 0x42, 0x6f, 0x6f, 0x6b, 0x53, 0x68, 0x6f, 0x77, 0x69, 0x6e,
	0x67, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x15, 0x0a, 0x06, 0x6c, 0x6f, 0x74, 0x5f,
	0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x6c, 0x6f, 0x74, 0x49, 0x64, 0x12,
	0x1f, 0x0a, 0x0b, 0x63, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x5f, 0x6e, 0x61, 0x6d, 0x65, 0x18, 0x02,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x0a, 0x63, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x4e, 0x61, 0x6d, 0x65,
	0x12, 0x21, 0x0a, 0x0c, 0x63, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x5f, 0x65, 0x6d, 0x61, 0x69, 0x6c,
	0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0b, 0x63, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x45, 0x6d,
	0x61, 0x69, 0x6c, 0x12, 0x21, 0x0a, 0x0c, 0x63, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x5f, 0x70, 0x68,
	0x6f, 0x6e, 0x65, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0b, 0x63, 0x6c, 0x69, 0x65, 0x6e,
	0x74, 0x50, 0x68, 0x6f, 0x6e, 0x65, 0x12, 0x14, 0x0a, 0x05, 0x6e, 0x6f, 0x74, 0x65, 0x73, 0x18,
	0x05, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x6e, 0x6f, 0x74, 0x65, 0x73, 0x12, 0x39, 0x0a, 0x0a,
	0x73, 0x74, 0x61, 0x72, 0x74, 0x5f, 0x74, 0x69, 0x6d, 0x65, 0x18, 0x06, 0x20, 0x01, 0x28, 0x0b,
	0x32, 0x1a, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62,
	0x75, 0x66, 0x2e, 0x54, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x09, 0x73, 0x74,
	0x61, 0x72, 0x74, 0x54, 0x69, 0x6d, 0x65, 0x12, 0x35, 0x0a, 0x08, 0x65, 0x6e, 0x64, 0x5f, 0x74,
	0x69, 0x6d, 0x65, 0x18, 0x07, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x67, 0x6f, 0x6f, 0x67,
	0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e, 0x54, 0x69, 0x6d, 0x65,
	0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x07, 0x65, 0x6e, 0x64, 0x54, 0x69, 0x6d, 0x65, 0x22, 0x46,
	0x0a, 0x13, 0x42, 0x6f, 0x6f, 0x6b, 0x53, 0x68, 0x6f, 0x77, 0x69, 0x6e, 0x67, 0x52, 0x65, 0x73,
	0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x2f, 0x0a, 0x07, 0x73, 0x68, 0x6f, 0x77, 0x69, 0x6e, 0x67,
	0x18, 0x01, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x15, 0x2e, 0x70, 0x61, 0x72, 0x6b, 0x70, 0x69, 0x6c,
	0x6f, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x68, 0x6f, 0x77, 0x69, 0x6e, 0x67, 0x52, 0x07, 0x73,
	0x68, 0x6f, 0x77, 0x69, 0x6e, 0x67, 0x22, 0xae, 0x01, 0x0a, 0x13, 0x4c, 0x69, 0x73, 0x74, 0x53,
	0x68, 0x6f, 0x77, 0x69, 0x6e, 0x67, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1d,
	0x0a, 0x0a, 0x6d, 0x61, 0x6e, 0x61, 0x67, 0x65, 0x72, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x09, 0x6d, 0x61, 0x6e, 0x61, 0x67, 0x65, 0x72, 0x49, 0x64, 0x12, 0x3d, 0x0a,
	0x0c, 0x77, 0x69, 0x6e, 0x64, 0x6f, 0x77, 0x5f, 0x73, 0x74, 0x61, 0x72, 0x74, 0x18, 0x02, 0x20,
	0x01, 0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f,
	0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e, 0x54, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52,
	0x0b, 0x77, 0x69, 0x6e, 0x64, 0x6f, 0x77, 0x53, 0x74, 0x61, 0x72, 0x74, 0x12, 0x39, 0x0a, 0x0a,
	0x77, 0x69, 0x6e, 0x64, 0x6f, 0x77, 0x5f, 0x65, 0x6e, 0x64, 0x18, 0x03, 0x20, 0x01, 0x28, 0x0b,
	0x32, 0x1a, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62,
	0x75, 0x66, 0x2e, 0x54, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x09, 0x77, 0x69,
	0x6e, 0x64, 0x6f, 0x77, 0x45, 0x6e, 0x64, 0x22, 0x46, 0x0a, 0x14, 0x4c, 0x69, 0x73, 0x74, 0x53,
	0x68, 0x6f, 0x77, 0x69, 0x6e, 0x67, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12,
	0x2e, 0x0a, 0x05, 0x69, 0x74, 0x65, 0x6d, 0x73, 0x18, 0x01, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x18,
	0x2e, 0x70, 0x61, 0x72, 0x6b, 0x70, 0x69, 0x6c, 0x6f, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x57, 0x69,
	0x6e, 0x64, 0x6f, 0x77, 0x49, 0x74, 0x65, 0x6d, 0x52, 0x05, 0x69, 0x74, 0x65, 0x6d, 0x73, 0x22,
	0x36, 0x0a, 0x15, 0x43, 0x6f, 0x6e, 0x66, 0x69, 0x72, 0x6d, 0x53, 0x68, 0x6f, 0x77, 0x69, 0x6e,
	0x67, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1d, 0x0a, 0x0a, 0x73, 0x68, 0x6f, 0x77,
	0x69, 0x6e, 0x67, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x73, 0x68,
	0x6f, 0x77, 0x69, 0x6e, 0x67, 0x49, 0x64, 0x22, 0x49, 0x0a, 0x16, 0x43, 0x6f, 0x6e, 0x66, 0x69,
	0x72, 0x6d, 0x53, 0x68, 0x6f, 0x77, 0x69, 0x6e, 0x67, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73,
	0x65, 0x12, 0x2f, 0x0a, 0x07, 0x73, 0x68, 0x6f, 0x77, 0x69, 0x6e, 0x67, 0x18, 0x01, 0x20, 0x01,
	0x28, 0x0b, 0x32, 0x15, 0x2e, 0x70, 0x61, 0x72, 0x6b, 0x70, 0x69, 0x6c, 0x6f, 0x74, 0x2e, 0x76,
	0x31, 0x2e, 0x53, 0x68, 0x6f, 0x77, 0x69, 0x6e, 0x67, 0x52, 0x07, 0x73, 0x68, 0x6f, 0x77, 0x69,
	0x6e, 0x67, 0x22, 0x35, 0x0a, 0x14, 0x43, 0x61, 0x6e, 0x63, 0x65, 0x6c, 0x53, 0x68, 0x6f, 0x77,
	0x69, 0x6e, 0x67, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1d, 0x0a, 0x0a, 0x73, 0x68,
	0x6f, 0x77, 0x69, 0x6e, 0x67, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09,
	0x73, 0x68, 0x6f, 0x77, 0x69, 0x6e, 0x67, 0x49, 0x64, 0x22, 0x48, 0x0a, 0x15, 0x43, 0x61, 0x6e,
	0x63, 0x65, 0x6c, 0x53, 0x68, 0x6f, 0x77, 0x69, 0x6e, 0x67, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e,
	0x73, 0x65, 0x12, 0x2f, 0x0a, 0x07, 0x73, 0x68, 0x6f, 0x77, 0x69, 0x6e, 0x67, 0x18, 0x01, 0x20,
	0x01, 0x28, 0x0b, 0x32, 0x15, 0x2e, 0x70, 0x61, 0x72, 0x6b, 0x70, 0x69, 0x6c, 0x6f, 0x74, 0x2e,
	0x76, 0x31, 0x2e, 0x53, 0x68, 0x6f, 0x77, 0x69, 0x6e, 0x67, 0x52, 0x07, 0x73, 0x68, 0x6f, 0x77,
	0x69, 0x6e, 0x67, 0x22, 0x37, 0x0a, 0x16, 0x43, 0x6f, 0x6d, 0x70, 0x6c, 0x65, 0x74, 0x65, 0x53,
	0x68, 0x6f, 0x77, 0x69, 0x6e, 0x67, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1d, 0x0a,
	0x0a, 0x73, 0x68, 0x6f, 0x77, 0x69, 0x6e, 0x67, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x09, 0x73, 0x68, 0x6f, 0x77, 0x69, 0x6e, 0x67, 0x49, 0x64, 0x22, 0x4a, 0x0a, 0x17,
	0x43, 0x6f, 0x6d, 0x70, 0x6c, 0x65, 0x74, 0x65, 0x53, 0x68, 0x6f, 0x77, 0x69, 0x6e, 0x67, 0x52,
	0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x2f, 0x0a, 0x07, 0x73, 0x68, 0x6f, 0x77, 0x69,
	0x6e, 0x67, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x15, 0x2e, 0x70, 0x61, 0x72, 0x6b, 0x70,
	0x69, 0x6c, 0x6f, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x68, 0x6f, 0x77, 0x69, 0x6e, 0x67, 0x52,
	0x07, 0x73, 0x68, 0x6f, 0x77, 0x69, 0x6e, 0x67, 0x22, 0x36, 0x0a, 0x1b, 0x42, 0x65, 0x67, 0x69,
	0x6e, 0x43, 0x61, 0x6c, 0x65, 0x6e, 0x64, 0x61, 0x72, 0x43, 0x6f, 0x6e, 0x6e, 0x65, 0x63, 0x74,
	0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x17, 0x0a, 0x07, 0x75, 0x73, 0x65, 0x72, 0x5f,
	0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x75, 0x73, 0x65, 0x72, 0x49, 0x64,
	0x22, 0x39, 0x0a, 0x1c, 0x42, 0x65, 0x67, 0x69, 0x6e, 0x43, 0x61, 0x6c, 0x65, 0x6e, 0x64, 0x61,
	0x72, 0x43, 0x6f, 0x6e, 0x6e, 0x65, 0x63, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65,
	0x12, 0x19, 0x0a, 0x08, 0x61, 0x75, 0x74, 0x68, 0x5f, 0x75, 0x72, 0x6c, 0x18, 0x01, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x07, 0x61, 0x75, 0x74, 0x68, 0x55, 0x72, 0x6c, 0x22, 0x4a, 0x0a, 0x1e, 0x43,
	0x6f, 0x6d, 0x70, 0x6c, 0x65, 0x74, 0x65, 0x43, 0x61, 0x6c, 0x65, 0x6e, 0x64, 0x61, 0x72, 0x43,
	0x6f, 0x6e, 0x6e, 0x65, 0x63, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x12, 0x0a,
	0x04, 0x63, 0x6f, 0x64, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x63, 0x6f, 0x64,
	0x65, 0x12, 0x14, 0x0a, 0x05, 0x73, 0x74, 0x61, 0x74, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x05, 0x73, 0x74, 0x61, 0x74, 0x65, 0x22, 0x21, 0x0a, 0x1f, 0x43, 0x6f, 0x6d, 0x70, 0x6c,
	0x65, 0x74, 0x65, 0x43, 0x61, 0x6c, 0x65, 0x6e, 0x64, 0x61, 0x72, 0x43, 0x6f, 0x6e, 0x6e, 0x65,
	0x63, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x34, 0x0a, 0x19, 0x44, 0x69,
	0x73, 0x63, 0x6f, 0x6e, 0x6e, 0x65, 0x63, 0x74, 0x43, 0x61, 0x6c, 0x65, 0x6e, 0x64, 0x61, 0x72,
	0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x17, 0x0a, 0x07, 0x75, 0x73, 0x65, 0x72, 0x5f,
	0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x75, 0x73, 0x65, 0x72, 0x49, 0x64,
	0x22, 0x1c, 0x0a, 0x1a, 0x44, 0x69, 0x73, 0x63, 0x6f, 0x6e, 0x6e, 0x65, 0x63, 0x74, 0x43, 0x61,
	0x6c, 0x65, 0x6e, 0x64, 0x61, 0x72, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x33,
	0x0a, 0x18, 0x47, 0x65, 0x74, 0x43, 0x61, 0x6c, 0x65, 0x6e, 0x64, 0x61, 0x72, 0x53, 0x74, 0x61,
	0x74, 0x75, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x17, 0x0a, 0x07, 0x75, 0x73,
	0x65, 0x72, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x75, 0x73, 0x65,
	0x72, 0x49, 0x64, 0x22, 0x39, 0x0a, 0x19, 0x47, 0x65, 0x74, 0x43, 0x61, 0x6c, 0x65, 0x6e, 0x64,
	0x61, 0x72, 0x53, 0x74, 0x61, 0x74, 0x75, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65,
	0x12, 0x1c, 0x0a, 0x09, 0x63, 0x6f, 0x6e, 0x6e, 0x65, 0x63, 0x74, 0x65, 0x64, 0x18, 0x01, 0x20,
	0x01, 0x28, 0x08, 0x52, 0x09, 0x63, 0x6f, 0x6e, 0x6e, 0x65, 0x63, 0x74, 0x65, 0x64, 0x2a, 0xa6,
	0x01, 0x0a, 0x0d, 0x53, 0x68, 0x6f, 0x77, 0x69, 0x6e, 0x67, 0x53, 0x74, 0x61, 0x74, 0x75, 0x73,
	0x12, 0x1e, 0x0a, 0x1a, 0x53, 0x48, 0x4f, 0x57, 0x49, 0x4e, 0x47, 0x5f, 0x53, 0x54, 0x41, 0x54,
	0x55, 0x53, 0x5f, 0x55, 0x4e, 0x53, 0x50, 0x45, 0x43, 0x49, 0x46, 0x49, 0x45, 0x44, 0x10, 0x00,
	0x12, 0x1c, 0x0a, 0x18, 0x53, 0x48, 0x4f, 0x57, 0x49, 0x4e, 0x47, 0x5f, 0x53, 0x54, 0x41, 0x54,
	0x55, 0x53, 0x5f, 0x53, 0x43, 0x48, 0x45, 0x44, 0x55, 0x4c, 0x45, 0x44, 0x10, 0x01, 0x12, 0x1c,
	0x0a, 0x18, 0x53, 0x48, 0x4f, 0x57, 0x49, 0x4e, 0x47, 0x5f, 0x53, 0x54, 0x41, 0x54, 0x55, 0x53,
	0x5f, 0x43, 0x4f, 0x4e, 0x46, 0x49, 0x52, 0x4d, 0x45, 0x44, 0x10, 0x02, 0x12, 0x1c, 0x0a, 0x18,
	0x53, 0x48, 0x4f, 0x57, 0x49, 0x4e, 0x47, 0x5f, 0x53, 0x54, 0x41, 0x54, 0x55, 0x53, 0x5f, 0x43,
	0x4f, 0x4d, 0x50, 0x4c, 0x45, 0x54, 0x45, 0x44, 0x10, 0x03, 0x12, 0x1b, 0x0a, 0x17, 0x53, 0x48,
	0x4f, 0x57, 0x49, 0x4e, 0x47, 0x5f, 0x53, 0x54, 0x41, 0x54, 0x55, 0x53, 0x5f, 0x43, 0x41, 0x4e,
	0x43, 0x45, 0x4c, 0x45, 0x44, 0x10, 0x04, 0x32, 0x89, 0x07, 0x0a, 0x0f, 0x53, 0x68, 0x6f, 0x77,
	0x69, 0x6e, 0x67, 0x73, 0x53, 0x65, 0x72, 0x76, 0x69, 0x63, 0x65, 0x12, 0x52, 0x0a, 0x0b, 0x42,
	0x6f, 0x6f, 0x6b, 0x53, 0x68, 0x6f, 0x77, 0x69, 0x6e, 0x67, 0x12, 0x20, 0x2e, 0x70, 0x61, 0x72,
	0x6b, 0x70, 0x69, 0x6c, 0x6f, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x42, 0x6f, 0x6f, 0x6b, 0x53, 0x68,
	0x6f, 0x77, 0x69, 0x6e, 0x67, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x21, 0x2e, 0x70,
	0x61, 0x72, 0x6b, 0x70, 0x69, 0x6c, 0x6f, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x42, 0x6f, 0x6f, 0x6b,
	0x53, 0x68, 0x6f, 0x77, 0x69, 0x6e, 0x67, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12,
	0x55, 0x0a, 0x0c, 0x4c, 0x69, 0x73, 0x74, 0x53, 0x68, 0x6f, 0x77, 0x69, 0x6e, 0x67, 0x73, 0x12,
	0x21, 0x2e, 0x70, 0x61, 0x72, 0x6b, 0x70, 0x69, 0x6c, 0x6f, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x4c,
	0x69, 0x73, 0x74, 0x53, 0x68, 0x6f, 0x77, 0x69, 0x6e, 0x67, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65,
	0x73, 0x74, 0x1a, 0x22, 0x2e, 0x70, 0x61, 0x72, 0x6b, 0x70, 0x69, 0x6c, 0x6f, 0x74, 0x2e, 0x76,
	0x31, 0x2e, 0x4c, 0x69, 0x73, 0x74, 0x53, 0x68, 0x6f, 0x77, 0x69, 0x6e, 0x67, 0x73, 0x52, 0x65,
	0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x5b, 0x0a, 0x0e, 0x43, 0x6f, 0x6e, 0x66, 0x69, 0x72,
	0x6d, 0x53, 0x68, 0x6f, 0x77, 0x69, 0x6e, 0x67, 0x12, 0x23, 0x2e, 0x70, 0x61, 0x72, 0x6b, 0x70,
	0x69, 0x6c, 0x6f, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x43, 0x6f, 0x6e, 0x66, 0x69, 0x72, 0x6d, 0x53,
	0x68, 0x6f, 0x77, 0x69, 0x6e, 0x67, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x24, 0x2e,
	0x70, 0x61, 0x72, 0x6b, 0x70, 0x69, 0x6c, 0x6f, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x43, 0x6f, 0x6e,
	0x66, 0x69, 0x72, 0x6d, 0x53, 0x68, 0x6f, 0x77, 0x69, 0x6e, 0x67, 0x52, 0x65, 0x73, 0x70, 0x6f,
	0x6e, 0x73, 0x65, 0x12, 0x58, 0x0a, 0x0d, 0x43, 0x61, 0x6e, 0x63, 0x65, 0x6c, 0x53, 0x68, 0x6f,
	0x77, 0x69, 0x6e, 0x67, 0x12, 0x22, 0x2e, 0x70, 0x61, 0x72, 0x6b, 0x70, 0x69, 0x6c, 0x6f, 0x74,
	0x2e, 0x76, 0x31, 0x2e, 0x43, 0x61, 0x6e, 0x63, 0x65, 0x6c, 0x53, 0x68, 0x6f, 0x77, 0x69, 0x6e,
	0x67, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x23, 0x2e, 0x70, 0x61, 0x72, 0x6b, 0x70,
	0x69, 0x6c, 0x6f, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x43, 0x61, 0x6e, 0x63, 0x65, 0x6c, 0x53, 0x68,
	0x6f, 0x77, 0x69, 0x6e, 0x67, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x5e, 0x0a,
	0x0f, 0x43, 0x6f, 0x6d, 0x70, 0x6c, 0x65, 0x74, 0x65, 0x53, 0x68, 0x6f, 0x77, 0x69, 0x6e, 0x67,
	0x12, 0x24, 0x2e, 0x70, 0x61, 0x72, 0x6b, 0x70, 0x69, 0x6c, 0x6f, 0x74, 0x2e, 0x76, 0x31, 0x2e,
	0x43, 0x6f, 0x6d, 0x70, 0x6c, 0x65, 0x74, 0x65, 0x53, 0x68, 0x6f, 0x77, 0x69, 0x6e, 0x67, 0x52,
	0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x25, 0x2e, 0x70, 0x61, 0x72, 0x6b, 0x70, 0x69, 0x6c,
	0x6f, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x43, 0x6f, 0x6d, 0x70, 0x6c, 0x65, 0x74, 0x65, 0x53, 0x68,
	0x6f, 0x77, 0x69, 0x6e, 0x67, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x6d, 0x0a,
	0x14, 0x42, 0x65, 0x67, 0x69, 0x6e, 0x43, 0x61, 0x6c, 0x65, 0x6e, 0x64, 0x61, 0x72, 0x43, 0x6f,
	0x6e, 0x6e, 0x65, 0x63, 0x74, 0x12, 0x29, 0x2e, 0x70, 0x61, 0x72, 0x6b, 0x70, 0x69, 0x6c, 0x6f,
	0x74, 0x2e, 0x76, 0x31, 0x2e, 0x42, 0x65, 0x67, 0x69, 0x6e, 0x43, 0x61, 0x6c, 0x65, 0x6e, 0x64,
	0x61, 0x72, 0x43, 0x6f, 0x6e, 0x6e, 0x65, 0x63, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74,
	0x1a, 0x2a, 0x2e, 0x70, 0x61, 0x72, 0x6b, 0x70, 0x69, 0x6c, 0x6f, 0x74, 0x2e, 0x76, 0x31, 0x2e,
	0x42, 0x65, 0x67, 0x69, 0x6e, 0x43, 0x61, 0x6c, 0x65, 0x6e, 0x64, 0x61, 0x72, 0x43, 0x6f, 0x6e,
	0x6e, 0x65, 0x63, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x76, 0x0a, 0x17,
	0x43, 0x6f, 0x6d, 0x70, 0x6c, 0x65, 0x74, 0x65, 0x43, 0x61, 0x6c, 0x65, 0x6e, 0x64, 0x61, 0x72,
	0x43, 0x6f, 0x6e, 0x6e, 0x65, 0x63, 0x74, 0x12, 0x2c, 0x2e, 0x70, 0x61, 0x72, 0x6b, 0x70, 0x69,
	0x6c, 0x6f, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x43, 0x6f, 0x6d, 0x70, 0x6c, 0x65, 0x74, 0x65, 0x43,
	0x61, 0x6c, 0x65, 0x6e, 0x64, 0x61, 0x72, 0x43, 0x6f, 0x6e, 0x6e, 0x65, 0x63, 0x74, 0x52, 0x65,
	0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x2d, 0x2e, 0x70, 0x61, 0x72, 0x6b, 0x70, 0x69, 0x6c, 0x6f,
	0x74, 0x2e, 0x76, 0x31, 0x2e, 0x43, 0x6f, 0x6d, 0x70, 0x6c, 0x65, 0x74, 0x65, 0x43, 0x61, 0x6c,
	0x65, 0x6e, 0x64, 0x61, 0x72, 0x43, 0x6f, 0x6e, 0x6e, 0x65, 0x63, 0x74, 0x52, 0x65, 0x73, 0x70,
	0x6f, 0x6e, 0x73, 0x65, 0x12, 0x67, 0x0a, 0x12, 0x44, 0x69, 0x73, 0x63, 0x6f, 0x6e, 0x6e, 0x65,
	0x63, 0x74, 0x43, 0x61, 0x6c, 0x65, 0x6e, 0x64, 0x61, 0x72, 0x12, 0x27, 0x2e, 0x70, 0x61, 0x72,
	0x6b, 0x70, 0x69, 0x6c, 0x6f, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x44, 0x69, 0x73, 0x63, 0x6f, 0x6e,
	0x6e, 0x65, 0x63, 0x74, 0x43, 0x61, 0x6c, 0x65, 0x6e, 0x64, 0x61, 0x72, 0x52, 0x65, 0x71, 0x75,
	0x65, 0x73, 0x74, 0x1a, 0x28, 0x2e, 0x70, 0x61, 0x72, 0x6b, 0x70, 0x69, 0x6c, 0x6f, 0x74, 0x2e,
	0x76, 0x31, 0x2e, 0x44, 0x69, 0x73, 0x63, 0x6f, 0x6e, 0x6e, 0x65, 0x63, 0x74, 0x43, 0x61, 0x6c,
	0x65, 0x6e, 0x64, 0x61, 0x72, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x64, 0x0a,
	0x11, 0x47, 0x65, 0x74, 0x43, 0x61, 0x6c, 0x65, 0x6e, 0x64, 0x61, 0x72, 0x53, 0x74, 0x61, 0x74,
	0x75, 0x73, 0x12, 0x26, 0x2e, 0x70, 0x61, 0x72, 0x6b, 0x70, 0x69, 0x6c, 0x6f, 0x74, 0x2e, 0x76,
	0x31, 0x2e, 0x47, 0x65, 0x74, 0x43, 0x61, 0x6c, 0x65, 0x6e, 0x64, 0x61, 0x72, 0x53, 0x74, 0x61,
	0x74, 0x75, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x27, 0x2e, 0x70, 0x61, 0x72,
	0x6b, 0x70, 0x69, 0x6c, 0x6f, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x47, 0x65, 0x74, 0x43, 0x61, 0x6c,
	0x65, 0x6e, 0x64, 0x61, 0x72, 0x53, 0x74, 0x61, 0x74, 0x75, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f,
	0x6e, 0x73, 0x65, 0x42, 0x37, 0x5a, 0x35, 0x70, 0x61, 0x72, 0x6b, 0x70, 0x69, 0x6c, 0x6f, 0x74,
	0x2f, 0x69, 0x6e, 0x74, 0x65, 0x72, 0x6e, 0x61, 0x6c, 0x2f, 0x67, 0x65, 0x6e, 0x2f, 0x70, 0x72,
	0x6f, 0x74, 0x6f, 0x2f, 0x70, 0x61, 0x72, 0x6b, 0x70, 0x69, 0x6c, 0x6f, 0x74, 0x2f, 0x76, 0x31,
	0x3b, 0x70, 0x61, 0x72, 0x6b, 0x70, 0x69, 0x6c, 0x6f, 0x74, 0x76, 0x31, 0x62, 0x06, 0x70, 0x72,
	0x6f, 0x74, 0x6f, 0x33,
}

var (
	file_parkpilot_v1_showings_proto_rawDescOnce sync.Once
	file_parkpilot_v1_showings_proto_rawDescData = file_parkpilot_v1_showings_proto_rawDesc
)

func file_parkpilot_v1_showings_proto_rawDescGZIP() []byte {
	file_parkpilot_v1_showings_proto_rawDescOnce.Do(func() {
		file_parkpilot_v1_showings_proto_rawDescData = protoimpl.X.CompressGZIP(file_parkpilot_v1_showings_proto_rawDescData)
	})
	return file_parkpilot_v1_showings_proto_rawDescData
}

var file_parkpilot_v1_showings_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_parkpilot_v1_showings_proto_msgTypes = make([]protoimpl.MessageInfo, 20)
var file_parkpilot_v1_showings_proto_goTypes = []any{
	(ShowingStatus)(0),                      // 0: parkpilot.v1.ShowingStatus
	(*Showing)(nil),                         // 1: parkpilot.v1.Showing
	(*WindowItem)(nil),                      // 2: parkpilot.v1.WindowItem
	(*BookShowingRequest)(nil),              // 3: parkpilot.v1.BookShowingRequest
	(*BookShowingResponse)(nil),             // 4: parkpilot.v1.BookShowingResponse
	(*ListShowingsRequest)(nil),             // 5: parkpilot.v1.ListShowingsRequest
	(*ListShowingsResponse)(nil),            // 6: parkpilot.v1.ListShowingsResponse
	(*ConfirmShowingRequest)(nil),           // 7: parkpilot.v1.ConfirmShowingRequest
	(*ConfirmShowingResponse)(nil),          // 8: parkpilot.v1.ConfirmShowingResponse
	(*CancelShowingRequest)(nil),            // 9: parkpilot.v1.CancelShowingRequest
	(*CancelShowingResponse)(nil),           // 10: parkpilot.v1.CancelShowingResponse
	(*CompleteShowingRequest)(nil),          // 11: parkpilot.v1.CompleteShowingRequest
	(*CompleteShowingResponse)(nil),         // 12: parkpilot.v1.CompleteShowingResponse
	(*BeginCalendarConnectRequest)(nil),     // 13: parkpilot.v1.BeginCalendarConnectRequest
	(*BeginCalendarConnectResponse)(nil),    // 14: parkpilot.v1.BeginCalendarConnectResponse
	(*CompleteCalendarConnectRequest)(nil),  // 15: parkpilot.v1.CompleteCalendarConnectRequest
	(*CompleteCalendarConnectResponse)(nil), // 16: parkpilot.v1.CompleteCalendarConnectResponse
	(*DisconnectCalendarRequest)(nil),       // 17: parkpilot.v1.DisconnectCalendarRequest
	(*DisconnectCalendarResponse)(nil),      // 18: parkpilot.v1.DisconnectCalendarResponse
	(*GetCalendarStatusRequest)(nil),        // 19: parkpilot.v1.GetCalendarStatusRequest
	(*GetCalendarStatusResponse)(nil),       // 20: parkpilot.v1.GetCalendarStatusResponse
	(*timestamppb.Timestamp)(nil),           // 21: google.protobuf.Timestamp
}
var file_parkpilot_v1_showings_proto_depIdxs = []int32{
	21, // 0: parkpilot.v1.Showing.start_time:type_name -> google.protobuf.Timestamp
	21, // 1: parkpilot.v1.Showing.end_time:type_name -> google.protobuf.Timestamp
	0,  // 2: parkpilot.v1.Showing.status:type_name -> parkpilot.v1.ShowingStatus
	21, // 3: parkpilot.v1.Showing.created_at:type_name -> google.protobuf.Timestamp
	21, // 4: parkpilot.v1.Showing.updated_at:type_name -> google.protobuf.Timestamp
	1,  // 5: parkpilot.v1.WindowItem.showing:type_name -> parkpilot.v1.Showing
	21, // 6: parkpilot.v1.BookShowingRequest.start_time:type_name -> google.protobuf.Timestamp
	21, // 7: parkpilot.v1.BookShowingRequest.end_time:type_name -> google.protobuf.Timestamp
	1,  // 8: parkpilot.v1.BookShowingResponse.showing:type_name -> parkpilot.v1.Showing
	21, // 9: parkpilot.v1.ListShowingsRequest.window_start:type_name -> google.protobuf.Timestamp
	21, // 10: parkpilot.v1.ListShowingsRequest.window_end:type_name -> google.protobuf.Timestamp
	2,  // 11: parkpilot.v1.ListShowingsResponse.items:type_name -> parkpilot.v1.WindowItem
	1,  // 12: parkpilot.v1.ConfirmShowingResponse.showing:type_name -> parkpilot.v1.Showing
	1,  // 13: parkpilot.v1.CancelShowingResponse.showing:type_name -> parkpilot.v1.Showing
	1,  // 14: parkpilot.v1.CompleteShowingResponse.showing:type_name -> parkpilot.v1.Showing
	3,  // 15: parkpilot.v1.ShowingsService.BookShowing:input_type -> parkpilot.v1.BookShowingRequest
	5,  // 16: parkpilot.v1.ShowingsService.ListShowings:input_type -> parkpilot.v1.ListShowingsRequest
	7,  // 17: parkpilot.v1.ShowingsService.ConfirmShowing:input_type -> parkpilot.v1.ConfirmShowingRequest
	9,  // 18: parkpilot.v1.ShowingsService.CancelShowing:input_type -> parkpilot.v1.CancelShowingRequest
	11, // 19: parkpilot.v1.ShowingsService.CompleteShowing:input_type -> parkpilot.v1.CompleteShowingRequest
	13, // 20: parkpilot.v1.ShowingsService.BeginCalendarConnect:input_type -> parkpilot.v1.BeginCalendarConnectRequest
	15, // 21: parkpilot.v1.ShowingsService.CompleteCalendarConnect:input_type -> parkpilot.v1.CompleteCalendarConnectRequest
	17, // 22: parkpilot.v1.ShowingsService.DisconnectCalendar:input_type -> parkpilot.v1.DisconnectCalendarRequest
	19, // 23: parkpilot.v1.ShowingsService.GetCalendarStatus:input_type -> parkpilot.v1.GetCalendarStatusRequest
	4,  // 24: parkpilot.v1.ShowingsService.BookShowing:output_type -> parkpilot.v1.BookShowingResponse
	6,  // 25: parkpilot.v1.ShowingsService.ListShowings:output_type -> parkpilot.v1.ListShowingsResponse
	8,  // 26: parkpilot.v1.ShowingsService.ConfirmShowing:output_type -> parkpilot.v1.ConfirmShowingResponse
	10, // 27: parkpilot.v1.ShowingsService.CancelShowing:output_type -> parkpilot.v1.CancelShowingResponse
	12, // 28: parkpilot.v1.ShowingsService.CompleteShowing:output_type -> parkpilot.v1.CompleteShowingResponse
	14, // 29: parkpilot.v1.ShowingsService.BeginCalendarConnect:output_type -> parkpilot.v1.BeginCalendarConnectResponse
	16, // 30: parkpilot.v1.ShowingsService.CompleteCalendarConnect:output_type -> parkpilot.v1.CompleteCalendarConnectResponse
	18, // 31: parkpilot.v1.ShowingsService.DisconnectCalendar:output_type -> parkpilot.v1.DisconnectCalendarResponse
	20, // 32: parkpilot.v1.ShowingsService.GetCalendarStatus:output_type -> parkpilot.v1.GetCalendarStatusResponse
	24, // [24:33] is the sub-list for method output_type
	15, // [15:24] is the sub-list for method input_type
	15, // [15:15] is the sub-list for extension type_name
	15, // [15:15] is the sub-list for extension extendee
	0,  // [0:15] is the sub-list for field type_name
}

func init() { file_parkpilot_v1_showings_proto_init() }
func file_parkpilot_v1_showings_proto_init() {
	if File_parkpilot_v1_showings_proto != nil {
		return
	}
	if !protoimpl.UnsafeEnabled {
		file_parkpilot_v1_showings_proto_msgTypes[0].Exporter = func(v any, i int) any {
			switch v := v.(*Showing); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_parkpilot_v1_showings_proto_msgTypes[1].Exporter = func(v any, i int) any {
			switch v := v.(*WindowItem); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_parkpilot_v1_showings_proto_msgTypes[2].Exporter = func(v any, i int) any {
			switch v := v.(*BookShowingRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_parkpilot_v1_showings_proto_msgTypes[3].Exporter = func(v any, i int) any {
			switch v := v.(*BookShowingResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_parkpilot_v1_showings_proto_msgTypes[4].Exporter = func(v any, i int) any {
			switch v := v.(*ListShowingsRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_parkpilot_v1_showings_proto_msgTypes[5].Exporter = func(v any, i int) any {
			switch v := v.(*ListShowingsResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_parkpilot_v1_showings_proto_msgTypes[6].Exporter = func(v any, i int) any {
			switch v := v.(*ConfirmShowingRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_parkpilot_v1_showings_proto_msgTypes[7].Exporter = func(v any, i int) any {
			switch v := v.(*ConfirmShowingResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_parkpilot_v1_showings_proto_msgTypes[8].Exporter = func(v any, i int) any {
			switch v := v.(*CancelShowingRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_parkpilot_v1_showings_proto_msgTypes[9].Exporter = func(v any, i int) any {
			switch v := v.(*CancelShowingResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_parkpilot_v1_showings_proto_msgTypes[10].Exporter = func(v any, i int) any {
			switch v := v.(*CompleteShowingRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_parkpilot_v1_showings_proto_msgTypes[11].Exporter = func(v any, i int) any {
			switch v := v.(*CompleteShowingResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_parkpilot_v1_showings_proto_msgTypes[12].Exporter = func(v any, i int) any {
			switch v := v.(*BeginCalendarConnectRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_parkpilot_v1_showings_proto_msgTypes[13].Exporter = func(v any, i int) any {
			switch v := v.(*BeginCalendarConnectResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_parkpilot_v1_showings_proto_msgTypes[14].Exporter = func(v any, i int) any {
			switch v := v.(*CompleteCalendarConnectRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_parkpilot_v1_showings_proto_msgTypes[15].Exporter = func(v any, i int) any {
			switch v := v.(*CompleteCalendarConnectResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_parkpilot_v1_showings_proto_msgTypes[16].Exporter = func(v any, i int) any {
			switch v := v.(*DisconnectCalendarRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_parkpilot_v1_showings_proto_msgTypes[17].Exporter = func(v any, i int) any {
			switch v := v.(*DisconnectCalendarResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_parkpilot_v1_showings_proto_msgTypes[18].Exporter = func(v any, i int) any {
			switch v := v.(*GetCalendarStatusRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_parkpilot_v1_showings_proto_msgTypes[19].Exporter = func(v any, i int) any {
			switch v := v.(*GetCalendarStatusResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_parkpilot_v1_showings_proto_rawDesc,
			NumEnums:      1,
			NumMessages:   20,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_parkpilot_v1_showings_proto_goTypes,
		DependencyIndexes: file_parkpilot_v1_showings_proto_depIdxs,
		EnumInfos:         file_parkpilot_v1_showings_proto_enumTypes,
		MessageInfos:      file_parkpilot_v1_showings_proto_msgTypes,
	}.Build()
	File_parkpilot_v1_showings_proto = out.File
	file_parkpilot_v1_showings_proto_rawDesc = nil
	file_parkpilot_v1_showings_proto_goTypes = nil
	file_parkpilot_v1_showings_proto_depIdxs = nil
}
