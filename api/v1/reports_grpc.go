// Package v1 declares the talentbridge.reports.v1.Reports gRPC service.
// Requests and responses use protobuf well-known types, so there is no
// generated message code:
//
//	GetSummary(google.protobuf.Struct{fromDate, toDate}) returns (google.protobuf.Struct)
//	ExportReport(google.protobuf.Struct{fromDate, toDate}) returns (google.protobuf.BytesValue)
//
// ExportReport sends the download filename in the content-disposition
// response header.
package v1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	ServiceName = "talentbridge.reports.v1.Reports"

	Reports_GetSummary_FullMethodName   = "/talentbridge.reports.v1.Reports/GetSummary"
	Reports_ExportReport_FullMethodName = "/talentbridge.reports.v1.Reports/ExportReport"

	// Request fields.
	FieldFromDate = "fromDate"
	FieldToDate   = "toDate"

	// HeaderContentDisposition carries the export filename.
	HeaderContentDisposition = "content-disposition"
)

type ReportsClient interface {
	GetSummary(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ExportReport(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
}

type reportsClient struct {
	cc grpc.ClientConnInterface
}

func NewReportsClient(cc grpc.ClientConnInterface) ReportsClient {
	return &reportsClient{cc}
}

func (c *reportsClient) GetSummary(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, Reports_GetSummary_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reportsClient) ExportReport(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	out := new(wrapperspb.BytesValue)
	if err := c.cc.Invoke(ctx, Reports_ExportReport_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// ReportsServer is the server API for the Reports service. Implementations
// must embed UnimplementedReportsServer.
type ReportsServer interface {
	GetSummary(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ExportReport(context.Context, *structpb.Struct) (*wrapperspb.BytesValue, error)
	mustEmbedUnimplementedReportsServer()
}

type UnimplementedReportsServer struct{}

func (UnimplementedReportsServer) GetSummary(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetSummary not implemented")
}

func (UnimplementedReportsServer) ExportReport(context.Context, *structpb.Struct) (*wrapperspb.BytesValue, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportReport not implemented")
}

func (UnimplementedReportsServer) mustEmbedUnimplementedReportsServer() {}

func RegisterReportsServer(s grpc.ServiceRegistrar, srv ReportsServer) {
	s.RegisterService(&Reports_ServiceDesc, srv)
}

func _Reports_GetSummary_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReportsServer).GetSummary(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Reports_GetSummary_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ReportsServer).GetSummary(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _Reports_ExportReport_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReportsServer).ExportReport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Reports_ExportReport_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ReportsServer).ExportReport(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

var Reports_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ReportsServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetSummary",
			Handler:    _Reports_GetSummary_Handler,
		},
		{
			MethodName: "ExportReport",
			Handler:    _Reports_ExportReport_Handler,
		},
	},
	Streams: []grpc.StreamDesc{},
}

// DateRangeRequest builds a request struct. Empty dates are omitted.
func DateRangeRequest(from, to string) *structpb.Struct {
	fields := map[string]*structpb.Value{}
	if from != "" {
		fields[FieldFromDate] = structpb.NewStringValue(from)
	}
	if to != "" {
		fields[FieldToDate] = structpb.NewStringValue(to)
	}
	return &structpb.Struct{Fields: fields}
}
