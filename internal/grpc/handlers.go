package grpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	pb "github.com/godilite/talentbridge-stats/api/v1"
	"github.com/godilite/talentbridge-stats/internal/service"
	"github.com/godilite/talentbridge-stats/internal/stats"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type GRPCHandlers struct {
	pb.UnimplementedReportsServer
	reports ReportsService
	logger  *zap.Logger
	timeout time.Duration
}

// NewGRPCHandlers initializes the gRPC handlers. A positive timeout bounds
// each call; otherwise only the caller's deadline applies.
func NewGRPCHandlers(reports ReportsService, logger *zap.Logger, timeout time.Duration) *GRPCHandlers {
	if reports == nil {
		panic("nil ReportsService provided to NewGRPCHandlers")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout < 0 {
		timeout = 0
	}
	return &GRPCHandlers{
		reports: reports,
		logger:  logger.Named("grpc-handler"),
		timeout: timeout,
	}
}

func stringField(req *structpb.Struct, name string) (string, error) {
	v, ok := req.GetFields()[name]
	if !ok {
		return "", nil
	}
	switch k := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		return k.StringValue, nil
	case *structpb.Value_NullValue:
		return "", nil
	default:
		return "", status.Errorf(codes.InvalidArgument, "%s must be a string", name)
	}
}

func (s *GRPCHandlers) parseAndValidate(req *structpb.Struct) (*stats.DateRange, error) {
	from, err := stringField(req, pb.FieldFromDate)
	if err != nil {
		return nil, err
	}
	to, err := stringField(req, pb.FieldToDate)
	if err != nil {
		return nil, err
	}

	r, err := stats.ParseDateRange(from, to)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return r, nil
}

func (s *GRPCHandlers) handleError(ctx context.Context, op string, err error) error {
	switch ctx.Err() {
	case context.Canceled:
		s.logger.Warn("request canceled", zap.String("op", op))
		return status.Error(codes.Canceled, "request canceled")
	case context.DeadlineExceeded:
		s.logger.Warn("request timeout", zap.String("op", op))
		return status.Error(codes.DeadlineExceeded, "request timed out")
	}

	switch {
	case errors.Is(err, stats.ErrInvalidRange), errors.Is(err, stats.ErrIncompleteRange):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, service.ErrUpstreamFailure):
		s.logger.Error("upstream failure", zap.String("op", op), zap.Error(err))
		return status.Error(codes.Unavailable, err.Error())
	default:
		s.logger.Error("unexpected error", zap.String("op", op), zap.Error(err))
		return status.Errorf(codes.Internal, "%s failed: %v", op, err)
	}
}

func (s *GRPCHandlers) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *GRPCHandlers) GetSummary(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r, err := s.parseAndValidate(req)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	body, err := s.reports.Summary(ctx, r)
	if err != nil {
		return nil, s.handleError(ctx, "GetSummary", err)
	}

	out := &structpb.Struct{}
	if err := protojson.Unmarshal(body, out); err != nil {
		return nil, s.handleError(ctx, "GetSummary", fmt.Errorf("summary is not a JSON object: %w", err))
	}
	return out, nil
}

func (s *GRPCHandlers) ExportReport(ctx context.Context, req *structpb.Struct) (*wrapperspb.BytesValue, error) {
	r, err := s.parseAndValidate(req)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	export, err := s.reports.Export(ctx, r)
	if err != nil {
		return nil, s.handleError(ctx, "ExportReport", err)
	}

	md := metadata.Pairs(pb.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", export.Filename))
	if err := grpc.SetHeader(ctx, md); err != nil {
		s.logger.Warn("failed to set export header", zap.Error(err))
	}
	return wrapperspb.Bytes(export.Data), nil
}
