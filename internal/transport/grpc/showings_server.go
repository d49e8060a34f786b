package grpc

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"parkpilot/internal/domain"
	parkpilotv1 "parkpilot/internal/gen/proto/parkpilot/v1"
	"parkpilot/internal/service/showings"
	"parkpilot/internal/service/tokens"
	"parkpilot/internal/store"
)

type ShowingsServer struct {
	parkpilotv1.UnimplementedShowingsServiceServer

	svc    showingsService
	tokens tokenService
	log    *slog.Logger
}

type showingsService interface {
	Book(ctx context.Context, in showings.BookInput) (domain.Showing, error)
	ListWindow(ctx context.Context, managerID string, windowStart, windowEnd time.Time) ([]showings.WindowItem, error)
	Confirm(ctx context.Context, id uuid.UUID) (domain.Showing, error)
	Cancel(ctx context.Context, id uuid.UUID) (domain.Showing, error)
	Complete(ctx context.Context, id uuid.UUID) (domain.Showing, error)
}

type tokenService interface {
	BeginConnect(userID string) (string, error)
	CompleteConnect(ctx context.Context, code, state string) error
	Disconnect(ctx context.Context, userID string) error
	IsConnected(ctx context.Context, userID string) (bool, error)
}

func NewShowingsServer(svc showingsService, tok tokenService, log *slog.Logger) *ShowingsServer {
	if log == nil {
		log = slog.Default()
	}
	return &ShowingsServer{
		svc:    svc,
		tokens: tok,
		log:    log.With(slog.String("component", "grpc.showings")),
	}
}

func (s *ShowingsServer) BookShowing(ctx context.Context, req *parkpilotv1.BookShowingRequest) (*parkpilotv1.BookShowingResponse, error) {
	log := s.log.With(slog.String("rpc", "BookShowing"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.StartTime == nil || req.EndTime == nil {
		log.Warn("invalid request", slog.String("reason", "missing_times"), slog.String("lot_id", req.LotId))
		return nil, status.Error(codes.InvalidArgument, "start_time and end_time are required")
	}
	lotID, err := uuid.Parse(req.LotId)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_lot_id"))
		return nil, status.Error(codes.InvalidArgument, "lot_id must be a UUID")
	}

	showing, err := s.svc.Book(ctx, showings.BookInput{
		LotID:       lotID,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		Notes:       req.Notes,
		StartTime:   req.StartTime.AsTime(),
		EndTime:     req.EndTime.AsTime(),
	})
	if err != nil {
		if errors.Is(err, showings.ErrSlotConflict) {
			log.Info(
				"booking conflict",
				slog.String("lot_id", req.LotId),
				slog.Time("start_time", req.StartTime.AsTime()),
				slog.Time("end_time", req.EndTime.AsTime()),
			)
			return nil, status.Error(codes.FailedPrecondition, "That time slot is already taken. Pick a different slot.")
		}
		if errors.Is(err, store.ErrNotFound) {
			log.Info("lot not found", slog.String("lot_id", req.LotId))
			return nil, status.Error(codes.NotFound, "lot not found")
		}
		var vErr *showings.ValidationError
		if errors.As(err, &vErr) {
			log.Warn("invalid request", slog.Any("err", err), slog.String("lot_id", req.LotId))
			return nil, status.Error(codes.InvalidArgument, vErr.Error())
		}
		log.Error("booking failed", slog.Any("err", err), slog.String("lot_id", req.LotId))
		return nil, status.Error(codes.Internal, "internal error")
	}

	log.Info(
		"showing booked",
		slog.String("showing_id", showing.ID.String()),
		slog.String("manager_id", showing.ManagerID),
		slog.Bool("calendar_synced", showing.CalendarEventID != ""),
	)
	return &parkpilotv1.BookShowingResponse{Showing: toProtoShowing(showing)}, nil
}

func (s *ShowingsServer) ListShowings(ctx context.Context, req *parkpilotv1.ListShowingsRequest) (*parkpilotv1.ListShowingsResponse, error) {
	log := s.log.With(slog.String("rpc", "ListShowings"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.WindowStart == nil || req.WindowEnd == nil {
		log.Warn("invalid request", slog.String("reason", "missing_window"), slog.String("manager_id", req.ManagerId))
		return nil, status.Error(codes.InvalidArgument, "window_start and window_end are required")
	}

	items, err := s.svc.ListWindow(ctx, req.ManagerId, req.WindowStart.AsTime(), req.WindowEnd.AsTime())
	if err != nil {
		var vErr *showings.ValidationError
		if errors.As(err, &vErr) {
			log.Warn("invalid request", slog.Any("err", err), slog.String("manager_id", req.ManagerId))
			return nil, status.Error(codes.InvalidArgument, vErr.Error())
		}
		log.Error("showings list failed", slog.Any("err", err), slog.String("manager_id", req.ManagerId))
		return nil, status.Error(codes.Internal, "internal error")
	}

	out := make([]*parkpilotv1.WindowItem, 0, len(items))
	for _, item := range items {
		out = append(out, &parkpilotv1.WindowItem{
			Showing:      toProtoShowing(item.Showing),
			LotLabel:     item.LotLabel,
			ParkName:     item.ParkName,
			CalendarOnly: item.CalendarOnly,
		})
	}

	log.Debug(
		"showings listed",
		slog.String("manager_id", req.ManagerId),
		slog.Int("count", len(out)),
		slog.Time("window_start", req.WindowStart.AsTime()),
		slog.Time("window_end", req.WindowEnd.AsTime()),
	)
	return &parkpilotv1.ListShowingsResponse{Items: out}, nil
}

func (s *ShowingsServer) ConfirmShowing(ctx context.Context, req *parkpilotv1.ConfirmShowingRequest) (*parkpilotv1.ConfirmShowingResponse, error) {
	showing, err := s.transition(ctx, "ConfirmShowing", req.GetShowingId(), s.svc.Confirm)
	if err != nil {
		return nil, err
	}
	return &parkpilotv1.ConfirmShowingResponse{Showing: toProtoShowing(showing)}, nil
}

func (s *ShowingsServer) CancelShowing(ctx context.Context, req *parkpilotv1.CancelShowingRequest) (*parkpilotv1.CancelShowingResponse, error) {
	showing, err := s.transition(ctx, "CancelShowing", req.GetShowingId(), s.svc.Cancel)
	if err != nil {
		return nil, err
	}
	return &parkpilotv1.CancelShowingResponse{Showing: toProtoShowing(showing)}, nil
}

func (s *ShowingsServer) CompleteShowing(ctx context.Context, req *parkpilotv1.CompleteShowingRequest) (*parkpilotv1.CompleteShowingResponse, error) {
	showing, err := s.transition(ctx, "CompleteShowing", req.GetShowingId(), s.svc.Complete)
	if err != nil {
		return nil, err
	}
	return &parkpilotv1.CompleteShowingResponse{Showing: toProtoShowing(showing)}, nil
}

// transition runs one status-change rpc with the shared id parsing and
// error mapping.
func (s *ShowingsServer) transition(ctx context.Context, rpc, rawID string, fn func(context.Context, uuid.UUID) (domain.Showing, error)) (domain.Showing, error) {
	log := s.log.With(slog.String("rpc", rpc))

	id, err := uuid.Parse(rawID)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_uuid"))
		return domain.Showing{}, status.Error(codes.InvalidArgument, "showing_id must be a UUID")
	}

	showing, err := fn(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Info("showing not found", slog.String("showing_id", id.String()))
			return domain.Showing{}, status.Error(codes.NotFound, "showing not found")
		}
		if errors.Is(err, showings.ErrTerminalStatus) {
			log.Info("showing already finalized", slog.String("showing_id", id.String()))
			return domain.Showing{}, status.Error(codes.FailedPrecondition, "This showing is already completed or canceled.")
		}
		var vErr *showings.ValidationError
		if errors.As(err, &vErr) {
			log.Warn("invalid request", slog.Any("err", err), slog.String("showing_id", id.String()))
			return domain.Showing{}, status.Error(codes.InvalidArgument, vErr.Error())
		}
		log.Error("status change failed", slog.Any("err", err), slog.String("showing_id", id.String()))
		return domain.Showing{}, status.Error(codes.Internal, "internal error")
	}

	log.Info("showing status changed",
		slog.String("showing_id", showing.ID.String()),
		slog.String("status", string(showing.Status)),
	)
	return showing, nil
}

func (s *ShowingsServer) BeginCalendarConnect(ctx context.Context, req *parkpilotv1.BeginCalendarConnectRequest) (*parkpilotv1.BeginCalendarConnectResponse, error) {
	log := s.log.With(slog.String("rpc", "BeginCalendarConnect"))

	if req == nil || req.UserId == "" {
		log.Warn("invalid request", slog.String("reason", "missing_user_id"))
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}

	authURL, err := s.tokens.BeginConnect(req.UserId)
	if err != nil {
		log.Error("connect begin failed", slog.Any("err", err), slog.String("user_id", req.UserId))
		return nil, status.Error(codes.Internal, "internal error")
	}

	log.Info("calendar connect started", slog.String("user_id", req.UserId))
	return &parkpilotv1.BeginCalendarConnectResponse{AuthUrl: authURL}, nil
}

func (s *ShowingsServer) CompleteCalendarConnect(ctx context.Context, req *parkpilotv1.CompleteCalendarConnectRequest) (*parkpilotv1.CompleteCalendarConnectResponse, error) {
	log := s.log.With(slog.String("rpc", "CompleteCalendarConnect"))

	if req == nil || req.Code == "" || req.State == "" {
		log.Warn("invalid request", slog.String("reason", "missing_code_or_state"))
		return nil, status.Error(codes.InvalidArgument, "code and state are required")
	}

	if err := s.tokens.CompleteConnect(ctx, req.Code, req.State); err != nil {
		if errors.Is(err, tokens.ErrInvalidState) {
			log.Warn("invalid oauth state")
			return nil, status.Error(codes.InvalidArgument, "invalid state")
		}
		log.Error("connect complete failed", slog.Any("err", err))
		return nil, status.Error(codes.Internal, "calendar connection failed")
	}
	return &parkpilotv1.CompleteCalendarConnectResponse{}, nil
}

func (s *ShowingsServer) DisconnectCalendar(ctx context.Context, req *parkpilotv1.DisconnectCalendarRequest) (*parkpilotv1.DisconnectCalendarResponse, error) {
	log := s.log.With(slog.String("rpc", "DisconnectCalendar"))

	if req == nil || req.UserId == "" {
		log.Warn("invalid request", slog.String("reason", "missing_user_id"))
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}

	if err := s.tokens.Disconnect(ctx, req.UserId); err != nil {
		log.Error("disconnect failed", slog.Any("err", err), slog.String("user_id", req.UserId))
		return nil, status.Error(codes.Internal, "internal error")
	}
	return &parkpilotv1.DisconnectCalendarResponse{}, nil
}

func (s *ShowingsServer) GetCalendarStatus(ctx context.Context, req *parkpilotv1.GetCalendarStatusRequest) (*parkpilotv1.GetCalendarStatusResponse, error) {
	log := s.log.With(slog.String("rpc", "GetCalendarStatus"))

	if req == nil || req.UserId == "" {
		log.Warn("invalid request", slog.String("reason", "missing_user_id"))
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}

	connected, err := s.tokens.IsConnected(ctx, req.UserId)
	if err != nil {
		log.Error("status check failed", slog.Any("err", err), slog.String("user_id", req.UserId))
		return nil, status.Error(codes.Internal, "internal error")
	}
	return &parkpilotv1.GetCalendarStatusResponse{Connected: connected}, nil
}

func toProtoShowing(s domain.Showing) *parkpilotv1.Showing {
	out := &parkpilotv1.Showing{
		ManagerId:         s.ManagerID,
		ClientName:        s.ClientName,
		ClientEmail:       s.ClientEmail,
		ClientPhone:       s.ClientPhone,
		Notes:             s.Notes,
		StartTime:         timestamppb.New(s.StartTime),
		EndTime:           timestamppb.New(s.EndTime),
		Status:            toProtoStatus(s.Status),
		CalendarEventId:   s.CalendarEventID,
		CalendarHtmlLink:  s.CalendarHTMLLink,
		CalendarSyncError: s.CalendarSyncError,
	}
	if s.ID != uuid.Nil {
		out.Id = s.ID.String()
		out.CreatedAt = timestamppb.New(s.CreatedAt)
		out.UpdatedAt = timestamppb.New(s.UpdatedAt)
	}
	if s.LotID != uuid.Nil {
		out.LotId = s.LotID.String()
	}
	return out
}

func toProtoStatus(s domain.ShowingStatus) parkpilotv1.ShowingStatus {
	switch s {
	case domain.ShowingStatusScheduled:
		return parkpilotv1.ShowingStatus_SHOWING_STATUS_SCHEDULED
	case domain.ShowingStatusConfirmed:
		return parkpilotv1.ShowingStatus_SHOWING_STATUS_CONFIRMED
	case domain.ShowingStatusCompleted:
		return parkpilotv1.ShowingStatus_SHOWING_STATUS_COMPLETED
	case domain.ShowingStatusCanceled:
		return parkpilotv1.ShowingStatus_SHOWING_STATUS_CANCELED
	}
	return parkpilotv1.ShowingStatus_SHOWING_STATUS_UNSPECIFIED
}
