// Package grpcserver adapts the order service to gRPC.
package grpcserver

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"matchbook/api/pb"
	"matchbook/internal/book"
	"matchbook/internal/service"
)

type Server struct {
	pb.UnimplementedEngineServer
	svc *service.OrderService
	log *zap.Logger
}

func NewServer(svc *service.OrderService, log *zap.Logger) *Server {
	return &Server{svc: svc, log: log}
}

func (s *Server) Submit(ctx context.Context, req *pb.SubmitRequest) (*pb.SubmitResponse, error) {
	res, err := s.svc.Submit(toSide(req.Side), toType(req.Type), req.Price, req.Qty)
	if err != nil {
		if res.Status == book.StatusRejected {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}

	resp := &pb.SubmitResponse{
		OrderId:   res.OrderID,
		Seq:       res.Seq,
		Status:    fromStatus(res.Status),
		Remaining: res.Remaining,
		Trades:    make([]*pb.Trade, 0, len(res.Trades)),
	}
	for _, tr := range res.Trades {
		resp.Trades = append(resp.Trades, &pb.Trade{
			Seq:     tr.Seq,
			TakerId: tr.TakerID,
			MakerId: tr.MakerID,
			Price:   tr.Price,
			Qty:     tr.Qty,
		})
	}
	return resp, nil
}

func (s *Server) Depth(ctx context.Context, req *pb.DepthRequest) (*pb.DepthResponse, error) {
	bids, asks, lastSeq := s.svc.Depth()

	if n := int(req.MaxLevels); n > 0 {
		if len(bids) > n {
			bids = bids[:n]
		}
		if len(asks) > n {
			asks = asks[:n]
		}
	}

	return &pb.DepthResponse{
		Bids:    toLevels(bids),
		Asks:    toLevels(asks),
		LastSeq: lastSeq,
	}, nil
}

func toLevels(levels []book.Level) []*pb.DepthLevel {
	out := make([]*pb.DepthLevel, 0, len(levels))
	for _, lvl := range levels {
		out = append(out, &pb.DepthLevel{
			Price:  lvl.Price,
			Qty:    lvl.Qty,
			Orders: uint32(lvl.Orders),
		})
	}
	return out
}

func toSide(s pb.Side) book.Side {
	if s == pb.Side_ASK {
		return book.Ask
	}
	return book.Bid
}

func toType(t pb.OrderType) book.OrderType {
	if t == pb.OrderType_MARKET {
		return book.Market
	}
	return book.Limit
}

func fromStatus(st book.OrderStatus) pb.Status {
	switch st {
	case book.StatusFilled:
		return pb.Status_FILLED
	case book.StatusResting:
		return pb.Status_RESTING
	case book.StatusPartiallyUnfillable:
		return pb.Status_PARTIALLY_UNFILLABLE
	default:
		return pb.Status_REJECTED
	}
}
