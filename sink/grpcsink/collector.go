package grpcsink

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/golang/glog"
	"github.com/sbezverk/sortbench/report"
	"github.com/sbezverk/sortbench/sink"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/keepalive"
	grpcpeer "google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	MaxRcvMsgSize = 1024 * 1024
	feedDepth     = 16
)

// Feed is one series received by the collector.
type Feed struct {
	ProducerAddr net.Addr
	Series       *report.Series
}

// Collector is a gRPC server receiving report series from remote benchmark runs.
type Collector interface {
	GetFeed() chan *Feed
	Addr() net.Addr
	Stop()
}

var _ ReportCollectorServer = &grpcSrv{}

type grpcSrv struct {
	conn   net.Listener
	gSrv   *grpc.Server
	stopCh chan struct{}
	feed   chan *Feed
}

func (srv *grpcSrv) GetFeed() chan *Feed {
	return srv.feed
}

func (srv *grpcSrv) Addr() net.Addr {
	return srv.conn.Addr()
}

func (srv *grpcSrv) Stop() {
	close(srv.stopCh)
	srv.gSrv.Stop()
	srv.conn.Close()
}

// New starts a collector listening on addr.
func New(addr string) (Collector, error) {
	conn, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s with error: %w", addr, err)
	}

	return NewWithListener(conn), nil
}

// NewWithListener starts a collector serving on an already open listener.
func NewWithListener(conn net.Listener) Collector {
	srv := &grpcSrv{
		conn:   conn,
		stopCh: make(chan struct{}),
		feed:   make(chan *Feed, feedDepth),
		gSrv: grpc.NewServer(
			grpc.MaxRecvMsgSize(MaxRcvMsgSize),
			grpc.KeepaliveParams(keepalive.ServerParameters{Time: time.Second * 30, Timeout: time.Second * 10}),
			grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{MinTime: time.Second * 10, PermitWithoutStream: true}),
		),
	}
	RegisterReportCollectorServer(srv.gSrv, srv)

	go srv.gSrv.Serve(conn)
	glog.Infof("report collector listening on %s", conn.Addr())

	return srv
}

func (srv *grpcSrv) Publish(ctx context.Context, in *structpb.Struct) (*emptypb.Empty, error) {
	s, err := sink.Decode(in)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	f := &Feed{
		Series: s,
	}
	if p, ok := grpcpeer.FromContext(ctx); ok {
		f.ProducerAddr = p.Addr
		glog.V(5).Infof("received series %s from: %s", s.Name, p.Addr)
	}
	select {
	case srv.feed <- f:
		return &emptypb.Empty{}, nil
	case <-ctx.Done():
		return nil, status.FromContextError(ctx.Err()).Err()
	case <-srv.stopCh:
		return nil, status.Error(codes.Unavailable, "collector is stopping")
	}
}
