package grpcsink

import (
	"context"
	"fmt"

	"github.com/golang/glog"
	"github.com/sbezverk/sortbench/report"
	"github.com/sbezverk/sortbench/sink"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/emptypb"
)

var _ sink.Sink = &client{}

type client struct {
	conn *grpc.ClientConn
}

// Dial returns a Sink publishing series to the collector at target.
func Dial(target string, opts ...grpc.DialOption) (sink.Sink, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to report collector %s with error: %w", target, err)
	}

	return &client{conn: conn}, nil
}

func (c *client) Publish(ctx context.Context, s *report.Series) error {
	st, err := sink.Encode(s)
	if err != nil {
		return err
	}
	if err := c.conn.Invoke(ctx, publishMethod, st, &emptypb.Empty{}); err != nil {
		return fmt.Errorf("failed to publish series %s with error: %w", s.Name, err)
	}
	glog.V(5).Infof("published series %s to %s", s.Name, c.conn.Target())

	return nil
}

func (c *client) Close() error {
	return c.conn.Close()
}
