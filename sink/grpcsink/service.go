package grpcsink

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	serviceName   = "sortbench.ReportCollector"
	publishMethod = "/" + serviceName + "/Publish"
)

// ReportCollectorServer receives report series encoded as protobuf Structs.
type ReportCollectorServer interface {
	Publish(context.Context, *structpb.Struct) (*emptypb.Empty, error)
}

func publishHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReportCollectorServer).Publish(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: publishMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReportCollectorServer).Publish(ctx, req.(*structpb.Struct))
	}

	return interceptor(ctx, in, info, handler)
}

var reportCollectorServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*ReportCollectorServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Publish",
			Handler:    publishHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "sortbench/report_collector",
}

// RegisterReportCollectorServer registers srv with s.
func RegisterReportCollectorServer(s grpc.ServiceRegistrar, srv ReportCollectorServer) {
	s.RegisterService(&reportCollectorServiceDesc, srv)
}
