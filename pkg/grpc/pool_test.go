package grpc

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
)

func TestPool_ReusesConnection(t *testing.T) {
	pool := NewPool()
	t.Cleanup(func() { _ = pool.Close() })

	a, err := pool.GetConnection("passthrough:///svc-a")
	require.NoError(t, err)
	b, err := pool.GetConnection("passthrough:///svc-a")
	require.NoError(t, err)
	assert.Same(t, a, b)

	c, err := pool.GetConnection("passthrough:///svc-b")
	require.NoError(t, err)
	assert.NotSame(t, a, c)
}

func TestPool_ReplacesClosedConnection(t *testing.T) {
	pool := NewPool()
	t.Cleanup(func() { _ = pool.Close() })

	first, err := pool.GetConnection("passthrough:///svc")
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := pool.GetConnection("passthrough:///svc")
	require.NoError(t, err)
	assert.NotSame(t, first, second)
}

func TestPool_ChainsInterceptors(t *testing.T) {
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	healthpb.RegisterHealthServer(srv, health.NewServer())
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	var methods []string
	pool := NewPool(
		WithInterceptor(func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
			methods = append(methods, method)
			return invoker(ctx, method, req, reply, cc, opts...)
		}),
		WithDialOptions(grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		})),
	)
	t.Cleanup(func() { _ = pool.Close() })

	conn, err := pool.GetConnection("passthrough:///bufnet")
	require.NoError(t, err)

	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
	assert.Equal(t, []string{"/grpc.health.v1.Health/Check"}, methods)
}
