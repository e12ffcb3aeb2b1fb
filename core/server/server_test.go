package server_test

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wishcowork/sitekit/core/server"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func waitForServer(t *testing.T, url string) *http.Response {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := http.Get(url)
		if err == nil {
			return resp
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("server did not come up")
	return nil
}

func TestStart_ServesAndShutsDownOnCancel(t *testing.T) {
	addr := freeAddr(t)
	srv := server.New(addr, server.WithShutdownTimeout(2*time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Start(ctx, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, "ok")
		}))
	}()

	resp := waitForServer(t, "http://"+addr+"/")
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, "ok", string(body))

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	_, err := http.Get("http://" + addr + "/")
	assert.Error(t, err)
}

func TestStart_AlreadyRunning(t *testing.T) {
	addr := freeAddr(t)
	srv := server.New(addr)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = srv.Start(ctx, http.NotFoundHandler()) }()
	waitForServer(t, "http://"+addr+"/")

	err := srv.Start(ctx, http.NotFoundHandler())
	assert.ErrorIs(t, err, server.ErrAlreadyRunning)
}

func TestStop_NotRunning(t *testing.T) {
	srv := server.New(freeAddr(t))
	assert.NoError(t, srv.Stop())
}

func TestNewFromConfig(t *testing.T) {
	addr := freeAddr(t)
	srv := server.NewFromConfig(server.Config{
		Addr:            addr,
		ReadTimeout:     time.Second,
		WriteTimeout:    time.Second,
		IdleTimeout:     time.Second,
		ShutdownTimeout: time.Second,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx, http.NotFoundHandler()) }()
	resp := waitForServer(t, "http://"+addr+"/")
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	cancel()
	<-done
}
