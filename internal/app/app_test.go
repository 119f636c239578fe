package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/festipay/festipay/internal/config"
	"github.com/festipay/festipay/internal/handlers"
	"github.com/festipay/festipay/internal/service"
)

// Cancelling the context shuts the server down; a clean shutdown must not
// surface on the application error channel.
func TestHTTPServerShutsDownCleanly(t *testing.T) {
	a := New()
	a.cfg = &config.Config{Address: "127.0.0.1:0"}
	a.api = handlers.New(&service.Services{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	assert.NoError(t, a.startHTTPServer(ctx))

	time.Sleep(50 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()

	select {
	case err := <-a.errCh:
		t.Fatalf("unexpected server error: %v", err)
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down in time")
	}
}
