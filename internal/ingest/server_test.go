package ingest_test

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cthulhu-engineer/goit-cs-hw-06/internal/domain/models"
	"github.com/cthulhu-engineer/goit-cs-hw-06/internal/ingest"
)

// recordingIngestor captures payloads and fails on the marker payload "bad"
type recordingIngestor struct {
	payloads chan []byte
}

func (r *recordingIngestor) Ingest(_ context.Context, payload []byte) (*models.Message, error) {
	r.payloads <- payload
	if string(payload) == "bad" {
		return nil, errors.New("unparseable payload")
	}
	return &models.Message{ID: "m1"}, nil
}

func waitForPayload(t *testing.T, ch chan []byte) []byte {
	t.Helper()
	select {
	case p := <-ch:
		return p
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for datagram")
		return nil
	}
}

func TestServer_ReceivesDatagrams(t *testing.T) {
	ing := &recordingIngestor{payloads: make(chan []byte, 4)}
	srv := ingest.NewServer("127.0.0.1:0", 1024, ing)
	require.NoError(t, srv.Start())
	defer srv.Stop()

	conn, err := net.Dial("udp", srv.Addr())
	require.NoError(t, err)
	defer conn.Close()

	payload := []byte("username=bob&message=hi")
	_, err = conn.Write(payload)
	require.NoError(t, err)

	assert.Equal(t, payload, waitForPayload(t, ing.payloads))
}

func TestServer_SurvivesBadPayload(t *testing.T) {
	ing := &recordingIngestor{payloads: make(chan []byte, 4)}
	srv := ingest.NewServer("127.0.0.1:0", 1024, ing)
	require.NoError(t, srv.Start())
	defer srv.Stop()

	conn, err := net.Dial("udp", srv.Addr())
	require.NoError(t, err)
	defer conn.Close()

	// First datagram makes the ingestor fail; the loop must keep going.
	_, err = conn.Write([]byte("bad"))
	require.NoError(t, err)
	assert.Equal(t, []byte("bad"), waitForPayload(t, ing.payloads))

	good := []byte("username=bob")
	_, err = conn.Write(good)
	require.NoError(t, err)
	assert.Equal(t, good, waitForPayload(t, ing.payloads))
}

func TestServer_StopUnblocksRead(t *testing.T) {
	ing := &recordingIngestor{payloads: make(chan []byte, 4)}
	srv := ingest.NewServer("127.0.0.1:0", 1024, ing)
	require.NoError(t, srv.Start())

	done := make(chan struct{})
	go func() {
		srv.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}
}
