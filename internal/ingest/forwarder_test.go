package ingest_test

import (
	"bytes"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cthulhu-engineer/goit-cs-hw-06/internal/ingest"
	apperrors "github.com/cthulhu-engineer/goit-cs-hw-06/pkg/errors"
)

func TestForwarder_Forward(t *testing.T) {
	addr, err := net.ResolveUDPAddr("udp", "127.0.0.1:0")
	require.NoError(t, err)
	conn, err := net.ListenUDP("udp", addr)
	require.NoError(t, err)
	defer conn.Close()

	f := ingest.NewForwarder(conn.LocalAddr().String(), 1024)

	payload := []byte("username=bob&message=hi")
	require.NoError(t, f.Forward(payload))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	buf := make([]byte, 1024)
	n, _, err := conn.ReadFromUDP(buf)
	require.NoError(t, err)
	assert.Equal(t, payload, buf[:n])
}

func TestForwarder_RejectsOversizedPayload(t *testing.T) {
	f := ingest.NewForwarder("127.0.0.1:9", 8)

	err := f.Forward(bytes.Repeat([]byte("a"), 9))

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}
