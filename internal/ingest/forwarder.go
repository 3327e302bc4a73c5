package ingest

import (
	"fmt"
	"net"

	apperrors "github.com/cthulhu-engineer/goit-cs-hw-06/pkg/errors"
)

// Forwarder relays raw form payloads to the ingest server as single UDP
// datagrams. A fresh socket is opened per send, matching the original
// fire-and-forget submission path.
type Forwarder struct {
	addr       string
	bufferSize int
}

// NewForwarder creates a new Forwarder targeting the given ingest address
func NewForwarder(addr string, bufferSize int) *Forwarder {
	return &Forwarder{addr: addr, bufferSize: bufferSize}
}

// Forward sends one payload. Payloads larger than the ingest buffer would be
// truncated on the receiving side, so they are rejected here instead.
func (f *Forwarder) Forward(payload []byte) error {
	if len(payload) > f.bufferSize {
		return apperrors.NewValidationError("payload",
			fmt.Sprintf("payload of %d bytes exceeds the %d byte ingest buffer", len(payload), f.bufferSize))
	}

	conn, err := net.Dial("udp", f.addr)
	if err != nil {
		return apperrors.NewUnavailableError("ingest server", err)
	}
	defer conn.Close()

	if _, err := conn.Write(payload); err != nil {
		return apperrors.NewUnavailableError("ingest server", err)
	}
	return nil
}
