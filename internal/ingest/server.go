package ingest

import (
	"context"
	"fmt"
	"log"
	"net"
	"sync"

	"github.com/cthulhu-engineer/goit-cs-hw-06/internal/domain/models"
)

// Ingestor consumes decoded datagram payloads
type Ingestor interface {
	Ingest(ctx context.Context, payload []byte) (*models.Message, error)
}

// Server receives message submissions over UDP and hands them to the
// Ingestor. A bad datagram is logged and skipped; the loop never dies on
// input.
type Server struct {
	addr       string
	bufferSize int
	ingestor   Ingestor

	conn *net.UDPConn

	// Worker control
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewServer creates a new ingest Server
func NewServer(addr string, bufferSize int, ingestor Ingestor) *Server {
	return &Server{
		addr:       addr,
		bufferSize: bufferSize,
		ingestor:   ingestor,
		stopCh:     make(chan struct{}),
	}
}

// Start binds the UDP socket and launches the receive loop
func (s *Server) Start() error {
	udpAddr, err := net.ResolveUDPAddr("udp", s.addr)
	if err != nil {
		return fmt.Errorf("invalid ingest address %s: %w", s.addr, err)
	}

	conn, err := net.ListenUDP("udp", udpAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	s.conn = conn

	s.wg.Add(1)
	go s.loop()

	log.Printf("📨 Ingest server listening at socket://%s", conn.LocalAddr())
	return nil
}

// Addr returns the bound address. Useful when the server was started on an
// ephemeral port.
func (s *Server) Addr() string {
	if s.conn == nil {
		return s.addr
	}
	return s.conn.LocalAddr().String()
}

func (s *Server) loop() {
	defer s.wg.Done()

	buf := make([]byte, s.bufferSize)
	for {
		n, _, err := s.conn.ReadFromUDP(buf)
		if err != nil {
			select {
			case <-s.stopCh:
				return
			default:
			}
			log.Printf("⚠️  Ingest read error: %v", err)
			continue
		}

		payload := make([]byte, n)
		copy(payload, buf[:n])

		msg, err := s.ingestor.Ingest(context.Background(), payload)
		if err != nil {
			log.Printf("⚠️  Failed to save message: %v", err)
			continue
		}
		log.Printf("💾 Message %s saved", msg.ID)
	}
}

// Stop shuts the worker down gracefully. Closing the socket unblocks the
// pending read; Stop returns once the loop has exited.
func (s *Server) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
		if s.conn != nil {
			s.conn.Close()
		}
	})
	s.wg.Wait()
	log.Printf("📨 Ingest server stopped")
}
