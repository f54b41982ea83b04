// Package bulctest runs an in-process stand-in for the BULC application on
// a loopback TCP port.
package bulctest

import (
	"bufio"
	"encoding/json"
	"io"
	"net"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/lydakis/bulcmcp/internal/protocol"
)

// Handler returns the raw bytes written back for one command. Returning
// nil writes nothing and keeps the connection open until the client
// closes it.
type Handler func(cmd protocol.Command) []byte

// Reply is a Handler that always answers with the given raw response.
func Reply(raw string) Handler {
	return func(protocol.Command) []byte { return []byte(raw) }
}

// Server accepts one command per connection and answers through its handler.
type Server struct {
	listener net.Listener
	handler  Handler
	wg       sync.WaitGroup

	conns atomic.Int64
	mu    sync.Mutex
	cmds  []protocol.Command
	eof   chan struct{}
}

// Start listens on 127.0.0.1 and stops the server when the test ends.
func Start(t testing.TB, handler Handler) *Server {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listening on loopback: %v", err)
	}
	s := &Server{listener: ln, handler: handler, eof: make(chan struct{}, 16)}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.acceptLoop()
	}()
	t.Cleanup(s.Stop)
	return s
}

// Stop closes the listener and waits for in-flight connections.
func (s *Server) Stop() {
	s.listener.Close()
	s.wg.Wait()
}

// Host returns the listening host.
func (s *Server) Host() string {
	host, _, _ := net.SplitHostPort(s.listener.Addr().String())
	return host
}

// Port returns the listening port.
func (s *Server) Port() int {
	_, port, _ := net.SplitHostPort(s.listener.Addr().String())
	n, _ := strconv.Atoi(port)
	return n
}

// Connections reports how many connections were accepted.
func (s *Server) Connections() int {
	return int(s.conns.Load())
}

// Commands returns the commands received so far.
func (s *Server) Commands() []protocol.Command {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]protocol.Command(nil), s.cmds...)
}

// ClientClosed is signalled each time a held connection observes the
// client closing its side.
func (s *Server) ClientClosed() <-chan struct{} {
	return s.eof
}

func (s *Server) acceptLoop() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			return // listener closed
		}
		s.conns.Add(1)
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			defer conn.Close()
			s.handleConn(conn)
		}()
	}
}

func (s *Server) handleConn(conn net.Conn) {
	r := bufio.NewReader(conn)
	line, err := r.ReadBytes('\n')
	if err != nil {
		return
	}

	var cmd protocol.Command
	if err := json.Unmarshal(line, &cmd); err != nil {
		return
	}
	s.mu.Lock()
	s.cmds = append(s.cmds, cmd)
	s.mu.Unlock()

	out := s.handler(cmd)
	if out == nil {
		_, _ = io.Copy(io.Discard, r)
		select {
		case s.eof <- struct{}{}:
		default:
		}
		return
	}
	_, _ = conn.Write(out)
}
