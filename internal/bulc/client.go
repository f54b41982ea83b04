// Package bulc is the TCP client for the BULC application. Each command
// is one connection carrying one request line and one response line.
package bulc

import (
	"bytes"
	"context"
	"io"
	"net"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"
	"github.com/lydakis/bulcmcp/internal/config"
	"github.com/lydakis/bulcmcp/internal/protocol"
)

var logger = xlog.NewPackageLogger("github.com/lydakis/bulcmcp", "bulc")

const readChunk = 4096

type dialFunc func(ctx context.Context, network, addr string) (net.Conn, error)

// Client sends commands to BULC. It holds no connection between calls and
// is safe for concurrent use.
type Client struct {
	cfg  config.ClientConfig
	dial dialFunc
}

// New creates a client for cfg. Zero timeouts take the defaults.
func New(cfg config.ClientConfig) *Client {
	if cfg.Host == "" {
		cfg.Host = config.DefaultHost
	}
	if cfg.Port == 0 {
		cfg.Port = config.DefaultPort
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = config.DefaultConnectTimeout
	}
	if cfg.ResponseTimeout <= 0 {
		cfg.ResponseTimeout = config.DefaultResponseTimeout
	}
	d := &net.Dialer{}
	return &Client{cfg: cfg, dial: d.DialContext}
}

// Config returns the resolved client configuration.
func (c *Client) Config() config.ClientConfig {
	return c.cfg
}

// Addr returns the host:port the client connects to.
func (c *Client) Addr() string {
	return net.JoinHostPort(c.cfg.Host, strconv.Itoa(c.cfg.Port))
}

// SendCommand performs one request/response exchange. Nothing is retried.
func (c *Client) SendCommand(cmd protocol.Command) (*protocol.Result, error) {
	line, err := protocol.Encode(cmd)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	conn, err := c.connect()
	if err != nil {
		logger.KV(xlog.DEBUG, "action", cmd.Action, "addr", c.Addr(), "err", err.Error())
		return nil, err
	}
	defer conn.Close()

	// The response deadline covers both the write and the read.
	if err := conn.SetDeadline(time.Now().Add(c.cfg.ResponseTimeout)); err != nil {
		return nil, c.transportError("arming deadline for", err)
	}
	if _, err := conn.Write(line); err != nil {
		return nil, c.ioError("writing to", err)
	}

	buf, err := c.readResponse(conn)
	if err != nil {
		return nil, err
	}
	if cw, ok := conn.(interface{ CloseWrite() error }); ok {
		_ = cw.CloseWrite()
	}

	res, lines, err := protocol.Decode(buf)
	if err != nil {
		return nil, c.withHint(err)
	}
	if lines > 1 {
		logger.KV(xlog.WARNING,
			"reason", "discarded_lines",
			"action", cmd.Action,
			"addr", c.Addr(),
			"lines", lines)
	}
	logger.KV(xlog.DEBUG,
		"action", cmd.Action,
		"success", res.Success,
		"elapsed", time.Since(start).String())
	return res, nil
}

// IsConnected pings BULC and reports whether it answered with success.
func (c *Client) IsConnected() bool {
	res, err := c.SendCommand(protocol.Command{Action: protocol.PingAction, Params: map[string]any{}})
	return err == nil && res.Success
}

func (c *Client) connect() (net.Conn, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.cfg.ConnectTimeout)
	defer cancel()

	conn, err := c.dial(ctx, "tcp", c.Addr())
	if err == nil {
		return conn, nil
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || isTimeout(err) {
		return nil, c.connectTimeout()
	}
	return nil, c.transportError("connecting to", err)
}

// readResponse accumulates bytes until the first newline arrives.
func (c *Client) readResponse(conn net.Conn) ([]byte, error) {
	var buf []byte
	chunk := make([]byte, readChunk)
	for {
		n, err := conn.Read(chunk)
		if n > 0 {
			buf = append(buf, chunk[:n]...)
			if bytes.IndexByte(chunk[:n], '\n') >= 0 {
				return buf, nil
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, c.connectionClosed(len(buf))
			}
			return nil, c.ioError("reading from", err)
		}
	}
}

func (c *Client) ioError(op string, err error) error {
	if isTimeout(err) {
		return c.responseTimeout()
	}
	return c.transportError(op, err)
}

func isTimeout(err error) bool {
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
