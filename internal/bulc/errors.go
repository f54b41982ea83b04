package bulc

import (
	"github.com/cockroachdb/errors"
)

// Transport failure classes. Every error returned by SendCommand is marked
// with exactly one of these or with protocol.ErrMalformedResponse.
var (
	ErrConnectTimeout   = errors.New("connect timeout")
	ErrResponseTimeout  = errors.New("response timeout")
	ErrTransport        = errors.New("transport error")
	ErrConnectionClosed = errors.New("connection closed")
)

func (c *Client) withHint(err error) error {
	return errors.WithHintf(err, "check that BULC is running and accepting connections on %s", c.Addr())
}

func (c *Client) connectTimeout() error {
	return c.withHint(errors.Mark(
		errors.Newf("could not connect to BULC at %s within %s", c.Addr(), c.cfg.ConnectTimeout),
		ErrConnectTimeout))
}

func (c *Client) responseTimeout() error {
	return c.withHint(errors.Mark(
		errors.Newf("no response from BULC at %s within %s", c.Addr(), c.cfg.ResponseTimeout),
		ErrResponseTimeout))
}

func (c *Client) transportError(op string, err error) error {
	msg := "BULC connection error"
	if kind := errnoKind(err); kind != "" {
		msg += " (" + kind + ")"
	}
	return c.withHint(errors.Mark(errors.Wrapf(err, "%s while %s %s", msg, op, c.Addr()), ErrTransport))
}

func (c *Client) connectionClosed(received int) error {
	return c.withHint(errors.Mark(
		errors.Newf("BULC at %s closed the connection before a complete response (%d bytes received)", c.Addr(), received),
		ErrConnectionClosed))
}
