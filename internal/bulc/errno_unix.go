//go:build unix

package bulc

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/sys/unix"
)

// errnoKind names the socket errno behind err, if it is one we report.
func errnoKind(err error) string {
	switch {
	case errors.Is(err, unix.ECONNREFUSED):
		return "connection refused"
	case errors.Is(err, unix.ECONNRESET):
		return "connection reset"
	case errors.Is(err, unix.EPIPE):
		return "broken pipe"
	case errors.Is(err, unix.EHOSTUNREACH), errors.Is(err, unix.ENETUNREACH):
		return "unreachable"
	}
	return ""
}
