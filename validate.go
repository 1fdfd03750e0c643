package sortbench

import (
	"fmt"
	"net"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// HostAddrValidator checks that addr is a host:port pair where host is an IP
// address or an RFC 1123 host name, and port is in 1..65535. No name
// resolution is attempted.
func HostAddrValidator(addr string) error {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return err
	}
	check := addr
	if host == "" || net.ParseIP(host) != nil {
		// ":port" listens on all addresses, IP literals only need a valid port
		check = net.JoinHostPort("", port)
	}
	if err := validate.Var(check, "hostname_port"); err != nil {
		return fmt.Errorf("invalid address %s: %w", addr, err)
	}

	return nil
}
