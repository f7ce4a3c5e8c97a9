//go:build !unix

package server

import "syscall"

func reuseAddr(network, address string, c syscall.RawConn) error {
	return nil
}
