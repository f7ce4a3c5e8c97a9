package server

import (
	"net"

	"github.com/Brownie44l1/webserver/internal/request"
	"github.com/Brownie44l1/webserver/internal/response"
)

// serveConn owns conn until the peer closes it or a read fails. Every
// read is taken as one complete request; nothing is carried over between
// reads.
func (s *Server) serveConn(conn net.Conn, handler Handler) {
	s.Metrics.ActiveConnections.Add(1)
	buf := s.buffers.Get()

	defer func() {
		conn.Close()
		s.buffers.Put(buf)
		s.Metrics.ActiveConnections.Add(-1)
	}()

	for {
		n, err := conn.Read(buf)
		if n <= 0 {
			return
		}

		raw := buf[:n]
		s.Console.PrintRequest(raw)

		// A request without a path still reaches the handler and gets
		// the not-found page.
		req, _ := request.Parse(raw)

		w := response.NewWriter(conn)
		handler(w, req)

		if w.HadError() || err != nil {
			return
		}
	}
}
