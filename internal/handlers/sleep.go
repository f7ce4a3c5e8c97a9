package handlers

import (
	"fmt"
	"time"

	"github.com/Brownie44l1/webserver/internal/request"
	"github.com/Brownie44l1/webserver/internal/response"
)

// Sleep answers /sleep/<n> after blocking the worker for n seconds.
// Nothing interrupts the wait.
type Sleep struct {
	sleep func(time.Duration)
}

func NewSleep() *Sleep {
	return &Sleep{sleep: time.Sleep}
}

func (s *Sleep) ServeHTTP(w *response.Writer, req *request.Request) {
	rest, ok := scanLiteral(req.Path, "/sleep/")
	if !ok {
		w.NotFound()
		return
	}
	seconds, _, ok := scanInt(rest)
	if !ok {
		w.NotFound()
		return
	}

	// time.Sleep returns at once for negative durations
	s.sleep(time.Duration(seconds) * time.Second)

	w.SendText(fmt.Sprintf("Sleep time was %d seconds", seconds))
}
