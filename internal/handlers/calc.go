package handlers

import (
	"fmt"

	"github.com/Brownie44l1/webserver/internal/request"
	"github.com/Brownie44l1/webserver/internal/response"
)

const maxOperatorLen = 9

// Calc answers /calc/<op>/<a>/<b> with 32-bit wrapping arithmetic.
// Unknown operators yield 0.
func Calc(w *response.Writer, req *request.Request) {
	op, a, b, ok := parseCalc(req.Path)
	if !ok {
		w.NotFound()
		return
	}

	if op == "div" && b == 0 {
		w.SendText("Error: Division by zero")
		return
	}

	w.SendText(fmt.Sprintf("Result: %d\n", compute(op, a, b)))
}

// compute applies op. Division truncates toward zero; b must not be zero
// for "div".
func compute(op string, a, b int32) int32 {
	switch op {
	case "add":
		return a + b
	case "sub":
		return a - b
	case "mul":
		return a * b
	case "div":
		return a / b
	default:
		return 0
	}
}

// parseCalc matches "/calc/<op>/<int>/<int>". op is 1 to 9 bytes without
// a slash. Anything after the second operand is ignored.
func parseCalc(path string) (string, int32, int32, bool) {
	rest, ok := scanLiteral(path, "/calc/")
	if !ok {
		return "", 0, 0, false
	}

	n := 0
	for n < len(rest) && n < maxOperatorLen && rest[n] != '/' {
		n++
	}
	if n == 0 {
		return "", 0, 0, false
	}
	op := rest[:n]

	if rest, ok = scanLiteral(rest[n:], "/"); !ok {
		return "", 0, 0, false
	}
	a, rest, ok := scanInt(rest)
	if !ok {
		return "", 0, 0, false
	}
	if rest, ok = scanLiteral(rest, "/"); !ok {
		return "", 0, 0, false
	}
	b, _, ok := scanInt(rest)
	if !ok {
		return "", 0, 0, false
	}

	return op, a, b, true
}
