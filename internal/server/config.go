package server

import (
	"net"
	"strconv"
)

const (
	DefaultPort           = 8080
	DefaultStaticDir      = "static/"
	DefaultReadBufferSize = 1024
)

// Config holds server settings
type Config struct {
	Host string
	Port int

	// StaticDir is prepended verbatim to whatever follows "/static" in
	// the request path.
	StaticDir     string
	ConfineStatic bool

	// ReadBufferSize bounds a single read. Each read is handled as one
	// whole request.
	ReadBufferSize int
}

// DefaultConfig listens on every interface at port 8080
func DefaultConfig() Config {
	return Config{
		Port:           DefaultPort,
		StaticDir:      DefaultStaticDir,
		ReadBufferSize: DefaultReadBufferSize,
	}
}

// Address returns the host:port to listen on
func (c Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// ParseArgs reads command-line arguments, without the program name. Only
// the exact shape "-p <port>" changes anything; every other invocation,
// including a port that does not parse, keeps the defaults.
func ParseArgs(args []string) Config {
	cfg := DefaultConfig()

	if len(args) != 2 || args[0] != "-p" {
		return cfg
	}

	port, err := strconv.Atoi(args[1])
	if err != nil || port < 0 || port > 65535 {
		return cfg
	}
	cfg.Port = port
	return cfg
}
