package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses command-line arguments into a partial config.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-s backend base URL used by the client
//	-d database DSN (SQLite path or postgres:// URL)
//	-c/-config json file path with configs
//	-session-file client session cookie file
//	-session-ttl session lifetime (e.g., "24h")
//	-bcrypt-cost bcrypt work factor
//	-cleanup-interval expired session sweep interval (e.g., "1m")
//	-request-timeout server request timeout (e.g., "30s")
//	-client-timeout client request timeout (e.g., "10s")
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var adapterAddress string
	var databaseDSN string
	var jsonConfigPath string
	var sessionFile string
	var sessionTTL time.Duration
	var bcryptCost int
	var cleanupInterval time.Duration
	var requestTimeout time.Duration
	var clientTimeout time.Duration

	fs := flag.NewFlagSet("taskflow", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&adapterAddress, "s", "", "Backend base URL")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&sessionFile, "session-file", "", "Client session file")
	fs.DurationVar(&sessionTTL, "session-ttl", 0, "Session lifetime (e.g., 24h)")
	fs.IntVar(&bcryptCost, "bcrypt-cost", 0, "Bcrypt cost")
	fs.DurationVar(&cleanupInterval, "cleanup-interval", 0, "Expired session sweep interval (e.g., 1m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&clientTimeout, "client-timeout", 0, "Client request timeout (e.g., 10s)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			SessionTTL: sessionTTL,
			BcryptCost: bcryptCost,
		},
		Storage: Storage{
			DB:          DB{DSN: databaseDSN},
			SessionFile: sessionFile,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: clientTimeout,
		},
		Workers:      Workers{SessionCleanupInterval: cleanupInterval},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
