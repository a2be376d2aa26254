package config

import (
	"errors"
	"flag"
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

// String returns the address in "host:port" form.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses a "[host]:[port]" string into the receiver.
func (a *NetAddress) Set(value string) error {
	host, portString, err := net.SplitHostPort(strings.TrimSpace(value))
	if err != nil {
		return errors.New("need address in a form host:port")
	}

	port, err := strconv.Atoi(portString)
	if err != nil {
		return errors.New("port must be an integer")
	}

	a.Host = host
	a.Port = port
	return nil
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-session-secret session cookie sign secret
//	-session-ttl session lifetime (e.g., "24h")
//	-session-sweep-interval expired-session sweep period (e.g., "1h")
//	-session-store path to the SQLite session store file
//	-token-issuer session token issuer name
//	-env deployment environment name ("development", "production")
//	-request-timeout request timeout (e.g., "30s", "1m")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var sessionSecret string
	var sessionTTL time.Duration
	var sessionSweepInterval time.Duration
	var sessionStorePath string
	var tokenIssuer string
	var environment string
	var requestTimeout time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&sessionSecret, "session-secret", "", "Session cookie sign secret")
	flag.DurationVar(&sessionTTL, "session-ttl", 0, "Session lifetime (e.g., 24h)")
	flag.DurationVar(&sessionSweepInterval, "session-sweep-interval", 0, "Expired-session sweep period (e.g., 1h)")
	flag.StringVar(&sessionStorePath, "session-store", "", "SQLite session store file path")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Session token issuer")
	flag.StringVar(&environment, "env", "", "Deployment environment name")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			SessionSecret:        sessionSecret,
			SessionTTL:           sessionTTL,
			SessionSweepInterval: sessionSweepInterval,
			TokenIssuer:          tokenIssuer,
			Environment:          environment,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Sessions: Sessions{
				SQLitePath: sessionStorePath,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}
