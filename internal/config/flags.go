package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// String returns the address in "host:port" format, or an empty string when
// the address was never set.
func (a NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses a "host:port" string into the receiver.
// Implements flag.Value.
func (a *NetAddress) Set(value string) error {
	host, portString, err := net.SplitHostPort(value)
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
//	-driver database driver ("pgx" or "sqlite3")
//	-c/-config json file path with configs
//	-bcrypt-cost bcrypt work factor for password hashing
//	-session-duration session lifetime (e.g., "24h", "30m")
//	-session-cookie session cookie name
//	-secure-cookies mark session cookies as Secure
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-session-sweep-interval expired-session sweep interval
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var databaseDriver string
	var jsonConfigPath string
	var bcryptCost int
	var sessionDuration time.Duration
	var sessionCookieName string
	var secureCookies bool
	var requestTimeout time.Duration
	var sessionSweepInterval time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&databaseDriver, "driver", "", "Database driver (pgx or sqlite3)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.IntVar(&bcryptCost, "bcrypt-cost", 0, "Bcrypt cost for password hashing")
	flag.DurationVar(&sessionDuration, "session-duration", 0, "Session duration (e.g., 24h, 30m)")
	flag.StringVar(&sessionCookieName, "session-cookie", "", "Session cookie name")
	flag.BoolVar(&secureCookies, "secure-cookies", false, "Mark session cookies as Secure")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&sessionSweepInterval, "session-sweep-interval", 0, "Expired session sweep interval")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			BcryptCost:        bcryptCost,
			SessionDuration:   sessionDuration,
			SessionCookieName: sessionCookieName,
			SecureCookies:     secureCookies,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SessionSweepInterval: sessionSweepInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
