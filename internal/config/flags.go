package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
)

// NetAddress is a host:port pair implementing flag.Value, so the listen
// address can be validated at parse time instead of at bind time.
type NetAddress struct {
	Host string
	Port int
}

// String renders host:port; the zero value renders as "" so an unset flag
// does not override other config sources during the merge.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses s as host:port. Hosts other than "localhost" must be literal IP
// addresses; hostnames are not resolved here.
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

	if host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

// ParseFlags reads the command line into a StructuredConfig. Unset flags
// leave zero values, which lets the merge step fill them from env or JSON.
func ParseFlags() *StructuredConfig {
	cfg := &StructuredConfig{}
	var serverAddress NetAddress

	flag.Var(&serverAddress, "a", "vault server address, host:port")
	flag.StringVar(&cfg.Storage.DB.DSN, "d", "", "database DSN")
	flag.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	flag.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&cfg.App.PasswordHashKey, "password-hash-key", "", "key for the server-side password verifier")
	flag.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "JWT signing key")
	flag.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "JWT issuer name")
	flag.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "JWT lifetime, e.g. 1h")
	flag.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "per-request timeout, e.g. 30s")
	flag.StringVar(&cfg.App.HashKey, "hash-key", "", "payload integrity hash key")
	flag.DurationVar(&cfg.Workers.SaltRetryInterval, "salt-retry-interval", 0, "salt registration retry interval, e.g. 1m")

	flag.Parse()

	cfg.Server.HTTPAddress = serverAddress.String()
	return cfg
}
