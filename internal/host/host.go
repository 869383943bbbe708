// Package host abstracts the "where am I running" lookup behind an explicit
// source interface, so the API base URL derivation stays correct across
// deployment targets and tests can supply deterministic host names instead
// of relying on the ambient environment.
package host

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Source yields the network-addressable name of the environment the
// application is currently running in. The lookup is performed once, at
// settings construction; implementations must treat it as read-only.
type Source interface {
	HostName() (string, error)
}

// FromOS returns a Source backed by the operating system's host name.
func FromOS() Source {
	return osSource{}
}

type osSource struct{}

func (osSource) HostName() (string, error) {
	name, err := os.Hostname()
	if err != nil {
		return "", fmt.Errorf("query OS host name: %w", err)
	}
	return name, nil
}

// FromEnv returns a Source that reads the host name from the named
// environment variable. An unset or blank variable is a lookup failure.
func FromEnv(key string) Source {
	return envSource(key)
}

type envSource string

func (e envSource) HostName() (string, error) {
	name := strings.TrimSpace(os.Getenv(string(e)))
	if name == "" {
		return "", fmt.Errorf("environment variable %s is unset or empty", string(e))
	}
	return name, nil
}

// Static returns a Source with a fixed host name, used for developer
// fallbacks and tests.
func Static(name string) Source {
	return staticSource(name)
}

type staticSource string

func (s staticSource) HostName() (string, error) {
	name := strings.TrimSpace(string(s))
	if name == "" {
		return "", errors.New("static host name is empty")
	}
	return name, nil
}
