package settings

import (
	"fmt"
	"strings"
	"sync"

	"github.com/klaroapp/appconfig/internal/host"
)

// Clients always reach the API over TLS, so the scheme is fixed; only the
// host part varies across deployment targets.
const scheme = "https://"

// Provider builds the settings record exactly once and serves read-only
// copies of it afterwards. Safe for unsynchronized concurrent use: after the
// one-time construction no writer exists.
type Provider struct {
	source    host.Source
	overrides *CLIOverrides

	once   sync.Once
	record Record
	err    error
}

// New creates a provider that derives the API base URL from the given host
// source and resolves the remaining fields through layered overrides.
// Overrides may be nil, in which case environment variables and defaults
// apply.
func New(source host.Source, overrides *CLIOverrides) *Provider {
	return &Provider{source: source, overrides: overrides}
}

// Get returns the process-wide settings record, constructing it on first
// call. Construction failures are sticky: every subsequent call reports the
// same error and no record is ever served from a failed construction.
func (p *Provider) Get() (Record, error) {
	p.once.Do(p.build)
	if p.err != nil {
		return Record{}, p.err
	}
	return p.record.clone(), nil
}

func (p *Provider) build() {
	record, err := resolve(p.overrides)
	if err != nil {
		p.err = err
		return
	}

	if p.source == nil {
		p.err = ErrUnavailable
		return
	}

	name, err := p.source.HostName()
	if err != nil {
		p.err = fmt.Errorf("%w: %v", ErrUnavailable, err)
		return
	}
	name = strings.TrimSpace(name)
	if name == "" {
		p.err = ErrUnavailable
		return
	}

	record.APIBaseURL = scheme + name
	p.record = record
}
