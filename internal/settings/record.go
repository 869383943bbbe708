package settings

import "time"

// Feature flag names understood by the client application.
const (
	FeatureSmartGlasses     = "smart_glasses"
	FeatureVoiceCommands    = "voice_commands"
	FeatureDocumentScanning = "document_scanning"
	FeatureAccessibility    = "accessibility_tools"
	FeatureAIAssistance     = "ai_assistance"
)

// API operations with dedicated timeout budgets.
const (
	TimeoutDefault          = "default"
	TimeoutDocumentAnalysis = "document_analysis"
	TimeoutPatternDetection = "pattern_detection"
)

const (
	defaultVersion      = "1.0.0"
	defaultLanguage     = "de"
	defaultStorageLimit = 500
)

// Offline holds the offline-mode parameters: whether offline support is
// active and how many records the client may cache locally.
type Offline struct {
	Enabled      bool
	StorageLimit int
}

// Record is the process-wide settings value served to the client application.
// It is constructed exactly once by a Provider and never mutated afterwards;
// consumers receive defensive copies, so writes to a returned Record never
// affect other consumers.
type Record struct {
	APIBaseURL      string
	Version         string
	IsProduction    bool
	EnableAnalytics bool
	Offline         Offline
	DefaultLanguage string
	Features        map[string]bool
	APITimeouts     map[string]time.Duration
}

// FeatureEnabled reports whether the named feature flag is set.
// Unknown features are disabled.
func (r Record) FeatureEnabled(name string) bool {
	return r.Features[name]
}

// TimeoutFor returns the timeout budget for the named API operation, falling
// back to the default budget for operations without a dedicated entry.
func (r Record) TimeoutFor(operation string) time.Duration {
	if d, ok := r.APITimeouts[operation]; ok {
		return d
	}
	return r.APITimeouts[TimeoutDefault]
}

// clone returns a deep copy of the record so callers can never reach the
// provider's internal maps.
func (r Record) clone() Record {
	out := r
	out.Features = make(map[string]bool, len(r.Features))
	for name, enabled := range r.Features {
		out.Features[name] = enabled
	}
	out.APITimeouts = make(map[string]time.Duration, len(r.APITimeouts))
	for operation, d := range r.APITimeouts {
		out.APITimeouts[operation] = d
	}
	return out
}

// defaultRecord returns the record populated with default values for every
// field except APIBaseURL, which the provider derives from the host source.
func defaultRecord() Record {
	return Record{
		Version:         defaultVersion,
		IsProduction:    false,
		EnableAnalytics: false,
		Offline: Offline{
			Enabled:      true,
			StorageLimit: defaultStorageLimit,
		},
		DefaultLanguage: defaultLanguage,
		Features: map[string]bool{
			FeatureSmartGlasses:     true,
			FeatureVoiceCommands:    true,
			FeatureDocumentScanning: true,
			FeatureAccessibility:    true,
			FeatureAIAssistance:     true,
		},
		APITimeouts: map[string]time.Duration{
			TimeoutDefault:          10 * time.Second,
			TimeoutDocumentAnalysis: 30 * time.Second,
			TimeoutPatternDetection: 45 * time.Second,
		},
	}
}
