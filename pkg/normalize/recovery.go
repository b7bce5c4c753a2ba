package normalize

import (
	"bytes"

	"go.uber.org/zap"

	"github.com/jlikhuva/loompy/pkg/logger"
	"github.com/jlikhuva/loompy/pkg/metrics"
)

// LegacyPattern is a known malformed byte sequence emitted by a
// non-conforming producer, together with its name for logs and metrics.
// Remediation is always the same: strip the sequence from the raw value.
type LegacyPattern struct {
	Name     string
	Sequence []byte
}

// RecoveryPolicy enumerates the legacy byte patterns the read path knows
// how to repair. It is consulted only after the primary decode path fails,
// and it operates on the raw scalar value. This is a compatibility shim for
// known producers, not a general error-correction mechanism.
type RecoveryPolicy struct {
	Patterns []LegacyPattern
}

// DefaultRecoveryPolicy returns the built-in pattern table. The UTF-8
// non-breaking space is the one sequence known to appear embedded in scalar
// values written by legacy producers.
func DefaultRecoveryPolicy() *RecoveryPolicy {
	return &RecoveryPolicy{
		Patterns: []LegacyPattern{
			{Name: "utf8_nbsp", Sequence: []byte{0xC2, 0xA0}},
		},
	}
}

// Recover strips every known pattern present in the raw bytes. It reports
// the sanitized value, the names of the patterns that applied, and whether
// any pattern matched at all; when none did, the caller must propagate the
// original decode error unchanged.
func (p *RecoveryPolicy) Recover(raw []byte) ([]byte, []string, bool) {
	if p == nil || len(raw) == 0 {
		return nil, nil, false
	}

	sanitized := raw
	var applied []string
	for _, pat := range p.Patterns {
		if !bytes.Contains(sanitized, pat.Sequence) {
			continue
		}
		sanitized = bytes.ReplaceAll(sanitized, pat.Sequence, nil)
		applied = append(applied, pat.Name)
	}

	if len(applied) == 0 {
		return nil, nil, false
	}

	for _, name := range applied {
		logger.Warn("recovered malformed stored attribute value",
			zap.String("pattern", name),
			zap.Int("raw_len", len(raw)),
			zap.Int("sanitized_len", len(sanitized)))
		metrics.RecoveredAnomalies.WithLabelValues(name).Inc()
	}

	return sanitized, applied, true
}
