package consent

import "fmt"

// Verdict is the consent state computed for a single request.
type Verdict int

const (
	// VerdictPending means no decision could be read: the visitor has not chosen yet, or the
	// consent cookie was missing or unreadable.
	VerdictPending Verdict = iota
	// VerdictGranted means the visitor made a choice and disabled nothing.
	VerdictGranted
	// VerdictDenied means at least one vendor or purpose was explicitly disabled.
	VerdictDenied
)

var verdictNames = [...]string{
	VerdictPending: "pending",
	VerdictGranted: "granted",
	VerdictDenied:  "denied",
}

func (v Verdict) String() string {
	if v < 0 || int(v) >= len(verdictNames) {
		return fmt.Sprintf("Verdict(%d)", int(v))
	}
	return verdictNames[v]
}

// MarshalText encodes the verdict by name.
func (v Verdict) MarshalText() ([]byte, error) {
	if v < 0 || int(v) >= len(verdictNames) {
		return nil, fmt.Errorf("unknown consent verdict %d", int(v))
	}
	return []byte(verdictNames[v]), nil
}

// UnmarshalText decodes a verdict name as produced by MarshalText.
func (v *Verdict) UnmarshalText(text []byte) error {
	for i, name := range verdictNames {
		if name == string(text) {
			*v = Verdict(i)
			return nil
		}
	}
	return fmt.Errorf("unknown consent verdict %q", string(text))
}

// Verdicts lists every verdict in declaration order.
func Verdicts() []Verdict {
	return []Verdict{VerdictPending, VerdictGranted, VerdictDenied}
}
