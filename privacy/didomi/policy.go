package didomi

import "github.com/edgee-cloud/didomi-component/consent"

// Decide turns a decoded token into a verdict.
//
// A token without any of the four sections carries no choice yet and stays pending. Otherwise a
// single disabled vendor or purpose, in any section, denies consent. What the disabled entries
// contain is never looked at.
func Decide(p Payload) consent.Verdict {
	if p.Empty() {
		return consent.VerdictPending
	}
	if len(p.Disabled()) > 0 {
		return consent.VerdictDenied
	}
	return consent.VerdictGranted
}
