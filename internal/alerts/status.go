package alerts

import "strings"

const (
	StatusSent      = "sent"
	StatusViewed    = "viewed"
	StatusResponded = "responded"
	StatusEscalated = "escalated"
	StatusResolved  = "resolved"
)

const (
	UrgencyNormal = "Normal"
	UrgencyHigh   = "High"
)

var validStatuses = map[string]bool{
	StatusSent:      true,
	StatusViewed:    true,
	StatusResponded: true,
	StatusEscalated: true,
	StatusResolved:  true,
}

// ValidStatus reports whether s is one of the five alert statuses.
func ValidStatus(s string) bool {
	return validStatuses[s]
}

// ValidUrgency reports whether s is "Normal" or "High".
func ValidUrgency(s string) bool {
	return s == UrgencyNormal || s == UrgencyHigh
}

// ResolveStatus decides the status an alert ends up with after a patch.
// An explicit status in the patch always wins. An owner response without
// an explicit status advances the alert to "responded" so the owner does
// not need to know the state machine. Anything else leaves the status
// untouched.
func ResolveStatus(current string, patch UpdatePatch) string {
	if patch.Status != nil {
		return *patch.Status
	}

	if patch.OwnerResponse != nil {
		return StatusResponded
	}

	return current
}

// NormalizePlate uppercases a plate and strips everything that is not a
// letter or digit, matching how plates are entered and searched.
func NormalizePlate(plate string) string {
	var b strings.Builder

	for _, r := range strings.ToUpper(plate) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}

	return b.String()
}
