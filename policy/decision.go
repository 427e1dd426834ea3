// api/policy/decision.go
package policy

// Decision is the outcome of a consistency-rule check. Denials always carry
// the user-facing reason.
type Decision struct {
	Allowed bool
	Reason  string
}

func Allow() Decision {
	return Decision{Allowed: true}
}

func Deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}
