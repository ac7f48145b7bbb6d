package domain

// Requester is the resolved identity of the caller of an operation. A nil
// *Requester means the call carries no identity at all, which the access
// policy treats as a hard authentication failure rather than a role denial.
type Requester struct {
	ID      uint
	IsAdmin bool
}
