// Package identity models who is making a request.
//
// An Identity is exactly one of Authenticated, Guest or Anonymous. Handlers
// receive it as a value and never reach back into cookies or headers.
package identity

type Kind int

const (
	KindAnonymous Kind = iota
	KindGuest
	KindAuthenticated
)

func (k Kind) String() string {
	switch k {
	case KindAuthenticated:
		return "authenticated"
	case KindGuest:
		return "guest"
	default:
		return "anonymous"
	}
}

type Identity struct {
	kind   Kind
	userID string
}

func Anonymous() Identity {
	return Identity{kind: KindAnonymous}
}

func Guest() Identity {
	return Identity{kind: KindGuest}
}

// Authenticated panics on an empty id: an authenticated identity without a
// user row is a programming error.
func Authenticated(userID string) Identity {
	if userID == "" {
		panic("identity: authenticated identity requires a user id")
	}
	return Identity{kind: KindAuthenticated, userID: userID}
}

func (i Identity) Kind() Kind {
	return i.kind
}

// UserID returns the owning user id; ok is false for Guest and Anonymous.
func (i Identity) UserID() (string, bool) {
	if i.kind != KindAuthenticated {
		return "", false
	}
	return i.userID, true
}

func (i Identity) IsAuthenticated() bool {
	return i.kind == KindAuthenticated
}

func (i Identity) IsGuest() bool {
	return i.kind == KindGuest
}

func (i Identity) String() string {
	if i.kind == KindAuthenticated {
		return "authenticated(" + i.userID + ")"
	}
	return i.kind.String()
}

// Credentials are the raw request inputs a resolver may consult.
type Credentials struct {
	SessionToken string
	GuestMode    bool
}
