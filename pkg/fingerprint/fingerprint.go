package fingerprint

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/sessionkit/pkg/clientip"
	"github.com/dmitrymomot/sessionkit/pkg/useragent"
)

// Fingerprinter is the minimal view the session layer needs: a stable
// canonical string for a client. Concrete callers keep the full Fingerprint;
// anything that only compares clients can accept the interface.
type Fingerprinter interface {
	Canonical() string
}

// UserAgent is the classified client software, stored alongside the session
// so that later requests can be compared against the software that created it.
type UserAgent struct {
	Raw     string `json:"raw"`
	Device  string `json:"device"`
	OS      string `json:"os"`
	Browser string `json:"browser"`
	IsBot   bool   `json:"is_bot"`
}

// Fingerprint identifies the client that issued a request: its network
// address and its classified user agent. Two requests from the "same" client
// produce equal fingerprints; a token replayed from elsewhere does not.
type Fingerprint struct {
	IPAddress string    `json:"ip_address"`
	UserAgent UserAgent `json:"user_agent"`
}

// New builds a Fingerprint from an already-extracted IP and raw UA string.
func New(ip, rawUA string) Fingerprint {
	info := useragent.Parse(rawUA)
	return Fingerprint{
		IPAddress: ip,
		UserAgent: UserAgent{
			Raw:     info.Raw,
			Device:  info.Device,
			OS:      info.OS,
			Browser: info.Browser,
			IsBot:   info.Bot,
		},
	}
}

// FromRequest extracts the client fingerprint from an HTTP request.
func FromRequest(r *http.Request) Fingerprint {
	return New(clientip.GetIP(r), r.UserAgent())
}

// Equal reports whether two fingerprints describe the same client. The IP
// address participates unconditionally, so mobile clients that hop networks
// mid-session will not match. Raw UA strings are not compared; minor version
// bumps within the same browser family keep the session alive.
func (f Fingerprint) Equal(other Fingerprint) bool {
	return f.IPAddress == other.IPAddress &&
		f.UserAgent.Device == other.UserAgent.Device &&
		f.UserAgent.OS == other.UserAgent.OS &&
		f.UserAgent.Browser == other.UserAgent.Browser
}

// Canonical returns a stable pipe-delimited form of the identity-bearing
// fields. Equal fingerprints always produce the same canonical string.
func (f Fingerprint) Canonical() string {
	return strings.Join([]string{
		f.IPAddress,
		f.UserAgent.Device,
		f.UserAgent.OS,
		f.UserAgent.Browser,
	}, "|")
}

// UAID returns a deterministic UUIDv5 derived from the raw user agent
// string. Useful as a compact per-client-software key in logs and metrics
// without carrying the full UA around.
func (f Fingerprint) UAID() uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(f.UserAgent.Raw))
}
