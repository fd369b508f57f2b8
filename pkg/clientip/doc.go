// Package clientip extracts the client IP address from HTTP requests.
//
// The extraction policy is deliberately narrow: the first X-Forwarded-For
// entry when the header is present, otherwise the transport peer address.
// The first entry is spoofable by clients that set the header themselves,
// an accepted trade-off when the service sits behind a proxy that
// overwrites it.
//
// The package also ships context helpers and a middleware so that handlers
// deeper in the stack can read the IP without re-deriving it:
//
//	mux.Handle("/", clientip.Middleware(handler))
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    ip := clientip.GetIPFromContext(r.Context())
//	    ...
//	}
package clientip
