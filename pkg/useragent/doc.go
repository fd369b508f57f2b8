// Package useragent classifies HTTP User-Agent strings into device type,
// operating system and browser family.
//
// The parser is intentionally best-effort. It is consumed by the session
// fingerprint, where a wrong-but-stable classification is acceptable and a
// parse failure is not: Parse therefore never returns an error, it degrades
// every unrecognized field to "unknown".
//
//	info := useragent.Parse(r.UserAgent())
//	// info.Device, info.OS, info.Browser, info.Bot
package useragent
