// Package dns implements the subset of the DNS wire format needed for
// multicast DNS service discovery: message headers, questions, and the
// A, PTR, SRV and TXT resource records, including name compression on
// the read path.
//
// The package performs no I/O. All parsers operate on a complete message
// buffer and are hardened against attacker-controlled input: every read
// is bounds-checked and compression pointers are followed a bounded
// number of times.
package dns

import "errors"

// ErrWire is the sentinel error for malformed wire data.
// Wrap it with fmt.Errorf("context: %w", ErrWire) to add context.
var ErrWire = errors.New("dns wire error")
