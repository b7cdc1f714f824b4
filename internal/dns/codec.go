package dns

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// NormalizeName lowercases a domain name and strips a single trailing
// dot. DNS names compare case-insensitively (RFC 4343), and mDNS peers
// are inconsistent about the root dot, so all name comparisons in this
// module go through NormalizeName on both sides.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSuffix(name, "."))
}

// EncodeName encodes a domain name to wire format (RFC 1035 Section 3.1):
// a sequence of length-prefixed labels terminated by a zero-length label.
//
// Example: "printer.local" → [7]printer[5]local[0]
//
// Compression pointers are never emitted; announcements stay small enough
// that the bookkeeping is not worth it.
func EncodeName(name string) ([]byte, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name must be non-empty", ErrWire)
	}
	name = strings.TrimSuffix(name, ".")
	if name == "" {
		return []byte{0}, nil // root
	}

	out := make([]byte, 0, len(name)+2)
	for label := range strings.SplitSeq(name, ".") {
		if label == "" {
			return nil, fmt.Errorf("%w: empty label in name %q", ErrWire, name)
		}
		if len(label) > 63 {
			return nil, fmt.Errorf("%w: label too long (%d > 63): %q", ErrWire, len(label), label)
		}
		out = append(out, byte(len(label)))
		out = append(out, label...)
	}
	out = append(out, 0)

	if len(out) > 255 {
		return nil, fmt.Errorf("%w: encoded name too long (%d > 255)", ErrWire, len(out))
	}
	return out, nil
}

// maxPointerHops bounds compression pointer chasing. A legitimate name
// has at most a handful of indirections; anything deeper is a crafted
// loop.
const maxPointerHops = 16

// DecodeName decodes a possibly-compressed domain name from msg starting
// at *off, advancing *off past the name. When a compression pointer
// (top two bits of a length byte set, RFC 1035 Section 4.1.4) is hit,
// *off advances past the two pointer bytes and reading continues at the
// 14-bit target offset; pointers reached while already chasing a pointer
// do not move *off again.
//
// Pointer targets must land strictly inside msg and each target may be
// visited only once, so cyclic or self-referencing pointers fail after a
// bounded number of hops instead of looping.
func DecodeName(msg []byte, off *int) (string, error) {
	if *off < 0 || *off >= len(msg) {
		return "", fmt.Errorf("%w: name offset outside message", ErrWire)
	}

	var labels []string
	i := *off
	jumped := false
	hops := 0
	visited := map[int]struct{}{}

	for {
		if i >= len(msg) {
			return "", fmt.Errorf("%w: truncated name", ErrWire)
		}
		b := msg[i]

		switch {
		case b == 0:
			if !jumped {
				*off = i + 1
			}
			return strings.Join(labels, "."), nil

		case b&0xC0 == 0xC0:
			if i+1 >= len(msg) {
				return "", fmt.Errorf("%w: truncated compression pointer", ErrWire)
			}
			target := int(binary.BigEndian.Uint16(msg[i:i+2]) & 0x3FFF)
			if target >= len(msg) {
				return "", fmt.Errorf("%w: compression pointer out of bounds", ErrWire)
			}
			if _, seen := visited[target]; seen {
				return "", fmt.Errorf("%w: compression pointer loop", ErrWire)
			}
			visited[target] = struct{}{}
			if hops++; hops > maxPointerHops {
				return "", fmt.Errorf("%w: too many compression pointer hops", ErrWire)
			}
			if !jumped {
				*off = i + 2
				jumped = true
			}
			i = target

		case b&0xC0 != 0:
			// 01xxxxxx and 10xxxxxx are reserved label types.
			return "", fmt.Errorf("%w: reserved label type 0x%02x", ErrWire, b&0xC0)

		default:
			end := i + 1 + int(b)
			if end > len(msg) {
				return "", fmt.Errorf("%w: label overruns message", ErrWire)
			}
			labels = append(labels, string(msg[i+1:end]))
			if !jumped {
				*off = end
			}
			i = end
		}
	}
}
