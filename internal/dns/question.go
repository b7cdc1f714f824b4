package dns

import (
	"encoding/binary"
	"fmt"
)

// Question is a DNS question section entry (RFC 1035 Section 4.1.2).
type Question struct {
	Name  string
	Type  uint16
	Class uint16
}

// Marshal serializes the question to wire format.
func (q Question) Marshal() ([]byte, error) {
	name, err := EncodeName(q.Name)
	if err != nil {
		return nil, err
	}
	b := make([]byte, len(name)+4)
	copy(b, name)
	binary.BigEndian.PutUint16(b[len(name):], q.Type)
	binary.BigEndian.PutUint16(b[len(name)+2:], q.Class)
	return b, nil
}

// ParseQuestion parses a question from msg at *off, advancing *off past
// it on success.
func ParseQuestion(msg []byte, off *int) (Question, error) {
	name, err := DecodeName(msg, off)
	if err != nil {
		return Question{}, err
	}
	if *off+4 > len(msg) {
		return Question{}, fmt.Errorf("%w: truncated question", ErrWire)
	}
	q := Question{
		Name:  name,
		Type:  binary.BigEndian.Uint16(msg[*off : *off+2]),
		Class: binary.BigEndian.Uint16(msg[*off+2 : *off+4]),
	}
	*off += 4
	return q, nil
}

// SkipQuestion advances *off past one question without retaining it.
// The response scan only cares about resource records, but the question
// section still has to be walked to find them.
func SkipQuestion(msg []byte, off *int) error {
	if _, err := DecodeName(msg, off); err != nil {
		return err
	}
	if *off+4 > len(msg) {
		return fmt.Errorf("%w: truncated question", ErrWire)
	}
	*off += 4
	return nil
}
