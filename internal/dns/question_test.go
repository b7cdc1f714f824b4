package dns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionRoundTrip(t *testing.T) {
	q := Question{Name: "_elg._tcp.local", Type: uint16(TypePTR), Class: uint16(ClassIN)}
	b, err := q.Marshal()
	require.NoError(t, err)

	off := 0
	got, err := ParseQuestion(b, &off)
	require.NoError(t, err)
	assert.Equal(t, q, got)
	assert.Equal(t, len(b), off)
}

func TestParseQuestion_Truncated(t *testing.T) {
	q := Question{Name: "elights.local", Type: uint16(TypeA), Class: uint16(ClassIN)}
	b, err := q.Marshal()
	require.NoError(t, err)

	// Chop off the class field.
	off := 0
	_, err = ParseQuestion(b[:len(b)-2], &off)
	assert.ErrorIs(t, err, ErrWire)
}

func TestSkipQuestion(t *testing.T) {
	q1, err := Question{Name: "elights.local", Type: uint16(TypeA), Class: uint16(ClassIN)}.Marshal()
	require.NoError(t, err)
	q2, err := Question{Name: "_elg._tcp.local", Type: uint16(TypePTR), Class: uint16(ClassIN)}.Marshal()
	require.NoError(t, err)
	msg := append(append([]byte{}, q1...), q2...)

	off := 0
	require.NoError(t, SkipQuestion(msg, &off))
	assert.Equal(t, len(q1), off)

	got, err := ParseQuestion(msg, &off)
	require.NoError(t, err)
	assert.Equal(t, "_elg._tcp.local", got.Name)
}
