package jsonlutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

type row struct {
	Word  string `json:"word" msgpack:"word"`
	Score int    `json:"score" msgpack:"score"`
}

func never(error) bool { return false }

func TestStartWritesOneLinePerValue(t *testing.T) {
	var b bytes.Buffer
	in, done := Start[row](&b, 1, func(enc *json.Encoder, r row) error { return enc.Encode(r) }, never)
	in <- row{"AHI", 16}
	in <- row{"AHL", 14}
	close(in)
	require.NoError(t, <-done)
	assert.Equal(t, "{\"word\":\"AHI\",\"score\":16}\n{\"word\":\"AHL\",\"score\":14}\n", b.String())
}

func TestStartMsgpackStreamsObjects(t *testing.T) {
	var b bytes.Buffer
	in, done := StartMsgpack[row](&b, 1, func(enc *msgpack.Encoder, r row) error { return enc.Encode(r) }, never)
	in <- row{"WCW", 31}
	close(in)
	require.NoError(t, <-done)

	var m map[string]any
	require.NoError(t, msgpack.NewDecoder(&b).Decode(&m))
	assert.Equal(t, "WCW", m["word"])
	assert.EqualValues(t, 31, m["score"])
}

type failing struct{ err error }

func (f failing) Write([]byte) (int, error) { return 0, f.err }

func TestStartEncodeErrorDrainsInput(t *testing.T) {
	boom := errors.New("boom")
	in, done := Start[row](failing{boom}, 1,
		func(*json.Encoder, row) error { return boom }, never)
	for i := 0; i < 10; i++ {
		in <- row{}
	}
	close(in)
	assert.ErrorIs(t, <-done, boom)
}

func TestStartSuppressesBrokenPipeOnFlush(t *testing.T) {
	in, done := Start[row](failing{io.ErrClosedPipe}, 1,
		func(enc *json.Encoder, r row) error { return enc.Encode(r) },
		func(err error) bool { return errors.Is(err, io.ErrClosedPipe) })
	in <- row{"A", 1}
	close(in)
	assert.NoError(t, <-done)
}
