package sharedstr

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

func TestJSONRoundTrip(t *testing.T) {
	type record struct {
		Host   SharedString `json:"host"`
		Kernel SharedString `json:"kernel"`
	}

	src := New("simpson-box:6.8.0-generic")
	it := src.Split(':')
	host, _ := it.Next()
	kernel, _ := it.Next()
	src.Drop()

	out, err := json.Marshal(record{Host: host, Kernel: kernel})
	require.NoError(t, err)
	require.Equal(t, "simpson-box", gjson.GetBytes(out, "host").String())
	require.Equal(t, "6.8.0-generic", gjson.GetBytes(out, "kernel").String())

	var back record
	require.NoError(t, json.Unmarshal(out, &back))
	require.True(t, back.Host.Equal(host))
	require.True(t, back.Kernel.EqualString("6.8.0-generic"))

	host.Drop()
	kernel.Drop()
}

func TestJSONSyncVariant(t *testing.T) {
	out, err := json.Marshal(NewSync("cross thread"))
	require.NoError(t, err)
	require.Equal(t, `"cross thread"`, string(out))

	var back SharedSyncString
	require.NoError(t, json.Unmarshal([]byte(`"decoded"`), &back))
	require.True(t, back.EqualString("decoded"))
}

func TestJSONInvalidEncoding(t *testing.T) {
	_, err := json.Marshal(NewBytes([]byte{0xff}))
	require.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestTextMarshalCopies(t *testing.T) {
	s := New("escape")
	out, err := s.MarshalText()
	require.NoError(t, err)
	out[0] = 'X' // marshaled form must not alias the buffer
	require.True(t, s.EqualString("escape"))
	s.Drop()
}

func TestYAMLRoundTrip(t *testing.T) {
	type record struct {
		Model SharedSyncString `yaml:"model"`
		Cores SharedString     `yaml:"cores"`
	}

	in := record{Model: NewSync("AMD Ryzen 9 3900XT"), Cores: New("12")}
	out, err := yaml.Marshal(in)
	require.NoError(t, err)
	require.Equal(t, "model: AMD Ryzen 9 3900XT\ncores: \"12\"\n", string(out))

	var back record
	require.NoError(t, yaml.Unmarshal(out, &back))
	require.True(t, back.Model.EqualString("AMD Ryzen 9 3900XT"))
	require.True(t, back.Cores.EqualString("12"))
}

func TestUnmarshalOwnsFreshBuffer(t *testing.T) {
	released := 0
	var s SharedString
	require.NoError(t, s.UnmarshalText([]byte("fresh")))
	s.buf.release = func([]byte) { released++ }

	c := s.Clone()
	s.Drop()
	require.Zero(t, released)
	c.Drop()
	require.Equal(t, 1, released)
}
