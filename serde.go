package sharedstr

import (
	"encoding/json"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// The wire surface renders only the visible bytes as a plain string;
// buffer identity and offsets are never observable. MarshalText also
// serves yaml and any other encoder that honors encoding.TextMarshaler.

// MarshalText implements encoding.TextMarshaler. It fails with
// ErrInvalidEncoding when the visible bytes are not valid UTF-8.
func (v view) MarshalText() ([]byte, error) {
	b := v.bytes()
	if !utf8.Valid(b) {
		return nil, ErrInvalidEncoding
	}
	return append([]byte(nil), b...), nil
}

// MarshalJSON implements json.Marshaler, encoding the visible bytes as a
// plain JSON string.
func (v view) MarshalJSON() ([]byte, error) {
	s, err := v.Text()
	if err != nil {
		return nil, err
	}
	return json.Marshal(s)
}

// UnmarshalText implements encoding.TextUnmarshaler. The decoded value
// owns a fresh buffer with a live count of one.
func (s *SharedString) UnmarshalText(text []byte) error {
	*s = NewBytes(append([]byte(nil), text...))
	return nil
}

// UnmarshalJSON implements json.Unmarshaler, decoding a plain JSON
// string into a fresh buffer with a live count of one.
func (s *SharedString) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = New(str)
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler. yaml.v3 honors
// encoding.TextMarshaler when encoding but does not consult
// encoding.TextUnmarshaler on decode, so the decode side is explicit.
func (s *SharedString) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return err
	}
	*s = New(str)
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler for the Sync variant.
func (s *SharedSyncString) UnmarshalText(text []byte) error {
	*s = NewSyncBytes(append([]byte(nil), text...))
	return nil
}

// UnmarshalJSON implements json.Unmarshaler for the Sync variant.
func (s *SharedSyncString) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = NewSync(str)
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler for the Sync variant.
func (s *SharedSyncString) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return err
	}
	*s = NewSync(str)
	return nil
}
