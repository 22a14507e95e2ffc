package store

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// Codec encodes single values and the on-disk entry table
type Codec interface {
	Name() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	EncodeEntries(entries map[string][]byte) ([]byte, error)
	DecodeEntries(data []byte) (map[string][]byte, error)
}

var (
	JSON    Codec = jsonCodec{}
	MsgPack Codec = msgpackCodec{}
)

// CodecFor picks a codec from a file extension; anything unknown is JSON
func CodecFor(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".msgpack", ".mp":
		return MsgPack
	default:
		return JSON
	}
}

type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) EncodeEntries(entries map[string][]byte) ([]byte, error) {
	raw := make(map[string]json.RawMessage, len(entries))
	for k, v := range entries {
		raw[k] = v
	}
	return json.MarshalIndent(raw, "", "  ")
}

func (jsonCodec) DecodeEntries(data []byte) (map[string][]byte, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "decode json entries")
	}
	entries := make(map[string][]byte, len(raw))
	for k, v := range raw {
		entries[k] = []byte(v)
	}
	return entries, nil
}

type msgpackCodec struct{}

func (msgpackCodec) Name() string { return "msgpack" }

func (msgpackCodec) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

func (msgpackCodec) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}

func (msgpackCodec) EncodeEntries(entries map[string][]byte) ([]byte, error) {
	raw := make(map[string]msgpack.RawMessage, len(entries))
	for k, v := range entries {
		raw[k] = v
	}
	return msgpack.Marshal(raw)
}

func (msgpackCodec) DecodeEntries(data []byte) (map[string][]byte, error) {
	var raw map[string]msgpack.RawMessage
	if err := msgpack.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "decode msgpack entries")
	}
	entries := make(map[string][]byte, len(raw))
	for k, v := range raw {
		entries[k] = []byte(v)
	}
	return entries, nil
}
