package proto

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// CodecName content-subtype, под которым зарегистрирован кодек
const CodecName = "json"

// jsonCodec кодирует сообщения сервиса в JSON вместо protobuf
type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return CodecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}
