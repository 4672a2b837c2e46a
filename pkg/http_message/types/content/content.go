package content

import (
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	httpMessageErrors "github.com/Motmedel/http_message_go/pkg/http_message/errors"
	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
	motmedelStrings "github.com/Motmedel/utils_go/pkg/strings"
)

type Kind int

const (
	KindText Kind = iota
	KindJson
	KindRenderable
)

// Content is a response body together with the kind of value it was converted
// from. The kind decides side effects such as an automatic Content-Type.
type Content struct {
	Kind  Kind
	Value string
}

// Renderer is the capability of producing a body representation of oneself.
type Renderer interface {
	Render() (string, error)
}

// Convert classifies a value and produces body text from it. Textual values
// pass through, array-like and JSON-serializable values are serialized as
// JSON, renderables are rendered, and scalars are formatted. Other values
// yield an InvalidContentTypeError.
func Convert(value any) (*Content, error) {
	if value == nil {
		return &Content{Kind: KindText}, nil
	}

	if stringValue, ok := value.(string); ok {
		return &Content{Kind: KindText, Value: stringValue}, nil
	}

	if byteSlice, ok := motmedelStrings.ByteSliceFromAny(value); ok {
		return &Content{Kind: KindText, Value: string(byteSlice)}, nil
	}

	_, isJsonSerializable := value.(json.Marshaler)
	if !isJsonSerializable {
		switch reflect.TypeOf(value).Kind() {
		case reflect.Map, reflect.Slice, reflect.Array:
			isJsonSerializable = true
		}
	}
	if isJsonSerializable {
		valueData, err := json.Marshal(value)
		if err != nil {
			return nil, motmedelErrors.NewWithTrace(fmt.Errorf("json marshal: %w", err), value)
		}

		return &Content{Kind: KindJson, Value: string(valueData)}, nil
	}

	if renderer, ok := value.(Renderer); ok {
		renderedValue, err := renderer.Render()
		if err != nil {
			return nil, motmedelErrors.New(fmt.Errorf("render: %w", err))
		}

		return &Content{Kind: KindRenderable, Value: renderedValue}, nil
	}

	switch typedValue := value.(type) {
	case bool:
		return &Content{Kind: KindText, Value: strconv.FormatBool(typedValue)}, nil
	case int:
		return &Content{Kind: KindText, Value: strconv.FormatInt(int64(typedValue), 10)}, nil
	case int8:
		return &Content{Kind: KindText, Value: strconv.FormatInt(int64(typedValue), 10)}, nil
	case int16:
		return &Content{Kind: KindText, Value: strconv.FormatInt(int64(typedValue), 10)}, nil
	case int32:
		return &Content{Kind: KindText, Value: strconv.FormatInt(int64(typedValue), 10)}, nil
	case int64:
		return &Content{Kind: KindText, Value: strconv.FormatInt(typedValue, 10)}, nil
	case uint:
		return &Content{Kind: KindText, Value: strconv.FormatUint(uint64(typedValue), 10)}, nil
	case uint8:
		return &Content{Kind: KindText, Value: strconv.FormatUint(uint64(typedValue), 10)}, nil
	case uint16:
		return &Content{Kind: KindText, Value: strconv.FormatUint(uint64(typedValue), 10)}, nil
	case uint32:
		return &Content{Kind: KindText, Value: strconv.FormatUint(uint64(typedValue), 10)}, nil
	case uint64:
		return &Content{Kind: KindText, Value: strconv.FormatUint(typedValue, 10)}, nil
	case float32:
		return &Content{Kind: KindText, Value: strconv.FormatFloat(float64(typedValue), 'f', -1, 32)}, nil
	case float64:
		return &Content{Kind: KindText, Value: strconv.FormatFloat(typedValue, 'f', -1, 64)}, nil
	}

	if stringer, ok := value.(fmt.Stringer); ok {
		return &Content{Kind: KindText, Value: stringer.String()}, nil
	}

	if textMarshaler, ok := value.(encoding.TextMarshaler); ok {
		textData, err := textMarshaler.MarshalText()
		if err != nil {
			return nil, motmedelErrors.NewWithTrace(fmt.Errorf("marshal text: %w", err), value)
		}

		return &Content{Kind: KindText, Value: string(textData)}, nil
	}

	return nil, motmedelErrors.NewWithTrace(&httpMessageErrors.InvalidContentTypeError{Value: value})
}
