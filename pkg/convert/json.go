// Package convert is the entry point the request marshaller and response
// unmarshaller use for generated shapes. Enum fields are parsed strictly and
// the typed enum errors survive the codec, so callers can still tell an empty
// value from a value the vocabulary does not know.
package convert

import (
	"encoding"
	"io"
	"math"
	"reflect"
	"time"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
	"github.com/modern-go/reflect2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	wire = jsoniter.Config{
		EscapeHTML:             false,
		SortMapKeys:            true,
		ValidateJsonRawMessage: true,
		CaseSensitive:          true,
	}.Froze()

	timeType             = reflect.TypeOf(time.Time{})
	timePtrType          = reflect.PtrTo(timeType)
	textMarshalerType    = reflect2.TypeOfPtr((*encoding.TextMarshaler)(nil)).Elem()
	textUnmarshalerType  = reflect2.TypeOfPtr((*encoding.TextUnmarshaler)(nil)).Elem()
	errTrailingData      = errors.New("unexpected data after the value")
	errNotEpochOrRFC3339 = errors.New("expected epoch seconds or an RFC 3339 string")
)

func init() {
	wire.RegisterExtension(&wireExtension{})
}

type validator interface {
	Validate() error
}

// codecState rides on the iterator or stream so the first typed error raised
// by a field codec is returned instead of jsoniter's flattened message.
type codecState struct {
	err error
}

func record(attachment interface{}, err error) {
	if state, ok := attachment.(*codecState); ok && state.err == nil {
		state.err = err
	}
}

func DecodeResponse(data []byte, out interface{}) error {
	iter := wire.BorrowIterator(data)
	defer wire.ReturnIterator(iter)

	state := &codecState{}
	iter.Attachment = state
	iter.ReadVal(out)
	if iter.Error == nil && state.err == nil {
		iter.WhatIsNext()
		if iter.Error == nil {
			return errors.Wrapf(errTrailingData, "decoding %s", shapeName(out))
		}
	}

	if state.err != nil {
		logrus.Debugf("Failed to decode %s: %v", shapeName(out), state.err)
		return errors.Wrapf(state.err, "decoding %s", shapeName(out))
	}
	if iter.Error != nil && iter.Error != io.EOF {
		return errors.Wrapf(iter.Error, "decoding %s", shapeName(out))
	}
	return nil
}

// EncodeRequest validates in when it is a request shape and encodes it.
func EncodeRequest(in interface{}) ([]byte, error) {
	if err := ValidateRequest(in); err != nil {
		return nil, err
	}
	return marshal(in)
}

func marshal(in interface{}) ([]byte, error) {
	stream := wire.BorrowStream(nil)
	defer wire.ReturnStream(stream)

	state := &codecState{}
	stream.Attachment = state
	stream.WriteVal(in)

	if state.err != nil {
		logrus.Debugf("Failed to encode %s: %v", shapeName(in), state.err)
		return nil, errors.Wrapf(state.err, "encoding %s", shapeName(in))
	}
	if stream.Error != nil {
		return nil, errors.Wrapf(stream.Error, "encoding %s", shapeName(in))
	}
	return append([]byte(nil), stream.Buffer()...), nil
}

func ValidateRequest(in interface{}) error {
	if v, ok := in.(validator); ok {
		return v.Validate()
	}
	return nil
}

func shapeName(v interface{}) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return "<nil>"
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

type wireExtension struct {
	jsoniter.DummyExtension
}

func (e *wireExtension) CreateDecoder(typ reflect2.Type) jsoniter.ValDecoder {
	if typ.Type1() == timeType {
		return epochSecondsCodec{}
	}
	return nil
}

func (e *wireExtension) CreateEncoder(typ reflect2.Type) jsoniter.ValEncoder {
	switch typ.Type1() {
	case timeType:
		return epochSecondsCodec{}
	case timePtrType:
		return epochSecondsPtrEncoder{}
	}
	return nil
}

func (e *wireExtension) DecorateEncoder(typ reflect2.Type, encoder jsoniter.ValEncoder) jsoniter.ValEncoder {
	if typ.Kind() != reflect.String || !typ.Implements(textMarshalerType) {
		return encoder
	}
	return &textEncoder{valType: typ, next: encoder}
}

func (e *wireExtension) DecorateDecoder(typ reflect2.Type, decoder jsoniter.ValDecoder) jsoniter.ValDecoder {
	if typ.Kind() != reflect.String {
		return decoder
	}
	ptrType := reflect2.PtrTo(typ)
	if !ptrType.Implements(textUnmarshalerType) {
		return decoder
	}
	return &textDecoder{ptrType: ptrType, typeName: typ.String(), next: decoder}
}

type textDecoder struct {
	ptrType  reflect2.Type
	typeName string
	next     jsoniter.ValDecoder
}

func (d *textDecoder) Decode(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	if iter.ReadNil() {
		return
	}
	if iter.WhatIsNext() != jsoniter.StringValue {
		d.next.Decode(ptr, iter)
		return
	}

	s := iter.ReadString()
	unmarshaler := d.ptrType.UnsafeIndirect(unsafe.Pointer(&ptr)).(encoding.TextUnmarshaler)
	if err := unmarshaler.UnmarshalText([]byte(s)); err != nil {
		record(iter.Attachment, err)
		iter.ReportError("decode "+d.typeName, err.Error())
	}
}

// textEncoder runs MarshalText ahead of jsoniter's own marshaler encoder so a
// typed enum error is recorded before the struct encoder flattens it.
type textEncoder struct {
	valType reflect2.Type
	next    jsoniter.ValEncoder
}

func (e *textEncoder) IsEmpty(ptr unsafe.Pointer) bool {
	return e.next.IsEmpty(ptr)
}

func (e *textEncoder) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	marshaler := e.valType.UnsafeIndirect(ptr).(encoding.TextMarshaler)
	if _, err := marshaler.MarshalText(); err != nil {
		record(stream.Attachment, err)
		stream.Error = err
		return
	}
	e.next.Encode(ptr, stream)
}

// epochSecondsCodec reads timestamps as fractional epoch seconds, the form the
// service uses, and accepts RFC 3339 strings from hand-written documents.
type epochSecondsCodec struct{}

func (epochSecondsCodec) Decode(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	switch iter.WhatIsNext() {
	case jsoniter.NumberValue:
		sec, frac := math.Modf(iter.ReadFloat64())
		*(*time.Time)(ptr) = time.Unix(int64(sec), int64(math.Round(frac*1e9))).UTC()
	case jsoniter.StringValue:
		t, err := time.Parse(time.RFC3339Nano, iter.ReadString())
		if err != nil {
			iter.ReportError("decode time", err.Error())
			return
		}
		*(*time.Time)(ptr) = t
	case jsoniter.NilValue:
		iter.Skip()
	default:
		iter.ReportError("decode time", errNotEpochOrRFC3339.Error())
	}
}

func (epochSecondsCodec) IsEmpty(ptr unsafe.Pointer) bool {
	return (*time.Time)(ptr).IsZero()
}

func (epochSecondsCodec) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	writeEpochSeconds(*(*time.Time)(ptr), stream)
}

// epochSecondsPtrEncoder takes precedence over *time.Time's MarshalJSON,
// which jsoniter would otherwise pick for pointer fields.
type epochSecondsPtrEncoder struct{}

func (epochSecondsPtrEncoder) IsEmpty(ptr unsafe.Pointer) bool {
	return *(**time.Time)(ptr) == nil
}

func (epochSecondsPtrEncoder) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	t := *(**time.Time)(ptr)
	if t == nil {
		stream.WriteNil()
		return
	}
	writeEpochSeconds(*t, stream)
}

func writeEpochSeconds(t time.Time, stream *jsoniter.Stream) {
	if t.Nanosecond() == 0 {
		stream.WriteInt64(t.Unix())
		return
	}
	stream.WriteFloat64(float64(t.Unix()) + float64(t.Nanosecond())/1e9)
}
