package encode

import (
	"sync"

	"github.com/spikeekips/kaspaddr/common"
)

// Encoder output starts with the encoder type, so Encoders can pick the
// right decoder.
type Encoder interface {
	Type() EncoderType
	Encode(interface{}) ([]byte, error)
	Decode([]byte, interface{}) error
}

type Encoders struct {
	sync.RWMutex
	encoders    map[ /*EncoderType*/ uint]Encoder
	defaultType EncoderType
}

func NewEncoders() *Encoders {
	return &Encoders{
		encoders: map[uint]Encoder{},
	}
}

// DefaultEncoders has RLP as default and JSON.
func DefaultEncoders() *Encoders {
	e := NewEncoders()
	_ = e.Register(RLP{})
	_ = e.Register(JSON{})

	return e
}

func (e *Encoders) Register(encoder Encoder) error {
	e.Lock()
	defer e.Unlock()

	if _, found := e.encoders[encoder.Type().ID()]; found {
		return EncoderAlreadyRegisteredError.AppendMessage("type=%q", encoder.Type().String())
	}

	e.encoders[encoder.Type().ID()] = encoder

	if e.defaultType.Empty() {
		e.defaultType = encoder.Type()
	}

	return nil
}

func (e *Encoders) Default() EncoderType {
	e.RLock()
	defer e.RUnlock()

	return e.defaultType
}

func (e *Encoders) SetDefault(encoderType EncoderType) error {
	encoder, err := e.encoder(encoderType)
	if err != nil {
		return err
	}

	e.Lock()
	defer e.Unlock()

	e.defaultType = encoder.Type()

	return nil
}

func (e *Encoders) encoder(encoderType EncoderType) (Encoder, error) {
	e.RLock()
	defer e.RUnlock()

	encoder, found := e.encoders[encoderType.ID()]
	if !found {
		return nil, EncoderNotRegisteredError.AppendMessage("type=%q", encoderType.String())
	}

	return encoder, nil
}

func (e *Encoders) Encode(i interface{}) ([]byte, error) {
	encoder, err := e.encoder(e.Default())
	if err != nil {
		return nil, err
	}

	return encoder.Encode(i)
}

func (e *Encoders) Decode(b []byte, i interface{}) error {
	a, o := common.ExtractBinary(b)
	if o < 0 {
		return DecodeFailedError.AppendMessage("not enough data; length=%d", len(b))
	}

	var t EncoderType
	if err := t.UnmarshalBinary(a); err != nil {
		return err
	}

	decoder, err := e.encoder(t)
	if err != nil {
		return err
	}

	return decoder.Decode(b, i)
}

func frame(t EncoderType, encoded []byte) []byte {
	h, _ := t.MarshalBinary()

	b := common.AppendBinary(h)

	return append(b, common.AppendBinary(encoded)...)
}

func unframe(t EncoderType, b []byte) ([]byte, error) {
	e, o := common.ExtractBinary(b)
	if o < 0 {
		return nil, DecodeFailedError.AppendMessage("not enough data; length=%d", len(b))
	}

	var et EncoderType
	if err := et.UnmarshalBinary(e); err != nil {
		return nil, err
	} else if !et.Equal(t) {
		return nil, DecodeFailedError.AppendMessage("not %s encoded; type=%d", t.String(), et.ID())
	}

	e, n := common.ExtractBinary(b[o:])
	if n < 0 {
		return nil, DecodeFailedError.AppendMessage("not enough data; length=%d", len(b))
	}

	return e, nil
}
