package common

const (
	_ ErrorCode = iota
	InvalidVersionErrorCode
	JSONUnmarshalErrorCode
)

var (
	InvalidVersionError Error = NewError("common", InvalidVersionErrorCode, "invalid version")
	JSONUnmarshalError  Error = NewError("common", JSONUnmarshalErrorCode, "failed json unmarshal")
)
