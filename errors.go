// Copyright 2024 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package signercore

// Code is a flat, host-visible numeric error code. The host transport maps
// any non-zero Code to its own DataInvalid / WrongLength response; none of
// these are recovered internally — a failed session stays failed until
// Reset.
type Code uint16

const (
	CodeOK Code = iota

	// Framing
	CodeNoData
	CodeInitContextEmpty
	CodeUnexpectedBufferEnd
	CodeUnexpectedDataAtEnd
	CodeDisplayIdxOutOfRange
	CodeDisplayPageOutOfRange

	// Schema
	CodeUnexpectedType
	CodeUnexpectedMethod
	CodeUnexpectedValue
	CodeUnexpectedNumberItems
	CodeUnexpectedField
	CodeUnexpectedCharacters
	CodeValueOutOfRange
	CodeCborUnexpected

	// Required fields
	CodeRequiredNonce
	CodeRequiredMethod

	// Context
	CodeContextMismatch
	CodeContextUnexpectedSize
	CodeContextInvalidChars
	CodeContextUnknownPrefix

	// Session / crypto
	CodeSessionState
	CodeInternalCryptoError
)

var codeNames = map[Code]string{
	CodeOK:                    "ok",
	CodeNoData:                "NoData",
	CodeInitContextEmpty:      "InitContextEmpty",
	CodeUnexpectedBufferEnd:   "UnexpectedBufferEnd",
	CodeUnexpectedDataAtEnd:   "UnexpectedDataAtEnd",
	CodeDisplayIdxOutOfRange:  "DisplayIdxOutOfRange",
	CodeDisplayPageOutOfRange: "DisplayPageOutOfRange",
	CodeUnexpectedType:        "UnexpectedType",
	CodeUnexpectedMethod:      "UnexpectedMethod",
	CodeUnexpectedValue:       "UnexpectedValue",
	CodeUnexpectedNumberItems: "UnexpectedNumberItems",
	CodeUnexpectedField:       "UnexpectedField",
	CodeUnexpectedCharacters:  "UnexpectedCharacters",
	CodeValueOutOfRange:       "ValueOutOfRange",
	CodeCborUnexpected:        "CborUnexpected",
	CodeRequiredNonce:         "RequiredNonce",
	CodeRequiredMethod:        "RequiredMethod",
	CodeContextMismatch:       "ContextMismatch",
	CodeContextUnexpectedSize: "ContextUnexpectedSize",
	CodeContextInvalidChars:   "ContextInvalidChars",
	CodeContextUnknownPrefix:  "ContextUnknownPrefix",
	CodeSessionState:          "SessionState",
	CodeInternalCryptoError:   "InternalCryptoError",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "Unrecognized"
}

// Error is the error type returned by every boundary function in this
// module. It carries a stable Code a host can act on, plus a human
// message for logs.
type Error struct {
	Code Code
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Code.String()
	}
	return e.Code.String() + ": " + e.Msg
}

// newErr builds an *Error; kept as a constructor so call sites read like
// the flat "return parser_unexpected_type;" style of the original parser.
func newErr(code Code, msg string) *Error {
	return &Error{Code: code, Msg: msg}
}

// Sentinel errors for errors.Is comparisons where no extra message is
// useful.
var (
	ErrNoData                = newErr(CodeNoData, "")
	ErrInitContextEmpty      = newErr(CodeInitContextEmpty, "")
	ErrUnexpectedBufferEnd   = newErr(CodeUnexpectedBufferEnd, "")
	ErrUnexpectedDataAtEnd   = newErr(CodeUnexpectedDataAtEnd, "")
	ErrDisplayIdxOutOfRange  = newErr(CodeDisplayIdxOutOfRange, "")
	ErrDisplayPageOutOfRange = newErr(CodeDisplayPageOutOfRange, "")
	ErrUnexpectedType        = newErr(CodeUnexpectedType, "")
	ErrUnexpectedMethod      = newErr(CodeUnexpectedMethod, "")
	ErrUnexpectedValue       = newErr(CodeUnexpectedValue, "")
	ErrUnexpectedNumberItems = newErr(CodeUnexpectedNumberItems, "")
	ErrUnexpectedField       = newErr(CodeUnexpectedField, "")
	ErrUnexpectedCharacters  = newErr(CodeUnexpectedCharacters, "")
	ErrValueOutOfRange       = newErr(CodeValueOutOfRange, "")
	ErrCborUnexpected        = newErr(CodeCborUnexpected, "")
	ErrRequiredNonce         = newErr(CodeRequiredNonce, "")
	ErrRequiredMethod        = newErr(CodeRequiredMethod, "")
	ErrContextMismatch       = newErr(CodeContextMismatch, "")
	ErrContextUnexpectedSize = newErr(CodeContextUnexpectedSize, "")
	ErrContextInvalidChars   = newErr(CodeContextInvalidChars, "")
	ErrContextUnknownPrefix  = newErr(CodeContextUnknownPrefix, "")
	ErrSessionState          = newErr(CodeSessionState, "")
	ErrInternalCryptoError   = newErr(CodeInternalCryptoError, "")
)

// WithMsg returns a copy of a sentinel Error carrying an additional
// message, so callers can do `return ErrUnexpectedType.WithMsg("fee.gas")`
// without losing errors.Is comparability against the sentinel's Code.
func (e *Error) WithMsg(msg string) *Error {
	return &Error{Code: e.Code, Msg: msg}
}

// Is allows errors.Is(err, ErrUnexpectedType) to match any *Error sharing
// the same Code, regardless of attached message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}
