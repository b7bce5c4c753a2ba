package textenc

import (
	"html"
	"unicode/utf8"

	"github.com/jlikhuva/loompy/pkg/loomerrors"
	stringpool "github.com/jlikhuva/loompy/pkg/strings"
)

// DecodeASCII converts stored bytes to text, dropping every byte outside
// the 7-bit range. Legacy producers sometimes store raw UTF-8 without
// escaping; ignoring high bytes keeps the read path total at the cost of
// mangling such elements, which is the documented legacy behavior.
func DecodeASCII(b []byte) string {
	clean := true
	for _, c := range b {
		if c >= 0x80 {
			clean = false
			break
		}
	}
	if clean {
		return string(b)
	}

	out := make([]byte, 0, len(b))
	for _, c := range b {
		if c < 0x80 {
			out = append(out, c)
		}
	}
	return stringpool.BytesToString(out)
}

// Unescape resolves XML numeric and named character references, returning
// native unicode text. The result is validated as UTF-8 so that a
// malformed reference from a non-conforming producer surfaces as an error
// the recovery policy can act on instead of leaking garbage to the caller.
func Unescape(s string) (string, error) {
	out := html.UnescapeString(s)
	if !utf8.ValidString(out) {
		return "", loomerrors.New(loomerrors.ErrorTypeData, "unescaped value is not valid unicode").
			WithDetail("raw", s)
	}
	return out, nil
}
