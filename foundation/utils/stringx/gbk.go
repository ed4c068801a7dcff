// File: gbk.go
// Title: GBK Helpers
// Description: GBK encoding checks used for width measurement and for
//              cleaning text that must be stored in GBK.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package stringx

import (
	"strings"

	"golang.org/x/text/encoding/simplifiedchinese"

	mdwlog "github.com/msto63/textkit/foundation/core/log"
)

// encodeGBK returns the GBK bytes of s, or false if any rune has no GBK
// representation.
func encodeGBK(s string) ([]byte, bool) {
	b, err := simplifiedchinese.GBK.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, false
	}
	return b, true
}

// decodeGBK decodes GBK bytes. Invalid input yields an empty string.
func decodeGBK(b []byte) string {
	out, err := simplifiedchinese.GBK.NewDecoder().Bytes(b)
	if err != nil {
		return ""
	}
	return string(out)
}

// cutGBK returns the longest prefix of b that holds whole characters and
// is at most n bytes long. Lead bytes 0x81..0xFE start two-byte sequences.
func cutGBK(b []byte, n int) []byte {
	i := 0
	for i < len(b) {
		size := 1
		if b[i] >= 0x81 && b[i] <= 0xFE {
			size = 2
		}
		if i+size > n {
			break
		}
		i += size
	}
	return b[:i]
}

// EnsureGBK drops every rune that GBK cannot encode. Strings that are
// already encodable are returned unchanged.
func EnsureGBK(s string) string {
	if _, ok := encodeGBK(s); ok {
		return s
	}

	var b strings.Builder
	dropped := 0
	for _, r := range s {
		if _, ok := encodeGBK(string(r)); ok {
			b.WriteRune(r)
			continue
		}
		dropped++
	}

	result := b.String()
	mdwlog.Debug("dropped characters without GBK representation", mdwlog.Fields{
		"original": s,
		"result":   result,
		"dropped":  dropped,
	})
	return result
}
