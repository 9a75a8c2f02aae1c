package oscwire

const hexDigits = "0123456789abcdef"

// AppendHex32 appends exactly 8 lowercase hex digits to dst, most
// significant nibble first.
func AppendHex32(dst []byte, v uint32) []byte {
	for shift := 28; shift >= 0; shift -= 4 {
		dst = append(dst, hexDigits[(v>>shift)&0xf])
	}
	return dst
}

// EncodeHex32 returns the 8-digit lowercase hex encoding of v.
func EncodeHex32(v uint32) string {
	return string(AppendHex32(make([]byte, 0, 8), v))
}

// DecodeHex32 scans up to 8 hex digits from src, accepting both cases.
// The scan stops at a NUL byte or after 8 characters; any other non-hex
// byte in the scanned prefix fails the whole decode.
func DecodeHex32(src []byte) (uint32, bool) {
	var v uint32
	for i := 0; i < 8 && i < len(src); i++ {
		c := src[i]
		switch {
		case c == 0:
			return v, true
		case c >= '0' && c <= '9':
			v = v<<4 | uint32(c-'0')
		case c >= 'a' && c <= 'f':
			v = v<<4 | uint32(c-'a'+10)
		case c >= 'A' && c <= 'F':
			v = v<<4 | uint32(c-'A'+10)
		default:
			return 0, false
		}
	}
	return v, true
}
