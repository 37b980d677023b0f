package canonjson

const hexDigits = "0123456789abcdef"

// appendQuoted writes s as a JSON string literal using the fixed JCS escape
// set: the seven two-character escapes, \u00xx with lowercase hex for the
// remaining C0 controls, and everything else as raw UTF-8. A forward slash
// is never escaped.
func appendQuoted(dst []byte, s string) []byte {
	dst = append(dst, '"')

	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\t':
			dst = append(dst, '\\', 't')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\f':
			dst = append(dst, '\\', 'f')
		case '\r':
			dst = append(dst, '\\', 'r')
		default:
			if c < 0x20 {
				dst = append(dst, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0x0f])
				continue
			}

			// Multi-byte UTF-8 sequences pass through byte by byte; valid
			// UTF-8 continuation bytes never collide with the ASCII cases
			// above.
			dst = append(dst, c)
		}
	}

	return append(dst, '"')
}
