// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package escape

var hexDigit = []byte("0123456789abcdef")

// Quote encodes src as a JSON string literal, including the enclosing double
// quotation marks. The input must be valid UTF-8; bytes outside the ASCII
// range pass through unchanged.
func Quote(src string) string {
	buf := make([]byte, 0, len(src)+2)
	buf = append(buf, '"')
	for i := 0; i < len(src); i++ {
		b := src[i]
		switch {
		case b == '"' || b == '\\':
			buf = append(buf, '\\', b)
		case b >= ' ':
			buf = append(buf, b)
		case b == '\b':
			buf = append(buf, '\\', 'b')
		case b == '\f':
			buf = append(buf, '\\', 'f')
		case b == '\n':
			buf = append(buf, '\\', 'n')
		case b == '\r':
			buf = append(buf, '\\', 'r')
		case b == '\t':
			buf = append(buf, '\\', 't')
		default:
			buf = append(buf, '\\', 'u', '0', '0', hexDigit[b>>4], hexDigit[b&15])
		}
	}
	buf = append(buf, '"')
	return string(buf)
}
