package combo

// Element is the type of a single input symbol.
//
// Byte grammars run over []byte and character grammars over []rune.
type Element interface {
	~byte | ~rune
}

// IsSpace reports whether e is an ASCII space or tab.
func IsSpace[I Element](e I) bool {
	return e == ' ' || e == '\t'
}

// IsMultiSpace reports whether e is an ASCII space, tab, carriage return or newline.
func IsMultiSpace[I Element](e I) bool {
	return IsSpace(e) || e == '\n' || e == '\r'
}

// IsWhitespace is IsMultiSpace plus form feed.
func IsWhitespace[I Element](e I) bool {
	return IsMultiSpace(e) || e == '\f'
}

// IsASCII reports whether e is in the 7-bit ASCII range.
func IsASCII[I Element](e I) bool {
	return e >= 0 && e <= 0x7f
}

// IsUpper reports whether e is an ASCII upper case letter.
func IsUpper[I Element](e I) bool {
	return e >= 'A' && e <= 'Z'
}

// IsLower reports whether e is an ASCII lower case letter.
func IsLower[I Element](e I) bool {
	return e >= 'a' && e <= 'z'
}

// IsAlpha reports whether e is an ASCII letter.
func IsAlpha[I Element](e I) bool {
	return IsUpper(e) || IsLower(e)
}

// IsDigit reports whether e is an ASCII decimal digit.
func IsDigit[I Element](e I) bool {
	return e >= '0' && e <= '9'
}

// IsDigitZero reports whether e is '0'.
func IsDigitZero[I Element](e I) bool {
	return e == '0'
}

// IsDigitNonZero reports whether e is one of '1' to '9'.
func IsDigitNonZero[I Element](e I) bool {
	return e >= '1' && e <= '9'
}

// IsAlphaDigit reports whether e is an ASCII letter or digit.
func IsAlphaDigit[I Element](e I) bool {
	return IsAlpha(e) || IsDigit(e)
}

// IsHexDigit reports whether e is an ASCII hexadecimal digit.
func IsHexDigit[I Element](e I) bool {
	return IsDigit(e) || (e >= 'a' && e <= 'f') || (e >= 'A' && e <= 'F')
}

// IsOctDigit reports whether e is an ASCII octal digit.
func IsOctDigit[I Element](e I) bool {
	return e >= '0' && e <= '7'
}

// IsPunctuation reports whether e is ASCII punctuation.
func IsPunctuation[I Element](e I) bool {
	return (e >= '!' && e <= '/') || (e >= ':' && e <= '@') || (e >= '[' && e <= '`') || (e >= '{' && e <= '~')
}

// IsGraphic reports whether e is a printable, non-space ASCII character.
func IsGraphic[I Element](e I) bool {
	return e >= '!' && e <= '~'
}

// IsControl reports whether e is an ASCII control character.
func IsControl[I Element](e I) bool {
	return (e >= 0 && e <= 0x1f) || e == 0x7f
}

// isByteElement reports whether I is byte-sized. The complement of zero is only
// positive for the unsigned byte kinds.
func isByteElement[I Element]() bool {
	var zero I
	return ^zero > 0
}

// text renders a run of symbols as a Go string.
//
// Bytes are copied verbatim, runes are UTF-8 encoded.
func text[I Element](in []I) string {
	switch in := any(in).(type) {
	case []byte:
		return string(in)
	case []rune:
		return string(in)
	}
	if isByteElement[I]() {
		b := make([]byte, len(in))
		for i, e := range in {
			b[i] = byte(e)
		}
		return string(b)
	}
	r := make([]rune, len(in))
	for i, e := range in {
		r[i] = rune(e)
	}
	return string(r)
}

// quote renders a single symbol for diagnostics.
func quote[I Element](e I) string {
	if isByteElement[I]() {
		return quoteByte(byte(e))
	}
	return quoteRune(rune(e))
}
