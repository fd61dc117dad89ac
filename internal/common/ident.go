package common

// UnknownStr is the display string for values outside a known enumeration.
const UnknownStr = "unknown"

// MacroName turns a display name into a preprocessor-friendly token.
// Lowercase ASCII letters are upper-cased and '-' becomes '_'; every other
// byte is kept as is.
func MacroName(name string) string {
	b := []byte(name)
	for i, c := range b {
		switch {
		case c >= 'a' && c <= 'z':
			b[i] = c - 'a' + 'A'
		case c == '-':
			b[i] = '_'
		}
	}

	return string(b)
}
