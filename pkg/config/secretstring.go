package config

// SecretStringValue is what a SecretString prints as.
const SecretStringValue = "<secret>"

// SecretString is a type that should be used for fields that should not be visible in logs.
type SecretString string

// Reveal returns the underlying value. Only the transport should call it.
func (s SecretString) Reveal() string {
	return string(s)
}

// String implements fmt.Stringer, so zap.Stringer and %v never leak the value.
func (s SecretString) String() string {
	if len(s) == 0 {
		return ""
	}
	return SecretStringValue
}

// MarshalJSON marshals SecretString to JSON making sure that actual value is not visible.
func (s SecretString) MarshalJSON() ([]byte, error) {
	if len(s) == 0 {
		return []byte("null"), nil
	}
	return []byte("\"" + SecretStringValue + "\""), nil
}

// MarshalText keeps the value out of TOML encodings too.
func (s SecretString) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
