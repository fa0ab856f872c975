package vmodel

// Encode encodes v at m's own version and prepends the header.
func Encode[T any](m Model[T], v T) ([]byte, error) {
	body, err := m.EncodeBody(v)
	if err != nil {
		return nil, err
	}
	return Prepend(body, Header{ID: m.ID(), Version: m.Version()}), nil
}

// EncodeDowngrade encodes v as it would have been encoded at an older
// version, walking m's chain down. The header carries version, the version
// the body actually is, not m's own.
func EncodeDowngrade[T any](m Model[T], v T, version uint32) ([]byte, error) {
	body, err := m.EncodeDowngradeBody(v, version)
	if err != nil {
		return nil, err
	}
	return Prepend(body, Header{ID: m.ID(), Version: version}), nil
}

// Decode decodes an envelope into m's version, upgrading older bodies
// through the chain. It also returns the version found in the header, so the
// caller can answer with EncodeDowngrade at that version.
func Decode[T any](m Model[T], data []byte) (T, uint32, error) {
	h, body, err := ReadHeader(data)
	if err != nil {
		var zero T
		return zero, 0, err
	}
	v, err := m.DecodeUpgradeBody(body, h.ID, h.Version)
	if err != nil {
		var zero T
		return zero, h.Version, err
	}
	return v, h.Version, nil
}
