package layout

import "fmt"

// Kind selects straight or slanted cut lines.
type Kind uint8

const (
	// Straight layouts only contain axis-aligned lines.
	Straight Kind = iota
	// Slant layouts allow the two endpoints of a line to be placed
	// independently, producing oblique cuts.
	Slant
)

var kindNames = [...]string{
	Straight: "straight",
	Slant:    "slant",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if int(k) >= len(kindNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, k)
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if name == string(text) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownKind, text)
}
