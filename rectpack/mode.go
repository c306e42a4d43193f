package rectpack

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects which packer New builds.
type Mode uint8

const (
	// Fixed packs into a pre-sized container and leaves overflow unplaced.
	Fixed Mode = iota
	// Growing starts from the first rectangle and grows right or down.
	Growing
)

// ErrUnknownMode is returned by ParseMode for names it does not recognise.
var ErrUnknownMode = errors.New("unknown packing mode")

// String returns the lower-case name accepted by ParseMode.
func (m Mode) String() string {
	switch m {
	case Fixed:
		return "fixed"
	case Growing:
		return "growing"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// ParseMode resolves a mode name, ignoring case.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fixed":
		return Fixed, nil
	case "growing", "grow":
		return Growing, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// MarshalText implements encoding.TextMarshaler so modes read naturally in
// config files.
func (m Mode) MarshalText() ([]byte, error) {
	if m != Fixed && m != Growing {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, uint8(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	mode, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// New builds a packer for mode. Width and height are only used by Fixed.
func New(mode Mode, width, height int) (Fitter, error) {
	switch mode {
	case Fixed:
		p, err := NewPacker(width, height)
		if err != nil {
			return nil, err
		}
		return p, nil
	case Growing:
		return NewGrowingPacker(), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownMode, uint8(mode))
}
