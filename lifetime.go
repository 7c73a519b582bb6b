package beans

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Lifetime specifies how long an instance produced by a registration lives.
type Lifetime int

const (
	// Singleton specifies that a single instance of the service will be created.
	// The instance is created when the provider is built and shared for the
	// lifetime of the provider. Singletons implementing Disposable are closed
	// with the provider.
	Singleton Lifetime = iota

	// Prototype specifies that the factory runs on every lookup.
	// Instances are owned by the caller; the provider never tracks or
	// disposes them.
	Prototype
)

// String returns the string representation of the Lifetime.
func (l Lifetime) String() string {
	switch l {
	case Singleton:
		return "Singleton"
	case Prototype:
		return "Prototype"
	default:
		return fmt.Sprintf("Unknown(%d)", int(l))
	}
}

// IsValid checks if the lifetime is valid.
func (l Lifetime) IsValid() bool {
	return l >= Singleton && l <= Prototype
}

// ParseLifetime parses a lifetime name, case-insensitively.
func ParseLifetime(s string) (Lifetime, error) {
	var l Lifetime
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, err
	}
	return l, nil
}

// MarshalText implements encoding.TextMarshaler.
func (l Lifetime) MarshalText() ([]byte, error) {
	if !l.IsValid() {
		return nil, LifetimeError{Value: int(l)}
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Lifetime) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "singleton":
		*l = Singleton
	case "prototype":
		*l = Prototype
	default:
		return LifetimeError{Value: string(text)}
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (l Lifetime) MarshalJSON() ([]byte, error) {
	text, err := l.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *Lifetime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	return l.UnmarshalText([]byte(s))
}
