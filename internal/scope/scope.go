// Package scope shows the two lifetimes: Single is a singleton, Proto is a
// prototype, and Single hands out a fresh Proto on every call.
package scope

import (
	"github.com/google/uuid"

	"github.com/kyunghwan/beans"
)

// Proto is registered with prototype lifetime.
type Proto struct {
	id string
}

// NewProto creates a Proto with a unique ID.
func NewProto() *Proto {
	return &Proto{id: uuid.NewString()}
}

// ID identifies the instance.
func (p *Proto) ID() string {
	return p.id
}

// Single is registered with singleton lifetime.
type Single struct {
	id    string
	proto func() (*Proto, error)
}

// NewSingle creates a Single that obtains Protos from proto.
func NewSingle(proto func() (*Proto, error)) *Single {
	return &Single{
		id:    uuid.NewString(),
		proto: proto,
	}
}

// ID identifies the instance.
func (s *Single) ID() string {
	return s.id
}

// Proto returns a new Proto on every call.
func (s *Single) Proto() (*Proto, error) {
	return s.proto()
}

// Module registers Proto as a prototype and Single as a singleton.
func Module() beans.ModuleOption {
	return beans.NewModule("scope",
		beans.ProvidePrototype(func(beans.Resolver) (*Proto, error) {
			return NewProto(), nil
		}),
		beans.ProvideSingleton(func(r beans.Resolver) (*Single, error) {
			return NewSingle(beans.Lazy[*Proto](r)), nil
		}),
	)
}
