// Package descriptor defines the invocation-descriptor wire format produced
// by generated wrapper methods. Bridge consumers written in Go can decode
// descriptors received from the wrappers with these types.
package descriptor

import (
	"encoding/json"
	"fmt"
)

// TargetTypeClass is the only target type generated wrappers emit
const TargetTypeClass = "Class"

// Target names the receiver of a forwarded invocation
type Target struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Arg is one typed argument value. Type carries the original declared source
// type string, not its canonicalized form; consumers discriminate on it.
type Arg struct {
	Type  string      `json:"type"`
	Value interface{} `json:"value"`
}

// Descriptor is the serializable record a generated wrapper method returns
// in lieu of performing the call: a target class, the original method name
// and the typed argument values in declaration order.
type Descriptor struct {
	Target Target `json:"target"`
	Method string `json:"method"`
	Args   []Arg  `json:"args"`
}

// Decode parses a JSON-encoded invocation descriptor
func Decode(data []byte) (*Descriptor, error) {
	var d Descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to decode invocation descriptor: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Validate checks the structural invariants a well-formed descriptor holds
func (d *Descriptor) Validate() error {
	if d.Target.Type != TargetTypeClass {
		return fmt.Errorf("invalid descriptor target type %q, expected %q", d.Target.Type, TargetTypeClass)
	}
	if d.Target.Value == "" {
		return fmt.Errorf("descriptor is missing a target class")
	}
	if d.Method == "" {
		return fmt.Errorf("descriptor is missing a method name")
	}
	for i, arg := range d.Args {
		if arg.Type == "" {
			return fmt.Errorf("descriptor argument %d is missing a type", i)
		}
	}
	return nil
}
