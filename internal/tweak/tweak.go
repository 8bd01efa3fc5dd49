package tweak

import "fmt"

// Kind distinguishes tweaks the engine can apply from tweaks that are only
// surfaced as instructions.
type Kind int

const (
	// Automated tweaks carry an action made of one or more operations.
	Automated Kind = iota
	// ManualOnly tweaks never run anything; their description is the instruction.
	ManualOnly
)

func (k Kind) String() string {
	switch k {
	case Automated:
		return "automated"
	case ManualOnly:
		return "manual"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Operation is one atomic privileged system action, such as a registry write
// or a service state change. Execute must report every failure as an error
// (preferably an *OperationError) and never panic.
type Operation interface {
	Name() string
	Execute() error
}

// Tweak is an immutable catalog entry. Build values with NewAutomated or
// NewManual so the action/kind pairing always holds.
type Tweak struct {
	id          string
	displayName string
	description string
	kind        Kind
	action      []Operation
}

// NewAutomated returns a tweak that applies ops in order.
func NewAutomated(id, displayName, description string, ops ...Operation) Tweak {
	action := make([]Operation, len(ops))
	copy(action, ops)
	return Tweak{
		id:          id,
		displayName: displayName,
		description: description,
		kind:        Automated,
		action:      action,
	}
}

// NewManual returns a tweak whose description tells the operator what to do.
func NewManual(id, displayName, description string) Tweak {
	return Tweak{
		id:          id,
		displayName: displayName,
		description: description,
		kind:        ManualOnly,
	}
}

func (t Tweak) ID() string          { return t.id }
func (t Tweak) DisplayName() string { return t.displayName }
func (t Tweak) Description() string { return t.description }
func (t Tweak) Kind() Kind          { return t.kind }

// Action returns a copy of the tweak's operations. It is empty for ManualOnly tweaks.
func (t Tweak) Action() []Operation {
	if len(t.action) == 0 {
		return nil
	}
	out := make([]Operation, len(t.action))
	copy(out, t.action)
	return out
}

func (t Tweak) validate() error {
	if t.id == "" {
		return fmt.Errorf("tweak %q: empty id", t.displayName)
	}
	switch t.kind {
	case Automated:
		if len(t.action) == 0 {
			return fmt.Errorf("tweak %s: automated tweak has no operations", t.id)
		}
		for i, op := range t.action {
			if op == nil {
				return fmt.Errorf("tweak %s: operation %d is nil", t.id, i+1)
			}
		}
	case ManualOnly:
		if len(t.action) != 0 {
			return fmt.Errorf("tweak %s: manual tweak must not carry operations", t.id)
		}
	default:
		return fmt.Errorf("tweak %s: unknown kind %v", t.id, t.kind)
	}
	return nil
}
