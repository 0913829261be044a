package circuit

// Mode tags the provenance and visibility of a circuit Variable. It is
// immutable per variable: constant, public input, or private witness.
type Mode uint8

const (
	// Constant variables are baked into the constraint system at compile
	// time and never appear in the witness.
	Constant Mode = iota
	// Public variables are part of the public input/instance.
	Public
	// Private variables are part of the witness and never revealed.
	Private
)

// String renders the mode the way debug output (Variable.String,
// CircuitScope traces) expects to see it.
func (m Mode) String() string {
	switch m {
	case Constant:
		return "Constant"
	case Public:
		return "Public"
	case Private:
		return "Private"
	default:
		return "Unknown"
	}
}

// IsConstant reports whether the mode is Constant.
func (m Mode) IsConstant() bool { return m == Constant }

// IsPublic reports whether the mode is Public.
func (m Mode) IsPublic() bool { return m == Public }

// IsPrivate reports whether the mode is Private.
func (m Mode) IsPrivate() bool { return m == Private }
