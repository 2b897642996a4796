package value

//go:generate go tool stringer -type=Kind -output=kind_string.go

type Kind int

const (
	KindNull Kind = iota // zero value, so the zero Value is null
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// IsScalar reports whether values of this kind are leaves (neither array nor object).
func (k Kind) IsScalar() bool {
	switch k {
	default:
		return false
	case KindNull, KindBool, KindNumber, KindString:
		return true
	}
}

func (k Kind) IsContainer() bool {
	switch k {
	default:
		return false
	case KindArray, KindObject:
		return true
	}
}
