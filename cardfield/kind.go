package cardfield

// Kind identifies one of the four sub-fields of the card entry field.
type Kind int

const (
	Number Kind = iota
	Expiration
	CVC
	PostalCode
)

// Kinds lists every sub-field in entry order.
func Kinds() []Kind {
	return []Kind{Number, Expiration, CVC, PostalCode}
}

func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case Expiration:
		return "expiration"
	case CVC:
		return "cvc"
	case PostalCode:
		return "postal_code"
	default:
		return "unknown"
	}
}
