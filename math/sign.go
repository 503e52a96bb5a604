package math

// Sign is the result of Verify.
type Sign int

const (
	Negative Sign = -1
	Zero     Sign = 0
	Positive Sign = 1
)

func (s Sign) String() string {
	switch s {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	default:
		return "zero"
	}
}

// Verify reports whether n is positive, negative or zero.
func Verify(n int) Sign {
	if n > 0 {
		return Positive
	}
	if n < 0 {
		return Negative
	}
	return Zero
}
