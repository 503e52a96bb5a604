package exercise

import (
	"github.com/vadiminshakov/micros/math"
)

func init() {
	Register(Definition{
		Name:        "verify",
		Description: "Report whether an integer is positive, negative or zero",
		Params: []Param{
			{Name: "n", Kind: KindInt, Prompt: "Enter a number: ", Description: "number to check"},
		},
		Eval: verify,
	})
}

func verify(args map[string]interface{}) (string, error) {
	n, err := intArg(args, "n")
	if err != nil {
		return "", err
	}

	switch math.Verify(n) {
	case math.Positive:
		return "Positive number", nil
	case math.Zero:
		return "Zero", nil
	default:
		return "Negative number", nil
	}
}
