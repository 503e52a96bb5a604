package exercise

import (
	"fmt"

	"github.com/vadiminshakov/micros/math"
)

func init() {
	Register(Definition{
		Name:        "factorial",
		Description: "Compute the factorial of an integer (1 for zero and negative numbers)",
		Params: []Param{
			{Name: "n", Kind: KindInt, Prompt: "Enter a number: ", Description: "number to take the factorial of"},
		},
		Eval: factorial,
	})
}

func factorial(args map[string]interface{}) (string, error) {
	n, err := intArg(args, "n")
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("The factorial of %d is %d", n, math.Factorial(n)), nil
}
