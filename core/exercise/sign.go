package exercise

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/vadiminshakov/micros/math"
)

const finishPrompt = "Finish? (Y/N) "

var signParams = []Param{
	{Name: "n", Kind: KindInt, Prompt: "Enter a number: ", Description: "number to classify"},
}

func init() {
	Register(Definition{
		Name:        "sign",
		Description: "Classify numbers as positive, zero or negative until asked to stop",
		Params:      signParams,
		Eval:        sign,
		Run:         runSign,
	})
}

func sign(args map[string]interface{}) (string, error) {
	n, err := intArg(args, "n")
	if err != nil {
		return "", err
	}

	switch math.Verify(n) {
	case math.Positive:
		return "Positive", nil
	case math.Zero:
		return "The number is equal to 0", nil
	default:
		return "Negative", nil
	}
}

// runSign keeps classifying until the user answers Y or input ends.
func runSign(ctx context.Context, s *Session) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		args, err := s.Collect(ctx, signParams)
		if err != nil {
			if errors.Cause(err) == io.EOF {
				return nil
			}
			return err
		}

		result, err := sign(args)
		if err != nil {
			return err
		}
		s.logger().Debug("exercise evaluated", "exercise", "sign", "args", args, "result", result)
		fmt.Fprintln(s.Out, result)

		answer, err := s.In.ReadLine(finishPrompt)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return errors.Wrap(err, "read answer")
		}

		if finished(answer) {
			return nil
		}
	}
}

func finished(answer string) bool {
	answer = strings.TrimSpace(answer)
	return strings.HasPrefix(answer, "Y") || strings.HasPrefix(answer, "y")
}
