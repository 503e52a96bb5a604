package exercise

import (
	"fmt"

	"github.com/vadiminshakov/micros/pricing"
)

func init() {
	Register(Definition{
		Name:        "price",
		Description: "Adjust a product price by its sales tier",
		Params: []Param{
			{Name: "price", Kind: KindNumber, Prompt: "Enter the price: ", Description: "current unit price"},
			{Name: "sales", Kind: KindNumber, Prompt: "Enter the sales: ", Description: "units sold"},
		},
		Eval: price,
	})
}

func price(args map[string]interface{}) (string, error) {
	p, err := floatArg(args, "price")
	if err != nil {
		return "", err
	}
	sales, err := floatArg(args, "sales")
	if err != nil {
		return "", err
	}

	q, err := pricing.Adjust(p, sales)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("The new price is %f", q.NewPrice), nil
}
