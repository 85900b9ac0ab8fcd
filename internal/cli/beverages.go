package cli

import (
	"fmt"

	"github.com/julianstephens/koffee/internal/report"
)

type BeveragesCmd struct{}

func (c *BeveragesCmd) Run(ctx *Context) error {
	fmt.Fprint(ctx.Out, report.FormatBeverages(ctx.Beverages))
	return nil
}
