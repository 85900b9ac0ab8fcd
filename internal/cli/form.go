package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/koffee/internal/tui"
)

type FormCmd struct {
	Save bool `help:"Store submitted inputs as the default profile." negatable:"" default:"true"`
}

func (c *FormCmd) Run(ctx *Context) error {
	if c.Save && !ctx.Loaded {
		if err := ctx.Store.Init(); err != nil {
			return err
		}
		ctx.Loaded = true
	}

	opts := tui.Options{
		Planner:     ctx.Planner,
		Beverages:   ctx.Beverages,
		SaveProfile: c.Save,
	}
	if ctx.Loaded {
		opts.Store = ctx.Store
	}

	p := tea.NewProgram(tui.NewModel(opts), tea.WithAltScreen(), tea.WithInput(ctx.In), tea.WithOutput(ctx.Out))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("form exited with error: %w", err)
	}
	return nil
}
