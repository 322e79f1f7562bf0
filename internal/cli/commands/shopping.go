package commands

import (
	"context"
	"fmt"

	"Cepte/internal/cli/service"
	"Cepte/internal/config"
)

type shoppingCmd struct{}

func (shoppingCmd) Name() string        { return "shopping" }
func (shoppingCmd) Description() string { return "Список покупок" }
func (shoppingCmd) Usage() string {
	return "shopping list | add <name> <price> | check <n> | edit <n> <name> <price> | rm <n>"
}

func (shoppingCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}

	e := newEnv(cfg)
	defer e.close()
	if err := e.requireAuth(); err != nil {
		return err
	}

	list := service.NewShoppingList(e.store, e.session, e.log)
	if err := loadList(ctx, list.Synchronizer); err != nil {
		return err
	}

	switch args[0] {
	case "list":
		if len(args) != 1 {
			return ErrUsage
		}
		items := list.Items()
		if len(items) == 0 {
			fmt.Fprintln(Out, "Shopping list is empty")
			return nil
		}
		for i, it := range items {
			mark := " "
			if it.Checked {
				mark = "x"
			}
			fmt.Fprintf(Out, "%2d. [%s] %s  %.2f\n", i+1, mark, it.Name, it.Price)
		}
		fmt.Fprintf(Out, "Total: %.2f\n", list.Total())
		return nil

	case "add":
		if len(args) != 3 {
			return ErrUsage
		}
		return finish(list.Add(ctx, args[1], args[2]))

	case "check":
		if len(args) != 2 {
			return ErrUsage
		}
		i, err := parseIndex(args[1], list.Len())
		if err != nil {
			return err
		}
		return finish(list.ToggleChecked(ctx, list.Items()[i].ID))

	case "edit":
		if len(args) != 4 {
			return ErrUsage
		}
		i, err := parseIndex(args[1], list.Len())
		if err != nil {
			return err
		}
		return finish(list.Edit(ctx, list.Items()[i].ID, args[2], args[3]))

	case "rm":
		if len(args) != 2 {
			return ErrUsage
		}
		i, err := parseIndex(args[1], list.Len())
		if err != nil {
			return err
		}
		return finish(list.Remove(ctx, list.Items()[i].ID))
	}
	return ErrUsage
}

func init() { RegisterCmd(shoppingCmd{}) }
