package commands

import (
	"context"
	"fmt"

	"Cepte/internal/cli/model"
	"Cepte/internal/cli/service"
	"Cepte/internal/config"
)

type importantCmd struct{}

func (importantCmd) Name() string        { return "important" }
func (importantCmd) Description() string { return "Важные заметки с приоритетом" }
func (importantCmd) Usage() string {
	return "important list | add <importance> <text> | edit <n> <text> | level <n> <importance> | rm <n>"
}

func (importantCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}

	e := newEnv(cfg)
	defer e.close()
	if err := e.requireAuth(); err != nil {
		return err
	}

	list := service.NewReminderList(e.store, e.session, e.log)
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
			fmt.Fprintln(Out, "No important notes")
			return nil
		}
		for i, r := range items {
			fmt.Fprintf(Out, "%2d. [%-6s] %s\n", i+1, r.Importance, r.Text)
		}
		return nil

	case "add":
		if len(args) != 3 {
			return ErrUsage
		}
		imp, err := model.ParseImportance(args[1])
		if err != nil {
			return err
		}
		return finish(list.Add(ctx, args[2], imp))

	case "edit":
		if len(args) != 3 {
			return ErrUsage
		}
		i, err := parseIndex(args[1], list.Len())
		if err != nil {
			return err
		}
		return finish(list.Edit(ctx, list.Items()[i].ID, args[2]))

	case "level":
		if len(args) != 3 {
			return ErrUsage
		}
		i, err := parseIndex(args[1], list.Len())
		if err != nil {
			return err
		}
		imp, err := model.ParseImportance(args[2])
		if err != nil {
			return err
		}
		return finish(list.Reclassify(ctx, list.Items()[i].ID, imp))

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

func init() { RegisterCmd(importantCmd{}) }
