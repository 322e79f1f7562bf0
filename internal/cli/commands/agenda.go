package commands

import (
	"context"
	"fmt"
	"time"

	"Cepte/internal/cli/service"
	"Cepte/internal/config"
)

type agendaCmd struct{}

func (agendaCmd) Name() string        { return "agenda" }
func (agendaCmd) Description() string { return "Напоминания с датой" }
func (agendaCmd) Usage() string {
	return `agenda list | add <title> <due "YYYY-MM-DD HH:MM"> [description] | done <n> | edit <n> <title> <due> [description] | rm <n>`
}

const dueLayout = "2006-01-02 15:04"

func (agendaCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}

	e := newEnv(cfg)
	defer e.close()
	if err := e.requireAuth(); err != nil {
		return err
	}

	agenda := service.NewAgenda(e.store, e.session, e.log)
	if err := loadList(ctx, agenda.Synchronizer); err != nil {
		return err
	}

	switch args[0] {
	case "list":
		if len(args) != 1 {
			return ErrUsage
		}
		items := agenda.Items()
		if len(items) == 0 {
			fmt.Fprintln(Out, "Agenda is empty")
			return nil
		}
		for i, r := range items {
			mark := " "
			if r.Done {
				mark = "x"
			}
			fmt.Fprintf(Out, "%2d. [%s] %s  %s", i+1, mark, r.DueAt.Local().Format(dueLayout), r.Title)
			if r.Description != "" {
				fmt.Fprintf(Out, " — %s", r.Description)
			}
			fmt.Fprintln(Out)
		}
		return nil

	case "add":
		if len(args) < 3 || len(args) > 4 {
			return ErrUsage
		}
		due, err := time.ParseInLocation(dueLayout, args[2], time.Local)
		if err != nil {
			return fmt.Errorf("bad due date %q: expected %q", args[2], dueLayout)
		}
		desc := ""
		if len(args) == 4 {
			desc = args[3]
		}
		return finish(agenda.Add(ctx, args[1], desc, due))

	case "done":
		if len(args) != 2 {
			return ErrUsage
		}
		i, err := parseIndex(args[1], agenda.Len())
		if err != nil {
			return err
		}
		return finish(agenda.ToggleDone(ctx, agenda.Items()[i].ID))

	case "edit":
		if len(args) < 4 || len(args) > 5 {
			return ErrUsage
		}
		i, err := parseIndex(args[1], agenda.Len())
		if err != nil {
			return err
		}
		due, err := time.ParseInLocation(dueLayout, args[3], time.Local)
		if err != nil {
			return fmt.Errorf("bad due date %q: expected %q", args[3], dueLayout)
		}
		desc := ""
		if len(args) == 5 {
			desc = args[4]
		}
		return finish(agenda.Edit(ctx, agenda.Items()[i].ID, args[2], desc, due))

	case "rm":
		if len(args) != 2 {
			return ErrUsage
		}
		i, err := parseIndex(args[1], agenda.Len())
		if err != nil {
			return err
		}
		return finish(agenda.Remove(ctx, agenda.Items()[i].ID))
	}
	return ErrUsage
}

func init() { RegisterCmd(agendaCmd{}) }
