package commands

import (
	"context"
	"fmt"

	"Cepte/internal/cli/service"
	"Cepte/internal/config"
)

type diaryCmd struct{}

func (diaryCmd) Name() string        { return "diary" }
func (diaryCmd) Description() string { return "Дневник (новые записи сверху)" }
func (diaryCmd) Usage() string {
	return "diary list | add <text> | edit <n> <text> | rm <n>"
}

func (diaryCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}

	e := newEnv(cfg)
	defer e.close()
	if err := e.requireAuth(); err != nil {
		return err
	}

	diary := service.NewDiary(e.store, e.session, e.log)
	if err := loadList(ctx, diary.Synchronizer); err != nil {
		return err
	}

	switch args[0] {
	case "list":
		if len(args) != 1 {
			return ErrUsage
		}
		items := diary.Items()
		if len(items) == 0 {
			fmt.Fprintln(Out, "Diary is empty")
			return nil
		}
		for i, en := range items {
			fmt.Fprintf(Out, "%2d. %s  %s\n", i+1, en.FormattedDateTime(), en.Text)
		}
		return nil

	case "add":
		if len(args) != 2 {
			return ErrUsage
		}
		return finish(diary.Add(ctx, args[1]))

	case "edit":
		if len(args) != 3 {
			return ErrUsage
		}
		i, err := parseIndex(args[1], diary.Len())
		if err != nil {
			return err
		}
		return finish(diary.EditEntry(ctx, diary.Items()[i].ID, args[2]))

	case "rm":
		if len(args) != 2 {
			return ErrUsage
		}
		i, err := parseIndex(args[1], diary.Len())
		if err != nil {
			return err
		}
		return finish(diary.Remove(ctx, diary.Items()[i].ID))
	}
	return ErrUsage
}

func init() { RegisterCmd(diaryCmd{}) }
