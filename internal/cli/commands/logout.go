package commands

import (
	"context"
	"fmt"

	"Cepte/internal/config"
)

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Выйти и забыть сохранённую сессию" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}

	e := newEnv(cfg)
	defer e.close()

	e.session.SignOut(ctx)
	if e.session.Authenticated() {
		return fmt.Errorf("sign out failed, session kept")
	}
	fmt.Fprintln(Out, "Logged out")
	return nil
}

func init() { RegisterCmd(logoutCmd{}) }
