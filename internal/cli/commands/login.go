package commands

import (
	"context"
	"errors"
	"fmt"

	"Cepte/internal/config"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Войти и сохранить auth-куку" }
func (loginCmd) Usage() string       { return "login <email> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}

	e := newEnv(cfg)
	defer e.close()

	if !e.session.SignIn(ctx, args[0], args[1]) {
		return errors.New(e.session.Err())
	}
	fmt.Fprintln(Out, "Logged in successfully")
	return nil
}

func init() { RegisterCmd(loginCmd{}) }
