package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Cepte/internal/config"
)

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Создать учётную запись и войти" }
func (registerCmd) Usage() string {
	return "register <email> <password> <full-name> <username> [birth-date YYYY-MM-DD]"
}

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 4 || len(args) > 5 {
		return ErrUsage
	}
	var birthDate time.Time
	if len(args) == 5 {
		var err error
		birthDate, err = time.Parse("2006-01-02", args[4])
		if err != nil {
			return fmt.Errorf("bad birth date %q: expected YYYY-MM-DD", args[4])
		}
	}

	e := newEnv(cfg)
	defer e.close()

	if !e.session.SignUp(ctx, args[0], args[1], args[2], args[3], birthDate) {
		return errors.New(e.session.Err())
	}
	fmt.Fprintf(Out, "Registered and signed in as %s\n", args[0])
	return nil
}

func init() { RegisterCmd(registerCmd{}) }
