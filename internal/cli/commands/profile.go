package commands

import (
	"context"
	"fmt"
	"time"

	"Cepte/internal/cli/model"
	"Cepte/internal/config"
)

type profileCmd struct{}

func (profileCmd) Name() string        { return "profile" }
func (profileCmd) Description() string { return "Показать или изменить профиль" }
func (profileCmd) Usage() string {
	return "profile [set <full-name> <username> [birth-date YYYY-MM-DD]]"
}

func (profileCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	e := newEnv(cfg)
	defer e.close()
	if err := e.requireAuth(); err != nil {
		return err
	}

	if len(args) == 0 {
		p := e.session.Profile()
		if p == nil {
			fmt.Fprintln(Out, "Profile unavailable")
			return nil
		}
		printProfile(p)
		return nil
	}

	if args[0] != "set" || len(args) < 3 || len(args) > 4 {
		return ErrUsage
	}
	updated := model.Profile{
		UserID:   e.session.Identity(),
		FullName: args[1],
		Username: args[2],
	}
	if current := e.session.Profile(); current != nil {
		updated.Email = current.Email
		updated.BirthDate = current.BirthDate
		updated.RegistrationDate = current.RegistrationDate
	}
	if len(args) == 4 {
		bd, err := time.Parse("2006-01-02", args[3])
		if err != nil {
			return fmt.Errorf("bad birth date %q: expected YYYY-MM-DD", args[3])
		}
		updated.BirthDate = bd
	}
	if err := e.auth.SaveProfile(ctx, updated); err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	fmt.Fprintln(Out, "Profile updated")
	return nil
}

func printProfile(p *model.Profile) {
	fmt.Fprintf(Out, "User ID:    %s\n", p.UserID)
	fmt.Fprintf(Out, "Full name:  %s\n", p.FullName)
	fmt.Fprintf(Out, "Username:   %s\n", p.Username)
	fmt.Fprintf(Out, "Email:      %s\n", p.Email)
	if !p.BirthDate.IsZero() {
		fmt.Fprintf(Out, "Birth date: %s\n", p.BirthDate.Format("2006-01-02"))
	}
	if !p.RegistrationDate.IsZero() {
		fmt.Fprintf(Out, "Registered: %s\n", p.RegistrationDate.Format("2006-01-02"))
	}
}

func init() { RegisterCmd(profileCmd{}) }
