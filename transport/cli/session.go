package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/huh"

	"crewlink/shared/failure"
)

type LoginCmd struct {
	Token string `arg:"" optional:"" help:"Bearer token issued by the marketplace. Prompted for when omitted."`
}

func (c *LoginCmd) Run(appCtx *Context) error {
	ctx := context.Background()

	if c.Token == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("API token").
					EchoMode(huh.EchoModePassword).
					Value(&c.Token).
					Validate(func(s string) error {
						if strings.TrimSpace(s) == "" {
							return errors.New("token cannot be empty")
						}

						return nil
					}),
			),
		)

		if err := form.Run(); err != nil {
			return err
		}
	}

	if err := appCtx.Session.Save(ctx, strings.TrimSpace(c.Token)); err != nil {
		return err
	}

	printSuccess("Logged in.")

	if claims, err := appCtx.Session.Claims(ctx); err == nil && claims != nil && claims.Email != "" {
		printField("Account", claims.Email)
	}

	return nil
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(appCtx *Context) error {
	if err := appCtx.Session.Clear(context.Background()); err != nil {
		return err
	}

	printSuccess("Logged out.")

	return nil
}

type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(appCtx *Context) error {
	ctx := context.Background()

	claims, err := appCtx.Session.Claims(ctx)
	if err != nil {
		if errors.Is(err, failure.ErrNoSession) {
			printField("Session", "none, run `crewlink login`")

			return nil
		}

		return err
	}

	printField("User", claims.UserID)
	printField("Email", claims.Email)

	role := claims.Role
	if role == "" {
		role = appCtx.Cfg.App.Role
	}

	printField("Role", role)

	if claims.ExpiresAt != nil {
		printField("Expires", claims.ExpiresAt.Time.Format("2006-01-02 15:04"))
	}

	return nil
}
