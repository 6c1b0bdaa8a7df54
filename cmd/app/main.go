package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"crewlink/config"
	"crewlink/di"
	"crewlink/shared/logger"
	"crewlink/transport/cli"
)

var CLI struct {
	Version kong.VersionFlag

	Login  cli.LoginCmd  `cmd:"" help:"Save a marketplace token for this machine."`
	Logout cli.LogoutCmd `cmd:"" help:"Clear the saved session."`
	Whoami cli.WhoamiCmd `cmd:"" help:"Show the active session."`

	Studios struct {
		List cli.StudioListCmd `cmd:"" default:"1" help:"List studios."`
		Get  cli.StudioGetCmd  `cmd:"" help:"Show one studio."`
	} `cmd:"" help:"Browse studios."`

	Freelancers struct {
		List cli.FreelancerListCmd `cmd:"" default:"1" help:"List freelancers."`
		Get  cli.FreelancerGetCmd  `cmd:"" help:"Show one freelancer."`
	} `cmd:"" help:"Browse freelancers."`

	Bookings struct {
		List cli.BookingListCmd `cmd:"" default:"1" help:"List bookings."`
		Get  cli.BookingGetCmd  `cmd:"" help:"Show one booking."`
	} `cmd:"" help:"Manage bookings."`

	Packages cli.PackageListCmd `cmd:"" help:"List a studio's service packages."`
	Helpers  cli.HelperListCmd  `cmd:"" help:"List bookable helpers."`

	Team      cli.TeamListCmd  `cmd:"" help:"List the partner team members."`
	Portfolio cli.PortfolioCmd `cmd:"" help:"Show a studio's or freelancer's portfolio."`

	Payments struct {
		List cli.PaymentListCmd `cmd:"" default:"1" help:"List payments."`
		Get  cli.PaymentGetCmd  `cmd:"" help:"Show one payment."`
	} `cmd:"" help:"Review payments."`

	Support struct {
		New  cli.SupportNewCmd  `cmd:"" help:"Open a support ticket."`
		List cli.SupportListCmd `cmd:"" default:"1" help:"List support tickets."`
	} `cmd:"" help:"Contact support."`

	Closure struct {
		Status  cli.ClosureStatusCmd  `cmd:"" default:"1" help:"Show the closure workflow state of a booking."`
		Content cli.ClosureContentCmd `cmd:"" help:"Update the booking's content details."`
		Accept  cli.ClosureAcceptCmd  `cmd:"" help:"Accept a pending closure request."`
		Review  cli.ClosureReviewCmd  `cmd:"" help:"Write or edit the booking review."`
	} `cmd:"" help:"Drive the booking closure workflow."`
}

func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	ctx := kong.Parse(&CLI,
		kong.Name("crewlink"),
		kong.Description("Client for the crewlink studios and freelancers marketplace"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	appCtx := di.InitializeApp()

	err := ctx.Run(appCtx)

	// Short-lived process; flush pending spans before deciding the exit code.
	appCtx.Otel.Shutdown(context.Background())

	if err != nil {
		fmt.Fprint(os.Stderr, cli.RenderError(err))
		os.Exit(1)
	}
}
