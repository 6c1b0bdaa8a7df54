// Package cli holds the command implementations behind the crewlink binary.
// Commands are thin: they collect input, call a domain service or the
// workflow controller, and render the result. All marketplace state lives
// server-side; the only local state is the session and review drafts.
package cli

import (
	"context"

	"crewlink/config"
	"crewlink/infras/otel"
	"crewlink/infras/session"
	bookingService "crewlink/internal/domains/booking/service"
	freelancerService "crewlink/internal/domains/freelancer/service"
	helperService "crewlink/internal/domains/helper/service"
	packService "crewlink/internal/domains/pack/service"
	paymentService "crewlink/internal/domains/payment/service"
	portfolioService "crewlink/internal/domains/portfolio/service"
	reviewService "crewlink/internal/domains/review/service"
	studioService "crewlink/internal/domains/studio/service"
	supportService "crewlink/internal/domains/support/service"
	teamService "crewlink/internal/domains/team/service"
	"crewlink/internal/workflow"
	gDto "crewlink/shared/dto"
)

// Context is the dependency container kong hands to every command's Run.
type Context struct {
	Cfg     *config.Config
	Session session.Store
	Otel    otel.Otel

	Studios     studioService.Studio
	Freelancers freelancerService.Freelancer
	Bookings    bookingService.Booking
	Reviews     reviewService.Review
	Packages    packService.Package
	Helpers     helperService.Helper
	Team        teamService.Team
	Payments    paymentService.Payment
	Portfolio   portfolioService.Portfolio
	Support     supportService.Support

	Workflow workflow.Controller
	Drafts   workflow.DraftStore
}

// Role resolves the viewer role. An explicitly set APP_ROLE wins over the
// session claim; without the override the claim decides.
func (c *Context) Role(ctx context.Context) string {
	if c.Cfg.App.Role != "" {
		return c.Cfg.App.Role
	}

	claims, err := c.Session.Claims(ctx)
	if err == nil && claims != nil && claims.Role != "" {
		return claims.Role
	}

	return ""
}

// listFlags is the shared pagination flag set of list commands.
type listFlags struct {
	Page   int    `help:"Page number." default:"1"`
	Limit  int    `help:"Results per page." default:"10"`
	Sort   string `help:"Sort field." default:"created_at"`
	Asc    bool   `help:"Sort ascending instead of descending."`
	Search string `short:"s" help:"Free-text search."`
}

func (f listFlags) params() gDto.QueryParams {
	params := gDto.Defaults()
	params.Page = f.Page
	params.Limit = f.Limit
	params.SortBy = f.Sort
	params.Search = f.Search

	if f.Asc {
		params.SortDir = "ASC"
	}

	return params
}
