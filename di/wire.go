//go:build wireinject
// +build wireinject

package di

import (
	"crewlink/config"
	"crewlink/infras/otel"
	"crewlink/infras/rest"
	"crewlink/infras/session"
	"crewlink/infras/sqlite"
	"crewlink/internal/query"
	"crewlink/internal/workflow"
	"crewlink/transport/cli"

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

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	sqlite.New,
	otel.New,
	session.New,
	rest.New,
)

var sharedHelpers = wire.NewSet(
	query.New,
)

var domains = wire.NewSet(
	studioService.New,
	freelancerService.New,
	bookingService.New,
	reviewService.New,
	packService.New,
	helperService.New,
	teamService.New,
	paymentService.New,
	portfolioService.New,
	supportService.New,
)

var workflows = wire.NewSet(
	workflow.NewDraftStore,
	workflow.New,
)

func InitializeApp() *cli.Context {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		domains,
		workflows,
		wire.Struct(new(cli.Context), "*"),
	)

	return &cli.Context{}
}
