package components

import (
	"resto-booking/internal/infra/google"
	"resto-booking/internal/pkg/clock"
	"resto-booking/internal/pkg/config"
	"resto-booking/internal/usecase/commands"
	"resto-booking/internal/usecase/queries"
	"resto-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
	),
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewTableQueries,
		queries.NewBookingQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewIdentityResolver,
		commands.NewUserCommands,
		commands.NewAuthCommands,
		commands.NewTableCommands,
		NewBookingCommands,
	),
)

func NewIdentityResolver(cfg config.Config) commands.IdentityResolver {
	return google.NewIdentityResolver(cfg.Google)
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	bookingQueries queries.BookingQueries,
	publisher commands.EventPublisher,
	cfg config.Config,
	clk clock.Clock,
) commands.BookingCommands {
	return commands.NewBookingCommands(uow, bookingQueries, publisher, cfg.Kafka.Topic, clk)
}
