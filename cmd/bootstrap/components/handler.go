package components

import (
	"resto-booking/internal/handler"
	"resto-booking/internal/handler/api"
	"resto-booking/internal/handler/middleware"
	"resto-booking/internal/pkg/config"
	"resto-booking/internal/usecase/commands"
	"resto-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewAuthHandler,
		api.NewTableHandler,
		api.NewBookingHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthHandler(authCommands commands.AuthCommands, userQueries queries.UserQueries, cfg config.Config) *api.AuthHandler {
	return api.NewAuthHandler(authCommands, userQueries, cfg.Server.FrontendURL)
}
