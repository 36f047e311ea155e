package bootstrap

import (
	"resto-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	PublisherModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
