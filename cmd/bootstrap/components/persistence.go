package components

import (
	"log/slog"

	"padelhub/internal/infra/cache"
	"padelhub/internal/infra/readstore"
	"padelhub/internal/infra/repository"
	"padelhub/internal/pkg/config"
	"padelhub/internal/usecase/commands"
	"padelhub/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	repositoryModule,
	cacheModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewAvailabilityReadStore,
			fx.As(new(queries.AvailabilityReadStore)),
		),
		fx.Annotate(
			readstore.NewClubReadStore,
			fx.As(new(queries.ClubReadStore)),
		),
		fx.Annotate(
			readstore.NewCourtReadStore,
			fx.As(new(queries.CourtReadStore)),
		),
		fx.Annotate(
			readstore.NewWeeklyRuleReadStore,
			fx.As(new(queries.WeeklyRuleReadStore)),
		),
		fx.Annotate(
			readstore.NewBlackoutReadStore,
			fx.As(new(queries.BlackoutReadStore)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repository.NewClubRepository,
			fx.As(new(commands.ClubRepository)),
		),
		fx.Annotate(
			repository.NewCourtRepository,
			fx.As(new(commands.CourtRepository)),
		),
		fx.Annotate(
			repository.NewWeeklyRuleRepository,
			fx.As(new(commands.WeeklyRuleRepository)),
		),
		fx.Annotate(
			repository.NewBlackoutRepository,
			fx.As(new(commands.BlackoutRepository)),
		),
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
	),
)

var cacheModule = fx.Module("persistence/cache",
	fx.Provide(
		NewAvailabilityCache,
	),
)

func NewAvailabilityCache(cfg config.Config, client *redis.Client, logger *slog.Logger) (queries.AvailabilityCache, commands.AvailabilityInvalidator) {
	if cfg.Redis.DisableCache || client == nil {
		noop := cache.NoopAvailabilityCache{}
		return noop, noop
	}
	c := cache.NewAvailabilityCache(client, cfg.Redis.AvailTTL, logger)
	return c, c
}
