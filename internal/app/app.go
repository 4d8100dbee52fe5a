package app

import (
	"github.com/carousell/ct-go/pkg/logger"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap/zapcore"

	"github.com/nguyentranbao-ct/ott-backoffice/internal/config"
	"github.com/nguyentranbao-ct/ott-backoffice/internal/kafka"
	"github.com/nguyentranbao-ct/ott-backoffice/internal/repo/llm"
	"github.com/nguyentranbao-ct/ott-backoffice/internal/repo/mongodb"
	"github.com/nguyentranbao-ct/ott-backoffice/internal/server"
	"github.com/nguyentranbao-ct/ott-backoffice/internal/setup"
	"github.com/nguyentranbao-ct/ott-backoffice/internal/usecase"
)

func Invoke(funcs ...any) *fx.App {
	log := logger.MustNamed("app")
	conf := config.MustLoad()
	log.Debugw("config loaded", log.Reflect("config", conf))
	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			l := &fxevent.ZapLogger{
				Logger: log.Unwrap().Desugar(),
			}
			l.UseLogLevel(zapcore.DebugLevel)
			return l
		}),
		fx.Provide(
			newMongoDB,
			newBroadcaster,
			newSnapshotSink,
			newPublisher,

			llm.NewService,
			kafka.NewProducer,

			mongodb.NewClientRepository,
			mongodb.NewChannelRepository,
			mongodb.NewMovieRepository,
			mongodb.NewSeriesRepository,
			mongodb.NewFinancialsRepository,
			mongodb.NewAdminNotificationRepository,
			mongodb.NewTicketRepository,
			mongodb.NewMetaRepository,
			mongodb.NewWatcher,

			usecase.NewNotifier,
			usecase.NewAuthUsecase,
			usecase.NewClientUsecase,
			usecase.NewContentUsecase,
			usecase.NewRelationshipUsecase,
			usecase.NewDistributionUsecase,
			usecase.NewFinanceUsecase,
			usecase.NewTicketUsecase,
			usecase.NewAggregateUsecase,
			usecase.NewInboxUsecase,

			server.NewHub,
			server.NewHandler,
			server.NewAuthController,
			server.NewAdminController,
			server.NewPortalController,

			setup.NewSeeder,
		),
		fx.Supply(conf),
		fx.Invoke(setup.RunSeed),
		fx.Invoke(StartWatcher),
		fx.Invoke(funcs...),
	)
}
