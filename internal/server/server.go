package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/carousell/ct-go/pkg/logger"
	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/labstack/echo/v4"
	echomdw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"

	"github.com/nguyentranbao-ct/ott-backoffice/internal/config"
	mdw "github.com/nguyentranbao-ct/ott-backoffice/internal/server/middleware"
	"github.com/nguyentranbao-ct/ott-backoffice/internal/usecase"
)

func StartServer(
	lc fx.Lifecycle,
	sd fx.Shutdowner,
	conf *config.Config,
	handler Controller,
	authCtrl AuthController,
	adminCtrl AdminController,
	portalCtrl PortalController,
	auth *usecase.AuthUsecase,
	hub *Hub,
) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = mdw.NewValidator()

	httpLog := logger.MustNamed("http")
	e.HTTPErrorHandler = mdw.ErrorHandler(httpLog)

	logConfig := mdw.LogRequestConfig{
		Logger: httpLog,
		Enabled: func(c echo.Context) bool {
			uri := c.Request().RequestURI
			return uri != "/health" && uri != "/metrics"
		},
	}

	e.Use(mdw.Metrics())
	e.Use(mdw.RequestID())
	e.Use(mdw.LogRequest(logConfig))
	e.Use(echomdw.RecoverWithConfig(echomdw.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			log.Errorw(c.Request().Context(), "PANIC RECOVER", "error", err, "stack", string(stack))
			return nil
		},
	}))

	e.GET("/health", handler.Health)

	// browsers cannot set headers on websocket dials, so the session token
	// rides on the query string
	e.GET("/ws", func(c echo.Context) error {
		a, ok := auth.Validate(c.QueryParam("token"))
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
		}
		return hub.ServeWS(c, a)
	})

	api := e.Group("/api/v1")
	api.POST("/auth/login", authCtrl.Login)
	api.POST("/auth/password-reset", authCtrl.RequestPasswordReset)

	authed := api.Group("", mdw.SessionAuth(auth))
	authed.POST("/auth/logout", authCtrl.Logout)
	authed.GET("/auth/session", authCtrl.Session)

	admin := api.Group("/admin", mdw.SessionAuth(auth), mdw.AdminOnly())
	admin.POST("/clients", adminCtrl.CreateClient)
	admin.GET("/clients", adminCtrl.ListClients)
	admin.GET("/clients/:id", adminCtrl.GetClient)
	admin.PUT("/clients/:id", adminCtrl.UpdateClient)
	admin.DELETE("/clients/:id", adminCtrl.DeleteClient)
	admin.PUT("/clients/:id/status", adminCtrl.SetClientStatus)
	admin.POST("/clients/:id/warn", adminCtrl.WarnClient)
	admin.PUT("/clients/:id/password", adminCtrl.ChangeClientPassword)
	admin.PUT("/clients/:id/terms", adminCtrl.UpdateClientTerms)
	admin.GET("/clients/:id/dashboard", adminCtrl.ClientDashboard)
	admin.GET("/clients/:id/financials", adminCtrl.GetFinancials)
	admin.POST("/clients/:id/financials/revenue", adminCtrl.AddMonthlyRevenue)
	admin.POST("/clients/:id/financials/payments", adminCtrl.AddPayment)
	admin.PUT("/clients/:id/distribution/:dcID/status", adminCtrl.SetDistributionStatus)

	admin.POST("/channels", adminCtrl.CreateChannel)
	admin.GET("/channels", adminCtrl.ListChannels)
	admin.GET("/channels/:id", adminCtrl.GetChannel)
	admin.PUT("/channels/:id", adminCtrl.UpdateChannel)
	admin.DELETE("/channels/:id", adminCtrl.DeleteChannel)
	admin.PUT("/channels/:id/owner", adminCtrl.AssignChannelOwner)

	admin.POST("/movies", adminCtrl.CreateMovie)
	admin.GET("/movies", adminCtrl.ListMovies)
	admin.PUT("/movies/:id", adminCtrl.UpdateMovie)
	admin.DELETE("/movies/:id", adminCtrl.DeleteMovie)
	admin.PUT("/movies/:id/channel", adminCtrl.AssignMovieChannel)

	admin.POST("/series", adminCtrl.CreateSeries)
	admin.GET("/series", adminCtrl.ListSeries)
	admin.PUT("/series/:id", adminCtrl.UpdateSeries)
	admin.DELETE("/series/:id", adminCtrl.DeleteSeries)
	admin.PUT("/series/:id/channel", adminCtrl.AssignSeriesChannel)

	admin.GET("/tickets", adminCtrl.ListTickets)
	admin.GET("/tickets/:id", adminCtrl.GetTicket)
	admin.POST("/tickets/:id/reply", adminCtrl.ReplyTicket)
	admin.PUT("/tickets/:id/status", adminCtrl.SetTicketStatus)

	admin.GET("/notifications", adminCtrl.ListNotifications)
	admin.GET("/notifications/unread-count", adminCtrl.UnreadNotificationCount)
	admin.PUT("/notifications/:id/read", adminCtrl.MarkNotificationRead)
	admin.PUT("/notifications/read-all", adminCtrl.MarkAllNotificationsRead)
	admin.DELETE("/notifications", adminCtrl.ClearNotifications)

	portal := api.Group("/portal", mdw.SessionAuth(auth), mdw.ClientOnly())
	portal.GET("/dashboard", portalCtrl.Dashboard)
	portal.GET("/profile", portalCtrl.GetProfile)
	portal.PUT("/profile", portalCtrl.UpdateProfile)
	portal.PUT("/notifications/:notifID/read", portalCtrl.MarkNotificationRead)
	portal.PUT("/notifications/read-all", portalCtrl.MarkAllNotificationsRead)
	portal.POST("/distribution", portalCtrl.AddDistributionChannel)
	portal.DELETE("/distribution/:dcID", portalCtrl.RemoveDistributionChannel)
	portal.GET("/financials", portalCtrl.GetFinancials)
	portal.PUT("/financials/paypal-email", portalCtrl.UpdatePayPalEmail)
	portal.POST("/tickets", portalCtrl.CreateTicket)
	portal.GET("/tickets", portalCtrl.ListTickets)
	portal.GET("/tickets/:id", portalCtrl.GetTicket)
	portal.POST("/tickets/:id/reply", portalCtrl.ReplyTicket)
	portal.POST("/chatbot", portalCtrl.Chatbot)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Infow(ctx, "starting HTTP server", "addr", conf.Server.Addr)
				if err := e.Start(conf.Server.Addr); !errors.Is(err, http.ErrServerClosed) {
					sd.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}
