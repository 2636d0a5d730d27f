package handler

import (
	"net/http"

	"lab-dashboard/internal/domain/user"
	"lab-dashboard/internal/handler/api"
	"lab-dashboard/internal/handler/middleware"
	"lab-dashboard/internal/handler/validation"
	"lab-dashboard/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	fx.In

	Auth           *api.AuthHandler
	User           *api.UserHandler
	Equipment      *api.EquipmentHandler
	Reservation    *api.ReservationHandler
	Availability   *api.AvailabilityHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers) error {
	if err := validation.Register(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	slogger := logger.GetSlogLogger()
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(slogger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, slogger))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler(slogger))
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	authMw := h.AuthMiddleware
	staff := authMw.RequireRoleAtLeast(user.RoleStaff)
	admin := authMw.RequireRoleAtLeast(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMw.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		users := apiGroup.Group("/users")
		users.Use(authMw.RequireAuth())
		{
			addRoutes(users, []route{
				{Method: http.MethodPost, Path: "", Handler: h.User.Register, Mw: []gin.HandlerFunc{admin}},
			})
		}

		equipment := apiGroup.Group("/equipment")
		equipment.Use(authMw.RequireAuth())
		{
			addRoutes(equipment, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Equipment.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Equipment.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Equipment.Create, Mw: []gin.HandlerFunc{admin}},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Equipment.Update, Mw: []gin.HandlerFunc{admin}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Equipment.Delete, Mw: []gin.HandlerFunc{admin}},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMw.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create, Mw: []gin.HandlerFunc{staff}},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Reservation.Update, Mw: []gin.HandlerFunc{staff}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservation.Delete, Mw: []gin.HandlerFunc{staff}},
			})
		}

		availability := apiGroup.Group("/availability")
		availability.Use(authMw.RequireAuth())
		{
			addRoutes(availability, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Availability.Board},
				{Method: http.MethodGet, Path: "/stream", Handler: h.Availability.Stream},
				{Method: http.MethodGet, Path: "/:equipmentId", Handler: h.Availability.ForEquipment},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
