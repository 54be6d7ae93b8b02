package router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vladimirreshete-del/gde-dengi/internal/bot"
	"github.com/vladimirreshete-del/gde-dengi/internal/config"
	"github.com/vladimirreshete-del/gde-dengi/internal/handler"
	"github.com/vladimirreshete-del/gde-dengi/internal/middleware"
	"github.com/vladimirreshete-del/gde-dengi/internal/util"
)

const webDist = "./web/dist"

// SetupRouter configures the Gin engine: API routes, the mini-app bundle
// and the SPA fallback. tgBot may be nil when no bot token is configured.
func SetupRouter(cfg *config.Config, db *gorm.DB, tgBot *bot.Bot) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.RequestID())

	// mini-app bundle
	r.Static("/assets", webDist+"/assets")
	r.StaticFile("/", webDist+"/index.html")

	r.GET("/health", handler.Health)

	// ====== API ======
	api := r.Group("/api")

	adminHandler := handler.NewAdminHandler(db, cfg.Admin, tgBot)
	api.POST("/admin/login", adminHandler.Login)

	admin := api.Group("/admin")
	admin.Use(middleware.AdminAuth(cfg.Admin.JWTSecret))
	admin.GET("/summary", adminHandler.Summary)
	admin.POST("/broadcast", adminHandler.Broadcast)

	// everything the mini app calls goes through the Telegram auth gateway
	protected := api.Group("")
	protected.Use(middleware.TelegramAuth(cfg.Telegram.BotToken))

	userHandler := handler.NewUserHandler(db, cfg.Defaults)
	protected.GET("/me", userHandler.GetMe)

	expenseHandler := handler.NewExpenseHandler(db)
	protected.POST("/expenses", expenseHandler.Create)
	protected.GET("/expenses", expenseHandler.List)
	protected.DELETE("/expenses/:id", expenseHandler.Delete)

	statsHandler := handler.NewStatsHandler(db)
	protected.GET("/stats", statsHandler.GetStats)
	protected.GET("/stats/categories", statsHandler.GetCategories)

	profileHandler := handler.NewProfileHandler(db)
	protected.PUT("/profile", profileHandler.Update)

	goalHandler := handler.NewGoalHandler(db)
	protected.GET("/goals", goalHandler.List)
	protected.POST("/goals", goalHandler.Create)
	protected.POST("/goals/:id/contribute", goalHandler.Contribute)
	protected.DELETE("/goals/:id", goalHandler.Delete)

	exportHandler := handler.NewExportHandler(db)
	protected.GET("/export/csv", exportHandler.ExportCSV)
	protected.GET("/export/xlsx", exportHandler.ExportXLSX)

	// unknown /api -> JSON 404, anything else -> SPA entry point
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			util.Error(c, http.StatusNotFound, "API route not found")
			return
		}
		c.File(webDist + "/index.html")
	})

	return r
}
