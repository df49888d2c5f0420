package router

import (
	"io/fs"
	"net/http"
	"time"

	"giftbook/api"
	"giftbook/config"
	_ "giftbook/docs"
	"giftbook/ledger"
	"giftbook/middleware"
	"giftbook/web"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件
	r.Use(CORSMiddleware())

	// 嵌入的静态文件 - 礼金簿页面
	staticFS, _ := fs.Sub(web.StaticFS, ".")
	r.GET("/", func(c *gin.Context) {
		content, err := fs.ReadFile(staticFS, "index.html")
		if err != nil {
			c.String(http.StatusInternalServerError, "加载页面失败")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", content)
	})

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 编辑会话和快速录入行：进程内各一份（单用户随身账本）
	editSession := ledger.NewEditSession()
	inlineForm := ledger.NewInlineForm()

	// API v1 路由组
	v1 := r.Group("/api/v1")
	{
		// 认证相关路由（无需登录）
		authHandler := api.NewAuthHandler(cfg)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", middleware.LoginRateLimit(10, time.Minute), authHandler.Login)
		}

		// 枚举元数据（无需登录）
		v1.GET("/meta", api.NewMetaHandler().Get)

		// 需要 JWT 认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth())
		{
			// 用户相关
			authorized.GET("/auth/profile", authHandler.GetProfile)
			authorized.PUT("/auth/password", authHandler.ChangePassword)

			// 活动相关
			eventHandler := api.NewEventHandler()
			recordHandler := api.NewRecordHandler()
			events := authorized.Group("/events")
			{
				events.POST("", eventHandler.Create)
				events.GET("", eventHandler.List)
				events.GET("/:id", eventHandler.Get)
				events.GET("/:id/ledger", recordHandler.LedgerView)
				events.GET("/:id/statistics", recordHandler.GetStatistics)
				events.POST("/:id/records/import", recordHandler.Import)
			}

			// 礼金记录相关
			records := authorized.Group("/records")
			{
				records.PUT("/:id", recordHandler.Update)
				records.DELETE("/:id", recordHandler.Delete)
			}

			// 行内编辑
			editHandler := api.NewEditHandler(editSession)
			edit := authorized.Group("/edit")
			{
				edit.GET("", editHandler.State)
				edit.POST("/start/:id", editHandler.Start)
				edit.PUT("/draft", editHandler.Draft)
				edit.POST("/save", editHandler.Save)
				edit.POST("/cancel", editHandler.Cancel)
			}

			// 快速录入
			inlineHandler := api.NewInlineHandler(inlineForm)
			inline := authorized.Group("/inline")
			{
				inline.GET("", inlineHandler.State)
				inline.PUT("/draft", inlineHandler.Draft)
				inline.POST("/add", inlineHandler.Add)
			}

			// 导出相关
			exportHandler := api.NewExportHandler(cfg)
			export := authorized.Group("/export")
			{
				export.GET("/excel", exportHandler.ExportExcel)
				export.GET("/csv", exportHandler.ExportCSV)
				export.GET("/json", exportHandler.ExportJSON)
				export.POST("/email", exportHandler.SendEmail)
				export.POST("/email/test", exportHandler.SendTestEmail)
			}
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
