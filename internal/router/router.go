package router

import (
	"net/http"

	"github.com/WelcomeWebWorks/Boiler-Plate/internal/config"
	"github.com/WelcomeWebWorks/Boiler-Plate/internal/handler"
	"github.com/WelcomeWebWorks/Boiler-Plate/internal/service"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(cfg config.AppConfig, api *handler.API) *gin.Engine {
	r := gin.Default()

	// 配置会话中间件
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(service.ContactCooldown.Seconds()),
		HttpOnly: true,
	})
	r.Use(sessions.Sessions("site_session", store))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	r.GET("/robots.txt", api.Robots)
	r.GET("/sitemap.xml", api.Sitemap)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/og", api.RenderOGImage)
		apiGroup.POST("/revalidate", api.Revalidate)
		apiGroup.GET("/site", api.GetSiteBootstrap)

		apiGroup.POST("/contact", api.SubmitContact)
		apiGroup.POST("/contact/whatsapp", api.ContactWhatsApp)
		apiGroup.GET("/contact/cooldown", api.ContactCooldown)
		apiGroup.POST("/newsletter", api.SubmitNewsletter)
		apiGroup.POST("/popup", api.SubmitPopup)

		pages := apiGroup.Group("/pages")
		{
			pages.GET("/home", api.GetHomePage)
			pages.GET("/blog", api.GetBlogIndex)
			pages.GET("/blog/:slug", api.GetPostPage)
			pages.GET("/services", api.GetServicesIndex)
			pages.GET("/services/:slug", api.GetServicePage)
			pages.GET("/legal/:slug", api.GetLegalPage)
			pages.GET("/contact", api.GetContactPage)
		}
	}

	return r
}
