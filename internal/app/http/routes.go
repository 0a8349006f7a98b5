package routes

import (
	authapi "novelas-app/internal/api/auth"
	novelasapi "novelas-app/internal/api/novelas"
	usuariosapi "novelas-app/internal/api/usuarios"
	"novelas-app/internal/app/http/middleware"
	"novelas-app/internal/infra/metrics"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")
	api.Use(metrics.Middleware())

	// Public
	public := api.Group("/")
	public.Use(middleware.SanitizeInputMiddleware())
	public.POST("/cadastrar", authapi.Cadastrar)
	public.POST("/login", authapi.Login)

	// Authenticated
	auth := api.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", usuariosapi.GetCurrentUser)

	auth.GET("/novelas", novelasapi.GetNovelas)
	auth.POST("/novelas", novelasapi.CreateNovela)
	auth.PUT("/novelas/:novelaId", novelasapi.UpdateNovela)
	auth.DELETE("/novelas/:novelaId", novelasapi.DeleteNovela)

	auth.GET("/novelas/:novelaId/capitulos", novelasapi.GetCapitulos)
	auth.POST("/novelas/:novelaId/capitulos", novelasapi.CreateCapitulo)
	auth.PUT("/novelas/:novelaId/capitulos/:capituloId", novelasapi.UpdateCapitulo)
	auth.DELETE("/novelas/:novelaId/capitulos/:capituloId", novelasapi.DeleteCapitulo)
}
