package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"backend/internal/catalog"
	"backend/internal/config"
	"backend/internal/handlers"
	"backend/internal/middleware"
	"backend/internal/settings"
	"backend/internal/store"
)

func main() {
	config.Load()

	st := store.New(config.AppEnv.DataDir)
	if err := st.Init(); err != nil {
		log.Fatal(err)
	}

	products := catalog.NewService(st)
	siteSettings := settings.NewService(st)

	r := gin.Default()
	r.Use(cors.Default())
	r.Static("/uploads", config.AppEnv.UploadDir)
	r.Static("/images", "./public/images")

	r.GET("/api/products", handlers.GetProducts(products))
	r.GET("/api/products/featured", handlers.GetFeaturedProducts(products, siteSettings))
	r.GET("/api/products/:slug", handlers.GetProduct(products))
	r.POST("/api/admin/login", handlers.AdminLogin(st, config.AppEnv.JWTSecret, config.AppEnv.AccessTokenTTL))
	r.POST("/api/contact", handlers.Contact(siteSettings))
	r.GET("/api/settings", handlers.GetSettings(siteSettings))
	r.GET("/sitemap.xml", handlers.Sitemap(products, config.AppEnv.PublicBaseURL))

	admin := r.Group("/api")
	admin.Use(middleware.AdminAuth(config.AppEnv.JWTSecret))
	{
		admin.POST("/products", handlers.CreateProduct(products))
		admin.PUT("/products/:id", handlers.UpdateProduct(products))
		admin.DELETE("/products/:id", handlers.DeleteProduct(products))
		admin.PUT("/settings", handlers.UpdateSettings(siteSettings))
		admin.POST("/upload", handlers.UploadImage(config.AppEnv.UploadDir, config.AppEnv.PublicBaseURL))
	}

	log.Println("Catalog server listening on port", config.AppEnv.Port)
	r.Run(":" + config.AppEnv.Port)
}
