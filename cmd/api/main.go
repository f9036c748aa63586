package main

import (
	"net/http"

	_ "github.com/bcreedon/City-Info/docs"
	"github.com/bcreedon/City-Info/internal/config"
	"github.com/bcreedon/City-Info/internal/handler"
	"github.com/bcreedon/City-Info/internal/repository"
	"github.com/bcreedon/City-Info/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			City Info API
//	@version		1.0
//	@description	Read-only reference data about U.S. cities, with current local time derived per request.
//	@BasePath		/

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	// Initialize layers
	repo := repository.NewRepository(config.CityDataFile)

	cityService := service.NewCityService(repo)

	cityHandler := handler.NewCityHandler(cityService)

	r := gin.New()
	r.Use(handler.RequestLogger(), gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/cities", cityHandler.ListCities)
	r.GET("/cities/:name", cityHandler.GetCity)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
