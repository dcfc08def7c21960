package main

import (
	"net/http"

	"bookmates/feed"
	"bookmates/server"
	"bookmates/server/middlewares"
	"bookmates/utils"
	"bookmates/utils/dotenv"
	. "bookmates/utils/flag"
	. "bookmates/utils/log"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	if err := dotenv.LoadDotEnvs(); err != nil {
		panic(err)
	}

	db, err := utils.GetDBConnection()
	if err != nil {
		Log.Fatal("fail to connect to DB: ", err)
	}
	utils.DatabaseSetupAndMigration(db)

	// Redis is optional: without it the feed simply reads as all-unread.
	readStatus, err := feed.GetReadStatusStore()
	if err != nil {
		Log.Error("read-status store unavailable, feed read flags disabled: ", err)
		readStatus = nil
	}

	s := server.NewServer(db, readStatus)

	// Default With the Logger and Recovery middleware already attached
	router := gin.Default()
	router.Use(cors.Default())

	s.RegisterAuthRoutes(router.Group("/api"))

	api := router.Group("/api")
	if !BypassAuth {
		api.Use(middlewares.JWT())
	}
	s.RegisterRoutes(api)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	Log.Info("api server starts up")
	router.Run(":8080")
}
