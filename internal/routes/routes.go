package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/saferoute/saferoute-api/internal/features/reports"
	"github.com/saferoute/saferoute-api/internal/pkg/moderation"
)

func SetupRoutes(router *gin.Engine, db *mongo.Database, moderator moderation.Validator) {
	api := router.Group("/api/v1")

	reports.RegisterRoutes(api, db, moderator)
}
