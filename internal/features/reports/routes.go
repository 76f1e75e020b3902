package reports

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/saferoute/saferoute-api/internal/middleware"
	"github.com/saferoute/saferoute-api/internal/pkg/moderation"
	"github.com/saferoute/saferoute-api/internal/pkg/ratelimit"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, moderator moderation.Validator) {
	repo := NewRepository(db)
	service := NewService(repo, moderator)
	handler := NewHandler(service)

	submitLimiter := ratelimit.New(10, time.Hour)

	group := router.Group("/reports")
	group.Use(middleware.Auth())
	{
		group.POST("", ratelimit.Middleware(submitLimiter), handler.CreateReport)
		group.GET("", handler.ListReports)
		group.GET("/area", handler.GetAreaSafety)
		group.GET("/me", handler.GetMyReports)
		group.POST("/:id/vote", handler.CastVote)
	}
}
