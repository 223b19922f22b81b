package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	handler "solosphere-server/services/market/handler"
)

// SessionTokens issues and verifies signed session tokens
type SessionTokens interface {
	Issue(email string) (string, error)
	Verify(tokenString string) (string, error)
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(marketService handler.MarketServiceInterface, tokens SessionTokens, production bool) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(CORSMiddleware)          // credentialed browser clients

	marketHandler := handler.NewMarketHandler(marketService)
	authHandler := handler.NewAuthHandler(tokens, production)

	guard := RequireAuth(tokens)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello from SoloSphere Server....")
	})

	// session
	router.POST("/jwt", authHandler.IssueTokenHandler)
	router.GET("/logout", authHandler.LogoutHandler)

	// jobs
	router.GET("/jobs", marketHandler.ListJobsHandler)
	router.GET("/jobs/:email", guard, marketHandler.JobsByBuyerHandler)
	router.GET("/job/:id", marketHandler.GetJobHandler)
	router.POST("/job", marketHandler.CreateJobHandler)
	router.PUT("/job/:id", guard, marketHandler.UpdateJobHandler)
	router.DELETE("/job/:id", marketHandler.DeleteJobHandler)
	router.GET("/all-jobs", marketHandler.AllJobsHandler)
	router.GET("/jobs-count", marketHandler.JobsCountHandler)

	// bids
	router.POST("/bid", marketHandler.PlaceBidHandler)
	router.PATCH("/bid/:id", marketHandler.UpdateBidStatusHandler)
	router.GET("/my-bids/:email", guard, marketHandler.MyBidsHandler)
	router.GET("/bid-requests/:email", guard, marketHandler.BidRequestsHandler)

	return router
}
