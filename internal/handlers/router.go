package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"artha/internal/advisory"
	_ "artha/internal/docs"
	"artha/internal/middleware"
	"artha/internal/services"
	"artha/internal/validator"
)

// NewRouter assembles the full HTTP surface on top of the given database
// and advisor. Both the binary and the integration tests go through this,
// so the two can never drift apart.
func NewRouter(db *gorm.DB, advisor advisory.Service) *gin.Engine {
	validator.Register()

	userSvc := services.NewUserService(db)
	ledgerSvc := services.NewLedgerService(db)
	snapshotSvc := services.NewSnapshotService(db)

	authHandler := NewAuthHandler(userSvc)
	txnHandler := NewTransactionHandler(ledgerSvc)
	dashHandler := NewDashboardHandler(ledgerSvc)
	toolsHandler := NewToolsHandler()
	advisoryHandler := NewAdvisoryHandler(advisor, ledgerSvc, userSvc)
	snapshotHandler := NewSnapshotHandler(snapshotSvc)

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestLogging(),
		middleware.ErrorHandler(),
		middleware.Metrics(),
		corsMiddleware(),
	)

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/profile", authHandler.GetProfile)
		protected.PUT("/profile", authHandler.UpdateProfile)

		txns := protected.Group("/transactions")
		{
			txns.POST("", txnHandler.CreateTransaction)
			txns.GET("", txnHandler.ListTransactions)
			txns.GET("/categories", txnHandler.ListSuggestedCategories)
			txns.GET("/:id", txnHandler.GetTransaction)
			txns.DELETE("/:id", txnHandler.DeleteTransaction)
			txns.PATCH("/:id/settle", txnHandler.SettleTransaction)
		}

		dashboard := protected.Group("/dashboard")
		{
			dashboard.GET("/overview", dashHandler.Overview)
			dashboard.GET("/categories", dashHandler.CategoryBreakdown)
		}

		tools := protected.Group("/tools")
		{
			tools.POST("/emi", toolsHandler.EMI)
			tools.POST("/future-value", toolsHandler.FutureValue)
			tools.POST("/sip", toolsHandler.SIP)
			tools.POST("/step-up-sip", toolsHandler.StepUpSIP)
			tools.POST("/rule-of-72", toolsHandler.RuleOf72)
			tools.POST("/cost-of-delay", toolsHandler.CostOfDelay)
			tools.POST("/time-cost", toolsHandler.TimeCost)
			tools.POST("/car-affordability", toolsHandler.CarAffordability)
			tools.POST("/house-affordability", toolsHandler.HouseAffordability)
			tools.POST("/fire", toolsHandler.FIRECorpus)
			tools.POST("/emergency-fund", toolsHandler.EmergencyFund)
			tools.POST("/allocation", toolsHandler.Allocation)
			tools.POST("/freelance-rate", toolsHandler.FreelanceRate)
			tools.POST("/rent-vs-buy", toolsHandler.RentVsBuy)
		}

		adv := protected.Group("/advisory")
		{
			adv.POST("/spending", advisoryHandler.SpendingInsight)
			adv.POST("/purchase-impact", advisoryHandler.PurchaseImpact)
			adv.POST("/chat", advisoryHandler.Chat)
			adv.POST("/receipt", advisoryHandler.ImportReceipt)
		}

		protected.GET("/snapshot", snapshotHandler.Export)
		protected.POST("/snapshot", snapshotHandler.Import)
	}

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
