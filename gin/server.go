package gin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	docscabinet "github.com/foladipo/docs-cabinet-cp2-sub000"
	"github.com/foladipo/docs-cabinet-cp2-sub000/auth"
	"github.com/foladipo/docs-cabinet-cp2-sub000/pagination"
)

func New(
	documents docscabinet.DocumentStore,
	users docscabinet.UserStore,
	tokens *auth.EncodeDecoder,
	hasher auth.PasswordHasher,
	defaults pagination.Defaults,
) (http.Handler, error) {
	router := gin.Default()

	// CORS
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, PUT, POST, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Accept-Language, Content-Type, "+TokenHeader)
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusOK)
		}
		c.Next()
	})

	// Unknown route
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"message": "Page not found"})
	})

	// Ping
	router.GET("/api/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, map[string]string{"data": "ok"})
	})

	authenticator := &Authenticator{
		Verifier: &auth.Verifier{Tokens: tokens, Users: users},
	}

	documentHandler := DocumentHandler{
		Documents:     documents,
		Defaults:      defaults,
		Authenticator: authenticator,
	}
	documentHandler.RegisterRoutes(router)

	userHandler := UserHandler{
		Users:         users,
		Tokens:        tokens,
		Hasher:        hasher,
		Defaults:      defaults,
		Authenticator: authenticator,
	}
	userHandler.RegisterRoutes(router)

	return router, nil
}
