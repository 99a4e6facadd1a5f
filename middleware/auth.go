package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mirkashi/Grazieoutfits/models"
	"github.com/mirkashi/Grazieoutfits/repository"
	"github.com/mirkashi/Grazieoutfits/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// adminContextKey is the gin context key under which the authenticated admin
// is stored.
const adminContextKey = "admin"

// AdminFromContext returns the admin attached by the auth middleware.
func AdminFromContext(c *gin.Context) (*models.Admin, bool) {
	value, exists := c.Get(adminContextKey)
	if !exists {
		return nil, false
	}
	admin, ok := value.(*models.Admin)
	return admin, ok
}

// RequireAdmin gates a route behind a valid admin bearer token. The token is
// verified and the referenced admin is loaded and attached to the context;
// every failure mode returns the same 401.
func RequireAdmin(tokens *services.TokenService, admins repository.AdminRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		admin, ok := resolveAdmin(c, tokens, admins)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authorized to access this route"})
			c.Abort()
			return
		}
		c.Set(adminContextKey, admin)
		c.Next()
	}
}

// OptionalAdmin attaches the admin when a valid token is supplied but lets
// the request through either way. Used by the bootstrap admin-creation route.
func OptionalAdmin(tokens *services.TokenService, admins repository.AdminRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if admin, ok := resolveAdmin(c, tokens, admins); ok {
			c.Set(adminContextKey, admin)
		}
		c.Next()
	}
}

func resolveAdmin(c *gin.Context, tokens *services.TokenService, admins repository.AdminRepository) (*models.Admin, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil, false
	}
	tokenStr := strings.TrimPrefix(header, "Bearer ")

	claims, err := tokens.Validate(tokenStr)
	if err != nil {
		return nil, false
	}

	idStr, ok := claims["id"].(string)
	if !ok {
		return nil, false
	}
	id, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		return nil, false
	}

	admin, err := admins.FindByID(c.Request.Context(), id)
	if err != nil {
		return nil, false
	}
	return admin, true
}
