package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"ideahub/config"
	"ideahub/helper"
)

var HTTPHelper = &helper.HTTPHelper{}

// Claims is the per-request identity the Flask original kept in an ambient
// session dict: who the caller is, their tier, and their join date.
type Claims struct {
	UserID      uint   `json:"user_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	AccountType string `json:"account_type"`
	DateJoined  string `json:"date_joined"`
	jwt.RegisteredClaims
}

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			HTTPHelper.SendUnauthorizedError(c, "Login required", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			HTTPHelper.SendUnauthorizedError(c, "Bearer token required", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		claims := &Claims{}

		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return config.JWTSecret, nil
		})

		if err != nil {
			HTTPHelper.SendUnauthorizedError(c, "Invalid token: "+err.Error(), HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		if !token.Valid {
			HTTPHelper.SendUnauthorizedError(c, "Token is not valid", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("name", claims.Name)
		c.Set("email", claims.Email)
		c.Set("account_type", claims.AccountType)
		c.Set("date_joined", claims.DateJoined)

		c.Next()
	}
}

// RequireTier gates a route on the caller's account tier. It must run after
// AuthMiddleware.
func RequireTier(tiers ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		accountType, exists := c.Get("account_type")
		if !exists {
			HTTPHelper.SendUnauthorizedError(c, "Account tier not found", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		tierStr := accountType.(string)
		for _, tier := range tiers {
			if tierStr == tier {
				c.Next()
				return
			}
		}

		HTTPHelper.SendForbiddenError(c, "Unauthorized access", HTTPHelper.EmptyJsonMap())
		c.Abort()
	}
}
