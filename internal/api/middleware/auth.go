package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/AK-1225/SPONproject/pkg/response"
)

const (
	CtxUserID   = "auth_user_id"
	CtxUserType = "auth_user_type"
	CtxUserName = "auth_user_name"
)

// Auth 解析 Bearer JWT，把 {sub, user_type, name} 放进 gin context。
// 引擎信任外部身份，这里只做签名校验。
func Auth(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			response.Unauthorized(c, "missing bearer token")
			c.Abort()
			return
		}
		tok, err := jwt.Parse(strings.TrimPrefix(h, "Bearer "), func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return key, nil
		})
		if err != nil || !tok.Valid {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}
		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			response.Unauthorized(c, "invalid claims")
			c.Abort()
			return
		}
		if sub, _ := claims["sub"].(string); sub != "" {
			c.Set(CtxUserID, sub)
		}
		if ut, _ := claims["user_type"].(string); ut != "" {
			c.Set(CtxUserType, ut)
		}
		if name, _ := claims["name"].(string); name != "" {
			c.Set(CtxUserName, name)
		}
		c.Next()
	}
}

// UserID 当前请求的用户 id（Auth 之后使用）
func UserID(c *gin.Context) string {
	return c.GetString(CtxUserID)
}

func UserName(c *gin.Context) string {
	return c.GetString(CtxUserName)
}
