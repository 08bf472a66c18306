package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/wellness/backend/internal/apierror"
	"github.com/JonnyWalker81/wellness/backend/internal/logger"
)

// Recovery turns a handler panic into a problem response.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Ctx(c.Request.Context()).Error("panic recovered",
					logger.String("panic", fmt.Sprint(r)),
				)
				apierror.AbortWithProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
			}
		}()
		c.Next()
	}
}
