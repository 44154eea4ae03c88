package middleware

import "github.com/gin-gonic/gin"

// operatorIDKey is the key used to store the acting operator's ID in the Gin
// context. Using a custom type prevents collisions.
const operatorIDKey = contextKey("operatorID")

// OperatorHeader identifies the back-office operator performing the request.
const OperatorHeader = "X-Operator-ID"

// defaultOperator attributes writes made without an operator header, e.g. by
// scheduled jobs or local tooling.
const defaultOperator = "system"

// OperatorMiddleware resolves the acting operator for audit attribution.
// Requests without the header are attributed to the system operator.
func OperatorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		operatorID := c.GetHeader(OperatorHeader)
		if operatorID == "" {
			operatorID = defaultOperator
		}
		c.Set(string(operatorIDKey), operatorID)
		c.Next()
	}
}

// GetOperatorFromContext retrieves the acting operator's ID from the Gin
// context, falling back to the system operator when unset.
func GetOperatorFromContext(c *gin.Context) string {
	operatorVal, exists := c.Get(string(operatorIDKey))
	if !exists {
		return defaultOperator
	}
	operatorID, ok := operatorVal.(string)
	if !ok || operatorID == "" {
		return defaultOperator
	}
	return operatorID
}
