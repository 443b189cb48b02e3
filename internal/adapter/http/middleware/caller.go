package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"webara_portal/internal/domain/entities"
	"webara_portal/internal/usecase"
	"webara_portal/pkg"

	"github.com/gin-gonic/gin"
)

const callerKey = "webara.caller"

var (
	errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authentication required", http.StatusUnauthorized)
	errRoleResolution  = pkg.NewDomainErrorSimple("ROLE_RESOLUTION_FAILED", "Unable to verify permissions, please retry later", http.StatusInternalServerError)
)

// ResolveCaller verifies the bearer token once per request and stores the
// resulting Caller on the gin context. Requests without a token continue as
// anonymous callers; the use cases decide whether that is enough.
func ResolveCaller(resolver usecase.ICallerResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}

		caller, err := resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, usecase.ErrUnauthenticated):
				c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			case errors.Is(err, usecase.ErrRoleResolution):
				c.AbortWithStatusJSON(errRoleResolution.HTTPStatus, errRoleResolution.ToHTTPError())
			default:
				log.Printf("[auth][middleware] resolve failed path=%s err=%v", c.FullPath(), err)
				appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred, please retry later", err, http.StatusInternalServerError)
				c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			}
			return
		}

		c.Set(callerKey, caller)
		c.Next()
	}
}

// CallerFrom returns the Caller stored by ResolveCaller, or an anonymous one.
func CallerFrom(c *gin.Context) entities.Caller {
	if v, ok := c.Get(callerKey); ok {
		if caller, ok := v.(entities.Caller); ok {
			return caller
		}
	}
	return entities.Caller{}
}

// SetCaller stores caller on the context. Used by tests and internal callers
// that have already resolved identity.
func SetCaller(c *gin.Context, caller entities.Caller) {
	c.Set(callerKey, caller)
}

// bearerToken returns ("", true) for a missing header and false for a header
// that is not a bearer credential.
func bearerToken(header string) (string, bool) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", true
	}
	const prefix = "bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
