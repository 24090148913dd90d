package middleware

import (
	"github.com/gin-gonic/gin"
)

const CtxRealIPKey = "real_ip"

// TrustProxies limits which direct peers may set the client IP through
// X-Forwarded-For / X-Real-IP. Entries are IPs or CIDRs; an empty list trusts
// no proxy, so c.ClientIP() is always the socket peer.
func TrustProxies(engine *gin.Engine, proxies []string) error {
	if len(proxies) == 0 {
		proxies = nil
	}
	return engine.SetTrustedProxies(proxies)
}

// RealIP stores the client IP under "real_ip". Forwarded headers only count
// when the peer is a trusted proxy, see TrustProxies.
func RealIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(CtxRealIPKey, c.ClientIP())
		c.Next()
	}
}
