package interceptors

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/shopfront/paypal.express.api/config"
	"github.com/shopfront/paypal.express.api/helpers"
	"github.com/shopfront/paypal.express.api/utils"
	"golang.org/x/time/rate"
)

const visitorTTL = 3 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitInterceptor limits how often each shopper can start a PayPal session
type RateLimitInterceptor struct {
	Sessions *helpers.SessionStore
	Limit    rate.Limit
	Burst    int
	// TrustedProxies are the peers allowed to report the client address in X-Forwarded-For
	TrustedProxies []string

	mtx       sync.Mutex
	visitors  map[string]*visitor
	lastSweep time.Time
}

// NewRateLimitInterceptor allows cfg.ExpressRateLimit requests per minute per shopper. The burst
// is at least one request.
func NewRateLimitInterceptor(cfg *config.Config, sessions *helpers.SessionStore) *RateLimitInterceptor {
	limit := rate.Inf
	if cfg.ExpressRateLimit > 0 {
		limit = rate.Every(time.Minute / time.Duration(cfg.ExpressRateLimit))
	}
	burst := cfg.ExpressRateBurst
	if burst < 1 {
		burst = 1
	}
	return &RateLimitInterceptor{
		Sessions:       sessions,
		Limit:          limit,
		Burst:          burst,
		TrustedProxies: cfg.TrustedProxies,
	}
}

// RateLimitIntercept rejects requests over the shopper's limit with 429
func (interceptor *RateLimitInterceptor) RateLimitIntercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := interceptor.identity(r)
		if !interceptor.limiter(key).Allow() {
			log.InfoR(r, "RateLimitInterceptor: too many requests", log.Data{"shopper": key})
			utils.WriteMessage(w, r, http.StatusTooManyRequests, "too many requests")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// identity prefers the session order and falls back to the client address. X-Forwarded-For is
// only read when the request comes from a trusted proxy.
func (interceptor *RateLimitInterceptor) identity(r *http.Request) string {
	if interceptor.Sessions != nil {
		if id, err := interceptor.Sessions.OrderID(r); err == nil && id != "" {
			return "order:" + id
		}
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}

	if interceptor.trusted(ip) {
		if forwarded := strings.TrimSpace(strings.Split(r.Header.Get("X-Forwarded-For"), ",")[0]); forwarded != "" {
			return "ip:" + forwarded
		}
	}

	return "ip:" + ip
}

func (interceptor *RateLimitInterceptor) trusted(ip string) bool {
	for _, proxy := range interceptor.TrustedProxies {
		if proxy == ip {
			return true
		}
	}
	return false
}

func (interceptor *RateLimitInterceptor) limiter(key string) *rate.Limiter {
	interceptor.mtx.Lock()
	defer interceptor.mtx.Unlock()

	now := time.Now()
	if interceptor.visitors == nil {
		interceptor.visitors = make(map[string]*visitor)
	}

	if now.Sub(interceptor.lastSweep) > time.Minute {
		for k, v := range interceptor.visitors {
			if now.Sub(v.lastSeen) > visitorTTL {
				delete(interceptor.visitors, k)
			}
		}
		interceptor.lastSweep = now
	}

	v, ok := interceptor.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(interceptor.Limit, interceptor.Burst)}
		interceptor.visitors[key] = v
	}
	v.lastSeen = now

	return v.limiter
}
