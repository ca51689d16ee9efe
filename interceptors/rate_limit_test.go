package interceptors

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopfront/paypal.express.api/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitRateLimitInterceptor(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ExpressRateLimit = 1
	cfg.ExpressRateBurst = 2

	serve := func(interceptor *RateLimitInterceptor, req *http.Request) int {
		w := httptest.NewRecorder()
		interceptor.RateLimitIntercept(GetTestHandler()).ServeHTTP(w, req)
		return w.Code
	}

	Convey("Requests beyond the burst are rejected", t, func() {
		interceptor := NewRateLimitInterceptor(cfg, testSessionStore())

		So(serve(interceptor, httptest.NewRequest("POST", "/paypal", nil)), ShouldEqual, http.StatusOK)
		So(serve(interceptor, httptest.NewRequest("POST", "/paypal", nil)), ShouldEqual, http.StatusOK)
		So(serve(interceptor, httptest.NewRequest("POST", "/paypal", nil)), ShouldEqual, http.StatusTooManyRequests)
	})

	Convey("Shoppers are limited separately", t, func() {
		sessions := testSessionStore()
		interceptor := NewRateLimitInterceptor(cfg, sessions)

		for i := 0; i < 2; i++ {
			So(serve(interceptor, requestWithOrder(sessions, "POST", "/paypal", "order1")), ShouldEqual, http.StatusOK)
		}
		So(serve(interceptor, requestWithOrder(sessions, "POST", "/paypal", "order1")), ShouldEqual, http.StatusTooManyRequests)
		So(serve(interceptor, requestWithOrder(sessions, "POST", "/paypal", "order2")), ShouldEqual, http.StatusOK)
	})

	Convey("Forwarded address identifies anonymous shoppers behind a trusted proxy", t, func() {
		proxied := config.DefaultConfig()
		proxied.TrustedProxies = []string{"10.0.0.1"}
		interceptor := NewRateLimitInterceptor(proxied, nil)

		req := httptest.NewRequest("POST", "/paypal", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
		So(interceptor.identity(req), ShouldEqual, "ip:203.0.113.7")

		req = httptest.NewRequest("POST", "/paypal", nil)
		req.RemoteAddr = "198.51.100.2:5000"
		So(interceptor.identity(req), ShouldEqual, "ip:198.51.100.2")
	})

	Convey("Forwarded address from an untrusted peer is ignored", t, func() {
		interceptor := NewRateLimitInterceptor(cfg, nil)

		for i := 0; i < 2; i++ {
			req := httptest.NewRequest("POST", "/paypal", nil)
			req.RemoteAddr = "198.51.100.2:5000"
			req.Header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.%d", i))
			So(interceptor.identity(req), ShouldEqual, "ip:198.51.100.2")
			So(serve(interceptor, req), ShouldEqual, http.StatusOK)
		}

		req := httptest.NewRequest("POST", "/paypal", nil)
		req.RemoteAddr = "198.51.100.2:5000"
		req.Header.Set("X-Forwarded-For", "203.0.113.99")
		So(serve(interceptor, req), ShouldEqual, http.StatusTooManyRequests)
	})

	Convey("Zero burst still lets a request through", t, func() {
		noBurst := config.DefaultConfig()
		noBurst.ExpressRateLimit = 1
		noBurst.ExpressRateBurst = 0
		interceptor := NewRateLimitInterceptor(noBurst, nil)

		So(interceptor.Burst, ShouldEqual, 1)
		So(serve(interceptor, httptest.NewRequest("POST", "/paypal", nil)), ShouldEqual, http.StatusOK)
		So(serve(interceptor, httptest.NewRequest("POST", "/paypal", nil)), ShouldEqual, http.StatusTooManyRequests)
	})

	Convey("No limit configured", t, func() {
		unlimited := config.DefaultConfig()
		unlimited.ExpressRateLimit = 0
		interceptor := NewRateLimitInterceptor(unlimited, nil)

		for i := 0; i < 20; i++ {
			So(serve(interceptor, httptest.NewRequest("POST", "/paypal", nil)), ShouldEqual, http.StatusOK)
		}
	})
}
