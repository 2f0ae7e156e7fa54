package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/WelcomeWebWorks/Boiler-Plate/internal/config"
	"github.com/WelcomeWebWorks/Boiler-Plate/internal/handler"
	"github.com/gin-gonic/gin"
)

func TestSetupRouterRegistersRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.AppConfig{SessionSecret: "test-secret", SiteBaseURL: "https://acme.example"}
	r := SetupRouter(cfg, handler.NewAPI(cfg))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 from ping, got %d", w.Code)
	}

	// 未注册的路径返回 404
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown route, got %d", w.Code)
	}

	// 不依赖内容库的路由可直接服务
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/robots.txt", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 from robots.txt, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/og?title=Hi", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 from og renderer, got %d", w.Code)
	}

	// 缺少签名时撤销端点拒绝请求
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/revalidate", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 from unsigned revalidate, got %d", w.Code)
	}
}
