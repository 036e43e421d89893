package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"accuracy_wms/internal/infrastructure/tenancy"

	"github.com/gin-gonic/gin"
)

func newTenantRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TenantIdentifier())
	r.GET("/probe", func(c *gin.Context) {
		tenant, _ := tenancy.FromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"tenant": tenant})
	})
	return r
}

func TestTenantIdentifier(t *testing.T) {
	t.Run("no configured tenants passes through", func(t *testing.T) {
		t.Setenv("TENANTS", "")
		r := newTenantRouter()

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		t.Setenv("TENANTS", "acme")
		r := newTenantRouter()

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown tenant is rejected", func(t *testing.T) {
		t.Setenv("TENANTS", "acme")
		r := newTenantRouter()

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("X-Tenant-ID", "stark")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("known tenant lands on the request context", func(t *testing.T) {
		t.Setenv("TENANTS", "acme,globex")
		r := newTenantRouter()

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("X-Tenant-ID", "globex")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := w.Body.String(); body != `{"tenant":"globex"}` {
			t.Fatalf("unexpected body: %s", body)
		}
	})
}
