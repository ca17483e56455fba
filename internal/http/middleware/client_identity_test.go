package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/eerste-dingen/internal/platform/ctxutil"
)

func TestClientIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	existing := uuid.New()

	cases := []struct {
		name      string
		cookie    string
		wantReuse bool
	}{
		{"no cookie", "", false},
		{"valid cookie", existing.String(), true},
		{"garbage cookie", "not-a-uuid", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var seen uuid.UUID
			r := gin.New()
			r.Use(ClientIdentity(false))
			r.GET("/", func(c *gin.Context) {
				seen, _ = ctxutil.GetClientID(c.Request.Context())
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: ClientCookie, Value: tc.cookie})
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if seen == uuid.Nil {
				t.Fatalf("client id missing from context")
			}
			issued := rec.Result().Cookies()
			if tc.wantReuse {
				if seen != existing {
					t.Fatalf("client id: want=%s got=%s", existing, seen)
				}
				if len(issued) != 0 {
					t.Fatalf("valid cookie must not be reissued")
				}
				return
			}
			if len(issued) != 1 || issued[0].Name != ClientCookie || issued[0].Value != seen.String() {
				t.Fatalf("issued cookie: got=%v want value %s", issued, seen)
			}
			if !issued[0].HttpOnly {
				t.Fatalf("client cookie must be HttpOnly")
			}
		})
	}
}

func TestAttachTraceContextEchoesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AttachTraceContext())
	var td *ctxutil.TraceData
	r.GET("/", func(c *gin.Context) {
		td = ctxutil.GetTraceData(c.Request.Context())
		c.Status(http.StatusOK)
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(headerRequestID, "req-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if td == nil || td.RequestID != "req-123" || td.TraceID == "" {
		t.Fatalf("trace data: got=%+v", td)
	}
	if got := rec.Header().Get(headerRequestID); got != "req-123" {
		t.Fatalf("response request id: want=%q got=%q", "req-123", got)
	}
}
