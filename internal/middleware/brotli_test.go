package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
)

func newBrotliRouter(chunks ...[]byte) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Brotli())
	r.GET("/body", func(c *gin.Context) {
		c.Status(http.StatusOK)
		for _, chunk := range chunks {
			c.Writer.Write(chunk)
		}
	})
	return r
}

func doBrotliRequest(t *testing.T, r *gin.Engine) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/body", nil)
	req.Header.Set("Accept-Encoding", "gzip, deflate, br")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBrotliCompressesLargeResponse(t *testing.T) {
	body := bytes.Repeat([]byte("a"), 2048)
	w := doBrotliRequest(t, newBrotliRouter(body))

	if enc := w.Header().Get("Content-Encoding"); enc != "br" {
		t.Fatalf("Content-Encoding = %q, want br", enc)
	}
	decoded, err := io.ReadAll(brotli.NewReader(w.Body))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(decoded, body) {
		t.Fatalf("decoded body differs from original")
	}
}

// A short chunk written after the stream has started must be encoded into
// the same stream, not appended raw after it. Chunked producers like the
// metrics handler end with small writes.
func TestBrotliTrailingShortChunk(t *testing.T) {
	head := bytes.Repeat([]byte("b"), 2048)
	tail := []byte("trailing chunk")
	w := doBrotliRequest(t, newBrotliRouter(head, tail))

	if enc := w.Header().Get("Content-Encoding"); enc != "br" {
		t.Fatalf("Content-Encoding = %q, want br", enc)
	}
	decoded, err := io.ReadAll(brotli.NewReader(w.Body))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(decoded, append(append([]byte{}, head...), tail...)) {
		t.Fatalf("decoded body differs from original")
	}
}

func TestBrotliLeavesSmallResponseAlone(t *testing.T) {
	w := doBrotliRequest(t, newBrotliRouter([]byte("tiny")))

	if enc := w.Header().Get("Content-Encoding"); enc != "" {
		t.Fatalf("Content-Encoding = %q, want empty", enc)
	}
	if w.Body.String() != "tiny" {
		t.Fatalf("body = %q, want tiny", w.Body.String())
	}
}

func TestBrotliSkipsWithoutAcceptHeader(t *testing.T) {
	body := strings.Repeat("c", 2048)
	r := newBrotliRouter([]byte(body))
	req := httptest.NewRequest(http.MethodGet, "/body", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if enc := w.Header().Get("Content-Encoding"); enc != "" {
		t.Fatalf("Content-Encoding = %q, want empty", enc)
	}
	if w.Body.String() != body {
		t.Fatalf("body was altered without client opt-in")
	}
}
