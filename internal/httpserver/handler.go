package httpserver

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rshade/listpager/internal/logging"
	"github.com/rshade/listpager/internal/render"
)

// TraceHeader carries the per-request trace ID back to the client.
const TraceHeader = "X-Trace-ID"

const htmlContentType = "text/html; charset=utf-8"

func (srv *HTTPServer) mapHandlers() {
	srv.gin.Use(srv.requestLogger(), srv.recovery())

	srv.gin.GET("/", srv.index)
	srv.gin.GET("/api/page", srv.page)
	srv.gin.GET("/health", srv.healthCheck)
}

// index renders the requested page as HTML.
func (srv *HTTPServer) index(c *gin.Context) {
	sink := render.NewHTMLSink(c.Request.URL, srv.kind, srv.title)
	view, err := srv.pager.Render(c.Request.URL, sink)
	if err != nil {
		_ = c.Error(err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err = sink.Execute(&buf, view.State); err != nil {
		_ = c.Error(err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, htmlContentType, buf.Bytes())
}

// page returns the view model for the requested page as JSON.
func (srv *HTTPServer) page(c *gin.Context) {
	c.JSON(http.StatusOK, srv.pager.Evaluate(c.Request.URL))
}

func (srv *HTTPServer) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"items":  srv.pager.Len(),
		"kind":   srv.kind,
	})
}

// requestLogger tags each request with a trace ID and logs it once it
// completes.
func (srv *HTTPServer) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		traceID := c.GetHeader(TraceHeader)
		if traceID == "" {
			traceID = logging.NewTraceID()
		}
		c.Header(TraceHeader, traceID)

		l := srv.l.With().Str("trace_id", traceID).Logger()
		ctx := logging.ContextWithTraceID(c.Request.Context(), traceID)
		c.Request = c.Request.WithContext(l.WithContext(ctx))

		c.Next()

		evt := l.Info()
		if len(c.Errors) > 0 {
			evt = l.Error().Str("errors", c.Errors.String())
		}
		evt.Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("query", c.Request.URL.RawQuery).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

// recovery turns panics into 500s and logs them.
func (srv *HTTPServer) recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		logging.FromContext(c.Request.Context()).Error().
			Interface("panic", recovered).
			Str("path", c.Request.URL.Path).
			Msg("recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	})
}
