package main

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"

	"github.com/gin-gonic/gin"
	ort "github.com/yalue/onnxruntime_go"

	"github.com/seapix/fishdex/config"
	"github.com/seapix/fishdex/onnx"
	"github.com/seapix/fishdex/server"
	"github.com/seapix/fishdex/web"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	slog.Info("Starting Fishdex")

	ort.SetSharedLibraryPath(onnx.LibPath())
	if err := ort.InitializeEnvironment(); err != nil {
		slog.Error("Failed to initialize ONNX Runtime environment", slog.String("error", err.Error()))
		return
	}
	defer ort.DestroyEnvironment()

	if err := server.Init(ctx); err != nil {
		// Not fatal: the UI explains the situation and a model can still
		// be uploaded through the API.
		slog.Warn("Starting without a model", slog.String("error", err.Error()))
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()
	r.Use(server.Metrics())
	r.SetHTMLTemplate(web.Templates())

	staticFS, err := fs.Sub(web.FS, "static")
	if err != nil {
		slog.Error("Failed to mount static assets", slog.String("error", err.Error()))
		return
	}
	r.StaticFS("/static", http.FS(staticFS))

	r.GET("/", server.IndexHandler)
	r.POST("/api/classify", server.ClassifyHandler)
	r.POST("/api/model", server.ModelUploadHandler)
	r.GET("/api/species/:name", server.SpeciesHandler)
	r.GET("/api/sound/:kind", server.SoundHandler)
	r.GET("/samples/:name", server.SampleHandler)
	r.GET("/health", server.HealthHandler)
	r.GET("/metrics", server.MetricsHandler())

	addr := config.C().Host + ":" + config.C().Port
	slog.Info("Listening on", slog.String("address", addr))
	go func() {
		if err := r.Run(addr); err != nil {
			slog.Error("Server error", slog.String("error", err.Error()))
			cancel()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")
}
