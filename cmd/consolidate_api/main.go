// Package main Evaluation Consolidator API
// @title Evaluation Consolidator API
// @version 1.0
// @description Consolidates batches of free-text evaluation reports into per-criterion statistics and a Markdown diagnosis
// @contact.name API Support
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	_ "github.com/DjordjeVuckovic/eval-consolidator/docs"
	"github.com/DjordjeVuckovic/eval-consolidator/internal/api/router"
	apiserver "github.com/DjordjeVuckovic/eval-consolidator/internal/api/server"
	"github.com/DjordjeVuckovic/eval-consolidator/internal/consolidator"
	"github.com/DjordjeVuckovic/eval-consolidator/internal/settings"
	pkgserver "github.com/DjordjeVuckovic/eval-consolidator/pkg/server"
)

func main() {
	sCfg, err := apiserver.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(sCfg.LogLevel)

	appSettings, err := loadSettings(sCfg.SettingsPath)
	if err != nil {
		slog.Error("Failed to load consolidation settings", "path", sCfg.SettingsPath, "error", err)
		os.Exit(1)
	}

	heathChecker := pkgserver.NewOkHealthChecker()

	s := apiserver.New(sCfg, heathChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Evaluation Consolidator API is running")
	})

	svc := consolidator.New(appSettings)
	router.NewConsolidateRouter(s.Echo, svc).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, draining in-flight requests...")
	}()

	err = s.Start()
	if err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}

func loadSettings(path string) (*settings.Settings, error) {
	if path == "" {
		slog.Info("CONSOLIDATION_CONFIG is not set, using default settings")
		return settings.Default(), nil
	}
	return settings.LoadFromFile(path)
}
