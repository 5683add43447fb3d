package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ytget/snapshot/internal/config"
	"github.com/ytget/snapshot/internal/logo"
	"github.com/ytget/snapshot/internal/session"
	"github.com/ytget/snapshot/internal/tokenlist"
	"github.com/ytget/snapshot/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.snapshot"
	AppName = "SnapShot"

	LogTimeFormat = "15:04:05"
)

// Command line flags
var (
	routeFlag   string
	envFileFlag string
	debugFlag   bool
)

var rootCmd = &cobra.Command{
	Use:          "snapshot",
	Short:        "Browse token lists by category",
	Long:         `Browse published token lists by category, search them by symbol, name or address, and open token logos.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Version = version
	rootCmd.Flags().StringVar(&routeFlag, "route", "", "initial route, e.g. /Ethereum/usdc (defaults to the last route)")
	rootCmd.Flags().StringVar(&envFileFlag, "env-file", "", "environment file with SNAPSHOT_* overrides (default .env if present)")
	rootCmd.Flags().BoolVar(&debugFlag, "debug", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging(debug bool) {
	log.SetReportTimestamp(true)
	log.SetTimeFormat(LogTimeFormat)
	if debug {
		log.SetLevel(log.DebugLevel)
	}
}

func run(cmd *cobra.Command, args []string) error {
	setupLogging(debugFlag)
	log.Info("SnapShot starting", "version", version)

	if err := config.LoadEnvFile(envFileFlag); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewSnapshotTheme())

	settings := config.NewSettings(myApp)
	if n := config.ApplyEnv(settings); n > 0 {
		log.Info("environment overrides applied", "count", n)
	}

	// Initialize services
	source := tokenlist.NewHTTPSource(settings.TokenSourceOptions())
	sess := session.New(source, settings.SessionOptions())
	logos := logo.NewService(settings.LogoOptions())
	defer func() {
		sess.Close()
		logos.Close()
	}()

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, sess, logos, settings)

	initialRoute := routeFlag
	if initialRoute == "" {
		initialRoute = settings.GetLastRoute()
	}
	sess.Start(initialRoute)

	// Show and run
	myWindow.ShowAndRun()
	log.Info("SnapShot stopped")
	return nil
}
