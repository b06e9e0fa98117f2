package main

import (
	"context"
	"io"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin"
	foundation "github.com/estafette/estafette-foundation"
	"github.com/estafette/estafette-release-publisher/pkg/api"
	"github.com/estafette/estafette-release-publisher/pkg/clients/githubapi"
	"github.com/estafette/estafette-release-publisher/pkg/clients/registryapi"
	"github.com/estafette/estafette-release-publisher/pkg/clients/sourcerepo"
	"github.com/estafette/estafette-release-publisher/pkg/clients/toolchain"
	"github.com/estafette/estafette-release-publisher/pkg/services/releaser"
	"github.com/fsnotify/fsnotify"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	jaegerprom "github.com/uber/jaeger-lib/metrics/prometheus"
)

var (
	app       string
	version   string
	branch    string
	revision  string
	buildDate string
	goVersion = runtime.Version()
)

var (
	// flags
	prometheusMetricsAddress = kingpin.Flag("metrics-listen-address", "The address to listen on for Prometheus metrics requests.").Default(":9001").String()
	prometheusMetricsPath    = kingpin.Flag("metrics-path", "The path to listen for Prometheus metrics requests.").Default("/metrics").String()

	apiAddress = kingpin.Flag("api-listen-address", "The address to listen on for api HTTP requests.").Default(":5000").String()

	configFilePath = kingpin.Flag("config-file-path", "The path to the config file.").Default("/configs/config.yaml").String()
)

func main() {

	// parse command line parameters
	kingpin.Parse()

	// configure json logging
	initLogging()

	// init tracing from env vars
	closer := initJaeger(app)
	defer closer.Close()

	// define channels and waitgroup to gracefully shutdown the application
	sigs := make(chan os.Signal, 1)
	stop := make(chan struct{})
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	wg := &sync.WaitGroup{}

	// start prometheus
	go startPrometheus()

	// read config from yaml and environment
	configReader := api.NewConfigReader()
	config, err := configReader.ReadConfigFromFile(*configFilePath)
	if err != nil {
		log.Fatal().Err(err).Msgf("Failed reading configuration from %v", *configFilePath)
	}

	// watch for configmap updates
	foundation.WatchForFileChanges(*configFilePath, func(event fsnotify.Event) {
		log.Info().Msgf("Configmap at %v was updated, refreshing config...", *configFilePath)

		newConfig, err := configReader.ReadConfigFromFile(*configFilePath)
		if err != nil {
			log.Warn().Err(err).Msgf("Failed reading updated configuration from %v, keeping current config", *configFilePath)
			return
		}

		*config = *newConfig
	})

	// handle api requests
	srv := handleRequests(config, stop, wg)

	// wait for graceful shutdown to finish
	<-sigs
	log.Debug().Msg("Shutting down...")

	// shut down gracefully
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Graceful server shutdown failed")
	}

	log.Debug().Msg("Stopping goroutines...")
	close(stop)

	log.Debug().Msg("Awaiting waitgroup...")
	wg.Wait()

	log.Info().Msg("Server gracefully stopped")
}

func startPrometheus() {
	log.Debug().
		Str("port", *prometheusMetricsAddress).
		Str("path", *prometheusMetricsPath).
		Msg("Serving Prometheus metrics...")

	http.Handle(*prometheusMetricsPath, promhttp.Handler())

	if err := http.ListenAndServe(*prometheusMetricsAddress, nil); err != nil {
		log.Fatal().Err(err).Msg("Starting Prometheus listener failed")
	}
}

func initLogging() {

	// log as severity for stackdriver logging to recognize the level
	zerolog.LevelFieldName = "severity"

	// set some default fields added to all logs
	log.Logger = zerolog.New(os.Stdout).With().
		Timestamp().
		Str("app", app).
		Str("version", version).
		Logger()

	// use zerolog for any logs sent via standard log library
	stdlog.SetFlags(0)
	stdlog.SetOutput(log.Logger)

	// log startup message
	log.Info().
		Str("branch", branch).
		Str("revision", revision).
		Str("buildDate", buildDate).
		Str("goVersion", goVersion).
		Msgf("Starting %v...", app)
}

// initJaeger returns an instance of Jaeger Tracer that can be configured with environment variables
// https://github.com/jaegertracing/jaeger-client-go#environment-variables
func initJaeger(service string) io.Closer {

	cfg, err := jaegercfg.FromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("Generating Jaeger config from environment variables failed")
	}

	closer, err := cfg.InitGlobalTracer(service, jaegercfg.Metrics(jaegerprom.New()))
	if err != nil {
		log.Fatal().Err(err).Msg("Generating Jaeger tracer failed")
	}

	return closer
}

func createRouter() *gin.Engine {

	// run gin in release mode and other defaults
	gin.SetMode(gin.ReleaseMode)
	gin.DefaultWriter = log.Logger
	gin.DisableConsoleColor()

	// creates a router without any middleware by default
	router := gin.New()

	// logging and tracing middleware
	router.Use(api.ZeroLogMiddleware())
	router.Use(api.OpenTracingMiddleware())

	// recovery middleware recovers from any panics and writes a 500 if there was one
	router.Use(gin.Recovery())

	// gzip middleware
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	// liveness and readiness
	router.GET("/liveness", func(c *gin.Context) {
		c.String(http.StatusOK, "I'm alive!")
	})
	router.GET("/readiness", func(c *gin.Context) {
		c.String(http.StatusOK, "I'm ready!")
	})

	return router
}

func handleRequests(config *api.APIConfig, stopChannel <-chan struct{}, waitGroup *sync.WaitGroup) *http.Server {

	// creates clients and injects them into the service wrapped in its decorators
	githubapiClient := githubapi.NewClient(config)
	githubapiClient = githubapi.NewTracingClient(githubapiClient)
	githubapiClient = githubapi.NewMetricsClient(githubapiClient,
		api.NewRequestCounter("githubapi_client"),
		api.NewRequestHistogram("githubapi_client"))
	githubapiClient = githubapi.NewLoggingClient(githubapiClient)

	registryapiClient := registryapi.NewClient(config)
	registryapiClient = registryapi.NewTracingClient(registryapiClient)
	registryapiClient = registryapi.NewMetricsClient(registryapiClient,
		api.NewRequestCounter("registryapi_client"),
		api.NewRequestHistogram("registryapi_client"))
	registryapiClient = registryapi.NewLoggingClient(registryapiClient)

	sourcerepoClient := sourcerepo.NewClient(config)
	sourcerepoClient = sourcerepo.NewTracingClient(sourcerepoClient)
	sourcerepoClient = sourcerepo.NewLoggingClient(sourcerepoClient)

	toolchainClient := toolchain.NewClient(config)
	toolchainClient = toolchain.NewTracingClient(toolchainClient)
	toolchainClient = toolchain.NewLoggingClient(toolchainClient)

	releaserService := releaser.NewService(config, githubapiClient, registryapiClient, sourcerepoClient, toolchainClient)
	releaserService = releaser.NewTracingService(releaserService)
	releaserService = releaser.NewMetricsService(releaserService,
		api.NewRequestCounter("releaser_service"),
		api.NewRequestHistogram("releaser_service"))
	releaserService = releaser.NewLoggingService(releaserService)

	// listen to channels for release events
	releaseEvents := make(chan githubapi.ReleaseEvent, config.Pipeline.EventChannelBufferSize)
	dispatcher := releaser.NewEventDispatcher(stopChannel, waitGroup, config.Pipeline.MaxWorkers, releaserService, releaseEvents)
	dispatcher.Run()

	// listen to http calls
	log.Debug().
		Str("port", *apiAddress).
		Msg("Serving api calls...")

	// create and init router
	router := createRouter()

	eventHandler := releaser.NewHandler(config, releaserService, releaseEvents)
	router.POST("/api/integrations/github/events", eventHandler.Handle)

	// instantiate servers instead of using router.Run in order to handle graceful shutdown
	srv := &http.Server{
		Addr:           *apiAddress,
		Handler:        router,
		ReadTimeout:    time.Duration(config.APIServer.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(config.APIServer.WriteTimeout) * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Starting gin router failed")
		}
	}()

	return srv
}
