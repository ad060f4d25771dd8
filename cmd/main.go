package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Vovarama1992/speakeasy/internal/ai"
	"github.com/Vovarama1992/speakeasy/internal/config"
	"github.com/Vovarama1992/speakeasy/internal/delivery"
	"github.com/Vovarama1992/speakeasy/internal/domain"
	"github.com/Vovarama1992/speakeasy/internal/error_notificator"
	"github.com/Vovarama1992/speakeasy/internal/gateway"
	"github.com/Vovarama1992/speakeasy/internal/infra"
	"github.com/Vovarama1992/speakeasy/internal/ports"
	"github.com/Vovarama1992/speakeasy/internal/session"
	"github.com/Vovarama1992/speakeasy/internal/speech"
	"github.com/Vovarama1992/speakeasy/internal/translation"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

const serviceName = "speakeasy"

func main() {

	// =========================================================================
	// ENV / LOGGER
	// =========================================================================

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// =========================================================================
	// ERROR NOTIFICATION
	// =========================================================================

	errInfra := error_notificator.NewInfra(zl)
	errService := error_notificator.NewService(errInfra)

	// =========================================================================
	// CLIENTS (TRANSLATE / STT / SUGGESTIONS / TTS)
	// =========================================================================

	googleOpts, err := infra.GoogleClientOptions(ctx, cfg.Google.APIKey, cfg.Google.CredentialsFile)
	if err != nil {
		log.Fatalf("failed to resolve google credentials: %v", err)
	}

	translator, err := translation.NewGoogleTranslator(ctx, googleOpts...)
	if err != nil {
		log.Fatalf("failed to init google translate: %v", err)
	}

	var transcriber ports.Transcriber
	switch {
	case cfg.Google.SpeechEnabled:
		stt, err := speech.NewGoogleSTTClient(ctx, googleOpts...)
		if err != nil {
			log.Fatalf("failed to init google speech: %v", err)
		}
		transcriber = stt
	case cfg.Deepgram.APIKey != "":
		dg, err := ai.NewDeepgramClient(cfg.Deepgram.APIKey, cfg.Deepgram.APIBaseURL, cfg.Deepgram.Model)
		if err != nil {
			log.Fatalf("failed to init deepgram: %v", err)
		}
		transcriber = dg
	default:
		info(zl, "speech-to-text disabled")
	}

	openAIClient, err := ai.NewOpenAIClient(ai.OpenAIConfig{
		APIKey:      cfg.OpenAI.APIKey,
		BaseURL:     cfg.OpenAI.BaseURL,
		Model:       cfg.OpenAI.Model,
		MaxTokens:   cfg.OpenAI.MaxTokens,
		Temperature: cfg.OpenAI.Temperature,
	}, ai.NewTokenLimiter(cfg.OpenAI.Model, cfg.OpenAI.InputTokenLimit))
	if err != nil {
		log.Fatalf("failed to init openai: %v", err)
	}

	var tts ports.Synthesizer
	if cfg.ElevenLabs.APIKey != "" {
		el, err := speech.NewElevenLabsClient(cfg.ElevenLabs.APIKey, cfg.ElevenLabs.VoiceID, cfg.ElevenLabs.BaseURL)
		if err != nil {
			log.Fatalf("failed to init elevenlabs: %v", err)
		}
		tts = el
	} else {
		info(zl, "server-side speech disabled, clients will synthesize")
	}

	// =========================================================================
	// STORAGE
	// =========================================================================

	var audioStore ports.AudioStore
	if cfg.S3.Enabled() {
		s3Client, err := infra.NewS3Client(ctx, infra.S3Options{
			Endpoint:  cfg.S3.Endpoint,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			Bucket:    cfg.S3.Bucket,
			Region:    cfg.S3.Region,
			Insecure:  cfg.S3.Insecure,
		})
		if err != nil {
			log.Fatalf("failed to init s3: %v", err)
		}
		audioStore = domain.NewAudioStore(s3Client)
	}

	// =========================================================================
	// DOMAIN SERVICES
	// =========================================================================

	gatewayService := gateway.NewService(translator, transcriber, openAIClient, errService)
	speechService := speech.NewService(tts, audioStore, zl)
	sessions := session.NewRegistry(gatewayService, speechService, errService)

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	// HANDLERS
	gatewayHandler := delivery.NewGatewayHandler(gatewayService, zl, cfg.Server.BodyLimitBytes)
	sessionHandler := delivery.NewSessionHandler(sessions, zl, cfg.Server.BodyLimitBytes)

	r.With(httputil.RecoverMiddleware).Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("pong"))
	})

	// ROUTES
	delivery.RegisterRoutes(r, gatewayHandler, sessionHandler, delivery.RouteOptions{
		RateLimitRPM: cfg.Server.RateLimitRPM,
		StaticDir:    cfg.Server.StaticDir,
	})

	// =========================================================================
	// BACKGROUND JOBS
	// =========================================================================

	go func() {
		ticker := time.NewTicker(cfg.Session.SweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := sessions.Sweep(cfg.Session.IdleTTL); n > 0 {
					info(zl, fmt.Sprintf("[session-sweep] removed %d idle sessions, %d left", n, sessions.Len()))
				}
			}
		}
	}()

	// =========================================================================
	// START SERVER
	// =========================================================================

	ln, port, err := delivery.ListenWithProbe("", cfg.Server.Port, cfg.Server.PortProbeLimit)
	if err != nil {
		log.Fatalf("failed to bind: %v", err)
	}
	if port != cfg.Server.Port {
		info(zl, fmt.Sprintf("port %d is busy, using %d", cfg.Server.Port, port))
	}
	info(zl, fmt.Sprintf("listening at :%d", port))

	srv := &http.Server{Handler: r, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

func info(zl *logger.ZapLogger, msg string) {
	zl.Log(logger.LogEntry{Level: "info", Message: msg, Service: serviceName})
}
