package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	tea "github.com/charmbracelet/bubbletea"

	"runpace/internal/auth"
	"runpace/internal/config"
	"runpace/internal/service"
	"runpace/internal/store"
	"runpace/internal/strava"
	"runpace/internal/tui"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg == nil {
		return nil
	}

	logger, logFile, err := config.InitLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logFile.Close()

	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	raceSvc := service.NewRaceService(db, cfg.Training, logger)
	querySvc := service.NewQueryService(db, cfg.Training)

	// Config changes (a new training.vdot, a different window) take effect now
	if err := raceSvc.RecomputePredictions(); err != nil {
		logger.Warn().Err(err).Msg("recomputing predictions at startup")
	}

	var syncSvc *service.SyncService
	if cfg.StravaEnabled() {
		client, err := connectStrava(ctx, db, cfg, logger)
		if err != nil {
			// Manual races still work without Strava
			logger.Error().Err(err).Msg("strava unavailable")
			fmt.Printf("Strava import disabled: %v\n", err)
		} else {
			syncSvc = service.NewSyncService(client, db, raceSvc, logger)
		}
	}

	app := tui.NewApp(querySvc, raceSvc, syncSvc, tui.NewUnits(cfg.Display))
	p := tea.NewProgram(app, tea.WithAltScreen())

	logger.Info().Bool("strava", syncSvc != nil).Msg("starting")
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}

// loadConfig loads and validates the config file, creating an example on
// first run. A nil config with nil error means the user must edit the file.
func loadConfig() (*config.Config, error) {
	configDir, _ := config.GetConfigDir()

	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		fmt.Println("No config file found. Creating example config...")
		if err := config.CreateExample(); err != nil {
			return nil, fmt.Errorf("creating example config: %w", err)
		}
		fmt.Printf("\nConfig written to:\n  %s/config.json\n\n", configDir)
		fmt.Println("Add your Strava API credentials there to import races.")
		fmt.Println("Get them from: https://www.strava.com/settings/api")
		fmt.Println()
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Printf("Config validation failed: %v\n\n", err)
		fmt.Printf("Please edit the config file at:\n  %s/config.json\n", configDir)
		return nil, nil
	}

	return cfg, nil
}

// connectStrava returns an API client, running the OAuth flow if no usable
// token is stored
func connectStrava(ctx context.Context, db *store.DB, cfg *config.Config, logger zerolog.Logger) (*strava.Client, error) {
	oauthCfg := auth.NewOAuthConfig(auth.Config{
		ClientID:     cfg.Strava.ClientID,
		ClientSecret: cfg.Strava.ClientSecret,
	})

	storedAuth, err := db.GetAuth()
	if errors.Is(err, store.ErrNoAuth) {
		fmt.Println("No Strava authentication found. Starting OAuth flow...")
		if storedAuth, err = authenticate(ctx, db, oauthCfg); err != nil {
			return nil, fmt.Errorf("authentication: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("checking auth: %w", err)
	}

	persist := func(t *oauth2.Token) error {
		logger.Debug().Time("expiry", t.Expiry).Msg("strava token refreshed")
		return db.UpdateTokens(t.AccessToken, t.RefreshToken, t.Expiry)
	}

	token := &oauth2.Token{
		AccessToken:  storedAuth.AccessToken,
		RefreshToken: storedAuth.RefreshToken,
		Expiry:       storedAuth.ExpiresAt,
	}
	tokenSource := auth.NewTokenSource(ctx, oauthCfg, token, persist)

	if tokenSource.IsExpired() {
		logger.Debug().Time("expiry", token.Expiry).Msg("stored strava token expired, refreshing")
	}

	// A revoked refresh token only shows up when we try to use it
	if _, err := tokenSource.Token(); err != nil {
		logger.Warn().Err(err).Msg("stored strava token rejected")
		fmt.Println("Stored Strava token is invalid or expired. Re-authenticating...")
		if err := db.ClearAuth(); err != nil {
			return nil, fmt.Errorf("clearing stale auth: %w", err)
		}
		if storedAuth, err = authenticate(ctx, db, oauthCfg); err != nil {
			return nil, fmt.Errorf("re-authentication: %w", err)
		}
		token = &oauth2.Token{
			AccessToken:  storedAuth.AccessToken,
			RefreshToken: storedAuth.RefreshToken,
			Expiry:       storedAuth.ExpiresAt,
		}
		tokenSource = auth.NewTokenSource(ctx, oauthCfg, token, persist)
	}

	logger.Info().
		Int64("athlete_id", storedAuth.AthleteID).
		Time("token_expiry", tokenSource.CurrentToken().Expiry).
		Msg("strava connected")
	return strava.NewClient(tokenSource), nil
}

func authenticate(ctx context.Context, db *store.DB, oauthCfg *oauth2.Config) (*store.Auth, error) {
	result, err := auth.Authenticate(ctx, oauthCfg, os.Stdout)
	if err != nil {
		return nil, err
	}

	storedAuth := &store.Auth{
		AthleteID:    result.AthleteID,
		AccessToken:  result.Token.AccessToken,
		RefreshToken: result.Token.RefreshToken,
		ExpiresAt:    result.Token.Expiry,
	}

	if err := db.SaveAuth(storedAuth); err != nil {
		return nil, fmt.Errorf("saving auth: %w", err)
	}

	fmt.Println()
	fmt.Printf("Successfully authenticated as athlete %d!\n", result.AthleteID)
	return storedAuth, nil
}
