package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/gpessoni/pokedex/internal/backend"
	"github.com/gpessoni/pokedex/internal/collection"
	"github.com/gpessoni/pokedex/internal/config"
	"github.com/gpessoni/pokedex/internal/log"
	"github.com/gpessoni/pokedex/internal/pokeapi"
	"github.com/gpessoni/pokedex/internal/session"
	"github.com/gpessoni/pokedex/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var showVersion bool
	var loginFlow bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.BoolVar(&loginFlow, "login", false, "sign in from the terminal and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("pokedex %s\n", Version)
		return
	}

	if err := run(loginFlow); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(loginFlow bool) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting pokedex", "version", Version)

	store, err := session.OpenStore(filepath.Join(config.DefaultDataPath(), "session.db"))
	if err != nil {
		return fmt.Errorf("failed to open session store: %w", err)
	}
	defer store.Close()

	sess := session.New(store, logger)
	if sess.Restore() {
		if user, ok := sess.User(); ok {
			logger.Info("restored session", "user", user.Email)
		}
	}

	authClient := backend.NewClient(cfg.Backend.URL, sess, logger)

	if loginFlow {
		return runLoginFlow(cfg, authClient, sess)
	}

	catalog := pokeapi.NewClient(cfg.Catalog.URL, logger)
	collectionSvc := collection.NewService(authClient, logger)

	model := tui.NewModel(
		catalog,
		authClient,
		authClient,
		collectionSvc,
		sess,
		cfg.Catalog.PageSize,
		time.Duration(cfg.UI.ToastSeconds)*time.Second,
		logger,
	)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	// Any authenticated request can invalidate the session; route that into
	// the update loop so the UI lands on the login screen exactly once.
	sess.OnInvalidate(func() {
		p.Send(tui.SessionExpiredMsg{})
	})

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// runLoginFlow signs in from the terminal without starting the TUI. Useful
// for headless setups and for scripting.
func runLoginFlow(cfg *config.Config, client *backend.Client, sess *session.Session) error {
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Email: ")
	email, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cred, err := client.Login(ctx, email, string(password))
	if err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}
	sess.Establish(cred)

	// Persist the effective configuration so a first run leaves an editable
	// config file next to the stored credential.
	if err := config.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Printf("✓ Signed in as %s\n", cred.User.Name)
	fmt.Println()
	fmt.Println("Run pokedex again to start the application.")
	return nil
}
