// Package bot owns the gateway connection lifecycle and dispatches
// prefix commands to the registry.
package bot

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/jkivela/construct/internal/bot/commands"
	"github.com/jkivela/construct/internal/config"
	"github.com/jkivela/construct/internal/sysinfo"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// State is the connection lifecycle phase. Transitions are driven only
// by discordgo callbacks and Close.
type State int32

const (
	StateDisconnected State = iota
	StateConnecting
	StateReady
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateReady:
		return "ready"
	default:
		return "disconnected"
	}
}

// Bot owns the session handle and the command registry. Construct one
// with New; there is no package-level instance.
type Bot struct {
	cfg      config.Settings
	log      *zap.Logger
	session  *discordgo.Session
	registry *commands.Registry
	started  time.Time
	state    atomic.Int32

	keepalive     *http.Server
	keepaliveAddr string
}

// New builds the session and populates the registry. A duplicate
// command registration surfaces here, before any connection attempt.
func New(cfg config.Settings, log *zap.Logger) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("creating Discord session: %w", err)
	}

	b := &Bot{
		cfg:      cfg,
		log:      log,
		session:  session,
		registry: commands.NewRegistry(),
		started:  time.Now(),
	}

	builtins := []commands.Command{
		commands.Ping(),
		commands.Hello(),
		commands.Info(b.started, sysinfo.Collect),
		commands.Say(),
	}
	builtins = append(builtins, commands.Help(b.registry))
	for _, cmd := range builtins {
		if err := b.registry.Register(cmd); err != nil {
			return nil, fmt.Errorf("registering commands: %w", err)
		}
	}

	return b, nil
}

// State reports the current lifecycle phase.
func (b *Bot) State() State {
	return State(b.state.Load())
}

// Start registers the event handlers and opens the gateway connection.
func (b *Bot) Start() error {
	b.session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	b.session.AddHandler(b.onReady)
	b.session.AddHandler(b.onDisconnect)
	b.session.AddHandler(b.onGuildCreate)
	b.session.AddHandler(b.onGuildDelete)
	b.session.AddHandler(b.onMessageCreate)

	b.state.Store(int32(StateConnecting))
	if err := b.session.Open(); err != nil {
		b.state.Store(int32(StateDisconnected))
		return fmt.Errorf("opening connection: %w", err)
	}
	return nil
}

// Close shuts the keep-alive server and the gateway connection down.
func (b *Bot) Close() error {
	defer b.state.Store(int32(StateDisconnected))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	b.stopKeepAlive(ctx)

	return b.session.Close()
}

// Run starts the bot and blocks until SIGINT or SIGTERM, then closes
// the connection.
func (b *Bot) Run() error {
	if err := b.Start(); err != nil {
		return err
	}
	b.startKeepAlive()

	b.log.Info("bot is running, press CTRL-C to exit")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	<-sc

	b.log.Info("shutting down")
	return b.Close()
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.state.Store(int32(StateReady))
	b.log.Info("connected to Discord",
		zap.String("user", s.State.User.String()),
		zap.Int("guilds", len(r.Guilds)))

	if b.cfg.StatusText != "" {
		if err := setStatus(s, b.cfg.StatusText); err != nil {
			b.log.Warn("setting status failed", zap.Error(err))
		}
	}
}

func (b *Bot) onDisconnect(s *discordgo.Session, d *discordgo.Disconnect) {
	b.state.Store(int32(StateDisconnected))
	b.log.Warn("gateway disconnected")
}

func (b *Bot) onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	b.log.Info("joined guild",
		zap.String("name", g.Name),
		zap.String("id", g.ID))
}

func (b *Bot) onGuildDelete(s *discordgo.Session, g *discordgo.GuildDelete) {
	b.log.Info("left guild", zap.String("id", g.ID))
}
