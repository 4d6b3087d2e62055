package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/louvel/streamradio/internal/config"
	"github.com/louvel/streamradio/internal/errmsg"
	"github.com/louvel/streamradio/internal/keymap"
	"github.com/louvel/streamradio/internal/playback"
	"github.com/louvel/streamradio/internal/player"
	"github.com/louvel/streamradio/internal/playlist"
	"github.com/louvel/streamradio/internal/state"
	"github.com/louvel/streamradio/internal/ui/render"
	"github.com/louvel/streamradio/internal/ui/statusbar"
	"github.com/louvel/streamradio/internal/ui/ticker"
)

type tickMsg time.Time

type tickerMsg time.Time

type streamMsg playback.StreamChange

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))

type model struct {
	cfg      *config.Config
	svc      *playback.Service
	sub      *playback.Subscription
	stateMgr *state.Manager
	resolver *keymap.Resolver
	ticker   ticker.Model
	help     help.Model
	keys     helpKeys

	current playback.StreamChange
	width   int
	height  int
}

// helpKeys adapts the keymap bindings to the bubbles help component.
type helpKeys struct {
	bindings []key.Binding
}

func newHelpKeys() helpKeys {
	bindings := make([]key.Binding, 0, len(keymap.All))
	for _, b := range keymap.All {
		display := strings.Join(b.Keys, "/")
		if display == " " {
			display = "space"
		}
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(b.Keys...),
			key.WithHelp(display, b.Description),
		))
	}
	return helpKeys{bindings: bindings}
}

func (h helpKeys) ShortHelp() []key.Binding {
	if len(h.bindings) > 4 {
		return h.bindings[:4]
	}
	return h.bindings
}

func (h helpKeys) FullHelp() [][]key.Binding {
	const perColumn = 4
	var columns [][]key.Binding
	for i := 0; i < len(h.bindings); i += perColumn {
		columns = append(columns, h.bindings[i:min(i+perColumn, len(h.bindings))])
	}
	return columns
}

func initialModel() (model, error) {
	cfg, err := config.Load()
	if err != nil {
		return model{}, err
	}

	pl, err := playlist.Load(cfg.Playlist)
	if err != nil {
		return model{}, err
	}

	stateMgr, err := state.Open()
	if err != nil {
		return model{}, err
	}

	svc, err := playback.New(pl, player.NewSim(simDurations(pl)), stateMgr, state.NewSessionStore())
	if err != nil {
		stateMgr.Close()
		return model{}, err
	}

	return model{
		cfg:      cfg,
		svc:      svc,
		sub:      svc.Subscribe(),
		stateMgr: stateMgr,
		resolver: keymap.NewResolver(keymap.All),
		ticker:   ticker.New(cfg.Ticker.Messages),
		help:     help.New(),
		keys:     newHelpKeys(),
	}, nil
}

// simDurations synthesizes media lengths for the simulated player: a
// short tail past the last song, or a fixed length for unsegmented
// streams.
func simDurations(pl *playlist.Playlist) map[string]float64 {
	durations := make(map[string]float64, pl.Len())
	for _, s := range pl.Streams() {
		if s.Segmented() {
			durations[s.VideoID] = s.Songs[len(s.Songs)-1].End + 30
		} else {
			durations[s.VideoID] = 300
		}
	}
	return durations
}

func (m model) Init() tea.Cmd {
	m.svc.Start()
	cmds := []tea.Cmd{tickCmd(m.cfg.TickInterval()), waitForStream(m.sub)}
	if !m.ticker.Empty() {
		cmds = append(cmds, tickerCmd(m.cfg.TickerInterval()))
	}
	return tea.Batch(cmds...)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		m.svc.Tick()
		return m, tickCmd(m.cfg.TickInterval())

	case tickerMsg:
		m.ticker = m.ticker.Advance()
		return m, tickerCmd(m.cfg.TickerInterval())

	case streamMsg:
		m.current = playback.StreamChange(msg)
		return m, waitForStream(m.sub)
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.resolver.Resolve(msg.String()) {
	case keymap.ActionQuit:
		m.svc.Close()
		m.stateMgr.Close()
		return m, tea.Quit
	case keymap.ActionPlayPause:
		m.svc.PlayPause()
	case keymap.ActionNextSong:
		m.svc.NextSong()
	case keymap.ActionPrevSong:
		m.svc.PrevSong()
	case keymap.ActionNextStream:
		m.svc.NextStream()
	case keymap.ActionPrevStream:
		m.svc.PrevStream(false)
	case keymap.ActionPrevStreamLiteral:
		m.svc.PrevStream(true)
	case keymap.ActionToggleYap:
		m.svc.ToggleYap()
	case keymap.ActionCycleLoop:
		m.svc.CycleLoop()
	case keymap.ActionToggleShuffle:
		m.svc.ToggleShuffle()
	case keymap.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func tickerCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickerMsg(t)
	})
}

func waitForStream(sub *playback.Subscription) tea.Cmd {
	return func() tea.Msg {
		select {
		case e := <-sub.StreamChanged:
			return streamMsg(e)
		case <-sub.Done:
			return nil
		}
	}
}

func (m model) View() string {
	width := m.width
	if width <= 0 {
		width = 80
	}

	stream := m.svc.CurrentStream()
	title := m.current.Title
	if title == "" && stream != nil {
		title = stream.Title
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(render.Truncate(title, width)))
	b.WriteString("\n")

	song := m.svc.CurrentSong()
	b.WriteString(statusbar.Render(statusbar.State{
		Status:   m.svc.StatusText(),
		Playing:  m.svc.PlayerState() == player.Playing,
		Paused:   m.svc.PlayerState() == player.Paused,
		Position: m.svc.Position(),
		End:      song.End,
		Yap:      m.svc.Yap(),
		Loop:     m.svc.Loop(),
		Shuffle:  m.svc.Shuffle(),
	}, width))

	if !m.ticker.Empty() {
		b.WriteString("\n")
		b.WriteString(m.ticker.Render(width))
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	m, err := initialModel()
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpInitialize, err))
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
