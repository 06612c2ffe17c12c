package main

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gogpu/ringbar"
	"github.com/gogpu/ringbar/integration/beepplayer"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play <file>",
	Short: "Play an audio file with an interactive seek ring",
	Long: `Play decodes an MP3, WAV, or FLAC file and draws the seek ring in the
terminal. Move the mouse along the ring to preview a position, click to
seek there and start playback.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		player, err := beepplayer.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open media: %w", err)
		}
		defer player.Close()

		frames := ringbar.NewFrameQueue()
		ring := ringbar.New(player,
			ringbar.WithRing(cfg.Ring.Ring()),
			ringbar.WithSamples(cfg.Ring.Samples),
			ringbar.WithFrameScheduler(frames),
		)
		defer ring.Close()

		m := newModel(ring, player, frames, cfg.Theme, filepath.Base(args[0]))
		p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
		_, err = p.Run()
		return err
	},
}

const (
	tickInterval = 100 * time.Millisecond
	seekStep     = 5 * time.Second

	minGridRows = 8
	maxGridRows = 48
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	targetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

type tickMsg time.Time

// cellKey identifies the grid geometry a cell classification was built
// for; a mismatch forces a rebuild.
type cellKey struct {
	rows, cols int
	length     float64
	measured   bool
}

// model drives the terminal seek ring. Each tick it pumps the player's
// events and flushes the frame queue, so every ring mutation happens on
// the bubbletea update goroutine.
type model struct {
	ring   *ringbar.SeekRing
	player *beepplayer.Player
	frames *ringbar.FrameQueue
	title  string

	keys keyMap
	help help.Model

	trackStyle  lipgloss.Style
	playedStyle lipgloss.Style
	markerStyle lipgloss.Style

	width, height int
	rows, cols    int

	// cells maps row*cols+col to the first arc length passing through
	// that cell, built by sampling the measured path.
	cells    map[int]float64
	cellsFor cellKey

	quitting bool
}

func newModel(ring *ringbar.SeekRing, player *beepplayer.Player, frames *ringbar.FrameQueue, theme ThemeConfig, title string) model {
	return model{
		ring:        ring,
		player:      player,
		frames:      frames,
		title:       title,
		keys:        newKeyMap(),
		help:        help.New(),
		trackStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Track)),
		playedStyle: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Played)),
		markerStyle: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Marker)),
	}
}

func (m model) Init() tea.Cmd {
	return m.tick()
}

func (m model) tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.player.Poll()
		m.frames.Flush()
		m.refreshCells()
		return m, m.tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layout()
		m.refreshCells()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	}

	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return *m, tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		if m.ring.Playing() {
			_ = m.player.Pause()
		} else {
			_ = m.player.Play()
		}

	case key.Matches(msg, m.keys.Back):
		m.seekBy(-seekStep)

	case key.Matches(msg, m.keys.Forward):
		m.seekBy(seekStep)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return *m, nil
}

// seekBy nudges the playback position, keeping it inside the media.
func (m *model) seekBy(delta time.Duration) {
	dur := m.ring.Duration()
	if dur <= ringbar.SeekEndGuard {
		return
	}
	target := m.ring.Position() + delta
	target = lo.Clamp(target, 0, dur-ringbar.SeekEndGuard)
	_ = m.player.Seek(target)
}

// handleMouse forwards pointer events to the ring in surface
// coordinates. Motion outside the grid clears the hover.
func (m *model) handleMouse(msg tea.MouseMsg) {
	inGrid := msg.X >= 0 && msg.X < m.cols && msg.Y >= 0 && msg.Y < m.rows
	if !inGrid {
		m.ring.PointerLeave()
		return
	}

	pt := m.surfacePoint(msg.X, msg.Y)
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.ring.PointerDown(pt)
	case msg.Action == tea.MouseActionMotion:
		m.ring.PointerMove(pt)
	}
}

// layout sizes the cell grid: twice as many columns as rows, since a
// terminal cell is about twice as tall as wide, so the ring stays
// square on screen. Four lines below the grid are reserved for status
// and help.
func (m *model) layout() {
	rows := min(m.height-4, m.width/2)
	m.rows = lo.Clamp(rows, minGridRows, maxGridRows)
	m.cols = m.rows * 2
}

// surfacePoint maps a cell to the surface position under its center.
func (m model) surfacePoint(col, row int) ringbar.Point {
	size := m.ring.Ring().Size
	return ringbar.Pt(
		(float64(col)+0.5)*size/float64(m.cols),
		(float64(row)+0.5)*size/float64(m.rows),
	)
}

// refreshCells rebuilds the cell classification when the grid or the
// measured path changed. The path is walked by arc length at half-cell
// steps; each touched cell keeps the first arc length through it.
func (m *model) refreshCells() {
	k := cellKey{
		rows:     m.rows,
		cols:     m.cols,
		length:   m.ring.PathLength(),
		measured: m.ring.Measured(),
	}
	if m.cells != nil && m.cellsFor == k {
		return
	}

	cells := make(map[int]float64)
	metric := m.ring.Metric()
	if metric != nil && m.cols > 0 {
		size := m.ring.Ring().Size
		total := metric.TotalLength()
		step := size / float64(m.cols) / 2
		if total > 0 && step > 0 {
			for l := 0.0; l <= total; l += step {
				pt := metric.PointAtLength(l)
				col := lo.Clamp(int(pt.X/size*float64(m.cols)), 0, m.cols-1)
				row := lo.Clamp(int(pt.Y/size*float64(m.rows)), 0, m.rows-1)
				idx := row*m.cols + col
				if _, seen := cells[idx]; !seen {
					cells[idx] = l
				}
			}
		}
	}

	m.cells = cells
	m.cellsFor = k
}

func (m model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderGrid())
	b.WriteByte('\n')
	b.WriteString(m.renderStatus())
	b.WriteByte('\n')
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m model) renderGrid() string {
	total := m.ring.PathLength()
	playedLen := m.ring.Progress() * total
	hover, hovering := m.ring.Hover()

	// The 10px hover mark vanishes at cell resolution; widen it to
	// about three cells of arc.
	markerHalf := ringbar.HoverMarkLength / 2
	if n := len(m.cells); n > 0 {
		markerHalf = math.Max(markerHalf, 1.5*total/float64(n))
	}

	var b strings.Builder
	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			l, on := m.cells[row*m.cols+col]
			if !on {
				b.WriteByte(' ')
				continue
			}
			switch {
			case hovering && wrapDist(l, hover, total) <= markerHalf:
				b.WriteString(m.markerStyle.Render("█"))
			case playedLen > 0 && l <= playedLen:
				b.WriteString(m.playedStyle.Render("█"))
			default:
				b.WriteString(m.trackStyle.Render("█"))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (m model) renderStatus() string {
	icon := "▶"
	if !m.ring.Playing() {
		icon = "⏸"
	}
	if m.ring.Ended() {
		icon = "⏹"
	}

	status := fmt.Sprintf("%s %s  %s / %s",
		icon,
		titleStyle.Render(m.title),
		formatDuration(m.ring.Position()),
		formatDuration(m.ring.Duration()),
	)

	if hover, hovering := m.ring.Hover(); hovering && m.ring.Duration() > 0 {
		progress := ringbar.ProgressAtLength(hover, m.ring.PathLength())
		target := ringbar.TimeForProgress(progress, m.ring.Duration())
		status += targetStyle.Render(fmt.Sprintf("  → %s", formatDuration(target)))
	} else if !m.ring.Measured() {
		status += dimStyle.Render("  measuring...")
	}

	return status
}

// wrapDist is the arc distance between two locations on a closed path.
func wrapDist(a, b, total float64) float64 {
	d := math.Abs(a - b)
	if total > 0 && total-d < d {
		d = total - d
	}
	return d
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	mins := d / time.Minute
	secs := (d % time.Minute) / time.Second
	return fmt.Sprintf("%d:%02d", mins, secs)
}
