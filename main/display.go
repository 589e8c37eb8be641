package main

import (
	"fmt"
	"gpsutc/datetime"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

/***** VARIABLE ********************************/

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	extraStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	hintStyle  = lipgloss.NewStyle().Faint(true)
)

/***** STRUCT **********************************/

type line struct {
	label string
	date  string
	extra string
}

/***********************************************/

type tickMsg time.Time

/***********************************************/

// The polling display: redraws the three lines every cfg.Interval.
type clockModel struct {
	clk   Clock
	cfg   Config
	lines []line
}

/***** FUNCTION ********************************/

func (l line) String() string {
	return fmt.Sprintf("%-5s | %s | %s", l.label, l.date, l.extra)
}

/***********************************************/

func (l line) styled() string {
	return labelStyle.Render(fmt.Sprintf("%-5s", l.label)) + " | " + l.date + " | " + extraStyle.Render(l.extra)
}

/***********************************************/

func takeSnapshot(clk Clock, cfg Config) datetime.Snapshot {
	return datetime.NewSnapshot(clk.Now().Unix(), cfg.TzOffset, cfg.Leap)
}

/***********************************************/

func renderLines(s datetime.Snapshot, cfg Config) []line {
	return []line{
		{"Local", s.Local.Format(cfg.Format), "timezone " + tzName(cfg.TzOffset)},
		{"UTC", s.Utc.Format(cfg.Format), fmt.Sprintf("MJD %.5f", s.Mjd)},
		{"GPS", s.Gps.Format(cfg.Format), s.GpsWs.Format("week {W} {s} s")},
	}
}

/***********************************************/

// Name of a fixed offset from UTC, e.g. UTC+8 or UTC-3:30.
func tzName(offset int) string {
	sign := '+'

	if offset < 0 {
		sign = '-'
		offset = -offset
	}

	hour := offset / datetime.HOUR2SECOND
	minute := offset % datetime.HOUR2SECOND / datetime.MINUTE2SECOND

	if minute != 0 {
		return fmt.Sprintf("UTC%c%d:%02d", sign, hour, minute)
	}

	return fmt.Sprintf("UTC%c%d", sign, hour)
}

/***********************************************/

func printOnce(w io.Writer, clk Clock, cfg Config) error {
	for _, l := range renderLines(takeSnapshot(clk, cfg), cfg) {
		if _, err := fmt.Fprintln(w, l.String()); err != nil {
			return err
		}
	}

	return nil
}

/***********************************************/

func newClockModel(clk Clock, cfg Config) clockModel {
	return clockModel{clk, cfg, renderLines(takeSnapshot(clk, cfg), cfg)}
}

/***********************************************/

func (m clockModel) tick() tea.Cmd {
	return tea.Tick(m.cfg.Interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

/***********************************************/

func (m clockModel) Init() tea.Cmd {
	return m.tick()
}

/***********************************************/

func (m clockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tickMsg:
		m.lines = renderLines(takeSnapshot(m.clk, m.cfg), m.cfg)
		return m, m.tick()
	}

	return m, nil
}

/***********************************************/

func (m clockModel) View() string {
	var b strings.Builder

	for _, l := range m.lines {
		b.WriteString(l.styled())
		b.WriteString("\n")
	}

	b.WriteString(hintStyle.Render("q: quit"))
	b.WriteString("\n")
	return b.String()
}

/***********************************************/
