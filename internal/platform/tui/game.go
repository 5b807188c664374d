package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cortexprime/cortex/internal/catalog"
	"github.com/cortexprime/cortex/internal/core"
	"github.com/cortexprime/cortex/internal/drills/matrix"
	"github.com/cortexprime/cortex/internal/drills/mentalmath"
	"github.com/cortexprime/cortex/internal/drills/reaction"
	"github.com/cortexprime/cortex/internal/drills/sequence"
	"github.com/cortexprime/cortex/internal/drills/speedmatch"
	"github.com/cortexprime/cortex/internal/drills/stroop"
	"github.com/cortexprime/cortex/internal/drills/thinkaloud"
	"github.com/cortexprime/cortex/internal/progress"
	"github.com/cortexprime/cortex/internal/session"
	"github.com/cortexprime/cortex/internal/storage"
)

// GameModel is the Bubble Tea model for playing one game session.
// It owns the session exclusively: it feeds it tick and input events
// and reads its state to render.
type GameModel struct {
	sess  *session.Session
	cat   *catalog.Catalog
	store *storage.Store
	user  string
	cfg   core.RuntimeConfig
	keys  *KeyMapper

	ta textarea.Model

	started  bool
	signalOn bool
	signalAt time.Time
	roundSeq int // ties per-round timers to the round that armed them
	flash    string
	saved    bool

	done     bool // back to the menu
	quitting bool // exit the app
}

// NewGameModel creates a play model for the given session.
func NewGameModel(sess *session.Session, cat *catalog.Catalog, store *storage.Store, user string, cfg core.RuntimeConfig) GameModel {
	ta := textarea.New()
	ta.Placeholder = "Share your thoughts... (The more detailed, the better!)"
	ta.SetWidth(60)
	ta.SetHeight(8)
	ta.CharLimit = 0

	return GameModel{
		sess:  sess,
		cat:   cat,
		store: store,
		user:  user,
		cfg:   cfg,
		keys:  NewKeyMapper(),
		ta:    ta,
	}
}

// Done reports whether the user asked to return to the menu.
func (m GameModel) Done() bool { return m.done }

// IsQuitting reports whether the user asked to exit entirely.
func (m GameModel) IsQuitting() bool { return m.quitting }

// Init waits for the user to start; nothing ticks yet.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and drives the session.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.cfg.ScreenW = msg.Width
		m.cfg.ScreenH = msg.Height
		m.ta.SetWidth(min(msg.Width-4, 72))
		return m, nil

	case TickMsg:
		return m.handleTick()

	case signalMsg:
		if msg.seq == m.roundSeq && m.sess.State() == session.StateActive {
			m.signalOn = true
			m.signalAt = time.Now()
		}
		return m, nil

	case hideMsg:
		if msg.seq == m.roundSeq {
			if r, ok := m.sess.Round().(*matrix.Round); ok {
				r.Hide()
			}
		}
		return m, nil

	case analyzedMsg:
		m.sess.Evaluate()
		m.persist()
		return m, nil
	}

	return m, nil
}

// handleTick consumes one second of the session countdown.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if !m.started || m.sess.State() != session.StateActive {
		return m, nil
	}

	m.sess.Tick()
	if m.sess.State() == session.StateCompleted {
		m.persist()
		return m, nil
	}
	return m, tickCmd()
}

// handleKey routes keyboard input by session state.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The textarea swallows most keys while composing a response.
	if m.started && m.sess.State() == session.StateActive {
		if _, ok := m.sess.Round().(*thinkaloud.Round); ok {
			return m.handleComposeKey(msg)
		}
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.sess.State() {
	case session.StateIdle:
		if action == ActionConfirm {
			return m.start()
		}

	case session.StateActive:
		return m.handlePlayKey(msg, action)

	case session.StateCompleted:
		switch action {
		case ActionRestart:
			m.sess.Reset()
			m.saved = false
			m.flash = ""
			return m.afterRound()
		case ActionBack, ActionConfirm:
			return m.leave()
		}
	}

	if action == ActionBack {
		return m.leave()
	}

	return m, nil
}

// handleComposeKey handles input while writing a think-aloud response.
func (m GameModel) handleComposeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		return m.leave()
	case "ctrl+d":
		text := m.ta.Value()
		if len(text) < thinkaloud.MinResponseLen {
			return m, nil
		}
		m.sess.Submit(thinkaloud.Response{Text: text})
		if m.sess.State() == session.StateEvaluating {
			return m, analyzeCmd()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

// handlePlayKey maps a key press to a drill input for the live round.
func (m GameModel) handlePlayKey(msg tea.KeyMsg, action Action) (tea.Model, tea.Cmd) {
	if action == ActionBack {
		return m.leave()
	}

	digit := m.keys.MapDigit(msg)

	switch r := m.sess.Round().(type) {
	case *mentalmath.Round:
		if digit >= 0 && digit < mentalmath.ChoiceCount {
			return m.submit(mentalmath.Answer{Value: r.Choices[digit]})
		}

	case *sequence.Round:
		if digit >= 0 && digit < sequence.ChoiceCount {
			return m.submit(sequence.Answer{Value: r.Choices[digit]})
		}

	case *stroop.Round:
		if digit >= 0 && digit < len(stroop.Palette) {
			return m.submit(stroop.Answer{Color: stroop.Palette[digit]})
		}

	case *reaction.Round:
		if action == ActionTap || action == ActionConfirm {
			if !m.signalOn {
				return m.submit(reaction.Tap{Early: true})
			}
			return m.submit(reaction.Tap{Reaction: time.Since(m.signalAt)})
		}

	case *matrix.Round:
		if digit >= 0 && digit < matrix.Cells {
			return m.submit(matrix.Tap{Cell: digit})
		}

	case *speedmatch.Round:
		switch action {
		case ActionSame:
			return m.submit(speedmatch.Answer{Same: true})
		case ActionDiff:
			return m.submit(speedmatch.Answer{Same: false})
		}
	}

	return m, nil
}

// start begins the session and arms the first round's timers.
func (m GameModel) start() (tea.Model, tea.Cmd) {
	m.started = true
	m.saved = false
	m.sess.Start()
	return m.afterRound()
}

// submit feeds one input to the session and reacts to the outcome.
func (m GameModel) submit(in core.Input) (tea.Model, tea.Cmd) {
	m.sess.Submit(in)

	if m.sess.State() == session.StateEvaluating {
		return m, analyzeCmd()
	}

	res := m.sess.LastResult()
	if res.Done {
		switch {
		case res.Points > 0:
			m.flash = correctStyle.Render(fmt.Sprintf("+%d", res.Points))
		case res.Points < 0:
			m.flash = wrongStyle.Render(fmt.Sprintf("%d", res.Points))
		default:
			m.flash = wrongStyle.Render("✗")
		}
		return m.afterRound()
	}

	return m, nil
}

// afterRound arms timers for the freshly generated round.
func (m GameModel) afterRound() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	m.roundSeq++
	m.signalOn = false

	switch r := m.sess.Round().(type) {
	case *reaction.Round:
		cmds = append(cmds, signalCmd(r.Delay, m.roundSeq))
	case *matrix.Round:
		cmds = append(cmds, hideCmd(m.roundSeq))
	case *thinkaloud.Round:
		m.ta.Reset()
		cmds = append(cmds, textarea.Blink)
		m.ta.Focus()
	}

	if m.sess.State() == session.StateActive && m.sess.Timed() {
		cmds = append(cmds, tickCmd())
	}

	return m, tea.Batch(cmds...)
}

// leave exits the game screen back to the menu. Abandoning
// mid-session simply discards the session.
func (m GameModel) leave() (tea.Model, tea.Cmd) {
	m.done = true
	return m, tea.Quit
}

// persist saves the completed session and pushes the progress update.
// Best effort: storage failures never interrupt play.
func (m *GameModel) persist() {
	if m.saved || m.sess.State() != session.StateCompleted {
		return
	}
	m.saved = true

	if m.store == nil {
		return
	}

	def := m.sess.Definition()
	score := m.sess.Score()
	xp := m.sess.Reward()

	//nolint:errcheck // Best-effort save, session result is still shown
	m.store.SaveSession(m.user, def.ID, score, xp)
	//nolint:errcheck // Best-effort save
	m.store.RecordDomainScore(m.user, def.Domain, score)

	totalXP := xp
	gamesPlayed := 1
	if player, err := m.store.Player(m.user); err == nil && player != nil {
		totalXP = player.TotalXP + xp
		gamesPlayed = player.GamesPlayed + 1
	}
	//nolint:errcheck // Fire-and-forget from the session's viewpoint
	m.store.Record(m.user, progress.UpdateFor(totalXP, gamesPlayed))
}

// View renders the current screen.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.sess.State() {
	case session.StateIdle:
		return m.viewReady()
	case session.StateActive:
		return m.viewPlaying()
	case session.StateEvaluating:
		return m.viewAnalyzing()
	default:
		return m.viewFinished()
	}
}

func (m GameModel) viewReady() string {
	def := m.sess.Definition()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s  %s", def.Emoji, def.Name)))
	b.WriteString("\n\n")
	b.WriteString(subtleStyle.Render(def.Description))
	b.WriteString("\n")
	if d, ok := m.cat.DomainByID(def.Domain); ok {
		b.WriteString(domainStyle(m.cat, def.Domain).Render(fmt.Sprintf("%s %s", d.Icon, d.Name)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if m.sess.Timed() {
		b.WriteString(subtleStyle.Render(fmt.Sprintf("%d seconds on the clock.", m.sess.Duration())))
		b.WriteString("\n")
	}
	b.WriteString("\nPress Enter to start · Esc to go back\n")
	return b.String()
}

func (m GameModel) viewPlaying() string {
	def := m.sess.Definition()

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s %s", def.Emoji, def.Name)))
	if m.sess.Timed() {
		b.WriteString(subtleStyle.Render(fmt.Sprintf("   %ds", m.sess.Remaining())))
	}
	b.WriteString("   ")
	b.WriteString(scoreStyle.Render(fmt.Sprintf("Score %d", m.sess.Score())))
	if m.flash != "" {
		b.WriteString("  " + m.flash)
	}
	b.WriteString("\n\n")

	switch r := m.sess.Round().(type) {
	case *mentalmath.Round:
		b.WriteString(m.viewChoices(r.Question, r.Choices[:]))
	case *sequence.Round:
		terms := make([]string, len(r.Terms))
		for i, t := range r.Terms {
			terms[i] = fmt.Sprintf("%d", t)
		}
		b.WriteString(m.viewChoices(strings.Join(terms, ", ")+", ?", r.Choices[:]))
	case *stroop.Round:
		b.WriteString(m.viewStroop(r))
	case *reaction.Round:
		b.WriteString(m.viewReaction())
	case *matrix.Round:
		b.WriteString(m.viewMatrix(r))
	case *speedmatch.Round:
		b.WriteString(m.viewSpeedMatch(r))
	case *thinkaloud.Round:
		b.WriteString(m.viewThinkAloud(r))
	}

	return b.String()
}

func (m GameModel) viewChoices(question string, choices []int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(question))
	b.WriteString("\n\n")

	cells := make([]string, len(choices))
	for i, c := range choices {
		cells[i] = choiceStyle.Render(fmt.Sprintf("%d· %d", i+1, c))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	b.WriteString("\n\n")
	b.WriteString(subtleStyle.Render("Press 1-4 to answer"))
	return b.String()
}

func (m GameModel) viewStroop(r *stroop.Round) string {
	var b strings.Builder
	b.WriteString(subtleStyle.Render("Tap the COLOR, not the word!"))
	b.WriteString("\n\n")

	ink := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(stroop.ColorCode(r.Ink)))
	b.WriteString(ink.Render(strings.ToUpper(r.Word)))
	b.WriteString("\n\n")

	cells := make([]string, len(stroop.Palette))
	for i, name := range stroop.Palette {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(stroop.ColorCode(name)))
		cells[i] = choiceStyle.Render(fmt.Sprintf("%d· %s", i+1, swatch.Render(name)))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	b.WriteString("\n\n")
	b.WriteString(subtleStyle.Render("Press 1-5 to answer"))
	return b.String()
}

func (m GameModel) viewReaction() string {
	pad := lipgloss.NewStyle().
		Bold(true).
		Padding(2, 8).
		Border(lipgloss.ThickBorder())

	if m.signalOn {
		return pad.
			BorderForeground(lipgloss.Color("#22c55e")).
			Foreground(lipgloss.Color("#22c55e")).
			Render("TAP NOW!  (space)")
	}
	return pad.
		BorderForeground(lipgloss.Color("#ef4444")).
		Foreground(lipgloss.Color("#ef4444")).
		Render("Wait for green...")
}

func (m GameModel) viewMatrix(r *matrix.Round) string {
	var b strings.Builder
	if r.Revealed {
		b.WriteString(subtleStyle.Render("Memorize!"))
	} else {
		b.WriteString(subtleStyle.Render("Tap the squares! (1-9)"))
	}
	b.WriteString("\n\n")

	for row := 0; row < matrix.Size; row++ {
		for col := 0; col < matrix.Size; col++ {
			idx := row*matrix.Size + col
			cell := "·"
			switch {
			case r.Revealed && r.Target[idx]:
				cell = correctStyle.Render("■")
			case !r.Revealed && r.User[idx]:
				cell = scoreStyle.Render("■")
			default:
				cell = subtleStyle.Render(fmt.Sprintf("%d", idx+1))
			}
			b.WriteString(" " + cell + " ")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m GameModel) viewSpeedMatch(r *speedmatch.Round) string {
	var b strings.Builder
	b.WriteString(subtleStyle.Render("Previous"))
	b.WriteString("\n" + r.Previous + "\n\n")
	b.WriteString(subtleStyle.Render("Current"))
	b.WriteString("\n" + r.Current + "\n\n")
	b.WriteString(correctStyle.Render("[s] SAME"))
	b.WriteString("   ")
	b.WriteString(wrongStyle.Render("[d] DIFFERENT"))
	return b.String()
}

func (m GameModel) viewThinkAloud(r *thinkaloud.Round) string {
	var b strings.Builder
	b.WriteString(promptBoxStyle.Render(r.Prompt))
	b.WriteString("\n\n")
	b.WriteString(m.ta.View())
	b.WriteString("\n")

	words := len(strings.Fields(m.ta.Value()))
	b.WriteString(subtleStyle.Render(fmt.Sprintf("%d words", words)))
	if len(m.ta.Value()) < thinkaloud.MinResponseLen {
		b.WriteString(subtleStyle.Render("  ·  keep writing to enable analysis"))
	} else {
		b.WriteString(subtleStyle.Render("  ·  Ctrl+D to analyze"))
	}
	return b.String()
}

func (m GameModel) viewAnalyzing() string {
	return "\n" + titleStyle.Render("Analyzing your response...") + "\n" +
		subtleStyle.Render("Evaluating your thinking") + "\n"
}

func (m GameModel) viewFinished() string {
	def := m.sess.Definition()
	ev := m.sess.Evaluation()

	var b strings.Builder
	b.WriteString("\n")
	if ev != nil {
		b.WriteString(titleStyle.Render("Analysis Complete!"))
	} else {
		b.WriteString(titleStyle.Render("Game Complete!"))
	}
	b.WriteString("\n\n")
	b.WriteString(scoreStyle.Render(fmt.Sprintf("%d", m.sess.Score())))
	if ev != nil {
		b.WriteString(subtleStyle.Render("  thinking score"))
	} else {
		b.WriteString(subtleStyle.Render("  points earned"))
	}
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render(fmt.Sprintf("+%d XP · %s", m.sess.Reward(), def.Name)))
	b.WriteString("\n\n")

	if ev != nil {
		b.WriteString(panelStrengthStyle.Render("Strengths\n" + bulleted(ev.Strengths)))
		b.WriteString("\n")
		b.WriteString(panelImproveStyle.Render("Areas to Improve\n" + bulleted(ev.Improvements)))
		b.WriteString("\n")
		b.WriteString(panelFeedbackStyle.Render(ev.Feedback))
		b.WriteString("\n\n")
	}

	b.WriteString(subtleStyle.Render("r play again · esc back"))
	b.WriteString("\n")
	return b.String()
}

func bulleted(items []string) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString("\n• " + item)
	}
	return b.String()
}
