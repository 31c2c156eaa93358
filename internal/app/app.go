// Package app wires the services together and runs the Bubble Tea program.
package app

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/shapewise/internal/assessment"
	"github.com/abhisek/shapewise/internal/hints"
	"github.com/abhisek/shapewise/internal/llm"
	"github.com/abhisek/shapewise/internal/problemgen"
	"github.com/abhisek/shapewise/internal/router"
	"github.com/abhisek/shapewise/internal/screen"
	"github.com/abhisek/shapewise/internal/screens/home"
	sessionscreen "github.com/abhisek/shapewise/internal/screens/session"
	"github.com/abhisek/shapewise/internal/screens/welcome"
	"github.com/abhisek/shapewise/internal/stages"
	"github.com/abhisek/shapewise/internal/store"
	"github.com/abhisek/shapewise/internal/ui/layout"
)

// Options configures an application run.
type Options struct {
	// DBPath overrides the database location. Empty means the default
	// resolution (SHAPEWISE_DB, then XDG data dir).
	DBPath string

	// Username skips the welcome screen when set.
	Username string

	// OntologyPath points at an OWL/RDF file with hint text overrides.
	// Empty falls back to SHAPEWISE_ONTOLOGY, then to built-in hints.
	OntologyPath string
}

// deps are the wired services every screen draws from.
type deps struct {
	st        *store.Store
	stageSvc  *stages.Service
	assessSvc *assessment.Service
	hintProv  hints.Provider
	tailored  *hints.TailoredService
}

// headerMsg refreshes the pass counter in the header.
type headerMsg struct {
	passed int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	deps   *deps
	router *router.Router
	width  int
	height int

	username string
	passed   int
}

func newAppModel(d *deps, learner *store.Learner) AppModel {
	var initial screen.Screen
	var username string
	if learner != nil {
		initial = home.New(learner, d.stageSvc, d.assessSvc, d.hintProv, d.tailored)
		username = learner.Username
	} else {
		initial = welcome.New()
	}
	return AppModel{
		deps:     d,
		router:   router.New(initial),
		username: username,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case welcome.DoneMsg:
		learner, err := m.deps.st.Learners().GetOrCreate(context.Background(), msg.Username)
		if err != nil {
			return m, tea.Quit
		}
		m.username = learner.Username
		h := home.New(learner, m.deps.stageSvc, m.deps.assessSvc, m.deps.hintProv, m.deps.tailored)
		return m, m.router.Replace(h)

	case sessionscreen.ProgressChangedMsg:
		return m, m.refreshHeader()

	case headerMsg:
		m.passed = msg.passed
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// refreshHeader recounts passed stages off the main loop.
func (m AppModel) refreshHeader() tea.Cmd {
	d := m.deps
	username := m.username
	return func() tea.Msg {
		learner, err := d.st.Learners().GetOrCreate(context.Background(), username)
		if err != nil {
			return headerMsg{}
		}
		states, err := d.stageSvc.Overview(context.Background(), learner.ID)
		if err != nil {
			return headerMsg{}
		}
		passed := 0
		for _, st := range states {
			if st.Status == stages.StatusPassed {
				passed++
			}
		}
		return headerMsg{passed: passed}
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.username, m.passed, stages.Count, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// buildDeps opens the store and wires the services.
func buildDeps(opts Options) (*deps, error) {
	dbPath := opts.DBPath
	if dbPath == "" {
		var err error
		dbPath, err = store.DefaultDBPath()
		if err != nil {
			return nil, err
		}
	} else if err := store.EnsureDir(dbPath); err != nil {
		return nil, err
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	gen := problemgen.New(rand.NewSource(time.Now().UnixNano()))

	hintProv := loadHintProvider(opts.OntologyPath)
	tailored := hints.NewTailoredService(buildLLMProvider(st), hints.DefaultTailoredConfig())

	return &deps{
		st:        st,
		stageSvc:  stages.NewService(st.Attempts(), gen),
		assessSvc: assessment.NewService(st.PreAssessments(), gen),
		hintProv:  hintProv,
		tailored:  tailored,
	}, nil
}

// loadHintProvider tries the ontology file, falling back to the built-in
// hints when it is absent or unreadable.
func loadHintProvider(path string) hints.Provider {
	if path == "" {
		path = os.Getenv("SHAPEWISE_ONTOLOGY")
	}
	if path == "" {
		return hints.Static{}
	}
	ont, err := hints.LoadOntologyFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ontology %s not loaded: %v\n", path, err)
		return hints.Static{}
	}
	return ont
}

// buildLLMProvider resolves an LLM provider from the environment. Returns
// nil when none is configured; hints then stay static.
func buildLLMProvider(st *store.Store) llm.Provider {
	cfg := llm.ConfigFromEnv()
	if cfg.Validate() != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return nil
		}
		cfg = discovered
	}
	provider, err := llm.NewProvider(context.Background(), cfg, st.Events())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: LLM provider not available: %v\n", err)
		return nil
	}
	return provider
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	d, err := buildDeps(opts)
	if err != nil {
		return err
	}
	defer d.st.Close()

	var learner *store.Learner
	if opts.Username != "" {
		learner, err = d.st.Learners().GetOrCreate(context.Background(), opts.Username)
		if err != nil {
			return err
		}
	}

	p := tea.NewProgram(newAppModel(d, learner))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
