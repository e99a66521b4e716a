// Package shell is the entry point for the interactive drawing session.
package shell

import (
	"os"
	"strconv"

	"src.pendraw.sh/pkg/asm"
	"src.pendraw.sh/pkg/config"
	"src.pendraw.sh/pkg/diag"
	"src.pendraw.sh/pkg/logutil"
	"src.pendraw.sh/pkg/prog"
	"src.pendraw.sh/pkg/sys"
)

var logger = logutil.GetLogger("[shell] ")

// Program is the shell subprogram. It builds the configuration from the
// defaults, the configuration file and flags, in increasing order of
// precedence, and then runs Interact.
type Program struct {
	width, maxRows    intFlag
	bg, fg, cursor    stringFlag
	fit, noConfig     bool
	configPath        string
	stdinIsTerminal   func(*os.File) bool
	terminalColumnsOf func(*os.File) int
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	fs.Var(&p.width, "width", "Width of the canvas (default 70)")
	fs.Var(&p.maxRows, "max-rows", "Maximum number of canvas rows, 0 for no limit (default 10000)")
	fs.Var(&p.bg, "bg", "Character for unmarked cells")
	fs.Var(&p.fg, "fg", "Character for marked cells")
	fs.Var(&p.cursor, "cursor", "Character for the cursor")
	fs.BoolVar(&p.fit, "fit", false, "Use the width of the terminal as the width of the canvas")
	fs.StringVar(&p.configPath, "config", "", "Path to the configuration file")
	fs.BoolVar(&p.noConfig, "noconfig", false, "Don't read the configuration file")
}

func (p *Program) Run(fds [3]*os.File, args []string) error {
	if len(args) > 0 {
		return prog.BadUsage("arguments are not supported")
	}

	cfg, err := p.loadConfig(fds)
	if err != nil {
		return err
	}
	table, err := cfg.Table(asm.DefaultTable())
	if err != nil {
		return err
	}
	c, err := cfg.NewCanvas()
	if err != nil {
		if diag.Is(err, diag.ConstructionError) {
			diag.ShowError(diagWriter(fds[2]), err)
			return prog.Exit(2)
		}
		return err
	}
	logger.Printf("canvas %dx%d, %d instructions", c.Width(), c.Height(), len(table))

	isTerminal := p.stdinIsTerminal
	if isTerminal == nil {
		isTerminal = sys.IsATTY
	}
	err = Interact(fds, &InteractConfig{
		Canvas: c, Table: table, Interactive: isTerminal(fds[0])})
	if err != nil {
		return prog.Exit(2)
	}
	return nil
}

func (p *Program) loadConfig(fds [3]*os.File) (config.Config, error) {
	cfg := config.Default()
	var err error
	switch {
	case p.configPath != "":
		cfg, err = config.Load(p.configPath, cfg)
	case !p.noConfig:
		cfg, err = config.LoadDefault(cfg)
	}
	if err != nil {
		return cfg, err
	}

	if p.fit {
		columnsOf := p.terminalColumnsOf
		if columnsOf == nil {
			columnsOf = sys.Columns
		}
		if col := columnsOf(fds[1]); col > 0 {
			cfg.Width = col
		} else {
			logger.Println("-fit given but stdout is not a terminal")
		}
	}
	if p.width.set {
		cfg.Width = p.width.value
	}
	if p.maxRows.set {
		cfg.MaxRows = p.maxRows.value
	}
	if p.bg.set {
		cfg.Palette.Background = p.bg.value
	}
	if p.fg.set {
		cfg.Palette.Foreground = p.fg.value
	}
	if p.cursor.set {
		cfg.Palette.Cursor = p.cursor.value
	}
	return cfg, nil
}

// A flag.Value that remembers whether it was set, so that it overrides the
// configuration file only when given.
type intFlag struct {
	value int
	set   bool
}

func (f *intFlag) String() string { return strconv.Itoa(f.value) }

func (f *intFlag) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	f.value, f.set = v, true
	return nil
}

type stringFlag struct {
	value string
	set   bool
}

func (f *stringFlag) String() string { return f.value }

func (f *stringFlag) Set(s string) error {
	f.value, f.set = s, true
	return nil
}
