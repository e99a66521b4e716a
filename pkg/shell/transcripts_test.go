package shell

import (
	"embed"
	"flag"
	"io/fs"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"src.pendraw.sh/pkg/asm"
	"src.pendraw.sh/pkg/diag"
	"src.pendraw.sh/pkg/must"
	"src.pendraw.sh/pkg/prog"
	"src.pendraw.sh/pkg/transcript"
)

//go:embed testdata/*.pdts
var transcripts embed.FS

func TestTranscripts(t *testing.T) {
	nodes, err := transcript.ParseFromFS(must.OK1(fs.Sub(transcripts, "testdata")))
	if err != nil {
		t.Fatal(err)
	}
	for _, session := range transcript.Sessions(nodes) {
		session := session
		t.Run(session.Name, func(t *testing.T) { testSession(t, session) })
	}
}

func testSession(t *testing.T, session transcript.Session) {
	args := []string{"-noconfig"}
	for _, directive := range session.Directives {
		name, value, _ := strings.Cut(directive, " ")
		if name != "flags" {
			t.Fatalf("unknown directive %q", directive)
		}
		args = append(args, strings.Fields(value)...)
	}
	p := &Program{}
	flags := &prog.FlagSet{FlagSet: flag.NewFlagSet("transcript", flag.ContinueOnError)}
	p.RegisterFlags(flags)
	must.OK(flags.Parse(args))

	cfg := must.OK1(p.loadConfig([3]*os.File{}))
	table := must.OK1(cfg.Table(asm.DefaultTable()))
	c := must.OK1(cfg.NewCanvas())
	icfg := &InteractConfig{Canvas: c, Table: table}

	for i, interaction := range session.Interactions {
		var sb strings.Builder
		quit, _ := evalLine(&sb, diag.Unstyled(&sb), icfg, interaction.Code)
		if diff := cmp.Diff(interaction.Output, sb.String()); diff != "" {
			t.Errorf("output of %q (-want +got):\n%s", interaction.Code, diff)
		}
		if quit && i < len(session.Interactions)-1 {
			t.Fatalf("session ended after %q", interaction.Code)
		}
	}
}
