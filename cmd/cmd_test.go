package cmd

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexiusacademia/goframe/internal/model"
)

// execute runs rootCmd with args, then restores every flag of the command
// tree to its default so later runs see neither the value nor Changed.
func execute(args ...string) error {
	rootCmd.SetArgs(args)
	defer resetFlags(rootCmd)
	return rootCmd.Execute()
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if f.Changed {
			f.Value.Set(f.DefValue)
			f.Changed = false
		}
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestFrameDemoSaveAndAnalyze(t *testing.T) {
	g := NewWithT(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "portal.yaml")
	png := filepath.Join(dir, "portal.png")

	g.Expect(execute("frame", "demo", "--save", path)).To(Succeed())
	g.Expect(path).To(BeAnExistingFile())

	g.Expect(execute("frame", "analyze", "-f", path, "-o", png)).To(Succeed())
	g.Expect(png).To(BeAnExistingFile())

	g.Expect(execute("frame", "analyze", "-f", path, "--combo", "6", "-o", "")).To(Succeed())
	g.Expect(execute("frame", "analyze", "-f", path, "--combo", "42")).To(MatchError(ContainSubstring("unknown load combination")))
}

func TestFrameCombos(t *testing.T) {
	g := NewWithT(t)

	path := filepath.Join(t.TempDir(), "portal.json")
	g.Expect(model.Save(path, model.PortalDemo())).To(Succeed())

	g.Expect(execute("frame", "combos", "-f", path)).To(Succeed())
	g.Expect(execute("frame", "combos", "-f", path, "--simplified")).To(Succeed())
}

func TestFrameAnalyzeUnstable(t *testing.T) {
	g := NewWithT(t)

	f := model.PortalDemo()
	f.Supports = []model.Support{{Node: 0, Fix: []string{"ux", "uy"}}}
	path := filepath.Join(t.TempDir(), "mechanism.yaml")
	g.Expect(model.Save(path, f)).To(Succeed())

	g.Expect(execute("frame", "analyze", "-f", path)).To(MatchError(ContainSubstring("unstable")))
}

func TestBeamAndSectionCommands(t *testing.T) {
	g := NewWithT(t)

	g.Expect(execute("beam", "udl", "-w", "10", "-L", "6", "--x", "1.5", "--plot")).To(Succeed())
	g.Expect(execute("beam", "udl", "-w", "10", "-L", "6", "--x", "7")).NotTo(Succeed())

	g.Expect(execute("section", "rect", "-b", "0.2", "-d", "0.3")).To(Succeed())
	g.Expect(execute("section", "rect", "-b", "0", "-d", "0.3")).NotTo(Succeed())

	path := filepath.Join(t.TempDir(), "tee.json")
	data := `{"name":"tee","vertices":[{"x":0,"y":0},{"x":1,"y":0},{"x":1,"y":1},{"x":0,"y":1}]}`
	g.Expect(os.WriteFile(path, []byte(data), 0o644)).To(Succeed())
	g.Expect(execute("section", "polygon", "-f", path)).To(Succeed())
}

func TestBeamUDL_FlagsDoNotLeakBetweenRuns(t *testing.T) {
	g := NewWithT(t)

	g.Expect(execute("beam", "udl", "-w", "10", "-L", "6", "--x", "7")).To(MatchError(ContainSubstring("x must be within")))
	g.Expect(beamUDLCmd.Flags().Changed("x")).To(BeFalse())

	// a 4 m span would reject the previous x = 7 if it were still set
	g.Expect(execute("beam", "udl", "-w", "10", "-L", "4")).To(Succeed())
	g.Expect(udlX).To(Equal(-1.0))
}
