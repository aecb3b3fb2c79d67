package golang

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// projectMain writes one Project through the generated Write and through
// Program.Write, separated by a marker line.
const projectMain = `package main

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/signadot/xmlgen/model"
	"github.com/signadot/xmlgen/xmlgen"
	"github.com/signadot/xmlgen/xmltree"
)

func (w *Widget) String() string {
	if w.Size == nil {
		return "widget"
	}
	return fmt.Sprintf("widget-%d", *w.Size)
}

func main() {
	src, err := os.ReadFile("model.yaml")
	if err != nil {
		panic(err)
	}
	s, err := model.Load(src)
	if err != nil {
		panic(err)
	}
	p, err := xmlgen.Generate(s, xmlgen.Options{})
	if err != nil {
		panic(err)
	}
	small, large := int16(3), int16(7)
	enabled := false
	created := time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)
	cfg := xmltree.NewElement("configuration").SetAttr("combine", "merge")
	cfg.AddElement("item").SetText("x & y")
	project := &Project{
		Id:            "p1",
		ModelVersion:  "4.0.0",
		Count:         2,
		Retries:       5,
		Ratio:         0.25,
		Enabled:       &enabled,
		Strict:        false,
		Created:       created,
		Year:          created,
		Items:         []string{"a", "<b>"},
		Widgets:       []*Widget{{Size: &small}, {}},
		Params:        map[string]string{"k2": "v2", "k1": "v1"},
		Props:         map[string]string{"b": "2", "a": "1"},
		Owner:         &Widget{Size: &large},
		OwnerRef:      &Widget{Size: &large},
		Configuration: cfg,
	}
	var generated, interpreted bytes.Buffer
	if err := Write(&generated, project); err != nil {
		panic(err)
	}
	if err := p.Write(&interpreted, project); err != nil {
		panic(err)
	}
	fmt.Print(generated.String())
	fmt.Print("--- interpreted ---\n")
	fmt.Print(interpreted.String())
}
`

func TestGeneratedMatchesInterpreter(t *testing.T) {
	if testing.Short() {
		t.Skip("builds and runs generated code with the go command")
	}
	code := render(t, projectModel, Config{Types: true, Package: "main", FileName: "project_gen.go"})
	if err := os.MkdirAll("testdata", 0o755); err != nil {
		t.Fatal(err)
	}
	dir, err := os.MkdirTemp("testdata", "run")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	files := map[string]string{
		"project_gen.go": code,
		"main.go":        projectMain,
		"model.yaml":     projectModel,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	cmd := exec.Command("go", "run", ".")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			t.Fatalf("go run: %v\n%s\n%s", err, exitErr.Stderr, code)
		}
		t.Fatalf("go run: %v", err)
	}
	generated, interpreted, ok := bytes.Cut(out, []byte("--- interpreted ---\n"))
	if !ok {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if diff := cmp.Diff(string(interpreted), string(generated)); diff != "" {
		t.Errorf("generated Write differs from Program.Write (-interpreted +generated):\n%s", diff)
	}
	for _, want := range []string{
		`ownerRef="widget-7"`,
		"<param>",
		"<item>x &amp; y</item>",
		"<item>&lt;b&gt;</item>",
	} {
		if !strings.Contains(string(generated), want) {
			t.Errorf("missing %q in:\n%s", want, generated)
		}
	}
}
