package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blaezi/blaezi/internal/timemath"
)

type cli struct {
	t  *testing.T
	db string
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, k := range []string{"BLAEZI_DB", "BLAEZI_STORAGE_BACKEND", "BLAEZI_LOG_MODE", "BLAEZI_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	return &cli{t: t, db: filepath.Join(dir, "blaezi.db")}
}

func (c *cli) run(args ...string) (string, error) {
	c.t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(append(args, "--db", c.db))
	err := rootCmd.Execute()
	return out.String(), err
}

func (c *cli) mustRun(args ...string) string {
	c.t.Helper()
	out, err := c.run(args...)
	require.NoError(c.t, err, "blaezi %s", strings.Join(args, " "))
	return out
}

func TestCLI_EndToEnd(t *testing.T) {
	c := newCLI(t)

	deadline := time.Now().Add(5 * 24 * time.Hour).Format(timemath.DayLayout)
	seedPath := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(seedPath, []byte(`{
  "projects": [{"id": "proj", "name": "portfolio", "milestones": [{"id": "m1", "title": "deploy"}]}],
  "careerEvents": [{"id": "ev", "title": "Mock interview", "date": "`+deadline+`", "type": "interview"}]
}`), 0o644))

	out := c.mustRun("import", seedPath)
	assert.Contains(t, out, "Imported 0 problem(s), 1 project(s), 1 career event(s).")

	id := strings.TrimSpace(c.mustRun("problem", "add", "Two Sum", "--difficulty", "easy", "--topic", "Arrays"))
	require.NotEmpty(t, id)

	out = c.mustRun("problem", "status", id, "solved")
	assert.Contains(t, out, "Two Sum is now solved")

	out = c.mustRun("problem", "list")
	assert.Contains(t, out, "Two Sum")
	assert.Contains(t, out, "DSA score 100")
	assert.Regexp(t, `Arrays\s+1/1 solved`, out)

	out = c.mustRun("project", "milestone", "toggle", "proj", "m1", "--undo=false")
	assert.Contains(t, out, "portfolio: 1/1 milestones (100%)")

	out = c.mustRun("career", "step", "add", "ev", "Review system design")
	assert.Contains(t, out, "Mock interview: 0/1 steps done, pressure 90")

	out = c.mustRun("career", "list")
	assert.Contains(t, out, "Mock interview")
	assert.Contains(t, out, "Review system design")

	out = c.mustRun("status")
	assert.Contains(t, out, "Blaezi score")
	assert.Contains(t, out, "Career / Exams Need Attention")

	out = c.mustRun("history", "--limit", "0")
	assert.Contains(t, out, timemath.CalendarDay(time.Now()))

	out = c.mustRun("trend", "--pillar", "overall")
	assert.Contains(t, out, "overall: → stable")

	_, err := c.run("trend", "--pillar", "health")
	assert.Error(t, err)

	promPath := filepath.Join(t.TempDir(), "out", "blaezi.prom")
	c.mustRun("metrics", promPath)
	b, err := os.ReadFile(promPath)
	require.NoError(t, err)
	assert.Contains(t, string(b), `blaezi_pillar_pressure{pillar="career"} 90`)

	out = c.mustRun("career", "complete", "ev")
	assert.Contains(t, out, "Mock interview")
}

func TestCLI_Errors(t *testing.T) {
	c := newCLI(t)

	_, err := c.run("problem", "status", "missing", "solved")
	assert.ErrorContains(t, err, "not found")

	_, err = c.run("problem", "add", "x", "--difficulty", "impossible")
	assert.Error(t, err)

	_, err = c.run("career", "add", "GATE", "someday")
	assert.Error(t, err)

	_, err = c.run("import", filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestCLI_RecordCommandsValidateConfig(t *testing.T) {
	c := newCLI(t)
	t.Setenv("BLAEZI_STORAGE_BACKEND", "etcd")
	seedPath := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(seedPath, []byte(`{}`), 0o644))

	for _, args := range [][]string{
		{"problem", "list"},
		{"problem", "add", "Two Sum"},
		{"project", "add", "portfolio"},
		{"career", "list"},
		{"import", seedPath},
	} {
		_, err := c.run(args...)
		assert.ErrorContains(t, err, `unknown storage backend "etcd"`, "blaezi %s", strings.Join(args, " "))
	}
}

func TestCLI_EmptyLists(t *testing.T) {
	c := newCLI(t)

	assert.Contains(t, c.mustRun("problem", "list"), "No problems yet")
	assert.Contains(t, c.mustRun("career", "list"), "No career events yet")
	assert.Contains(t, c.mustRun("history", "--limit", "0"), "No snapshots yet")
}

func TestVersion(t *testing.T) {
	c := newCLI(t)
	assert.Contains(t, c.mustRun("version"), "blaezi (devel)")
}
