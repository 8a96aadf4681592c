package cmd

import (
	"bytes"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmuldo/snapshot-json2c/csource"
	"github.com/mmuldo/snapshot-json2c/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const zeros = `{"rgb":[0,0,0],"xyz":[0,0,0],"luv":[0,0,0],"lch":[0,0,0],"hsluv":[0,0,0],"hpluv":[0,0,0]}`

func tempDir(t *testing.T) string {
	t.Helper()
	dir, e := ioutil.TempDir("", "snapshot-json2c")
	require.NoError(t, e)
	t.Cleanup(func() { os.RemoveAll(dir) })
	return dir
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, ioutil.WriteFile(p, []byte(body), 0644))
	return p
}

func execute(args ...string) (string, error) {
	var buf bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOutput(&buf)
	cmd.SetArgs(args)
	e := cmd.Execute()
	return buf.String(), e
}

func expected(t *testing.T, doc, source string) string {
	t.Helper()
	s, e := snapshot.Decode(bytes.NewReader([]byte(doc)), snapshot.Options{})
	require.NoError(t, e)
	b, e := csource.Render(s, source)
	require.NoError(t, e)
	return string(b)
}

func TestRootGenerates(t *testing.T) {
	dir := tempDir(t)
	doc := `{"ffaa00": ` + zeros + `, "000000": ` + zeros + `}`
	p := writeFile(t, dir, "snapshot-rev4.json", doc)

	out, e := execute("--input", p)
	require.NoError(t, e)
	assert.Equal(t, expected(t, doc, p), out)
	assert.Contains(t, out, "from 'snapshot-rev4.json'")
}

func TestRootDefaultInput(t *testing.T) {
	dir := tempDir(t)
	doc := `{"000000": ` + zeros + `}`
	writeFile(t, dir, defaultInput, doc)

	wd, e := os.Getwd()
	require.NoError(t, e)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	out, e := execute()
	require.NoError(t, e)
	assert.Equal(t, expected(t, doc, defaultInput), out)
}

func TestRootEnvInput(t *testing.T) {
	dir := tempDir(t)
	doc := `{"123456": ` + zeros + `}`
	p := writeFile(t, dir, "env.json", doc)

	require.NoError(t, os.Setenv("SNAPSHOT_INPUT", p))
	defer os.Unsetenv("SNAPSHOT_INPUT")

	out, e := execute()
	require.NoError(t, e)
	assert.Contains(t, out, `"123456",`)
}

func TestRootConfigFile(t *testing.T) {
	dir := tempDir(t)
	p := writeFile(t, dir, "cfg.json", `{"not-hex": `+zeros+`}`)
	cfg := writeFile(t, dir, "config.yaml", "input: "+p+"\nstrict: true\n")

	_, e := execute("--config", cfg)
	require.Error(t, e)
	assert.True(t, errors.Is(e, snapshot.ErrKey))

	out, e := execute("--config", cfg, "--strict=false")
	require.NoError(t, e)
	assert.Contains(t, out, `"not-hex",`)
}

func TestRootFailsWithoutOutput(t *testing.T) {
	dir := tempDir(t)
	missingLCH := `{"000000": {"rgb":[0,0,0],"xyz":[0,0,0],"luv":[0,0,0],"hsluv":[0,0,0],"hpluv":[0,0,0]}}`

	tests := []struct {
		name string
		args []string
	}{
		{"missing file", []string{"--input", filepath.Join(dir, "nope.json")}},
		{"malformed json", []string{"--input", writeFile(t, dir, "bad.json", `{"000000": `)}},
		{"missing lch", []string{"--input", writeFile(t, dir, "lch.json", missingLCH)}},
		{"strict key", []string{"--strict", "--input", writeFile(t, dir, "key.json", `{"abc": `+zeros+`}`)}},
		{"positional argument", []string{"snapshot-rev4.json"}},
		{"missing config", []string{"--config", filepath.Join(dir, "nope.yaml")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, e := execute(tt.args...)
			assert.Error(t, e)
			assert.Empty(t, out)
		})
	}
}

func TestNewLogger(t *testing.T) {
	assert.True(t, newLogger("debug").IsDebug())
	assert.False(t, newLogger("warn").IsInfo())
	assert.True(t, newLogger("warn").IsWarn())
	assert.True(t, newLogger("bogus").IsWarn())
	assert.False(t, newLogger("bogus").IsInfo())
	assert.False(t, newLogger("off").IsError())
}
