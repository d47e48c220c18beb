package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mcsgraph/display"
	"github.com/katalvlaran/mcsgraph/mcs"
)

// syncBuffer is a bytes.Buffer safe for one writer and concurrent readers.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

var (
	ethanol      = filepath.Join("testdata", "ethanol.yaml")
	acetaldehyde = filepath.Join("testdata", "acetaldehyde.yaml")
)

func TestCompare_Text(t *testing.T) {
	out, err := run(t, "compare", ethanol, acetaldehyde)
	require.NoError(t, err)

	assert.Regexp(t, `graphs\s+1 "ethanol"\s+2 "acetaldehyde"`, out)
	assert.Regexp(t, `similarity\s+0.5\n`, out)
	assert.Regexp(t, `points\s+Points:3/3=1\n`, out)
	assert.Regexp(t, `components\s+1\n`, out)
	assert.Regexp(t, `node\s+1.0\s+2.0\s+C\n`, out)
	assert.Regexp(t, `node\s+1.1\s+2.1\s+C\n`, out)
	assert.Regexp(t, `edge\s+1.0-1.1\s+2.0-2.1\s+single\n`, out)
	assert.NotContains(t, out, "1.2")
}

func TestCompare_JSON(t *testing.T) {
	out, err := run(t, "compare", ethanol, acetaldehyde, "--format", "json", "--workers", "3")
	require.NoError(t, err)

	var data display.Data
	require.NoError(t, json.Unmarshal([]byte(out), &data))
	assert.Equal(t, 0.5, data.Similarity)
	assert.Len(t, data.MCS.Nodes, 2)
	assert.Len(t, data.MCS.Edges, 1)
	assert.Equal(t, "O", data.Graph1.Nodes[2].Label)
	assert.Empty(t, data.Graph1.Nodes[2].Matched)
}

func TestCompare_YAML(t *testing.T) {
	out, err := run(t, "compare", ethanol, ethanol+"-copy", "-o", "yaml")
	require.Error(t, err, "missing file")
	assert.Empty(t, out)

	out, err = run(t, "compare", ethanol, acetaldehyde, "-o", "yaml", "--tolerance", "0.5")
	require.NoError(t, err)
	var data display.Data
	require.NoError(t, yaml.Unmarshal([]byte(out), &data))
	assert.Equal(t, "acetaldehyde", data.Graph2.Name)
	assert.Equal(t, 0.5, data.Similarity)
}

func TestCompare_EmptyResult(t *testing.T) {
	path := filepath.Join(t.TempDir(), "argon.yaml")
	require.NoError(t, os.WriteFile(path, []byte("id: 9\nnodes: [{key: ar, type: Ar}]\n"), 0o600))

	out, err := run(t, "compare", ethanol, path, "-o", "json")
	require.NoError(t, err)
	var data display.Data
	require.NoError(t, json.Unmarshal([]byte(out), &data))
	assert.Zero(t, data.Similarity)

	out, err = run(t, "compare", ethanol, path)
	require.NoError(t, err)
	assert.Regexp(t, `similarity\s+0\n`, out)
	assert.Regexp(t, `components\s+0\n`, out)
}

func TestCompare_FlagErrors(t *testing.T) {
	_, err := run(t, "compare", ethanol, acetaldehyde, "--tolerance", "0")
	assert.ErrorIs(t, err, mcs.ErrInvalidTolerance)

	_, err = run(t, "compare", ethanol, acetaldehyde, "--workers", "0")
	assert.ErrorIs(t, err, mcs.ErrInvalidWorkers)

	_, err = run(t, "compare", ethanol, acetaldehyde, "-o", "xml")
	assert.ErrorIs(t, err, errUnknownFormat)

	_, err = run(t, "compare", ethanol)
	assert.Error(t, err)
}

func TestWatch_RerunsOnChange(t *testing.T) {
	dir := t.TempDir()
	a, b := filepath.Join(dir, "a.yaml"), filepath.Join(dir, "b.yaml")
	src, err := os.ReadFile(ethanol)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(a, src, 0o600))
	other, err := os.ReadFile(acetaldehyde)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(b, other, 0o600))

	var out syncBuffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"watch", a, b, "--debounce", "20ms", "--metrics-addr", "127.0.0.1:0"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- cmd.ExecuteContext(ctx) }()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "similarity")
	}, 5*time.Second, 10*time.Millisecond)
	assert.Regexp(t, `similarity\s+0.5\n`, out.String())

	m := regexp.MustCompile(`metrics: (\S+)`).FindStringSubmatch(out.String())
	require.Len(t, m, 2)
	resp, err := http.Get(m[1])
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.NoError(t, err)
	// 3 x 3 seed walks
	assert.Contains(t, string(body), "mcs_walks_total 9")

	// Make B identical to A apart from its id.
	same := strings.Replace(string(src), "id: 1\nname: ethanol", "id: 2\nname: ethanol-copy", 1)
	require.NoError(t, os.WriteFile(b, []byte(same), 0o600))

	require.Eventually(t, func() bool {
		return regexp.MustCompile(`similarity\s+1\n`).MatchString(out.String())
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
