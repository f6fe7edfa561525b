// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/props/cmd/propsctl/config"
	"cogentcore.org/props/featureflags"
	"cogentcore.org/props/rawprops"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadRaw(t *testing.T) {
	raw, err := ReadRaw(writeFile(t, "a.json", `{"resizeMode": "cover", "blurRadius": 2}`), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"resizeMode", "blurRadius"}, raw.Names(), "json keys keep document order")

	raw, err = ReadRaw(writeFile(t, "a.yml", "tintColor: red\nsource: [a.png]\n"), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"tintColor", "source"}, raw.Names())

	raw, err = ReadRaw(writeFile(t, "a.txt", "resize-mode: contain; opacity: 0.5"), "css")
	require.NoError(t, err)
	assert.Equal(t, "contain", raw.At("resizeMode").Any())

	_, err = ReadRaw(writeFile(t, "a.txt", "x"), "")
	assert.ErrorContains(t, err, "unknown input format")

	_, err = ReadRaw(filepath.Join(t.TempDir(), "missing.json"), "")
	assert.Error(t, err)
}

func TestBuild(t *testing.T) {
	c := &config.Config{Component: "Image", Mode: config.ModeEager}
	input := writeFile(t, "img.json", `{"source": "https://cdn/x.png", "resizeMode": "cover", "capInsets": {"top": 1, "left": 2, "bottom": 3, "right": 4}}`)
	var buf bytes.Buffer
	require.NoError(t, Build(c, input, &buf))
	out := buf.String()
	assert.Contains(t, out, "resizeMode: cover")
	assert.Contains(t, out, "uri: https://cdn/x.png")
	assert.Contains(t, out, "opacity: 1")
	assert.Contains(t, out, "tintColor: none")

	c.Prev = writeFile(t, "prev.json", `{"blurRadius": 7, "resizeMode": "center"}`)
	buf.Reset()
	require.NoError(t, Build(c, writeFile(t, "next.json", `{"resizeMode": "bogus"}`), &buf))
	assert.Contains(t, buf.String(), "resizeMode: center")
	assert.Contains(t, buf.String(), "blurRadius: 7")

	c.Component = "Video"
	assert.Error(t, Build(c, input, &buf))
}

func TestCompare(t *testing.T) {
	c := &config.Config{Component: "Image", NoColor: true}
	var buf bytes.Buffer
	require.NoError(t, Compare(c, writeFile(t, "img.yaml", "source:\n  - uri: a.png\n    scale: 2\nresizeMode: repeat\n"), &buf))
	assert.Equal(t, "eager and deferred construction are identical\n", buf.String())
}

func TestWriteDiff(t *testing.T) {
	var buf bytes.Buffer
	WriteDiff(&buf, "a\nb\n", "a\nc\n", true)
	assert.Equal(t, "  a\n- b\n+ c\n", buf.String())
}

func TestKeys(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Keys(&config.Config{Component: "Image"}, &buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "opacity"))
	assert.Contains(t, buf.String(), rawprops.Hash("internal_analyticTag").String())

	buf.Reset()
	Components(&buf)
	assert.Contains(t, buf.String(), "View\n")
	assert.Contains(t, buf.String(), "Image\n")
}

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

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	c := &config.Config{Component: "Image", Mode: config.ModeFile, FlagsFile: filepath.Join(dir, "flags.toml")}
	input := writeFile(t, "img.json", `{"blurRadius": 3}`)

	ctx, cancel := context.WithCancel(context.Background())
	var out syncBuffer
	done := make(chan error, 1)
	go func() { done <- Watch(ctx, c, input, &out) }()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "# iterator setter: false")
	}, 5*time.Second, 10*time.Millisecond)

	require.Eventually(t, func() bool {
		// the watcher may not be ready for the first writes
		_ = featureflags.Save(c.FlagsFile, featureflags.Flags{IteratorSetter: true})
		return strings.Contains(out.String(), "# iterator setter: true")
	}, 5*time.Second, 50*time.Millisecond)
	assert.Contains(t, out.String(), "blurRadius: 3")

	cancel()
	assert.NoError(t, <-done)
}
