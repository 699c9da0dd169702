package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var pngPhoto = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append(args, "--env", filepath.Join(t.TempDir(), "missing.env")))
	err := rootCmd.ExecuteContext(context.Background())
	require.NoError(t, closeEngine())
	require.NoError(t, err, out.String())
	return out.String()
}

func TestMatchctl_PublishBrowseAndMatch(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	t.Setenv("BADGER_FILEPATH", filepath.Join(dir, "badger"))
	t.Setenv("LOG_LEVEL", "ERROR")
	photo := filepath.Join(dir, "me.png")
	req.NoError(os.WriteFile(photo, pngPhoto, 0o600))

	// Given two profiles looking for each other in the same city
	out := execute(t, "publish", "--id", "alice", "--name", "Alice", "--age", "25", "--city", "Paris",
		"--gender", "female", "--filter", "male", "--photo", photo)
	req.Contains(out, "published alice version 1")
	execute(t, "publish", "--id", "bob", "--name", "Bob", "--age", "30", "--city", "Paris",
		"--gender", "male", "--filter", "female", "--photo", photo, "--username", "bobby")

	// When alice asks for her next profile
	out = execute(t, "next", "--viewer", "alice")

	// Then she sees bob from the shared channel
	req.Contains(out, "Bob, 30")
	req.Contains(out, "shared")

	// When both like each other
	out = execute(t, "swipe", "--from", "alice", "--to", "bob")
	req.Contains(out, "no-match")
	out = execute(t, "swipe", "--from", "bob", "--to", "alice")

	// Then the match is reported and both users are notified on the terminal
	req.Contains(out, "mutual-match")
	req.Contains(out, "to alice")
	req.Contains(out, "to bob")

	out = execute(t, "depth")
	req.Contains(out, "profiles_all")

	out = execute(t, "reset", "--viewer", "alice")
	req.Contains(out, "forgot 1 seen profiles for alice")
}
