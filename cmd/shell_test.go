package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cinema-desk/internal/data/repository"
	"cinema-desk/internal/data/store"
	"cinema-desk/internal/wire"
	"cinema-desk/pkg/utils"

	"go.uber.org/zap"
)

func newShellApp(t *testing.T, input string) (*wire.App, *bytes.Buffer, string) {
	t.Helper()
	dir := t.TempDir()
	logger := zap.NewNop()
	st := store.New(dir, 10, logger)
	repo := repository.NewRepository(logger)
	config := &utils.Config{
		Venue: utils.VenueConfig{Capacity: 10, SessionSeats: 10},
	}
	var out bytes.Buffer
	app := wire.Wiring(repo, st, config, logger, strings.NewReader(input), &out)
	return app, &out, dir
}

// The shell must stop when its input ends, not spin on the read error,
// and ending input still runs the save-on-exit path.
func TestRunShellStopsWhenInputEnds(t *testing.T) {
	t.Parallel()
	app, out, dir := newShellApp(t, "no\n3\n")

	done := make(chan struct{})
	go func() {
		RunShell(app, false, zap.NewNop())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("shell kept running after input ended")
	}

	if !strings.Contains(out.String(), "No movies found.") {
		t.Error("the list action before EOF should have run")
	}
	if _, err := os.Stat(filepath.Join(dir, "movies.csv")); err != nil {
		t.Errorf("data not saved on exit: %v", err)
	}
}

func TestRunShellExitChoiceSaves(t *testing.T) {
	t.Parallel()
	app, out, dir := newShellApp(t, "no\n0\n")

	RunShell(app, false, zap.NewNop())

	if !strings.Contains(out.String(), "Goodbye") {
		t.Error("exit message not printed")
	}
	if _, err := os.Stat(filepath.Join(dir, "movies.csv")); err != nil {
		t.Errorf("data not saved on exit: %v", err)
	}
}

func TestRunShellBadInputReprompts(t *testing.T) {
	t.Parallel()
	app, out, _ := newShellApp(t, "no\nnot-a-number\n0\n")

	RunShell(app, false, zap.NewNop())

	if !strings.Contains(out.String(), "Invalid input.") {
		t.Error("bad menu input should reprompt, not exit")
	}
	if !strings.Contains(out.String(), "Goodbye") {
		t.Error("shell should still exit cleanly afterwards")
	}
}
