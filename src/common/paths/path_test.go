package paths

import (
	"os"
	"os/user"
	"path/filepath"
	"testing"
)

func TestExpand_Env(t *testing.T) {
	t.Setenv("BOARDLIST_TEST_DIR", "/tmp/boards")

	if got := Expand("$BOARDLIST_TEST_DIR/snapshot.yaml"); got != "/tmp/boards/snapshot.yaml" {
		t.Errorf("Expand() = %q", got)
	}
}

func TestExpandHome(t *testing.T) {
	usr, err := user.Current()
	if err != nil {
		t.Skipf("no current user: %v", err)
	}

	if got := ExpandHome("~"); got != usr.HomeDir {
		t.Errorf("ExpandHome(~) = %q, want %q", got, usr.HomeDir)
	}
	if got := ExpandHome("~/history.json"); got != filepath.Join(usr.HomeDir, "history.json") {
		t.Errorf("ExpandHome(~/history.json) = %q", got)
	}
	if got := ExpandHome("/etc/boardlist"); got != "/etc/boardlist" {
		t.Errorf("ExpandHome() should not touch absolute paths, got %q", got)
	}
	if got := ExpandHome("~other/x"); got != "~other/x" {
		t.Errorf("ExpandHome() should not touch ~user paths, got %q", got)
	}
}

func TestIsFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "snapshot.json")
	if err := os.WriteFile(file, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !IsFile(file) {
		t.Error("IsFile(file) = false")
	}
	if IsFile(dir) {
		t.Error("IsFile(dir) = true")
	}
	if IsFile(filepath.Join(dir, "missing")) {
		t.Error("IsFile(missing) = true")
	}
}
