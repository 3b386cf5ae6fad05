package config

import (
	"path/filepath"
	"testing"

	"github.com/vdirtools/mates/internal/testutil"
)

// clearEnv blanks every environment variable the loader reads so tests
// control exactly what is set.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"MATES_HOME", "MATES_DIR", "MATES_INDEX", "MATES_GREP", "MATES_EDITOR", "EDITOR"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("MATES_HOME", home)

	cfg, err := Load("")
	testutil.MustNoErr(t, err, "Load")

	if got, want := cfg.Data.ContactsDir, filepath.Join(home, "contacts"); got != want {
		t.Errorf("ContactsDir = %q, want %q", got, want)
	}
	if got, want := cfg.Data.IndexFile, filepath.Join(home, "index"); got != want {
		t.Errorf("IndexFile = %q, want %q", got, want)
	}
	testutil.AssertStrings(t, cfg.FilterArgv(), "grep")
	if _, err := cfg.RequireEditor(); err == nil {
		t.Error("RequireEditor succeeded with nothing configured")
	}
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("MATES_HOME", home)
	testutil.WriteFile(t, home, "config.toml", []byte(`
[data]
contacts_dir = "/vdir/contacts"
index_file = "/vdir/index"

[query]
filter = "grep -i"

[editor]
command = "vi"
`))

	cfg, err := Load("")
	testutil.MustNoErr(t, err, "Load")

	if got := cfg.Data.ContactsDir; got != "/vdir/contacts" {
		t.Errorf("ContactsDir = %q, want %q", got, "/vdir/contacts")
	}
	if got := cfg.Data.IndexFile; got != "/vdir/index" {
		t.Errorf("IndexFile = %q, want %q", got, "/vdir/index")
	}
	testutil.AssertStrings(t, cfg.FilterArgv(), "grep", "-i")

	editor, err := cfg.RequireEditor()
	testutil.MustNoErr(t, err, "RequireEditor")
	if editor != "vi" {
		t.Errorf("editor = %q, want %q", editor, "vi")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("MATES_HOME", home)
	testutil.WriteFile(t, home, "config.toml", []byte(`
[data]
contacts_dir = "/from/file"

[editor]
command = "vi"
`))
	t.Setenv("MATES_DIR", "/from/env")
	t.Setenv("MATES_GREP", "rg --no-heading")
	t.Setenv("MATES_EDITOR", "nano")

	cfg, err := Load("")
	testutil.MustNoErr(t, err, "Load")

	if got := cfg.Data.ContactsDir; got != "/from/env" {
		t.Errorf("ContactsDir = %q, want %q", got, "/from/env")
	}
	testutil.AssertStrings(t, cfg.FilterArgv(), "rg", "--no-heading")
	editor, err := cfg.RequireEditor()
	testutil.MustNoErr(t, err, "RequireEditor")
	if editor != "nano" {
		t.Errorf("editor = %q, want %q", editor, "nano")
	}
}

func TestLoad_EditorFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("MATES_HOME", t.TempDir())
	t.Setenv("EDITOR", "emacs")

	cfg, err := Load("")
	testutil.MustNoErr(t, err, "Load")

	editor, err := cfg.RequireEditor()
	testutil.MustNoErr(t, err, "RequireEditor")
	if editor != "emacs" {
		t.Errorf("editor = %q, want %q", editor, "emacs")
	}
}

func TestLoad_BadTOML(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("MATES_HOME", home)
	testutil.WriteFile(t, home, "config.toml", []byte("this is not toml ["))

	if _, err := Load(""); err == nil {
		t.Fatal("Load accepted invalid TOML")
	}
}
