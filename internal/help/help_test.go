package help

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lawnchairsociety/adventure/internal/world"
)

func writeHelp(t *testing.T) string {
	t.Helper()
	content := `
topics:
  take:
    aliases:
      - get
    text: |
      TAKE <object> picks something up.
  quit:
    text: |
      QUIT ends the game after asking.
general_help: |
  Type directions to move.
`
	tmpFile := filepath.Join(t.TempDir(), "help.yaml")
	if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return tmpFile
}

func testSynonyms() *world.Synonyms {
	return world.NewSynonyms([]world.Synonym{
		{Alias: "W", Canonical: "WEST"},
		{Alias: "N", Canonical: "NORTH"},
	})
}

func TestLoadAndGetTopic(t *testing.T) {
	h, err := Load(writeHelp(t))
	if err != nil {
		t.Fatalf("Failed to load help: %v", err)
	}

	if text := h.GetTopic("TAKE"); text != "TAKE <object> picks something up." {
		t.Errorf("unexpected topic text %q", text)
	}
	// Alias lookup
	if text := h.GetTopic("GET"); text != "TAKE <object> picks something up." {
		t.Errorf("unexpected alias text %q", text)
	}
	// Topic names work without aliases, in any case
	if text := h.GetTopic("quit"); text != "QUIT ends the game after asking." {
		t.Errorf("unexpected topic text %q", text)
	}
	if text := h.GetTopic("DANCE"); text != "" {
		t.Errorf("expected empty string for unknown topic, got %q", text)
	}
}

func TestGetHelpText(t *testing.T) {
	h, err := Load(writeHelp(t))
	if err != nil {
		t.Fatal(err)
	}

	out := h.GetHelpText("", testSynonyms())
	if !strings.HasPrefix(out, "Type directions to move.") {
		t.Errorf("expected general help first, got %q", out)
	}
	if !strings.Contains(out, "Available shortcuts:") {
		t.Errorf("expected synonym header, got %q", out)
	}

	// Unknown topic falls back to the general text
	if fallback := h.GetHelpText("DANCE", testSynonyms()); fallback != out {
		t.Errorf("expected fallback to general help, got %q", fallback)
	}

	if topic := h.GetHelpText("GET", testSynonyms()); !strings.HasPrefix(topic, "TAKE") {
		t.Errorf("expected topic text, got %q", topic)
	}
}

func TestNilHelpStillListsSynonyms(t *testing.T) {
	var h *Help
	out := h.GetHelpText("", testSynonyms())
	if !strings.Contains(out, "NORTH") || !strings.Contains(out, "WEST") {
		t.Errorf("expected synonym table, got %q", out)
	}
}

func TestSynonymTable(t *testing.T) {
	out := SynonymTable(testSynonyms())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// header line, table header, two rows
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), out)
	}
	if lines[0] != "Available shortcuts:" {
		t.Errorf("unexpected first line %q", lines[0])
	}
	// Sorted by alias
	if !strings.HasPrefix(lines[2], "N") || !strings.Contains(lines[2], "NORTH") {
		t.Errorf("expected N row first, got %q", lines[2])
	}
	if !strings.HasPrefix(lines[3], "W") || !strings.Contains(lines[3], "WEST") {
		t.Errorf("expected W row second, got %q", lines[3])
	}
}

func TestSynonymTableEmpty(t *testing.T) {
	out := SynonymTable(world.NewSynonyms(nil))
	if strings.TrimSpace(out) != "Available shortcuts:" {
		t.Errorf("expected only the header, got %q", out)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/help.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}
