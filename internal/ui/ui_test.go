package ui

import (
	"strings"
	"testing"
)

func TestShouldUseColor(t *testing.T) {
	t.Run("NO_COLOR disables", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		t.Setenv("CLICOLOR_FORCE", "")
		if ShouldUseColor() {
			t.Error("expected color disabled with NO_COLOR set")
		}
	})

	t.Run("CLICOLOR=0 disables", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		t.Setenv("CLICOLOR", "0")
		t.Setenv("CLICOLOR_FORCE", "")
		if ShouldUseColor() {
			t.Error("expected color disabled with CLICOLOR=0")
		}
	})

	t.Run("CLICOLOR_FORCE enables", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		t.Setenv("CLICOLOR", "")
		t.Setenv("CLICOLOR_FORCE", "1")
		if !ShouldUseColor() {
			t.Error("expected color forced on with CLICOLOR_FORCE")
		}
	})
}

func TestRenderMuted_NoColorPassthrough(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	t.Setenv("CLICOLOR_FORCE", "")
	if got := RenderMuted("plain"); got != "plain" {
		t.Errorf("expected unstyled passthrough, got %q", got)
	}
}

func TestRenderRunSummary(t *testing.T) {
	out := RenderRunSummary("fruit", map[string]string{
		"Cherry": "Cherry Co.",
		"Apple":  "Apple Inc.",
	}, 3, 2, 80)

	for _, want := range []string{"Original", "Replacement", "Apple Inc.", "Cherry Co.", "fruit"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected summary to contain %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Apple") > strings.Index(out, "Cherry") {
		t.Error("expected rows ordered by original value")
	}
}

func TestRenderRunSummary_NoReplacements(t *testing.T) {
	out := RenderRunSummary("fruit", nil, 5, 0, 80)
	if !strings.Contains(out, "No replacements collected.") {
		t.Errorf("expected empty-run note, got:\n%s", out)
	}
}

func TestReplacePrompt_NonInteractiveKeepsOriginal(t *testing.T) {
	if IsTerminal() {
		t.Skip("requires non-TTY stdout")
	}
	accepted, err := ReplacePrompt{}.Confirm(1, 3, "Apple", "Apple Inc.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if accepted {
		t.Error("non-interactive runs must keep the original value")
	}
}
