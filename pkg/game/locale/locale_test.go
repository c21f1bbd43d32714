package locale

import "testing"

func TestGet_KnownKeys(t *testing.T) {
	cases := map[string]string{
		"ROOM_REST":    "Rest Site",
		"BUFF_MAX_HP":  "Max HP",
		"ACT_ONE":      "Exordium",
		"HEADING_NEOW": "Neow options",
	}
	for key, want := range cases {
		if got := Get(key); got != want {
			t.Errorf("Get(%q) = %q, want %q", key, got, want)
		}
	}
}

func TestGet_MissingKeyReturnsKey(t *testing.T) {
	if got := Get("NO_SUCH_KEY"); got != "NO_SUCH_KEY" {
		t.Errorf("Get(NO_SUCH_KEY) = %q", got)
	}
}

func TestGetf_FormatsVars(t *testing.T) {
	if got := Getf("ACT_TITLE", 1, "Exordium"); got != "Act 1: Exordium" {
		t.Errorf("Getf(ACT_TITLE) = %q", got)
	}
}

func TestGet_RuntimeKeyLeavesVerbs(t *testing.T) {
	key := "ACT_" + "TITLE"
	if got := Get(key); got != "Act %d: %s" {
		t.Errorf("Get(%q) = %q, want the untouched template", key, got)
	}
}
