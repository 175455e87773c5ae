package conf

import "testing"

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Strategy != StrategyO1 || cfg.IsDebug {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestConfigComparable(t *testing.T) {
	// The registration trie's conflict test is plain equality.
	a := Config{Strategy: StrategyON, IsDebug: true}
	b := Config{Strategy: StrategyON, IsDebug: true}
	if a != b {
		t.Fatalf("equal configurations compared unequal")
	}
	if a == Default() {
		t.Fatalf("distinct configurations compared equal")
	}
}

func TestParseStrategy(t *testing.T) {
	cases := []struct {
		in   string
		want Strategy
	}{
		{"O1", StrategyO1},
		{"OLogN", StrategyOLogN},
		{"ON", StrategyON},
	}
	for _, tc := range cases {
		got, err := ParseStrategy(tc.in)
		if err != nil {
			t.Fatalf("ParseStrategy(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseStrategy(%q): got %s", tc.in, got)
		}
		if got.String() != tc.in {
			t.Fatalf("String round-trip: got %q, want %q", got.String(), tc.in)
		}
	}
	if _, err := ParseStrategy("On"); err == nil {
		t.Fatalf("expected error for unknown strategy")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("BEARTYPE_STRATEGY", "")
	t.Setenv("BEARTYPE_DEBUG", "")
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("FromEnv without variables: got %+v", cfg)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("BEARTYPE_STRATEGY", "ON")
	t.Setenv("BEARTYPE_DEBUG", "true")
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Strategy != StrategyON || !cfg.IsDebug {
		t.Fatalf("FromEnv overrides not applied: %+v", cfg)
	}
}

func TestFromEnvRejectsUnknownStrategy(t *testing.T) {
	t.Setenv("BEARTYPE_STRATEGY", "quadratic")
	if _, err := FromEnv(); err == nil {
		t.Fatalf("expected error for unknown strategy")
	}
}
