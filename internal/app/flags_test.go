package app

import (
	"flag"
	"testing"
)

func TestConfigBindAndOverrides(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	cfg.BindView(fs)

	args := []string{"-dim", "7", "-seed", "9", "-set", "branch_prob=20", "-set", "dim = 3", "-set", "junk", "-tps", "30"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse: %v", err)
	}

	m := cfg.SimConfig()
	if m["dim"] != "3" {
		t.Fatalf("-set should override -dim, got dim=%q", m["dim"])
	}
	if m["seed"] != "9" {
		t.Fatalf("seed=%q, want 9", m["seed"])
	}
	if m["branch_prob"] != "20" {
		t.Fatalf("branch_prob=%q, want 20", m["branch_prob"])
	}
	if m["origin"] != "0,0,0" {
		t.Fatalf("origin=%q, want default 0,0,0", m["origin"])
	}
	if _, ok := m["junk"]; ok {
		t.Fatal("malformed override should be skipped")
	}
	if cfg.TPS != 30 {
		t.Fatalf("TPS=%d, want 30", cfg.TPS)
	}
	if got := cfg.Set.String(); got != "branch_prob=20,dim = 3,junk" {
		t.Fatalf("KVList.String()=%q", got)
	}
}

func TestSimFlagOnlyWhereBound(t *testing.T) {
	plain := flag.NewFlagSet("sweep", flag.ContinueOnError)
	NewConfig().Bind(plain)
	if plain.Lookup("sim") != nil {
		t.Fatal("Bind should not register -sim")
	}

	cfg := NewConfig()
	fs := flag.NewFlagSet("viewer", flag.ContinueOnError)
	cfg.Bind(fs)
	cfg.BindSim(fs)
	if err := fs.Parse([]string{"-sim", "other"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Sim != "other" {
		t.Fatalf("Sim=%q, want other", cfg.Sim)
	}
}

func TestSimConfigPassesBadDimension(t *testing.T) {
	cfg := NewConfig()
	cfg.Dim = -1
	if got := cfg.SimConfig()["dim"]; got != "-1" {
		t.Fatalf("dim=%q, want -1 passed through for validation", got)
	}
}
