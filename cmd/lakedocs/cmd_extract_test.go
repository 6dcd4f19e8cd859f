package main

import (
	"testing"

	"github.com/spf13/cobra"

	"github.com/lakedocs/lakedocs/domain/model"
)

func TestFilterLakehouses(t *testing.T) {
	all := []model.Lakehouse{
		{ID: "11111111-1111-1111-1111-111111111111", DisplayName: "Bronze"},
		{ID: "22222222-2222-2222-2222-222222222222", DisplayName: "Silver"},
		{ID: "33333333-3333-3333-3333-333333333333", DisplayName: "Gold"},
	}

	got := filterLakehouses(all, []string{"bronze", "33333333-3333-3333-3333-333333333333"})
	if len(got) != 2 {
		t.Fatalf("expected 2 lakehouses, got %d", len(got))
	}
	if got[0].DisplayName != "Bronze" || got[1].DisplayName != "Gold" {
		t.Errorf("unexpected selection: %+v", got)
	}

	if got := filterLakehouses(all, []string{"Platinum"}); len(got) != 0 {
		t.Errorf("expected no matches, got %+v", got)
	}
}

func TestFindFlagReachesPersistentFlags(t *testing.T) {
	root := newRootCmd()
	var extract *cobra.Command
	for _, c := range root.Commands() {
		if c.Name() == "extract" {
			extract = c
			break
		}
	}
	if extract == nil {
		t.Fatal("extract subcommand not found")
	}

	if f := findFlag(extract, "log-format"); f == nil {
		t.Error("log-format not reachable from subcommand")
	}
	if f := findFlag(extract, "workspace"); f == nil {
		t.Error("workspace not found on subcommand")
	}
	if f := findFlag(extract, "no-such-flag"); f != nil {
		t.Errorf("unexpected flag: %v", f)
	}
}

func TestNewRootCmdHasSubcommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"extract", "mcp", "version"} {
		found := false
		for _, c := range root.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
}
