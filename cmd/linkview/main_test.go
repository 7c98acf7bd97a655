package main

import "testing"

func TestParseArgs(t *testing.T) {
	opts, err := parseArgs([]string{"-p", "-l", "here", "doc.txt"})
	if err != nil {
		t.Fatalf("parseArgs failed: %v", err)
	}
	if !opts.printOnly || !opts.hasLabel || opts.label != "here" || opts.file != "doc.txt" {
		t.Fatalf("unexpected options: %+v", opts)
	}
}

func TestParseArgsEmptyLabelValue(t *testing.T) {
	opts, err := parseArgs([]string{"--label", ""})
	if err != nil {
		t.Fatalf("parseArgs failed: %v", err)
	}
	if !opts.hasLabel || opts.label != "" {
		t.Fatalf("empty label must still count as supplied: %+v", opts)
	}
}

func TestParseArgsErrors(t *testing.T) {
	cases := [][]string{
		{"-l"},               // missing value
		{"--bogus"},          // unknown option
		{"a.txt", "b.txt"},   // second positional
	}
	for _, args := range cases {
		if _, err := parseArgs(args); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
}
