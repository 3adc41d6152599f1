package main

import (
	"flag"
	"testing"
)

func TestExplicitFlags(t *testing.T) {
	cases := []struct {
		name    string
		args    []string
		wantHUD bool
	}{
		{"default", nil, false},
		{"hud_off", []string{"-hud=false"}, true},
		{"hud_on", []string{"-hud"}, true},
		{"other_flag", []string{"-watch=false"}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			fs := flag.NewFlagSet("zoomcam", flag.ContinueOnError)
			fs.Bool("hud", true, "")
			fs.Bool("watch", true, "")
			if err := fs.Parse(c.args); err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if got := explicitFlags(fs)["hud"]; got != c.wantHUD {
				t.Fatalf("hud explicit = %v, want %v", got, c.wantHUD)
			}
		})
	}
}
