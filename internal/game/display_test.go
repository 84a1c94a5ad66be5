package game

import (
	"strings"
	"testing"

	"github.com/Faultbox/seascape/internal/anim"
	"github.com/Faultbox/seascape/internal/scene"
	"github.com/Faultbox/seascape/internal/sim"
)

func TestStatusLine(t *testing.T) {
	boat := scene.NewNode("boat")
	boat.Position.X = 12.34
	boat.Position.Z = -5
	c := &sim.Context{
		Boat:    boat,
		Bob:     anim.NewOscillator(75),
		Follow:  anim.NewFollower(0.01),
		TargetX: 50,
		TargetZ: -50,
	}

	tests := []struct {
		name           string
		playing, muted bool
		want           []string
	}{
		{"silent", false, false, []string{"Seascape - 60 fps", "boat 12.3,-5.0 -> 50.0,-50.0", "rising/ascending", "follow 0.010", "sound off"}},
		{"playing", true, false, []string{"sound on"}},
		{"muted", true, true, []string{"sound muted"}},
		{"muted but idle", false, true, []string{"sound off"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := statusLine(60, c, tt.playing, tt.muted)
			for _, part := range tt.want {
				if !strings.Contains(got, part) {
					t.Errorf("statusLine = %q, missing %q", got, part)
				}
			}
		})
	}
}
