package game

import (
	"time"

	"github.com/Faultbox/seascape/internal/anim"
	"github.com/Faultbox/seascape/internal/config"
	"github.com/Faultbox/seascape/internal/engine/lighting"
	"github.com/Faultbox/seascape/internal/engine/renderer"
	"github.com/Faultbox/seascape/internal/world"
)

// sceneSeed returns the configured seed, or a time-based one when unset.
func sceneSeed(sc config.SceneConfig, now time.Time) int64 {
	if sc.Seed != 0 {
		return sc.Seed
	}
	return now.UnixNano()
}

// seaOptions maps scene settings onto the sea builder.
func seaOptions(sc config.SceneConfig) world.SeaOptions {
	opts := world.DefaultSeaOptions()
	if sc.SeaRadialSegments > 0 {
		opts.RadialSegments = sc.SeaRadialSegments
	}
	if sc.SeaHeightSegments > 0 {
		opts.HeightSegments = sc.SeaHeightSegments
	}

	w := sc.Waves
	if w.MaxAmplitude > 0 {
		opts.Waves.MaxAmplitude = w.MaxAmplitude
	}
	if w.Speed > 0 {
		opts.Waves.Speed = w.Speed
	}
	opts.Waves.RandomSpeed = w.RandomSpeed
	if w.MinSpeed > 0 && w.MaxSpeed > w.MinSpeed {
		opts.Waves.MinSpeed = w.MinSpeed
		opts.Waves.MaxSpeed = w.MaxSpeed
	}
	return opts
}

// follower builds the boat easing from scene settings.
func follower(sc config.SceneConfig) anim.Follower {
	f := anim.NewFollower(anim.DefaultFollowFactor)
	if sc.FollowFactor > 0 && sc.FollowFactor <= 1 {
		f.Factor = sc.FollowFactor
	}
	f.FrameRateNeutral = sc.FrameRateNeutral
	return f
}

// fog builds renderer fog from scene settings, keeping base's color.
func fog(sc config.SceneConfig, base renderer.Fog) renderer.Fog {
	base.Enabled = sc.FogEnabled
	if sc.FogFar > sc.FogNear && sc.FogNear >= 0 {
		base.Near = sc.FogNear
		base.Far = sc.FogFar
	}
	return base
}

// sunDistance keeps a configured sun as far from the origin as the default one.
var sunDistance = float64(lighting.Default().Sun.Position.Length())

// lights builds the light rig, moving the sun when an elevation is set.
func lights(sc config.SceneConfig) lighting.Rig {
	rig := lighting.Default()
	if sc.Sun.Elevation > 0 {
		rig.Sun.Position = lighting.SunPosition(sc.Sun.Longitude, sc.Sun.Elevation, sunDistance)
	}
	return rig
}
