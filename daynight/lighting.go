package daynight

import (
	"image/color"

	"github.com/milk9111/duskrun/common"
)

// Lighting is the scene lighting for one instant of the cycle.
type Lighting struct {
	Sky         color.RGBA
	Fog         color.RGBA
	Ambient     float64
	Directional float64
	FogNear     float64
	FogFar      float64
	// Lantern is the player's light, lit from twilight until sunrise ends.
	Lantern float64
}

var (
	dayLighting = Lighting{
		Sky:         color.RGBA{R: 0x87, G: 0xce, B: 0xeb, A: 0xff},
		Fog:         color.RGBA{R: 0x87, G: 0xce, B: 0xeb, A: 0xff},
		Ambient:     0.6,
		Directional: 1.0,
		FogNear:     30,
		FogFar:      100,
	}
	sunsetLighting = Lighting{
		Sky:         color.RGBA{R: 0xff, G: 0x7e, B: 0x47, A: 0xff},
		Fog:         color.RGBA{R: 0xc8, G: 0x6a, B: 0x4a, A: 0xff},
		Ambient:     0.45,
		Directional: 0.6,
		FogNear:     20,
		FogFar:      80,
	}
	nightLighting = Lighting{
		Sky:         color.RGBA{R: 0x14, G: 0x14, B: 0x32, A: 0xff},
		Fog:         color.RGBA{R: 0x0a, G: 0x0a, B: 0x1e, A: 0xff},
		Ambient:     0.15,
		Directional: 0.1,
		FogNear:     8,
		FogFar:      45,
		Lantern:     1,
	}
)

// LightingAt interpolates lighting for a time of day. Day and Night hold
// their keyframes; Sunset, Twilight and Sunrise blend linearly across their
// span.
func LightingAt(t float64) Lighting {
	switch PhaseAt(t) {
	case Day:
		return dayLighting
	case Sunset:
		return blend(dayLighting, sunsetLighting, (t-sunsetStart)/(twilightStart-sunsetStart))
	case Twilight:
		return blend(sunsetLighting, nightLighting, (t-twilightStart)/(nightStart-twilightStart))
	case Night:
		return nightLighting
	default:
		return blend(nightLighting, dayLighting, (t-sunriseStart)/(1-sunriseStart))
	}
}

func blend(a, b Lighting, f float64) Lighting {
	f = common.Clamp(f, 0, 1)
	return Lighting{
		Sky:         lerpColor(a.Sky, b.Sky, f),
		Fog:         lerpColor(a.Fog, b.Fog, f),
		Ambient:     common.Lerp(a.Ambient, b.Ambient, f),
		Directional: common.Lerp(a.Directional, b.Directional, f),
		FogNear:     common.Lerp(a.FogNear, b.FogNear, f),
		FogFar:      common.Lerp(a.FogFar, b.FogFar, f),
		Lantern:     common.Lerp(a.Lantern, b.Lantern, f),
	}
}

func lerpColor(a, b color.RGBA, f float64) color.RGBA {
	ch := func(x, y uint8) uint8 {
		return uint8(common.Lerp(float64(x), float64(y), f) + 0.5)
	}
	return color.RGBA{R: ch(a.R, b.R), G: ch(a.G, b.G), B: ch(a.B, b.B), A: ch(a.A, b.A)}
}
