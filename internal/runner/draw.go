package runner

import (
	"image/color"
	"math"

	"chosenoffset.com/streetrun/internal/config"
	"chosenoffset.com/streetrun/internal/geom"
	"chosenoffset.com/streetrun/internal/render"
)

// Camera projection tuning. The camera sits behind the player, slightly
// above the street, looking down the track.
const (
	cameraZ      = 12.0
	cameraHeight = 4.5
	focalLength  = 300.0
	horizonFrac  = 0.35 // horizon line as a fraction of screen height
	maxDrawDepth = 130.0
)

// Scene palette.
var (
	colorSky      = color.RGBA{R: 0x87, G: 0xb5, B: 0xe5, A: 0xff}
	colorRoadA    = color.RGBA{R: 0x3a, G: 0x3a, B: 0x42, A: 0xff}
	colorRoadB    = color.RGBA{R: 0x44, G: 0x44, B: 0x4d, A: 0xff}
	colorBuilding = color.RGBA{R: 0x6e, G: 0x5a, B: 0x4e, A: 0xff}
	colorCloud    = color.RGBA{R: 0xf4, G: 0xf4, B: 0xf8, A: 0xff}
	colorBarrier  = color.RGBA{R: 0xc3, G: 0x2f, B: 0x27, A: 0xff}
	colorCoin     = color.RGBA{R: 0xf0, G: 0xc4, B: 0x20, A: 0xff}
	colorPlayer   = color.RGBA{R: 0x2e, G: 0x6f, B: 0xb8, A: 0xff}
	colorGround   = color.RGBA{R: 0x4f, G: 0x75, B: 0x45, A: 0xff}
)

// playerSprite is the asset name the draw pass looks up in the art store.
const playerSprite = "player"

// project maps a world position to screen coordinates and a scale factor.
// Returns ok=false for points behind the camera or past the draw distance.
func project(pos geom.Vector3, w, h int) (sx, sy, scale float64, ok bool) {
	depth := cameraZ - pos.Z
	if depth < 1 || depth > maxDrawDepth {
		return 0, 0, 0, false
	}
	scale = focalLength / depth
	sx = float64(w)/2 + pos.X*scale
	sy = float64(h)*horizonFrac + (cameraHeight-pos.Y)*scale
	return sx, sy, scale, true
}

// Draw renders the scene back to front onto the screen.
func (g *Game) Draw(r render.Renderer, screen render.Image) {
	w, h := screen.Size()
	screen.Fill(colorSky)
	// Ground plane below the horizon.
	r.FillRect(screen, 0, float32(float64(h)*horizonFrac), float32(w), float32(h), colorGround)

	g.drawClouds(r, screen, w, h)
	g.drawRoad(r, screen, w, h)
	g.drawBuildings(r, screen, w, h)
	g.drawBarriers(r, screen, w, h)
	g.drawCoins(r, screen, w, h)
	g.drawPlayer(r, screen, w, h)
}

func (g *Game) drawClouds(r render.Renderer, screen render.Image, w, h int) {
	for _, c := range g.env.Clouds() {
		sx, sy, scale, ok := project(c.Pos, w, h)
		if !ok {
			continue
		}
		radius := float32(2.2 * scale)
		r.FillCircle(screen, float32(sx), float32(sy), radius, colorCloud)
		r.FillCircle(screen, float32(sx)+radius*0.8, float32(sy)+radius*0.2, radius*0.7, colorCloud)
	}
}

// drawRoad paints each segment as a horizontal band between its projected
// near and far edges, alternating shades so the scroll is visible.
func (g *Game) drawRoad(r render.Renderer, screen render.Image, w, h int) {
	halfWidth := config.LaneDistance * 1.5

	for i, seg := range g.env.Road() {
		near := seg.Pos
		far := seg.Pos
		far.Z -= config.RoadSegmentSpacing

		_, nearY, nearScale, okNear := project(near, w, h)
		_, farY, _, okFar := project(far, w, h)
		if !okNear || !okFar {
			continue
		}
		clr := colorRoadA
		if i%2 == 1 {
			clr = colorRoadB
		}
		bandW := float32(2 * halfWidth * nearScale)
		x := float32(float64(w)/2) - bandW/2
		r.FillRect(screen, x, float32(farY), bandW, float32(nearY-farY), clr)
	}
}

func (g *Game) drawBuildings(r render.Renderer, screen render.Image, w, h int) {
	for _, b := range g.env.Buildings() {
		sx, sy, scale, ok := project(b.Pos, w, h)
		if !ok {
			continue
		}
		bw := float32(4 * scale)
		bh := float32(9 * scale)
		r.FillRect(screen, float32(sx)-bw/2, float32(sy)-bh, bw, bh, colorBuilding)
	}
}

func (g *Game) drawBarriers(r render.Renderer, screen render.Image, w, h int) {
	for _, b := range g.obstacles.Barriers() {
		sx, sy, scale, ok := project(b.Pos, w, h)
		if !ok {
			continue
		}
		bw := float32(1.5 * scale)
		bh := float32(0.9 * scale)
		r.FillRect(screen, float32(sx)-bw/2, float32(sy)-bh, bw, bh, colorBarrier)
	}
}

func (g *Game) drawCoins(r render.Renderer, screen render.Image, w, h int) {
	for _, c := range g.coins.Coins() {
		sx, sy, scale, ok := project(c.Pos, w, h)
		if !ok {
			continue
		}
		// Squash the circle horizontally with the spin phase so the coin
		// appears to rotate in place.
		radius := float32(0.45 * scale)
		squash := float32(math.Abs(math.Cos(c.Phase)))
		r.FillRect(screen, float32(sx)-radius*squash, float32(sy)-radius, 2*radius*squash, 2*radius, colorCoin)
		r.FillCircle(screen, float32(sx), float32(sy), radius*squash*0.6, colorCoin)
	}
}

func (g *Game) drawPlayer(r render.Renderer, screen render.Image, w, h int) {
	pos := g.Player.Pos
	sx, sy, scale, ok := project(pos, w, h)
	if !ok {
		return
	}

	pw := float32(0.9 * scale)
	ph := float32(1.6 * scale)
	if g.Player.IsSliding {
		// Visual crouch only; the collision box stays full height.
		ph *= 0.55
	}

	if g.art != nil {
		if img, loaded := g.art.Image(playerSprite); loaded && img != nil {
			iw, ih := img.Size()
			geoM := render.NewGeoM()
			geoM.Scale(float64(pw)/float64(iw), float64(ph)/float64(ih))
			geoM.Translate(float64(sx)-float64(pw)/2, float64(sy)-float64(ph))
			screen.DrawImage(img, &render.DrawImageOptions{GeoM: geoM})
			return
		}
	}
	r.FillRect(screen, float32(sx)-pw/2, float32(sy)-ph, pw, ph, colorPlayer)
}
