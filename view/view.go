// Package view renders a tinsel engine with Ebitengine: a perspective
// orbit camera with hand parallax, depth-sorted billboard particles, and
// textured photo cards. The engine itself is renderer-agnostic; this
// package is one host for it.
package view

import (
	"image/color"

	"cogentcore.org/core/math32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/tinsel"
)

// whitePixel is a 1x1 white image used for solid color billboards.
var whitePixel *ebiten.Image

func init() {
	whitePixel = ebiten.NewImage(1, 1)
	whitePixel.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
}

// color32 is a compact RGBA color using float32, for render commands only.
type color32 struct {
	R, G, B, A float32
}

// ornamentPalette tints ornaments by ordinal. Alpha 1; premultiplication
// occurs at vertex build time.
var ornamentPalette = []color32{
	{1.00, 0.78, 0.25, 1}, // gold
	{0.90, 0.20, 0.24, 1}, // crimson
	{0.22, 0.68, 0.40, 1}, // emerald
	{0.45, 0.72, 0.95, 1}, // ice blue
}

var dustColor = color32{0.95, 0.97, 1.0, 0.45}

// World-space particle dimensions before per-particle scale.
const (
	ornamentRadius = 0.12
	dustRadius     = 0.035
	photoHalfW     = 0.55
	photoHalfH     = 0.41
)

// Per-mode orbit distances and the push tween duration.
const (
	treeDistance    = 14
	scatterDistance = 18
	focusDistance   = 10
	pushDuration    = 1.2
)

// renderCommand is a single projected particle awaiting depth sort.
// Billboard fields serve ornaments and dust; card fields serve photos.
type renderCommand struct {
	kind  tinsel.Kind
	depth float32
	order int // emission order for stable sort

	// Billboard: screen center and half size in pixels.
	x, y, half float32
	color      color32

	// Card: projected corners (TL, TR, BL, BR) and the photo image.
	corners [4]math32.Vector2
	img     *ebiten.Image
}

const defaultCommandCap = 4096

// View draws one engine's particles to an Ebitengine screen.
//
// Update and Draw mirror the ebiten.Game split: Update advances the
// camera on the tick clock, Draw projects and paints the current state.
type View struct {
	engine *tinsel.Engine
	cam    *Camera

	// Background is the clear color behind the scene.
	Background color.RGBA
	// ScreenshotDir is where Screenshot writes PNG captures.
	ScreenshotDir string

	commands   []renderCommand
	sortBuf    []renderCommand
	batchVerts []ebiten.Vertex
	batchInds  []uint32
	cardVerts  [4]ebiten.Vertex

	screenshotQueue []string

	lastMode  tinsel.Mode
	modeKnown bool
}

// New creates a View for the given engine with the default camera.
func New(engine *tinsel.Engine) *View {
	return &View{
		engine:        engine,
		cam:           NewCamera(),
		Background:    color.RGBA{R: 5, G: 8, B: 16, A: 255},
		ScreenshotDir: "screenshots",
		commands:      make([]renderCommand, 0, defaultCommandCap),
		sortBuf:       make([]renderCommand, 0, defaultCommandCap),
	}
}

// Camera returns the view's camera for direct framing control.
func (v *View) Camera() *Camera {
	return v.cam
}

// Update advances the camera: hand parallax from the engine's pointing
// state, a framing push when the mode changed since the last frame, and
// any tween in flight. Call once per tick, after Engine.Advance.
func (v *View) Update() {
	st := v.engine.State()
	v.cam.Parallax(st.HandX, st.HandY)

	if !v.modeKnown {
		v.lastMode = st.Mode
		v.modeKnown = true
	} else if st.Mode != v.lastMode {
		v.cam.PushTo(framingFor(st.Mode), pushDuration, ease.OutQuad)
		v.lastMode = st.Mode
	}

	v.cam.update(1.0 / float32(ebiten.TPS()))
}

// framingFor returns the orbit distance that frames the given mode.
func framingFor(mode tinsel.Mode) float32 {
	switch mode {
	case tinsel.ModeScatter:
		return scatterDistance
	case tinsel.ModeFocus:
		return focusDistance
	default:
		return treeDistance
	}
}

// Draw projects every particle, sorts far-to-near, and paints the frame.
func (v *View) Draw(screen *ebiten.Image) {
	screen.Fill(v.Background)

	b := screen.Bounds()
	w := float32(b.Dx())
	h := float32(b.Dy())

	v.emit(w, h)
	v.mergeSort()
	v.submit(screen)

	v.flushScreenshots(screen)
}

// emit projects the engine's particles into render commands, culling
// anything behind the camera or fully off screen.
func (v *View) emit(w, h float32) {
	v.commands = v.commands[:0]
	focal := v.cam.focalLength(h)

	parts := v.engine.Particles()
	for i := range parts {
		p := &parts[i]
		if p.Kind == tinsel.KindPhoto {
			v.emitCard(p, w, h)
			continue
		}
		v.emitBillboard(p, w, h, focal)
	}
}

// emitBillboard projects an ornament or dust flake as a screen-aligned
// quad sized by depth.
func (v *View) emitBillboard(p *tinsel.Particle, w, h, focal float32) {
	sx, sy, depth, ok := v.cam.Project(p.Current.Pos, w, h)
	if !ok {
		return
	}

	radius := float32(ornamentRadius)
	col := ornamentPalette[p.Ordinal%len(ornamentPalette)]
	if p.Kind == tinsel.KindDust {
		radius = dustRadius
		col = dustColor
	}
	half := radius * p.Current.Scale.X * focal / depth
	if half < 0.5 {
		return
	}
	if sx+half < 0 || sx-half > w || sy+half < 0 || sy-half > h {
		return
	}

	v.commands = append(v.commands, renderCommand{
		kind:  p.Kind,
		depth: depth,
		order: len(v.commands),
		x:     sx,
		y:     sy,
		half:  half,
		color: col,
	})
}

// emitCard projects a photo as an oriented card: the particle's rotation
// turns its local axes in world space, and each corner projects on its
// own, so cards foreshorten correctly as they yaw.
func (v *View) emitCard(p *tinsel.Particle, w, h float32) {
	center := p.Current.Pos
	right := math32.Vec3(photoHalfW*p.Current.Scale.X, 0, 0).MulQuat(p.Current.Quat)
	up := math32.Vec3(0, photoHalfH*p.Current.Scale.Y, 0).MulQuat(p.Current.Quat)

	worldCorners := [4]math32.Vector3{
		center.Sub(right).Add(up), // TL
		center.Add(right).Add(up), // TR
		center.Sub(right).Sub(up), // BL
		center.Add(right).Sub(up), // BR
	}

	cmd := renderCommand{
		kind:  tinsel.KindPhoto,
		order: len(v.commands),
		color: color32{1, 1, 1, 1},
	}
	for i, wc := range worldCorners {
		sx, sy, _, ok := v.cam.Project(wc, w, h)
		if !ok {
			return
		}
		cmd.corners[i] = math32.Vec2(sx, sy)
	}
	_, _, depth, ok := v.cam.Project(center, w, h)
	if !ok {
		return
	}
	cmd.depth = depth
	cmd.img, _ = p.Payload.(*ebiten.Image)
	v.commands = append(v.commands, cmd)
}

// --- Depth sort ---

// commandFartherOrEqual returns true if a should draw before or at the
// same position as b. Far-to-near painter order; using <= for the
// emission order ensures stability.
func commandFartherOrEqual(a, b renderCommand) bool {
	if a.depth != b.depth {
		return a.depth > b.depth
	}
	return a.order <= b.order
}

// mergeSort sorts v.commands in-place using v.sortBuf as scratch space.
// Bottom-up merge sort: zero allocations after the sort buffer reaches
// high-water mark.
func (v *View) mergeSort() {
	n := len(v.commands)
	if n <= 1 {
		return
	}
	if cap(v.sortBuf) < n {
		v.sortBuf = make([]renderCommand, n)
	}
	v.sortBuf = v.sortBuf[:n]

	a := v.commands
	b := v.sortBuf
	swapped := false

	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			lo := i
			mid := lo + width
			if mid > n {
				mid = n
			}
			hi := lo + 2*width
			if hi > n {
				hi = n
			}
			mergeRun(a, b, lo, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}

	if swapped {
		copy(v.commands, v.sortBuf)
	}
}

// mergeRun merges two sorted runs [lo, mid) and [mid, hi) from src into dst.
func mergeRun(src, dst []renderCommand, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if commandFartherOrEqual(src[i], src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	for i < mid {
		dst[k] = src[i]
		i++
		k++
	}
	for j < hi {
		dst[k] = src[j]
		j++
		k++
	}
}

// --- Submission ---

// submit walks sorted commands in order, batching consecutive billboards
// of the same kind into a single DrawTriangles32 call and drawing each
// photo card on its own.
func (v *View) submit(screen *ebiten.Image) {
	v.batchVerts = v.batchVerts[:0]
	v.batchInds = v.batchInds[:0]

	var runKind tinsel.Kind
	inRun := false

	for i := range v.commands {
		cmd := &v.commands[i]

		if cmd.kind == tinsel.KindPhoto {
			v.flushBillboards(screen, runKind)
			inRun = false
			v.submitCard(screen, cmd)
			continue
		}

		if inRun && cmd.kind != runKind {
			v.flushBillboards(screen, runKind)
		}
		runKind = cmd.kind
		inRun = true
		v.appendBillboardQuad(cmd)
	}

	v.flushBillboards(screen, runKind)
}

// appendBillboardQuad appends 4 vertices and 6 indices for one billboard.
func (v *View) appendBillboardQuad(cmd *renderCommand) {
	x0 := cmd.x - cmd.half
	x1 := cmd.x + cmd.half
	y0 := cmd.y - cmd.half
	y1 := cmd.y + cmd.half

	// Premultiplied RGBA.
	ca := cmd.color.A
	cr := cmd.color.R * ca
	cg := cmd.color.G * ca
	cb := cmd.color.B * ca

	dx := [4]float32{x0, x1, x0, x1}
	dy := [4]float32{y0, y0, y1, y1}

	base := uint32(len(v.batchVerts))
	for i := 0; i < 4; i++ {
		v.batchVerts = append(v.batchVerts, ebiten.Vertex{
			DstX:   dx[i],
			DstY:   dy[i],
			SrcX:   0,
			SrcY:   0,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}

	// Two triangles: TL-TR-BL, TR-BR-BL.
	v.batchInds = append(v.batchInds,
		base+0, base+1, base+2,
		base+1, base+3, base+2,
	)
}

// flushBillboards submits accumulated billboard vertices in one call.
// Dust blends additively so overlapping flakes glow instead of stacking
// gray; ornaments use standard alpha blending.
func (v *View) flushBillboards(screen *ebiten.Image, kind tinsel.Kind) {
	if len(v.batchVerts) == 0 {
		return
	}

	var triOp ebiten.DrawTrianglesOptions
	triOp.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	if kind == tinsel.KindDust {
		triOp.Blend = ebiten.BlendLighter
	} else {
		triOp.Blend = ebiten.BlendSourceOver
	}

	screen.DrawTriangles32(v.batchVerts, v.batchInds, whitePixel, &triOp)

	v.batchVerts = v.batchVerts[:0]
	v.batchInds = v.batchInds[:0]
}

// cardInds indexes the two triangles of a photo card: TL-TR-BL, TR-BR-BL.
var cardInds = []uint32{0, 1, 2, 1, 3, 2}

// submitCard draws one photo card from its projected corners. A photo
// with no image payload renders as a blank warm-white card.
func (v *View) submitCard(screen *ebiten.Image, cmd *renderCommand) {
	img := cmd.img
	cr, cg, cb := float32(1), float32(1), float32(1)
	if img == nil {
		img = whitePixel
		cr, cg, cb = 0.92, 0.88, 0.82
	}

	// UV bounds on the source's own coordinate system, so sub-images work.
	b := img.Bounds()
	su0, sv0 := float32(b.Min.X), float32(b.Min.Y)
	su1, sv1 := float32(b.Max.X), float32(b.Max.Y)

	sx := [4]float32{su0, su1, su0, su1}
	sy := [4]float32{sv0, sv0, sv1, sv1}

	for i := 0; i < 4; i++ {
		v.cardVerts[i] = ebiten.Vertex{
			DstX:   cmd.corners[i].X,
			DstY:   cmd.corners[i].Y,
			SrcX:   sx[i],
			SrcY:   sy[i],
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: 1,
		}
	}

	var triOp ebiten.DrawTrianglesOptions
	triOp.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	triOp.Blend = ebiten.BlendSourceOver
	screen.DrawTriangles32(v.cardVerts[:], cardInds, img, &triOp)
}
