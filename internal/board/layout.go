package board

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Canvas and toolbar geometry. The field fills everything below the toolbar.
const (
	CanvasWidth   = 800
	CanvasHeight  = 600
	ToolbarHeight = 50

	PlayerRadius   = 10.0
	BallRadius     = 7.0
	PlayersPerSide = 11
)

// Field markings, in pixels unless noted.
const (
	boundaryWidth     = 3.0
	markingWidth      = 2.0
	centerCircleR     = 60.0
	penaltyBoxDepth   = 100.0
	penaltyBoxTopFrac = 0.2 // fraction of field height above the box
	penaltyBoxHFrac   = 0.6
	dArcRadius        = 60.0
	goalWidth         = 60.0
	goalDepth         = 10.0

	shapeStrokeWidth   = 2.0
	previewStrokeWidth = 1.0

	// playerMargin keeps the first and last player of a column off the touchlines.
	playerMargin = 30.0
)

var (
	// FieldRect is the playing surface.
	FieldRect = Rect{X: 0, Y: ToolbarHeight, W: CanvasWidth, H: CanvasHeight - ToolbarHeight}
	// ToolbarRect is the strip holding the tool buttons.
	ToolbarRect = Rect{X: 0, Y: 0, W: CanvasWidth, H: ToolbarHeight}
	// RectToolButton selects the rectangle tool.
	RectToolButton = Rect{X: 10, Y: 10, W: 80, H: 30}
	// ArrowToolButton selects the arrow tool.
	ArrowToolButton = Rect{X: 100, Y: 10, W: 80, H: 30}
)

// Palette.
var (
	colorBackground = colornames.White
	colorToolbar    = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	colorRectBtn    = color.RGBA{R: 100, G: 200, B: 100, A: 255}
	colorArrowBtn   = color.RGBA{R: 200, G: 100, B: 100, A: 255}
	colorLabel      = colornames.Black
	colorField      = colornames.Green // (0,128,0)
	colorMarking    = colornames.White
	colorTeamA      = colornames.Blue
	colorTeamB      = colornames.Red
	colorBall       = colornames.White

	// DefaultShapeColor is the colour of every committed annotation.
	DefaultShapeColor = colornames.White
)

// toolButtons lists the toolbar controls in hit-test priority order.
var toolButtons = [...]struct {
	kind  ShapeKind
	rect  Rect
	label string
	fill  color.RGBA
}{
	{ShapeRectangle, RectToolButton, "Rect", colorRectBtn},
	{ShapeArrow, ArrowToolButton, "Line", colorArrowBtn},
}
