package model

// Color is the hint color shown on a probed cell.
type Color int

const (
	ColorWhite Color = iota
	ColorGreen
	ColorYellow
	ColorOrange
	ColorRed
)

// SensedColors lists the colors a probe can return, in table column order.
var SensedColors = []Color{ColorGreen, ColorYellow, ColorOrange, ColorRed}

func (c Color) String() string {
	return []string{"white", "green", "yellow", "orange", "red"}[c]
}
