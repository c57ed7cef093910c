package color

// ContrastClass tells whether a background reads as light or dark
type ContrastClass int

const (
	// Light backgrounds take a black foreground
	Light ContrastClass = iota
	// Dark backgrounds take a white foreground
	Dark
)

// lumaThreshold is the first luma value classified as Light
const lumaThreshold = 128

// String returns the string representation of ContrastClass
func (cc ContrastClass) String() string {
	switch cc {
	case Light:
		return "light"
	case Dark:
		return "dark"
	default:
		return "unknown"
	}
}

// Foreground returns the recommended text color for the class
func (cc ContrastClass) Foreground() Color {
	if cc == Light {
		return Black
	}
	return White
}

// Luma computes the YIQ luma (299R + 587G + 114B) / 1000 in integer arithmetic
func Luma(c Color) int {
	return (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
}

// Classify maps a background color to its contrast class
func Classify(c Color) ContrastClass {
	if Luma(c) >= lumaThreshold {
		return Light
	}
	return Dark
}

// ContrastForeground is shorthand for Classify(c).Foreground()
func ContrastForeground(c Color) Color {
	return Classify(c).Foreground()
}
