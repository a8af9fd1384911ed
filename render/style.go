package render

// Terminal styling escape sequences for the price table.
const (
	Reset      = "\033[0m"
	Bold       = "\033[1m"
	Yellow     = "\033[93m"
	White      = "\033[97m"
	LightBlue  = "\033[94m"
	LightGreen = "\033[92m"
	LightRed   = "\033[91m"
	// Select inverts the foreground and background, visually dominating
	// any color printed before it.
	Select = "\033[7m"
)
