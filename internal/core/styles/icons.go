package styles

// Tip: To find icons use https://github.com/loichyan/nerdfix

var (
	IconBell      = "\U000F009A" // 󰂚
	IconBellOff   = "\U000F009B" // 󰂛
	IconDashboard = "\U000F056E" // 󰕮
	IconInbox     = "\U000F0687" // 󰚇
	IconDot       = "●"
	IconCircle    = "○"
)
