package registry

func init() {
	Register(Ramp{Name: "ascii", Description: "Classic ASCII density ramp", Glyphs: " .:-=+*#%@"})
	Register(Ramp{Name: "blocks", Description: "Unicode shade blocks", Glyphs: " ░▒▓█"})
	Register(Ramp{Name: "dots", Description: "Sparse dots and rings", Glyphs: " ·∙•○◎●"})
	Register(Ramp{Name: "shade", Description: "Long ASCII ramp for smooth gradients", Glyphs: " .'`^\",:;Il!i><~+_-?][}{1)(|/tfjrxnuvczXYUJCLQ0OZmwqpdbkhao*#MW&8%B@$"})
	Register(Ramp{Name: "digits", Description: "Digits 0-9", Glyphs: "0123456789"})
}
