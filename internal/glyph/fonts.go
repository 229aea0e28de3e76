package glyph

var builtins = []struct {
	name   string
	glyphs []Glyph
}{
	{"block", blockFont},
	{"ascii", asciiFont},
	{"rounded", roundedFont},
	{"big", bigFont},
	{"slim", slimFont},
	{"dot", dotFont},
}

// Default holds the built-in fonts.
var Default = &Registry{}

func init() {
	for _, b := range builtins {
		if _, err := Default.Register(b.name, b.glyphs); err != nil {
			panic(err)
		}
	}
}

var blockFont = []Glyph{
	{"███", "█ █", "█ █", "█ █", "███"},
	{" █ ", "██ ", " █ ", " █ ", "███"},
	{"███", "  █", "███", "█  ", "███"},
	{"███", "  █", "███", "  █", "███"},
	{"█ █", "█ █", "███", "  █", "  █"},
	{"███", "█  ", "███", "  █", "███"},
	{"███", "█  ", "███", "█ █", "███"},
	{"███", "  █", "  █", "  █", "  █"},
	{"███", "█ █", "███", "█ █", "███"},
	{"███", "█ █", "███", "  █", "███"},
	{" ", "█", " ", "█", " "},
}

var asciiFont = []Glyph{
	{`   ___   `, `  / _ \  `, ` | | | | `, ` | | | | `, ` | |_| | `, `  \___/  `},
	{`  __     `, ` /_ |    `, `  | |    `, `  | |    `, `  | |    `, `  |_|    `},
	{`  ___    `, ` |__ \   `, `    ) |  `, `   / /   `, `  / /_   `, ` |____|  `},
	{`  ____   `, ` |___ \  `, `   __) | `, `  |__ <  `, `  ___) | `, ` |____/  `},
	{`  _  _   `, ` | || |  `, ` | || |_ `, ` |__   _|`, `    | |  `, `    |_|  `},
	{`  _____  `, ` | ____| `, ` | |__   `, ` |___ \  `, `  ___) | `, ` |____/  `},
	{`    __   `, `   / /   `, `  / /_   `, ` | '_ \  `, ` | (_) | `, `  \___/  `},
	{`  ______ `, ` |____  |`, `     / / `, `    / /  `, `   / /   `, `  /_/    `},
	{`   ___   `, `  / _ \  `, ` | (_) | `, `  > _ <  `, ` | (_) | `, `  \___/  `},
	{`   ___   `, `  / _ \  `, ` | (_) | `, `  \__, | `, `    / /  `, `   /_/   `},
	{`         `, `  _      `, ` (_)     `, `         `, `  _      `, ` (_)     `},
}

var roundedFont = []Glyph{
	{"╭─────╮", "│ ╭─╮ │", "│ │ │ │", "│ │ │ │", "│ ╰─╯ │", "╰─────╯"},
	{"  ╭─╮  ", "╭─╯ │  ", "╰─╮ │  ", "  │ │  ", "╭─╯ ╰─╮", "╰─────╯"},
	{"╭─────╮", "╰───╮ │", "╭───╯ │", "│ ╭───╯", "│ ╰───╮", "╰─────╯"},
	{"╭─────╮", "╰───╮ │", "╭───╯ │", "╰───╮ │", "╭───╯ │", "╰─────╯"},
	{"╭─╮ ╭─╮", "│ │ │ │", "│ ╰─╯ │", "╰───╮ │", "    │ │", "    ╰─╯"},
	{"╭─────╮", "│ ╭───╯", "│ ╰───╮", "╰───╮ │", "╭───╯ │", "╰─────╯"},
	{"╭─────╮", "│ ╭───╯", "│ ╰───╮", "│ ╭─╮ │", "│ ╰─╯ │", "╰─────╯"},
	{"╭─────╮", "╰───╮ │", "    │ │", "    │ │", "    │ │", "    ╰─╯"},
	{"╭─────╮", "│ ╭─╮ │", "│ ╰─╯ │", "│ ╭─╮ │", "│ ╰─╯ │", "╰─────╯"},
	{"╭─────╮", "│ ╭─╮ │", "│ ╰─╯ │", "╰───╮ │", "╭───╯ │", "╰─────╯"},
	{"       ", "  ╭─╮  ", "  ╰─╯  ", "  ╭─╮  ", "  ╰─╯  ", "       "},
}

var bigFont = []Glyph{
	{" ██████ ", "██    ██", "██    ██", "██    ██", "██    ██", "██    ██", " ██████ "},
	{"    ██  ", "  ████  ", "    ██  ", "    ██  ", "    ██  ", "    ██  ", " ██████ "},
	{" ██████ ", "██    ██", "      ██", "  ██████", "██      ", "██      ", "████████"},
	{" ██████ ", "██    ██", "      ██", "  ██████", "      ██", "██    ██", " ██████ "},
	{"██    ██", "██    ██", "██    ██", "████████", "      ██", "      ██", "      ██"},
	{"████████", "██      ", "██      ", "██████  ", "      ██", "██    ██", " ██████ "},
	{" ██████ ", "██      ", "██      ", "██████  ", "██    ██", "██    ██", " ██████ "},
	{"████████", "      ██", "     ██ ", "    ██  ", "   ██   ", "  ██    ", "  ██    "},
	{" ██████ ", "██    ██", "██    ██", " ██████ ", "██    ██", "██    ██", " ██████ "},
	{" ██████ ", "██    ██", "██    ██", " ███████", "      ██", "      ██", " ██████ "},
	{"      ", "  ██  ", "  ██  ", "      ", "  ██  ", "  ██  ", "      "},
}

var slimFont = []Glyph{
	{"█▀▀█", "█  █", "█▄▄█"},
	{"  █ ", "  █ ", " ███"},
	{"▀▀▀█", "█▀▀▀", "█▄▄▄"},
	{"▀▀▀█", " ▀▀█", "▄▄▄█"},
	{"█  █", "▀▀▀█", "   █"},
	{"█▀▀▀", "▀▀▀█", "▄▄▄█"},
	{"█▀▀▀", "█▀▀█", "█▄▄█"},
	{"▀▀▀█", "  █ ", " █  "},
	{"█▀▀█", "█▀▀█", "█▄▄█"},
	{"█▀▀█", "▀▀▀█", "▄▄▄█"},
	{" ▄▄ ", "    ", " ▀▀ "},
}

var dotFont = []Glyph{
	{" ●●● ", "●   ●", "●   ●", "●   ●", " ●●● "},
	{"  ●  ", " ●●  ", "  ●  ", "  ●  ", " ●●● "},
	{" ●●● ", "●   ●", "  ●● ", " ●   ", "●●●●●"},
	{" ●●● ", "    ●", "  ●● ", "    ●", " ●●● "},
	{"●   ●", "●   ●", "●●●●●", "    ●", "    ●"},
	{"●●●●●", "●    ", "●●●● ", "    ●", "●●●● "},
	{" ●●● ", "●    ", "●●●● ", "●   ●", " ●●● "},
	{"●●●●●", "   ● ", "  ●  ", " ●   ", " ●   "},
	{" ●●● ", "●   ●", " ●●● ", "●   ●", " ●●● "},
	{" ●●● ", "●   ●", " ●●●●", "    ●", " ●●● "},
	{"     ", "  ●  ", "     ", "  ●  ", "     "},
}
