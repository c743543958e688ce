package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// Visual layout of each entity kind. Lower depth draws on top.
var (
	playerRows = []string{"]o>"}
	shotRows   = []string{"-"}
	enemyRows  = []string{
		`//`,
		`//`,
		` o`,
		`\\`,
		`\\`,
	}
)

const (
	playerDepth = 0.0
	shotDepth   = 1.0 // Behind the player
	enemyDepth  = 0.0
)

func playerSprite() core.Sprite {
	return core.NewSprite(playerRows, core.ColorBrightCyan, playerDepth)
}

func shotSprite() core.Sprite {
	return core.NewSprite(shotRows, core.ColorBrightYellow, shotDepth)
}

func enemySprite() core.Sprite {
	return core.NewSprite(enemyRows, core.ColorBrightRed, enemyDepth)
}
