package game

import "fmt"

// RenderHUD draws the score and, once the run is lost, the game-over overlay.
func RenderHUD(p Platform, sess *Session, cfg *Config) {
	scoreStr := fmt.Sprintf("Score: %d", sess.Score)
	p.DrawText(scoreStr, 20, 20, 2.0, Palette.Text)

	if cfg.Debug {
		dbg := fmt.Sprintf("t=%.1f obstacles=%d slow=%.2f", sess.GameTime, len(sess.Obstacles.Obstacles), sess.Electron.SlowTimer)
		p.DrawText(dbg, 20, 52, 1.0, Palette.Hint)
	}

	if sess.State != StateLost {
		return
	}

	cx := int(cfg.ScreenWidth) / 2
	cy := int(cfg.ScreenHeight) / 2

	title := "Game Over!"
	titleScale := float32(5.0)
	p.DrawText(title, cx-p.TextWidth(title, titleScale)/2, cy-90, titleScale, Palette.GameOver)

	final := fmt.Sprintf("Final score: %d", sess.Score)
	finalScale := float32(2.5)
	p.DrawText(final, cx-p.TextWidth(final, finalScale)/2, cy, finalScale, Palette.Text)

	cause := fmt.Sprintf("Captured by %s", sess.LostTo)
	causeScale := float32(1.5)
	p.DrawText(cause, cx-p.TextWidth(cause, causeScale)/2, cy+45, causeScale, KindColor(sess.LostTo).Mul(180))

	if cfg.ExitOnLoss {
		return
	}
	hint := "Press SPACE to retry, ESC to quit"
	hintScale := float32(1.5)
	p.DrawText(hint, cx-p.TextWidth(hint, hintScale)/2, cy+85, hintScale, Palette.Hint)
}
