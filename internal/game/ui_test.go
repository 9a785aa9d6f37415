package game

import (
	"strings"
	"testing"
)

func TestHUDShowsScoreWhileRunning(t *testing.T) {
	cfg := quietConfig()
	s, _ := newTestSession(t, cfg)
	s.Score = 7

	fp := &fakePlatform{}
	RenderHUD(fp, s, cfg)
	if len(fp.texts) != 1 || fp.texts[0].text != "Score: 7" {
		t.Fatalf("texts %v, want only the score", fp.texts)
	}
	if fp.texts[0].x != 20 || fp.texts[0].y != 20 || fp.texts[0].col != Palette.Text {
		t.Fatalf("score drawn at (%d, %d) in %v", fp.texts[0].x, fp.texts[0].y, fp.texts[0].col)
	}
}

func TestHUDGameOverOverlay(t *testing.T) {
	cfg := quietConfig()
	s, _ := newTestSession(t, cfg)
	s.State = StateLost
	s.Score = 12
	s.LostTo = KindUranium

	fp := &fakePlatform{}
	RenderHUD(fp, s, cfg)
	for _, want := range []string{"Game Over!", "Final score: 12", "Captured by uranium"} {
		if !fp.hasText(want) {
			t.Fatalf("missing %q in %v", want, fp.texts)
		}
	}
	var retry bool
	for _, tx := range fp.texts {
		if tx.text == "Game Over!" && tx.col != Palette.GameOver {
			t.Fatalf("game over drawn in %v", tx.col)
		}
		retry = retry || strings.Contains(tx.text, "SPACE")
	}
	if !retry {
		t.Fatalf("no retry hint")
	}

	cfg.ExitOnLoss = true
	fp = &fakePlatform{}
	RenderHUD(fp, s, cfg)
	for _, tx := range fp.texts {
		if strings.Contains(tx.text, "SPACE") {
			t.Fatalf("retry hint shown although the game exits on loss")
		}
	}
}
