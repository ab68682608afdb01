package wordrush

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/vovakirdan/word-rush/internal/core"
)

// Layout constants
const (
	panelWidth   = 48
	tilesPerRow  = 5
	tileWidth    = 5
	tileGap      = 2
	progressSize = 30
)

// Render draws the round into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sess == nil {
		return
	}

	x0 := core.Max(0, (dst.Width()-panelWidth)/2)
	y := 0

	dst.DrawTextCentered(y, "W O R D   R U S H", core.ColorBrightMagenta)
	y++
	if g.id == ModeZen {
		dst.DrawTextCentered(y, "zen", core.ColorGray)
	}
	y += 2

	y = g.drawHUD(dst, x0, y)
	y = g.drawCurrentWord(dst, x0, y)
	y = g.drawTiles(dst, y)
	y = g.drawToast(dst, y)
	g.drawFoundWords(dst, x0, y)

	g.drawControls(dst)

	if g.paused {
		drawPanel(dst, []panelLine{
			{"PAUSED", core.ColorBrightYellow},
			{"", core.ColorDefault},
			{"Ctrl+P to resume", core.ColorGray},
		})
	}
	if g.over {
		g.drawGameOver(dst)
	}
}

func (g *Game) drawHUD(dst *core.Screen, x0, y int) int {
	hud := fmt.Sprintf("Score: %-5d  Streak: %-3d", g.sess.Score(), g.sess.Streak())
	dst.DrawTextColor(x0, y, hud, core.ColorBrightWhite)

	if !g.sess.Timed() {
		dst.DrawTextColor(x0+panelWidth-8, y, "Time: --", core.ColorGray)
		return y + 2
	}

	remaining := g.sess.Remaining()
	clock := "Time: " + formatClock(remaining)
	dst.DrawTextColor(x0+panelWidth-utf8.RuneCountInString(clock), y, clock, timeColor(remaining, g.sess.Duration()))
	y++

	filled := progressFill(remaining, g.sess.Duration(), progressSize)
	px := x0 + (panelWidth-progressSize)/2
	dst.DrawHLine(px, y, filled, '█', timeColor(remaining, g.sess.Duration()))
	dst.DrawHLine(px+filled, y, progressSize-filled, '░', core.ColorGray)
	return y + 2
}

func (g *Game) drawCurrentWord(dst *core.Screen, x0, y int) int {
	box := core.NewRect(x0+panelWidth/2-12, y, 24, 3)
	dst.DrawBox(box, core.ColorGray)

	word := strings.ToUpper(g.sess.CurrentWord())
	color := core.ColorBrightCyan
	if word == "" {
		word = "Form a word..."
		color = core.ColorGray
	}
	tx := box.X + (box.W-utf8.RuneCountInString(word))/2
	dst.DrawTextColor(tx, y+1, word, color)
	return y + 4
}

func (g *Game) drawTiles(dst *core.Screen, y int) int {
	rack := g.sess.Rack()
	rowWidth := tilesPerRow*tileWidth + (tilesPerRow-1)*tileGap
	x0 := core.Max(0, (dst.Width()-rowWidth)/2)

	for i, letter := range rack {
		col := i % tilesPerRow
		row := i / tilesPerRow
		tx := x0 + col*(tileWidth+tileGap)
		ty := y + row*3

		color := core.ColorWhite
		if g.sess.IsSelected(i) {
			color = core.ColorBrightYellow
		}
		dst.DrawBox(core.NewRect(tx, ty, tileWidth, 3), color)
		dst.SetColor(tx+2, ty+1, unicode.ToUpper(letter), color)
		if hint := positionHint(i); hint != 0 {
			dst.SetColor(tx+2, ty+2, hint, core.ColorGray)
		}
	}

	rows := (len(rack) + tilesPerRow - 1) / tilesPerRow
	return y + rows*3 + 1
}

func (g *Game) drawToast(dst *core.Screen, y int) int {
	msg, tone := g.Toast()
	if msg != "" && !g.over {
		color := core.ColorCyan
		switch tone {
		case ToneSuccess:
			color = core.ColorBrightGreen
		case ToneError:
			color = core.ColorBrightRed
		}
		dst.DrawTextCentered(y, msg, color)
	}
	return y + 2
}

func (g *Game) drawFoundWords(dst *core.Screen, x0, y int) {
	words := g.sess.FoundWords()
	dst.DrawTextColor(x0, y, fmt.Sprintf("Found words (%d)", len(words)), core.ColorBrightWhite)
	y++
	if len(words) == 0 {
		dst.DrawTextColor(x0, y, "No words found yet", core.ColorGray)
		return
	}
	for _, line := range wrapWords(words, panelWidth) {
		if y >= dst.Height()-2 {
			break
		}
		dst.DrawTextColor(x0, y, line, core.ColorGreen)
		y++
	}
}

func (g *Game) drawControls(dst *core.Screen) {
	controls := "Type/1-0: pick  Enter: submit  Bksp: undo  Esc: clear  Space: shuffle"
	dst.DrawTextCentered(dst.Height()-1, controls, core.ColorGray)
}

func (g *Game) drawGameOver(dst *core.Screen) {
	sum := g.sess.Summary()
	best := "-"
	if sum.BestWord != "" {
		best = fmt.Sprintf("%s (+%d)", strings.ToUpper(sum.BestWord), sum.BestPoints)
	}
	drawPanel(dst, []panelLine{
		{"GAME OVER", core.ColorBrightRed},
		{"", core.ColorDefault},
		{fmt.Sprintf("Final Score: %d", sum.Score), core.ColorBrightYellow},
		{fmt.Sprintf("Words Found: %d", sum.WordsFound), core.ColorWhite},
		{fmt.Sprintf("Best Word: %s", best), core.ColorWhite},
		{fmt.Sprintf("Longest Streak: %d", sum.LongestStreak), core.ColorWhite},
		{"", core.ColorDefault},
		{"Ctrl+R: play again  Ctrl+C: quit", core.ColorGray},
	})
}

type panelLine struct {
	text  string
	color core.Color
}

// drawPanel draws a boxed, centered panel over whatever is on screen.
func drawPanel(dst *core.Screen, lines []panelLine) {
	w := 0
	for _, l := range lines {
		w = core.Max(w, utf8.RuneCountInString(l.text))
	}
	w += 6
	h := len(lines) + 2
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	for y := box.Y; y < box.Bottom(); y++ {
		dst.DrawHLine(box.X, y, box.W, ' ', core.ColorDefault)
	}
	dst.DrawBox(box, core.ColorBrightWhite)
	for i, l := range lines {
		tx := box.X + (box.W-utf8.RuneCountInString(l.text))/2
		dst.DrawTextColor(tx, box.Y+1+i, l.text, l.color)
	}
}

// positionHint is the digit that toggles tile i, or 0 past the tenth tile.
func positionHint(i int) rune {
	switch {
	case i < 9:
		return rune('1' + i)
	case i == 9:
		return '0'
	default:
		return 0
	}
}

func formatClock(d time.Duration) string {
	secs := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func progressFill(remaining, total time.Duration, width int) int {
	if total <= 0 {
		return 0
	}
	return core.Clamp(int(int64(width)*int64(remaining)/int64(total)), 0, width)
}

func timeColor(remaining, total time.Duration) core.Color {
	switch {
	case total <= 0 || remaining*2 > total:
		return core.ColorGreen
	case remaining*5 > total:
		return core.ColorYellow
	default:
		return core.ColorRed
	}
}

// wrapWords joins words with spaces into lines no wider than width.
func wrapWords(words []string, width int) []string {
	var lines []string
	var cur strings.Builder
	for _, w := range words {
		n := utf8.RuneCountInString(w)
		if cur.Len() > 0 && utf8.RuneCountInString(cur.String())+1+n > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(w)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
