package uci

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/internal/types"
)

func TestUciCommandAnnouncesIdentity(t *testing.T) {
	h := New()
	out := h.Command("uci")
	assert.Contains(t, out, "id name corvid")
	assert.Contains(t, out, "uciok")
}

func TestIsReadyRespondsReadyOk(t *testing.T) {
	h := New()
	assert.Equal(t, "readyok\n", h.Command("isready"))
}

func TestPositionStartposThenMoves(t *testing.T) {
	h := New()
	h.Command("position startpos moves e2e4 e7e5")
	assert.Equal(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2", h.pos.FEN())
}

func TestPositionFen(t *testing.T) {
	h := New()
	fen := "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	h.Command("position fen " + fen)
	assert.Equal(t, fen, h.pos.FEN())
}

func TestGoDepthReturnsBestmove(t *testing.T) {
	h := New()
	var buf bytes.Buffer
	h.OutIo = bufio.NewWriter(&buf)
	h.Command("position startpos")
	h.handle("go depth 1")
	require.Eventually(t, func() bool {
		return strings.Contains(buf.String(), "bestmove")
	}, 5*time.Second, 10*time.Millisecond)
}

func TestScoreTokenRendersCentipawns(t *testing.T) {
	assert.Equal(t, "cp 37", scoreToken(types.Value(37)))
	assert.Equal(t, "cp -12", scoreToken(types.Value(-12)))
}

func TestScoreTokenRendersMateInMoves(t *testing.T) {
	assert.Equal(t, "mate 1", scoreToken(types.MateIn(1)))
	assert.Equal(t, "mate 2", scoreToken(types.MateIn(3)))
	assert.Equal(t, "mate -1", scoreToken(types.MatedIn(1)))
}

func TestStopEndsAnInfiniteGo(t *testing.T) {
	h := New()
	h.Command("position startpos")
	h.Command("go infinite")
	time.Sleep(20 * time.Millisecond)
	h.Command("stop")
	require.Eventually(t, func() bool {
		return !h.engine.IsSearching()
	}, 2*time.Second, 10*time.Millisecond)
}
