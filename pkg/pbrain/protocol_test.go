package pbrain

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	. "github.com/ChizhovVadim/GomokuGo/pkg/common"
	"github.com/ChizhovVadim/GomokuGo/pkg/engine"
)

func newTestProtocol() (*Protocol, *engine.Engine) {
	var eng = engine.NewEngine(engine.NewOptions(2))
	var p = New("GomokuGo", "tester", "dev", "CZ", eng, []Option{
		&MillisecondsOption{Name: "timeout_turn", Value: &eng.Options.TimeBudget},
		&IntOption{Name: "depth", Min: 1, Max: 6, Value: &eng.Options.Config.MaxDepth},
		&BoolOption{Name: "pruning", Value: &eng.Options.UsePruning},
	})
	return p, eng
}

func run(t *testing.T, p *Protocol, input string) []string {
	t.Helper()
	var out bytes.Buffer
	p.in = strings.NewReader(input)
	p.out = &out
	if err := p.Run(context.Background(), zerolog.Nop()); err != nil {
		t.Fatal(err)
	}
	var lines []string
	for _, line := range strings.Split(out.String(), "\n") {
		if line != "" && !strings.HasPrefix(line, "MESSAGE") {
			lines = append(lines, line)
		}
	}
	return lines
}

func equalLines(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestBegin(t *testing.T) {
	var p, _ = newTestProtocol()
	var lines = run(t, p, "START 15\nBEGIN\nEND\nBEGIN\n")
	if !equalLines(lines, []string{"OK", "7,7"}) {
		t.Error(lines)
	}
	if p.board.Get(7, 7) != own {
		t.Error("own move was not recorded")
	}
}

func TestTurn(t *testing.T) {
	var p, _ = newTestProtocol()
	var lines = run(t, p, "START 15\nTURN 7,7\n")
	if len(lines) != 2 || lines[0] != "OK" {
		t.Fatal(lines)
	}
	var m, _, err = parseStone(lines[1], false)
	if err != nil {
		t.Fatal(err)
	}
	if Abs(m.Row-7) > 1 || Abs(m.Col-7) > 1 || p.board.At(m) != own {
		t.Error("reply", lines[1])
	}
	if p.board.Get(7, 7) != opponent || p.board.StoneCount() != 2 {
		t.Error(p.board)
	}
}

func TestBoardWin(t *testing.T) {
	var p, _ = newTestProtocol()
	var lines = run(t, p, strings.Join([]string{
		"START 15",
		"BOARD",
		"3,7,1", "0,0,2",
		"4,7,1", "1,0,2",
		"5,7,1", "2,0,2",
		"6,7,1", "3,0,2",
		"DONE",
	}, "\n"))
	if !equalLines(lines, []string{"OK", "2,7"}) {
		t.Error(lines)
	}
}

func TestBoardBlock(t *testing.T) {
	var p, _ = newTestProtocol()
	var lines = run(t, p, strings.Join([]string{
		"START 15",
		"BOARD",
		"5,5,2", "5,6,2", "5,7,2", "5,8,2",
		"5,4,1", "0,0,1", "14,14,1",
		"DONE",
	}, "\n"))
	if !equalLines(lines, []string{"OK", "5,9"}) {
		t.Error(lines)
	}
}

func TestRestart(t *testing.T) {
	var p, _ = newTestProtocol()
	var lines = run(t, p, "START 10\nBEGIN\nRESTART\n")
	if !equalLines(lines, []string{"OK", "5,5", "OK"}) {
		t.Error(lines)
	}
	if !p.board.IsEmpty() || p.board.Size() != 10 {
		t.Error(p.board)
	}
}

func TestErrors(t *testing.T) {
	var tests = []struct {
		input string
		want  string
	}{
		{"BEGIN", "ERROR"},
		{"START 4", "ERROR"},
		{"START x", "ERROR"},
		{"START 15\nTURN 15,0", "ERROR"},
		{"START 15\nTURN 7", "ERROR"},
		{"START 15\nTURN 7,7\nTURN 7,7", "ERROR"},
		{"PLAY 1,1", "UNKNOWN"},
		{"SETOPTION hash 16", "ERROR"},
	}
	for _, test := range tests {
		var p, _ = newTestProtocol()
		var lines = run(t, p, test.input)
		if len(lines) == 0 || !strings.HasPrefix(lines[len(lines)-1], test.want) {
			t.Errorf("%q: %v", test.input, lines)
		}
	}
}

func TestOptions(t *testing.T) {
	var p, eng = newTestProtocol()
	var lines = run(t, p, "INFO timeout_turn 500\nINFO max_memory 83886080\nSETOPTION depth 3\nSETOPTION pruning false\nINFO timeout_turn 0\n")
	if len(lines) != 0 {
		t.Error(lines)
	}
	if eng.Options.TimeBudget != 500*time.Millisecond {
		t.Error(eng.Options.TimeBudget)
	}
	if eng.Options.Config.MaxDepth != 3 || eng.Options.UsePruning {
		t.Error(eng.Options)
	}
	lines = run(t, p, "SETOPTION depth 9\nOPTIONS\n")
	if len(lines) != 4 || !strings.HasPrefix(lines[0], "ERROR") || lines[2] != "option depth type spin default 3 min 1 max 6" {
		t.Error(lines)
	}
}

func TestAbout(t *testing.T) {
	var p, _ = newTestProtocol()
	var lines = run(t, p, "ABOUT\n")
	var want = `name="GomokuGo", version="dev", author="tester", country="CZ"`
	if !equalLines(lines, []string{want}) {
		t.Error(lines)
	}
}

func TestParseStone(t *testing.T) {
	var m, who, err = parseStone("3,4,2", true)
	if err != nil || m != (Move{Row: 4, Col: 3}) || who != 2 {
		t.Error(m, who, err)
	}
	if _, _, err = parseStone("3,4,5", true); err == nil {
		t.Error("expected error")
	}
	if _, _, err = parseStone("3,4,1", false); err == nil {
		t.Error("expected error")
	}
	if formatMove(m) != "3,4" {
		t.Error(formatMove(m))
	}
}
