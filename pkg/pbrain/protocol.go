// Package pbrain speaks the Gomocup brain protocol used by piskvork and other gomoku managers.
package pbrain

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	. "github.com/ChizhovVadim/GomokuGo/pkg/common"
	"github.com/ChizhovVadim/GomokuGo/pkg/engine"
)

type Engine interface {
	Search(ctx context.Context, params engine.SearchParams) (engine.SearchInfo, error)
}

// Own stones are kept as Black and the manager's stones as White, whoever started.
const (
	own      = Black
	opponent = White
)

var (
	errNoGame    = errors.New("no game started")
	errBoardFull = errors.New("board is full")
)

type Protocol struct {
	name      string
	author    string
	version   string
	country   string
	options   []Option
	engine    Engine
	in        io.Reader
	out       io.Writer
	logger    zerolog.Logger
	board     *Board
	boardMode bool
}

func New(name, author, version, country string, engine Engine, options []Option) *Protocol {
	return &Protocol{
		name:    name,
		author:  author,
		version: version,
		country: country,
		engine:  engine,
		options: options,
		in:      os.Stdin,
		out:     os.Stdout,
		logger:  zerolog.Nop(),
	}
}

// Run serves commands until END, the end of input or the cancellation of ctx.
func (p *Protocol) Run(ctx context.Context, logger zerolog.Logger) error {
	p.logger = logger
	var ctx2, cancel = context.WithCancel(ctx)
	defer cancel()

	var commands = make(chan string)
	go func() {
		defer close(commands)
		readCommands(ctx2, p.in, commands)
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case commandLine, ok := <-commands:
			if !ok {
				return nil
			}
			var quit, err = p.handle(ctx, commandLine)
			if err != nil {
				p.logger.Error().Err(err).Str("command", commandLine).Msg("command-failed")
				fmt.Fprintln(p.out, "ERROR", err)
			}
			if quit {
				return nil
			}
		}
	}
}

func readCommands(ctx context.Context, r io.Reader, commands chan<- string) {
	var scanner = bufio.NewScanner(r)
	for scanner.Scan() {
		var commandLine = strings.TrimSpace(scanner.Text())
		if commandLine == "" {
			continue
		}
		select {
		case commands <- commandLine:
		case <-ctx.Done():
			return
		}
	}
}

func (p *Protocol) handle(ctx context.Context, commandLine string) (quit bool, err error) {
	if p.boardMode {
		if strings.EqualFold(commandLine, "DONE") {
			p.boardMode = false
			return false, p.think(ctx)
		}
		return false, p.boardLine(commandLine)
	}

	var fields = strings.Fields(commandLine)
	var commandName = strings.ToUpper(fields[0])
	fields = fields[1:]

	var h func(ctx context.Context, fields []string) error

	switch commandName {
	case "END":
		return true, nil
	case "START":
		h = p.startCommand
	case "RESTART":
		h = p.restartCommand
	case "BEGIN":
		h = p.beginCommand
	case "TURN":
		h = p.turnCommand
	case "BOARD":
		h = p.boardCommand
	case "INFO":
		h = p.infoCommand
	case "ABOUT":
		h = p.aboutCommand
	case "SETOPTION":
		h = p.setOptionCommand
	case "OPTIONS":
		h = p.optionsCommand
	}

	if h == nil {
		fmt.Fprintln(p.out, "UNKNOWN", "unsupported command", commandName)
		return false, nil
	}
	return false, h(ctx, fields)
}

func (p *Protocol) startCommand(ctx context.Context, fields []string) error {
	if len(fields) != 1 {
		return errors.New("invalid start arguments")
	}
	var size, err = strconv.Atoi(fields[0])
	if err != nil {
		return err
	}
	if size < MinSize {
		return fmt.Errorf("unsupported size %d", size)
	}
	p.board = NewBoard(size)
	fmt.Fprintln(p.out, "OK")
	return nil
}

func (p *Protocol) restartCommand(ctx context.Context, fields []string) error {
	if p.board == nil {
		return errNoGame
	}
	p.board = NewBoard(p.board.Size())
	fmt.Fprintln(p.out, "OK")
	return nil
}

func (p *Protocol) beginCommand(ctx context.Context, fields []string) error {
	if p.board == nil {
		return errNoGame
	}
	return p.think(ctx)
}

func (p *Protocol) turnCommand(ctx context.Context, fields []string) error {
	if p.board == nil {
		return errNoGame
	}
	if len(fields) != 1 {
		return errors.New("invalid turn arguments")
	}
	var m, _, err = parseStone(fields[0], false)
	if err != nil {
		return err
	}
	if err := p.board.Play(m, opponent); err != nil {
		return err
	}
	return p.think(ctx)
}

func (p *Protocol) boardCommand(ctx context.Context, fields []string) error {
	if p.board == nil {
		return errNoGame
	}
	p.board = NewBoard(p.board.Size())
	p.boardMode = true
	return nil
}

func (p *Protocol) boardLine(line string) error {
	var m, who, err = parseStone(line, true)
	if err != nil {
		return err
	}
	var side = opponent
	if who == 1 {
		side = own
	}
	return p.board.Play(m, side)
}

func (p *Protocol) infoCommand(ctx context.Context, fields []string) error {
	if len(fields) < 2 {
		return errors.New("invalid info arguments")
	}
	var key, value = fields[0], fields[1]
	for _, option := range p.options {
		if strings.EqualFold(option.OptionName(), key) {
			return option.Set(value)
		}
	}
	p.logger.Debug().Str("key", key).Str("value", value).Msg("info-ignored")
	return nil
}

func (p *Protocol) aboutCommand(ctx context.Context, fields []string) error {
	fmt.Fprintf(p.out, "name=%q, version=%q, author=%q, country=%q\n",
		p.name, p.version, p.author, p.country)
	return nil
}

func (p *Protocol) setOptionCommand(ctx context.Context, fields []string) error {
	if len(fields) != 2 {
		return errors.New("invalid setoption arguments")
	}
	var name, value = fields[0], fields[1]
	for _, option := range p.options {
		if strings.EqualFold(option.OptionName(), name) {
			return option.Set(value)
		}
	}
	return errors.New("unhandled option")
}

func (p *Protocol) optionsCommand(ctx context.Context, fields []string) error {
	for _, option := range p.options {
		fmt.Fprintln(p.out, option.String())
	}
	return nil
}

// think searches the current position, plays the answer and prints it.
func (p *Protocol) think(ctx context.Context) error {
	var info, err = p.engine.Search(ctx, engine.SearchParams{
		Board: p.board,
		Side:  own,
	})
	if err != nil {
		return err
	}
	if !info.Found {
		return errBoardFull
	}
	if err := p.board.Play(info.Move, own); err != nil {
		return err
	}
	fmt.Fprintln(p.out, searchInfoToMessage(info))
	fmt.Fprintln(p.out, formatMove(info.Move))
	return nil
}

func searchInfoToMessage(si engine.SearchInfo) string {
	var sb = &strings.Builder{}
	fmt.Fprintf(sb, "MESSAGE depth %v score %v", si.Depth, si.Score)
	var timeMs = si.Time.Milliseconds()
	var nps = si.Nodes * 1000 / (timeMs + 1)
	fmt.Fprintf(sb, " nodes %v time %v nps %v", si.Nodes, timeMs, nps)
	if si.Fallback {
		sb.WriteString(" fallback")
	}
	if si.Random {
		sb.WriteString(" random")
	}
	return sb.String()
}

// The protocol writes coordinates as x,y, column first.
func formatMove(m Move) string {
	return fmt.Sprintf("%d,%d", m.Col, m.Row)
}

// parseStone reads "x,y" or, when withOwner is set, "x,y,who".
func parseStone(s string, withOwner bool) (m Move, who int, err error) {
	var fields = strings.Split(s, ",")
	var want = 2
	if withOwner {
		want = 3
	}
	if len(fields) != want {
		return MoveEmpty, 0, fmt.Errorf("parse stone %q", s)
	}
	var values = make([]int, want)
	for i, field := range fields {
		values[i], err = strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return MoveEmpty, 0, fmt.Errorf("parse stone %q: %w", s, err)
		}
	}
	m = Move{Row: values[1], Col: values[0]}
	if withOwner {
		who = values[2]
		if who < 1 || who > 3 {
			return MoveEmpty, 0, fmt.Errorf("parse stone %q: bad owner %d", s, who)
		}
	}
	return m, who, nil
}
