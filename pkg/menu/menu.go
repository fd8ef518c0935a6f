package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/berquerant/polylist/pkg/config"
	"github.com/berquerant/polylist/pkg/display"
	"github.com/berquerant/polylist/pkg/list"
	"github.com/berquerant/polylist/pkg/source"
	"github.com/berquerant/polylist/pkg/split"
)

// DemoValues are loaded into list A by the demo create mode.
var DemoValues = []float64{3.14, 5.67, 2.89, 7.0, 4.25, 8.91}

// An error from malformed user input.
var ErrInput = errors.New("Input")

func Main(c *config.Config) error {
	s := NewSession(c)
	if s.source != nil {
		if err := s.loadSource(context.Background()); err != nil {
			return err
		}
	}
	return s.Run(context.Background())
}

// Session is an interactive menu over the lists A, B and K.
type Session struct {
	// A is the source list.
	A *list.List
	// B receives whole parts.
	B *list.List
	// K receives fractional parts.
	K *list.List

	in     *bufio.Reader
	out    io.Writer
	format *display.Formatter
	source func(ctx context.Context) ([]float64, error)
}

func NewSession(c *config.Config) *Session {
	s := &Session{
		A:      list.New(c.Values...),
		B:      list.New(),
		K:      list.New(),
		in:     bufio.NewReader(c.Reader),
		out:    c.Writer,
		format: display.New(c.Precision),
	}
	if c.HasSource() {
		s.source = func(ctx context.Context) ([]float64, error) {
			return source.Load(ctx, c.Shell, c.Source, c.Filter...)
		}
	}
	return s
}

// loadSource replaces A with the source command output.
// An interrupt cancels the command instead of the session.
func (s *Session) loadSource(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGPIPE)
	defer stop()

	xs, err := s.source(ctx)
	if err != nil {
		return err
	}
	s.A.Clear()
	for _, x := range xs {
		s.A.Append(x)
	}
	slog.Debug("load source", slog.Int("len", s.A.Len()))
	return nil
}

const menuText = `
Menu
1. Create list A
2. Add element to A
3. Remove element from A
4. Show list A
5. Process list (build B and K)
6. Show all lists
7. Show as polynomials
8. Get element of A
9. Clear all lists
0. Exit
`

// Run reads choices until 0 or the end of input.
func (s *Session) Run(ctx context.Context) error {
	s.println("LINKED LIST LAB")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.print(menuText)
		choice, err := s.readInt("\nChoice: ")
		if err == nil && choice == 0 {
			s.println("\nExit.")
			return nil
		}
		if err == nil {
			err = s.dispatch(ctx, choice)
		}
		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			slog.Debug("end of input")
			return nil
		case errors.Is(err, ErrInput):
			slog.Debug("discard input", slog.Any("err", err))
			s.println("Input error!")
		default:
			return err
		}
	}
}

func (s *Session) dispatch(ctx context.Context, choice int) error {
	slog.Debug("dispatch", slog.Int("choice", choice))
	switch choice {
	case 1:
		return s.create(ctx)
	case 2:
		return s.add()
	case 3:
		return s.remove()
	case 4:
		s.showA()
	case 5:
		s.process()
	case 6:
		s.showAll()
	case 7:
		s.showPolynomials()
	case 8:
		return s.get()
	case 9:
		s.clear()
	default:
		s.println("\nInvalid choice!")
	}
	return nil
}

func (s *Session) create(ctx context.Context) error {
	s.A.Clear()
	s.println("\n1 - Demo data")
	s.println("2 - Manual input")
	if s.source != nil {
		s.println("3 - Source command")
	}
	mode, err := s.readInt("Choice: ")
	if err != nil {
		return err
	}

	switch {
	case mode == 2:
		n, err := s.readInt("Number of elements: ")
		if err != nil {
			return err
		}
		if n <= 0 {
			return fmt.Errorf("%w: number of elements %d", ErrInput, n)
		}
		for i := range n {
			v, err := s.readFloat(fmt.Sprintf("Element %d: ", i+1))
			if errors.Is(err, ErrInput) {
				s.A.Clear()
				s.println("Input error! Start over.")
				return nil
			}
			if err != nil {
				return err
			}
			s.A.Append(v)
		}
	case mode == 3 && s.source != nil:
		if err := s.loadSource(ctx); err != nil {
			slog.Error("load source", slog.Any("err", err))
			s.println("Source command failed!")
			return nil
		}
	default:
		for _, v := range DemoValues {
			s.A.Append(v)
		}
	}

	slog.Debug("create", slog.Int("mode", mode), slog.Int("len", s.A.Len()))
	s.println("\nList created!")
	s.println(s.format.Named("A", s.A))
	return nil
}

func (s *Session) add() error {
	if s.A.IsEmpty() {
		s.println("\nList is empty! Create a list first.")
		return nil
	}
	s.println("\n1 - To the end")
	s.println("2 - To the front")
	where, err := s.readInt("Choice: ")
	if err != nil {
		return err
	}
	v, err := s.readFloat("Value: ")
	if err != nil {
		return err
	}

	if where == 2 {
		s.A.Prepend(v)
		slog.Debug("prepend", slog.Float64("value", v))
		s.println("Added to the front!")
	} else {
		s.A.Append(v)
		slog.Debug("append", slog.Float64("value", v))
		s.println("Added to the end!")
	}
	s.println(s.format.Named("A", s.A))
	return nil
}

func (s *Session) remove() error {
	if s.A.IsEmpty() {
		s.println("\nList is empty!")
		return nil
	}
	s.println("\nCurrent list:")
	s.print(s.format.Indexed(s.A))
	index, err := s.readInt("\nIndex to remove: ")
	if err != nil {
		return err
	}

	if err := s.A.RemoveAt(index); err != nil {
		slog.Debug("remove", slog.Any("err", err))
		s.println("Invalid index!")
		return nil
	}
	slog.Debug("remove", slog.Int("index", index))
	s.println("Removed!")
	s.println(s.format.Named("A", s.A))
	return nil
}

func (s *Session) get() error {
	if s.A.IsEmpty() {
		s.println("\nList is empty!")
		return nil
	}
	index, err := s.readInt("\nIndex: ")
	if err != nil {
		return err
	}

	v, err := s.A.Get(index)
	if err != nil {
		slog.Debug("get", slog.Any("err", err))
		s.println("Invalid index!")
		return nil
	}
	s.printf("A[%d] = %s\n", index, s.format.Number(v))
	return nil
}

func (s *Session) showA() {
	s.println("")
	s.println(s.format.Named("A", s.A))
	s.printf("Size: %d\n", s.A.Len())
}

func (s *Session) process() {
	if s.A.IsEmpty() {
		s.println("\nList A is empty!")
		return
	}
	s.B.Clear()
	s.K.Clear()
	r := split.Into(s.A, s.B, s.K)
	slog.Debug("process", slog.Int("processed", r.Processed), slog.Int("skipped", r.Skipped))

	s.println("\nPROCESSING DONE")
	s.println("\nSource list:")
	s.println(s.format.Named("A", s.A))
	s.println("\nResults:")
	s.println(s.format.Named("B (whole parts)", s.B))
	s.println(s.format.Named("K (fractional parts)", s.K))
	s.printf("\nNon-integers processed: %d\n", r.Processed)
	s.printf("Integers skipped: %d\n", r.Skipped)
}

func (s *Session) showAll() {
	s.println("\nALL LISTS")
	s.println(s.format.Named("A", s.A))
	s.println(s.format.Named("B", s.B))
	s.println(s.format.Named("K", s.K))
	s.printf("\nSizes: A=%d, B=%d, K=%d\n", s.A.Len(), s.B.Len(), s.K.Len())
}

func (s *Session) showPolynomials() {
	s.println("\nPOLYNOMIALS")
	s.println("Each element is a polynomial coefficient")
	s.println("")
	s.println(s.format.NamedPolynomial("P_A(x)", s.A))
	s.println(s.format.NamedPolynomial("P_B(x)", s.B))
	s.println(s.format.NamedPolynomial("P_K(x)", s.K))
}

func (s *Session) clear() {
	s.A.Clear()
	s.B.Clear()
	s.K.Clear()
	slog.Debug("clear")
	s.println("\nAll lists cleared.")
}

// MaxLineLength is the longest answer accepted; longer lines are discarded.
const MaxLineLength = 4096

// readLine returns io.EOF when no input remains.
func (s *Session) readLine(prompt string) (string, error) {
	s.print(prompt)
	var (
		line    []byte
		tooLong bool
	)
	for {
		chunk, isPrefix, err := s.in.ReadLine()
		if err != nil {
			return "", err
		}
		if !tooLong {
			line = append(line, chunk...)
			if len(line) > MaxLineLength {
				tooLong = true
				line = nil
			}
		}
		if !isPrefix {
			break
		}
	}
	if tooLong {
		return "", fmt.Errorf("%w: line longer than %d bytes", ErrInput, MaxLineLength)
	}
	return strings.TrimSpace(string(line)), nil
}

func (s *Session) readInt(prompt string) (int, error) {
	line, err := s.readLine(prompt)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInput, err)
	}
	return v, nil
}

func (s *Session) readFloat(prompt string) (float64, error) {
	line, err := s.readLine(prompt)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInput, err)
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%w: non-finite value %q", ErrInput, line)
	}
	return v, nil
}

func (s *Session) print(a ...any)                 { fmt.Fprint(s.out, a...) }
func (s *Session) println(a ...any)               { fmt.Fprintln(s.out, a...) }
func (s *Session) printf(format string, a ...any) { fmt.Fprintf(s.out, format, a...) }
