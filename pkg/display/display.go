package display

import (
	"fmt"
	"math"
	"strings"

	"github.com/berquerant/polylist/pkg/list"
)

const (
	DefaultPrecision = 2
	// Coefficients whose magnitude does not exceed this are zero terms.
	Tolerance = 1e-9
)

// Formatter renders lists as text with a fixed number of decimals.
type Formatter struct {
	Precision int
}

func New(precision int) *Formatter {
	return &Formatter{
		Precision: precision,
	}
}

func (f Formatter) Number(v float64) string {
	return fmt.Sprintf("%.*f", f.Precision, v)
}

// List renders l like "[ 3.14, 5.67 ]", or "empty".
func (f Formatter) List(l *list.List) string {
	if l.IsEmpty() {
		return "empty"
	}
	xs := make([]string, 0, l.Len())
	for v := range l.All() {
		xs = append(xs, f.Number(v))
	}
	return "[ " + strings.Join(xs, ", ") + " ]"
}

func (f Formatter) Named(name string, l *list.List) string {
	return name + ": " + f.List(l)
}

// Indexed renders one "[i] = v" line per element.
func (f Formatter) Indexed(l *list.List) string {
	if l.IsEmpty() {
		return "List is empty\n"
	}
	var b strings.Builder
	for i, v := range l.Indexed() {
		fmt.Fprintf(&b, "[%d] = %s\n", i, f.Number(v))
	}
	return b.String()
}

// Polynomial renders l as a polynomial whose first element has the highest degree.
func (f Formatter) Polynomial(l *list.List) string {
	var (
		b      strings.Builder
		degree = l.Len() - 1
		first  = true
	)
	for coef := range l.All() {
		d := degree
		degree--
		if math.Abs(coef) <= Tolerance {
			continue
		}

		switch {
		case coef < 0 && first:
			b.WriteString("-")
		case coef < 0:
			b.WriteString(" - ")
		case !first:
			b.WriteString(" + ")
		}
		coef = math.Abs(coef)

		if d == 0 || math.Abs(coef-1) > Tolerance {
			b.WriteString(f.Number(coef))
		}
		switch {
		case d == 1:
			b.WriteString("x")
		case d > 1:
			fmt.Fprintf(&b, "x^%d", d)
		}
		first = false
	}

	if first {
		return "0"
	}
	return b.String()
}

func (f Formatter) NamedPolynomial(name string, l *list.List) string {
	return name + " = " + f.Polynomial(l)
}
