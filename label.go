package figure

import (
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/gogpu/figure/internal/cache"
)

const (
	// defaultFractionDigits is the precision of tick labels.
	defaultFractionDigits = 6

	// labelCacheSize bounds the formatted labels kept per formatter.
	labelCacheSize = 512
)

// TickFormatter formats axis values as tick labels.
// Trailing zeros of the fraction are dropped, so 2.50 prints as "2.5" and
// 3.0 prints as "3". Recent labels are cached, since a steady view formats
// the same ticks every frame.
//
// TickFormatter is safe for concurrent use.
type TickFormatter struct {
	p      *message.Printer
	sep    string
	digits int
	labels *cache.Cache[float64, string]
}

// NewTickFormatter creates a formatter for the given language with at most
// digits fraction digits. A negative digits value selects the default.
func NewTickFormatter(tag language.Tag, digits int) *TickFormatter {
	if digits < 0 {
		digits = defaultFractionDigits
	}
	p := message.NewPrinter(tag)
	return &TickFormatter{
		p:      p,
		sep:    decimalSeparator(p),
		digits: digits,
		labels: cache.New[float64, string](labelCacheSize),
	}
}

// DefaultTickFormatter formats in English with six fraction digits.
func DefaultTickFormatter() *TickFormatter {
	return NewTickFormatter(language.English, defaultFractionDigits)
}

// Format returns the label for v.
func (f *TickFormatter) Format(v float64) string {
	if !finite(v) {
		return f.p.Sprint(v)
	}
	return f.labels.GetOrCreate(v, func() string { return f.format(v) })
}

func (f *TickFormatter) format(v float64) string {
	s := trimZeros(f.p.Sprint(number.Decimal(v, number.MaxFractionDigits(f.digits))), f.sep)
	if s == "-0" {
		return "0"
	}
	return s
}

// decimalSeparator returns the separator p prints between 1 and 5 in 1.5.
func decimalSeparator(p *message.Printer) string {
	s := p.Sprint(number.Decimal(1.5, number.MaxFractionDigits(1)))
	i, j := strings.IndexRune(s, '1'), strings.LastIndex(s, "5")
	if i < 0 || j <= i+1 {
		return "."
	}
	return s[i+1 : j]
}

// trimZeros drops trailing zeros after the decimal separator, and the
// separator itself.
func trimZeros(s, sep string) string {
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, sep)
}

// FormatValue formats an axis value of any supported type.
// time.Duration values print in Duration.String form, such as "1.5s".
func FormatValue[T Number](f *TickFormatter, v T) string {
	if d, ok := any(v).(time.Duration); ok {
		return d.String()
	}
	return f.Format(float64(v))
}

// LabelFunc returns the tick label for an axis value.
type LabelFunc func(v float64) string

// secondsPerDay converts epoch days to Unix seconds.
const secondsPerDay = 24 * 60 * 60

// UnixTimeLabels labels values holding Unix seconds as UTC times in layout.
func UnixTimeLabels(layout string) LabelFunc {
	return func(v float64) string {
		sec, frac := math.Modf(v)
		return time.Unix(int64(sec), int64(frac*1e9)).UTC().Format(layout)
	}
}

// EpochDayLabels labels values holding days since 1970-01-01 as UTC
// dates in layout.
func EpochDayLabels(layout string) LabelFunc {
	unix := UnixTimeLabels(layout)
	return func(v float64) string {
		return unix(math.Floor(v) * secondsPerDay)
	}
}

// tickLabel formats v with fn when set and with f otherwise.
func tickLabel[T Number](fn LabelFunc, f *TickFormatter, v T) string {
	if fn != nil {
		return fn(float64(v))
	}
	return FormatValue(f, v)
}
