package flavor

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// AmountFormatter renders amounts with the locale's digit grouping
type AmountFormatter struct {
	printer *message.Printer
	symbol  string
}

// NewAmountFormatter builds a formatter for a BCP 47 locale. Unparseable
// locales fall back to DefaultLocale.
func NewAmountFormatter(locale, symbol string) *AmountFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse(DefaultLocale)
	}
	if symbol == "" {
		symbol = DefaultCurrencySymbol
	}
	return &AmountFormatter{printer: message.NewPrinter(tag), symbol: symbol}
}

// Format returns e.g. "R$ 1.234" for pt-BR
func (f *AmountFormatter) Format(amount int64) string {
	return f.printer.Sprintf("%s %d", f.symbol, amount)
}
