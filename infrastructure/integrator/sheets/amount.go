package sheets

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// ParseAmount converte um valor monetário da planilha ("1 234,50 €", "1,234.50", "1.234.567")
// para float com duas casas decimais.
func ParseAmount(raw string) (float64, error) {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsSpace(r) || unicode.Is(unicode.Sc, r) || r == '\'' || r == '’' {
			continue
		}
		b.WriteRune(r)
	}

	cleaned := normalizeSeparators(b.String())
	if cleaned == "" {
		return 0, fmt.Errorf("valor vazio: %q", raw)
	}

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, fmt.Errorf("valor inválido %q: %w", raw, err)
	}

	return value.Round(2).InexactFloat64(), nil
}

// normalizeSeparators deixa apenas "." como separador decimal
func normalizeSeparators(s string) string {
	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")

	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			return strings.ReplaceAll(strings.ReplaceAll(s, ".", ""), ",", ".")
		}
		return strings.ReplaceAll(s, ",", "")
	case lastComma >= 0:
		return singleSeparator(s, ",")
	case lastDot >= 0:
		return singleSeparator(s, ".")
	}

	return s
}

// Uma ocorrência é decimal; várias são separadores de milhar
func singleSeparator(s, sep string) string {
	if strings.Count(s, sep) == 1 {
		return strings.Replace(s, sep, ".", 1)
	}
	return strings.ReplaceAll(s, sep, "")
}
