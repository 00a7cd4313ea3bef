package contract

import (
	"os"
	"strings"
	"unicode"

	"github.com/fatih/color"
	"github.com/huangsam/foodprint/schema"
	"github.com/rotisserie/eris"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Color variables for console output.
var (
	ExcellentColor = color.New(color.FgGreen, color.Bold) // ExcellentColor marks the best tier.
	VeryGoodColor  = color.New(color.FgGreen)             // VeryGoodColor is green without emphasis.
	GoodColor      = color.New(color.FgYellow)            // GoodColor represents acceptable impact.
	ModerateColor  = color.New(color.FgMagenta)           // ModerateColor is a distinct warning.
	LowColor       = color.New(color.FgRed, color.Bold)   // LowColor represents the highest impact.
)

// GetColorLabel returns a colored tier label for console output (table).
func GetColorLabel(tier schema.Tier) string {
	text := tier.Label()

	switch tier {
	case schema.TierExcellent:
		return ExcellentColor.Sprint(text)
	case schema.TierVeryGood:
		return VeryGoodColor.Sprint(text)
	case schema.TierGood:
		return GoodColor.Sprint(text)
	case schema.TierModerate:
		return ModerateColor.Sprint(text)
	default:
		return LowColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path selects os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	f, err := os.Create(filePath)
	if err != nil {
		return nil, eris.Wrapf(err, "create output file %s", filePath)
	}
	return f, nil
}

// TruncateName truncates a product name to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 so that at least one character survives next to the "...".
func TruncateName(name string, maxWidth int) string {
	r := []rune(name)
	if len(r) > maxWidth && maxWidth > 3 {
		return string(r[:maxWidth-3]) + "..."
	}
	return name
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, eris.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// Fold returns the lookup key of a product or column name: trimmed, accents
// removed, case folded and inner whitespace collapsed. "  Plátano " and
// "PLATANO" fold to the same key.
func Fold(s string) string {
	folded := cases.Fold().String(s)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, folded)
	if err != nil {
		stripped = folded
	}
	return strings.Join(strings.Fields(stripped), " ")
}

// TitleCase capitalizes each word of a category label.
func TitleCase(s string) string {
	return cases.Title(language.Und).String(strings.TrimSpace(s))
}
