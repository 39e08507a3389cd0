package datafactory

import (
	"math/rand"
	"strings"
)

// StringKind selects the character class used by String.
type StringKind string

const (
	Alpha        StringKind = "alpha"
	Alphanumeric StringKind = "alphanumeric"
	Numeric      StringKind = "numeric"
	Latin1       StringKind = "latin1"
	UTF8         StringKind = "utf8"
	HTML         StringKind = "html"
)

const (
	alphaChars   = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numericChars = "0123456789"
	latin1Chars  = "àáâãäåæçèéêëìíîïðñòóôõö"
	utf8Chars    = "абвгдежзиклмнопрстуфхцчшщэюя"
)

// String returns a random string of the requested kind and length.
// Unknown kinds fall back to alphanumeric.
func String(kind StringKind, length int) string {
	if length <= 0 {
		return ""
	}
	switch kind {
	case Alpha:
		return pick(alphaChars, length)
	case Numeric:
		return pick(numericChars, length)
	case Latin1:
		return pickRunes(latin1Chars, length)
	case UTF8:
		return pickRunes(utf8Chars, length)
	case HTML:
		tag := pick(alphaChars, 3)
		return "<" + tag + ">" + pick(alphaChars, length) + "</" + tag + ">"
	default:
		return pick(alphaChars+numericChars, length)
	}
}

// AlphaString returns a random lowercase-and-uppercase alphabetic string.
func AlphaString(length int) string { return String(Alpha, length) }

// AlphanumericString returns a random alphanumeric string.
func AlphanumericString(length int) string { return String(Alphanumeric, length) }

// StringsList returns one random string per kind, all of the same length.
// With no kinds given it covers every supported kind.
func StringsList(length int, kinds ...StringKind) []string {
	if len(kinds) == 0 {
		kinds = []StringKind{Alpha, Alphanumeric, Numeric, Latin1, UTF8, HTML}
	}
	out := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		out = append(out, String(kind, length))
	}
	return out
}

// ValidDockerRepositoryNames returns repository names the platform accepts
// for container repositories.
func ValidDockerRepositoryNames() []string {
	return []string{
		String(Alpha, 8),
		String(Alphanumeric, 12),
		String(Numeric, 8),
		strings.ToLower(String(Alpha, 5)) + "-" + strings.ToLower(String(Alpha, 5)),
		strings.ToLower(String(Alpha, 5)) + "_" + strings.ToLower(String(Alpha, 5)),
	}
}

// ValidDockerUpstreamNames returns upstream names that satisfy the registry
// naming rules: lowercase alphanumeric segments joined by ._- with an
// optional single namespace.
func ValidDockerUpstreamNames() []string {
	short := strings.ToLower(String(Alpha, 6))
	long := strings.ToLower(String(Alphanumeric, 30))
	return []string{
		short,
		long,
		short + "/" + long,
		short + "-" + short,
		short + "_" + short,
		short + "." + short,
		String(Numeric, 6),
	}
}

// InvalidDockerUpstreamNames returns upstream names the platform must reject.
func InvalidDockerUpstreamNames() []string {
	upper := strings.ToUpper(String(Alpha, 6))
	lower := strings.ToLower(String(Alpha, 6))
	return []string{
		upper,
		lower + "/" + upper,
		upper + "/" + lower,
		lower + "/",
		"/" + lower,
		lower + "//" + lower,
		lower + "/" + lower + "/" + lower,
		lower + "^" + lower,
		lower + " " + lower,
	}
}

func pick(chars string, length int) string {
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		b.WriteByte(chars[rand.Intn(len(chars))])
	}
	return b.String()
}

func pickRunes(chars string, length int) string {
	runes := []rune(chars)
	var b strings.Builder
	for i := 0; i < length; i++ {
		b.WriteRune(runes[rand.Intn(len(runes))])
	}
	return b.String()
}
