// Package sanitize canonicaliza texto livre antes de armazenamento ou exibição.
// As funções são puras: operam apenas sobre os argumentos e nunca fazem I/O.
package sanitize

import (
	"regexp"
	"strings"
)

// NoLimit desativa o truncamento em Options.MaxLength.
const NoLimit = -1

// Options controla o pipeline de sanitização aplicado por Sanitize.
// O valor zero corresponde aos padrões (MaxLength 1000, sem tabs/newlines,
// sem whitelist, blacklist padrão).
type Options struct {
	MaxLength      int              // Limite em code points. 0 = padrão (1000), NoLimit = sem truncamento.
	AllowTabs      bool             // Se false, sequências de tab viram um espaço.
	AllowNewlines  bool             // Se false, sequências de quebra de linha viram um espaço.
	UseWhitelist   bool             // Se true, mantém apenas caracteres da classe WhitelistChars.
	WhitelistChars string           // Classe de caracteres permitidos (corpo de um character class).
	Blacklist      []*regexp.Regexp // Padrões removidos, em ordem. nil = blacklist padrão.
}

const defaultMaxLength = 1000

// Classe padrão da whitelist: imprimíveis + NBSP + latino estendido.
const defaultWhitelistChars = `[:print:]` + " " + `\x{00C0}-\x{024F}`

// Blacklist padrão: caracteres de controle/formatação, overrides bidirecionais,
// sinais de menor/maior e símbolos de shell.
var defaultBlacklist = []*regexp.Regexp{
	regexp.MustCompile(`[\p{Cc}\p{Cf}]`),
	regexp.MustCompile(`[\x{202A}-\x{202E}]`),
	regexp.MustCompile(`[<>]`),
	regexp.MustCompile("[`~^|\\\\]"),
}

// DefaultOptions retorna as opções padrão do pipeline.
func DefaultOptions() Options {
	return Options{
		MaxLength:      defaultMaxLength,
		WhitelistChars: defaultWhitelistChars,
		Blacklist:      defaultBlacklist,
	}
}

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	ellipsisRun   = regexp.MustCompile(`\.{3,}`)
	spaceBefore   = regexp.MustCompile(`\s+([!?.,:;)\]}])`)
	spaceAfter    = regexp.MustCompile(`([!?.:;,])([^\s0-9\p{P}])`)
	tabRun        = regexp.MustCompile(`\t+`)
	newlineRun    = regexp.MustCompile(`[\r\n\x{0085}\x{2028}\x{2029}]+`)
)

// Pontuação cujas repetições consecutivas são colapsadas em uma ocorrência.
const collapsiblePunct = `!?.,:;"'-—()[]{}`

// Normalize canonicaliza espaçamento e pontuação de um texto livre.
// Os passos são ordenados e cada um alimenta o seguinte:
//  1. remove espaços nas bordas;
//  2. colapsa qualquer sequência de whitespace em um espaço ASCII;
//  3. converte sequências de três ou mais pontos em reticências (…);
//  4. colapsa repetições do mesmo sinal de pontuação;
//  5. remove espaço antes de pontuação de fechamento;
//  6. insere espaço após pontuação de sentença quando seguida de um
//     caractere que não é espaço, dígito ou pontuação.
func Normalize(text string) string {
	text = strings.TrimSpace(text)
	text = whitespaceRun.ReplaceAllString(text, " ")
	text = ellipsisRun.ReplaceAllString(text, "…")
	text = collapseRepeatedPunct(text)
	text = spaceBefore.ReplaceAllString(text, "$1")
	text = spaceAfter.ReplaceAllString(text, "$1 $2")
	return text
}

// collapseRepeatedPunct reduz sequências de 2+ sinais idênticos a um único sinal.
// O RE2 do Go não suporta backreferences, então o colapso é feito por varredura.
func collapseRepeatedPunct(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	var prev rune = -1
	for _, r := range text {
		if r == prev && strings.ContainsRune(collapsiblePunct, r) {
			continue
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}

// Sanitize normaliza o texto e aplica o pipeline de filtros configurável:
// blacklist ordenada, tratamento de tabs/newlines, whitelist opcional e
// truncamento final contado em code points.
func Sanitize(text string, opts Options) string {
	if opts.MaxLength == 0 {
		opts.MaxLength = defaultMaxLength
	}
	if opts.Blacklist == nil {
		opts.Blacklist = defaultBlacklist
	}
	if opts.WhitelistChars == "" {
		opts.WhitelistChars = defaultWhitelistChars
	}

	text = Normalize(text)

	for _, pat := range opts.Blacklist {
		text = pat.ReplaceAllString(text, "")
	}

	if !opts.AllowTabs {
		text = tabRun.ReplaceAllString(text, " ")
	}
	if !opts.AllowNewlines {
		text = newlineRun.ReplaceAllString(text, " ")
	}

	if opts.UseWhitelist {
		// Remove tudo que não pertence à classe permitida. Uma classe inválida
		// não derruba o pipeline: o texto segue sem o filtro.
		if remover, err := regexp.Compile(`[^` + opts.WhitelistChars + `]`); err == nil {
			text = remover.ReplaceAllString(text, "")
		}
	}

	if opts.MaxLength != NoLimit {
		text = truncateRunes(text, opts.MaxLength)
	}

	return text
}

// truncateRunes corta o texto em max code points, não bytes.
func truncateRunes(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}

// EllipsisPreserveWords trunca o texto em limit code points sem cortar
// palavras ao meio, anexando reticências quando houver corte.
func EllipsisPreserveWords(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}

	cut := string(runes[:limit])

	// Recua até o último espaço para terminar em fronteira de palavra.
	if lastSpace := strings.LastIndex(cut, " "); lastSpace != -1 {
		cut = cut[:lastSpace]
	}

	return strings.TrimRight(cut, " ") + "…"
}
