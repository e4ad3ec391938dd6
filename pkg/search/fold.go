// Package search normaliza termos de pesquisa: sem acentos, minúsculas e espaços colapsados,
// para que "Orçamento" e "orcamento" encontrem o mesmo registo.
package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold remove diacríticos, passa a minúsculas e colapsa espaços.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.Join(strings.Fields(strings.ToLower(out)), " ")
}

// LikePattern devolve o padrão ILIKE "%termo%" já normalizado, escapando % e _.
// Devolve "" quando o termo é vazio.
func LikePattern(term string) string {
	f := Fold(term)
	if f == "" {
		return ""
	}
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(f) + "%"
}

// AccentFrom / AccentTo alimentam translate() no SQL para dobrar acentos do lado da base de dados.
const (
	AccentFrom = "áàâãäéèêëíìîïóòôõöúùûüçñÁÀÂÃÄÉÈÊËÍÌÎÏÓÒÔÕÖÚÙÛÜÇÑ"
	AccentTo   = "aaaaaeeeeiiiiooooouuuucnaaaaaeeeeiiiiooooouuuucn"
)
