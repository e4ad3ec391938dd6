package pgc

import (
	"fmt"
	"strings"
)

// Result resultado da validação de uma conta face ao PGC-AO.
type Result struct {
	Classe       int
	Conformidade int // 0..100
	Status       string
	Problemas    []string
}

// ValidateCode valida apenas a sintaxe de um código de conta: dígitos, comprimento 2..8 e classe 1..8.
func ValidateCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return fmt.Errorf("pgc: código vazio")
	}
	if !onlyDigits(code) {
		return fmt.Errorf("pgc: código %q deve conter apenas dígitos", code)
	}
	if len(code) < MinCodeLength || len(code) > MaxCodeLength {
		return fmt.Errorf("pgc: código %q deve ter entre %d e %d dígitos", code, MinCodeLength, MaxCodeLength)
	}
	if c := ClassOf(code); c < ClassMeiosFixos || c > ClassResultados {
		return fmt.Errorf("pgc: classe %d inexistente no código %q", c, code)
	}
	return nil
}

// ClassOf devolve a classe (primeiro dígito) do código, ou 0 se não for numérico.
func ClassOf(code string) int {
	code = strings.TrimSpace(code)
	if code == "" || code[0] < '0' || code[0] > '9' {
		return 0
	}
	return int(code[0] - '0')
}

// Validate pontua a conformidade de uma conta: cada regra vale 25 pontos.
// Código não numérico ou classe inexistente tornam a conta "erro"; falhas menores deixam-na em "revisao".
func Validate(code, name string) Result {
	code = strings.TrimSpace(code)
	res := Result{Classe: ClassOf(code)}
	fatal := false

	score := 0
	if code != "" && onlyDigits(code) {
		score += 25
	} else {
		fatal = true
		res.Problemas = append(res.Problemas, "código deve conter apenas dígitos")
	}
	if len(code) >= MinCodeLength && len(code) <= MaxCodeLength {
		score += 25
	} else {
		res.Problemas = append(res.Problemas, fmt.Sprintf("código deve ter entre %d e %d dígitos", MinCodeLength, MaxCodeLength))
	}
	if res.Classe >= ClassMeiosFixos && res.Classe <= ClassResultados {
		score += 25
	} else {
		fatal = true
		res.Problemas = append(res.Problemas, "classe deve estar entre 1 e 8")
	}
	if strings.TrimSpace(name) != "" {
		score += 25
	} else {
		res.Problemas = append(res.Problemas, "nome da conta é obrigatório")
	}

	res.Conformidade = score
	switch {
	case score == 100:
		res.Status = StatusValidada
	case fatal:
		res.Status = StatusErro
	default:
		res.Status = StatusRevisao
	}
	return res
}

// HasPrefix informa se o código começa pelo prefixo indicado (ignora espaços).
func HasPrefix(code, prefix string) bool {
	return strings.HasPrefix(strings.TrimSpace(code), prefix)
}

func onlyDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
