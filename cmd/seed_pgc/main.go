// seed_pgc gera o script SQL que carrega o plano de contas (PGC-AO) de uma empresa
// a partir de um CSV "codigo;nome" exportado da contabilidade (por defeito em ISO-8859-1).
//
// Uso: go run ./cmd/seed_pgc -empresa <uuid> [-utf8] [-o ficheiro.sql] plano_contas.csv
// Por defeito escreve migrations/002_seed_pgc.sql.
package main

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/FinancePro-api/pkg/pgc"
)

type conta struct {
	codigo string
	nome   string
	res    pgc.Result
}

func main() {
	empresa := flag.String("empresa", "", "UUID da empresa dona das contas")
	utf8 := flag.Bool("utf8", false, "o CSV já está em UTF-8")
	outFlag := flag.String("o", "", "ficheiro de saída (por defeito migrations/002_seed_pgc.sql)")
	flag.Parse()

	if _, err := uuid.Parse(*empresa); err != nil {
		fmt.Fprintf(os.Stderr, "-empresa inválido: %v\n", err)
		os.Exit(2)
	}
	csvPath := "plano_contas.csv"
	if flag.NArg() > 0 {
		csvPath = flag.Arg(0)
	}

	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	var in io.Reader = f
	if !*utf8 {
		in = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	}
	contas, err := readContas(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ler CSV: %v\n", err)
		os.Exit(1)
	}

	outPath := *outFlag
	if outPath == "" {
		outPath = filepath.Join(findModuleRoot(), "migrations", "002_seed_pgc.sql")
	}
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Criar ficheiro: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := writeSQL(out, *empresa, contas); err != nil {
		fmt.Fprintf(os.Stderr, "Escrever SQL: %v\n", err)
		os.Exit(1)
	}

	erros := 0
	for _, c := range contas {
		if c.res.Status == pgc.StatusErro {
			erros++
		}
	}
	fmt.Printf("Gerado %s: %d contas (%d com erro de validação)\n", outPath, len(contas), erros)
}

// readContas lê "codigo;nome". Linhas vazias, comentários (#) e o cabeçalho são ignorados;
// códigos repetidos ficam com o último nome.
func readContas(r io.Reader) ([]conta, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	byCode := make(map[string]string)
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("linha %d: %w", line, err)
		}
		if len(rec) < 2 {
			continue
		}
		codigo := strings.TrimSpace(rec[0])
		nome := strings.TrimSpace(rec[1])
		if codigo == "" || strings.EqualFold(codigo, "codigo") {
			continue
		}
		byCode[codigo] = nome
	}

	codes := make([]string, 0, len(byCode))
	for c := range byCode {
		codes = append(codes, c)
	}
	sort.Strings(codes)

	contas := make([]conta, 0, len(codes))
	for _, c := range codes {
		contas = append(contas, conta{codigo: c, nome: byCode[c], res: pgc.Validate(c, byCode[c])})
	}
	return contas, nil
}

func writeSQL(w io.Writer, empresa string, contas []conta) error {
	var b strings.Builder
	b.WriteString("-- Plano de contas PGC-AO\n")
	fmt.Fprintf(&b, "-- Gerado por cmd/seed_pgc para a empresa %s\n\n", empresa)
	for _, c := range contas {
		obs := strings.Join(c.res.Problemas, "; ")
		b.WriteString("INSERT INTO pgc_accounts (id, company_id, codigo, nome, classe, conformidade, status, observacoes)\n")
		fmt.Fprintf(&b, "VALUES ('%s', '%s', '%s', '%s', %d, %d, '%s', '%s')\n",
			uuid.New().String(), empresa, escapeSQL(c.codigo), escapeSQL(c.nome),
			c.res.Classe, c.res.Conformidade, c.res.Status, escapeSQL(obs))
		b.WriteString("ON CONFLICT (company_id, codigo) DO UPDATE SET nome = EXCLUDED.nome, classe = EXCLUDED.classe,\n")
		b.WriteString("    conformidade = EXCLUDED.conformidade, status = EXCLUDED.status, updated_at = now();\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
