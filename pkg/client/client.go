// Package client é o cliente Go da API FinancePro para a fila de aprovação e a importação de orçamentos.
//
// Falhas de rede e timeouts (ErrNetwork, ErrTimeout) e as respostas 502/503/504 são repetidas
// até MaxRetries vezes com espera crescente. Respostas de erro da API chegam como *APIError e não se repetem.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/FinancePro-api/internal/application/dto"
)

// Valores por defeito.
const (
	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 2
	DefaultBackoff    = 500 * time.Millisecond
)

var (
	// ErrNetwork o servidor não foi alcançado.
	ErrNetwork = errors.New("client: erro de rede")
	// ErrTimeout o pedido excedeu o tempo limite.
	ErrTimeout = errors.New("client: tempo limite excedido")
)

// APIError resposta de erro da API (ErrorResponse).
type APIError struct {
	Status  int
	Code    string
	Message string
	Fields  []FieldError
}

// FieldError detalhe de validação devolvido pela API.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api %d %s: %s", e.Status, e.Code, e.Message)
}

// IsAuth indica token em falta, inválido ou expirado.
func (e *APIError) IsAuth() bool { return e.Status == http.StatusUnauthorized }

// Client cliente HTTP autenticado por Bearer token.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	maxRetries int
	backoff    time.Duration
}

// Option configura o Client.
type Option func(*Client)

// WithHTTPClient substitui o http.Client (o timeout passa a ser o dele).
func WithHTTPClient(hc *http.Client) Option { return func(c *Client) { c.httpClient = hc } }

// WithTimeout tempo limite de cada tentativa.
func WithTimeout(d time.Duration) Option { return func(c *Client) { c.httpClient.Timeout = d } }

// WithMaxRetries número de repetições depois da primeira tentativa.
func WithMaxRetries(n int) Option { return func(c *Client) { c.maxRetries = n } }

// WithBackoff espera base entre tentativas; duplica a cada repetição.
func WithBackoff(d time.Duration) Option { return func(c *Client) { c.backoff = d } }

// New cria o cliente. baseURL é a raiz do servidor (ex.: https://api.exemplo.ao).
func New(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		maxRetries: DefaultMaxRetries,
		backoff:    DefaultBackoff,
	}
	for _, o := range opts {
		o(c)
	}
	if c.maxRetries < 0 {
		c.maxRetries = 0
	}
	return c
}

// ListPending GET /api/aprovacao/pendentes.
func (c *Client) ListPending(ctx context.Context, in dto.PendingListRequest) (*dto.PendingListResponse, error) {
	q := url.Values{}
	set := func(k, v string) {
		if v != "" {
			q.Set(k, v)
		}
	}
	set("tipo", in.Tipo)
	set("status", in.Status)
	set("departamento", in.Departamento)
	set("dataInicio", in.DataInicio)
	set("dataFim", in.DataFim)
	set("busca", in.Busca)
	if in.Pagina > 0 {
		q.Set("pagina", strconv.Itoa(in.Pagina))
	}
	if in.Limite > 0 {
		q.Set("limite", strconv.Itoa(in.Limite))
	}
	var out dto.PendingListResponse
	if err := c.do(ctx, http.MethodGet, "/api/aprovacao/pendentes", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Summary GET /api/aprovacao/resumo.
func (c *Client) Summary(ctx context.Context) (*dto.PendingSummaryResponse, error) {
	var out dto.PendingSummaryResponse
	if err := c.do(ctx, http.MethodGet, "/api/aprovacao/resumo", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Approve PATCH /api/aprovacao/:tipo/:id/aprovar.
func (c *Client) Approve(ctx context.Context, tipo, id, observacoes string) (*dto.DecisionResponse, error) {
	var out dto.DecisionResponse
	path := "/api/aprovacao/" + url.PathEscape(tipo) + "/" + url.PathEscape(id) + "/aprovar"
	if err := c.do(ctx, http.MethodPatch, path, nil, dto.ApproveRequest{Observacoes: observacoes}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Reject PATCH /api/aprovacao/:tipo/:id/rejeitar.
func (c *Client) Reject(ctx context.Context, tipo, id, motivo string) (*dto.DecisionResponse, error) {
	var out dto.DecisionResponse
	path := "/api/aprovacao/" + url.PathEscape(tipo) + "/" + url.PathEscape(id) + "/rejeitar"
	if err := c.do(ctx, http.MethodPatch, path, nil, dto.RejectRequest{Motivo: motivo}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BatchApprove POST /api/aprovacao/lote/aprovar.
func (c *Client) BatchApprove(ctx context.Context, in dto.BatchApproveRequest) (*dto.BatchApproveResponse, error) {
	var out dto.BatchApproveResponse
	if err := c.do(ctx, http.MethodPost, "/api/aprovacao/lote/aprovar", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ImportFromBudget POST /api/tesouraria/planos/:id/importar-orcamento.
func (c *Client) ImportFromBudget(ctx context.Context, planID, orcamentoID string) (*dto.ImportBudgetResponse, error) {
	var out dto.ImportBudgetResponse
	path := "/api/tesouraria/planos/" + url.PathEscape(planID) + "/importar-orcamento"
	if err := c.do(ctx, http.MethodPost, path, nil, dto.ImportBudgetRequest{OrcamentoID: orcamentoID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, q url.Values, in, out any) error {
	var body []byte
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("client: serializar pedido: %w", err)
		}
		body = b
	}
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			wait := c.backoff << (attempt - 1)
			select {
			case <-ctx.Done():
				return classify(ctx, ctx.Err())
			case <-time.After(wait):
			}
		}
		err := c.once(ctx, method, u, body, out)
		if err == nil {
			return nil
		}
		lastErr = err
		if !retryable(err) || ctx.Err() != nil {
			return err
		}
	}
	return lastErr
}

func (c *Client) once(ctx context.Context, method, u string, body []byte, out any) error {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return fmt.Errorf("client: criar pedido: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classify(ctx, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return classify(ctx, err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(resp.StatusCode, raw)
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("client: resposta inválida: %w", err)
	}
	return nil
}

func decodeAPIError(status int, raw []byte) *APIError {
	var body struct {
		Code    string       `json:"code"`
		Message string       `json:"message"`
		Fields  []FieldError `json:"fields"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || body.Code == "" {
		body.Code = "HTTP_" + strconv.Itoa(status)
		body.Message = strings.TrimSpace(string(raw))
		if body.Message == "" {
			body.Message = http.StatusText(status)
		}
	}
	return &APIError{Status: status, Code: body.Code, Message: body.Message, Fields: body.Fields}
}

func classify(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrNetwork, err)
}

func retryable(err error) bool {
	if errors.Is(err, ErrNetwork) || errors.Is(err, ErrTimeout) {
		return true
	}
	var ae *APIError
	if errors.As(err, &ae) {
		switch ae.Status {
		case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return true
		}
	}
	return false
}
