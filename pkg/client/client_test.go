package client_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/FinancePro-api/internal/application/dto"
	"github.com/jhoicas/FinancePro-api/pkg/client"
)

func fast(opts ...client.Option) []client.Option {
	return append([]client.Option{client.WithBackoff(time.Millisecond)}, opts...)
}

func TestListPending_EnviaFiltrosEToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/aprovacao/pendentes", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "orcamento", r.URL.Query().Get("tipo"))
		assert.Equal(t, "2025-03-01", r.URL.Query().Get("dataInicio"))
		assert.Equal(t, "2", r.URL.Query().Get("pagina"))
		assert.Empty(t, r.URL.Query().Get("status"))
		_ = json.NewEncoder(w).Encode(dto.PendingListResponse{
			Data:       []dto.PendingItemResponse{{ID: "orc-1", Tipo: "orcamento"}},
			Pagination: dto.Pagination{Pagina: 2, Limite: 20, Total: 21, TotalPaginas: 2},
		})
	}))
	defer srv.Close()

	c := client.New(srv.URL+"/", "tok", fast()...)
	got, err := c.ListPending(t.Context(), dto.PendingListRequest{
		PageRequest: dto.PageRequest{Pagina: 2},
		Tipo:        "orcamento",
		DataInicio:  "2025-03-01",
	})
	require.NoError(t, err)
	require.Len(t, got.Data, 1)
	assert.Equal(t, 21, got.Pagination.Total)
}

func TestReject_ErroDeValidacaoNaoRepete(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/aprovacao/orcamento/orc-1/rejeitar", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":"VALIDATION","message":"motivo obrigatório","fields":[{"field":"motivo","message":"obrigatório"}]}`))
	}))
	defer srv.Close()

	_, err := client.New(srv.URL, "tok", fast()...).Reject(t.Context(), "orcamento", "orc-1", "")
	var ae *client.APIError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, http.StatusBadRequest, ae.Status)
	assert.Equal(t, "VALIDATION", ae.Code)
	require.Len(t, ae.Fields, 1)
	assert.Equal(t, "motivo", ae.Fields[0].Field)
	assert.False(t, ae.IsAuth())
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestApprove_401(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"code":"INVALID_TOKEN","message":"token inválido ou expirado"}`))
	}))
	defer srv.Close()

	_, err := client.New(srv.URL, "velho", fast()...).Approve(t.Context(), "orcamento", "orc-1", "")
	var ae *client.APIError
	require.ErrorAs(t, err, &ae)
	assert.True(t, ae.IsAuth())
}

func TestBatchApprove_Repete503(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		var in dto.BatchApproveRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		_ = json.NewEncoder(w).Encode(dto.BatchApproveResponse{Total: len(in.Itens), Aprovados: len(in.Itens)})
	}))
	defer srv.Close()

	got, err := client.New(srv.URL, "tok", fast()...).BatchApprove(t.Context(), dto.BatchApproveRequest{
		Itens: []dto.BatchItem{{ID: "a", Tipo: "orcamento"}, {ID: "b", Tipo: "plano_tesouraria"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, got.Aprovados)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestBatchApprove_DesisteDepoisDeMaxRetries(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := client.New(srv.URL, "tok", fast(client.WithMaxRetries(1))...).
		BatchApprove(t.Context(), dto.BatchApproveRequest{Itens: []dto.BatchItem{{ID: "a", Tipo: "orcamento"}}})
	var ae *client.APIError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "HTTP_502", ae.Code)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer srv.Close()

	_, err := client.New(srv.URL, "tok", fast(client.WithTimeout(20*time.Millisecond), client.WithMaxRetries(0))...).
		Summary(t.Context())
	assert.ErrorIs(t, err, client.ErrTimeout)
}

func TestErroDeRede(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := client.New(url, "tok", fast()...).ImportFromBudget(t.Context(), "pl-1", "orc-1")
	assert.ErrorIs(t, err, client.ErrNetwork)
}
