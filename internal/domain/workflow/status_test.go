package workflow_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/FinancePro-api/internal/domain"
	"github.com/jhoicas/FinancePro-api/internal/domain/workflow"
)

var agora = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

func TestTransition_FluxoCompleto(t *testing.T) {
	st := &workflow.State{Status: workflow.StatusRascunho, CreatedBy: "autor"}

	require.NoError(t, workflow.Transition(st, workflow.StatusEmAnalise, "autor", "", agora))
	assert.Equal(t, workflow.StatusEmAnalise, st.Status)
	require.NotNil(t, st.SubmittedAt)

	later := agora.Add(time.Hour)
	require.NoError(t, workflow.Transition(st, workflow.StatusAprovado, "gestor", "ok para 2026", later))
	assert.Equal(t, workflow.StatusAprovado, st.Status)
	assert.Equal(t, "gestor", st.DecidedBy)
	assert.Equal(t, "ok para 2026", st.Observacoes)
	assert.Equal(t, "gestor", st.UpdatedBy)
	assert.Equal(t, later, st.UpdatedAt)

	require.NoError(t, workflow.Transition(st, workflow.StatusArquivado, "gestor", "", later))
	assert.Empty(t, workflow.AllowedTargets(st.Status))
}

func TestTransition_Invalidas(t *testing.T) {
	cases := []struct {
		from, to workflow.Status
	}{
		{workflow.StatusRascunho, workflow.StatusAprovado},
		{workflow.StatusRascunho, workflow.StatusRejeitado},
		{workflow.StatusAprovado, workflow.StatusRascunho},
		{workflow.StatusArquivado, workflow.StatusEmAnalise},
		{workflow.StatusEmAnalise, workflow.StatusArquivado},
	}
	for _, tc := range cases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			st := &workflow.State{Status: tc.from}
			err := workflow.Transition(st, tc.to, "gestor", "motivo qualquer", agora)
			assert.True(t, errors.Is(err, domain.ErrInvalidTransition), "got %v", err)
			assert.Equal(t, tc.from, st.Status, "estado não deve mudar")
		})
	}
}

func TestTransition_RejeicaoExigeMotivo(t *testing.T) {
	st := &workflow.State{Status: workflow.StatusEmAnalise}

	err := workflow.Transition(st, workflow.StatusRejeitado, "gestor", "   ", agora)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Equal(t, workflow.StatusEmAnalise, st.Status)

	require.NoError(t, workflow.Transition(st, workflow.StatusRejeitado, "gestor", "custos sem suporte", agora))
	assert.Equal(t, workflow.StatusRejeitado, st.Status)
	assert.Equal(t, "custos sem suporte", st.MotivoRejeicao)
}

func TestTransition_RejeitadoPermaneceAteReabrir(t *testing.T) {
	st := &workflow.State{Status: workflow.StatusRejeitado, MotivoRejeicao: "incompleto"}
	assert.ElementsMatch(t, []workflow.Status{workflow.StatusRascunho, workflow.StatusEmAnalise}, workflow.AllowedTargets(st.Status))
	assert.NoError(t, workflow.EnsureEditable(st.Status))

	require.NoError(t, workflow.Transition(st, workflow.StatusRascunho, "autor", "", agora))
	assert.Empty(t, st.MotivoRejeicao)
	assert.Nil(t, st.SubmittedAt)
}

func TestTransition_ActorObrigatorio(t *testing.T) {
	st := &workflow.State{Status: workflow.StatusRascunho}
	err := workflow.Transition(st, workflow.StatusEmAnalise, "", "", agora)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestEnsureEditable(t *testing.T) {
	assert.NoError(t, workflow.EnsureEditable(workflow.StatusRascunho))
	assert.NoError(t, workflow.EnsureEditable(workflow.StatusEmAnalise))
	assert.ErrorIs(t, workflow.EnsureEditable(workflow.StatusAprovado), domain.ErrImmutableState)
	assert.ErrorIs(t, workflow.EnsureEditable(workflow.StatusArquivado), domain.ErrImmutableState)
}

func TestParseStatus(t *testing.T) {
	st, err := workflow.ParseStatus(" em_analise ")
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusEmAnalise, st)

	_, err = workflow.ParseStatus("pendente")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExpectVersion(t *testing.T) {
	st := &workflow.State{Version: 3}
	tres, dois := 3, 2

	assert.NoError(t, st.ExpectVersion(nil))
	assert.NoError(t, st.ExpectVersion(&tres))
	assert.ErrorIs(t, st.ExpectVersion(&dois), domain.ErrConflict)
}
