// Package draft guarda rascunhos de formulários (auto-gravação) fora do navegador.
package draft

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/jhoicas/FinancePro-api/internal/application/dto"
	"github.com/jhoicas/FinancePro-api/internal/domain"
)

// MaxPayloadBytes tamanho máximo de um rascunho.
const MaxPayloadBytes = 256 << 10

var formIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// Store persistência de rascunhos. Load devolve domain.ErrNotFound quando não existe.
type Store interface {
	Save(ctx context.Context, key string, state []byte) error
	Load(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// UseCase isola os rascunhos por empresa e utilizador.
type UseCase struct {
	store Store
}

// NewUseCase constrói o caso de uso sobre um Store.
func NewUseCase(store Store) *UseCase {
	return &UseCase{store: store}
}

// Save grava o estado do formulário; tem de ser um objeto JSON.
func (uc *UseCase) Save(ctx context.Context, companyID, userID, formID string, state []byte) (*dto.DraftResponse, error) {
	key, err := Key(companyID, userID, formID)
	if err != nil {
		return nil, err
	}
	if len(state) > MaxPayloadBytes {
		return nil, domain.NewValidationError("estado", fmt.Sprintf("máximo de %d bytes", MaxPayloadBytes))
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(state, &obj); err != nil || obj == nil {
		return nil, domain.NewValidationError("estado", "tem de ser um objeto JSON")
	}
	if err := uc.store.Save(ctx, key, state); err != nil {
		return nil, err
	}
	return &dto.DraftResponse{FormID: formID, Estado: json.RawMessage(state)}, nil
}

// Load devolve o rascunho gravado.
func (uc *UseCase) Load(ctx context.Context, companyID, userID, formID string) (*dto.DraftResponse, error) {
	key, err := Key(companyID, userID, formID)
	if err != nil {
		return nil, err
	}
	state, err := uc.store.Load(ctx, key)
	if err != nil {
		return nil, err
	}
	return &dto.DraftResponse{FormID: formID, Estado: json.RawMessage(state)}, nil
}

// Delete descarta o rascunho (ex.: depois de o formulário ser submetido).
func (uc *UseCase) Delete(ctx context.Context, companyID, userID, formID string) error {
	key, err := Key(companyID, userID, formID)
	if err != nil {
		return err
	}
	return uc.store.Delete(ctx, key)
}

// Key chave de armazenamento "rascunho:<empresa>:<utilizador>:<formulário>".
func Key(companyID, userID, formID string) (string, error) {
	if strings.TrimSpace(companyID) == "" || strings.TrimSpace(userID) == "" {
		return "", domain.ErrUnauthorized
	}
	if !formIDPattern.MatchString(formID) {
		return "", domain.NewValidationError("formId", "apenas letras, dígitos, - e _ (máx. 64)")
	}
	return "rascunho:" + companyID + ":" + userID + ":" + formID, nil
}
