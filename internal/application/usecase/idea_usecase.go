package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/gloor0717/a4c-backlog/internal/application/dto"
	"github.com/gloor0717/a4c-backlog/internal/domain"
	"github.com/gloor0717/a4c-backlog/internal/domain/entity"
	"github.com/gloor0717/a4c-backlog/internal/domain/repository"
)

// IdeaUseCase controla el ciclo de vida de las ideas: quién crea, edita, vota o borra,
// y la numeración US-###. No guarda estado propio; cada operación se resuelve contra el store.
type IdeaUseCase struct {
	repo repository.IdeaRepository
	tx   TxRunner
	pdf  BacklogPDFGenerator
	now  func() time.Time
}

// NewIdeaUseCase construye el caso de uso. pdf puede ser nil si no se expone la exportación.
func NewIdeaUseCase(repo repository.IdeaRepository, tx TxRunner, pdf BacklogPDFGenerator) *IdeaUseCase {
	return &IdeaUseCase{repo: repo, tx: tx, pdf: pdf, now: time.Now}
}

// List devuelve todas las ideas, la más reciente primero. Si query no está vacío
// filtra por story sin distinguir mayúsculas (plegado Unicode).
func (uc *IdeaUseCase) List(ctx context.Context, query string) ([]dto.IdeaResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	query = strings.TrimSpace(query)
	var fold cases.Caser
	if query != "" {
		fold = cases.Fold()
		query = fold.String(query)
	}
	items := make([]dto.IdeaResponse, 0, len(list))
	for _, idea := range list {
		if query != "" && !strings.Contains(fold.String(idea.Story), query) {
			continue
		}
		items = append(items, *toIdeaResponse(idea))
	}
	return items, nil
}

// Get obtiene una idea por id.
func (uc *IdeaUseCase) Get(ctx context.Context, id int64) (*dto.IdeaResponse, error) {
	idea, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if idea == nil {
		return nil, domain.ErrNotFound
	}
	return toIdeaResponse(idea), nil
}

// Create registra una idea con solo story; el resto toma los valores por defecto del store.
// Inserción, asignación del número US y lectura de la fila ocurren en una única transacción.
// story se guarda tal como llega.
func (uc *IdeaUseCase) Create(ctx context.Context, in dto.CreateIdeaRequest) (*dto.IdeaResponse, error) {
	if strings.TrimSpace(in.Story) == "" {
		return nil, domain.NewValidationError("story", "es requerido")
	}
	return uc.create(ctx, in.Story, entity.IdeaPatch{})
}

// Import crea una idea ya con epic y criteria (carga masiva). Solo admin.
// Si algo falla no queda nada escrito: no hay ideas a medio importar.
func (uc *IdeaUseCase) Import(ctx context.Context, role string, in dto.ImportIdeaRequest) (*dto.IdeaResponse, error) {
	if err := domain.Authorize(role, domain.OpEditIdea); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Story) == "" {
		return nil, domain.NewValidationError("story", "es requerido")
	}
	var extra entity.IdeaPatch
	if in.Epic != "" {
		extra.Epic = &in.Epic
	}
	if in.Criteria != "" {
		extra.Criteria = &in.Criteria
	}
	return uc.create(ctx, in.Story, extra)
}

func (uc *IdeaUseCase) create(ctx context.Context, story string, extra entity.IdeaPatch) (*dto.IdeaResponse, error) {
	var created *entity.Idea
	err := uc.tx.Run(ctx, func(ideas repository.IdeaRepository, _ repository.VoteRepository) error {
		id, err := ideas.Insert(ctx, story)
		if err != nil {
			return err
		}
		if err := ideas.SetUSNumber(ctx, id, entity.USNumber(id)); err != nil {
			return err
		}
		if extra.IsEmpty() {
			created, err = ideas.GetByID(ctx, id)
		} else {
			created, err = ideas.Patch(ctx, id, extra)
		}
		if err != nil {
			return err
		}
		if created == nil {
			return fmt.Errorf("idea %d no visible tras insertar", id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toIdeaResponse(created), nil
}

// FullUpdate edición parcial de cualquier campo editable. Solo admin.
func (uc *IdeaUseCase) FullUpdate(ctx context.Context, role string, id int64, in dto.UpdateIdeaRequest) (*dto.IdeaResponse, error) {
	if err := domain.Authorize(role, domain.OpEditIdea); err != nil {
		return nil, err
	}
	patch, err := toIdeaPatch(in)
	if err != nil {
		return nil, err
	}
	idea, err := uc.repo.Patch(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	return toIdeaResponse(idea), nil
}

// UpdatePriority sobrescribe solo la prioridad. po o admin.
func (uc *IdeaUseCase) UpdatePriority(ctx context.Context, role string, id int64, in dto.UpdatePriorityRequest) error {
	if err := domain.Authorize(role, domain.OpUpdatePriority); err != nil {
		return err
	}
	if in.Priority == nil {
		return domain.NewValidationError("priority", "es requerido")
	}
	p := entity.Priority(*in.Priority)
	if !p.Valid() {
		return domain.NewValidationError("priority", "debe ser Low, Medium o High")
	}
	return uc.repo.UpdatePriority(ctx, id, p)
}

// Vote suma el voto de voterID. Un mismo votante solo cuenta una vez por idea:
// el registro del voto y el incremento se confirman juntos, y el segundo intento
// choca con la restricción única del store (ErrAlreadyVoted).
func (uc *IdeaUseCase) Vote(ctx context.Context, role, voterID string, id int64) (*dto.IdeaResponse, error) {
	if voterID == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := domain.Authorize(role, domain.OpVote); err != nil {
		return nil, err
	}
	var updated *entity.Idea
	err := uc.tx.Run(ctx, func(ideas repository.IdeaRepository, votes repository.VoteRepository) error {
		if err := votes.Insert(ctx, entity.Vote{IdeaID: id, VoterID: voterID, CreatedAt: uc.now().UTC()}); err != nil {
			return err
		}
		var err error
		updated, err = ideas.IncrementVotes(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toIdeaResponse(updated), nil
}

// Delete borra la idea definitivamente (sus votos se van con ella). Solo admin.
func (uc *IdeaUseCase) Delete(ctx context.Context, role string, id int64) error {
	if err := domain.Authorize(role, domain.OpDeleteIdea); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// ExportPDF genera el backlog completo en PDF. po o admin.
func (uc *IdeaUseCase) ExportPDF(ctx context.Context, role string) (pdfBytes []byte, filename string, err error) {
	if err := domain.Authorize(role, domain.OpExportBacklog); err != nil {
		return nil, "", err
	}
	if uc.pdf == nil {
		return nil, "", fmt.Errorf("exportación PDF no configurada")
	}
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.pdf.GenerateBacklogPDF(ctx, list)
	if err != nil {
		return nil, "", err
	}
	return pdfBytes, "backlog-" + uc.now().Format("20060102") + ".pdf", nil
}

func toIdeaPatch(in dto.UpdateIdeaRequest) (entity.IdeaPatch, error) {
	patch := entity.IdeaPatch{
		Epic:     in.Epic,
		Criteria: in.Criteria,
	}
	if in.Story != nil {
		if strings.TrimSpace(*in.Story) == "" {
			return patch, domain.NewValidationError("story", "no puede quedar vacío")
		}
		patch.Story = in.Story
	}
	if in.Priority != nil {
		p := entity.Priority(*in.Priority)
		if !p.Valid() {
			return patch, domain.NewValidationError("priority", "debe ser Low, Medium o High")
		}
		patch.Priority = &p
	}
	if in.StoryPoints != nil {
		sp := entity.StoryPoints(*in.StoryPoints)
		if !sp.Valid() {
			return patch, domain.NewValidationError("storyPoints", "debe ser XS, S, M, L o XL")
		}
		patch.StoryPoints = &sp
	}
	if in.MoSCoW != nil {
		m := entity.MoSCoW(*in.MoSCoW)
		if !m.Valid() {
			return patch, domain.NewValidationError("moscow", "debe ser Must-have, Should-have, Could-have o Won't-have")
		}
		patch.MoSCoW = &m
	}
	if in.State != nil {
		s := entity.State(*in.State)
		if !s.Valid() {
			return patch, domain.NewValidationError("state", "debe ser to-validate, in-progress, done o to-archive")
		}
		patch.State = &s
	}
	if patch.IsEmpty() {
		return patch, domain.ErrEmptyPatch
	}
	return patch, nil
}

func toIdeaResponse(i *entity.Idea) *dto.IdeaResponse {
	if i == nil {
		return nil
	}
	return &dto.IdeaResponse{
		ID:          i.ID,
		USNumber:    i.USNumber,
		Epic:        nullable(i.Epic),
		Story:       i.Story,
		Criteria:    nullable(i.Criteria),
		Priority:    nullable(string(i.Priority)),
		StoryPoints: nullable(string(i.StoryPoints)),
		MoSCoW:      nullable(string(i.MoSCoW)),
		State:       string(i.State),
		Votes:       i.Votes,
		CreatedAt:   i.CreatedAt,
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
