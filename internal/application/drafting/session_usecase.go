// Package drafting orquesta las sesiones de edición de borradores: crea un borrador
// por sesión, aplica cada mutación como una fusión inmutable y sirve la vista previa.
package drafting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ranjan0044/invoice-builder/internal/application/dto"
	"github.com/ranjan0044/invoice-builder/internal/domain"
	"github.com/ranjan0044/invoice-builder/internal/domain/draft"
	"github.com/ranjan0044/invoice-builder/internal/domain/entity"
	"github.com/ranjan0044/invoice-builder/internal/domain/invoice"
	"github.com/ranjan0044/invoice-builder/internal/domain/viewstate"
	"github.com/ranjan0044/invoice-builder/pkg/logger"
)

// SessionConfig parámetros de creación de sesiones.
type SessionConfig struct {
	NumberPrefix string // prefijo por defecto del número de documento
}

// SessionUseCase casos de uso sobre una sesión de edición.
type SessionUseCase struct {
	store   SessionStore
	editor  *draft.Editor
	numbers *invoice.NumberGenerator
	logos   LogoProcessor
	sheets  SpreadsheetExporter
	printer PrintRenderer
	cfg     SessionConfig
	log     *logger.Logger
	now     func() time.Time
}

// NewSessionUseCase construye el caso de uso inyectando todas sus dependencias.
func NewSessionUseCase(
	store SessionStore,
	editor *draft.Editor,
	numbers *invoice.NumberGenerator,
	logos LogoProcessor,
	sheets SpreadsheetExporter,
	printer PrintRenderer,
	cfg SessionConfig,
	log *logger.Logger,
) *SessionUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &SessionUseCase{
		store:   store,
		editor:  editor,
		numbers: numbers,
		logos:   logos,
		sheets:  sheets,
		printer: printer,
		cfg:     cfg,
		log:     log,
		now:     time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *SessionUseCase) WithClock(now func() time.Time) *SessionUseCase {
	uc.now = now
	return uc
}

func normalizeCurrency(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Create abre una sesión con un borrador nuevo.
func (uc *SessionUseCase) Create(ctx context.Context, in dto.CreateDraftRequest) (*dto.DraftResponse, error) {
	kind := entity.DocumentKindNonTax
	if in.Kind != "" {
		kind = entity.DocumentKind(in.Kind)
		if !kind.Valid() {
			return nil, domain.ErrInvalidInput
		}
	}
	prefix := in.Prefix
	if prefix == "" {
		prefix = uc.cfg.NumberPrefix
	}

	now := uc.now()
	s := entity.Session{
		ID:        uuid.NewString(),
		Draft:     uc.editor.New(kind, uc.numbers.Generate(prefix), now),
		View:      viewstate.Default(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.store.Create(s); err != nil {
		return nil, fmt.Errorf("crear sesión: %w", err)
	}
	uc.log.Session(s.ID).Info().
		Str("kind", string(kind)).
		Str("number", s.Draft.Number).
		Msg("sesión de borrador creada")
	return toDraftResponse(s), nil
}

// Get devuelve la sesión con su borrador y totales.
func (uc *SessionUseCase) Get(ctx context.Context, id string) (*dto.DraftResponse, error) {
	s, err := uc.store.Get(id)
	if err != nil {
		return nil, err
	}
	return toDraftResponse(s), nil
}

// Discard termina la sesión y descarta el borrador.
func (uc *SessionUseCase) Discard(ctx context.Context, id string) error {
	if !uc.store.Delete(id) {
		return domain.ErrNotFound
	}
	uc.log.Session(id).Info().Msg("sesión de borrador descartada")
	return nil
}

// mutate aplica fn al borrador de la sesión de forma atómica.
func (uc *SessionUseCase) mutate(id string, fn func(d entity.DocumentDraft) (entity.DocumentDraft, error)) (entity.Session, error) {
	return uc.store.Update(id, func(s *entity.Session) error {
		next, err := fn(s.Draft)
		if err != nil {
			return err
		}
		s.Draft = next
		s.UpdatedAt = uc.now()
		return nil
	})
}

func (uc *SessionUseCase) mutateDraft(id string, fn func(d entity.DocumentDraft) (entity.DocumentDraft, error)) (*dto.DraftResponse, error) {
	s, err := uc.mutate(id, fn)
	if err != nil {
		return nil, err
	}
	return toDraftResponse(s), nil
}

// Update aplica un cambio parcial y las reglas derivadas (tipo, vencimiento).
func (uc *SessionUseCase) Update(ctx context.Context, id string, in dto.UpdateDraftRequest) (*dto.DraftResponse, error) {
	return uc.mutateDraft(id, func(d entity.DocumentDraft) (entity.DocumentDraft, error) {
		p, err := toPatch(in, d)
		if err != nil {
			return d, err
		}
		if p, err = uc.editor.IdentifyRows(p); err != nil {
			return d, err
		}
		return uc.editor.Edit(d, p), nil
	})
}

// SetKind cambia entre factura con y sin impuestos.
func (uc *SessionUseCase) SetKind(ctx context.Context, id string, kind string) (*dto.DraftResponse, error) {
	k := entity.DocumentKind(kind)
	if !k.Valid() {
		return nil, domain.ErrInvalidInput
	}
	resp, err := uc.mutateDraft(id, func(d entity.DocumentDraft) (entity.DocumentDraft, error) {
		return uc.editor.SwitchKind(d, k), nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Session(id).Debug().Str("kind", kind).Str("currency", resp.Draft.Currency).Msg("tipo de documento cambiado")
	return resp, nil
}

// AddItem agrega una línea, aplicando los valores iniciales opcionales de in.
func (uc *SessionUseCase) AddItem(ctx context.Context, id string, in dto.ItemPatchRequest) (*dto.DraftResponse, error) {
	return uc.mutateDraft(id, func(d entity.DocumentDraft) (entity.DocumentDraft, error) {
		next, item := uc.editor.AddItem(d)
		return uc.editor.UpdateItem(next, item.ID, toItemPatch(in))
	})
}

// UpdateItem modifica una línea existente.
func (uc *SessionUseCase) UpdateItem(ctx context.Context, id, itemID string, in dto.ItemPatchRequest) (*dto.DraftResponse, error) {
	return uc.mutateDraft(id, func(d entity.DocumentDraft) (entity.DocumentDraft, error) {
		return uc.editor.UpdateItem(d, itemID, toItemPatch(in))
	})
}

// RemoveItem quita una línea; sobre la última fila restante no hace nada.
func (uc *SessionUseCase) RemoveItem(ctx context.Context, id, itemID string) (*dto.DraftResponse, error) {
	return uc.mutateDraft(id, func(d entity.DocumentDraft) (entity.DocumentDraft, error) {
		return uc.editor.RemoveItem(d, itemID), nil
	})
}

// DuplicateItem copia una línea a continuación de la original.
func (uc *SessionUseCase) DuplicateItem(ctx context.Context, id, itemID string) (*dto.DraftResponse, error) {
	return uc.mutateDraft(id, func(d entity.DocumentDraft) (entity.DocumentDraft, error) {
		next, _, err := uc.editor.DuplicateItem(d, itemID)
		return next, err
	})
}

// AddCustomField agrega un campo personalizado; la etiqueta es obligatoria.
func (uc *SessionUseCase) AddCustomField(ctx context.Context, id string, in dto.CustomFieldRequest) (*dto.DraftResponse, error) {
	return uc.mutateDraft(id, func(d entity.DocumentDraft) (entity.DocumentDraft, error) {
		next, _, err := uc.editor.AddCustomField(d, in.Label, in.Value)
		return next, err
	})
}

// UpdateCustomField modifica un campo personalizado.
func (uc *SessionUseCase) UpdateCustomField(ctx context.Context, id, fieldID string, in dto.CustomFieldPatchRequest) (*dto.DraftResponse, error) {
	return uc.mutateDraft(id, func(d entity.DocumentDraft) (entity.DocumentDraft, error) {
		return uc.editor.UpdateCustomField(d, fieldID, draft.CustomFieldPatch{Label: in.Label, Value: in.Value})
	})
}

// RemoveCustomField quita un campo personalizado.
func (uc *SessionUseCase) RemoveCustomField(ctx context.Context, id, fieldID string) (*dto.DraftResponse, error) {
	return uc.mutateDraft(id, func(d entity.DocumentDraft) (entity.DocumentDraft, error) {
		return uc.editor.RemoveCustomField(d, fieldID), nil
	})
}

// UploadLogo procesa la imagen subida y la guarda como logo del emisor.
// La imagen se procesa fuera del bloqueo de la sesión.
func (uc *SessionUseCase) UploadLogo(ctx context.Context, id string, data []byte) (*dto.DraftResponse, error) {
	if _, err := uc.store.Get(id); err != nil {
		return nil, err
	}
	dataURL, err := uc.logos.Process(data)
	if err != nil {
		uc.log.Session(id).Warn().Err(err).Int("bytes", len(data)).Msg("logo rechazado")
		return nil, fmt.Errorf("procesar logo: %w", err)
	}
	resp, err := uc.mutateDraft(id, func(d entity.DocumentDraft) (entity.DocumentDraft, error) {
		return uc.editor.SetLogo(d, dataURL), nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Session(id).Debug().Int("bytes", len(data)).Msg("logo actualizado")
	return resp, nil
}

// ClearLogo quita el logo del emisor.
func (uc *SessionUseCase) ClearLogo(ctx context.Context, id string) (*dto.DraftResponse, error) {
	return uc.mutateDraft(id, func(d entity.DocumentDraft) (entity.DocumentDraft, error) {
		return uc.editor.ClearLogo(d), nil
	})
}

// View devuelve las banderas de vista de la sesión.
func (uc *SessionUseCase) View(ctx context.Context, id string) (map[string]bool, error) {
	s, err := uc.store.Get(id)
	if err != nil {
		return nil, err
	}
	return s.View.Map(), nil
}

// TransitionView abre, cierra o alterna una bandera de vista.
func (uc *SessionUseCase) TransitionView(ctx context.Context, id, flag, transition string) (map[string]bool, error) {
	f, err := viewstate.ParseFlag(flag)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrInvalidInput)
	}
	t := viewstate.Transition(transition)
	if _, err := viewstate.Default().Apply(f, t); err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrInvalidInput)
	}
	s, err := uc.store.Update(id, func(s *entity.Session) error {
		next, err := s.View.Apply(f, t)
		if err != nil {
			return err
		}
		s.View = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.View.Map(), nil
}

// DismissView cierra desplegables y calendarios (clic fuera).
func (uc *SessionUseCase) DismissView(ctx context.Context, id string) (map[string]bool, error) {
	s, err := uc.store.Update(id, func(s *entity.Session) error {
		s.View = s.View.Dismiss()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.View.Map(), nil
}

// TitleSuggestions sugerencias de título para el desplegable.
func (uc *SessionUseCase) TitleSuggestions(ctx context.Context, id string) (*dto.TitleSuggestionsResponse, error) {
	s, err := uc.store.Get(id)
	if err != nil {
		return nil, err
	}
	typing := s.View.IsOpen(viewstate.TitleTyping)
	return &dto.TitleSuggestionsResponse{
		Current:     s.Draft.Title,
		Suggestions: draft.FilterTitleSuggestions(s.Draft.Title, typing),
	}, nil
}

func (uc *SessionUseCase) preview(id string) (Preview, error) {
	s, err := uc.store.Get(id)
	if err != nil {
		return Preview{}, err
	}
	return BuildPreview(s), nil
}

// Preview vista previa en vivo: totales re-derivados y textos formateados.
func (uc *SessionUseCase) Preview(ctx context.Context, id string) (*dto.PreviewResponse, error) {
	p, err := uc.preview(id)
	if err != nil {
		return nil, err
	}
	return toPreviewResponse(p), nil
}

// RenderPrint genera la página imprimible del documento.
func (uc *SessionUseCase) RenderPrint(ctx context.Context, id string) (string, error) {
	p, err := uc.preview(id)
	if err != nil {
		return "", err
	}
	html, err := uc.printer.RenderHTML(p)
	if err != nil {
		return "", fmt.Errorf("vista imprimible: %w", err)
	}
	return html, nil
}

// ExportSpreadsheet exporta líneas y totales a .xlsx. Devuelve bytes y nombre de archivo.
func (uc *SessionUseCase) ExportSpreadsheet(ctx context.Context, id string) ([]byte, string, error) {
	p, err := uc.preview(id)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.sheets.Export(ctx, p)
	if err != nil {
		return nil, "", fmt.Errorf("exportar hoja de cálculo: %w", err)
	}
	uc.log.Session(id).Info().Int("items", len(p.Lines)).Msg("borrador exportado a xlsx")
	return data, exportFilename(p.Draft, "xlsx"), nil
}

// ExportPDF la descarga PDF no está implementada: siempre ErrNotImplemented
// (o ErrNotFound si la sesión no existe). No cambia el borrador.
func (uc *SessionUseCase) ExportPDF(ctx context.Context, id string) error {
	if _, err := uc.store.Get(id); err != nil {
		return err
	}
	return domain.ErrNotImplemented
}

func exportFilename(d entity.DocumentDraft, ext string) string {
	name := strings.TrimSpace(d.Number)
	if name == "" {
		name = "draft"
	}
	name = strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == '"' || r == ' ' {
			return '_'
		}
		return r
	}, name)
	return name + "." + ext
}
