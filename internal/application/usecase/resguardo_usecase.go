package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Resguardos-api/internal/application/dto"
	"github.com/jhoicas/Resguardos-api/internal/application/folio"
	"github.com/jhoicas/Resguardos-api/internal/domain"
	"github.com/jhoicas/Resguardos-api/internal/domain/entity"
	"github.com/jhoicas/Resguardos-api/internal/domain/repository"
	"github.com/jhoicas/Resguardos-api/internal/domain/selection"
	"github.com/jhoicas/Resguardos-api/pkg/logger"
)

// resguardoSession selección en curso de un formulario de resguardo.
// version es la versión de la instantánea contra la que se validó por última vez.
type resguardoSession struct {
	mu      sync.Mutex
	sel     *selection.State
	version uint64
	pruned  []int64
	dropped []int64
}

// ResguardoUseCase arma resguardos: selección validada, vista previa del folio y firma.
type ResguardoUseCase struct {
	catalog    *CatalogUseCase
	search     *SearchUseCase
	folios     *folio.Allocator
	counterKey string
	muebles    repository.MuebleRepository
	repo       repository.ResguardoRepository
	pdf        ResguardoPDFGenerator
	observer   Observer
	log        *logger.Logger
	sessions   *sessionStore[resguardoSession]
}

// NewResguardoUseCase construye el caso de uso.
func NewResguardoUseCase(
	catalog *CatalogUseCase,
	search *SearchUseCase,
	folios *folio.Allocator,
	counterKey string,
	muebles repository.MuebleRepository,
	repo repository.ResguardoRepository,
	pdf ResguardoPDFGenerator,
	observer Observer,
	log *logger.Logger,
) *ResguardoUseCase {
	if observer == nil {
		observer = nopObserver{}
	}
	return &ResguardoUseCase{
		catalog:    catalog,
		search:     search,
		folios:     folios,
		counterKey: counterKey,
		muebles:    muebles,
		repo:       repo,
		pdf:        pdf,
		observer:   observer,
		log:        log.Component("resguardos"),
		sessions:   newSessionStore[resguardoSession](SessionLimits{}, nil),
	}
}

// WithSessionLimits acota los formularios abiertos en memoria.
func (uc *ResguardoUseCase) WithSessionLimits(l SessionLimits) *ResguardoUseCase {
	uc.sessions = newSessionStore[resguardoSession](l, nil)
	return uc
}

// CreateSession abre un formulario de resguardo con la selección vacía.
func (uc *ResguardoUseCase) CreateSession() dto.ResguardoSessionResponse {
	sess := &resguardoSession{sel: selection.New(), version: uc.catalog.Snapshot().Version}
	id := uc.sessions.create(sess)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return uc.sessionResponse(id, sess, uc.catalog.Snapshot())
}

// GetSession devuelve la selección, revalidada contra la instantánea vigente.
func (uc *ResguardoUseCase) GetSession(id string) (*dto.ResguardoSessionResponse, error) {
	return uc.withSession(id, func(sess *resguardoSession, snap *Snapshot) error { return nil })
}

// CloseSession descarta el formulario.
func (uc *ResguardoUseCase) CloseSession(id string) error {
	if _, ok := uc.sessions.delete(id); !ok {
		return domain.ErrSessionNotFound
	}
	return nil
}

// AddItem intenta agregar un mueble. Un conflicto de responsable o área no es error:
// se devuelve en la respuesta y la selección queda intacta.
func (uc *ResguardoUseCase) AddItem(id string, muebleID int64) (*dto.AddItemResponse, error) {
	var res selection.AddResult
	out, err := uc.withSession(id, func(sess *resguardoSession, snap *Snapshot) error {
		m, ok := snap.Mueble(muebleID)
		if !ok {
			return domain.ErrNotFound
		}
		res = sess.sel.TryAdd(m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if res.Conflict != nil {
		uc.observer.SelectionConflict(string(res.Conflict.Kind))
	}
	return &dto.AddItemResponse{
		Added:     res.Added,
		Duplicate: res.Duplicate,
		Conflict:  toConflict(res.Conflict),
		Session:   *out,
	}, nil
}

// RemoveItem quita un mueble de la selección.
func (uc *ResguardoUseCase) RemoveItem(id string, muebleID int64) (*dto.ResguardoSessionResponse, error) {
	return uc.withSession(id, func(sess *resguardoSession, _ *Snapshot) error {
		if !sess.sel.Remove(muebleID) {
			return domain.ErrNotFound
		}
		return nil
	})
}

// SelectPage agrega la página visible de una sesión de búsqueda completa o no agrega nada.
func (uc *ResguardoUseCase) SelectPage(id, searchSessionID string) (*dto.SelectPageResponse, error) {
	page, err := uc.search.VisiblePage(searchSessionID)
	if err != nil {
		return nil, err
	}
	var res selection.BatchResult
	out, err := uc.withSession(id, func(sess *resguardoSession, _ *Snapshot) error {
		res = sess.sel.SelectAllVisible(page)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if res.Conflict != nil {
		uc.observer.SelectionConflict("pagina_" + string(res.Conflict.Kind))
	}
	return &dto.SelectPageResponse{Added: res.Added, Conflict: toConflict(res.Conflict), Session: *out}, nil
}

// DismissConflict descarta la señal de conflicto indicada (usufinal o area).
func (uc *ResguardoUseCase) DismissConflict(id, kind string) (*dto.ResguardoSessionResponse, error) {
	return uc.withSession(id, func(sess *resguardoSession, _ *Snapshot) error {
		switch selection.ConflictKind(kind) {
		case selection.ConflictResponsible:
			sess.sel.DismissResponsibleConflict()
		case selection.ConflictArea:
			sess.sel.DismissAreaConflict()
		default:
			return domain.ErrInvalidInput
		}
		return nil
	})
}

// Clear vacía la selección.
func (uc *ResguardoUseCase) Clear(id string) (*dto.ResguardoSessionResponse, error) {
	return uc.withSession(id, func(sess *resguardoSession, _ *Snapshot) error {
		sess.sel.Clear()
		return nil
	})
}

// PreviewFolio muestra el folio que se asignaría, sin consumirlo.
func (uc *ResguardoUseCase) PreviewFolio(ctx context.Context) (*dto.FolioResponse, error) {
	f, err := uc.folios.Preview(ctx, uc.counterKey)
	if err != nil {
		return nil, err
	}
	return &dto.FolioResponse{Key: uc.counterKey, Folio: f}, nil
}

// Submit firma el resguardo: revalida la selección, asigna el folio, persiste el documento,
// registra al resguardante en los muebles y limpia la selección.
// Sin folio asignado no se crea nada; si la persistencia falla la selección se conserva.
func (uc *ResguardoUseCase) Submit(ctx context.Context, id, userID string, in dto.SubmitResguardoRequest) (*dto.ResguardoResponse, error) {
	sess, err := uc.sessions.get(id)
	if err != nil {
		return nil, err
	}
	custodian := strings.TrimSpace(in.Custodian)
	if custodian == "" {
		return nil, domain.ErrInvalidInput
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	snap := uc.catalog.Snapshot()
	uc.sync(sess, snap)
	if len(sess.pruned) > 0 || len(sess.dropped) > 0 {
		// Los IDs siguen pendientes de reporte hasta la siguiente consulta de la sesión.
		return nil, fmt.Errorf("%w: la selección cambió al actualizar el inventario (retirados %v, descartados %v)",
			domain.ErrConflict, sess.pruned, sess.dropped)
	}
	if sess.sel.Len() == 0 {
		return nil, domain.ErrEmptySelection
	}

	responsible, area, _ := sess.sel.Established()
	puesto := strings.TrimSpace(in.Puesto)
	if puesto == "" {
		if d, ok := snap.Directory.DirectorByName(entity.Str(responsible)); ok {
			puesto = d.Position
		}
	}

	folioStr, err := uc.folios.Allocate(ctx, uc.counterKey)
	if err != nil {
		return nil, err
	}

	items := sess.sel.Items()
	r := &entity.Resguardo{
		ID:        uuid.New().String(),
		Folio:     folioStr,
		Director:  entity.Str(responsible),
		Area:      area.Label(),
		Puesto:    puesto,
		Custodian: custodian,
		CreatedBy: userID,
		CreatedAt: time.Now(),
		Items:     make([]entity.ResguardoItem, 0, len(items)),
	}
	for _, m := range items {
		r.Items = append(r.Items, entity.ResguardoItem{
			MuebleID:      m.ID,
			InventoryCode: m.InventoryCode,
			Description:   entity.Str(m.Description),
			Condition:     entity.Str(m.Condition),
			Origin:        entity.Str(m.Origin),
		})
	}
	if err := uc.repo.Create(ctx, r); err != nil {
		uc.log.Error().Err(err).Str("folio", folioStr).Msg("guardar resguardo; el folio queda sin documento")
		return nil, fmt.Errorf("%w: guardar resguardo: %v", domain.ErrStoreUnavailable, err)
	}

	patch := entity.MueblePatch{Custodian: &custodian}
	for _, m := range items {
		if err := uc.muebles.Update(ctx, m.ID, patch); err != nil {
			uc.log.Warn().Err(err).Int64("mueble", m.ID).Str("folio", folioStr).Msg("registrar resguardante en el mueble")
		}
	}

	sess.sel.Clear()
	uc.catalog.RequestRefresh()
	uc.observer.ResguardoCreated()
	uc.log.Info().Str("folio", folioStr).Int("muebles", len(items)).Str("usuario", userID).Msg("resguardo creado")
	return toResguardoResponse(r), nil
}

// PDF genera el documento imprimible de un resguardo existente.
func (uc *ResguardoUseCase) PDF(ctx context.Context, folioStr string) ([]byte, error) {
	r, err := uc.repo.GetByFolio(ctx, folioStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	return uc.pdf.GenerateResguardoPDF(ctx, r)
}

// withSession bloquea la sesión, la revalida contra la instantánea vigente y aplica fn.
func (uc *ResguardoUseCase) withSession(id string, fn func(*resguardoSession, *Snapshot) error) (*dto.ResguardoSessionResponse, error) {
	sess, err := uc.sessions.get(id)
	if err != nil {
		return nil, err
	}
	snap := uc.catalog.Snapshot()
	sess.mu.Lock()
	defer sess.mu.Unlock()
	uc.sync(sess, snap)
	if err := fn(sess, snap); err != nil {
		return nil, err
	}
	out := uc.sessionResponse(id, sess, snap)
	sess.pruned, sess.dropped = nil, nil
	return &out, nil
}

// sync revalida la selección cuando la instantánea cambió desde la última interacción.
// Los IDs eliminados o descartados se acumulan hasta que una respuesta de sesión los reporta.
func (uc *ResguardoUseCase) sync(sess *resguardoSession, snap *Snapshot) {
	if sess.version == snap.Version {
		return
	}
	sess.version = snap.Version
	pruned, dropped := sess.sel.Revalidate(snap.Records)
	if len(pruned) == 0 && len(dropped) == 0 {
		return
	}
	sess.pruned = append(sess.pruned, pruned...)
	sess.dropped = append(sess.dropped, dropped...)
	uc.log.Warn().
		Ints64("pruned", pruned).
		Ints64("dropped", dropped).
		Msg("selección ajustada tras refrescar el catálogo")
}

func (uc *ResguardoUseCase) sessionResponse(id string, sess *resguardoSession, snap *Snapshot) dto.ResguardoSessionResponse {
	out := dto.ResguardoSessionResponse{
		ID:                  id,
		Items:               toMuebleList(sess.sel.Items()),
		ResponsibleConflict: toConflict(sess.sel.ResponsibleConflict()),
		AreaConflict:        toConflict(sess.sel.AreaConflict()),
		Pruned:              sess.pruned,
		Dropped:             sess.dropped,
	}
	if responsible, area, ok := sess.sel.Established(); ok {
		out.Director = responsible
		if area != nil {
			name := area.Name
			out.Area = &name
		}
		if d, found := snap.Directory.DirectorByName(entity.Str(responsible)); found {
			out.Puesto = d.Position
		}
	}
	return out
}
